package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/callshot/internal/model"
)

func TestEntryRow_Display(t *testing.T) {
	test.NewApp()
	l := NewLocalization()

	row := NewEntryRow(model.CallEntry{
		ID: "7", Name: "Пашка", Direction: model.DirectionMissed, Time: "Вчера", RepeatCount: 3, Channel: model.ChannelVoIP,
	}, l)

	assert.Equal(t, "Пашка (3)", row.nameLabel.Text)
	assert.Equal(t, widget.DangerImportance, row.nameLabel.Importance)
	assert.Equal(t, "Missed · Аудиовызов Telegram", row.detailsLabel.Text)
	assert.Equal(t, "Вчера", row.timeLabel.Text)

	row.UpdateEntry(model.CallEntry{ID: "8", Name: "Бухгалтерия", Direction: model.DirectionIncoming, Channel: model.ChannelPSTN})
	assert.Equal(t, "Бухгалтерия", row.nameLabel.Text)
	assert.Equal(t, widget.MediumImportance, row.nameLabel.Importance)
	assert.Equal(t, "Incoming · Россия", row.detailsLabel.Text)
}

func TestEntryRow_Callbacks(t *testing.T) {
	test.NewApp()
	row := NewEntryRow(model.CallEntry{ID: "5", Name: "Пашка"}, NewLocalization())

	var edited, removed string
	row.SetCallbacks(func(id string) { edited = id }, func(id string) { removed = id })

	test.Tap(row.editBtn)
	test.Tap(row.deleteBtn)

	assert.Equal(t, "5", edited)
	assert.Equal(t, "5", removed)
}

func TestExportRow_States(t *testing.T) {
	test.NewApp()
	l := NewLocalization()

	row := NewExportRow(nil, l)
	assert.True(t, row.revealBtn.Disabled())

	started := time.UnixMilli(1700000000000)
	row.UpdateTask(&model.ExportTask{
		ID:         "export-1",
		Scenario:   "telegram-calls",
		Status:     model.ExportStatusCompleted,
		OutputPath: "/tmp/callshot/telegram-calls-1700000000000.png",
		Width:      750,
		Height:     1624,
		StartedAt:  started,
		FinishedAt: started.Add(120 * time.Millisecond),
	})
	assert.Equal(t, "telegram-calls-1700000000000.png", row.titleLabel.Text)
	assert.Equal(t, "750x1624 · 120ms", row.sizeLabel.Text)
	assert.Equal(t, widget.SuccessImportance, row.statusLabel.Importance)
	assert.False(t, row.revealBtn.Disabled())
	assert.False(t, row.openBtn.Disabled())
	assert.False(t, row.copyBtn.Disabled())

	row.UpdateTask(&model.ExportTask{
		ID:        "export-2",
		Scenario:  "call-screen",
		State:     "busy",
		Status:    model.ExportStatusError,
		LastError: "capture root not found",
	})
	assert.Equal(t, "call-screen (busy)", row.titleLabel.Text)
	assert.Equal(t, "capture root not found", row.sizeLabel.Text)
	assert.Equal(t, widget.DangerImportance, row.statusLabel.Importance)
	assert.True(t, row.openBtn.Disabled())
}

func TestExportRow_Callbacks(t *testing.T) {
	test.NewApp()
	row := NewExportRow(&model.ExportTask{
		ID:         "export-1",
		Status:     model.ExportStatusCompleted,
		OutputPath: "/tmp/callshot/a.png",
	}, NewLocalization())

	var got []string
	record := func(path string) { got = append(got, path) }
	row.SetCallbacks(record, record, record)

	test.Tap(row.revealBtn)
	test.Tap(row.openBtn)
	test.Tap(row.copyBtn)

	assert.Equal(t, []string{"/tmp/callshot/a.png", "/tmp/callshot/a.png", "/tmp/callshot/a.png"}, got)
}

func TestLocalization(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "Export PNG", l.GetText(KeyExport))

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Экспорт PNG", l.GetText(KeyExport))
	assert.Equal(t, "missing_key", l.GetText("missing_key"))

	l.SetLanguage("pt")
	assert.Equal(t, "ru", l.GetCurrentLanguage(), "unknown languages are ignored")

	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())
}

func TestLocalization_AllKeysTranslated(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts["en"] {
		_, ok := l.texts["ru"][key]
		assert.True(t, ok, "missing ru text for %s", key)
	}
	assert.Len(t, l.texts["ru"], len(l.texts["en"]))
}
