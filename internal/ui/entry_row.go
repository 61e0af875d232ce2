package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/callshot/internal/model"
)

// EntryRow is a compact call log row with edit and delete actions
type EntryRow struct {
	widget.BaseWidget

	entry        model.CallEntry
	localization *Localization

	nameLabel    *widget.Label
	detailsLabel *widget.Label
	timeLabel    *widget.Label

	editBtn   *widget.Button
	deleteBtn *widget.Button

	onEdit   func(id string)
	onRemove func(id string)
}

// NewEntryRow creates a row for entry
func NewEntryRow(entry model.CallEntry, localization *Localization) *EntryRow {
	r := &EntryRow{
		entry:        entry,
		localization: localization,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	r.updateFromEntry()
	return r
}

// SetCallbacks sets the action callbacks
func (r *EntryRow) SetCallbacks(onEdit func(id string), onRemove func(id string)) {
	r.onEdit = onEdit
	r.onRemove = onRemove
}

// UpdateEntry shows entry in the row
func (r *EntryRow) UpdateEntry(entry model.CallEntry) {
	r.entry = entry
	r.updateFromEntry()
	r.Refresh()
}

func (r *EntryRow) createUI() {
	r.nameLabel = widget.NewLabel("")
	r.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.nameLabel.Truncation = fyne.TextTruncateEllipsis

	r.detailsLabel = widget.NewLabel("")
	r.detailsLabel.Importance = widget.LowImportance
	r.detailsLabel.Truncation = fyne.TextTruncateEllipsis

	r.timeLabel = widget.NewLabel("")
	r.timeLabel.Alignment = fyne.TextAlignTrailing

	r.editBtn = widget.NewButton(r.localization.GetText(KeyEdit), func() {
		if r.onEdit == nil {
			log.Printf("onEdit callback is nil for entry %s", r.entry.ID)
			return
		}
		r.onEdit(r.entry.ID)
	})
	r.editBtn.Importance = widget.MediumImportance

	r.deleteBtn = widget.NewButton(r.localization.GetText(KeyDelete), func() {
		if r.onRemove == nil {
			log.Printf("onRemove callback is nil for entry %s", r.entry.ID)
			return
		}
		r.onRemove(r.entry.ID)
	})
	r.deleteBtn.Importance = widget.DangerImportance
}

func (r *EntryRow) updateFromEntry() {
	name := r.entry.Name
	if r.entry.HasBadge() {
		name += " (" + strconv.Itoa(r.entry.RepeatCount) + ")"
	}
	r.nameLabel.SetText(name)
	if r.entry.Direction == model.DirectionMissed {
		r.nameLabel.Importance = widget.DangerImportance
	} else {
		r.nameLabel.Importance = widget.MediumImportance
	}

	r.detailsLabel.SetText(directionText(r.localization, r.entry.Direction) + MiddleDotSeparator + r.entry.Channel.Subtitle())
	r.timeLabel.SetText(r.entry.Time)

	r.editBtn.SetText(r.localization.GetText(KeyEdit))
	r.deleteBtn.SetText(r.localization.GetText(KeyDelete))
}

// CreateRenderer creates the widget renderer
func (r *EntryRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(r.nameLabel, r.detailsLabel)
	actions := container.NewHBox(fixedWidth(TimeLabelWidth, r.timeLabel), r.editBtn, r.deleteBtn)
	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, actions, text),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}

// directionText returns the localized name of a call direction
func directionText(l *Localization, d model.Direction) string {
	switch d {
	case model.DirectionOutgoing:
		return l.GetText(KeyDirectionOutgoing)
	case model.DirectionMissed:
		return l.GetText(KeyDirectionMissed)
	default:
		return l.GetText(KeyDirectionIncoming)
	}
}
