package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/callshot/internal/calllog"
	"github.com/ytget/callshot/internal/model"
)

func TestEntryForm_LiveFormatsRussianNumber(t *testing.T) {
	test.NewApp()
	f := NewEntryForm(NewLocalization())

	test.Type(f.NameEntry, "+79115635437")

	assert.Equal(t, "+7-911-563-54-37", f.NameEntry.Text)
	assert.Equal(t, model.ChannelPSTN, f.Values().Channel)
}

func TestEntryForm_ShortNumberStaysRaw(t *testing.T) {
	test.NewApp()
	f := NewEntryForm(NewLocalization())

	test.Type(f.NameEntry, "+7911")

	assert.Equal(t, "+7911", f.NameEntry.Text)
	assert.Equal(t, model.ChannelPSTN, f.Values().Channel)
	assert.Equal(t, 1, f.ChannelSelect.SelectedIndex())
}

func TestEntryForm_NameLeavesChannelForStore(t *testing.T) {
	test.NewApp()
	f := NewEntryForm(NewLocalization())

	test.Type(f.NameEntry, "Вика")

	v := f.Values()
	assert.Equal(t, "Вика", v.Name)
	assert.Empty(t, v.Channel)
	assert.Equal(t, model.DirectionIncoming, v.Direction)
}

func TestEntryForm_Values(t *testing.T) {
	test.NewApp()
	f := NewEntryForm(NewLocalization())

	f.NameEntry.SetText("Люба")
	f.DirectionSelect.SetSelectedIndex(2)
	f.TimeEntry.SetText(" 12:01 ")
	f.RepeatEntry.SetText("1")

	v := f.Values()
	assert.Equal(t, model.DirectionMissed, v.Direction)
	assert.Equal(t, "12:01", v.Time)
	assert.Zero(t, v.RepeatCount)

	f.RepeatEntry.SetText("4")
	assert.Equal(t, 4, f.Values().RepeatCount)
}

func TestEntryForm_SetValuesDoesNotNotify(t *testing.T) {
	test.NewApp()
	f := NewEntryForm(NewLocalization())

	calls := 0
	f.SetOnChange(func(model.CallEntry) { calls++ })
	f.SetValues(calllog.DefaultEntries()[0])
	assert.Zero(t, calls)

	f.TimeEntry.SetText("10:00")
	assert.Equal(t, 1, calls)
}

func TestEntryForm_Reset(t *testing.T) {
	test.NewApp()
	f := NewEntryForm(NewLocalization())
	f.SetValues(calllog.DefaultEntries()[4])

	f.Reset()

	assert.Equal(t, model.CallEntry{Direction: model.DirectionIncoming}, f.Values())
}

func TestValidateRepeatCount(t *testing.T) {
	assert.NoError(t, validateRepeatCount(""))
	assert.NoError(t, validateRepeatCount(" 3 "))
	assert.Error(t, validateRepeatCount("abc"))
	assert.Error(t, validateRepeatCount("-1"))
	assert.Error(t, validateRepeatCount("100"))
}

func TestEditSession_Commit(t *testing.T) {
	test.NewApp()
	store := calllog.NewStore(calllog.DefaultEntries()...)
	before := store.Entries()

	form, finish, ok := newEditSession(store, NewLocalization(), "5")
	require.True(t, ok)
	assert.True(t, store.IsEditing())
	assert.Equal(t, "Пашка", form.NameEntry.Text)

	form.NameEntry.SetText("Павел")
	form.DirectionSelect.SetSelectedIndex(1)
	draft, _ := store.Draft()
	assert.Equal(t, "Павел", draft.Name)
	assert.Equal(t, before, store.Entries(), "collection untouched until commit")

	finish(true)

	assert.False(t, store.IsEditing())
	got, _ := store.Get("5")
	assert.Equal(t, "Павел", got.Name)
	assert.Equal(t, model.DirectionOutgoing, got.Direction)
	assert.Equal(t, model.ChannelVoIP, got.Channel)
	assert.Len(t, store.Entries(), len(before))
}

func TestEditSession_CancelAndBlankName(t *testing.T) {
	test.NewApp()
	store := calllog.NewStore(calllog.DefaultEntries()...)
	before := store.Entries()

	form, finish, ok := newEditSession(store, NewLocalization(), "4")
	require.True(t, ok)
	form.NameEntry.SetText("Другое имя")
	finish(false)
	assert.Equal(t, before, store.Entries())

	form, finish, ok = newEditSession(store, NewLocalization(), "4")
	require.True(t, ok)
	form.NameEntry.SetText("   ")
	finish(true)
	assert.Equal(t, before, store.Entries())
	assert.False(t, store.IsEditing())
}

func TestEditSession_UnknownID(t *testing.T) {
	test.NewApp()
	store := calllog.NewStore(calllog.DefaultEntries()...)

	_, _, ok := newEditSession(store, NewLocalization(), "missing")
	assert.False(t, ok)
	assert.False(t, ShowEditDialog(test.NewWindow(nil), store, NewLocalization(), "missing"))
}
