package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/callshot/internal/calllog"
	"github.com/ytget/callshot/internal/model"
	"github.com/ytget/callshot/internal/phone"
)

// EntryForm holds the inputs describing one call entry. It backs both the
// add form and the edit dialog.
type EntryForm struct {
	localization *Localization

	NameEntry       *widget.Entry
	DirectionSelect *widget.Select
	TimeEntry       *widget.Entry
	RepeatEntry     *widget.Entry
	ChannelSelect   *widget.Select

	// channel is empty until chosen or inferred, letting the store pick a default
	channel  model.Channel
	syncing  bool
	onChange func(model.CallEntry)
}

// NewEntryForm creates an empty form
func NewEntryForm(localization *Localization) *EntryForm {
	f := &EntryForm{localization: localization}

	f.NameEntry = widget.NewEntry()
	f.NameEntry.SetPlaceHolder(localization.GetText(KeyName))
	f.NameEntry.OnChanged = f.onNameChanged

	var directions []string
	for _, d := range model.Directions() {
		directions = append(directions, directionText(localization, d))
	}
	f.DirectionSelect = widget.NewSelect(directions, func(string) { f.changed() })
	f.DirectionSelect.SetSelectedIndex(0)

	f.TimeEntry = widget.NewEntry()
	f.TimeEntry.SetPlaceHolder(calllog.NowMarker)
	f.TimeEntry.OnChanged = func(string) { f.changed() }

	f.RepeatEntry = widget.NewEntry()
	f.RepeatEntry.SetPlaceHolder("1")
	f.RepeatEntry.Validator = validateRepeatCount
	f.RepeatEntry.OnChanged = func(string) { f.changed() }

	var channels []string
	for _, c := range model.Channels() {
		channels = append(channels, c.Subtitle())
	}
	f.ChannelSelect = widget.NewSelect(channels, func(string) {
		if i := f.ChannelSelect.SelectedIndex(); i >= 0 {
			f.channel = model.Channels()[i]
		}
		f.changed()
	})

	return f
}

// SetOnChange sets the callback invoked with the form values after every edit
func (f *EntryForm) SetOnChange(fn func(model.CallEntry)) {
	f.onChange = fn
}

// onNameChanged applies the live phone formatting policy to the name field
func (f *EntryForm) onNameChanged(value string) {
	if formatted := phone.LiveEdit(value); formatted != value {
		// SetText re-enters this handler with the formatted value
		f.NameEntry.SetText(formatted)
		return
	}
	if ch := phone.ChannelFor(value, f.channel); ch != f.channel {
		f.setChannel(ch)
	}
	f.changed()
}

func (f *EntryForm) setChannel(ch model.Channel) {
	f.channel = ch
	for i, c := range model.Channels() {
		if c == ch {
			f.withoutNotify(func() { f.ChannelSelect.SetSelectedIndex(i) })
			return
		}
	}
	f.withoutNotify(f.ChannelSelect.ClearSelected)
}

func (f *EntryForm) changed() {
	if f.syncing || f.onChange == nil {
		return
	}
	f.onChange(f.Values())
}

func (f *EntryForm) withoutNotify(fn func()) {
	prev := f.syncing
	f.syncing = true
	fn()
	f.syncing = prev
}

// Values returns the entry described by the form; ID is left empty
func (f *EntryForm) Values() model.CallEntry {
	direction := model.DirectionIncoming
	if i := f.DirectionSelect.SelectedIndex(); i >= 0 {
		direction = model.Directions()[i]
	}
	count, _ := strconv.Atoi(strings.TrimSpace(f.RepeatEntry.Text))
	return model.CallEntry{
		Name:        f.NameEntry.Text,
		Direction:   direction,
		Time:        strings.TrimSpace(f.TimeEntry.Text),
		RepeatCount: model.NormalizeRepeatCount(count),
		Channel:     f.channel,
	}
}

// SetValues fills the form from e without invoking the change callback
func (f *EntryForm) SetValues(e model.CallEntry) {
	f.withoutNotify(func() {
		f.NameEntry.SetText(e.Name)
		for i, d := range model.Directions() {
			if d == e.Direction {
				f.DirectionSelect.SetSelectedIndex(i)
			}
		}
		f.TimeEntry.SetText(e.Time)
		if e.RepeatCount > 0 {
			f.RepeatEntry.SetText(strconv.Itoa(e.RepeatCount))
		} else {
			f.RepeatEntry.SetText("")
		}
		f.setChannel(e.Channel)
	})
}

// Reset clears the form for the next entry
func (f *EntryForm) Reset() {
	f.SetValues(model.CallEntry{Direction: model.DirectionIncoming})
}

// FormItems returns labelled rows for a widget.Form
func (f *EntryForm) FormItems() []*widget.FormItem {
	l := f.localization
	return []*widget.FormItem{
		widget.NewFormItem(l.GetText(KeyName), f.NameEntry),
		widget.NewFormItem(l.GetText(KeyDirection), f.DirectionSelect),
		widget.NewFormItem(l.GetText(KeyTime), f.TimeEntry),
		widget.NewFormItem(l.GetText(KeyRepeatCount), f.RepeatEntry),
		widget.NewFormItem(l.GetText(KeyChannel), f.ChannelSelect),
	}
}

func validateRepeatCount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if n < 0 || n > MaxRepeatCount {
		return strconv.ErrRange
	}
	return nil
}

// newEditSession starts editing the entry with id and returns a form bound to
// the store's draft plus the function that ends the session
func newEditSession(store *calllog.Store, localization *Localization, id string) (*EntryForm, func(confirmed bool), bool) {
	if !store.StartEdit(id) {
		return nil, nil, false
	}
	draft, _ := store.Draft()

	form := NewEntryForm(localization)
	form.SetValues(draft)
	form.SetOnChange(func(v model.CallEntry) {
		store.UpdateDraft(func(e *model.CallEntry) {
			e.Name = v.Name
			e.Direction = v.Direction
			e.Time = v.Time
			e.RepeatCount = v.RepeatCount
			if v.Channel != "" {
				e.Channel = v.Channel
			}
		})
	})

	finish := func(confirmed bool) {
		if !confirmed || strings.TrimSpace(form.NameEntry.Text) == "" {
			store.CancelEdit()
			return
		}
		store.CommitEdit()
	}
	return form, finish, true
}

// ShowEditDialog opens the edit dialog for the entry with id. The store holds
// the draft while the dialog is open; Save commits it and Cancel discards it.
func ShowEditDialog(window fyne.Window, store *calllog.Store, localization *Localization, id string) bool {
	form, finish, ok := newEditSession(store, localization, id)
	if !ok {
		return false
	}

	d := dialog.NewForm(
		localization.GetText(KeyEditCall),
		localization.GetText(KeySave),
		localization.GetText(KeyCancel),
		form.FormItems(),
		finish,
		window,
	)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
	return true
}
