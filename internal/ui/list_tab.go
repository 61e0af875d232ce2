package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/callshot/internal/model"
	"github.com/ytget/callshot/internal/scene"
)

// buildCallListTab creates the call list editor with its live preview
func (ui *RootUI) buildCallListTab() fyne.CanvasObject {
	l := ui.localization

	ui.listPreview = NewScenePreview(func() *scene.Frame {
		return scene.NewCallList(ui.entries, ui.listSettings)
	})

	darkCheck := widget.NewCheck("", func(on bool) {
		ui.listSettings.DarkTheme = on
		ui.listPreview.Rebuild()
	})
	darkCheck.SetChecked(ui.listSettings.DarkTheme)

	searchCheck := widget.NewCheck("", func(on bool) {
		ui.listSettings.ShowSearch = on
		ui.listPreview.Rebuild()
	})
	searchCheck.SetChecked(ui.listSettings.ShowSearch)

	wifiCheck := widget.NewCheck("", func(on bool) {
		ui.listSettings.ShowWifi = on
		ui.listPreview.Rebuild()
	})
	wifiCheck.SetChecked(ui.listSettings.ShowWifi)

	titleEntry := widget.NewEntry()
	titleEntry.SetText(ui.listSettings.HeaderTitle)
	titleEntry.OnChanged = func(s string) {
		ui.listSettings.HeaderTitle = s
		ui.listPreview.Rebuild()
	}

	clockEntry := widget.NewEntry()
	clockEntry.SetText(ui.listSettings.Clock)
	clockEntry.OnChanged = func(s string) {
		ui.listSettings.Clock = s
		ui.listPreview.Rebuild()
	}

	batteryRow := ui.batteryControl(ui.listSettings.Battery, func(level int) {
		ui.listSettings.SetBattery(level)
		ui.listPreview.Rebuild()
	})

	settingsForm := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyDarkTheme), darkCheck),
		widget.NewFormItem(l.GetText(KeyShowSearch), searchCheck),
		widget.NewFormItem(l.GetText(KeyShowWifi), wifiCheck),
		widget.NewFormItem(l.GetText(KeyHeaderTitle), titleEntry),
		widget.NewFormItem(l.GetText(KeyClock), clockEntry),
		widget.NewFormItem(l.GetText(KeyBattery), batteryRow),
	)

	ui.addForm = NewEntryForm(l)
	ui.addForm.NameEntry.OnSubmitted = func(string) { ui.onAddEntry() }
	addBtn := widget.NewButton(l.GetText(KeyAddCall), ui.onAddEntry)
	addBtn.Importance = widget.HighImportance
	addForm := container.NewVBox(widget.NewForm(ui.addForm.FormItems()...), addBtn)

	ui.entryList = widget.NewList(
		func() int { return len(ui.entries) },
		func() fyne.CanvasObject {
			row := NewEntryRow(model.CallEntry{}, ui.localization)
			row.SetCallbacks(ui.onEditEntry, ui.onRemoveEntry)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.entries) {
				return
			}
			if row, ok := obj.(*EntryRow); ok {
				row.UpdateEntry(ui.entries[id])
			}
		},
	)

	cards := container.NewVBox(
		widget.NewCard(l.GetText(KeyCallListTab), "", settingsForm),
		widget.NewCard(l.GetText(KeyAddCall), "", addForm),
	)
	editor := container.NewVSplit(container.NewVScroll(cards), ui.entryList)
	editor.Offset = 0.6

	return adaptiveSplit(editor, ui.previewPane(ui.listPreview))
}

// onEntriesChanged is the store update callback
func (ui *RootUI) onEntriesChanged(entries []model.CallEntry) {
	ui.entries = entries
	if ui.entryList != nil {
		ui.entryList.Refresh()
	}
	if ui.listPreview != nil {
		ui.listPreview.Rebuild()
	}
}

// onAddEntry adds the entry described by the add form
func (ui *RootUI) onAddEntry() {
	v := ui.addForm.Values()
	if strings.TrimSpace(v.Name) == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPleaseEnterName)), ui.window.Canvas())
		return
	}

	entry, ok := ui.store.Add(v.Name, v.Direction, v.Time, v.RepeatCount, v.Channel)
	if !ok {
		return
	}
	log.Printf("Entry added from form: id=%s name=%q", entry.ID, entry.Name)
	ui.addForm.Reset()
}

// onEditEntry opens the edit dialog for id
func (ui *RootUI) onEditEntry(id string) {
	if !ShowEditDialog(ui.window, ui.store, ui.localization, id) {
		log.Printf("Entry %s not found for editing", id)
	}
}

// onRemoveEntry removes the entry with id
func (ui *RootUI) onRemoveEntry(id string) {
	if !ui.store.Remove(id) {
		log.Printf("Entry %s already removed", id)
	}
}

// batteryControl returns a 0-100 slider with a percentage label
func (ui *RootUI) batteryControl(level int, onChange func(int)) fyne.CanvasObject {
	label := widget.NewLabel(fmt.Sprintf(BatteryLabelFormat, level))
	slider := widget.NewSlider(model.MinBattery, model.MaxBattery)
	slider.Step = 1
	slider.SetValue(float64(level))
	slider.OnChanged = func(v float64) {
		level := model.ClampBattery(int(v))
		label.SetText(fmt.Sprintf(BatteryLabelFormat, level))
		onChange(level)
	}
	return container.NewBorder(nil, nil, nil, fixedWidth(48, label), slider)
}
