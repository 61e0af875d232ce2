package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/callshot/internal/model"
	"github.com/ytget/callshot/internal/phone"
	"github.com/ytget/callshot/internal/scene"
)

// buildCallScreenTab creates the single call editor with its live preview
func (ui *RootUI) buildCallScreenTab() fyne.CanvasObject {
	l := ui.localization

	ui.callPreview = NewScenePreview(func() *scene.Frame {
		return scene.NewCallScreen(ui.callSettings)
	})

	nameEntry := widget.NewEntry()
	nameEntry.SetText(ui.callSettings.ContactName)
	nameEntry.OnChanged = liveEditHandler(nameEntry, func(s string) {
		ui.callSettings.ContactName = s
		ui.callPreview.Rebuild()
	})

	numberEntry := widget.NewEntry()
	numberEntry.SetText(ui.callSettings.ContactNumber)
	numberEntry.OnChanged = liveEditHandler(numberEntry, func(s string) {
		ui.callSettings.ContactNumber = s
		ui.callPreview.Rebuild()
	})

	states := model.CallStates()
	stateLabels := make([]string, len(states))
	for i, s := range states {
		stateLabels[i] = stateText(l, s)
	}
	stateRadio := widget.NewRadioGroup(stateLabels, nil)
	stateRadio.Horizontal = true
	stateRadio.Required = true
	for i, s := range states {
		if s == ui.callSettings.State {
			stateRadio.SetSelected(stateLabels[i])
		}
	}
	stateRadio.OnChanged = func(selected string) {
		for i, label := range stateLabels {
			if label == selected {
				ui.callSettings.State = states[i]
			}
		}
		ui.callPreview.Rebuild()
	}

	clockEntry := widget.NewEntry()
	clockEntry.SetText(ui.callSettings.Clock)
	clockEntry.OnChanged = func(s string) {
		ui.callSettings.Clock = s
		ui.callPreview.Rebuild()
	}

	batteryRow := ui.batteryControl(ui.callSettings.Battery, func(level int) {
		ui.callSettings.SetBattery(level)
		ui.callPreview.Rebuild()
	})

	colors := model.AvatarColors()
	colorNames := make([]string, len(colors))
	for i, c := range colors {
		colorNames[i] = c.Name
	}
	colorSelect := widget.NewSelect(colorNames, nil)
	for i, c := range colors {
		if c.Value == ui.callSettings.AvatarColor {
			colorSelect.SetSelectedIndex(i)
		}
	}
	colorSelect.OnChanged = func(string) {
		if i := colorSelect.SelectedIndex(); i >= 0 {
			ui.callSettings.AvatarColor = colors[i].Value
			ui.callPreview.Rebuild()
		}
	}

	avatarCheck := widget.NewCheck("", func(on bool) {
		ui.callSettings.ShowAvatar = on
		if on {
			colorSelect.Enable()
		} else {
			colorSelect.Disable()
		}
		ui.callPreview.Rebuild()
	})
	avatarCheck.SetChecked(ui.callSettings.ShowAvatar)
	if !ui.callSettings.ShowAvatar {
		colorSelect.Disable()
	}

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyContactName), nameEntry),
		widget.NewFormItem(l.GetText(KeyContactNumber), numberEntry),
		widget.NewFormItem(l.GetText(KeyCallState), stateRadio),
		widget.NewFormItem(l.GetText(KeyClock), clockEntry),
		widget.NewFormItem(l.GetText(KeyBattery), batteryRow),
		widget.NewFormItem(l.GetText(KeyShowAvatar), avatarCheck),
		widget.NewFormItem(l.GetText(KeyAvatarColor), colorSelect),
	)

	editor := container.NewVBox(widget.NewCard(l.GetText(KeyCallScreenTab), "", form))
	return adaptiveSplit(container.NewVScroll(editor), ui.previewPane(ui.callPreview))
}

// liveEditHandler returns an OnChanged handler that applies the live phone
// formatting policy to entry before passing the stored value to apply
func liveEditHandler(entry *widget.Entry, apply func(string)) func(string) {
	return func(value string) {
		if formatted := phone.LiveEdit(value); formatted != value {
			entry.SetText(formatted)
			return
		}
		apply(value)
	}
}

// stateText returns the localized name of a call state
func stateText(l *Localization, s model.CallState) string {
	if s == model.CallStateBusy {
		return l.GetText(KeyStateBusy)
	}
	return l.GetText(KeyStateIncoming)
}
