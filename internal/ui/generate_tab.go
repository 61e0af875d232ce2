package ui

import (
	"context"
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/callshot/internal/api"
	"github.com/ytget/callshot/internal/config"
	"github.com/ytget/callshot/internal/model"
)

// Theme names understood by the generation service
const (
	themeDark  = "dark"
	themeLight = "light"
)

// newGenerateRequest describes the current call list scene to the generation service
func newGenerateRequest(prompt, style string, entries []model.CallEntry, settings model.ListSettings) api.GenerateRequest {
	theme := themeLight
	if settings.DarkTheme {
		theme = themeDark
	}
	battery := settings.Battery
	search := settings.ShowSearch
	return api.GenerateRequest{
		Prompt:       strings.TrimSpace(prompt),
		Style:        style,
		Width:        config.DefaultImageWidth,
		Height:       config.DefaultImageHeight,
		Theme:        theme,
		HeaderTitle:  settings.HeaderTitle,
		TimeDisplay:  settings.Clock,
		BatteryLevel: &battery,
		ShowSearch:   &search,
		Calls:        entries,
	}
}

// buildGenerateTab creates the remote generation form
func (ui *RootUI) buildGenerateTab() fyne.CanvasObject {
	l := ui.localization

	promptEntry := widget.NewMultiLineEntry()
	promptEntry.SetMinRowsVisible(3)

	styleSelect := widget.NewSelect(ui.styleIDs, nil)
	styleSelect.SetSelected(config.DefaultStyle)

	loadStylesBtn := widget.NewButton(l.GetText(KeyLoadStyles), nil)
	loadStylesBtn.OnTapped = func() {
		loadStylesBtn.Disable()
		go func() {
			styles, err := ui.apiClient.GetStyles(context.Background())
			fyne.Do(func() {
				loadStylesBtn.Enable()
				if err != nil {
					log.Printf("Failed to load styles: %v", err)
					dialog.ShowError(err, ui.window)
					return
				}
				ids := make([]string, 0, len(styles.Styles))
				for _, s := range styles.Styles {
					ids = append(ids, s.ID)
				}
				ui.styleIDs = ids
				styleSelect.SetOptions(ui.styleIDs)
				log.Printf("Loaded %d styles from %s", len(ui.styleIDs), ui.apiClient.BaseURL())
			})
		}()
	}

	messageLabel := widget.NewLabel("")
	messageLabel.Wrapping = fyne.TextWrapWord
	imageLink := widget.NewHyperlink("", nil)
	imageLink.Hide()

	generateBtn := widget.NewButton(l.GetText(KeyGenerate), nil)
	generateBtn.Importance = widget.HighImportance
	generateBtn.OnTapped = func() {
		req := newGenerateRequest(promptEntry.Text, styleSelect.Selected, ui.entries, ui.listSettings)
		if req.Prompt == "" {
			widget.ShowPopUp(widget.NewLabel(api.ErrEmptyPrompt.Error()), ui.window.Canvas())
			return
		}

		generateBtn.Disable()
		messageLabel.SetText(l.GetText(KeyGenerating))
		go func() {
			resp, err := ui.apiClient.GenerateImage(context.Background(), req)
			fyne.Do(func() {
				generateBtn.Enable()
				if err != nil {
					log.Printf("Generate request failed: %v", err)
					messageLabel.SetText("")
					dialog.ShowError(err, ui.window)
					return
				}
				messageLabel.SetText(resp.Message)
				if u, err := url.Parse(resp.ImageURL); err == nil && resp.ImageURL != "" {
					imageLink.SetText(resp.ImageURL)
					imageLink.SetURL(u)
					imageLink.Show()
				} else {
					imageLink.Hide()
				}
			})
		}()
	}

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyPrompt), promptEntry),
		widget.NewFormItem(l.GetText(KeyStyle), container.NewBorder(nil, nil, nil, loadStylesBtn, styleSelect)),
	)

	return container.NewVBox(
		widget.NewCard(l.GetText(KeyGenerateTab), ui.apiClient.BaseURL(), form),
		generateBtn,
		messageLabel,
		imageLink,
	)
}
