package ui

import (
	"context"
	"log"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/callshot/internal/api"
	"github.com/ytget/callshot/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	production   bool
	onSaved      func()

	// UI components
	exportDirEntry   *widget.Entry
	autoRevealCheck  *widget.Check
	languageSelect   *widget.Select
	hostnameEntry    *widget.Entry
	baseURLEntry     *widget.Entry
	checkBtn         *widget.Button
	connectionStatus *widget.Label
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, production bool, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		production:   production,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	sd.autoRevealCheck = widget.NewCheck(l.GetText(KeyAutoReveal), nil)

	// Language codes sorted for a stable order
	var languageOptions []string
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.hostnameEntry = widget.NewEntry()
	sd.hostnameEntry.SetPlaceHolder(config.DefaultAPIHostname)
	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DevelopmentAPIURL)

	sd.connectionStatus = widget.NewLabel("")
	sd.checkBtn = widget.NewButton(l.GetText(KeyCheckConnection), sd.onCheckConnection)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyExportDirectory)+":"),
		exportDirRow,
		sd.autoRevealCheck,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyAPIHostname)+":"),
		sd.hostnameEntry,
		widget.NewLabel(l.GetText(KeyAPIBaseURL)+":"),
		sd.baseURLEntry,
		container.NewHBox(sd.checkBtn, sd.connectionStatus),
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnExport())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.hostnameEntry.SetText(sd.settings.GetAPIHostname())
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURLOverride())
	sd.connectionStatus.SetText("")
}

// apiConfig returns the client configuration described by the dialog fields
func (sd *SettingsDialog) apiConfig() config.APIConfig {
	host := strings.TrimSpace(sd.hostnameEntry.Text)
	if host == "" {
		host = config.DefaultAPIHostname
	}
	base := strings.TrimSpace(sd.baseURLEntry.Text)
	if base == "" {
		base = config.ResolveAPIBaseURL(host, sd.production)
	}
	return config.APIConfig{BaseURL: config.AbsoluteBaseURL(host, base), Timeout: HealthCheckTimeout}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onCheckConnection calls the API health endpoint with the entered configuration
func (sd *SettingsDialog) onCheckConnection() {
	client := api.NewClient(sd.apiConfig())
	sd.checkBtn.Disable()
	sd.connectionStatus.SetText("…")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), HealthCheckTimeout)
		defer cancel()
		health, err := client.HealthCheck(ctx)

		fyne.Do(func() {
			sd.checkBtn.Enable()
			if err != nil {
				log.Printf("Health check against %s failed: %v", client.BaseURL(), err)
				sd.connectionStatus.Importance = widget.DangerImportance
				sd.connectionStatus.SetText(sd.localization.GetText(KeyConnectionFailed))
				return
			}
			log.Printf("Health check against %s: %s", client.BaseURL(), health.Status)
			sd.connectionStatus.Importance = widget.SuccessImportance
			sd.connectionStatus.SetText(sd.localization.GetText(KeyConnectionOK) + MiddleDotSeparator + health.Status)
		})
	}()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := strings.TrimSpace(sd.exportDirEntry.Text); dir != "" {
		sd.settings.SetExportDirectory(dir)
	}
	sd.settings.SetAutoRevealOnExport(sd.autoRevealCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if host := strings.TrimSpace(sd.hostnameEntry.Text); host != "" {
		sd.settings.SetAPIHostname(host)
	}
	sd.settings.SetAPIBaseURLOverride(strings.TrimSpace(sd.baseURLEntry.Text))

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
