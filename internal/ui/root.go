package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/callshot/internal/api"
	"github.com/ytget/callshot/internal/calllog"
	"github.com/ytget/callshot/internal/config"
	"github.com/ytget/callshot/internal/export"
	"github.com/ytget/callshot/internal/model"
	"github.com/ytget/callshot/internal/platform"
)

// Tab indexes in display order
const (
	TabCallList = iota
	TabCallScreen
	TabExports
	TabGenerate
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	production   bool

	exportSvc export.Exporter
	apiClient *api.Client
	store     *calllog.Store

	// Scene state; each scene owns its own settings
	entries      []model.CallEntry
	listSettings model.ListSettings
	callSettings model.CallSettings

	tabs        *container.AppTabs
	listPreview *ScenePreview
	callPreview *ScenePreview
	entryList   *widget.List
	addForm     *EntryForm

	// Export controls of both scene tabs, disabled while an export runs
	exportButtons []*widget.Button

	exportList     *widget.List
	exportTasks    []*model.ExportTask
	noExportsLabel *widget.Label

	styleIDs []string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, exportSvc export.Exporter, store *calllog.Store) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	exportDir := settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		log.Printf("Failed to create export directory %s: %v", exportDir, err)
	}
	exportSvc.SetExportDirectory(exportDir)

	production := app.Metadata().Release
	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		production:   production,
		exportSvc:    exportSvc,
		apiClient:    api.NewClient(settings.APIConfig(production)),
		store:        store,
		entries:      store.Entries(),
		listSettings: model.DefaultListSettings(),
		callSettings: model.DefaultCallSettings(),
		styleIDs:     []string{config.DefaultStyle},
	}
	log.Printf("RootUI initialized: export dir %s, API %s", exportDir, ui.apiClient.BaseURL())

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.store.SetUpdateCallback(ui.onEntriesChanged)
	ui.exportSvc.SetUpdateCallback(ui.onExportUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()
	ui.exportButtons = nil

	selected := TabCallList
	if ui.tabs != nil {
		selected = ui.tabs.SelectedIndex()
	}

	l := ui.localization
	ui.tabs = container.NewAppTabs(
		container.NewTabItem(l.GetText(KeyCallListTab), ui.buildCallListTab()),
		container.NewTabItem(l.GetText(KeyCallScreenTab), ui.buildCallScreenTab()),
		container.NewTabItem(l.GetText(KeyExportsTab), ui.buildExportsTab()),
		container.NewTabItem(l.GetText(KeyGenerateTab), ui.buildGenerateTab()),
	)
	ui.tabs.SelectIndex(selected)
	ui.setExportBusy(ui.exportSvc.InProgress())

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var leading fyne.CanvasObject = settingsBtn
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		leading = container.NewHBox(logoImage, settingsBtn)
	}
	title := widget.NewLabelWithStyle(l.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	topPanel := container.NewBorder(nil, nil, leading, nil, title)

	ui.window.SetContent(container.NewBorder(topPanel, nil, nil, nil, ui.tabs))
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds the window in the current language. Scene state
// lives on RootUI, so the rebuilt tabs show the same scenes.
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.setupUI()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.production, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the running services
func (ui *RootUI) onSettingsSaved() {
	dir := ui.settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		log.Printf("Failed to create export directory %s: %v", dir, err)
	}
	ui.exportSvc.SetExportDirectory(dir)

	ui.apiClient = api.NewClient(ui.settings.APIConfig(ui.production))
	log.Printf("Settings applied: export dir %s, API %s", dir, ui.apiClient.BaseURL())

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
}

// previewPane puts the export controls under a scene preview
func (ui *RootUI) previewPane(preview *ScenePreview) fyne.CanvasObject {
	exportBtn := widget.NewButton(ui.localization.GetText(KeyExport), func() { ui.onExport(preview) })
	exportBtn.Importance = widget.HighImportance
	copyBtn := widget.NewButton(ui.localization.GetText(KeyCopyDataURL), func() { ui.onCopyDataURL(preview) })
	ui.exportButtons = append(ui.exportButtons, exportBtn, copyBtn)

	bar := container.NewHBox(layout.NewSpacer(), copyBtn, exportBtn)
	return container.NewBorder(nil, bar, nil, nil, preview.Container())
}

// setExportBusy disables the export controls while an export is in progress
func (ui *RootUI) setExportBusy(busy bool) {
	for _, btn := range ui.exportButtons {
		if busy {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}
}

// onExport exports the frame currently shown in preview
func (ui *RootUI) onExport(preview *ScenePreview) {
	if ui.exportSvc.InProgress() {
		return
	}
	target := preview.Frame()
	ui.setExportBusy(true)

	go func() {
		task, err := ui.exportSvc.Export(context.Background(), target)
		fyne.Do(func() {
			ui.setExportBusy(false)
			if err != nil {
				dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyExportFailed), err), ui.window)
				return
			}
			if task != nil {
				ui.onExportCompleted(task)
			}
		})
	}()
}

// onCopyDataURL copies the frame currently shown in preview as a PNG data URL
func (ui *RootUI) onCopyDataURL(preview *ScenePreview) {
	if ui.exportSvc.InProgress() {
		return
	}
	target := preview.Frame()
	ui.setExportBusy(true)

	go func() {
		snap, err := ui.exportSvc.Snapshot(context.Background(), target)
		fyne.Do(func() {
			ui.setExportBusy(false)
			if err != nil {
				dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyExportFailed), err), ui.window)
				return
			}
			if snap == nil {
				return
			}
			ui.app.Clipboard().SetContent(snap.DataURL())
			log.Printf("Copied %s as data URL (%d bytes)", snap.FileName, len(snap.PNG))
			ui.showToast(ui.localization.GetText(KeyDataURLCopied), snap.FileName, nil)
		})
	}()
}

// onExportCompleted notifies about a written PNG and reveals it if enabled
func (ui *RootUI) onExportCompleted(task *model.ExportTask) {
	platform.NotifyMediaScanner(task.OutputPath)

	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyExportCompleted),
		Content: task.GetDisplayTitle(),
	})

	if ui.settings.GetAutoRevealOnExport() {
		log.Printf("Auto-revealing export %s: %s", task.ID, task.OutputPath)
		ui.onRevealFile(task.OutputPath)
		return
	}
	ui.showToast(ui.localization.GetText(KeyExportCompleted), task.GetDisplayTitle(), task)
}

// onRevealFile reveals a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := ui.checkFilePath(filePath); err != nil {
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
		return
	}
	log.Printf("File revealed successfully: %s", filePath)
}

// onOpenFile opens an exported file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := ui.checkFilePath(filePath); err != nil {
		return
	}
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
		return
	}
	log.Printf("File opened successfully: %s", filePath)
}

// onCopyPath copies a file path to the clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	if err := ui.checkFilePath(filePath); err != nil {
		return
	}
	ui.app.Clipboard().SetContent(filePath)
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPathCopied)), ui.window.Canvas())
}

// checkFilePath rejects empty paths and URLs before handing them to the OS
func (ui *RootUI) checkFilePath(filePath string) error {
	var err error
	switch {
	case filePath == "":
		err = fmt.Errorf("no file path provided")
	case strings.HasPrefix(filePath, "http"):
		err = fmt.Errorf("cannot use URL as file path: %s", filePath)
	}
	if err != nil {
		log.Printf("Error: %v", err)
		widget.ShowPopUp(widget.NewLabel("Error: "+err.Error()), ui.window.Canvas())
	}
	return err
}

// showToast shows an in-app toast in the top-right corner; task adds file actions
func (ui *RootUI) showToast(title, message string, task *model.ExportTask) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(message)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(container.NewBorder(nil, nil, titleLabel, closeBtn), messageLabel)
	if task != nil && task.OutputPath != "" {
		path := task.OutputPath
		revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() { ui.onRevealFile(path) })
		revealBtn.Importance = widget.HighImportance
		openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() { ui.onOpenFile(path) })
		content.Add(container.NewHBox(revealBtn, openBtn))
	}

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
}
