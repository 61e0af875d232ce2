package ui

import (
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/callshot/internal/model"
)

// ExportRow represents a compact row of the export history
type ExportRow struct {
	widget.BaseWidget

	task         *model.ExportTask
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	statusLabel *widget.Label
	sizeLabel   *widget.Label

	// Action buttons
	revealBtn *widget.Button // reveal in file manager
	openBtn   *widget.Button // open with default app
	copyBtn   *widget.Button

	// Callbacks
	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onCopyPath func(filePath string)
}

// NewExportRow creates a new export row widget
func NewExportRow(task *model.ExportTask, localization *Localization) *ExportRow {
	if task == nil {
		task = &model.ExportTask{ID: "placeholder", Status: model.ExportStatusPending}
	}

	er := &ExportRow{
		task:         task,
		localization: localization,
	}
	er.ExtendBaseWidget(er)
	er.createUI()
	er.updateFromTask()
	return er
}

// SetCallbacks sets the action callbacks
func (er *ExportRow) SetCallbacks(
	onReveal func(filePath string),
	onOpen func(filePath string),
	onCopyPath func(filePath string),
) {
	er.onReveal = onReveal
	er.onOpen = onOpen
	er.onCopyPath = onCopyPath
}

// UpdateTask updates the row with new task data
func (er *ExportRow) UpdateTask(task *model.ExportTask) {
	if task == nil {
		log.Printf("Warning: UpdateTask called with nil task for existing export %s", er.task.ID)
		return
	}
	er.task = task
	er.updateFromTask()
	er.Refresh()
}

// createUI creates the UI components
func (er *ExportRow) createUI() {
	er.titleLabel = widget.NewLabel("")
	er.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	er.titleLabel.Truncation = fyne.TextTruncateEllipsis

	er.statusLabel = widget.NewLabel("")
	er.statusLabel.Alignment = fyne.TextAlignTrailing
	er.sizeLabel = widget.NewLabel("")
	er.sizeLabel.Alignment = fyne.TextAlignTrailing
	er.sizeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	// Read er.task at click time, not from the closure
	er.revealBtn = widget.NewButton(er.localization.GetText(KeyReveal), func() {
		if er.onReveal != nil && er.task.OutputPath != "" {
			er.onReveal(er.task.OutputPath)
		}
	})
	er.openBtn = widget.NewButton(er.localization.GetText(KeyOpen), func() {
		if er.onOpen != nil && er.task.OutputPath != "" {
			er.onOpen(er.task.OutputPath)
		}
	})
	er.copyBtn = widget.NewButton(er.localization.GetText(KeyCopyPath), func() {
		if er.onCopyPath != nil && er.task.OutputPath != "" {
			er.onCopyPath(er.task.OutputPath)
		}
	})
}

// updateFromTask updates UI components based on task state
func (er *ExportRow) updateFromTask() {
	er.titleLabel.SetText(er.task.GetDisplayTitle())

	switch er.task.Status {
	case model.ExportStatusError:
		er.statusLabel.Importance = widget.DangerImportance
		er.statusLabel.SetText(IconError + " " + er.task.Status.String())
	case model.ExportStatusCompleted:
		er.statusLabel.Importance = widget.SuccessImportance
		er.statusLabel.SetText(er.task.Status.String())
	case model.ExportStatusRendering:
		er.statusLabel.Importance = widget.HighImportance
		er.statusLabel.SetText(er.task.Status.String())
	default:
		er.statusLabel.Importance = widget.MediumImportance
		er.statusLabel.SetText(IconPending + " " + er.task.Status.String())
	}

	sizeText := er.task.GetSizeString()
	if d := er.task.Duration(); d > 0 {
		sizeText += MiddleDotSeparator + d.Round(time.Millisecond).String()
	}
	if er.task.Status == model.ExportStatusError && er.task.LastError != "" {
		sizeText = er.task.LastError
	}
	er.sizeLabel.SetText(sizeText)

	er.revealBtn.SetText(er.localization.GetText(KeyReveal))
	er.openBtn.SetText(er.localization.GetText(KeyOpen))
	er.copyBtn.SetText(er.localization.GetText(KeyCopyPath))
	er.updateButtons()
}

// updateButtons enables file actions only once the PNG has been written
func (er *ExportRow) updateButtons() {
	if er.task.Status == model.ExportStatusCompleted && er.task.OutputPath != "" {
		er.revealBtn.Enable()
		er.openBtn.Enable()
		er.copyBtn.Enable()
		return
	}
	er.revealBtn.Disable()
	er.openBtn.Disable()
	er.copyBtn.Disable()
}

// CreateRenderer creates the widget renderer
func (er *ExportRow) CreateRenderer() fyne.WidgetRenderer {
	info := container.NewVBox(
		fixedWidth(StatusLabelWidth, er.statusLabel),
		fixedWidth(SizeLabelWidth, er.sizeLabel),
	)
	actions := container.NewHBox(er.revealBtn, er.openBtn, er.copyBtn)

	// Actions are pinned to the right edge, the title takes the remaining space
	rightCluster := container.NewBorder(nil, nil, nil, actions, info)
	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, rightCluster, er.titleLabel),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}

// fixedWidth pins obj to at least w using a transparent spacer underneath
func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}
