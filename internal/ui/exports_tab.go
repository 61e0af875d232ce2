package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/callshot/internal/model"
)

// buildExportsTab creates the export history list
func (ui *RootUI) buildExportsTab() fyne.CanvasObject {
	ui.exportTasks = ui.exportSvc.GetAllTasks()

	ui.exportList = widget.NewList(
		func() int { return len(ui.exportTasks) },
		func() fyne.CanvasObject {
			row := NewExportRow(nil, ui.localization)
			row.SetCallbacks(ui.onRevealFile, ui.onOpenFile, ui.onCopyPath)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.exportTasks) {
				return
			}
			if row, ok := obj.(*ExportRow); ok {
				row.UpdateTask(ui.exportTasks[id])
			}
		},
	)

	ui.noExportsLabel = widget.NewLabel(ui.localization.GetText(KeyNoExports))
	ui.noExportsLabel.Alignment = fyne.TextAlignCenter
	if len(ui.exportTasks) > 0 {
		ui.noExportsLabel.Hide()
	}

	return container.NewBorder(ui.noExportsLabel, nil, nil, nil, ui.exportList)
}

// onExportUpdate is the export service callback; it may run on any goroutine
func (ui *RootUI) onExportUpdate(task *model.ExportTask) {
	fyne.Do(func() {
		ui.exportTasks = ui.exportSvc.GetAllTasks()
		if ui.exportList == nil {
			return
		}
		ui.noExportsLabel.Hide()
		ui.exportList.Refresh()
	})
}
