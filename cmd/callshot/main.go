package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/callshot/internal/calllog"
	"github.com/ytget/callshot/internal/config"
	"github.com/ytget/callshot/internal/export"
	"github.com/ytget/callshot/internal/ui"
)

func main() {
	myApp := app.NewWithID("com.ytget.callshot")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow("Callshot")
	myWindow.Resize(fyne.NewSize(1100, 900))

	exportSvc := export.NewService(config.NewSettings(myApp).GetExportDirectory(), nil)
	ui.NewRootUI(myWindow, myApp, exportSvc, calllog.NewStore(calllog.DefaultEntries()...))

	myWindow.ShowAndRun()
}
