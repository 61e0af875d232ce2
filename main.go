package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/callshot/internal/calllog"
	"github.com/ytget/callshot/internal/config"
	"github.com/ytget/callshot/internal/export"
	"github.com/ytget/callshot/internal/platform"
	"github.com/ytget/callshot/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.callshot"
	AppName = "Callshot"

	WindowWidth  = 1100
	WindowHeight = 900
)

func main() {
	fmt.Printf("Callshot v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	exportDir := settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		fmt.Printf("failed to ensure export dir: %v\n", err)
	}

	exportSvc := export.NewService(exportDir, export.SoftwareRasterizer{})
	store := calllog.NewStore(calllog.DefaultEntries()...)

	ui.NewRootUI(myWindow, myApp, exportSvc, store)

	myWindow.ShowAndRun()
}
