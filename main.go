package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/amedcalf/substack-to-epub-gui/internal/config"
	"github.com/amedcalf/substack-to-epub-gui/internal/logview"
	"github.com/amedcalf/substack-to-epub-gui/internal/platform"
	"github.com/amedcalf/substack-to-epub-gui/internal/runner"
	"github.com/amedcalf/substack-to-epub-gui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.amedcalf.substack-to-epub-gui"
	AppName = "Substack Archiver"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	myWindow := myApp.NewWindow(AppName)

	// Restore the last window size; position is not under our control.
	settings := config.Load(platform.ConfigFilePath())
	myWindow.Resize(ui.WindowSizeFromGeometry(settings.String(config.KeyWindowGeometry)))

	sink := logview.NewSink()
	runnerSvc := runner.NewService(sink)

	ui.NewRootUI(myWindow, settings, runnerSvc, sink)

	myWindow.ShowAndRun()
}
