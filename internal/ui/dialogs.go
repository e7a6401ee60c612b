package ui

import (
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/amedcalf/substack-to-epub-gui/internal/platform"
)

// Completion dialog texts
const (
	HeadingDownloadDone = "✓  Download Complete!"
	HeadingDryRunDone   = "🔍  Dry Run Complete"
	HeadingEpubDone     = "✓  ePub Created!"

	DetailDryRunDone = "No files were downloaded. This was a preview only.\n\n" +
		"Uncheck 'Dry run' and click Start Download to download for real."
)

// Tab indices matching the order in setupUI
const (
	tabIndexDownload = 0
	tabIndexConvert  = 1
)

// showDownloadDoneDialog is the post-download dialog. A real download offers
// jumping straight into conversion or opening the output folder; a dry run
// only offers returning to the app.
func (ui *RootUI) showDownloadDoneDialog(outputFolder string, isDryRun bool) {
	heading := HeadingDownloadDone
	detail := "Files saved to:\n" + outputFolder
	if isDryRun {
		heading = HeadingDryRunDone
		detail = DetailDryRunDone
	}

	var dlg *dialog.CustomDialog

	buttons := container.NewHBox()
	if !isDryRun {
		buttons.Add(widget.NewButton(LabelCreateEpub, func() {
			dlg.Hide()
			ui.prefillConversion(outputFolder)
		}))
		buttons.Add(widget.NewButton(LabelShowFiles, func() {
			dlg.Hide()
			ui.openFolder(outputFolder)
		}))
	}
	buttons.Add(widget.NewButton(LabelReturnToApp, func() {
		dlg.Hide()
	}))

	dlg = dialog.NewCustomWithoutButtons(TitleDownloadComplete, dialogContent(heading, detail, buttons), ui.window)
	dlg.Show()
}

// showConvertDoneDialog is the post-conversion dialog.
func (ui *RootUI) showConvertDoneDialog(epubPath string) {
	epubFolder := filepath.Dir(epubPath)
	if epubFolder == "." {
		epubFolder = epubPath
	}

	var dlg *dialog.CustomDialog

	buttons := container.NewHBox(
		widget.NewButton(LabelShowFile, func() {
			dlg.Hide()
			ui.openFolder(epubFolder)
		}),
		widget.NewButton(LabelReturnToApp, func() {
			dlg.Hide()
		}),
	)

	dlg = dialog.NewCustomWithoutButtons(TitleConversionComplete, dialogContent(HeadingEpubDone, "Saved to:\n"+epubPath, buttons), ui.window)
	dlg.Show()
}

// prefillConversion carries the finished download into the conversion tab:
// source folder, a suggested output name beside it, and the tab switch.
func (ui *RootUI) prefillConversion(outputFolder string) {
	ui.sourceDirEntry.SetText(filepath.Clean(outputFolder))
	ui.epubOutputEntry.SetText(filepath.Join(outputFolder, SuggestedEpubName))
	ui.tabs.SelectIndex(tabIndexConvert)
	ui.refreshConvertViews()
}

// openFolder reveals a folder in the system file manager.
func (ui *RootUI) openFolder(path string) {
	if err := platform.OpenFolderInManager(path); err != nil {
		log.Printf("Failed to open folder %s: %v", path, err)
		dialog.ShowError(err, ui.window)
	}
}

// dialogContent lays out a completion dialog: bold heading, detail text, a
// separator, then the action buttons centered.
func dialogContent(heading, detail string, buttons *fyne.Container) fyne.CanvasObject {
	headingLabel := widget.NewLabelWithStyle(heading, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	detailLabel := widget.NewLabel(detail)
	detailLabel.Alignment = fyne.TextAlignCenter
	detailLabel.Wrapping = fyne.TextWrapWord

	return container.NewVBox(
		headingLabel,
		detailLabel,
		widget.NewSeparator(),
		container.NewCenter(buttons),
	)
}
