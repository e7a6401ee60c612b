package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/amedcalf/substack-to-epub-gui/internal/config"
)

// Settings tab texts
const (
	PlaceholderToolPath = "Leave blank to use system PATH"

	HintExecutablePaths = "If sbstck-dl or pandoc are on your system PATH you can leave these blank.\n" +
		"Otherwise browse to the executable file."

	SettingsSavedLogLine = "[Settings saved]"

	FirstTimeSetupGuide = "Install sbstck-dl:\n\n" +
		"    pip install sbstck-dl\n\n" +
		"After installing sbstck-dl via pip, it is usually found automatically\n" +
		"(no path needed above). If it is not found, use Browse to locate it.\n\n" +
		"Pandoc is installed at its default location and pre-filled above.\n" +
		"If you installed it elsewhere, update the path and click Save Settings."
)

// buildSettingsTab assembles the executable path settings and setup guidance.
func (ui *RootUI) buildSettingsTab() fyne.CanvasObject {
	refresh := func(string) { ui.refreshDownloadPreview() }

	ui.sbstckdlEntry = widget.NewEntry()
	ui.sbstckdlEntry.SetPlaceHolder(PlaceholderToolPath)
	ui.sbstckdlEntry.OnChanged = refresh
	sbstckdlBrowse := widget.NewButton(LabelBrowse, func() {
		ui.browseExecutable(ui.sbstckdlEntry)
	})

	ui.pandocEntry = widget.NewEntry()
	ui.pandocEntry.SetPlaceHolder(PlaceholderToolPath)
	ui.pandocEntry.OnChanged = func(string) { ui.refreshConvertViews() }
	pandocBrowse := widget.NewButton(LabelBrowse, func() {
		ui.browseExecutable(ui.pandocEntry)
	})

	ui.saveSettingsBtn = widget.NewButton(LabelSaveSettings, ui.onSaveSettings)

	guide := widget.NewLabel(FirstTimeSetupGuide)
	guide.TextStyle = fyne.TextStyle{Monospace: true}
	guide.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		sectionLabel("Executable Paths"),
		hintLabel(HintExecutablePaths),
		container.NewBorder(nil, nil, widget.NewLabel("sbstck-dl path:"), sbstckdlBrowse, ui.sbstckdlEntry),
		container.NewBorder(nil, nil, widget.NewLabel("pandoc path:"), pandocBrowse, ui.pandocEntry),
		container.NewHBox(ui.saveSettingsBtn),

		sectionLabel("First-Time Setup"),
		guide,
	)

	return container.NewVScroll(form)
}

// onSaveSettings persists the tool paths and briefly acknowledges on the
// button itself.
func (ui *RootUI) onSaveSettings() {
	ui.settings.SetString(config.KeySbstckdlPath, ui.sbstckdlEntry.Text)
	ui.settings.SetString(config.KeyPandocPath, ui.pandocEntry.Text)

	if err := ui.settings.Save(); err != nil {
		log.Printf("Failed to save settings: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.sink.Publish(SettingsSavedLogLine)
	ui.saveSettingsBtn.SetText(LabelSettingsSaved)
	time.AfterFunc(SaveFeedbackDelay, func() {
		fyne.Do(func() {
			ui.saveSettingsBtn.SetText(LabelSaveSettings)
		})
	})
}

// browseExecutable opens a file picker writing the chosen path into entry.
func (ui *RootUI) browseExecutable(entry *widget.Entry) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		entry.SetText(path)
	}, ui.window)
}
