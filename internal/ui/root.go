package ui

import (
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/amedcalf/substack-to-epub-gui/internal/config"
	"github.com/amedcalf/substack-to-epub-gui/internal/logview"
	"github.com/amedcalf/substack-to-epub-gui/internal/model"
	"github.com/amedcalf/substack-to-epub-gui/internal/runner"
)

// Tab names
const (
	TabDownload = "Download"
	TabConvert  = "ePub Conversion"
	TabSettings = "Settings"
)

// RootUI represents the main UI structure: three tabs over a shared log panel.
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	runner   runner.Runner
	sink     *logview.Sink
	buffer   *logview.Buffer

	tabs *container.AppTabs

	// Download tab
	urlEntry         *widget.Entry
	outputDirEntry   *widget.Entry
	formatSelect     *widget.Select
	datesCheck       *widget.Check
	afterEntry       *widget.Entry
	beforeEntry      *widget.Entry
	dateBox          *fyne.Container
	imagesCheck      *widget.Check
	imageQuality     *widget.Select
	imagesDirEntry   *widget.Entry
	imageOptionsBox  *fyne.Container
	filesCheck       *widget.Check
	fileExtsEntry    *widget.Entry
	filesDirEntry    *widget.Entry
	fileOptionsBox   *fyne.Container
	sourceURLCheck   *widget.Check
	archiveCheck     *widget.Check
	verboseCheck     *widget.Check
	dryRunCheck      *widget.Check
	rateEntry        *widget.Entry
	cookieToggleBtn  *widget.Button
	cookieBox        *fyne.Container
	cookieNameSelect *widget.Select
	cookieValueEntry *widget.Entry
	downloadPreview  *widget.Label
	downloadBtn      *widget.Button

	// ePub Conversion tab
	sourceDirEntry  *widget.Entry
	filesFoundLabel *widget.Label
	epubOutputEntry *widget.Entry
	titleEntry      *widget.Entry
	authorEntry     *widget.Entry
	tocCheck        *widget.Check
	splitEntry      *widget.Entry
	convertPreview  *widget.Label
	convertBtn      *widget.Button

	// Settings tab
	sbstckdlEntry   *widget.Entry
	pandocEntry     *widget.Entry
	saveSettingsBtn *widget.Button

	// Log panel
	logEntry *widget.Entry
	stopLog  chan struct{}

	// Captured at launch so the completion dialog routes correctly even if
	// the form changed while the process ran.
	lastDownloadDir   string
	lastConvertOutput string
	lastRunDryRun     bool
}

// NewRootUI creates and initializes the main UI. The runner's completion
// callback and the log drain loop are wired here.
func NewRootUI(window fyne.Window, settings *config.Settings, run runner.Runner, sink *logview.Sink) *RootUI {
	ui := &RootUI{
		window:   window,
		settings: settings,
		runner:   run,
		sink:     sink,
		buffer:   logview.NewBuffer(),
		stopLog:  make(chan struct{}),
	}

	ui.runner.SetDoneCallback(ui.onRunFinished)

	ui.setupUI()
	ui.restoreLastSession()
	ui.refreshDownloadPreview()
	ui.refreshConvertViews()

	go ui.runLogTicker()

	window.SetCloseIntercept(ui.onClose)

	return ui
}

// setupUI creates and arranges all UI components.
func (ui *RootUI) setupUI() {
	ui.tabs = container.NewAppTabs(
		container.NewTabItem(TabDownload, ui.buildDownloadTab()),
		container.NewTabItem(TabConvert, ui.buildConvertTab()),
		container.NewTabItem(TabSettings, ui.buildSettingsTab()),
	)

	content := container.NewBorder(
		nil,                  // top
		ui.buildLogSection(), // bottom
		nil,                  // left
		nil,                  // right
		ui.tabs,              // center
	)

	// Transparent spacer enforcing the minimum window size.
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	ui.window.SetContent(container.NewStack(spacer, content))
}

// buildLogSection creates the always-visible output log under the tabs.
func (ui *RootUI) buildLogSection() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Output Log", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	clearBtn := widget.NewButton(LabelClearLog, ui.onClearLog)

	ui.logEntry = widget.NewMultiLineEntry()
	ui.logEntry.Wrapping = fyne.TextWrapWord
	ui.logEntry.TextStyle = fyne.TextStyle{Monospace: true}
	ui.logEntry.Disable()

	logScroll := container.NewVScroll(ui.logEntry)
	logScroll.SetMinSize(fyne.NewSize(0, 160))

	header := container.NewBorder(nil, nil, title, clearBtn)
	return container.NewBorder(header, nil, nil, nil, logScroll)
}

// runLogTicker drains the sink on a fixed cadence and appends to the display
// buffer on the UI thread. Runs until the window is closed.
func (ui *RootUI) runLogTicker() {
	ticker := time.NewTicker(LogPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ui.stopLog:
			return
		case <-ticker.C:
			messages := ui.sink.Drain()
			if len(messages) == 0 {
				continue
			}
			fyne.Do(func() {
				for _, message := range messages {
					ui.buffer.Append(message)
				}
				ui.logEntry.SetText(ui.buffer.String())
				ui.logEntry.CursorRow = ui.buffer.Len()
				ui.logEntry.Refresh()
			})
		}
	}
}

// onClearLog empties the log panel.
func (ui *RootUI) onClearLog() {
	ui.buffer.Clear()
	ui.logEntry.SetText("")
}

// onRunFinished handles runner completion. Invoked from the runner goroutine;
// all UI work is marshalled onto the Fyne thread.
func (ui *RootUI) onRunFinished(op model.Operation, success bool) {
	fyne.Do(func() {
		ui.downloadBtn.SetText(LabelStartDownload)
		ui.downloadBtn.Enable()
		ui.convertBtn.SetText(LabelConvert)
		ui.convertBtn.Enable()

		if !success {
			// Errors are already visible in the log.
			return
		}

		switch op {
		case model.OperationDownload:
			ui.showDownloadDoneDialog(ui.lastDownloadDir, ui.lastRunDryRun)
		case model.OperationConvert:
			ui.showConvertDoneDialog(ui.lastConvertOutput)
		}
	})
}

// setRunning flips the action buttons into their busy state.
func (ui *RootUI) setRunning(op model.Operation) {
	ui.downloadBtn.Disable()
	ui.convertBtn.Disable()
	switch op {
	case model.OperationDownload:
		ui.downloadBtn.SetText(LabelDownloading)
	case model.OperationConvert:
		ui.convertBtn.SetText(LabelConverting)
	}
}

// restoreLastSession seeds the form fields from the persisted settings.
func (ui *RootUI) restoreLastSession() {
	ui.urlEntry.SetText(ui.settings.String(config.KeyLastURL))
	ui.outputDirEntry.SetText(ui.settings.String(config.KeyLastOutputDir))
	// A stale persisted display name is ignored by the select; the command
	// builder would map it to the default format anyway.
	ui.formatSelect.SetSelected(ui.settings.String(config.KeyLastFormat))

	ui.sourceDirEntry.SetText(ui.settings.String(config.KeyLastEpubSourceDir))
	ui.epubOutputEntry.SetText(ui.settings.String(config.KeyLastEpubOutputFile))
	ui.authorEntry.SetText(ui.settings.String(config.KeyLastAuthor))

	ui.sbstckdlEntry.SetText(ui.settings.String(config.KeySbstckdlPath))
	ui.pandocEntry.SetText(ui.settings.String(config.KeyPandocPath))
}

// onClose persists window geometry and last-used fields, then closes. The
// cookie value is intentionally never saved.
func (ui *RootUI) onClose() {
	size := ui.window.Canvas().Size()
	ui.settings.SetString(config.KeyWindowGeometry, GeometryFromWindowSize(size))
	ui.settings.SetString(config.KeyLastURL, ui.urlEntry.Text)
	ui.settings.SetString(config.KeyLastOutputDir, ui.outputDirEntry.Text)
	ui.settings.SetString(config.KeyLastFormat, ui.formatSelect.Selected)
	ui.settings.SetString(config.KeyLastEpubSourceDir, ui.sourceDirEntry.Text)
	ui.settings.SetString(config.KeyLastEpubOutputFile, ui.epubOutputEntry.Text)
	ui.settings.SetString(config.KeyLastAuthor, ui.authorEntry.Text)

	if err := ui.settings.Save(); err != nil {
		log.Printf("Failed to save settings on close: %v", err)
	}

	close(ui.stopLog)
	ui.window.Close()
}

// sectionLabel returns a bold section heading in the form layout.
func sectionLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

// hintLabel returns the small explanatory text used under section headings.
func hintLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	return label
}
