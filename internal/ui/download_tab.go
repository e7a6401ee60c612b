package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/amedcalf/substack-to-epub-gui/internal/command"
	"github.com/amedcalf/substack-to-epub-gui/internal/model"
	"github.com/amedcalf/substack-to-epub-gui/internal/runner"
	"github.com/amedcalf/substack-to-epub-gui/internal/validate"
)

// Download tab placeholders and hints
const (
	PlaceholderURL        = "https://yourname.substack.com/"
	PlaceholderOutputDir  = "Choose a folder…"
	PlaceholderDate       = "YYYY-MM-DD"
	PlaceholderExtensions = "pdf,docx,mp3"
	PlaceholderCookieVal  = "Paste your session cookie value here…"

	HintCookieSection = "Only needed if downloading articles from a paid Substack you subscribe to."
	HintCookieHowTo   = "How to find your cookie:\n" +
		"1. Log into Substack in your browser\n" +
		"2. Open DevTools (F12) → Application → Cookies → substack.com\n" +
		"3. Copy the value of 'substack.sid' (or 'connect.sid')"
)

// buildDownloadTab assembles the download form: source, destination, optional
// filters, advanced switches, cookie auth and the live command preview.
func (ui *RootUI) buildDownloadTab() fyne.CanvasObject {
	refresh := func(string) { ui.refreshDownloadPreview() }
	refreshBool := func(bool) { ui.refreshDownloadPreview() }

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(PlaceholderURL)
	ui.urlEntry.OnChanged = refresh

	ui.outputDirEntry = widget.NewEntry()
	ui.outputDirEntry.SetPlaceHolder(PlaceholderOutputDir)
	ui.outputDirEntry.OnChanged = refresh
	outputBrowse := widget.NewButton(LabelBrowse, func() {
		ui.browseFolder(ui.outputDirEntry)
	})

	ui.formatSelect = widget.NewSelect(model.FormatDisplayNames(), refresh)
	ui.formatSelect.SetSelected(model.DefaultFormatDisplayName())

	// Date range, hidden until enabled
	ui.afterEntry = widget.NewEntry()
	ui.afterEntry.SetPlaceHolder(PlaceholderDate)
	ui.afterEntry.OnChanged = refresh
	ui.beforeEntry = widget.NewEntry()
	ui.beforeEntry.SetPlaceHolder(PlaceholderDate)
	ui.beforeEntry.OnChanged = refresh
	ui.dateBox = container.NewGridWithColumns(2,
		container.NewBorder(nil, nil, widget.NewLabel("After:"), nil, ui.afterEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Before:"), nil, ui.beforeEntry),
	)
	ui.dateBox.Hide()
	ui.datesCheck = widget.NewCheck("Filter by date range", func(checked bool) {
		if checked {
			ui.dateBox.Show()
		} else {
			ui.dateBox.Hide()
		}
		ui.refreshDownloadPreview()
	})

	// Image options, hidden until enabled
	ui.imageQuality = widget.NewSelect(model.ImageQualityOptions(), refresh)
	ui.imageQuality.SetSelected(model.ImageQualityLow)
	ui.imagesDirEntry = widget.NewEntry()
	ui.imagesDirEntry.SetText(model.DefaultImagesDir)
	ui.imagesDirEntry.OnChanged = refresh
	ui.imageOptionsBox = container.NewGridWithColumns(2,
		container.NewBorder(nil, nil, widget.NewLabel("Quality:"), nil, ui.imageQuality),
		container.NewBorder(nil, nil, widget.NewLabel("Images subfolder:"), nil, ui.imagesDirEntry),
	)
	ui.imageOptionsBox.Hide()
	ui.imagesCheck = widget.NewCheck("Download images locally", func(checked bool) {
		if checked {
			ui.imageOptionsBox.Show()
		} else {
			ui.imageOptionsBox.Hide()
		}
		ui.refreshDownloadPreview()
	})

	// File attachment options, hidden until enabled
	ui.fileExtsEntry = widget.NewEntry()
	ui.fileExtsEntry.SetPlaceHolder(PlaceholderExtensions)
	ui.fileExtsEntry.OnChanged = refresh
	ui.filesDirEntry = widget.NewEntry()
	ui.filesDirEntry.SetText(model.DefaultFilesDir)
	ui.filesDirEntry.OnChanged = refresh
	ui.fileOptionsBox = container.NewGridWithColumns(2,
		container.NewBorder(nil, nil, widget.NewLabel("Extensions (blank = all):"), nil, ui.fileExtsEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Files subfolder:"), nil, ui.filesDirEntry),
	)
	ui.fileOptionsBox.Hide()
	ui.filesCheck = widget.NewCheck("Download file attachments", func(checked bool) {
		if checked {
			ui.fileOptionsBox.Show()
		} else {
			ui.fileOptionsBox.Hide()
		}
		ui.refreshDownloadPreview()
	})

	// Advanced switches
	ui.sourceURLCheck = widget.NewCheck("Add source URL to each post", refreshBool)
	ui.sourceURLCheck.SetChecked(true)
	ui.archiveCheck = widget.NewCheck("Create archive index page (index.md / index.html)", refreshBool)
	ui.verboseCheck = widget.NewCheck("Verbose output", refreshBool)
	ui.dryRunCheck = widget.NewCheck("Dry run (preview command only, no actual download)", refreshBool)
	ui.rateEntry = widget.NewEntry()
	ui.rateEntry.SetText(model.DefaultRate)
	ui.rateEntry.OnChanged = refresh

	// Cookie authentication, collapsed by default
	ui.cookieNameSelect = widget.NewSelect(model.CookieNameOptions, refresh)
	ui.cookieNameSelect.SetSelected(model.DefaultCookieName)
	ui.cookieValueEntry = widget.NewPasswordEntry()
	ui.cookieValueEntry.SetPlaceHolder(PlaceholderCookieVal)
	ui.cookieValueEntry.OnChanged = refresh
	ui.cookieBox = container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Cookie name:"), nil, ui.cookieNameSelect),
		container.NewBorder(nil, nil, widget.NewLabel("Cookie value:"), nil, ui.cookieValueEntry),
		hintLabel(HintCookieHowTo),
	)
	ui.cookieBox.Hide()
	ui.cookieToggleBtn = widget.NewButton(LabelShowCookies, ui.onToggleCookieSection)

	ui.downloadPreview = widget.NewLabel("")
	ui.downloadPreview.TextStyle = fyne.TextStyle{Monospace: true}
	ui.downloadPreview.Wrapping = fyne.TextWrapBreak

	ui.downloadBtn = widget.NewButton(LabelStartDownload, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		sectionLabel("Source"),
		container.NewBorder(nil, nil, widget.NewLabel("Substack URL:"), nil, ui.urlEntry),

		sectionLabel("Destination"),
		container.NewBorder(nil, nil, widget.NewLabel("Output folder:"), outputBrowse, ui.outputDirEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Format:"), nil, ui.formatSelect),

		sectionLabel("Date Range (optional)"),
		ui.datesCheck,
		ui.dateBox,

		sectionLabel("Image Options"),
		ui.imagesCheck,
		ui.imageOptionsBox,

		sectionLabel("File Attachments"),
		ui.filesCheck,
		ui.fileOptionsBox,

		sectionLabel("Advanced Options"),
		ui.sourceURLCheck,
		ui.archiveCheck,
		ui.verboseCheck,
		ui.dryRunCheck,
		container.NewBorder(nil, nil, widget.NewLabel("Rate limit (requests/sec):"), nil, ui.rateEntry),

		sectionLabel("Paid Content Authentication"),
		hintLabel(HintCookieSection),
		container.NewHBox(ui.cookieToggleBtn),
		ui.cookieBox,

		sectionLabel("Command Preview"),
		ui.downloadPreview,

		ui.downloadBtn,
	)

	return container.NewVScroll(form)
}

// collectDownloadOptions reads the download form into an options value.
func (ui *RootUI) collectDownloadOptions() model.DownloadOptions {
	return model.DownloadOptions{
		ExecutablePath: ui.sbstckdlEntry.Text,
		URL:            ui.urlEntry.Text,
		OutputDir:      ui.outputDirEntry.Text,
		Format:         ui.formatSelect.Selected,

		DatesEnabled: ui.datesCheck.Checked,
		AfterDate:    ui.afterEntry.Text,
		BeforeDate:   ui.beforeEntry.Text,

		DownloadImages: ui.imagesCheck.Checked,
		ImageQuality:   ui.imageQuality.Selected,
		ImagesDir:      ui.imagesDirEntry.Text,

		DownloadFiles:  ui.filesCheck.Checked,
		FileExtensions: ui.fileExtsEntry.Text,
		FilesDir:       ui.filesDirEntry.Text,

		AddSourceURL:  ui.sourceURLCheck.Checked,
		CreateArchive: ui.archiveCheck.Checked,
		Rate:          ui.rateEntry.Text,
		Verbose:       ui.verboseCheck.Checked,
		DryRun:        ui.dryRunCheck.Checked,

		CookieName:  ui.cookieNameSelect.Selected,
		CookieValue: ui.cookieValueEntry.Text,
	}
}

// refreshDownloadPreview recomputes the command preview from current form
// state. Called from every download-tab change handler. Change handlers fire
// during widget construction, before the rest of the form exists, so bail out
// until setup is complete.
func (ui *RootUI) refreshDownloadPreview() {
	if ui.downloadPreview == nil || ui.sbstckdlEntry == nil {
		return
	}
	args := command.BuildDownloadArgs(ui.collectDownloadOptions())
	ui.downloadPreview.SetText(command.DisplayString(args))
}

// onToggleCookieSection expands or collapses the cookie settings.
func (ui *RootUI) onToggleCookieSection() {
	if ui.cookieBox.Visible() {
		ui.cookieBox.Hide()
		ui.cookieToggleBtn.SetText(LabelShowCookies)
	} else {
		ui.cookieBox.Show()
		ui.cookieToggleBtn.SetText(LabelHideCookies)
	}
}

// onDownloadClick validates the form and launches the downloader.
func (ui *RootUI) onDownloadClick() {
	if ui.runner.Status().IsRunning() {
		ui.sink.Publish(runner.BusyWarning)
		return
	}

	opts := ui.collectDownloadOptions()
	if err := validate.Download(opts); err != nil {
		dialog.ShowInformation(TitleValidationError, err.Error(), ui.window)
		return
	}

	ui.lastDownloadDir = strings.TrimSpace(opts.OutputDir)
	ui.lastRunDryRun = opts.DryRun

	if err := ui.runner.Start(model.OperationDownload, command.BuildDownloadArgs(opts)); err != nil {
		return
	}
	ui.setRunning(model.OperationDownload)
}

// browseFolder opens a folder picker writing the chosen path into entry.
func (ui *RootUI) browseFolder(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, ui.window)
}
