package ui

import (
	"fmt"
	"os"
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

// ePub tab placeholders and hints
const (
	PlaceholderSourceDir  = "Folder containing .md files…"
	PlaceholderEpubOutput = "Save ePub as…"
	PlaceholderTitle      = "e.g. My Substack Archive"
	PlaceholderAuthor     = "e.g. Jane Smith"

	HintConvertSource = "Point this to the folder where you saved your downloaded Markdown files."

	FilesFoundNoFolder   = "(No folder selected)"
	FilesFoundMissingDir = "(Folder does not exist)"
	FilesFoundNone       = "No .md files found (excluding index.md).\n" +
		"Make sure you downloaded using Markdown format first."
)

// buildConvertTab assembles the ePub conversion form.
func (ui *RootUI) buildConvertTab() fyne.CanvasObject {
	refresh := func(string) { ui.refreshConvertViews() }

	ui.sourceDirEntry = widget.NewEntry()
	ui.sourceDirEntry.SetPlaceHolder(PlaceholderSourceDir)
	ui.sourceDirEntry.OnChanged = refresh
	sourceBrowse := widget.NewButton(LabelBrowse, func() {
		ui.browseFolder(ui.sourceDirEntry)
	})

	ui.filesFoundLabel = widget.NewLabel(FilesFoundNoFolder)
	ui.filesFoundLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.filesFoundLabel.Wrapping = fyne.TextWrapWord

	ui.epubOutputEntry = widget.NewEntry()
	ui.epubOutputEntry.SetPlaceHolder(PlaceholderEpubOutput)
	ui.epubOutputEntry.OnChanged = refresh
	outputBrowse := widget.NewButton(LabelBrowse, ui.onBrowseEpubOutput)

	ui.titleEntry = widget.NewEntry()
	ui.titleEntry.SetPlaceHolder(PlaceholderTitle)
	ui.titleEntry.OnChanged = refresh

	ui.authorEntry = widget.NewEntry()
	ui.authorEntry.SetPlaceHolder(PlaceholderAuthor)
	ui.authorEntry.OnChanged = refresh

	ui.tocCheck = widget.NewCheck("Include Table of Contents", func(bool) {
		ui.refreshConvertViews()
	})
	ui.tocCheck.SetChecked(true)

	ui.splitEntry = widget.NewEntry()
	ui.splitEntry.SetText(model.DefaultSplitLevel)
	ui.splitEntry.OnChanged = refresh

	ui.convertPreview = widget.NewLabel("")
	ui.convertPreview.TextStyle = fyne.TextStyle{Monospace: true}
	ui.convertPreview.Wrapping = fyne.TextWrapBreak

	ui.convertBtn = widget.NewButton(LabelConvert, ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		sectionLabel("Source"),
		hintLabel(HintConvertSource),
		container.NewBorder(nil, nil, widget.NewLabel("Source folder (.md files):"), sourceBrowse, ui.sourceDirEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Files found:"), nil, ui.filesFoundLabel),

		sectionLabel("Destination"),
		container.NewBorder(nil, nil, widget.NewLabel("Output .epub file:"), outputBrowse, ui.epubOutputEntry),

		sectionLabel("Book Metadata"),
		container.NewBorder(nil, nil, widget.NewLabel("Book title:"), nil, ui.titleEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Author:"), nil, ui.authorEntry),

		sectionLabel("ePub Options"),
		ui.tocCheck,
		container.NewBorder(nil, nil, widget.NewLabel("Chapter split level (1 = each article is a chapter):"), nil, ui.splitEntry),

		sectionLabel("Command Preview"),
		ui.convertPreview,

		ui.convertBtn,
	)

	return container.NewVScroll(form)
}

// collectConvertOptions reads the conversion form into an options value.
func (ui *RootUI) collectConvertOptions() model.ConvertOptions {
	return model.ConvertOptions{
		ExecutablePath: ui.pandocEntry.Text,
		SourceDir:      ui.sourceDirEntry.Text,
		OutputPath:     ui.epubOutputEntry.Text,
		Title:          ui.titleEntry.Text,
		Author:         ui.authorEntry.Text,
		IncludeTOC:     ui.tocCheck.Checked,
		SplitLevel:     ui.splitEntry.Text,
	}
}

// refreshConvertViews recomputes the files-found listing and the abbreviated
// command preview. Called from every conversion-tab change handler. Change
// handlers fire during widget construction, before the rest of the form
// exists, so bail out until setup is complete.
func (ui *RootUI) refreshConvertViews() {
	if ui.convertPreview == nil || ui.pandocEntry == nil {
		return
	}
	ui.filesFoundLabel.SetText(ui.filesFoundText())
	ui.convertPreview.SetText(command.ConvertPreview(ui.collectConvertOptions()))
}

// filesFoundText describes the convertible files in the selected source dir.
func (ui *RootUI) filesFoundText() string {
	source := strings.TrimSpace(ui.sourceDirEntry.Text)
	if source == "" {
		return FilesFoundNoFolder
	}
	if info, err := os.Stat(source); err != nil || !info.IsDir() {
		return FilesFoundMissingDir
	}

	files := command.MarkdownFiles(source)
	if len(files) == 0 {
		return FilesFoundNone
	}
	return fmt.Sprintf("Found %d file(s):\n%s", len(files), strings.Join(files, "\n"))
}

// onConvertClick validates the form and launches pandoc.
func (ui *RootUI) onConvertClick() {
	if ui.runner.Status().IsRunning() {
		ui.sink.Publish(runner.BusyWarning)
		return
	}

	opts := ui.collectConvertOptions()
	if err := validate.Convert(opts); err != nil {
		dialog.ShowInformation(TitleValidationError, err.Error(), ui.window)
		return
	}

	args, ok := command.BuildConvertArgs(opts)
	if !ok {
		dialog.ShowInformation(TitleValidationError, "Could not build pandoc command.", ui.window)
		return
	}

	ui.lastConvertOutput = strings.TrimSpace(opts.OutputPath)

	if err := ui.runner.Start(model.OperationConvert, args); err != nil {
		return
	}
	ui.setRunning(model.OperationConvert)
}

// onBrowseEpubOutput opens a save dialog for the target ePub, appending the
// extension when the user leaves it off.
func (ui *RootUI) onBrowseEpubOutput() {
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if !strings.HasSuffix(strings.ToLower(path), ".epub") {
			path += ".epub"
		}
		ui.epubOutputEntry.SetText(path)
	}, ui.window)
	saveDialog.SetFileName(SuggestedEpubName)
	saveDialog.Show()
}
