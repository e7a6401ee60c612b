package command

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/amedcalf/substack-to-epub-gui/internal/model"
)

// Characters that force an argument to be quoted in the display string.
const shellSensitiveChars = `&|<>()"`

// DisplayString renders an argument vector as a single human-readable command
// line. Elements that are empty, contain a space, or contain shell-sensitive
// characters are wrapped in double quotes.
func DisplayString(args []string) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if needsQuoting(arg) {
			parts = append(parts, `"`+arg+`"`)
		} else {
			parts = append(parts, arg)
		}
	}
	return strings.Join(parts, " ")
}

func needsQuoting(arg string) bool {
	return arg == "" || strings.Contains(arg, " ") || strings.ContainsAny(arg, shellSensitiveChars)
}

// ConvertPreviewPlaceholder is shown while no pandoc command can be built.
const ConvertPreviewPlaceholder = "(Select a source folder containing .md files and an output path)"

// ConvertPreview renders the abbreviated multi-line pandoc command shown on
// the ePub tab: executable, the first input file, a "... (N files)" marker,
// then the options. Returns the placeholder text when no command is ready.
func ConvertPreview(opts model.ConvertOptions) string {
	if _, ok := BuildConvertArgs(opts); !ok {
		return ConvertPreviewPlaceholder
	}

	sourceDir := strings.TrimSpace(opts.SourceDir)
	files := MarkdownFiles(sourceDir)

	exe := strings.TrimSpace(opts.ExecutablePath)
	if exe == "" {
		exe = ConverterCommand
	}
	output := strings.TrimSpace(opts.OutputPath)
	if output == "" {
		output = "<output.epub>"
	}
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = model.DefaultEpubTitle
	}
	author := strings.TrimSpace(opts.Author)
	if author == "" {
		author = model.DefaultEpubAuthor
	}
	split := strings.TrimSpace(opts.SplitLevel)
	if split == "" {
		split = model.DefaultSplitLevel
	}

	lines := []string{exe}
	if len(files) > 0 {
		lines = append(lines, fmt.Sprintf("  %q", filepath.Join(sourceDir, files[0])))
		if len(files) > 1 {
			lines = append(lines, fmt.Sprintf("  ... (%d .md files total, sorted by name)", len(files)))
		}
	}
	lines = append(lines, fmt.Sprintf("  -o %q", output))
	lines = append(lines, fmt.Sprintf("  --metadata title=%q", title))
	lines = append(lines, fmt.Sprintf("  --metadata author=%q", author))
	if opts.IncludeTOC {
		lines = append(lines, "  "+FlagTOC)
	}
	lines = append(lines, "  "+SplitLevelPrefix+split)

	return strings.Join(lines, " \\\n")
}
