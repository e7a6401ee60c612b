// Package validate implements the pre-flight checks run before a command is
// built and launched. Checks are pure; the first failing rule wins and is
// returned as a single user-facing message.
package validate

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/amedcalf/substack-to-epub-gui/internal/command"
	"github.com/amedcalf/substack-to-epub-gui/internal/model"
)

// URL scheme prefix required for download targets
const urlSchemePrefix = "http"

// Output extension required for conversion targets
const epubExtension = ".epub"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Download checks download form state. Returns nil when a run may proceed.
func Download(opts model.DownloadOptions) error {
	url := strings.TrimSpace(opts.URL)
	if url == "" {
		return errors.New("Substack URL is required.")
	}
	if !strings.HasPrefix(url, urlSchemePrefix) {
		return errors.New("URL must start with http:// or https://")
	}

	if strings.TrimSpace(opts.OutputDir) == "" {
		return errors.New("Please select an output folder.")
	}

	if rate := strings.TrimSpace(opts.Rate); rate != "" {
		value, err := strconv.ParseFloat(rate, 64)
		if err != nil {
			return errors.New("Rate must be a number (e.g. 1 or 0.5).")
		}
		if value <= 0 {
			return errors.New("Rate must be a positive number.")
		}
	}

	if opts.DatesEnabled {
		if after := strings.TrimSpace(opts.AfterDate); after != "" && !datePattern.MatchString(after) {
			return errors.New("After date must be in YYYY-MM-DD format.")
		}
		if before := strings.TrimSpace(opts.BeforeDate); before != "" && !datePattern.MatchString(before) {
			return errors.New("Before date must be in YYYY-MM-DD format.")
		}
	}

	return nil
}

// Convert checks conversion form state. Returns nil when a run may proceed.
func Convert(opts model.ConvertOptions) error {
	source := strings.TrimSpace(opts.SourceDir)
	if source == "" {
		return errors.New("Please select a source folder containing .md files.")
	}
	if info, err := os.Stat(source); err != nil || !info.IsDir() {
		return fmt.Errorf("Source folder does not exist:\n%s", source)
	}

	if len(command.MarkdownFiles(source)) == 0 {
		return errors.New("No .md files found in the source folder (excluding index.md).\nMake sure you downloaded in Markdown format first.")
	}

	output := strings.TrimSpace(opts.OutputPath)
	if output == "" {
		return errors.New("Please choose an output .epub file path.")
	}
	if !strings.HasSuffix(strings.ToLower(output), epubExtension) {
		return errors.New("Output file must have a .epub extension.")
	}

	return nil
}
