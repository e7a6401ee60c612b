package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amedcalf/substack-to-epub-gui/internal/model"
)

func validDownloadOptions() model.DownloadOptions {
	opts := model.NewDownloadOptions()
	opts.URL = "https://x.substack.com"
	opts.OutputDir = "/tmp/out"
	return opts
}

func TestDownload_Valid(t *testing.T) {
	if err := Download(validDownloadOptions()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestDownload_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.DownloadOptions)
		message string
	}{
		{
			"missing URL",
			func(o *model.DownloadOptions) { o.URL = "" },
			"Substack URL is required.",
		},
		{
			"bad scheme",
			func(o *model.DownloadOptions) { o.URL = "ftp://x.substack.com" },
			"URL must start with http:// or https://",
		},
		{
			"missing output dir",
			func(o *model.DownloadOptions) { o.OutputDir = "  " },
			"Please select an output folder.",
		},
		{
			"non-numeric rate",
			func(o *model.DownloadOptions) { o.Rate = "fast" },
			"Rate must be a number (e.g. 1 or 0.5).",
		},
		{
			"negative rate",
			func(o *model.DownloadOptions) { o.Rate = "-2" },
			"Rate must be a positive number.",
		},
		{
			"zero rate",
			func(o *model.DownloadOptions) { o.Rate = "0" },
			"Rate must be a positive number.",
		},
		{
			"malformed after date",
			func(o *model.DownloadOptions) {
				o.DatesEnabled = true
				o.AfterDate = "01-01-2024"
			},
			"After date must be in YYYY-MM-DD format.",
		},
		{
			"malformed before date",
			func(o *model.DownloadOptions) {
				o.DatesEnabled = true
				o.BeforeDate = "2024/06/30"
			},
			"Before date must be in YYYY-MM-DD format.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			opts := validDownloadOptions()
			test.mutate(&opts)

			err := Download(opts)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if err.Error() != test.message {
				t.Errorf("Expected %q, got %q", test.message, err.Error())
			}
		})
	}
}

func TestDownload_DatesIgnoredWhenDisabled(t *testing.T) {
	opts := validDownloadOptions()
	opts.AfterDate = "not-a-date"

	if err := Download(opts); err != nil {
		t.Errorf("Date bounds must be ignored while the filter is disabled, got: %v", err)
	}
}

func TestDownload_EmptyRateAllowed(t *testing.T) {
	opts := validDownloadOptions()
	opts.Rate = ""

	if err := Download(opts); err != nil {
		t.Errorf("Empty rate is optional, got: %v", err)
	}
}

func TestConvert_Valid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.md"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	opts := model.NewConvertOptions()
	opts.SourceDir = dir
	opts.OutputPath = "/tmp/archive.epub"

	if err := Convert(opts); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestConvert_Failures(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.md"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	emptyDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(emptyDir, "index.md"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	tests := []struct {
		name     string
		opts     model.ConvertOptions
		fragment string
	}{
		{
			"missing source",
			model.ConvertOptions{OutputPath: "/tmp/a.epub"},
			"Please select a source folder",
		},
		{
			"nonexistent source",
			model.ConvertOptions{SourceDir: filepath.Join(dir, "missing"), OutputPath: "/tmp/a.epub"},
			"Source folder does not exist",
		},
		{
			"no matching files",
			model.ConvertOptions{SourceDir: emptyDir, OutputPath: "/tmp/a.epub"},
			"No .md files found",
		},
		{
			"missing output",
			model.ConvertOptions{SourceDir: dir},
			"Please choose an output .epub file path.",
		},
		{
			"wrong extension",
			model.ConvertOptions{SourceDir: dir, OutputPath: "/tmp/a.mobi"},
			"Output file must have a .epub extension.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Convert(test.opts)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), test.fragment) {
				t.Errorf("Expected message containing %q, got %q", test.fragment, err.Error())
			}
		})
	}
}

func TestConvert_ExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.md"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	opts := model.NewConvertOptions()
	opts.SourceDir = dir
	opts.OutputPath = "/tmp/Archive.EPUB"

	if err := Convert(opts); err != nil {
		t.Errorf("Output extension check should be case-insensitive, got: %v", err)
	}
}
