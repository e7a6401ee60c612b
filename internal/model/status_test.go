package model

import "testing"

func TestRunStatusIsRunning(t *testing.T) {
	if StatusIdle.IsRunning() {
		t.Error("StatusIdle should not be running")
	}

	if !StatusRunning.IsRunning() {
		t.Error("StatusRunning should be running")
	}
}

func TestRunStatusString(t *testing.T) {
	if StatusIdle.String() != "Idle" {
		t.Errorf("Expected 'Idle', got %s", StatusIdle.String())
	}

	if StatusRunning.String() != "Running" {
		t.Errorf("Expected 'Running', got %s", StatusRunning.String())
	}
}

func TestOperationString(t *testing.T) {
	if OperationDownload.String() != "download" {
		t.Errorf("Expected 'download', got %s", OperationDownload.String())
	}

	if OperationConvert.String() != "convert" {
		t.Errorf("Expected 'convert', got %s", OperationConvert.String())
	}
}

func TestFormatCode(t *testing.T) {
	tests := []struct {
		displayName string
		expected    string
	}{
		{"Markdown (.md)", "md"},
		{"HTML (.html)", "html"},
		{"Plain Text (.txt)", "txt"},
		{"", "md"},
		{"Something stale", "md"},
	}

	for _, test := range tests {
		result := FormatCode(test.displayName)
		if result != test.expected {
			t.Errorf("FormatCode(%q) = %q, expected %q", test.displayName, result, test.expected)
		}
	}
}

func TestFormatDisplayNames(t *testing.T) {
	names := FormatDisplayNames()
	if len(names) != 3 {
		t.Fatalf("Expected 3 format names, got %d", len(names))
	}

	if names[0] != DefaultFormatDisplayName() {
		t.Errorf("First format name should be the default, got %s", names[0])
	}
}

func TestNewDownloadOptionsDefaults(t *testing.T) {
	opts := NewDownloadOptions()

	if opts.Format != "Markdown (.md)" {
		t.Errorf("Expected default format 'Markdown (.md)', got %s", opts.Format)
	}
	if !opts.AddSourceURL {
		t.Error("AddSourceURL should default to true")
	}
	if opts.Rate != "1" {
		t.Errorf("Expected default rate '1', got %s", opts.Rate)
	}
	if opts.ImagesDir != "images" || opts.FilesDir != "files" {
		t.Errorf("Unexpected subfolder defaults: %s, %s", opts.ImagesDir, opts.FilesDir)
	}
	if opts.CookieName != "substack.sid" {
		t.Errorf("Expected default cookie name 'substack.sid', got %s", opts.CookieName)
	}
	if opts.DatesEnabled || opts.DownloadImages || opts.DownloadFiles || opts.Verbose || opts.DryRun || opts.CreateArchive {
		t.Error("Boolean toggles other than AddSourceURL should default to false")
	}
}

func TestNewConvertOptionsDefaults(t *testing.T) {
	opts := NewConvertOptions()

	if !opts.IncludeTOC {
		t.Error("IncludeTOC should default to true")
	}
	if opts.SplitLevel != "1" {
		t.Errorf("Expected default split level '1', got %s", opts.SplitLevel)
	}
}
