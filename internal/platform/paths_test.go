package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigFilePath(t *testing.T) {
	path := ConfigFilePath()

	if !strings.HasSuffix(path, ConfigFileName) {
		t.Errorf("Expected path ending in %s, got %s", ConfigFileName, path)
	}
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	if !DirectoryExists(dir) {
		t.Error("Existing directory should be reported")
	}

	if DirectoryExists(filepath.Join(dir, "missing")) {
		t.Error("Missing directory should not be reported")
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if !DirectoryExists(dir) {
		t.Error("Directory should exist after creation")
	}

	// Second call is a no-op
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Creating an existing directory should not fail: %v", err)
	}
}
