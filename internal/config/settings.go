package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Settings keys for the persisted configuration document
const (
	KeySbstckdlPath       = "sbstckdl_path"
	KeyPandocPath         = "pandoc_path"
	KeyLastURL            = "last_url"
	KeyLastOutputDir      = "last_output_dir"
	KeyLastFormat         = "last_format"
	KeyLastEpubSourceDir  = "last_epub_source_dir"
	KeyLastEpubOutputFile = "last_epub_output_file"
	KeyLastAuthor         = "last_author"
	KeyWindowGeometry     = "window_geometry"
)

// Default values
const (
	DefaultWindowGeometry = "1050x800"
	DefaultLastFormat     = "Markdown (.md)"

	// Pandoc's installer drops it here on Windows; elsewhere it is on PATH.
	WindowsPandocPath = `C:\Program Files\Pandoc\pandoc.exe`
)

// FilePermissions for the settings document
const FilePermissions = 0644

// Defaults returns a fresh copy of the default settings document.
func Defaults() map[string]any {
	pandocPath := ""
	if runtime.GOOS == "windows" {
		pandocPath = WindowsPandocPath
	}

	return map[string]any{
		KeySbstckdlPath:       "",
		KeyPandocPath:         pandocPath,
		KeyLastURL:            "",
		KeyLastOutputDir:      "",
		KeyLastFormat:         DefaultLastFormat,
		KeyLastEpubSourceDir:  "",
		KeyLastEpubOutputFile: "",
		KeyLastAuthor:         "",
		KeyWindowGeometry:     DefaultWindowGeometry,
	}
}

// Settings manages the persisted application configuration. The document is a
// flat JSON object; keys written by newer versions of the app are carried
// through load/save untouched.
type Settings struct {
	path   string
	values map[string]any
}

// Load reads the settings document at path and merges it over the defaults.
// Any read or parse failure yields pure defaults; Load never fails.
func Load(path string) *Settings {
	s := &Settings{
		path:   path,
		values: Defaults(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	var loaded map[string]any
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s
	}

	// Loaded keys win over defaults; unknown keys are preserved.
	for key, value := range loaded {
		s.values[key] = value
	}

	return s
}

// Save serializes the document back to its path with stable formatting.
func (s *Settings) Save() error {
	data, err := json.MarshalIndent(s.values, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// Path returns the location of the settings document.
func (s *Settings) Path() string {
	return s.path
}

// String returns the string value for key, or the default when the key is
// missing or holds a non-string value.
func (s *Settings) String(key string) string {
	if value, ok := s.values[key].(string); ok {
		return value
	}
	if value, ok := Defaults()[key].(string); ok {
		return value
	}
	return ""
}

// SetString stores a string value for key.
func (s *Settings) SetString(key, value string) {
	s.values[key] = value
}

// Bool returns the boolean value for key, or the default when the key is
// missing or holds a non-boolean value.
func (s *Settings) Bool(key string) bool {
	if value, ok := s.values[key].(bool); ok {
		return value
	}
	if value, ok := Defaults()[key].(bool); ok {
		return value
	}
	return false
}

// SetBool stores a boolean value for key.
func (s *Settings) SetBool(key string, value bool) {
	s.values[key] = value
}
