package platform

import (
	"os"
	"path/filepath"
)

// Settings document name, stored beside the executable
const ConfigFileName = "config.json"

// File permissions
const DefaultDirPermissions = 0755

// ConfigFilePath returns the location of the settings document: config.json
// in the directory of the running executable, or the working directory when
// the executable path cannot be resolved.
func ConfigFilePath() string {
	exePath, err := os.Executable()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(filepath.Dir(exePath), ConfigFileName)
}

// DirectoryExists reports whether path exists and is a directory.
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
