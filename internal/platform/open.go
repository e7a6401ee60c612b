package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Commands used to open folders
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Fallback file managers probed on Linux when xdg-open is unavailable
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// OpenFolderInManager opens the given folder in the system file manager.
func OpenFolderInManager(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open first, then common file managers.
func openFolderLinux(dirPath string) error {
	if err := exec.Command(XDGOpenCommand, dirPath).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dirPath).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
