//go:build !windows

package platform

import "os/exec"

// HideConsoleWindow is a no-op on platforms without console window creation.
func HideConsoleWindow(cmd *exec.Cmd) {}
