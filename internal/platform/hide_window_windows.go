//go:build windows

package platform

import (
	"os/exec"
	"syscall"
)

// HideConsoleWindow keeps the spawned console tool from flashing a window on
// Windows. The GUI has no console of its own, so without this every run opens
// a stray cmd window.
func HideConsoleWindow(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.HideWindow = true
}
