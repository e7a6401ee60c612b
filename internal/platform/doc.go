package platform

// Package platform contains OS integration glue: the settings document
// location, console-window suppression for spawned processes on Windows, and
// opening folders in the system file manager.
