package ui

// Package ui contains the Fyne-based desktop user interface: the tabbed form
// layout, live command previews, the shared log panel, and completion dialogs.
// It wires user interactions to the command builders and the process runner.
