package runner

// Package runner executes the external tools. It enforces the single-flight
// rule (at most one process at a time), streams combined stdout/stderr line by
// line into the log sink while the process runs, and reports the terminal
// outcome to the UI through a completion callback.
