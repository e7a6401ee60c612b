package model

// Package model defines domain data structures used across the app: the form
// state for the download and conversion tabs, run status enums, and the output
// format table. Structures are plain values owned by the UI layer and read by
// the command builders.
