package command

// Package command maps form state to the argument vectors of the two external
// tools: sbstck-dl for downloading newsletters and pandoc for ePub conversion.
// Builders are pure functions over the option structs; the same input always
// yields the same vector.
