package model

// formatEntry maps an output format display name to the code passed to
// sbstck-dl's -f flag.
type formatEntry struct {
	DisplayName string
	Code        string
}

// formatTable is ordered; the first entry is the default format.
var formatTable = []formatEntry{
	{"Markdown (.md)", "md"},
	{"HTML (.html)", "html"},
	{"Plain Text (.txt)", "txt"},
}

// FormatDisplayNames returns the selectable format names in display order.
func FormatDisplayNames() []string {
	names := make([]string, 0, len(formatTable))
	for _, entry := range formatTable {
		names = append(names, entry.DisplayName)
	}
	return names
}

// DefaultFormatDisplayName returns the display name of the default format.
func DefaultFormatDisplayName() string {
	return formatTable[0].DisplayName
}

// FormatCode resolves a display name to its format code. Unknown names resolve
// to the default format's code so a stale persisted value never breaks the
// command line.
func FormatCode(displayName string) string {
	for _, entry := range formatTable {
		if entry.DisplayName == displayName {
			return entry.Code
		}
	}
	return formatTable[0].Code
}
