package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowMinWidth  float32 = 800
	WindowMinHeight float32 = 620

	DefaultWindowWidth  float32 = 1050
	DefaultWindowHeight float32 = 800
)

// Log panel behavior
const (
	LogPollInterval = 100 * time.Millisecond
)

// Button labels
const (
	LabelStartDownload = "Start Download"
	LabelDownloading   = "Downloading…"
	LabelConvert       = "Convert to ePub"
	LabelConverting    = "Converting…"
	LabelBrowse        = "Browse…"
	LabelClearLog      = "Clear Log"
	LabelSaveSettings  = "Save Settings"
	LabelSettingsSaved = "Saved!"

	LabelShowCookies = "Show Cookie Settings"
	LabelHideCookies = "Hide Cookie Settings"
)

// Dialog titles and buttons
const (
	TitleValidationError    = "Validation Error"
	TitleDownloadComplete   = "Download Complete"
	TitleConversionComplete = "Conversion Complete"

	LabelCreateEpub  = "Create ePub →"
	LabelShowFiles   = "Show Files"
	LabelShowFile    = "Show File"
	LabelReturnToApp = "Return to App"
)

// Settings-saved button feedback duration
const SaveFeedbackDelay = 2 * time.Second

// Suggested ePub file name offered after a download finishes
const SuggestedEpubName = "archive.epub"
