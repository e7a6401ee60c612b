package model

// Image quality levels accepted by sbstck-dl
const (
	ImageQualityLow    = "low"
	ImageQualityMedium = "medium"
	ImageQualityHigh   = "high"
)

// Default values for form fields
const (
	DefaultImagesDir  = "images"
	DefaultFilesDir   = "files"
	DefaultRate       = "1"
	DefaultCookieName = "substack.sid"
	DefaultSplitLevel = "1"

	DefaultEpubTitle  = "Substack Archive"
	DefaultEpubAuthor = "Unknown"
)

// Cookie names recognized by Substack sessions
var CookieNameOptions = []string{"substack.sid", "connect.sid"}

// ImageQualityOptions returns the selectable image quality levels in display order.
func ImageQualityOptions() []string {
	return []string{ImageQualityLow, ImageQualityMedium, ImageQualityHigh}
}

// DownloadOptions is the form state of the Download tab. The zero value is not
// useful; construct with NewDownloadOptions to seed defaults.
type DownloadOptions struct {
	ExecutablePath string // configured sbstck-dl override, "" means resolve via PATH
	URL            string
	OutputDir      string
	Format         string // display name, see format.go

	DatesEnabled bool
	AfterDate    string // YYYY-MM-DD
	BeforeDate   string // YYYY-MM-DD

	DownloadImages bool
	ImageQuality   string
	ImagesDir      string

	DownloadFiles  bool
	FileExtensions string // comma-separated allow-list, "" means all
	FilesDir       string

	AddSourceURL  bool
	CreateArchive bool
	Rate          string
	Verbose       bool
	DryRun        bool

	CookieName  string
	CookieValue string // never persisted
}

// NewDownloadOptions returns download form state with every field at its
// default value.
func NewDownloadOptions() DownloadOptions {
	return DownloadOptions{
		Format:       DefaultFormatDisplayName(),
		ImageQuality: ImageQualityLow,
		ImagesDir:    DefaultImagesDir,
		FilesDir:     DefaultFilesDir,
		AddSourceURL: true,
		Rate:         DefaultRate,
		CookieName:   DefaultCookieName,
	}
}

// ConvertOptions is the form state of the ePub Conversion tab.
type ConvertOptions struct {
	ExecutablePath string // configured pandoc override, "" means resolve via PATH
	SourceDir      string
	OutputPath     string
	Title          string
	Author         string
	IncludeTOC     bool
	SplitLevel     string
}

// NewConvertOptions returns conversion form state with defaults applied.
func NewConvertOptions() ConvertOptions {
	return ConvertOptions{
		IncludeTOC: true,
		SplitLevel: DefaultSplitLevel,
	}
}
