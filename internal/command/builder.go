package command

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/amedcalf/substack-to-epub-gui/internal/model"
)

// External tool commands resolved via PATH when no override is configured
const (
	DownloaderCommand = "sbstck-dl"
	ConverterCommand  = "pandoc"
)

// Downloader flags
const (
	DownloadSubcommand = "download"

	FlagURL            = "--url"
	FlagOutputDir      = "-o"
	FlagFormat         = "-f"
	FlagAfter          = "--after"
	FlagBefore         = "--before"
	FlagDownloadImages = "--download-images"
	FlagImageQuality   = "--image-quality"
	FlagImagesDir      = "--images-dir"
	FlagDownloadFiles  = "--download-files"
	FlagFileExtensions = "--file-extensions"
	FlagFilesDir       = "--files-dir"
	FlagAddSourceURL   = "--add-source-url"
	FlagCreateArchive  = "--create-archive"
	FlagRate           = "-r"
	FlagVerbose        = "-v"
	FlagDryRun         = "-d"
	FlagCookieName     = "--cookie_name"
	FlagCookieValue    = "--cookie_val"
)

// Converter flags
const (
	FlagConvertOutput = "-o"
	FlagMetadata      = "--metadata"
	FlagTOC           = "--toc"
	SplitLevelPrefix  = "--split-level="
)

// Converter input discovery
const (
	InputExtension    = ".md"
	ReservedIndexName = "index.md"
)

// BuildDownloadArgs maps download form state to the sbstck-dl argument vector.
// It is always constructible; validation happens separately before launch.
func BuildDownloadArgs(opts model.DownloadOptions) []string {
	exe := strings.TrimSpace(opts.ExecutablePath)
	if exe == "" {
		exe = DownloaderCommand
	}
	args := []string{exe, DownloadSubcommand}

	if url := strings.TrimSpace(opts.URL); url != "" {
		args = append(args, FlagURL, url)
	}

	if out := strings.TrimSpace(opts.OutputDir); out != "" {
		args = append(args, FlagOutputDir, out)
	}

	args = append(args, FlagFormat, model.FormatCode(opts.Format))

	if opts.DatesEnabled {
		if after := strings.TrimSpace(opts.AfterDate); after != "" {
			args = append(args, FlagAfter, after)
		}
		if before := strings.TrimSpace(opts.BeforeDate); before != "" {
			args = append(args, FlagBefore, before)
		}
	}

	if opts.DownloadImages {
		args = append(args, FlagDownloadImages)
		args = append(args, FlagImageQuality, opts.ImageQuality)
		if dir := strings.TrimSpace(opts.ImagesDir); dir != "" && dir != model.DefaultImagesDir {
			args = append(args, FlagImagesDir, dir)
		}
	}

	if opts.DownloadFiles {
		args = append(args, FlagDownloadFiles)
		if exts := strings.TrimSpace(opts.FileExtensions); exts != "" {
			args = append(args, FlagFileExtensions, exts)
		}
		if dir := strings.TrimSpace(opts.FilesDir); dir != "" && dir != model.DefaultFilesDir {
			args = append(args, FlagFilesDir, dir)
		}
	}

	if opts.AddSourceURL {
		args = append(args, FlagAddSourceURL)
	}

	if opts.CreateArchive {
		args = append(args, FlagCreateArchive)
	}

	// The default rate of "1" is the tool's own default and is omitted.
	// A malformed value is dropped silently; validation already rejected
	// non-numeric input before any launch.
	if rate := strings.TrimSpace(opts.Rate); rate != "" && rate != model.DefaultRate {
		if value, err := strconv.ParseFloat(rate, 64); err == nil {
			args = append(args, FlagRate, strconv.FormatFloat(value, 'f', -1, 64))
		}
	}

	if opts.Verbose {
		args = append(args, FlagVerbose)
	}

	if opts.DryRun {
		args = append(args, FlagDryRun)
	}

	if cookieValue := strings.TrimSpace(opts.CookieValue); cookieValue != "" {
		args = append(args, FlagCookieName, opts.CookieName)
		args = append(args, FlagCookieValue, cookieValue)
	}

	return args
}

// BuildConvertArgs maps conversion form state to the pandoc argument vector.
// The second result is false when no command can be built yet: the source
// directory is unset or missing, or it contains no convertible files.
func BuildConvertArgs(opts model.ConvertOptions) ([]string, bool) {
	sourceDir := strings.TrimSpace(opts.SourceDir)
	if sourceDir == "" || !isDirectory(sourceDir) {
		return nil, false
	}

	files := MarkdownFiles(sourceDir)
	if len(files) == 0 {
		return nil, false
	}

	exe := strings.TrimSpace(opts.ExecutablePath)
	if exe == "" {
		exe = ConverterCommand
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = model.DefaultEpubTitle
	}
	author := strings.TrimSpace(opts.Author)
	if author == "" {
		author = model.DefaultEpubAuthor
	}
	split := strings.TrimSpace(opts.SplitLevel)
	if split == "" {
		split = model.DefaultSplitLevel
	}

	args := []string{exe}
	for _, name := range files {
		args = append(args, filepath.Join(sourceDir, name))
	}
	if output := strings.TrimSpace(opts.OutputPath); output != "" {
		args = append(args, FlagConvertOutput, output)
	}
	args = append(args, FlagMetadata, "title="+title)
	args = append(args, FlagMetadata, "author="+author)
	if opts.IncludeTOC {
		args = append(args, FlagTOC)
	}
	args = append(args, SplitLevelPrefix+split)

	return args, true
}

// MarkdownFiles lists convertible input files in dir: names ending in .md
// case-insensitively, excluding the reserved index file, sorted ascending so
// chapter order is deterministic. Read failures degrade to an empty result.
func MarkdownFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if strings.HasSuffix(name, InputExtension) && name != ReservedIndexName {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)
	return files
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
