package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
)

// WindowSizeFromGeometry parses a persisted "WxH" geometry string into a
// window size, falling back to the default size for anything unparseable.
// Position components ("WxH+X+Y" from older versions) are tolerated and
// ignored: Fyne cannot place windows.
func WindowSizeFromGeometry(geometry string) fyne.Size {
	fallback := fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)

	geometry = strings.TrimSpace(geometry)
	if plus := strings.IndexAny(geometry, "+-"); plus > 0 {
		geometry = geometry[:plus]
	}

	parts := strings.Split(geometry, "x")
	if len(parts) != 2 {
		return fallback
	}

	width, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	height, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return fallback
	}

	return fyne.NewSize(float32(width), float32(height))
}

// GeometryFromWindowSize renders a window size back into the persisted form.
func GeometryFromWindowSize(size fyne.Size) string {
	return fmt.Sprintf("%dx%d", int(size.Width), int(size.Height))
}
