package ui

import (
	"testing"

	"fyne.io/fyne/v2"
)

func TestWindowSizeFromGeometry(t *testing.T) {
	tests := []struct {
		name     string
		geometry string
		want     fyne.Size
	}{
		{"default", "1050x800", fyne.NewSize(1050, 800)},
		{"custom", "1280x720", fyne.NewSize(1280, 720)},
		{"with position suffix", "900x700+10+20", fyne.NewSize(900, 700)},
		{"whitespace", "  800x620  ", fyne.NewSize(800, 620)},
		{"empty", "", fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)},
		{"garbage", "fullscreen", fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)},
		{"zero dimension", "0x600", fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)},
		{"missing height", "1050x", fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindowSizeFromGeometry(tt.geometry)
			if got != tt.want {
				t.Errorf("WindowSizeFromGeometry(%q) = %v, want %v", tt.geometry, got, tt.want)
			}
		})
	}
}

func TestGeometryRoundTrip(t *testing.T) {
	size := fyne.NewSize(1050, 800)
	geometry := GeometryFromWindowSize(size)

	if geometry != "1050x800" {
		t.Errorf("Expected 1050x800, got %s", geometry)
	}
	if WindowSizeFromGeometry(geometry) != size {
		t.Error("Round trip through geometry string changed the size")
	}
}
