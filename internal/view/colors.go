package view

import "github.com/rrr-registry/rrr-tui/internal/oklch"

// Hues are given in degrees; the oklch package uses a hue period of 1.
func hue(degrees float64) float64 {
	return degrees / 360
}

var (
	colorLabel     = oklch.RGB(0xB0, 0xB0, 0xB0)
	colorDim       = oklch.RGB(0x80, 0x80, 0x80)
	colorSelection = oklch.RGB(0x5F, 0x5F, 0x5F)
	colorRule      = oklch.RGB(0x60, 0x60, 0x60)

	colorPressed = oklch.FromOklch(oklch.NewOklch(0.79, 0.1603, hue(153.29)))
	colorError   = oklch.FromOklch(oklch.NewOklch(0.64, 0.2, hue(29.23)))

	// Status fades start bright and settle on a desaturated shade of the
	// same hue. Green for hits, amber for misses.
	colorFoundFrom    = oklch.FromOklch(oklch.NewOklch(0.79, 0.1603, hue(153.29)))
	colorFoundTo      = oklch.FromOklch(oklch.NewOklch(0.5, 0, hue(153.29)))
	colorNotFoundFrom = oklch.FromOklch(oklch.NewOklch(0.79, 0.1603, hue(67.76)))
	colorNotFoundTo   = oklch.FromOklch(oklch.NewOklch(0.5, 0, hue(67.76)))

	// The scrollbar brightens while scrolling and fades back to the
	// resting shades once the movement stops.
	colorScrollBar        = oklch.RGB(0x9E, 0x9E, 0x9E)
	colorScrollRail       = oklch.RGB(0x30, 0x30, 0x30)
	colorScrollBarActive  = oklch.RGB(0xDA, 0xDA, 0xDA)
	colorScrollRailActive = oklch.RGB(0x4A, 0x4A, 0x4A)
)
