package oklch

// Color pairs the Oklch representation a color was defined in with its
// sRGB form, so blending reads perceptual components and rendering reads
// terminal bytes without converting on every frame.
type Color struct {
	oklch Oklch
	rgb   RGB8
}

// FromOklch builds a Color from an Oklch value.
func FromOklch(c Oklch) Color {
	return Color{oklch: c, rgb: c.RGB8()}
}

// FromOklab builds a Color from an Oklab value.
func FromOklab(c Oklab) Color {
	return Color{oklch: c.Oklch(), rgb: c.RGB8()}
}

// FromRGB8 builds a Color from an sRGB value.
func FromRGB8(c RGB8) Color {
	return Color{oklch: c.Oklch(), rgb: c}
}

// RGB builds a Color from sRGB channel bytes.
func RGB(red, green, blue uint8) Color {
	return FromRGB8(NewRGB8(red, green, blue))
}

// Oklch returns the perceptual polar form.
func (c Color) Oklch() Oklch { return c.oklch }

// Oklab returns the perceptual rectangular form.
func (c Color) Oklab() Oklab { return c.oklch.Oklab() }

// RGB8 returns the terminal sRGB form.
func (c Color) RGB8() RGB8 { return c.rgb }

// Lerp interpolates in Oklch, rederiving the sRGB pair from the result.
func (c Color) Lerp(rhs Color, t float64) Color {
	return FromOklch(c.oklch.Lerp(rhs.oklch, t))
}

// TextColor is a foreground/background pair for one cell run.
type TextColor struct {
	FG Color
	BG Color
}

// DefaultTextColor is white on black.
func DefaultTextColor() TextColor {
	return TextColor{
		FG: RGB(0xFF, 0xFF, 0xFF),
		BG: RGB(0x00, 0x00, 0x00),
	}
}

// Invert swaps foreground and background.
func (tc TextColor) Invert() TextColor {
	return TextColor{FG: tc.BG, BG: tc.FG}
}

// WithFG returns a copy with the foreground replaced.
func (tc TextColor) WithFG(fg Color) TextColor {
	tc.FG = fg
	return tc
}

// WithBG returns a copy with the background replaced.
func (tc TextColor) WithBG(bg Color) TextColor {
	tc.BG = bg
	return tc
}

// Lerp interpolates both channels.
func (tc TextColor) Lerp(rhs TextColor, t float64) TextColor {
	return TextColor{
		FG: tc.FG.Lerp(rhs.FG, t),
		BG: tc.BG.Lerp(rhs.BG, t),
	}
}

// Blended is a color with an alpha for compositing over another color.
type Blended struct {
	Color Color
	Alpha float64
}

// WithAlpha attaches an alpha to a color.
func WithAlpha(c Color, alpha float64) Blended {
	return Blended{Color: c, Alpha: alpha}
}

// Opaque wraps a color with full alpha.
func Opaque(c Color) Blended {
	return Blended{Color: c, Alpha: 1}
}

// Over composites the blended color over under. The mix happens in Oklab,
// where linear interpolation tracks perceived lightness.
func (b Blended) Over(under Color) Color {
	return FromOklab(under.Oklab().Lerp(b.Color.Oklab(), b.Alpha))
}
