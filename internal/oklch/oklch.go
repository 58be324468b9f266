package oklch

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Oklch is a color in the Oklch color space.
// To pick colors, use https://oklch.com/
type Oklch struct {
	// Lightness in the range [0, 1].
	Lightness float64
	// Chroma in the range [0, 1].
	Chroma float64
	// Hue with a period of 1, starting with red at 0. Unbounded.
	Hue float64
}

// NewOklch returns an Oklch color from its components.
func NewOklch(lightness, chroma, hue float64) Oklch {
	return Oklch{Lightness: lightness, Chroma: chroma, Hue: hue}
}

// Lerp interpolates toward rhs, taking the shorter angular path around the
// hue circle.
func (c Oklch) Lerp(rhs Oklch, t float64) Oklch {
	lhsHue := c.Hue - math.Floor(c.Hue)
	rhsHue := rhs.Hue - math.Floor(rhs.Hue)
	hueDiff := rhsHue - lhsHue

	var hue float64
	if math.Abs(hueDiff) <= 0.5 {
		hue = lerp(c.Hue, rhs.Hue, t)
	} else if hueDiff > 0 {
		hue = lerp(lhsHue+1, rhsHue, t)
	} else {
		hue = lerp(lhsHue, rhsHue+1, t)
	}

	return Oklch{
		Lightness: lerp(c.Lightness, rhs.Lightness, t),
		Chroma:    lerp(c.Chroma, rhs.Chroma, t),
		Hue:       hue,
	}
}

// Oklab converts to the rectangular form.
func (c Oklch) Oklab() Oklab {
	rad := c.Hue * 2 * math.Pi
	return Oklab{
		Lightness: c.Lightness,
		ChromaA:   c.Chroma * math.Cos(rad),
		ChromaB:   c.Chroma * math.Sin(rad),
	}
}

// RGB8 converts to 24-bit sRGB.
func (c Oklch) RGB8() RGB8 {
	return c.Oklab().RGB8()
}

// Oklab is a color in the Oklab color space. Mainly used for blending.
type Oklab struct {
	Lightness float64
	ChromaA   float64
	ChromaB   float64
}

// NewOklab returns an Oklab color from its components.
func NewOklab(lightness, chromaA, chromaB float64) Oklab {
	return Oklab{Lightness: lightness, ChromaA: chromaA, ChromaB: chromaB}
}

// Lerp interpolates componentwise toward rhs.
func (c Oklab) Lerp(rhs Oklab, t float64) Oklab {
	return Oklab{
		Lightness: lerp(c.Lightness, rhs.Lightness, t),
		ChromaA:   lerp(c.ChromaA, rhs.ChromaA, t),
		ChromaB:   lerp(c.ChromaB, rhs.ChromaB, t),
	}
}

// Oklch converts to the polar form.
func (c Oklab) Oklch() Oklch {
	hue := math.Atan2(c.ChromaB, c.ChromaA) / (2 * math.Pi)
	if hue < 0 {
		hue++
	}
	return Oklch{
		Lightness: c.Lightness,
		Chroma:    math.Hypot(c.ChromaA, c.ChromaB),
		Hue:       hue,
	}
}

// RGB8 converts to 24-bit sRGB through linear light.
func (c Oklab) RGB8() RGB8 {
	l := c.Lightness + 0.3963377774*c.ChromaA + 0.2158037573*c.ChromaB
	m := c.Lightness - 0.1055613458*c.ChromaA - 0.0638541728*c.ChromaB
	s := c.Lightness - 0.0894841775*c.ChromaA - 1.2914855480*c.ChromaB
	l, m, s = l*l*l, m*m*m, s*s*s

	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	enc := colorful.LinearRgb(r, g, b).Clamped()
	return RGB8{
		Red:   clampByte(enc.R),
		Green: clampByte(enc.G),
		Blue:  clampByte(enc.B),
	}
}

// RGB8 is a 24-bit sRGB color as emitted to the terminal.
type RGB8 struct {
	Red, Green, Blue uint8
}

// NewRGB8 returns an RGB8 color from its channels.
func NewRGB8(red, green, blue uint8) RGB8 {
	return RGB8{Red: red, Green: green, Blue: blue}
}

// Hex formats the color as a "#rrggbb" string.
func (c RGB8) Hex() string {
	return colorful.Color{
		R: float64(c.Red) / 0xFF,
		G: float64(c.Green) / 0xFF,
		B: float64(c.Blue) / 0xFF,
	}.Hex()
}

// Oklab converts from encoded sRGB through linear light.
func (c RGB8) Oklab() Oklab {
	enc := colorful.Color{
		R: float64(c.Red) / 0xFF,
		G: float64(c.Green) / 0xFF,
		B: float64(c.Blue) / 0xFF,
	}
	r, g, b := enc.LinearRgb()

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b
	l, m, s = math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	return Oklab{
		Lightness: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		ChromaA:   1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		ChromaB:   0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// Oklch converts from encoded sRGB.
func (c RGB8) Oklch() Oklch {
	return c.Oklab().Oklch()
}

func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

func clampByte(v float64) uint8 {
	n := int(v*0xFF + 0.5)
	if n < 0 {
		return 0
	}
	if n > 0xFF {
		return 0xFF
	}
	return uint8(n)
}
