// Package oklch provides perceptual color types for terminal rendering.
//
// Colors are picked in Oklch (lightness, chroma, hue), blended in Oklab
// where linear interpolation is perceptually uniform, and emitted as 24-bit
// sRGB. Conversions between the spaces use the Oklab LMS matrices; sRGB
// transfer encoding goes through go-colorful.
package oklch
