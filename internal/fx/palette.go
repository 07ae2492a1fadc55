package fx

import "image/color"

type swatch struct {
	c     color.NRGBA
	alpha float64 // opacity multiplier
}

// particlePalette is teal, blue, orange; later colours are dimmer.
var particlePalette = []swatch{
	{color.NRGBA{R: 20, G: 184, B: 166, A: 255}, 0.8},
	{color.NRGBA{R: 59, G: 130, B: 246, A: 255}, 0.7},
	{color.NRGBA{R: 249, G: 115, B: 22, A: 255}, 0.6},
}

var (
	starColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	nodeColor       = color.NRGBA{R: 20, G: 184, B: 166, A: 255}
	connectionColor = color.NRGBA{R: 59, G: 130, B: 246, A: 51}
	rainColor       = color.NRGBA{R: 20, G: 184, B: 166, A: 255}
)

// paletteSize clamps a configured size to what the palette holds;
// anything non-positive means the whole palette.
func paletteSize(n int) int {
	if n <= 0 || n > len(particlePalette) {
		return len(particlePalette)
	}
	return n
}
