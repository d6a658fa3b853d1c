package systems

import (
	"image/color"

	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/kwert1k887/new-year-26/gamemath"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// fireworkColor converts a palette hue/saturation pair plus lightness and
// alpha into a drawable color.
func fireworkColor(c cfg.FireworkColor, lightness, alpha float64) color.Color {
	col := colorful.Hsl(c.Hue, c.Saturation, lightness).Clamped()
	a := gamemath.Clamp(alpha, 0, 1)
	return color.NRGBA{
		R: uint8(col.R * 255),
		G: uint8(col.G * 255),
		B: uint8(col.B * 255),
		A: uint8(a * 255),
	}
}

// withAlpha scales a UI color's opacity, used by the entrance fade-in.
func withAlpha(c color.RGBA, alpha float32) color.Color {
	a := gamemath.Clamp(float64(alpha), 0, 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a * 255)}
}
