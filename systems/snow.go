package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kwert1k887/new-year-26/archetypes"
	"github.com/kwert1k887/new-year-26/components"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSnow populates the fixed flake decoration, scattered across the
// whole screen so the first frame already looks mid-fall.
func CreateSnow(e *ecs.ECS) {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)

	for i := 0; i < cfg.Snow.FlakeCount; i++ {
		x := rng.Float64() * w
		entry := archetypes.Snowflake.Spawn(e)
		components.Snowflake.Set(entry, &components.SnowflakeData{
			X:         x,
			BaseX:     x,
			Y:         rng.Float64() * h,
			FallSpeed: cfg.Snow.MinFallSpeed + rng.Float64()*(cfg.Snow.MaxFallSpeed-cfg.Snow.MinFallSpeed),
			Radius:    cfg.Snow.MinRadius + rng.Float64()*(cfg.Snow.MaxRadius-cfg.Snow.MinRadius),
			SwayPhase: rng.Float64() * 2 * math.Pi,
		})
	}
}

// UpdateSnow drifts each flake down with a sinusoidal sway, wrapping back
// to the top edge. Flakes are never destroyed.
func UpdateSnow(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if !settings.SnowEnabled {
		return
	}

	h := float64(cfg.C.Height)
	components.Snowflake.Each(e.World, func(entry *donburi.Entry) {
		flake := components.Snowflake.Get(entry)
		flake.SwayPhase += cfg.Snow.SwayRate
		flake.X = flake.BaseX + math.Sin(flake.SwayPhase)*cfg.Snow.SwayAmount
		flake.Y += flake.FallSpeed
		if flake.Y-flake.Radius > h {
			flake.Y = -flake.Radius
		}
	})
}

var snowColor = color.NRGBA{R: 235, G: 240, B: 250, A: 200}

// DrawSnow renders the flakes behind everything else.
func DrawSnow(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.SnowEnabled {
		return
	}

	components.Snowflake.Each(e.World, func(entry *donburi.Entry) {
		flake := components.Snowflake.Get(entry)
		vector.DrawFilledCircle(screen,
			float32(flake.X), float32(flake.Y),
			float32(flake.Radius),
			snowColor,
			true)
	})
}
