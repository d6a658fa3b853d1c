package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kwert1k887/new-year-26/archetypes"
	"github.com/kwert1k887/new-year-26/components"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/kwert1k887/new-year-26/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnSparks creates the explosion batch at a spent rocket's position.
// Every spark shares the rocket's color but gets its own heading, speed
// and fade rate.
func SpawnSparks(e *ecs.ECS, origin gamemath.Vec2, col cfg.FireworkColor) {
	count := cfg.Fireworks.SparkCount
	if count <= 0 {
		count = 1
	}

	for i := 0; i < count; i++ {
		entry := archetypes.Spark.Spawn(e)
		components.Spark.Set(entry, &components.SparkData{
			Position: origin,
			Heading:  rng.Float64() * 2 * math.Pi,
			Speed:    rng.Float64() * cfg.Fireworks.SparkMaxSpeed,
			Opacity:  1.0,
			Decay:    cfg.Fireworks.DecayMin + rng.Float64()*(cfg.Fireworks.DecayMax-cfg.Fireworks.DecayMin),
			Color:    col,
		})
	}
}

// UpdateSparks advances every explosion point and removes the exhausted
// ones. Opacity never increases; once it crosses the floor the spark is
// gone for good.
func UpdateSparks(e *ecs.ECS) {
	launcher := GetOrCreateLauncher(e)
	if !launcher.Running {
		return
	}

	var dead []*donburi.Entry
	components.Spark.Each(e.World, func(entry *donburi.Entry) {
		sp := components.Spark.Get(entry)
		TickSpark(sp)
		if sp.Opacity <= cfg.Fireworks.DecayFloor {
			dead = append(dead, entry)
		}
	})

	for _, entry := range dead {
		entry.Remove()
	}
}

// TickSpark applies friction to the speed, gravity to the vertical
// displacement and the spark's own decay to its opacity.
func TickSpark(sp *components.SparkData) {
	trail := cfg.Fireworks.SparkTrail
	if trail <= 0 {
		trail = 1
	}
	sp.Trail = gamemath.PushTrail(sp.Trail, sp.Position, trail)

	sp.Speed *= cfg.Fireworks.Friction
	sp.Position.X += math.Cos(sp.Heading) * sp.Speed
	sp.Position.Y += math.Sin(sp.Heading)*sp.Speed + cfg.Fireworks.Gravity
	sp.Opacity -= sp.Decay
}

// DrawSparks strokes each spark's tail scaled by its opacity and fills the
// bright core on top.
func DrawSparks(e *ecs.ECS, screen *ebiten.Image) {
	width := float32(cfg.Fireworks.LineWidth)

	components.Spark.Each(e.World, func(entry *donburi.Entry) {
		sp := components.Spark.Get(entry)

		prev := sp.Position
		n := len(sp.Trail)
		for i := 0; i < n; i++ {
			p := sp.Trail[i]
			alpha := sp.Opacity * (1.0 - float64(i)/float64(n+1))
			vector.StrokeLine(screen,
				float32(prev.X), float32(prev.Y),
				float32(p.X), float32(p.Y),
				width,
				fireworkColor(sp.Color, 0.5, alpha),
				true)
			prev = p
		}

		radius := float32(cfg.Fireworks.CoreRadius * sp.Opacity)
		if radius > 0 {
			vector.DrawFilledCircle(screen,
				float32(sp.Position.X), float32(sp.Position.Y),
				radius,
				fireworkColor(sp.Color, 0.75, sp.Opacity),
				true)
		}
	})
}
