package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kwert1k887/new-year-26/components"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/kwert1k887/new-year-26/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFireworks advances every live rocket and converts the ones that
// reached their target into spark bursts. Finished rockets are collected
// first and removed after iteration.
func UpdateFireworks(e *ecs.ECS) {
	launcher := GetOrCreateLauncher(e)
	if !launcher.Running {
		return
	}

	var done []*donburi.Entry
	components.Firework.Each(e.World, func(entry *donburi.Entry) {
		fw := components.Firework.Get(entry)
		TickFirework(fw)
		if fw.Traveled >= fw.Distance {
			done = append(done, entry)
		}
	})

	for _, entry := range done {
		fw := components.Firework.Get(entry)
		origin := fw.Position
		col := fw.Color
		entry.Remove()
		SpawnSparks(e, origin, col)
	}
}

// TickFirework performs one integration step: record the trail, grow the
// speed, move along the fixed heading and remeasure distance from launch.
// A rocket whose launch and target coincide terminates on this first tick
// since any non-negative travel satisfies the zero distance.
func TickFirework(fw *components.FireworkData) {
	trail := cfg.Fireworks.TrailLength
	if trail <= 0 {
		trail = 1
	}
	fw.Trail = gamemath.PushTrail(fw.Trail, fw.Position, trail)

	fw.Speed *= cfg.Fireworks.Acceleration
	fw.Position.X += math.Cos(fw.Heading) * fw.Speed
	fw.Position.Y += math.Sin(fw.Heading) * fw.Speed
	fw.Traveled = gamemath.Dist(fw.Launch, fw.Position)
}

// DrawFireworks strokes each rocket's fading tail, brightest at the head.
func DrawFireworks(e *ecs.ECS, screen *ebiten.Image) {
	width := float32(cfg.Fireworks.LineWidth)

	components.Firework.Each(e.World, func(entry *donburi.Entry) {
		fw := components.Firework.Get(entry)

		prev := fw.Position
		n := len(fw.Trail)
		for i := 0; i < n; i++ {
			p := fw.Trail[i]
			// Head segment fully opaque, tail end near transparent.
			alpha := 1.0 - float64(i)/float64(n+1)
			vector.StrokeLine(screen,
				float32(prev.X), float32(prev.Y),
				float32(p.X), float32(p.Y),
				width,
				fireworkColor(fw.Color, 0.55, alpha),
				true)
			prev = p
		}
	})
}
