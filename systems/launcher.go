package systems

import (
	"math/rand"
	"time"

	"github.com/kwert1k887/new-year-26/archetypes"
	"github.com/kwert1k887/new-year-26/components"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/kwert1k887/new-year-26/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// rng drives all spawn randomization. Package-level so tests can reseed it.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// GetOrCreateLauncher returns the singleton Launcher component, creating it
// stopped if needed.
func GetOrCreateLauncher(e *ecs.ECS) *components.LauncherData {
	entry, ok := components.Launcher.First(e.World)
	if !ok {
		entry = archetypes.Launcher.Spawn(e)
	}
	return components.Launcher.Get(entry)
}

// StartSimulation clears both live collections and begins ticking. Calling
// it while already running is a no-op, so there is never more than one
// active spawn cadence.
func StartSimulation(e *ecs.ECS) {
	launcher := GetOrCreateLauncher(e)
	if launcher.Running {
		return
	}
	clearSimulation(e)
	launcher.Pending = launcher.Pending[:0]
	launcher.Running = true
}

// StopSimulation halts ticking and discards all live rockets and sparks.
// Already-scheduled staggered spawns are not cancelled; they are dropped
// at fire time by the running check.
func StopSimulation(e *ecs.ECS) {
	launcher := GetOrCreateLauncher(e)
	if !launcher.Running {
		return
	}
	launcher.Running = false
	clearSimulation(e)
}

func clearSimulation(e *ecs.ECS) {
	var all []*donburi.Entry
	components.Firework.Each(e.World, func(entry *donburi.Entry) {
		all = append(all, entry)
	})
	components.Spark.Each(e.World, func(entry *donburi.Entry) {
		all = append(all, entry)
	})
	for _, entry := range all {
		entry.Remove()
	}
}

// SpawnFirework launches one rocket from a random point on the bottom edge.
// A nil target picks a random point in the upper target band; a nil color
// picks a random palette entry. Appends exactly one live rocket.
func SpawnFirework(e *ecs.ECS, target *gamemath.Vec2, col *cfg.FireworkColor) {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)

	launch := gamemath.Vec2{X: rng.Float64() * w, Y: h}

	var tgt gamemath.Vec2
	if target != nil {
		tgt = *target
	} else {
		minY := cfg.Fireworks.TargetMinYFrac * h
		maxY := cfg.Fireworks.TargetMaxYFrac * h
		tgt = gamemath.Vec2{
			X: rng.Float64() * w,
			Y: minY + rng.Float64()*(maxY-minY),
		}
	}

	var c cfg.FireworkColor
	if col != nil {
		c = *col
	} else {
		c = cfg.Fireworks.Palette[rng.Intn(len(cfg.Fireworks.Palette))]
	}

	entry := archetypes.Firework.Spawn(e)
	components.Firework.Set(entry, &components.FireworkData{
		Position: launch,
		Launch:   launch,
		Target:   tgt,
		Heading:  gamemath.Heading(launch, tgt),
		Speed:    cfg.Fireworks.InitialSpeed,
		Distance: gamemath.Dist(launch, tgt),
		Color:    c,
	})
}

// ScheduleBurst queues count staggered launches, one stagger interval
// apart, the first on the next launcher tick. Deliberate visual pacing,
// not a throughput limit.
func ScheduleBurst(e *ecs.ECS, count int, target *gamemath.Vec2, col *cfg.FireworkColor) {
	launcher := GetOrCreateLauncher(e)
	for i := 0; i < count; i++ {
		p := components.PendingSpawn{FramesLeft: i * cfg.Fireworks.StaggerFrames}
		if target != nil {
			p.HasTarget = true
			p.TargetX = target.X
			p.TargetY = target.Y
		}
		if col != nil {
			p.HasColor = true
			p.Color = *col
		}
		launcher.Pending = append(launcher.Pending, p)
	}
}

// UpdateLauncher drains due staggered spawns and tops the sky back up to
// the configured concurrency target. Pending entries keep counting down
// while the launcher is stopped and simply no-op when they come due.
func UpdateLauncher(e *ecs.ECS) {
	launcher := GetOrCreateLauncher(e)

	// Fire due entries, retaining the rest in place.
	retained := launcher.Pending[:0]
	for _, p := range launcher.Pending {
		if p.FramesLeft > 0 {
			p.FramesLeft--
			retained = append(retained, p)
			continue
		}
		if launcher.Running {
			var target *gamemath.Vec2
			var col *cfg.FireworkColor
			if p.HasTarget {
				target = &gamemath.Vec2{X: p.TargetX, Y: p.TargetY}
			}
			if p.HasColor {
				c := p.Color
				col = &c
			}
			SpawnFirework(e, target, col)
		}
	}
	launcher.Pending = retained

	if !launcher.Running {
		return
	}

	// Click-to-launch aims a rocket at the pointer.
	input := getOrCreateInput(e)
	trivia := GetOrCreateTrivia(e)
	if input.ClickJustPressed && !trivia.Open {
		target := gamemath.Vec2{X: float64(input.CursorX), Y: float64(input.CursorY)}
		SpawnFirework(e, &target, nil)
	}

	// Auto-spawn toward the concurrency target, at most one burst per tick.
	live := 0
	components.Firework.Each(e.World, func(entry *donburi.Entry) {
		live++
	})
	targetCount := simTargetCount(e)
	deficit := targetCount - live - len(launcher.Pending)
	if deficit > 0 {
		if deficit > cfg.Fireworks.BurstSize {
			deficit = cfg.Fireworks.BurstSize
		}
		ScheduleBurst(e, deficit, nil, nil)
	}
}

// simTargetCount reads the live concurrency target from settings, falling
// back to the config default when the intensity index is out of range.
func simTargetCount(e *ecs.ECS) int {
	settings := GetOrCreateSettings(e)
	steps := cfg.SettingsMenu.IntensitySteps
	if settings.IntensityIndex >= 0 && settings.IntensityIndex < len(steps) {
		return steps[settings.IntensityIndex]
	}
	return cfg.Fireworks.TargetCount
}
