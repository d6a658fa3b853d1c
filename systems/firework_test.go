package systems

import (
	"math"
	"testing"

	"github.com/kwert1k887/new-year-26/archetypes"
	"github.com/kwert1k887/new-year-26/components"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/kwert1k887/new-year-26/gamemath"
)

func newRocket(launch, target gamemath.Vec2) *components.FireworkData {
	return &components.FireworkData{
		Position: launch,
		Launch:   launch,
		Target:   target,
		Heading:  gamemath.Heading(launch, target),
		Speed:    cfg.Fireworks.InitialSpeed,
		Distance: gamemath.Dist(launch, target),
	}
}

func TestTickFirework_FirstTickTravel(t *testing.T) {
	fw := newRocket(gamemath.Vec2{X: 100, Y: 500}, gamemath.Vec2{X: 100, Y: 100})
	TickFirework(fw)

	// Speed grows before the move, so the first step covers one
	// accelerated speed's worth of distance.
	want := cfg.Fireworks.InitialSpeed * cfg.Fireworks.Acceleration
	if math.Abs(fw.Traveled-want) > 1e-9 {
		t.Fatalf("traveled %v after one tick, want %v", fw.Traveled, want)
	}
	if math.Abs(fw.Speed-want) > 1e-9 {
		t.Fatalf("speed %v after one tick, want %v", fw.Speed, want)
	}
}

func TestTickFirework_TraveledStrictlyIncreasesUntilDone(t *testing.T) {
	fw := newRocket(gamemath.Vec2{X: 50, Y: 540}, gamemath.Vec2{X: 400, Y: 80})

	prev := 0.0
	ticks := 0
	for fw.Traveled < fw.Distance {
		TickFirework(fw)
		ticks++
		if fw.Traveled <= prev {
			t.Fatalf("traveled did not increase on tick %d: %v -> %v", ticks, prev, fw.Traveled)
		}
		prev = fw.Traveled
		if ticks > 500 {
			t.Fatal("rocket never reached its target")
		}
	}

	// With speed compounding every tick, an on-screen flight is short.
	if ticks > 200 {
		t.Fatalf("rocket took %d ticks, expected well under 200", ticks)
	}
}

func TestTickFirework_DegenerateGeometryFinishesFirstTick(t *testing.T) {
	p := gamemath.Vec2{X: 300, Y: 300}
	fw := newRocket(p, p)

	TickFirework(fw)
	if fw.Traveled < fw.Distance {
		t.Fatalf("coincident launch and target should finish on the first tick; traveled %v of %v",
			fw.Traveled, fw.Distance)
	}
}

func TestTickFirework_TrailNewestFirst(t *testing.T) {
	fw := newRocket(gamemath.Vec2{X: 0, Y: 540}, gamemath.Vec2{X: 0, Y: 0})

	var visited []gamemath.Vec2
	for i := 0; i < cfg.Fireworks.TrailLength+2; i++ {
		visited = append(visited, fw.Position)
		TickFirework(fw)
	}

	if len(fw.Trail) != cfg.Fireworks.TrailLength {
		t.Fatalf("trail holds %d positions, want %d", len(fw.Trail), cfg.Fireworks.TrailLength)
	}
	// Trail[0] is the position just before the latest move, and each later
	// slot is one step older.
	for i := 0; i < len(fw.Trail); i++ {
		want := visited[len(visited)-1-i]
		if fw.Trail[i] != want {
			t.Fatalf("trail[%d] = %+v, want %+v", i, fw.Trail[i], want)
		}
	}
}

func TestUpdateFireworks_ExplodesIntoSparks(t *testing.T) {
	e := newTestECS()
	StartSimulation(e)

	launch := gamemath.Vec2{X: 200, Y: 540}
	target := gamemath.Vec2{X: 200, Y: 500}
	entry := archetypes.Firework.Spawn(e)
	components.Firework.Set(entry, newRocket(launch, target))

	for i := 0; i < 100 && countFireworks(e) > 0; i++ {
		UpdateFireworks(e)
	}

	if got := countFireworks(e); got != 0 {
		t.Fatalf("%d rockets still live, want 0", got)
	}
	if got := countSparks(e); got != cfg.Fireworks.SparkCount {
		t.Fatalf("explosion produced %d sparks, want %d", got, cfg.Fireworks.SparkCount)
	}
}

func TestTickSpark_DecayArithmetic(t *testing.T) {
	sp := &components.SparkData{Opacity: 1.0, Decay: 0.02}

	ticks := 0
	for sp.Opacity > cfg.Fireworks.DecayFloor {
		before := sp.Opacity
		TickSpark(sp)
		ticks++
		if sp.Opacity >= before {
			t.Fatalf("opacity did not decrease on tick %d", ticks)
		}
		if ticks > 1000 {
			t.Fatal("spark never faded out")
		}
	}

	// 1.0 - 0.02k crosses the 0.01 floor on tick 50.
	if ticks != 50 {
		t.Fatalf("spark faded after %d ticks, want 50", ticks)
	}
}

func TestTickSpark_FrictionAndGravity(t *testing.T) {
	sp := &components.SparkData{Heading: 0, Speed: 4.0, Opacity: 1.0, Decay: 0.02}

	TickSpark(sp)
	TickSpark(sp)

	wantSpeed := 4.0 * cfg.Fireworks.Friction * cfg.Fireworks.Friction
	if math.Abs(sp.Speed-wantSpeed) > 1e-9 {
		t.Fatalf("speed %v after two ticks, want %v", sp.Speed, wantSpeed)
	}

	// Heading 0 moves purely horizontally; gravity still pulls down.
	wantX := 4.0*cfg.Fireworks.Friction + wantSpeed
	wantY := 2 * cfg.Fireworks.Gravity
	if math.Abs(sp.Position.X-wantX) > 1e-9 || math.Abs(sp.Position.Y-wantY) > 1e-9 {
		t.Fatalf("position (%v, %v) after two ticks, want (%v, %v)",
			sp.Position.X, sp.Position.Y, wantX, wantY)
	}
}

func TestUpdateSparks_RemovesAtFloor(t *testing.T) {
	e := newTestECS()
	StartSimulation(e)

	entry := archetypes.Spark.Spawn(e)
	components.Spark.Set(entry, &components.SparkData{Opacity: 1.0, Decay: 0.25})

	for i := 0; i < 3; i++ {
		UpdateSparks(e)
	}
	if got := countSparks(e); got != 1 {
		t.Fatalf("spark removed early: %d live after 3 ticks", got)
	}

	UpdateSparks(e)
	if got := countSparks(e); got != 0 {
		t.Fatalf("%d sparks live after fading out, want 0", got)
	}
}
