package systems

import (
	"testing"

	"github.com/kwert1k887/new-year-26/components"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/yohamta/donburi"
)

func TestUpdateEntrance_SettlesAtRest(t *testing.T) {
	e := newTestECS()
	CreateEntrance(e)

	entry, _ := components.Entrance.First(e.World)
	ent := components.Entrance.Get(entry)
	if ent.Done {
		t.Fatal("entrance finished before any update")
	}

	// The longer tween sets the total runtime; a couple of extra ticks
	// absorb float accumulation.
	longest := cfg.Entrance.TitleDuration
	if cfg.Entrance.TimerDuration > longest {
		longest = cfg.Entrance.TimerDuration
	}
	ticks := int(longest*60) + 5
	for i := 0; i < ticks; i++ {
		UpdateEntrance(e)
	}

	if !ent.Done {
		t.Fatal("entrance never finished")
	}
	offset, alpha := entranceState(e)
	if offset != 0 || alpha != 1 {
		t.Fatalf("resting state (%v, %v), want (0, 1)", offset, alpha)
	}
}

func TestEntranceState_DefaultsWithoutEntity(t *testing.T) {
	e := newTestECS()
	offset, alpha := entranceState(e)
	if offset != 0 || alpha != 1 {
		t.Fatalf("missing entrance reports (%v, %v), want (0, 1)", offset, alpha)
	}
}

func TestUpdateSnow_WrapsAndRespectsToggle(t *testing.T) {
	e := newTestECS()
	CreateSnow(e)

	flakes := 0
	components.Snowflake.Each(e.World, func(entry *donburi.Entry) { flakes++ })
	if flakes != cfg.Snow.FlakeCount {
		t.Fatalf("%d flakes spawned, want %d", flakes, cfg.Snow.FlakeCount)
	}

	// Park one flake just past the bottom edge; the next update wraps it.
	entry, _ := components.Snowflake.First(e.World)
	flake := components.Snowflake.Get(entry)
	flake.Y = float64(cfg.C.Height) + flake.Radius + 1

	UpdateSnow(e)
	if flake.Y > float64(cfg.C.Height) {
		t.Fatalf("flake not wrapped: Y = %v", flake.Y)
	}

	// Disabling snow freezes every flake in place.
	GetOrCreateSettings(e).SnowEnabled = false
	before := flake.Y
	UpdateSnow(e)
	if flake.Y != before {
		t.Fatal("disabled snow still moved")
	}
}
