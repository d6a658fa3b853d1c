package systems

import (
	"testing"

	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/yohamta/donburi/ecs"
)

// pressAction simulates a just-pressed edge for one action.
func pressAction(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
}

// releaseAll clears all held actions for the next frame.
func releaseAll(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

func TestUpdatePause_TogglesOnKey(t *testing.T) {
	e := newTestECS()

	pressAction(e, cfg.ActionPause)
	UpdatePause(e)
	if !GetOrCreatePause(e).IsPaused {
		t.Fatal("pause key did not pause")
	}

	// Holding the key across the next frame must not re-toggle.
	input := getOrCreateInput(e)
	input.Previous = input.Current
	UpdatePause(e)
	if !GetOrCreatePause(e).IsPaused {
		t.Fatal("held pause key toggled again")
	}

	releaseAll(e)
	pressAction(e, cfg.ActionPause)
	UpdatePause(e)
	if GetOrCreatePause(e).IsPaused {
		t.Fatal("second press did not resume")
	}
}

func TestUpdatePause_ToggleSimStopsAndRestarts(t *testing.T) {
	e := newTestECS()
	StartSimulation(e)
	SpawnFirework(e, nil, nil)

	pressAction(e, cfg.ActionToggleSim)
	UpdatePause(e)
	if GetOrCreateLauncher(e).Running {
		t.Fatal("toggle did not stop the simulation")
	}
	if got := countFireworks(e); got != 0 {
		t.Fatalf("stop left %d rockets live", got)
	}

	releaseAll(e)
	pressAction(e, cfg.ActionToggleSim)
	UpdatePause(e)
	if !GetOrCreateLauncher(e).Running {
		t.Fatal("toggle did not restart the simulation")
	}
}

func TestWithPauseCheck(t *testing.T) {
	e := newTestECS()

	ran := false
	system := WithPauseCheck(func(*ecs.ECS) { ran = true })

	system(e)
	if !ran {
		t.Fatal("wrapped system skipped while unpaused")
	}

	ran = false
	GetOrCreatePause(e).IsPaused = true
	system(e)
	if ran {
		t.Fatal("wrapped system ran while paused")
	}
}

func TestUpdateTrivia_RotatesOnTimer(t *testing.T) {
	e := newTestECS()
	OpenTrivia(e)
	trivia := GetOrCreateTrivia(e)
	start := trivia.FactIndex

	for i := 0; i < cfg.Trivia.RotateFrames; i++ {
		UpdateTrivia(e)
	}
	want := (start + 1) % len(cfg.Trivia.Facts)
	if trivia.FactIndex != want {
		t.Fatalf("fact index %d after a full rotation period, want %d", trivia.FactIndex, want)
	}
	// NextFact rearms the timer for the next rotation.
	if trivia.RotateTimer != cfg.Trivia.RotateFrames {
		t.Fatalf("rotate timer %d after advancing, want %d", trivia.RotateTimer, cfg.Trivia.RotateFrames)
	}
}

func TestNextFact_WrapsAround(t *testing.T) {
	e := newTestECS()
	trivia := GetOrCreateTrivia(e)
	trivia.FactIndex = len(cfg.Trivia.Facts) - 1

	NextFact(e)
	if trivia.FactIndex != 0 {
		t.Fatalf("fact index %d after wrap, want 0", trivia.FactIndex)
	}
}

func TestCurrentFact_MatchesIndex(t *testing.T) {
	e := newTestECS()
	trivia := GetOrCreateTrivia(e)
	trivia.FactIndex = 2

	if got := CurrentFact(e); got != cfg.Trivia.Facts[2] {
		t.Fatalf("CurrentFact = %q, want %q", got, cfg.Trivia.Facts[2])
	}
}
