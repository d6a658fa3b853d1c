package systems

import (
	"github.com/kwert1k887/new-year-26/archetypes"
	"github.com/kwert1k887/new-year-26/components"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateTrivia returns the singleton trivia state, seeding the fact
// rotation from the saved settings so it resumes where it left off.
func GetOrCreateTrivia(e *ecs.ECS) *components.TriviaData {
	entry, ok := components.Trivia.First(e.World)
	if ok {
		return components.Trivia.Get(entry)
	}

	entry = archetypes.Trivia.Spawn(e)
	t := components.Trivia.Get(entry)
	if saved := loadedSettings; saved != nil && len(cfg.Trivia.Facts) > 0 {
		t.FactIndex = saved.FactIndex % len(cfg.Trivia.Facts)
		if t.FactIndex < 0 {
			t.FactIndex = 0
		}
	}
	return t
}

// OpenTrivia shows the modal and restarts the rotation timer.
func OpenTrivia(e *ecs.ECS) {
	t := GetOrCreateTrivia(e)
	t.Open = true
	t.RotateTimer = cfg.Trivia.RotateFrames
}

// CloseTrivia hides the modal and persists the rotation position.
func CloseTrivia(e *ecs.ECS) {
	t := GetOrCreateTrivia(e)
	t.Open = false
	SaveCurrentSettings(e, GetOrCreateSettings(e))
}

// NextFact advances the rotation and rearms the auto-rotate timer.
func NextFact(e *ecs.ECS) {
	t := GetOrCreateTrivia(e)
	if len(cfg.Trivia.Facts) == 0 {
		return
	}
	t.FactIndex = (t.FactIndex + 1) % len(cfg.Trivia.Facts)
	t.RotateTimer = cfg.Trivia.RotateFrames
}

// CurrentFact returns the fact the modal should display.
func CurrentFact(e *ecs.ECS) string {
	t := GetOrCreateTrivia(e)
	if len(cfg.Trivia.Facts) == 0 {
		return ""
	}
	return cfg.Trivia.Facts[t.FactIndex%len(cfg.Trivia.Facts)]
}

// UpdateTrivia toggles the modal on its key and rotates facts on a timer
// while open.
func UpdateTrivia(e *ecs.ECS) {
	t := GetOrCreateTrivia(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionTrivia).JustPressed && !IsSettingsOpen(e) {
		if t.Open {
			CloseTrivia(e)
		} else {
			OpenTrivia(e)
		}
	}

	if !t.Open {
		return
	}

	if t.RotateTimer > 0 {
		t.RotateTimer--
		if t.RotateTimer <= 0 {
			NextFact(e)
		}
	}
}
