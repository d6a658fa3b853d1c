package systems

import (
	"github.com/kwert1k887/new-year-26/archetypes"
	"github.com/kwert1k887/new-year-26/components"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// entranceDT matches the 60 TPS tick.
const entranceDT = 1.0 / 60.0

// CreateEntrance spawns the one-shot scene entrance animations: the
// headline slides down into place while the text fades in.
func CreateEntrance(e *ecs.ECS) {
	entry := archetypes.Entrance.Spawn(e)
	components.Entrance.Set(entry, &components.EntranceData{
		TitleOffset: components.NewGweenTweener(
			gween.New(-cfg.Entrance.TitleSlide, 0, cfg.Entrance.TitleDuration, ease.OutCubic)),
		TimerAlpha: components.NewGweenTweener(
			gween.New(0, 1, cfg.Entrance.TimerDuration, ease.OutQuad)),
		TitleValue: -cfg.Entrance.TitleSlide,
	})
}

// UpdateEntrance advances both tweens until they settle.
func UpdateEntrance(e *ecs.ECS) {
	entry, ok := components.Entrance.First(e.World)
	if !ok {
		return
	}
	ent := components.Entrance.Get(entry)
	if ent.Done {
		return
	}

	titleDone, alphaDone := true, true
	if ent.TitleOffset != nil {
		var d bool
		ent.TitleValue, d = ent.TitleOffset.Update(entranceDT)
		titleDone = d
	}
	if ent.TimerAlpha != nil {
		var d bool
		ent.AlphaValue, d = ent.TimerAlpha.Update(entranceDT)
		alphaDone = d
	}
	ent.Done = titleDone && alphaDone
}

// entranceState reports the current title offset and text alpha. Without an
// entrance entity everything draws at rest, fully opaque.
func entranceState(e *ecs.ECS) (offset float32, alpha float32) {
	entry, ok := components.Entrance.First(e.World)
	if !ok {
		return 0, 1
	}
	ent := components.Entrance.Get(entry)
	if ent.Done {
		return 0, 1
	}
	return ent.TitleValue, ent.AlphaValue
}
