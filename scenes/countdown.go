package scenes

import (
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/kwert1k887/new-year-26/fonts"
	"github.com/kwert1k887/new-year-26/systems"
	"github.com/kwert1k887/new-year-26/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// CountdownScene is the main scene: the clock, the fireworks sky, snow and
// the trivia modal all live in its ECS.
type CountdownScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	triviaUI     *ui.TriviaUI
	once         sync.Once
	inert        bool
}

// NewCountdownScene creates the countdown scene
func NewCountdownScene(sc SceneChanger) *CountdownScene {
	return &CountdownScene{sceneChanger: sc}
}

func (cs *CountdownScene) Update() {
	cs.once.Do(cs.configure)
	if cs.inert || cs.ecs == nil {
		return
	}

	cs.ecs.Update()

	trivia := systems.GetOrCreateTrivia(cs.ecs)
	if trivia.Open {
		if cs.triviaUI == nil {
			// Modal never built (font failure); degrade to no trivia.
			trivia.Open = false
			return
		}
		cs.triviaUI.SetFact(systems.CurrentFact(cs.ecs))
		cs.triviaUI.Update()
	}
}

func (cs *CountdownScene) Draw(screen *ebiten.Image) {
	// Always clear to the night sky; this is the per-tick surface clear.
	screen.Fill(cfg.NightSky)

	if cs.inert || cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)

	if trivia := systems.GetOrCreateTrivia(cs.ecs); trivia.Open && cs.triviaUI != nil {
		cs.triviaUI.Draw(screen)
	}
}

func (cs *CountdownScene) configure() {
	// A missing text surface would otherwise surface as a nil face deep in
	// a draw call; detect it here and stay inert instead.
	if !fonts.Loaded(fonts.Title, fonts.Timer, fonts.Regular, fonts.Small) {
		log.Printf("Warning: fonts unavailable, countdown scene disabled")
		cs.inert = true
		return
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateTrivia)
	e.AddSystem(systems.UpdateSettingsMenu)

	// Simulation systems freeze while the pause menu is up
	e.AddSystem(systems.WithPauseCheck(systems.UpdateLauncher))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateFireworks))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSparks))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSnow))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEntrance))

	// The clock follows wall time and keeps ticking even while paused
	e.AddSystem(systems.UpdateCountdown)

	// Renderers, back to front
	e.AddRenderer(cfg.Default, systems.DrawSnow)
	e.AddRenderer(cfg.Default, systems.DrawFireworks)
	e.AddRenderer(cfg.Default, systems.DrawSparks)
	e.AddRenderer(cfg.Default, systems.DrawCountdown)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	cs.ecs = e

	systems.GetOrCreateLauncher(e)
	systems.CreateCountdown(e, systems.NextNewYear(time.Now()))
	systems.CreateSnow(e)
	systems.CreateEntrance(e)
	systems.GetOrCreateTrivia(e)

	triviaUI, err := ui.NewTriviaUI(
		func() { systems.NextFact(cs.ecs) },
		func() { systems.CloseTrivia(cs.ecs) },
	)
	if err != nil {
		log.Printf("Warning: trivia modal unavailable: %v", err)
	} else {
		cs.triviaUI = triviaUI
	}

	systems.StartSimulation(e)
}
