package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/kwert1k887/new-year-26/fonts"
	"github.com/kwert1k887/new-year-26/scenes"
	"github.com/kwert1k887/new-year-26/systems"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	loadFonts()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewCountdownScene(g)

	return g
}

// loadFonts parses the bundled face at every display size. A parse failure
// is logged and leaves the scene inert rather than crashing mid-draw.
func loadFonts() {
	sizes := map[fonts.FontName]float64{
		fonts.Regular: 16,
		fonts.Timer:   40,
		fonts.Title:   28,
		fonts.Small:   12,
	}
	for name, size := range sizes {
		if err := fonts.LoadFontWithSize(name, goregular.TTF, size); err != nil {
			log.Printf("Warning: could not load font %s: %v", name, err)
		}
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func main() {
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
