package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPause
	ActionTrivia
	ActionToggleSim
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionPause:      {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}},
			ActionTrivia:     {Keys: []ebiten.Key{ebiten.KeyT}},
			ActionToggleSim:  {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionMenuUp:     {Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}},
			ActionMenuDown:   {Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}},
			ActionMenuLeft:   {Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
			ActionMenuRight:  {Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
			ActionMenuSelect: {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
			ActionMenuBack:   {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}
