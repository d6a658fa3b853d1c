package components

import "github.com/yohamta/donburi"

// TriviaData is the singleton modal state. FactIndex survives restarts via
// the saved settings so the rotation picks up where it left off.
type TriviaData struct {
	Open        bool
	FactIndex   int
	RotateTimer int // frames until the next automatic fact change
}

var Trivia = donburi.NewComponentType[TriviaData]()
