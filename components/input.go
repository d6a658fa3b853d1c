package components

import (
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the pointer state. JustPressed/JustReleased are computed
// on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	CursorX, CursorY int
	ClickJustPressed bool
}

var Input = donburi.NewComponentType[InputData]()
