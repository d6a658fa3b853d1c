package components

import (
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/yohamta/donburi"
)

// PendingSpawn is a staggered launch scheduled for a future frame. Entries
// are not cancelable; a pending spawn firing into a stopped launcher is
// dropped at fire time.
type PendingSpawn struct {
	FramesLeft int
	HasTarget  bool
	TargetX    float64
	TargetY    float64
	HasColor   bool
	Color      cfg.FireworkColor
}

// LauncherData is the singleton simulation-loop state: the running flag and
// the staggered-spawn schedule. The live rocket and spark collections are
// the ECS entities themselves.
type LauncherData struct {
	Running bool
	Pending []PendingSpawn
}

var Launcher = donburi.NewComponentType[LauncherData]()
