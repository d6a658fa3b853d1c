package components

import (
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/kwert1k887/new-year-26/gamemath"
	"github.com/yohamta/donburi"
)

// FireworkData is a rocket in flight from its launch point toward a target.
// Launch, Target, Heading and Color are fixed at creation; Position, Speed
// and Traveled mutate every tick. Speed only grows, so Traveled is
// monotonically non-decreasing until the rocket is removed.
type FireworkData struct {
	Position gamemath.Vec2
	Launch   gamemath.Vec2
	Target   gamemath.Vec2

	Heading  float64 // radians from Launch to Target
	Speed    float64
	Traveled float64 // Euclidean distance from Launch, recomputed each tick
	Distance float64 // straight-line Launch-to-Target distance

	Trail []gamemath.Vec2 // most-recent-first, fixed capacity
	Color cfg.FireworkColor
}

var Firework = donburi.NewComponentType[FireworkData]()
