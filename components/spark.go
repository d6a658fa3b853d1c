package components

import (
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/kwert1k887/new-year-26/gamemath"
	"github.com/yohamta/donburi"
)

// SparkData is one explosion point radiating from a spent rocket.
// Heading and Decay are fixed at creation; Speed shrinks under friction,
// gravity pulls the point down and Opacity only ever decreases.
type SparkData struct {
	Position gamemath.Vec2

	Heading float64
	Speed   float64
	Opacity float64 // 1.0 down to the removal floor
	Decay   float64 // per-tick opacity loss, randomized per spark

	Trail []gamemath.Vec2
	Color cfg.FireworkColor
}

var Spark = donburi.NewComponentType[SparkData]()
