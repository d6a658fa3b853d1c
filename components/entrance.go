package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tweener animates a single scalar over time. Update advances by dt seconds
// and reports the current value and whether the animation has finished.
// Anything conforming can drive the entrance animations; the shipped
// implementation wraps gween.
type Tweener interface {
	Update(dt float32) (value float32, finished bool)
}

type gweenTweener struct {
	tw *gween.Tween
}

func (g *gweenTweener) Update(dt float32) (float32, bool) {
	return g.tw.Update(dt)
}

// NewGweenTweener wraps a gween tween in the Tweener interface.
func NewGweenTweener(tw *gween.Tween) Tweener {
	return &gweenTweener{tw: tw}
}

// EntranceData holds the one-shot scene entrance animations: the headline
// slides down while the countdown text fades in. Done flips when both
// tweens have finished; the draw code then uses the resting values.
type EntranceData struct {
	TitleOffset Tweener
	TimerAlpha  Tweener

	TitleValue float32
	AlphaValue float32
	Done       bool
}

var Entrance = donburi.NewComponentType[EntranceData]()
