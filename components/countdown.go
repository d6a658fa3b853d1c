package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TimeParts is a millisecond duration decomposed for display. Days is
// unbounded; Hours, Minutes and Seconds stay in their natural ranges.
type TimeParts struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// CountdownData is the singleton clock state. Target is fixed at
// construction. Once Elapsed is set the clock never recomputes again.
type CountdownData struct {
	Target   time.Time
	Interval time.Duration
	LastTick time.Time

	Running   bool
	Elapsed   bool
	Remaining TimeParts

	// ThresholdFired[i] mirrors config.Countdown.ThresholdsMillis[i];
	// each threshold signal is emitted at most once.
	ThresholdFired []bool
}

var Countdown = donburi.NewComponentType[CountdownData]()
