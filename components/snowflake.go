package components

import "github.com/yohamta/donburi"

// SnowflakeData is one drifting decorative flake. Flakes are never removed;
// they wrap back to the top once past the bottom edge.
type SnowflakeData struct {
	X, Y      float64
	FallSpeed float64
	Radius    float64
	SwayPhase float64 // radians, advanced by config.Snow.SwayRate each tick
	BaseX     float64 // sway center
}

var Snowflake = donburi.NewComponentType[SnowflakeData]()
