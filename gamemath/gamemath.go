package gamemath

import "math"

// Vec2 is a 2D point or displacement.
type Vec2 struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Heading returns the angle in radians from a to b.
func Heading(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// PushTrail records p as the most recent trail position, keeping at most max
// entries. Index 0 is always the newest position.
func PushTrail(trail []Vec2, p Vec2, max int) []Vec2 {
	if max <= 0 {
		return trail[:0]
	}
	if len(trail) < max {
		trail = append(trail, Vec2{})
	}
	copy(trail[1:], trail)
	trail[0] = p
	return trail
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
