package gamemath

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	cases := []struct {
		a, b Vec2
		want float64
	}{
		{Vec2{0, 0}, Vec2{3, 4}, 5},
		{Vec2{1, 1}, Vec2{1, 1}, 0},
		{Vec2{-2, 0}, Vec2{2, 0}, 4},
	}
	for _, c := range cases {
		if got := Dist(c.a, c.b); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Dist(%+v, %+v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestHeading(t *testing.T) {
	cases := []struct {
		a, b Vec2
		want float64
	}{
		{Vec2{0, 0}, Vec2{1, 0}, 0},
		{Vec2{0, 0}, Vec2{0, 1}, math.Pi / 2},
		{Vec2{0, 0}, Vec2{-1, 0}, math.Pi},
		{Vec2{5, 5}, Vec2{5, 0}, -math.Pi / 2},
	}
	for _, c := range cases {
		if got := Heading(c.a, c.b); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Heading(%+v, %+v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestPushTrail(t *testing.T) {
	var trail []Vec2

	trail = PushTrail(trail, Vec2{1, 0}, 3)
	trail = PushTrail(trail, Vec2{2, 0}, 3)
	if len(trail) != 2 || trail[0] != (Vec2{2, 0}) || trail[1] != (Vec2{1, 0}) {
		t.Fatalf("trail = %+v, want newest first", trail)
	}

	trail = PushTrail(trail, Vec2{3, 0}, 3)
	trail = PushTrail(trail, Vec2{4, 0}, 3)
	if len(trail) != 3 {
		t.Fatalf("trail grew past its cap: %d entries", len(trail))
	}
	want := []Vec2{{4, 0}, {3, 0}, {2, 0}}
	for i := range want {
		if trail[i] != want[i] {
			t.Fatalf("trail[%d] = %+v, want %+v", i, trail[i], want[i])
		}
	}
}

func TestPushTrail_ZeroCap(t *testing.T) {
	trail := []Vec2{{1, 1}}
	if got := PushTrail(trail, Vec2{2, 2}, 0); len(got) != 0 {
		t.Fatalf("zero cap kept %d entries", len(got))
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3) = %v", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Clamp(-1, 0, 3) = %v", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Errorf("Clamp(2, 0, 3) = %v", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v", got)
	}
	if got := Lerp(2, 2, 0.9); got != 2 {
		t.Errorf("Lerp(2, 2, 0.9) = %v", got)
	}
}
