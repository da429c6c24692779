package core

import "testing"

func TestVec3AddX(t *testing.T) {
	v := Vec3{X: 1, Y: -1.5, Z: 0}

	got := v.AddX(2)
	if got.X != 3 || got.Y != -1.5 || got.Z != 0 {
		t.Errorf("AddX(2) = %+v, expected {3 -1.5 0}", got)
	}
	if v.X != 1 {
		t.Error("AddX should not modify the receiver")
	}
}

func TestVec3Add(t *testing.T) {
	got := Vec3{X: 1, Y: 2, Z: 3}.Add(Vec3{X: 0.5, Y: -2, Z: 1})
	want := Vec3{X: 1.5, Y: 0, Z: 4}
	if got != want {
		t.Errorf("Add() = %+v, expected %+v", got, want)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestTickSeconds(t *testing.T) {
	tests := []struct {
		rate int
		want float64
	}{
		{60, 1.0 / 60},
		{20, 0.05},
		{0, 1.0 / 60},
		{-5, 1.0 / 60},
	}
	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.TickSeconds(); got != tc.want {
			t.Errorf("TickSeconds() with rate %d = %f, expected %f", tc.rate, got, tc.want)
		}
	}
}
