package common

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{name: "same tile", a: TileRect(16, 16), b: TileRect(16, 16), want: true},
		{name: "adjacent tiles", a: TileRect(0, 0), b: TileRect(16, 0), want: false},
		{name: "overlapping", a: Rect{X: 0, Y: 0, Width: 20, Height: 20}, b: TileRect(16, 16), want: true},
		{name: "far apart", a: TileRect(0, 0), b: TileRect(160, 160), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 1, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 0.25, 0.25},
		{1, 0, 0.25, 0.75},
		{10, 20, 0.5, 15},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{15, 0},
		{16, 16},
		{31, 16},
		{160, 160},
	}
	for _, tt := range tests {
		if got := Snap(tt.in); got != tt.want {
			t.Errorf("Snap(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
