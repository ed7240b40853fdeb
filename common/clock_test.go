package common

import "testing"

func TestClockAdvance(t *testing.T) {
	tests := []struct {
		name  string
		steps []float64
		want  float64
	}{
		{name: "starts at zero", steps: nil, want: 0},
		{name: "accumulates", steps: []float64{0.5, 0.25}, want: 0.75},
		{name: "ignores negative", steps: []float64{1.0, -0.5}, want: 1.0},
		{name: "ignores zero", steps: []float64{0, 0.1}, want: 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock()
			for _, dt := range tt.steps {
				c.Advance(dt)
			}
			if got := c.Now(); got != tt.want {
				t.Errorf("Now() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClockPause(t *testing.T) {
	c := NewClock()
	c.Advance(1.0)
	c.SetPaused(true)
	c.Advance(1.0)
	if got := c.Now(); got != 1.0 {
		t.Errorf("paused clock advanced to %v", got)
	}
	c.SetPaused(false)
	c.Advance(0.5)
	if got := c.Now(); got != 1.5 {
		t.Errorf("resumed clock = %v, want 1.5", got)
	}
}
