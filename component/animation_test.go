package component

import (
	"testing"

	"github.com/feketea17/rpi-gb-dungeon/common"
)

func testClips() map[string]Clip {
	return map[string]Clip{
		"walk": {
			Frames:   []Frame{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
			Duration: 0.1,
			Loop:     true,
		},
		"die": {
			Frames:   []Frame{{1, 0}, {1, 1}},
			Duration: 0.1,
			Loop:     false,
		},
	}
}

func TestAnimationLoops(t *testing.T) {
	clock := common.NewClock()
	a := NewAnimationPlayer(nil, 16, testClips(), clock)
	a.Play("walk", false)

	steps := []struct {
		advance float64
		want    int
	}{
		{0.05, 0},
		{0.05, 1},
		{0.1, 2},
		{0.1, 3},
		{0.1, 0}, // wraps
		{0.35, 3},
	}
	for i, s := range steps {
		clock.Advance(s.advance)
		a.Update()
		if got := a.FrameIndex(); got != s.want {
			t.Errorf("step %d: frame = %d, want %d", i, got, s.want)
		}
	}
	if a.Finished() {
		t.Error("looping clip reported finished")
	}
}

func TestAnimationPinsOnLastFrame(t *testing.T) {
	clock := common.NewClock()
	a := NewAnimationPlayer(nil, 16, testClips(), clock)
	a.Play("die", false)

	clock.Advance(1.0)
	a.Update()
	if got := a.FrameIndex(); got != 1 {
		t.Errorf("frame = %d, want pinned at 1", got)
	}
	if !a.Finished() {
		t.Error("non-looping clip not finished")
	}
	clock.Advance(1.0)
	a.Update()
	if got := a.FrameIndex(); got != 1 {
		t.Errorf("frame moved after finish: %d", got)
	}
}

func TestPlaySameClipIsNoOp(t *testing.T) {
	clock := common.NewClock()
	a := NewAnimationPlayer(nil, 16, testClips(), clock)
	a.Play("walk", false)
	clock.Advance(0.25)
	a.Update()
	if got := a.FrameIndex(); got != 2 {
		t.Fatalf("frame = %d, want 2", got)
	}

	a.Play("walk", false)
	if got := a.FrameIndex(); got != 2 {
		t.Errorf("re-play without reset moved frame to %d", got)
	}
	a.Play("walk", true)
	if got := a.FrameIndex(); got != 0 {
		t.Errorf("re-play with reset kept frame %d", got)
	}
}

func TestPlayUnknownClip(t *testing.T) {
	clock := common.NewClock()
	a := NewAnimationPlayer(nil, 16, testClips(), clock)
	a.Play("walk", false)
	a.Play("nope", false)
	if got := a.Current(); got != "walk" {
		t.Errorf("unknown clip switched current to %q", got)
	}
}

func TestAnimationPaused(t *testing.T) {
	clock := common.NewClock()
	a := NewAnimationPlayer(nil, 16, testClips(), clock)
	a.Play("walk", false)
	a.SetPaused(true)
	clock.Advance(0.5)
	a.Update()
	if got := a.FrameIndex(); got != 0 {
		t.Errorf("paused animation advanced to %d", got)
	}
}
