package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/feketea17/rpi-gb-dungeon/common"
)

// Frame addresses one cell of a spritesheet grid.
type Frame struct {
	Row, Col int
}

// Clip is a named ordered frame sequence with per-frame timing.
type Clip struct {
	Frames   []Frame
	Duration float64 // seconds per frame
	Loop     bool
}

type frameKey struct {
	clip  string
	index int
}

// AnimationPlayer steps through named clips of a shared spritesheet. It owns
// no assets: the sheet comes from the atlas cache and is never mutated.
// Timing is driven by the logical clock, so a paused game cannot advance
// frames behind the pause flag's back.
type AnimationPlayer struct {
	sheet    *ebiten.Image
	tileSize int
	clips    map[string]Clip
	clock    *common.Clock

	current     string
	frameIdx    int
	lastAdvance float64
	finished    bool
	paused      bool

	frames map[frameKey]*ebiten.Image
}

// NewAnimationPlayer creates a player over sheet. sheet may be nil when the
// asset failed to load; the player still advances indexes and Frame returns
// nil so callers can draw a placeholder.
func NewAnimationPlayer(sheet *ebiten.Image, tileSize int, clips map[string]Clip, clock *common.Clock) *AnimationPlayer {
	return &AnimationPlayer{
		sheet:    sheet,
		tileSize: tileSize,
		clips:    clips,
		clock:    clock,
		frames:   make(map[frameKey]*ebiten.Image),
	}
}

// Play selects a clip. Switching clips, or reset=true, restarts it from
// frame 0. Re-selecting the current clip with reset=false is a no-op, which
// lets per-frame logic re-apply idle/walk clips every tick without
// restarting the loop.
func (a *AnimationPlayer) Play(name string, reset bool) {
	if _, ok := a.clips[name]; !ok {
		return
	}
	if a.current != name || reset {
		a.current = name
		a.frameIdx = 0
		a.lastAdvance = a.clock.Now()
		a.finished = false
	}
}

// Update advances the frame index once per elapsed multiple of the clip's
// frame duration. Non-looping clips pin on their last frame and set the
// finished flag.
func (a *AnimationPlayer) Update() {
	if a.current == "" || a.finished || a.paused {
		return
	}
	clip := a.clips[a.current]
	if len(clip.Frames) == 0 || clip.Duration <= 0 {
		return
	}
	now := a.clock.Now()
	for now-a.lastAdvance >= clip.Duration {
		a.lastAdvance += clip.Duration
		a.frameIdx++
		if a.frameIdx >= len(clip.Frames) {
			if clip.Loop {
				a.frameIdx = 0
			} else {
				a.frameIdx = len(clip.Frames) - 1
				a.finished = true
				return
			}
		}
	}
}

// SetPaused freezes or resumes frame advancement without resetting state.
func (a *AnimationPlayer) SetPaused(paused bool) {
	a.paused = paused
}

func (a *AnimationPlayer) Finished() bool {
	return a.finished
}

func (a *AnimationPlayer) Current() string {
	return a.current
}

func (a *AnimationPlayer) FrameIndex() int {
	return a.frameIdx
}

// Frame returns the sub-image for the current (clamped) frame, cutting it
// lazily on first request and caching it per (clip, frame).
func (a *AnimationPlayer) Frame() *ebiten.Image {
	if a.current == "" || a.sheet == nil {
		return nil
	}
	clip := a.clips[a.current]
	if len(clip.Frames) == 0 {
		return nil
	}
	idx := a.frameIdx
	if idx >= len(clip.Frames) {
		idx = len(clip.Frames) - 1
	}
	key := frameKey{clip: a.current, index: idx}
	if img, ok := a.frames[key]; ok {
		return img
	}
	f := clip.Frames[idx]
	x := f.Col * a.tileSize
	y := f.Row * a.tileSize
	sub := a.sheet.SubImage(image.Rect(x, y, x+a.tileSize, y+a.tileSize)).(*ebiten.Image)
	a.frames[key] = sub
	return sub
}
