package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame snapshot of player intent. Movement reads held
// keys so walking is continuous; attack, pause and debug read just-pressed
// edges so one tap is one action.
type Input struct {
	MoveX, MoveY int
	Attack       bool
	Pause        bool
	Debug        bool
}

// Update samples the keyboard for this frame.
func (i *Input) Update() {
	i.MoveX, i.MoveY = resolveMove(
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	)
	i.Attack = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	i.Debug = inpututil.IsKeyJustPressed(ebiten.KeyD)
}

// resolveMove yields a direction only when exactly one arrow is held.
// Holding two or more arrows, opposing or adjacent, suppresses movement
// for the frame.
func resolveMove(left, right, up, down bool) (int, int) {
	switch {
	case left && !right && !up && !down:
		return -1, 0
	case right && !left && !up && !down:
		return 1, 0
	case up && !left && !right && !down:
		return 0, -1
	case down && !left && !right && !up:
		return 0, 1
	}
	return 0, 0
}

// Moving reports whether any movement key is held this frame.
func (i *Input) Moving() bool {
	return i.MoveX != 0 || i.MoveY != 0
}
