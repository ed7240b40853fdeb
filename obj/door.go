package obj

import (
	"github.com/feketea17/rpi-gb-dungeon/common"
)

// Door is the level exit. A locked door ignores the player until a key
// unlocks it; walking onto an unlocked door starts the level transition.
// Doors can span more than one tile; the map decides the rectangle.
type Door struct {
	X, Y          int
	Width, Height int
	Locked        bool
}

func NewDoor(x, y, width, height int, locked bool) *Door {
	if width <= 0 {
		width = common.TileSize
	}
	if height <= 0 {
		height = common.TileSize
	}
	return &Door{X: common.Snap(x), Y: common.Snap(y), Width: width, Height: height, Locked: locked}
}

func (d *Door) Rect() common.Rect {
	return common.Rect{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height}
}

// Unlock opens the door if the player holds a key, consuming it. Returns
// whether the door state changed.
func (d *Door) Unlock(player *Player) bool {
	if !d.Locked || player.Keys <= 0 {
		return false
	}
	player.Keys--
	d.Locked = false
	return true
}
