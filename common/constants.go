package common

const (
	// TileSize is the grid cell size in pixels. Every entity position is
	// snapped to multiples of it.
	TileSize = 16

	// BaseWidth/BaseHeight are the logical screen size in pixels.
	BaseWidth  = 320
	BaseHeight = 240
)
