package levels

import (
	"encoding/json"
	"fmt"
)

// Layer names every map must use. Unknown layer names are ignored with a
// log line at load time rather than failing the whole level.
const (
	LayerColliders  = "colliders"
	LayerBackground = "background"
	LayerAnimated   = "animated"
)

// Map is the on-disk level model. Tile layers are row-major grids of tile
// ids into the tileset, -1 meaning empty. Objects carry entity spawns.
type Map struct {
	Name           string      `json:"name"`
	Width          int         `json:"width"`
	Height         int         `json:"height"`
	TileSize       int         `json:"tile_size"`
	Tileset        string      `json:"tileset"`
	TilesetColumns int         `json:"tileset_columns"`
	Layers         []TileLayer `json:"layers"`
	Objects        []Object    `json:"objects"`
	TileDefs       []TileDef   `json:"tile_defs"`
}

// TileLayer is one named grid of tile ids, len(Data) rows of Width ints.
type TileLayer struct {
	Name string  `json:"name"`
	Data [][]int `json:"data"`
}

// Object is an entity spawn point. Width and Height are optional; object
// types with a fixed footprint ignore them. Properties are free-form and
// interpreted per object type.
type Object struct {
	Type       string                 `json:"type"`
	X          int                    `json:"x"`
	Y          int                    `json:"y"`
	Width      int                    `json:"width"`
	Height     int                    `json:"height"`
	Properties map[string]interface{} `json:"properties"`
}

// TileDef gives a tile id extra frames so the animated layer can cycle it.
type TileDef struct {
	ID            int     `json:"id"`
	Frames        []int   `json:"frames"`
	FrameDuration float64 `json:"frame_duration"`
}

// Layer returns the named tile layer, or false if the map has none.
func (m *Map) Layer(name string) (TileLayer, bool) {
	for _, l := range m.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return TileLayer{}, false
}

// Parse decodes and validates a level file's bytes.
func Parse(b []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("level %q: bad dimensions %dx%d", m.Name, m.Width, m.Height)
	}
	if m.TileSize <= 0 {
		return nil, fmt.Errorf("level %q: tile size must be positive", m.Name)
	}
	if m.Tileset == "" {
		return nil, fmt.Errorf("level %q: no tileset", m.Name)
	}
	if m.TilesetColumns <= 0 {
		return nil, fmt.Errorf("level %q: tileset columns must be positive", m.Name)
	}
	return &m, nil
}
