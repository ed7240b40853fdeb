package levels

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{
			name: "valid",
			json: `{"name":"t","width":2,"height":2,"tile_size":16,"tileset":"images/tileset.png","tileset_columns":8,
				"layers":[{"name":"colliders","data":[[0,-1],[-1,0]]}]}`,
		},
		{
			name:    "bad json",
			json:    `{`,
			wantErr: "parse level",
		},
		{
			name:    "zero dimensions",
			json:    `{"name":"t","width":0,"height":2,"tile_size":16,"tileset":"x","tileset_columns":8}`,
			wantErr: "bad dimensions",
		},
		{
			name:    "no tileset",
			json:    `{"name":"t","width":2,"height":2,"tile_size":16,"tileset_columns":8}`,
			wantErr: "no tileset",
		},
		{
			name:    "bad tile size",
			json:    `{"name":"t","width":2,"height":2,"tile_size":0,"tileset":"x","tileset_columns":8}`,
			wantErr: "tile size",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.json))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Parse: %v", err)
				}
				if _, ok := m.Layer(LayerColliders); !ok {
					t.Error("colliders layer not found")
				}
				if _, ok := m.Layer("nope"); ok {
					t.Error("found a layer that does not exist")
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEmbeddedLevels(t *testing.T) {
	for _, name := range []string{"level-1", "level-2"} {
		b, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		m, err := Parse(b)
		if err != nil {
			t.Fatalf("Parse(%s): %v", name, err)
		}
		for _, layer := range []string{LayerColliders, LayerBackground, LayerAnimated} {
			if _, ok := m.Layer(layer); !ok {
				t.Errorf("%s: missing %s layer", name, layer)
			}
		}
		hasPlayer := false
		for _, obj := range m.Objects {
			if obj.Type == "player" {
				hasPlayer = true
			}
		}
		if !hasPlayer {
			t.Errorf("%s: no player spawn", name)
		}
	}
}
