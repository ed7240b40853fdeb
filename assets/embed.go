package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed images sounds
var assetsFS embed.FS

// LoadImage decodes an embedded image by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := assetsFS.ReadFile(cleanAssetPath(path))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile returns the raw bytes of an embedded asset.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// LoadAudioPlayer decodes an embedded wav asset into a player on the given
// audio context.
func LoadAudioPlayer(ctx *audio.Context, path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	return ctx.NewPlayer(stream)
}

// Placeholder returns a solid-color image, used wherever an art asset
// failed to load.
func Placeholder(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
