package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/feketea17/rpi-gb-dungeon/component"
)

// GameSpec is the top-level game configuration.
type GameSpec struct {
	Title       string   `yaml:"title"`
	Levels      []string `yaml:"levels"`
	MusicVolume float64  `yaml:"music_volume"`
	SoundVolume float64  `yaml:"sound_volume"`
	LogoImage   string   `yaml:"logo_image"`
	TitleImage  string   `yaml:"title_image"`
	TitleMusic  string   `yaml:"title_music"`
}

// ClipSpec is one named animation clip as authored in yaml. Frames are
// [row, col] pairs into the sheet grid.
type ClipSpec struct {
	Frames   [][2]int `yaml:"frames"`
	Duration float64  `yaml:"duration"`
	Loop     bool     `yaml:"loop"`
}

// AnimationSpec describes a spritesheet and its clips.
type AnimationSpec struct {
	Sheet    string              `yaml:"sheet"`
	TileSize int                 `yaml:"tile_size"`
	Clips    map[string]ClipSpec `yaml:"clips"`
}

// PlayerSpec configures the player prefab.
type PlayerSpec struct {
	MaxHealth int           `yaml:"max_health"`
	Body      AnimationSpec `yaml:"body"`
	Sword     AnimationSpec `yaml:"sword"`
}

// EnemySpec configures one enemy kind.
type EnemySpec struct {
	Kind string        `yaml:"kind"`
	Body AnimationSpec `yaml:"body"`
}

// PickupSpec configures the pickup sheet shared by all pickup kinds.
type PickupSpec struct {
	Body AnimationSpec `yaml:"body"`
}

// Clips converts the authored clip table into runtime animation clips.
func (s AnimationSpec) ClipTable() map[string]component.Clip {
	clips := make(map[string]component.Clip, len(s.Clips))
	for name, cs := range s.Clips {
		frames := make([]component.Frame, len(cs.Frames))
		for i, f := range cs.Frames {
			frames[i] = component.Frame{Row: f[0], Col: f[1]}
		}
		clips[name] = component.Clip{Frames: frames, Duration: cs.Duration, Loop: cs.Loop}
	}
	return clips
}

func (s AnimationSpec) validate(owner string) error {
	if s.Sheet == "" {
		return fmt.Errorf("%s: animation sheet is empty", owner)
	}
	if s.TileSize <= 0 {
		return fmt.Errorf("%s: tile size must be positive, got %d", owner, s.TileSize)
	}
	for name, clip := range s.Clips {
		if len(clip.Frames) == 0 {
			return fmt.Errorf("%s: clip %q has no frames", owner, name)
		}
		if clip.Duration <= 0 {
			return fmt.Errorf("%s: clip %q duration must be positive", owner, name)
		}
	}
	return nil
}

// requireClips fails on missing clip names so a typo in a prefab file
// surfaces at load time instead of as a silently frozen sprite.
func (s AnimationSpec) requireClips(owner string, names ...string) error {
	for _, name := range names {
		if _, ok := s.Clips[name]; !ok {
			return fmt.Errorf("%s: missing clip %q", owner, name)
		}
	}
	return nil
}

type validator interface {
	Validate() error
}

func (s *GameSpec) Validate() error {
	if len(s.Levels) == 0 {
		return fmt.Errorf("game: no levels configured")
	}
	return nil
}

func (s *PlayerSpec) Validate() error {
	if err := s.Body.validate("player body"); err != nil {
		return err
	}
	if err := s.Body.requireClips("player body",
		"idle_right", "idle_left", "walk_right", "walk_left",
		"hurt_right", "hurt_left", "die_right", "die_left"); err != nil {
		return err
	}
	if err := s.Sword.validate("player sword"); err != nil {
		return err
	}
	return s.Sword.requireClips("player sword", "attack_right", "attack_left")
}

func (s *EnemySpec) Validate() error {
	if s.Kind == "" {
		return fmt.Errorf("enemy: kind is empty")
	}
	if err := s.Body.validate("enemy " + s.Kind); err != nil {
		return err
	}
	return s.Body.requireClips("enemy "+s.Kind,
		"idle_right", "idle_left", "walk_right", "walk_left", "hurt_right", "hurt_left")
}

func (s *PickupSpec) Validate() error {
	if err := s.Body.validate("pickup"); err != nil {
		return err
	}
	return s.Body.requireClips("pickup", "heart", "key")
}

// LoadSpec parses a prefab file into a typed spec and validates it.
func LoadSpec[T any](name string) (*T, error) {
	b, err := Load(name)
	if err != nil {
		return nil, err
	}
	var spec T
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return nil, fmt.Errorf("parse prefab %q: %w", name, err)
	}
	if v, ok := any(&spec).(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("prefab %q: %w", name, err)
		}
	}
	return &spec, nil
}
