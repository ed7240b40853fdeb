package obj

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/feketea17/rpi-gb-dungeon/assets"
)

// Sounds is the audio surface game objects depend on. Failures inside an
// implementation are logged, never surfaced, so missing or broken audio
// cannot affect gameplay.
type Sounds interface {
	Play(name string)
	PlayMusic(name string)
	StopMusic()
}

// AudioManager plays embedded wav assets on a shared audio context. Effect
// players are cached on first use and rewound on replay. Music loops by
// rewinding in Update when the track runs out.
type AudioManager struct {
	ctx         *audio.Context
	soundVolume float64
	musicVolume float64

	effects map[string]*audio.Player
	failed  map[string]bool

	music     *audio.Player
	musicName string
}

func NewAudioManager(ctx *audio.Context, soundVolume, musicVolume float64) *AudioManager {
	return &AudioManager{
		ctx:         ctx,
		soundVolume: soundVolume,
		musicVolume: musicVolume,
		effects:     make(map[string]*audio.Player),
		failed:      make(map[string]bool),
	}
}

func (a *AudioManager) player(name string) *audio.Player {
	if p, ok := a.effects[name]; ok {
		return p
	}
	if a.failed[name] {
		return nil
	}
	p, err := assets.LoadAudioPlayer(a.ctx, "sounds/"+name+".wav")
	if err != nil {
		log.Printf("[audio] sound %q unavailable: %v", name, err)
		a.failed[name] = true
		return nil
	}
	a.effects[name] = p
	return p
}

// Play fires a sound effect from the start, cutting off any earlier play of
// the same effect.
func (a *AudioManager) Play(name string) {
	p := a.player(name)
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("[audio] rewind %q: %v", name, err)
		return
	}
	p.SetVolume(a.soundVolume)
	p.Play()
}

// PlayMusic starts a looping track, replacing the current one. Restarting
// the track that is already playing is a no-op.
func (a *AudioManager) PlayMusic(name string) {
	if a.musicName == name && a.music != nil && a.music.IsPlaying() {
		return
	}
	a.StopMusic()
	p, err := assets.LoadAudioPlayer(a.ctx, "sounds/"+name+".wav")
	if err != nil {
		log.Printf("[audio] music %q unavailable: %v", name, err)
		return
	}
	p.SetVolume(a.musicVolume)
	p.Play()
	a.music = p
	a.musicName = name
}

func (a *AudioManager) StopMusic() {
	if a.music != nil {
		a.music.Pause()
		a.music = nil
		a.musicName = ""
	}
}

// Update keeps the music looping. Call once per frame.
func (a *AudioManager) Update() {
	if a.music != nil && !a.music.IsPlaying() {
		if err := a.music.Rewind(); err != nil {
			log.Printf("[audio] music rewind: %v", err)
			a.music = nil
			return
		}
		a.music.Play()
	}
}

// NopSounds discards all audio. Used by tests and as the fallback when no
// audio device exists.
type NopSounds struct{}

func (NopSounds) Play(string)      {}
func (NopSounds) PlayMusic(string) {}
func (NopSounds) StopMusic()       {}
