package main

import (
	"image/color"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/feketea17/rpi-gb-dungeon/assets"
	"github.com/feketea17/rpi-gb-dungeon/common"
	"github.com/feketea17/rpi-gb-dungeon/obj"
	"github.com/feketea17/rpi-gb-dungeon/prefabs"
)

// GameState is the top-level screen the game is showing.
type GameState int

const (
	StateLogo GameState = iota
	StateTitle
	StateGame
)

func (s GameState) String() string {
	switch s {
	case StateLogo:
		return "logo"
	case StateTitle:
		return "title"
	case StateGame:
		return "game"
	}
	return "unknown"
}

// State timing, in logical-clock seconds.
const (
	stateFadeDuration = 0.5
	logoDuration      = 3.0
	logoStingerAt     = 0.3
)

var titleTextColor = color.RGBA{R: 120, G: 164, B: 106, A: 255}

type statePhase int

const (
	phaseSteady statePhase = iota
	phaseFadeOut
	phaseFadeIn
)

// StateManager runs the logo, title and game screens and the fades between
// them. Game is terminal: once entered there is no way back to the title,
// and the level loader built on first entry lives for the process.
type StateManager struct {
	state      GameState
	stateStart float64

	phase      statePhase
	phaseStart float64
	next       GameState

	spec   *prefabs.GameSpec
	cache  *assets.Cache
	sounds obj.Sounds
	clock  *common.Clock

	loader     *obj.LevelLoader
	startLevel string
	highScore  int
	debug      bool

	stingerPlayed bool

	logoImg  *ebiten.Image
	titleImg *ebiten.Image
	fadeImg  *ebiten.Image
	face     ebtext.Face
}

func NewStateManager(spec *prefabs.GameSpec, cache *assets.Cache, sounds obj.Sounds, clock *common.Clock, startLevel string) *StateManager {
	logoImg, err := cache.Image(spec.LogoImage)
	if err != nil {
		log.Printf("[state] logo image unavailable: %v", err)
	}
	titleImg, err := cache.Image(spec.TitleImage)
	if err != nil {
		log.Printf("[state] title image unavailable: %v", err)
	}
	fadeImg := ebiten.NewImage(common.BaseWidth, common.BaseHeight)
	fadeImg.Fill(color.Black)
	return &StateManager{
		state:      StateLogo,
		spec:       spec,
		cache:      cache,
		sounds:     sounds,
		clock:      clock,
		startLevel: startLevel,
		logoImg:    logoImg,
		titleImg:   titleImg,
		fadeImg:    fadeImg,
		face:       ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

func (m *StateManager) State() GameState {
	return m.state
}

func (m *StateManager) InGame() bool {
	return m.state == StateGame
}

func (m *StateManager) HighScore() int {
	return m.highScore
}

// StartStateTransition begins a fade into the next state. Rejected while a
// transition is already running.
func (m *StateManager) StartStateTransition(next GameState) bool {
	if m.phase != phaseSteady {
		return false
	}
	m.phase = phaseFadeOut
	m.phaseStart = m.clock.Now()
	m.next = next
	return true
}

func (m *StateManager) enterState(s GameState) {
	m.state = s
	m.stateStart = m.clock.Now()
	switch s {
	case StateTitle:
		m.sounds.PlayMusic(m.spec.TitleMusic)
	case StateGame:
		if m.loader != nil {
			return
		}
		loader, err := obj.NewLevelLoader(m.levelSequence(), m.cache, m.sounds, m.clock)
		if err != nil {
			log.Printf("[state] level loader: %v", err)
			m.state = StateTitle
			return
		}
		loader.SetDebug(m.debug)
		if !loader.LoadCurrentLevel() {
			log.Printf("[state] first level failed to load, returning to title")
			m.state = StateTitle
			return
		}
		m.loader = loader
	}
}

// levelSequence honors the -level flag by rotating the configured sequence
// to start at the named level.
func (m *StateManager) levelSequence() []string {
	if m.startLevel == "" {
		return m.spec.Levels
	}
	for i, name := range m.spec.Levels {
		if name == m.startLevel {
			return m.spec.Levels[i:]
		}
	}
	log.Printf("[state] unknown start level %q, using full sequence", m.startLevel)
	return m.spec.Levels
}

func (m *StateManager) SetDebug(debug bool) {
	m.debug = debug
	if m.loader != nil {
		m.loader.SetDebug(debug)
	}
}

func (m *StateManager) SetPaused(paused bool) {
	if m.loader != nil {
		m.loader.SetPaused(paused)
	}
}

// ReloadLevel re-reads the current level from disk. Driven by the debug
// file watcher.
func (m *StateManager) ReloadLevel() {
	if m.loader == nil {
		return
	}
	if !m.loader.LoadCurrentLevel() {
		log.Printf("[state] hot reload failed, keeping running level")
	}
}

// HandleInput routes this frame's input to the active state. Movement and
// attack only reach the player in the game state.
func (m *StateManager) HandleInput(in *obj.Input) {
	if m.phase != phaseSteady {
		return
	}
	switch m.state {
	case StateTitle:
		if in.Attack {
			m.StartStateTransition(StateGame)
		}
	case StateGame:
		if m.loader == nil {
			return
		}
		if in.Moving() {
			m.loader.MovePlayer(in.MoveX, in.MoveY)
		} else {
			m.loader.Player.StopMoving()
		}
		if in.Attack {
			m.loader.Player.StartAttack()
		}
	}
}

func (m *StateManager) Update() {
	now := m.clock.Now()
	switch m.phase {
	case phaseFadeOut:
		if now-m.phaseStart >= stateFadeDuration {
			m.enterState(m.next)
			m.phase = phaseFadeIn
			m.phaseStart = now
		}
		return
	case phaseFadeIn:
		if now-m.phaseStart >= stateFadeDuration {
			m.phase = phaseSteady
		}
	}

	switch m.state {
	case StateLogo:
		elapsed := now - m.stateStart
		if !m.stingerPlayed && elapsed >= logoStingerAt {
			m.stingerPlayed = true
			m.sounds.Play("gold_2")
		}
		if elapsed >= logoDuration {
			m.StartStateTransition(StateTitle)
		}
	case StateGame:
		if m.loader == nil {
			return
		}
		m.loader.Update()
		if m.loader.Score > m.highScore {
			m.highScore = m.loader.Score
		}
	}
}

func (m *StateManager) Draw(screen *ebiten.Image) {
	switch m.state {
	case StateLogo:
		m.drawCentered(screen, m.logoImg)
	case StateTitle:
		m.drawCentered(screen, m.titleImg)
		m.drawTitleText(screen)
	case StateGame:
		if m.loader != nil {
			m.loader.Draw(screen)
		}
	}
	if m.phase != phaseSteady {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(m.fadeAlpha())
		screen.DrawImage(m.fadeImg, op)
	}
}

func (m *StateManager) fadeAlpha() float32 {
	t := (m.clock.Now() - m.phaseStart) / stateFadeDuration
	if t > 1 {
		t = 1
	}
	if m.phase == phaseFadeIn {
		return float32(common.Lerp(1, 0, t))
	}
	return float32(common.Lerp(0, 1, t))
}

func (m *StateManager) drawCentered(screen *ebiten.Image, img *ebiten.Image) {
	if img == nil {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64((common.BaseWidth-w)/2), float64((common.BaseHeight-h)/2))
	screen.DrawImage(img, op)
}

func (m *StateManager) drawTitleText(screen *ebiten.Image) {
	if m.highScore > 0 {
		m.drawTextCentered(screen, "HIGH SCORE "+strconv.Itoa(m.highScore), 160, 1)
	}
	m.drawTextCentered(screen, "PRESS START", 192, 2)
}

func (m *StateManager) drawTextCentered(screen *ebiten.Image, s string, y float64, scale float64) {
	w, _ := ebtext.Measure(s, m.face, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((common.BaseWidth-w*scale)/2, y)
	op.ColorScale.ScaleWithColor(titleTextColor)
	ebtext.Draw(screen, s, m.face, op)
}
