package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/feketea17/rpi-gb-dungeon/common"
	"github.com/feketea17/rpi-gb-dungeon/obj"
	"github.com/feketea17/rpi-gb-dungeon/prefabs"
)

const tickSeconds = 1.0 / 60.0

type Game struct {
	clock   *common.Clock
	input   *obj.Input
	manager *StateManager
	audio   *obj.AudioManager

	paused       bool
	pauseUI      *ebitenui.UI
	pauseOverlay *ebiten.Image

	debug bool
	watch <-chan string
}

func NewGame(manager *StateManager, audio *obj.AudioManager, clock *common.Clock, debug bool) *Game {
	g := &Game{
		clock:   clock,
		input:   &obj.Input{},
		manager: manager,
		audio:   audio,
		debug:   debug,
	}
	g.pauseUI = NewPauseUI(g)
	g.pauseOverlay = ebiten.NewImage(common.BaseWidth, common.BaseHeight)
	g.pauseOverlay.Fill(color.Black)
	if debug {
		g.watch = prefabs.Watch()
		manager.SetDebug(true)
	}
	return g
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	g.clock.SetPaused(paused)
	g.manager.SetPaused(paused)
}

func (g *Game) Update() error {
	g.input.Update()

	if g.input.Pause && g.manager.InGame() {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.input.Debug {
		g.debug = !g.debug
		g.manager.SetDebug(g.debug)
	}

	if g.watch != nil {
		select {
		case name := <-g.watch:
			log.Printf("[game] %s changed, reloading level", name)
			g.manager.ReloadLevel()
		default:
		}
	}

	g.clock.Advance(tickSeconds)
	g.manager.HandleInput(g.input)
	g.manager.Update()
	if g.audio != nil {
		g.audio.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(screen)
	if g.paused {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(0.38)
		screen.DrawImage(g.pauseOverlay, op)
		if g.debug {
			vector.DrawFilledRect(screen, common.BaseWidth-8, 4, 4, 4, colornames.Yellow, false)
		}
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
