package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/feketea17/rpi-gb-dungeon/assets"
	"github.com/feketea17/rpi-gb-dungeon/common"
	"github.com/feketea17/rpi-gb-dungeon/obj"
	"github.com/feketea17/rpi-gb-dungeon/prefabs"
)

const sampleRate = 48000

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and hot reload")
	levelName := flag.String("level", "", "start at the named level in the sequence")
	flag.Parse()

	spec, err := prefabs.LoadSpec[prefabs.GameSpec]("game.yaml")
	if err != nil {
		log.Fatalf("load game config: %v", err)
	}

	clock := common.NewClock()
	cache := assets.NewCache()
	audioManager := obj.NewAudioManager(audio.NewContext(sampleRate), spec.SoundVolume, spec.MusicVolume)

	manager := NewStateManager(spec, cache, audioManager, clock, *levelName)
	game := NewGame(manager, audioManager, clock, *debug)

	ebiten.SetWindowSize(common.BaseWidth*3, common.BaseHeight*3)
	ebiten.SetWindowTitle(spec.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
