package obj

import (
	"image"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/feketea17/rpi-gb-dungeon/assets"
	"github.com/feketea17/rpi-gb-dungeon/common"
)

// HUD draws the in-game overlay: one heart per point of max health, filled
// or empty, plus the session score and held keys.
type HUD struct {
	full  *ebiten.Image
	empty *ebiten.Image
	face  ebtext.Face
}

func NewHUD(cache *assets.Cache) *HUD {
	h := &HUD{face: ebtext.NewGoXFace(basicfont.Face7x13)}
	sheet, err := cache.Image("images/ui_hud.png")
	if err != nil {
		log.Printf("[hud] sheet unavailable: %v", err)
		return h
	}
	ts := common.TileSize
	h.full = sheet.SubImage(image.Rect(0, 0, ts, ts)).(*ebiten.Image)
	h.empty = sheet.SubImage(image.Rect(2*ts, 0, 3*ts, ts)).(*ebiten.Image)
	return h
}

func (h *HUD) Draw(screen *ebiten.Image, player *Player, score int) {
	if h.full != nil {
		for i := 0; i < player.Health.Max; i++ {
			img := h.empty
			if i < player.Health.Current {
				img = h.full
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(16+i*common.TileSize), 16)
			screen.DrawImage(img, op)
		}
	}
	h.drawRightAligned(screen, "SCORE "+strconv.Itoa(score), 8)
	if player.Keys > 0 {
		h.drawRightAligned(screen, "KEYS "+strconv.Itoa(player.Keys), 24)
	}
}

func (h *HUD) drawRightAligned(screen *ebiten.Image, s string, y float64) {
	w, _ := ebtext.Measure(s, h.face, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(common.BaseWidth-8-w, y)
	ebtext.Draw(screen, s, h.face, op)
}
