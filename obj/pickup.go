package obj

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/feketea17/rpi-gb-dungeon/assets"
	"github.com/feketea17/rpi-gb-dungeon/common"
	"github.com/feketea17/rpi-gb-dungeon/component"
	"github.com/feketea17/rpi-gb-dungeon/prefabs"
)

// PickupKind selects the pickup's effect and animation clip.
type PickupKind string

const (
	PickupHeart PickupKind = "heart"
	PickupKey   PickupKind = "key"
)

// Pickup is a collectible tile. Collect is idempotent; a collected pickup
// stays in the slice until the level sweeps it out at end of frame.
type Pickup struct {
	X, Y int
	Kind PickupKind

	collected bool
	body      *component.AnimationPlayer
	clock     *common.Clock
	sounds    Sounds
}

func NewPickup(x, y int, kind PickupKind, spec *prefabs.PickupSpec, cache *assets.Cache, sounds Sounds, clock *common.Clock) *Pickup {
	sheet, err := cache.Image(spec.Body.Sheet)
	if err != nil {
		log.Printf("[pickup] sheet %q unavailable: %v", spec.Body.Sheet, err)
		sheet = nil
	}
	if kind != PickupHeart && kind != PickupKey {
		log.Printf("[pickup] unknown kind %q, defaulting to heart", kind)
		kind = PickupHeart
	}
	p := &Pickup{
		X:      common.Snap(x),
		Y:      common.Snap(y),
		Kind:   kind,
		body:   component.NewAnimationPlayer(sheet, spec.Body.TileSize, spec.Body.ClipTable(), clock),
		clock:  clock,
		sounds: sounds,
	}
	p.body.Play(string(kind), false)
	return p
}

func (p *Pickup) Rect() common.Rect {
	return common.TileRect(p.X, p.Y)
}

func (p *Pickup) Collected() bool {
	return p.collected
}

// Collect applies the pickup's effect to the player and consumes the
// pickup. A heart at full health is still consumed, with a dull sound
// instead of the chime. Returns false only when already collected.
func (p *Pickup) Collect(player *Player) bool {
	if p.collected {
		return false
	}
	p.collected = true
	switch p.Kind {
	case PickupHeart:
		if player.Health.Heal(1) {
			p.sounds.Play("gold_2")
		} else {
			p.sounds.Play("hit_7")
		}
	case PickupKey:
		player.Keys++
		p.sounds.Play("gold_2")
	}
	return true
}

// OffScreen reports whether the pickup sits more than one tile outside the
// visible area, which gets it culled at load time.
func (p *Pickup) OffScreen() bool {
	return p.X < -common.TileSize || p.Y < -common.TileSize ||
		p.X > common.BaseWidth || p.Y > common.BaseHeight
}

func (p *Pickup) Update() {
	p.body.Update()
}

func (p *Pickup) SetPaused(paused bool) {
	p.body.SetPaused(paused)
}

func (p *Pickup) Draw(screen *ebiten.Image) {
	if p.collected {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	frame := p.body.Frame()
	if frame == nil {
		screen.DrawImage(assets.Placeholder(common.TileSize, common.TileSize, color.RGBA{G: 0xff, A: 0xff}), op)
		return
	}
	screen.DrawImage(frame, op)
}
