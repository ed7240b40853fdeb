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

// PlayerState is the player's closed state set. Transitions happen only in
// Move, StartAttack, TakeDamage and Update; nothing outside the player
// writes the state.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerMoving
	PlayerAttacking
	PlayerHurt
	PlayerDying
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerMoving:
		return "moving"
	case PlayerAttacking:
		return "attacking"
	case PlayerHurt:
		return "hurt"
	case PlayerDying:
		return "dying"
	}
	return "unknown"
}

// Facing is the player's horizontal orientation. Vertical movement keeps
// the last horizontal facing.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

func (f Facing) Flipped() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

// Player timing windows, in logical-clock seconds.
const (
	playerMoveCooldown    = 0.15
	playerAttackDuration  = 0.5
	playerHurtDuration    = 1.0
	playerInvincibleAfter = 1.8
)

type Player struct {
	X, Y   int
	Facing Facing
	Health *component.Health
	Keys   int

	state      PlayerState
	stateStart float64
	lastMove   float64
	// end of the post-hit invincibility window; 0 means never hit
	invincibleUntil float64

	body  *component.AnimationPlayer
	sword *component.AnimationPlayer

	clock  *common.Clock
	sounds Sounds
}

// NewPlayer spawns a player at a grid-snapped position. Missing sheets are
// logged and replaced with nil so Draw falls back to a placeholder block.
func NewPlayer(x, y int, spec *prefabs.PlayerSpec, cache *assets.Cache, sounds Sounds, clock *common.Clock) *Player {
	body, err := cache.Image(spec.Body.Sheet)
	if err != nil {
		log.Printf("[player] body sheet %q unavailable: %v", spec.Body.Sheet, err)
		body = nil
	}
	sword, err := cache.Image(spec.Sword.Sheet)
	if err != nil {
		log.Printf("[player] sword sheet %q unavailable: %v", spec.Sword.Sheet, err)
		sword = nil
	}
	p := &Player{
		X:        common.Snap(x),
		Y:        common.Snap(y),
		Facing:   FacingRight,
		Health:   component.NewHealth(spec.MaxHealth),
		state:    PlayerIdle,
		lastMove: -playerMoveCooldown,
		body:     component.NewAnimationPlayer(body, spec.Body.TileSize, spec.Body.ClipTable(), clock),
		sword:    component.NewAnimationPlayer(sword, spec.Sword.TileSize, spec.Sword.ClipTable(), clock),
		clock:    clock,
		sounds:   sounds,
	}
	p.body.Play("idle_right", false)
	return p
}

func (p *Player) State() PlayerState {
	return p.state
}

func (p *Player) setState(s PlayerState) {
	p.state = s
	p.stateStart = p.clock.Now()
}

// Rect is the player's one-tile footprint.
func (p *Player) Rect() common.Rect {
	return common.TileRect(p.X, p.Y)
}

// SwordRect is the tile the sword covers during an attack: the one tile
// adjacent to the player toward its facing. Zero when not attacking.
func (p *Player) SwordRect() (common.Rect, bool) {
	if p.state != PlayerAttacking {
		return common.Rect{}, false
	}
	x := p.X + common.TileSize
	if p.Facing == FacingLeft {
		x = p.X - common.TileSize
	}
	return common.TileRect(x, p.Y), true
}

// Invincible reports whether the post-hit grace window is still open.
func (p *Player) Invincible() bool {
	return p.clock.Now() < p.invincibleUntil
}

// Move steps one tile. Direction must be orthogonal. Fails while
// attacking, hurt or dying, or inside the movement cooldown. Facing updates
// from the horizontal sign once the cooldown has passed, even when the
// level edge then stops the step, so the player can turn in place at a
// boundary. Wall tiles are the level's concern; the player only clamps to
// the level bounds.
func (p *Player) Move(dx, dy int) bool {
	if p.state != PlayerIdle && p.state != PlayerMoving {
		return false
	}
	if dx != 0 && dy != 0 {
		return false
	}
	now := p.clock.Now()
	if now-p.lastMove < playerMoveCooldown {
		return false
	}
	if dx > 0 {
		p.Facing = FacingRight
	} else if dx < 0 {
		p.Facing = FacingLeft
	}
	tx, ty := p.X+dx*common.TileSize, p.Y+dy*common.TileSize
	if tx != common.Clamp(tx, 0, common.BaseWidth-common.TileSize) ||
		ty != common.Clamp(ty, 0, common.BaseHeight-common.TileSize) {
		return false
	}
	p.X, p.Y = tx, ty
	p.lastMove = now
	p.setState(PlayerMoving)
	return true
}

// StopMoving returns to idle when no movement key is held.
func (p *Player) StopMoving() {
	if p.state == PlayerMoving {
		p.setState(PlayerIdle)
	}
}

// StartAttack begins the attack window. Allowed only from idle or moving.
func (p *Player) StartAttack() bool {
	if p.state != PlayerIdle && p.state != PlayerMoving {
		return false
	}
	p.setState(PlayerAttacking)
	p.sword.Play("attack_"+p.Facing.String(), true)
	p.sounds.Play("sword_2")
	return true
}

// TakeDamage applies a hit unless the player is invincible, already hurt or
// dying, reporting whether the hit landed. A lethal hit goes straight to
// dying, freezes on the death animation's last frame, and stops the music.
func (p *Player) TakeDamage(amount int) bool {
	if p.state == PlayerHurt || p.state == PlayerDying || p.Invincible() {
		return false
	}
	p.Health.Damage(amount)
	if p.Health.Dead() {
		p.setState(PlayerDying)
		p.body.Play("die_"+p.Facing.String(), true)
		p.sounds.StopMusic()
		p.sounds.Play("game_over")
		return true
	}
	p.setState(PlayerHurt)
	p.invincibleUntil = p.clock.Now() + playerInvincibleAfter
	p.body.Play("hurt_"+p.Facing.String(), true)
	p.sounds.Play("hit_7")
	return true
}

// Update advances state timers and the animations.
func (p *Player) Update() {
	now := p.clock.Now()
	switch p.state {
	case PlayerAttacking:
		if now-p.stateStart >= playerAttackDuration {
			p.setState(PlayerIdle)
		}
	case PlayerHurt:
		if now-p.stateStart >= playerHurtDuration {
			p.setState(PlayerIdle)
		}
	}
	// attacking keeps the previous body clip running under the sword
	switch p.state {
	case PlayerIdle:
		p.body.Play("idle_"+p.Facing.String(), false)
	case PlayerMoving:
		p.body.Play("walk_"+p.Facing.String(), false)
	}
	p.body.Update()
	if p.state == PlayerAttacking {
		p.sword.Update()
	}
}

func (p *Player) SetPaused(paused bool) {
	p.body.SetPaused(paused)
	p.sword.SetPaused(paused)
}

// Draw renders the body and, during an attack, the sword overlay. While
// invincible but past the hurt window the sprite blinks on clock parity.
func (p *Player) Draw(screen *ebiten.Image) {
	if p.Invincible() && p.state != PlayerHurt && p.state != PlayerDying &&
		int(p.clock.Now()*10)%2 == 1 {
		return
	}
	frame := p.body.Frame()
	if frame == nil {
		placeholder := assets.Placeholder(common.TileSize, common.TileSize, color.RGBA{R: 0xff, B: 0xff, A: 0xff})
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(p.X), float64(p.Y))
		screen.DrawImage(placeholder, op)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	screen.DrawImage(frame, op)

	if p.state == PlayerAttacking {
		if sf := p.sword.Frame(); sf != nil {
			// 48px sword cells are centered on the 16px player tile
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(p.X-common.TileSize), float64(p.Y-common.TileSize))
			screen.DrawImage(sf, op)
		}
	}
}
