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

// EnemyState is the enemy's closed state set.
type EnemyState int

const (
	EnemyMoving EnemyState = iota
	EnemyIdle
	EnemyHurt
	EnemyDying
)

func (s EnemyState) String() string {
	switch s {
	case EnemyMoving:
		return "moving"
	case EnemyIdle:
		return "idle"
	case EnemyHurt:
		return "hurt"
	case EnemyDying:
		return "dying"
	}
	return "unknown"
}

// Axis is the patrol direction.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func ParseAxis(s string) Axis {
	if s == "vertical" {
		return AxisVertical
	}
	return AxisHorizontal
}

// Enemy timing windows, in logical-clock seconds.
const (
	enemyMoveCooldown = 0.3
	enemyIdlePause    = 3.0
	enemyHurtDuration = 0.8
	enemyDeathLinger  = 1.0
)

// Enemy patrols fixed-length legs along one axis. Facing doubles as the
// direction sign (right/down on FacingRight). Completing a leg or bumping a
// wall parks it in idle; after the pause it turns around and starts a fresh
// leg.
type Enemy struct {
	X, Y   int
	Kind   string
	Facing Facing

	// spawn point, kept for a possible respawn but otherwise unused
	startX, startY int

	axis        Axis
	blocks      int
	blocksMoved int

	state      EnemyState
	stateStart float64
	lastMove   float64

	body   *component.AnimationPlayer
	clock  *common.Clock
	sounds Sounds
}

func NewEnemy(x, y int, axis Axis, blocks int, spec *prefabs.EnemySpec, cache *assets.Cache, sounds Sounds, clock *common.Clock) *Enemy {
	sheet, err := cache.Image(spec.Body.Sheet)
	if err != nil {
		log.Printf("[enemy] sheet %q unavailable: %v", spec.Body.Sheet, err)
		sheet = nil
	}
	if blocks <= 0 {
		blocks = 2
	}
	e := &Enemy{
		X:        common.Snap(x),
		Y:        common.Snap(y),
		Kind:     spec.Kind,
		Facing:   FacingRight,
		startX:   common.Snap(x),
		startY:   common.Snap(y),
		axis:     axis,
		blocks:   blocks,
		state:    EnemyMoving,
		lastMove: -enemyMoveCooldown,
		body:     component.NewAnimationPlayer(sheet, spec.Body.TileSize, spec.Body.ClipTable(), clock),
		clock:    clock,
		sounds:   sounds,
	}
	e.body.Play("walk_right", false)
	return e
}

func (e *Enemy) State() EnemyState {
	return e.state
}

func (e *Enemy) setState(s EnemyState) {
	e.state = s
	e.stateStart = e.clock.Now()
}

func (e *Enemy) Rect() common.Rect {
	return common.TileRect(e.X, e.Y)
}

// TakeDamage puts the enemy into its hurt recoil. Returns false while
// already hurt or dying.
func (e *Enemy) TakeDamage() bool {
	if e.state == EnemyHurt || e.state == EnemyDying {
		return false
	}
	e.setState(EnemyHurt)
	e.body.Play("hurt_"+e.Facing.String(), true)
	return true
}

// StartDeath begins the removal countdown. The hurt animation keeps
// playing under the death flicker.
func (e *Enemy) StartDeath() {
	if e.state == EnemyDying {
		return
	}
	e.setState(EnemyDying)
	e.sounds.Play("hit_7")
}

// ShouldBeRemoved reports whether the death linger has elapsed.
func (e *Enemy) ShouldBeRemoved() bool {
	return e.state == EnemyDying && e.clock.Now()-e.stateStart >= enemyDeathLinger
}

// Dangerous reports whether touching the enemy hurts the player.
func (e *Enemy) Dangerous() bool {
	return e.state == EnemyMoving || e.state == EnemyIdle
}

// Update runs the patrol state machine. blocked answers whether a pixel
// position lands on a collider tile.
func (e *Enemy) Update(blocked func(x, y int) bool) {
	now := e.clock.Now()
	switch e.state {
	case EnemyHurt:
		if now-e.stateStart >= enemyHurtDuration {
			e.setState(EnemyMoving)
			e.body.Play("walk_"+e.Facing.String(), false)
		}
	case EnemyIdle:
		if now-e.stateStart >= enemyIdlePause {
			e.Facing = e.Facing.Flipped()
			e.blocksMoved = 0
			e.setState(EnemyMoving)
			e.body.Play("walk_"+e.Facing.String(), false)
		}
	case EnemyMoving:
		e.updateMovement(now, blocked)
	}
	e.body.Update()
}

func (e *Enemy) updateMovement(now float64, blocked func(x, y int) bool) {
	if now-e.lastMove < enemyMoveCooldown {
		return
	}
	dir := 1
	if e.Facing == FacingLeft {
		dir = -1
	}
	tx, ty := e.X, e.Y
	if e.axis == AxisHorizontal {
		tx += dir * common.TileSize
	} else {
		ty += dir * common.TileSize
	}
	if blocked != nil && blocked(tx, ty) {
		e.setState(EnemyIdle)
		e.body.Play("idle_"+e.Facing.String(), false)
		return
	}
	e.X, e.Y = tx, ty
	e.blocksMoved++
	e.lastMove = now
	if e.blocksMoved >= e.blocks {
		e.setState(EnemyIdle)
		e.body.Play("idle_"+e.Facing.String(), false)
	}
}

func (e *Enemy) SetPaused(paused bool) {
	e.body.SetPaused(paused)
}

// Draw renders the enemy, flickering on clock parity while dying.
func (e *Enemy) Draw(screen *ebiten.Image) {
	if e.state == EnemyDying && int(e.clock.Now()*10)%2 == 1 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(e.X), float64(e.Y))
	frame := e.body.Frame()
	if frame == nil {
		screen.DrawImage(assets.Placeholder(common.TileSize, common.TileSize, color.RGBA{R: 0xff, A: 0xff}), op)
		return
	}
	screen.DrawImage(frame, op)
}
