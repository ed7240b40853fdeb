package obj

import (
	"testing"

	"github.com/feketea17/rpi-gb-dungeon/assets"
	"github.com/feketea17/rpi-gb-dungeon/common"
	"github.com/feketea17/rpi-gb-dungeon/prefabs"
)

// soundRecorder captures sound calls so tests can assert on them.
type soundRecorder struct {
	played       []string
	musicStopped bool
}

func (r *soundRecorder) Play(name string) { r.played = append(r.played, name) }
func (r *soundRecorder) PlayMusic(string) {}
func (r *soundRecorder) StopMusic()       { r.musicStopped = true }

func (r *soundRecorder) playedNames() map[string]bool {
	m := make(map[string]bool, len(r.played))
	for _, n := range r.played {
		m[n] = true
	}
	return m
}

// Sheets point at files that don't exist so the animation players run with
// nil sheets; logic under test never touches the GPU.
func testAnimSpec(tileSize int, clips ...string) prefabs.AnimationSpec {
	m := make(map[string]prefabs.ClipSpec, len(clips))
	for _, name := range clips {
		m[name] = prefabs.ClipSpec{Frames: [][2]int{{0, 0}, {0, 1}}, Duration: 0.1, Loop: true}
	}
	return prefabs.AnimationSpec{Sheet: "images/does-not-exist.png", TileSize: tileSize, Clips: m}
}

func testPlayerSpec() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		MaxHealth: 3,
		Body: testAnimSpec(16,
			"idle_right", "idle_left", "walk_right", "walk_left",
			"hurt_right", "hurt_left", "die_right", "die_left"),
		Sword: testAnimSpec(48, "attack_right", "attack_left"),
	}
}

func newTestPlayer(clock *common.Clock, sounds Sounds) *Player {
	return NewPlayer(32, 32, testPlayerSpec(), assets.NewCache(), sounds, clock)
}

func TestPlayerSpawnSnapsToGrid(t *testing.T) {
	clock := common.NewClock()
	p := NewPlayer(37, 45, testPlayerSpec(), assets.NewCache(), NopSounds{}, clock)
	if p.X != 32 || p.Y != 32 {
		t.Errorf("spawn = (%d,%d), want (32,32)", p.X, p.Y)
	}
}

func TestPlayerMoveCooldown(t *testing.T) {
	clock := common.NewClock()
	p := newTestPlayer(clock, NopSounds{})

	if !p.Move(1, 0) {
		t.Fatal("first move blocked")
	}
	if p.X != 48 {
		t.Fatalf("X = %d, want 48", p.X)
	}
	if p.State() != PlayerMoving {
		t.Errorf("state = %v after a step, want moving", p.State())
	}
	if p.Move(1, 0) {
		t.Error("second move allowed inside cooldown")
	}
	clock.Advance(0.15)
	if !p.Move(1, 0) {
		t.Error("move blocked after cooldown elapsed")
	}
	if p.X != 64 {
		t.Errorf("X = %d, want 64", p.X)
	}
}

func TestPlayerTurnsInPlaceAtBoundary(t *testing.T) {
	clock := common.NewClock()
	p := NewPlayer(0, 32, testPlayerSpec(), assets.NewCache(), NopSounds{}, clock)

	if p.Move(-1, 0) {
		t.Error("move off the level edge succeeded")
	}
	if p.Facing != FacingLeft {
		t.Error("facing did not turn at the boundary")
	}
	if p.X != 0 {
		t.Errorf("X = %d, player left the level", p.X)
	}
}

func TestPlayerDiagonalRejected(t *testing.T) {
	clock := common.NewClock()
	p := newTestPlayer(clock, NopSounds{})
	if p.Move(1, 1) {
		t.Error("diagonal move accepted")
	}
}

func TestPlayerAttackWindow(t *testing.T) {
	clock := common.NewClock()
	rec := &soundRecorder{}
	p := newTestPlayer(clock, rec)

	if !p.StartAttack() {
		t.Fatal("attack rejected from idle")
	}
	if p.StartAttack() {
		t.Error("attack allowed while attacking")
	}
	if p.Move(1, 0) {
		t.Error("move allowed while attacking")
	}
	r, ok := p.SwordRect()
	if !ok {
		t.Fatal("no sword rect while attacking")
	}
	if r.X != p.X+common.TileSize || r.Y != p.Y {
		t.Errorf("sword rect at (%d,%d), want one tile right", r.X, r.Y)
	}

	clock.Advance(0.4)
	p.Update()
	if p.State() != PlayerAttacking {
		t.Fatal("attack ended early")
	}
	clock.Advance(0.1)
	p.Update()
	if p.State() != PlayerIdle {
		t.Errorf("state = %v after attack window, want idle", p.State())
	}
	if _, ok := p.SwordRect(); ok {
		t.Error("sword rect present after attack ended")
	}
	if !rec.playedNames()["sword_2"] {
		t.Error("attack did not play sword sound")
	}
}

func TestPlayerSwordRectFacingLeft(t *testing.T) {
	clock := common.NewClock()
	p := newTestPlayer(clock, NopSounds{})
	p.Move(-1, 0)
	p.StartAttack()
	r, ok := p.SwordRect()
	if !ok {
		t.Fatal("no sword rect")
	}
	if r.X != p.X-common.TileSize {
		t.Errorf("sword rect X = %d, want one tile left", r.X)
	}
}

func TestPlayerHurtAndInvincibility(t *testing.T) {
	clock := common.NewClock()
	rec := &soundRecorder{}
	p := newTestPlayer(clock, rec)

	if !p.TakeDamage(1) {
		t.Fatal("first hit rejected")
	}
	if p.State() != PlayerHurt {
		t.Fatalf("state = %v, want hurt", p.State())
	}
	if p.Health.Current != 2 {
		t.Fatalf("health = %d, want 2", p.Health.Current)
	}
	if !rec.playedNames()["hit_7"] {
		t.Error("hit sound not played")
	}

	// hits inside the hurt window and the grace window do nothing
	if p.TakeDamage(1) {
		t.Error("hit landed while hurt")
	}
	if p.Health.Current != 2 {
		t.Error("damage applied while hurt")
	}
	clock.Advance(1.0)
	p.Update()
	if p.State() != PlayerIdle {
		t.Fatalf("state = %v after hurt window, want idle", p.State())
	}
	if !p.Invincible() {
		t.Fatal("grace window closed with hurt window")
	}
	if p.TakeDamage(1) {
		t.Error("hit landed while invincible")
	}
	if p.Health.Current != 2 {
		t.Error("damage applied while invincible")
	}

	clock.Advance(0.81)
	if p.Invincible() {
		t.Fatal("grace window still open after 1.8s")
	}
	if !p.TakeDamage(1) {
		t.Error("hit rejected after the grace window")
	}
	if p.Health.Current != 1 {
		t.Errorf("health = %d, want 1", p.Health.Current)
	}
}

func TestPlayerDying(t *testing.T) {
	clock := common.NewClock()
	rec := &soundRecorder{}
	p := newTestPlayer(clock, rec)
	p.Health.Current = 1

	if !p.TakeDamage(1) {
		t.Fatal("lethal hit rejected")
	}
	if p.State() != PlayerDying {
		t.Fatalf("state = %v, want dying", p.State())
	}
	if !rec.musicStopped {
		t.Error("music kept playing through death")
	}
	if !rec.playedNames()["game_over"] {
		t.Error("game over sound not played")
	}

	// terminal: nothing moves the player out of dying
	if p.Move(1, 0) {
		t.Error("dead player moved")
	}
	if p.StartAttack() {
		t.Error("dead player attacked")
	}
	if p.TakeDamage(1) {
		t.Error("dead player hit again")
	}
	clock.Advance(10)
	p.Update()
	if p.State() != PlayerDying {
		t.Errorf("state = %v, dying must be terminal", p.State())
	}
}

func TestAttackKeepsBodyClip(t *testing.T) {
	clock := common.NewClock()
	p := newTestPlayer(clock, NopSounds{})

	p.Move(1, 0)
	p.Update()
	if got := p.body.Current(); got != "walk_right" {
		t.Fatalf("body clip = %q, want walk_right", got)
	}

	p.StartAttack()
	p.Update()
	if got := p.body.Current(); got != "walk_right" {
		t.Errorf("body clip = %q during attack, want walk_right kept", got)
	}

	clock.Advance(0.5)
	p.Update()
	if got := p.body.Current(); got != "idle_right" {
		t.Errorf("body clip = %q after attack, want idle_right", got)
	}
}
