package obj

import (
	"testing"

	"github.com/feketea17/rpi-gb-dungeon/assets"
	"github.com/feketea17/rpi-gb-dungeon/common"
	"github.com/feketea17/rpi-gb-dungeon/prefabs"
)

func never(x, y int) bool  { return false }
func always(x, y int) bool { return true }

func testEnemySpec() *prefabs.EnemySpec {
	return &prefabs.EnemySpec{
		Kind: "rat",
		Body: testAnimSpec(16,
			"idle_right", "idle_left", "walk_right", "walk_left", "hurt_right", "hurt_left"),
	}
}

func newTestEnemy(clock *common.Clock, axis Axis, blocks int) *Enemy {
	return NewEnemy(32, 32, axis, blocks, testEnemySpec(), assets.NewCache(), NopSounds{}, clock)
}

func TestEnemyPatrolsAndTurns(t *testing.T) {
	clock := common.NewClock()
	e := newTestEnemy(clock, AxisHorizontal, 2)

	e.Update(never)
	if e.X != 48 {
		t.Fatalf("X = %d, want 48 after first step", e.X)
	}
	if e.State() != EnemyMoving {
		t.Fatalf("state = %v mid-leg, want moving", e.State())
	}

	// second step completes the two-tile leg
	clock.Advance(0.3)
	e.Update(never)
	if e.X != 64 {
		t.Fatalf("X = %d, want 64", e.X)
	}
	if e.State() != EnemyIdle {
		t.Fatalf("state = %v at leg end, want idle", e.State())
	}

	// pause holds for three seconds, then the enemy turns around
	clock.Advance(2.9)
	e.Update(never)
	if e.State() != EnemyIdle {
		t.Fatal("idle pause ended early")
	}
	clock.Advance(0.1)
	e.Update(never)
	if e.State() != EnemyMoving {
		t.Fatal("enemy did not resume after pause")
	}
	if e.Facing != FacingLeft {
		t.Error("enemy did not flip facing")
	}
	e.Update(never)
	if e.X != 48 {
		t.Errorf("X = %d, want 48 moving back", e.X)
	}
}

func TestEnemyVerticalPatrol(t *testing.T) {
	clock := common.NewClock()
	e := newTestEnemy(clock, AxisVertical, 1)

	e.Update(never)
	if e.Y != 48 || e.X != 32 {
		t.Fatalf("pos = (%d,%d), want (32,48)", e.X, e.Y)
	}
	if e.State() != EnemyIdle {
		t.Errorf("state = %v after a one-tile leg, want idle", e.State())
	}
}

func TestEnemyBlockedTileForcesIdle(t *testing.T) {
	clock := common.NewClock()
	e := newTestEnemy(clock, AxisHorizontal, 5)

	e.Update(always)
	if e.State() != EnemyIdle {
		t.Errorf("state = %v against wall, want idle", e.State())
	}
	if e.X != 32 {
		t.Errorf("X = %d, enemy moved into wall", e.X)
	}
}

func TestEnemyHurtThenDeath(t *testing.T) {
	clock := common.NewClock()
	e := newTestEnemy(clock, AxisHorizontal, 2)

	if !e.TakeDamage() {
		t.Fatal("hit on a moving enemy rejected")
	}
	if e.State() != EnemyHurt {
		t.Fatalf("state = %v, want hurt", e.State())
	}
	// hits during the recoil are rejected
	if e.TakeDamage() {
		t.Error("hit accepted while hurt")
	}

	e.StartDeath()
	if e.State() != EnemyDying {
		t.Fatalf("state = %v, want dying", e.State())
	}
	if e.Dangerous() {
		t.Error("dying enemy still dangerous")
	}
	if e.TakeDamage() {
		t.Error("hit accepted while dying")
	}

	clock.Advance(0.99)
	if e.ShouldBeRemoved() {
		t.Error("removed before the death linger elapsed")
	}
	clock.Advance(0.01)
	if !e.ShouldBeRemoved() {
		t.Error("not removed after the death linger")
	}
}

func TestEnemyHurtRecovers(t *testing.T) {
	clock := common.NewClock()
	e := newTestEnemy(clock, AxisHorizontal, 2)

	e.TakeDamage()
	clock.Advance(0.8)
	e.Update(never)
	if e.State() != EnemyMoving {
		t.Errorf("state = %v after hurt window, want moving", e.State())
	}
}
