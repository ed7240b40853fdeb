package component

import "testing"

func TestHealth(t *testing.T) {
	h := NewHealth(3)
	if h.Heal(1) {
		t.Error("healed at full health")
	}
	h.Damage(2)
	if h.Current != 1 {
		t.Fatalf("Current = %d, want 1", h.Current)
	}
	if !h.Heal(1) {
		t.Error("heal below max rejected")
	}
	h.Damage(10)
	if h.Current != 0 {
		t.Errorf("Current = %d, want clamped 0", h.Current)
	}
	if !h.Dead() {
		t.Error("not dead at zero")
	}
	h.Damage(-1)
	if h.Current != 0 {
		t.Error("negative damage changed health")
	}
}
