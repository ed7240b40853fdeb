package component

// Health is a small hit-point counter shared by anything that can take
// damage. Invincibility windows are owned by the entity's own state timers,
// not by Health.
type Health struct {
	Max     int
	Current int
}

func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// Damage subtracts amount, clamping at zero.
func (h *Health) Damage(amount int) {
	if amount <= 0 {
		return
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Heal restores amount up to Max. Returns false if already full.
func (h *Health) Heal(amount int) bool {
	if amount <= 0 || h.Current >= h.Max {
		return false
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return true
}

func (h *Health) Dead() bool {
	return h.Current <= 0
}
