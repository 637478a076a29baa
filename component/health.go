package component

// Health tracks hit points for an entity that can take fall damage.
// Current is allowed to go negative: this layer applies damage but owns no
// death or respawn transition.
type Health struct {
	Max     float64
	Current float64
}

// NewHealth creates a Health component initialized to full.
func NewHealth(max float64) Health {
	if max <= 0 {
		max = 1
	}
	return Health{Max: max, Current: max}
}

// Damage subtracts amount from current health. Negative amounts are ignored.
func (h *Health) Damage(amount float64) {
	if h == nil || amount <= 0 {
		return
	}
	h.Current -= amount
}

// Ratio returns current/max clamped to [0, 1] for display purposes.
func (h *Health) Ratio() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	r := h.Current / h.Max
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
