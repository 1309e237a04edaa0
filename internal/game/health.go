package game

// Health tracks the player's HP. Fractional values are real: HP regen
// adds 0.1 per tick per skill level. Damage floors at zero, healing
// caps at Max.
type Health struct {
	Current float64
	Max     float64
}

func (h *Health) Damage(amount float64) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

func (h *Health) Heal(amount float64) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := h.Current / h.Max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func (h *Health) IsDead() bool {
	return h.Current <= 0
}

func (h *Health) IsInjured() bool {
	return h.Current < h.Max
}

// HealthColor returns the HUD text colour for a health fraction.
func HealthColor(frac float64) uint8 {
	if frac > 0.6 {
		return ColWhite
	}
	if frac > 0.3 {
		return ColYellow
	}
	return ColRed
}
