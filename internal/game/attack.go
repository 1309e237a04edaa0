package game

import "fmt"

// Attack is a short-lived effect spawned when a weapon fires. Stats are
// snapshotted from the weapon at spawn time, so upgrading a weapon does
// not retroactively buff attacks already in flight.
type Attack struct {
	Kind   WeaponKind
	X, Y   float64
	VX, VY float64

	Damage    int
	Range     int
	DOTDamage int

	Lifetime int
	dotTimer int
}

func NewAttack(x, y float64, w *Weapon, dirX, dirY float64) Attack {
	a := Attack{
		Kind:      w.Kind,
		X:         x,
		Y:         y,
		Damage:    w.Damage,
		Range:     w.Range,
		DOTDamage: w.DOTDamage,
	}
	switch w.Kind {
	case WeaponKnife:
		a.Lifetime = 30
		a.VX = dirX * 2
		a.VY = dirY * 2
	case WeaponMagicBlade:
		a.Lifetime = 45
		a.VX = dirX * 3
		a.VY = dirY * 3
	case WeaponHolyWater:
		a.Lifetime = 30
	case WeaponSacredFlame:
		a.Lifetime = 90
	default:
		panic(fmt.Sprintf("unknown weapon kind %d", int(w.Kind)))
	}
	return a
}

// Update advances the attack by one tick.
func (a *Attack) Update() {
	a.Lifetime--
	switch a.Kind {
	case WeaponKnife, WeaponMagicBlade:
		a.X += a.VX
		a.Y += a.VY
	case WeaponSacredFlame:
		a.dotTimer++
		if a.dotTimer >= DOTInterval {
			a.dotTimer = 0
		}
	}
}

// Pulsing reports whether a sacred-flame pulse landed on the last
// update. Its damage is applied only on those ticks; every other kind
// damages on every overlapping tick instead.
func (a *Attack) Pulsing() bool {
	return a.Kind == WeaponSacredFlame && a.dotTimer == 0
}

func (a *Attack) IsAlive() bool {
	return a.Lifetime > 0
}

func (a *Attack) Draw(r Renderer) {
	switch a.Kind {
	case WeaponKnife:
		r.Rect(a.X, a.Y, 4, 4, ColCyan)
	case WeaponMagicBlade:
		r.Rect(a.X, a.Y, 6, 6, ColLightBlue)
		for i := range 3 {
			off := float64(i+1) * 2
			r.Rect(a.X-a.VX*off, a.Y-a.VY*off, 4, 4, ColLightBlue)
		}
	case WeaponHolyWater:
		r.Circb(a.X, a.Y, a.Range/2, ColLightBlue)
	case WeaponSacredFlame:
		radius := a.Range / 2
		r.Circb(a.X, a.Y, radius, ColRed)
		r.Circb(a.X, a.Y, radius*2/3, ColRed)
		if a.Lifetime%4 < 2 {
			r.Circb(a.X, a.Y, radius-2, ColRed)
		}
	}
}
