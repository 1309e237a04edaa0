package game

import "fmt"

// WeaponKind identifies the four weapon archetypes.
type WeaponKind int

const (
	WeaponKnife WeaponKind = iota
	WeaponMagicBlade
	WeaponHolyWater
	WeaponSacredFlame

	WeaponKindCount // must stay last
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponKnife:
		return "knife"
	case WeaponMagicBlade:
		return "magic blade"
	case WeaponHolyWater:
		return "holy water"
	case WeaponSacredFlame:
		return "sacred flame"
	}
	return fmt.Sprintf("WeaponKind(%d)", int(k))
}

// Weapon is one slot in the player's roster. Stats derive from kind and
// level; Cooldown counts frames until the next shot is ready.
type Weapon struct {
	Kind  WeaponKind
	Level int

	Cooldown int

	Damage      int
	Range       int
	MaxCooldown int
	DOTDamage   int // sacred flame only
}

func NewWeapon(kind WeaponKind) Weapon {
	w := Weapon{Kind: kind, Level: 1}
	w.recompute()
	return w
}

// recompute derives stats from kind and level. Damage and range grow
// linearly; cooldown shrinks linearly down to a per-kind floor.
func (w *Weapon) recompute() {
	l := w.Level - 1
	switch w.Kind {
	case WeaponKnife:
		w.Damage = 5 + l*2
		w.Range = 12 + l*2
		w.MaxCooldown = max(10, 30-l*2)
	case WeaponMagicBlade:
		w.Damage = 15 + l*3
		w.Range = 24 + l*3
		w.MaxCooldown = max(8, 30-l*2)
	case WeaponHolyWater:
		w.Damage = 10 + l*3
		w.Range = 16 + l*2
		w.MaxCooldown = max(15, 30-l)
	case WeaponSacredFlame:
		w.Damage = 20 + l*4
		w.Range = 24 + l*2
		w.MaxCooldown = max(12, 30-l)
		w.DOTDamage = 5
	default:
		panic(fmt.Sprintf("unknown weapon kind %d", int(w.Kind)))
	}
}

func (w *Weapon) LevelUp() {
	w.Level++
	w.recompute()
}

func (w *Weapon) Update() {
	if w.Cooldown > 0 {
		w.Cooldown--
	}
}

func (w *Weapon) CanAttack() bool {
	return w.Cooldown <= 0
}

// Evolution targets. The data is real but nothing offers evolution as a
// level-up option yet.
type evolution struct {
	Level int
	Into  WeaponKind
}

var weaponEvolutions = map[WeaponKind]evolution{
	WeaponKnife:     {Level: 5, Into: WeaponMagicBlade},
	WeaponHolyWater: {Level: 5, Into: WeaponSacredFlame},
}

// EvolutionTarget reports which kind this weapon would evolve into,
// once its level meets the threshold.
func (w *Weapon) EvolutionTarget() (WeaponKind, bool) {
	ev, ok := weaponEvolutions[w.Kind]
	if !ok || w.Level < ev.Level {
		return 0, false
	}
	return ev.Into, true
}
