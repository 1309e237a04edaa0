package game

import "math"

// PassiveKind identifies a stacking passive skill. Each level adds the
// kind's rate to the relevant stat.
type PassiveKind int

const (
	PassiveSpeedUp PassiveKind = iota
	PassiveAttackSpeed
	PassiveHPRegen

	PassiveKindCount // must stay last
)

var passiveRate = [PassiveKindCount]float64{
	PassiveSpeedUp:     0.2,
	PassiveAttackSpeed: 0.1,
	PassiveHPRegen:     0.1,
}

// Player is the run avatar: position, facing, health, experience and
// the weapon loadout with its attacks in flight.
type Player struct {
	X, Y       float64
	DirX, DirY float64 // facing, kept from the last nonzero input

	HP        Health
	BaseSpeed float64

	Exp        int
	Level      int
	ExpToLevel int

	Weapons  []Weapon
	Attacks  []Attack
	Passives [PassiveKindCount]int // level per kind, 0 when absent
}

func NewPlayer() Player {
	return Player{
		X:          ScreenWidth/2 - PlayerSize/2,
		Y:          ScreenHeight/2 - PlayerSize/2,
		DirX:       1,
		HP:         Health{Current: PlayerStartHP, Max: PlayerMaxHP},
		BaseSpeed:  PlayerBaseSpeed,
		Level:      1,
		ExpToLevel: StartExpToLevel,
		Weapons:    []Weapon{NewWeapon(WeaponKnife)},
	}
}

// Speed is the effective movement speed: base plus the speed-up
// passive, capped.
func (p *Player) Speed() float64 {
	s := p.BaseSpeed + passiveRate[PassiveSpeedUp]*float64(p.Passives[PassiveSpeedUp])
	if s > PlayerMaxSpeed {
		return PlayerMaxSpeed
	}
	return s
}

// AttackSpeedBonus is the cooldown reduction fraction from the
// attack-speed passive.
func (p *Player) AttackSpeedBonus() float64 {
	return passiveRate[PassiveAttackSpeed] * float64(p.Passives[PassiveAttackSpeed])
}

// attackCooldown computes the post-fire cooldown after the attack
// speed reduction, floored at zero.
func attackCooldown(maxCooldown int, bonus float64) int {
	cd := int(float64(maxCooldown) * (1 - bonus))
	if cd < 0 {
		return 0
	}
	return cd
}

// Update reads held movement input, moves the player, applies
// regeneration and runs the weapon loadout for one tick.
func (p *Player) Update(in Input) {
	var dx, dy float64
	if in.Held(ButtonLeft) {
		dx--
	}
	if in.Held(ButtonRight) {
		dx++
	}
	if in.Held(ButtonUp) {
		dy--
	}
	if in.Held(ButtonDown) {
		dy++
	}

	// Facing persists while idle so weapons keep firing somewhere.
	if dx != 0 || dy != 0 {
		d := math.Hypot(dx, dy)
		p.DirX = dx / d
		p.DirY = dy / d
	}

	// Axis inputs are applied raw, so diagonals run faster.
	speed := p.Speed()
	p.X = clampF(p.X+dx*speed, 0, ScreenWidth-PlayerSize)
	p.Y = clampF(p.Y+dy*speed, 0, ScreenHeight-PlayerSize)

	if lv := p.Passives[PassiveHPRegen]; lv > 0 {
		p.HP.Heal(passiveRate[PassiveHPRegen] * float64(lv))
	}

	bonus := p.AttackSpeedBonus()
	for i := range p.Weapons {
		w := &p.Weapons[i]
		w.Update()
		if w.CanAttack() {
			p.Attacks = append(p.Attacks, NewAttack(p.X, p.Y, w, p.DirX, p.DirY))
			w.Cooldown = attackCooldown(w.MaxCooldown, bonus)
		}
	}

	// Expired attacks drop before the survivors advance, so a fresh
	// attack always gets its first update on the tick it spawns.
	alive := p.Attacks[:0]
	for i := range p.Attacks {
		if p.Attacks[i].IsAlive() {
			alive = append(alive, p.Attacks[i])
		}
	}
	p.Attacks = alive
	for i := range p.Attacks {
		p.Attacks[i].Update()
	}
}

// GainExp adds experience and reports whether the player leveled up.
// At most one level is granted per call; surplus carries over.
func (p *Player) GainExp(amount int) bool {
	p.Exp += amount
	if p.Exp < p.ExpToLevel {
		return false
	}
	p.Exp -= p.ExpToLevel
	p.Level++
	p.ExpToLevel = int(float64(p.ExpToLevel) * 1.5)
	p.HP.Heal(LevelUpHeal)
	p.BaseSpeed = math.Min(p.BaseSpeed+LevelUpSpeedGain, PlayerMaxSpeed)
	return true
}

// AddWeapon appends a fresh level-1 weapon. Duplicates stack; each
// copy fires on its own cooldown.
func (p *Player) AddWeapon(kind WeaponKind) {
	p.Weapons = append(p.Weapons, NewWeapon(kind))
}

// UpgradeWeapon levels up the first weapon of the given kind and
// reports whether one was found.
func (p *Player) UpgradeWeapon(kind WeaponKind) bool {
	for i := range p.Weapons {
		if p.Weapons[i].Kind == kind {
			p.Weapons[i].LevelUp()
			return true
		}
	}
	return false
}

func (p *Player) HasWeapon(kind WeaponKind) bool {
	for i := range p.Weapons {
		if p.Weapons[i].Kind == kind {
			return true
		}
	}
	return false
}

// AddPassive raises the passive one level, creating it at level 1.
func (p *Player) AddPassive(kind PassiveKind) {
	p.Passives[kind]++
}

func (p *Player) IsDead() bool {
	return p.HP.IsDead()
}

func (p *Player) Draw(r Renderer) {
	r.Rect(p.X, p.Y, PlayerSize, PlayerSize, ColWhite)
	cx := p.X + PlayerSize/2
	cy := p.Y + PlayerSize/2
	r.Line(cx, cy, cx+p.DirX*8, cy+p.DirY*8, ColRed)
	for i := range p.Attacks {
		p.Attacks[i].Draw(r)
	}
}
