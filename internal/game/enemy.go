package game

import (
	"fmt"
	"math"
)

// EnemyKind identifies the four enemy archetypes.
type EnemyKind int

const (
	EnemyZombie EnemyKind = iota
	EnemyBat
	EnemyGhost
	EnemySkeleton

	EnemyKindCount // must stay last
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyZombie:
		return "zombie"
	case EnemyBat:
		return "bat"
	case EnemyGhost:
		return "ghost"
	case EnemySkeleton:
		return "skeleton"
	}
	return fmt.Sprintf("EnemyKind(%d)", int(k))
}

// KindSet is a bitset of enemy kinds, used by the music layer to read
// which kinds are on screen.
type KindSet uint8

func (s KindSet) With(k EnemyKind) KindSet { return s | 1<<uint(k) }
func (s KindSet) Has(k EnemyKind) bool     { return s&(1<<uint(k)) != 0 }

// BehaviorKind is the movement strategy tag. It is fixed per enemy
// kind at spawn time; Update and Draw each dispatch on it once.
type BehaviorKind int

const (
	BehaviorChase    BehaviorKind = iota // straight at the target
	BehaviorCircle                       // orbit the target, easing onto the ring
	BehaviorTeleport                     // slow drift, periodic relocation
	BehaviorZigzag                       // approach with a perpendicular sine sway
)

// enemyStats is the immutable per-kind stat row.
type enemyStats struct {
	HP       int
	Speed    float64
	Exp      int
	Color    uint8
	Behavior BehaviorKind

	CircleRadius     float64
	CircleSpeed      float64
	TeleportCooldown int
	ZigzagWidth      float64
	ZigzagSpeed      float64
}

var enemyTable = [EnemyKindCount]enemyStats{
	EnemyZombie: {HP: 10, Speed: 0.5, Exp: 1, Color: ColLime, Behavior: BehaviorChase},
	EnemyBat: {HP: 8, Speed: 1.0, Exp: 2, Color: ColPurple, Behavior: BehaviorCircle,
		CircleRadius: 20, CircleSpeed: 0.1},
	EnemyGhost: {HP: 15, Speed: 0.3, Exp: 3, Color: ColWhite, Behavior: BehaviorTeleport,
		TeleportCooldown: 60},
	EnemySkeleton: {HP: 12, Speed: 0.4, Exp: 2, Color: ColLightBlue, Behavior: BehaviorZigzag,
		ZigzagWidth: 30, ZigzagSpeed: 0.05},
}

// Enemy is one live enemy. HP, Speed and Exp are copies of the table
// row so the spawner can scale them with elapsed minutes.
type Enemy struct {
	Kind     EnemyKind
	Behavior BehaviorKind
	X, Y     float64

	HP    int
	Speed float64
	Exp   int

	circleAngle   float64
	teleportTimer int
	zigzagOffset  float64

	MoveTicks int // drives draw-time flicker effects
}

func NewEnemy(x, y float64, kind EnemyKind, rng *Rand) Enemy {
	if kind < 0 || kind >= EnemyKindCount {
		panic(fmt.Sprintf("unknown enemy kind %d", int(kind)))
	}
	st := enemyTable[kind]
	e := Enemy{
		Kind:     kind,
		Behavior: st.Behavior,
		X:        x,
		Y:        y,
		HP:       st.HP,
		Speed:    st.Speed,
		Exp:      st.Exp,
	}
	if st.Behavior == BehaviorCircle {
		e.circleAngle = rng.RangeF(0, 2*math.Pi)
	}
	return e
}

// Update moves the enemy against the target position for one tick.
func (e *Enemy) Update(targetX, targetY float64, rng *Rand) {
	e.MoveTicks++
	st := enemyTable[e.Kind]
	dx := targetX - e.X
	dy := targetY - e.Y
	dist := math.Hypot(dx, dy)

	switch e.Behavior {
	case BehaviorChase:
		if dist > 0 {
			e.X += dx / dist * e.Speed
			e.Y += dy / dist * e.Speed
		}

	case BehaviorCircle:
		e.circleAngle += st.CircleSpeed
		tx := targetX + math.Cos(e.circleAngle)*st.CircleRadius
		ty := targetY + math.Sin(e.circleAngle)*st.CircleRadius
		// Speed doubles as the orbit ease fraction; above 1 the
		// exponential approach diverges, so cap it there.
		ease := e.Speed
		if ease > 1 {
			ease = 1
		}
		e.X += (tx - e.X) * ease
		e.Y += (ty - e.Y) * ease

	case BehaviorTeleport:
		if dist > 0 {
			e.X += dx / dist * e.Speed * 0.5
			e.Y += dy / dist * e.Speed * 0.5
		}
		e.teleportTimer++
		if e.teleportTimer >= st.TeleportCooldown {
			angle := rng.RangeF(0, 2*math.Pi)
			d := float64(rng.Range(20, 40))
			e.X = targetX + math.Cos(angle)*d
			e.Y = targetY + math.Sin(angle)*d
			e.teleportTimer = 0
		}

	case BehaviorZigzag:
		if dist > 0 {
			baseDX := dx / dist * e.Speed
			baseDY := dy / dist * e.Speed
			e.zigzagOffset += st.ZigzagSpeed
			amount := math.Sin(e.zigzagOffset) * st.ZigzagWidth
			// Sway runs perpendicular to the approach direction.
			e.X += baseDX - baseDY*amount
			e.Y += baseDY + baseDX*amount
		}
	}
}

// TakeDamage subtracts hp with no floor; overkill goes negative.
func (e *Enemy) TakeDamage(dmg int) {
	e.HP -= dmg
}

func (e *Enemy) IsAlive() bool {
	return e.HP > 0
}

func (e *Enemy) Draw(r Renderer) {
	st := enemyTable[e.Kind]
	r.Rect(e.X, e.Y, EnemySize, EnemySize, st.Color)

	switch e.Behavior {
	case BehaviorTeleport:
		// Flicker white just before relocating.
		if e.teleportTimer >= st.TeleportCooldown-10 && e.MoveTicks%4 < 2 {
			r.Rect(e.X-1, e.Y-1, EnemySize+2, EnemySize+2, ColWhite)
		}
	case BehaviorCircle:
		angle := e.circleAngle - st.CircleSpeed*3
		for i := range 3 {
			tx := e.X - math.Cos(angle)*e.Speed*4*float64(i+1)
			ty := e.Y - math.Sin(angle)*e.Speed*4*float64(i+1)
			r.Rect(tx, ty, 4, 4, st.Color)
			angle -= st.CircleSpeed
		}
	case BehaviorZigzag:
		if e.MoveTicks%8 < 4 {
			r.Line(e.X+4, e.Y+4, e.X+4+math.Sin(e.zigzagOffset)*8, e.Y+4, st.Color)
		}
	}
}

// EnemySystem owns every live enemy plus the spawner state.
type EnemySystem struct {
	Enemies []Enemy

	SpawnTimer    int
	SpawnInterval int

	rng *Rand
}

func NewEnemySystem(rng *Rand) *EnemySystem {
	return &EnemySystem{SpawnInterval: SpawnInterval, rng: rng}
}

func (es *EnemySystem) Reset() {
	es.Enemies = es.Enemies[:0]
	es.SpawnTimer = 0
	es.SpawnInterval = SpawnInterval
}

// Update advances the spawner and every enemy. minutes drives the
// difficulty scaling of both spawn cadence and spawned stats.
func (es *EnemySystem) Update(targetX, targetY float64, minutes int) {
	es.SpawnInterval = spawnIntervalAt(minutes)
	es.SpawnTimer++
	if es.SpawnTimer >= es.SpawnInterval {
		es.spawn(minutes)
		es.SpawnTimer = 0
	}
	for i := range es.Enemies {
		es.Enemies[i].Update(targetX, targetY, es.rng)
	}
}

// spawn places one enemy just outside a random screen edge.
func (es *EnemySystem) spawn(minutes int) {
	var x, y float64
	switch es.rng.Intn(4) {
	case 0: // top
		x = float64(es.rng.Range(0, ScreenWidth-EnemySize))
		y = -EnemySize
	case 1: // right
		x = ScreenWidth
		y = float64(es.rng.Range(0, ScreenHeight-EnemySize))
	case 2: // bottom
		x = float64(es.rng.Range(0, ScreenWidth-EnemySize))
		y = ScreenHeight
	default: // left
		x = -EnemySize
		y = float64(es.rng.Range(0, ScreenHeight-EnemySize))
	}

	var kind EnemyKind
	switch r := es.rng.Float64(); {
	case r < 0.5:
		kind = EnemyZombie
	case r < 0.7:
		kind = EnemyBat
	case r < 0.85:
		kind = EnemySkeleton
	default:
		kind = EnemyGhost
	}

	e := NewEnemy(x, y, kind, es.rng)
	scaleEnemy(&e, minutes)
	es.Enemies = append(es.Enemies, e)
}

// RemoveDead compacts the roster in place, preserving spawn order.
func (es *EnemySystem) RemoveDead() {
	alive := es.Enemies[:0]
	for i := range es.Enemies {
		if es.Enemies[i].IsAlive() {
			alive = append(alive, es.Enemies[i])
		}
	}
	es.Enemies = alive
}

func (es *EnemySystem) Count() int { return len(es.Enemies) }

// KindsPresent returns the set of kinds currently alive.
func (es *EnemySystem) KindsPresent() KindSet {
	var set KindSet
	for i := range es.Enemies {
		set = set.With(es.Enemies[i].Kind)
	}
	return set
}

func (es *EnemySystem) Draw(r Renderer) {
	for i := range es.Enemies {
		es.Enemies[i].Draw(r)
	}
}
