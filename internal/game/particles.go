package game

import "math"

// Particle pool capacity. Bursts overwrite the oldest entries when full.
const maxParticles = 256

type ParticleKind uint8

const (
	ParticleBurst ParticleKind = iota // kill debris, scatters and slows
	ParticleSpark                     // level-up sparkle, drifts upward
)

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Col     uint8
	Kind    ParticleKind
}

// ParticleSystem is a fixed-capacity pool of decorative pixels. It sits
// outside the gameplay rules: nothing collides with a particle.
type ParticleSystem struct {
	pool   []Particle
	ovrIdx int // circular overwrite index when full
	rng    *Rand
}

func NewParticleSystem(rng *Rand) *ParticleSystem {
	return &ParticleSystem{pool: make([]Particle, 0, maxParticles), rng: rng}
}

func (ps *ParticleSystem) Clear() {
	ps.pool = ps.pool[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Count() int { return len(ps.pool) }

func (ps *ParticleSystem) add(p Particle) {
	if len(ps.pool) < maxParticles {
		ps.pool = append(ps.pool, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= maxParticles {
		ps.ovrIdx = 0
	}
	ps.pool[ps.ovrIdx] = p
	ps.ovrIdx++
}

// SpawnBurst scatters debris from the center of a dead enemy's box.
func (ps *ParticleSystem) SpawnBurst(x, y float64, col uint8) {
	for i := 0; i < 8; i++ {
		ang := ps.rng.RangeF(0, 2*math.Pi)
		spd := ps.rng.RangeF(0.5, 1.5)
		ps.add(Particle{
			X:       x + EnemySize/2,
			Y:       y + EnemySize/2,
			VX:      math.Cos(ang) * spd,
			VY:      math.Sin(ang) * spd,
			MaxLife: ps.rng.Range(10, 20),
			Col:     col,
			Kind:    ParticleBurst,
		})
	}
}

// SpawnSparkle rises out of the player's box on level up.
func (ps *ParticleSystem) SpawnSparkle(x, y float64) {
	for i := 0; i < 12; i++ {
		ps.add(Particle{
			X:       x + ps.rng.RangeF(0, PlayerSize),
			Y:       y + ps.rng.RangeF(0, PlayerSize),
			VX:      ps.rng.RangeF(-0.3, 0.3),
			VY:      ps.rng.RangeF(-1.2, -0.4),
			MaxLife: ps.rng.Range(15, 30),
			Col:     ColYellow,
			Kind:    ParticleSpark,
		})
	}
}

func (ps *ParticleSystem) Update() {
	for i := 0; i < len(ps.pool); {
		p := &ps.pool[i]
		p.Life++
		if p.Life >= p.MaxLife {
			ps.pool[i] = ps.pool[len(ps.pool)-1]
			ps.pool = ps.pool[:len(ps.pool)-1]
			continue
		}
		p.X += p.VX
		p.Y += p.VY
		switch p.Kind {
		case ParticleBurst:
			p.VX *= 0.9
			p.VY *= 0.9
		case ParticleSpark:
			// Slight lift, so late sparkles still float off.
			p.VY -= 0.02
		}
		i++
	}
}

func (ps *ParticleSystem) Draw(r Renderer) {
	for i := range ps.pool {
		p := &ps.pool[i]
		// The last third of a particle's life blinks.
		left := p.MaxLife - p.Life
		if left*3 < p.MaxLife && p.Life%2 == 0 {
			continue
		}
		r.Rect(p.X, p.Y, 1, 1, p.Col)
	}
}
