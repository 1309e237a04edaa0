package game

type GameState int

const (
	StateMenu     GameState = iota
	StatePlaying            // main survival loop
	StateLevelUp            // modal choice screen, simulation suspended
	StateGameOver           // run ended, score frozen
)

// Contact with any enemy costs this much hp per tick.
const contactDamage = 1.0

// Game is the whole simulation: player, enemy roster, music engine
// and run counters. One Update call is one 60 Hz tick; all mutation
// happens synchronously inside it, in a fixed order.
type Game struct {
	State GameState

	Player  Player
	Enemies *EnemySystem
	Music   *Music
	Bus     *EventBus
	FX      *ParticleSystem

	Score     int
	HighScore int

	Frames  int
	Minutes int

	// Level-up modal state, only meaningful in StateLevelUp.
	Options  []LevelUpOption
	Selected int

	rng *Rand
}

func NewGame(seed uint64) *Game {
	rng := NewRand(splitmix64(seed))
	return &Game{
		State:   StateMenu,
		Player:  NewPlayer(),
		Enemies: NewEnemySystem(rng),
		Music:   NewMusic(),
		Bus:     NewEventBus(),
		FX:      NewParticleSystem(rng),
		rng:     rng,
	}
}

// StartRun resets everything for a fresh run and enters play.
func (g *Game) StartRun() {
	g.Player = NewPlayer()
	g.Enemies.Reset()
	g.Music.Reset()
	g.FX.Clear()
	g.Score = 0
	g.Frames = 0
	g.Minutes = 0
	g.Options = g.Options[:0]
	g.Selected = 0
	g.State = StatePlaying
	g.Bus.Emit(Event{Type: EventRunStarted})
}

// Update advances the simulation by one tick. The synth must be
// non-nil; a nil *AudioSystem works as a silent one.
func (g *Game) Update(in Input, s Synth) {
	switch g.State {
	case StateMenu:
		g.updateMenu(in, s)
	case StatePlaying:
		g.updatePlaying(in, s)
	case StateLevelUp:
		g.updateLevelUp(in, s)
	case StateGameOver:
		g.updateGameOver(in, s)
	}
}

func (g *Game) updateMenu(in Input, s Synth) {
	// The menu idles on the base groove: no speed, no enemies.
	g.Music.Update(0, 0, 0, 0, s)
	if in.Pressed(ButtonConfirm) {
		s.Play(ChannelUI, SampleConfirm)
		g.StartRun()
	}
}

func (g *Game) updatePlaying(in Input, s Synth) {
	// The frame counter moves first so everything below sees the
	// same tick number.
	g.Frames++
	g.Minutes = g.Frames / FramesPerMinute

	g.Player.Update(in)
	g.Enemies.Update(g.Player.X, g.Player.Y, g.Minutes)
	g.FX.Update()

	// Body contact. Each overlapping enemy costs hp separately.
	for i := range g.Enemies.Enemies {
		e := &g.Enemies.Enemies[i]
		if aabb(g.Player.X, g.Player.Y, PlayerSize, PlayerSize, e.X, e.Y, EnemySize, EnemySize) {
			g.Player.HP.Damage(contactDamage)
		}
	}

	// Weapon hits. Area weapons damage on every overlapping tick;
	// the sacred flame lands only on its pulse ticks. No liveness
	// guard here, so two attacks can both hit an already dead enemy.
	for ai := range g.Player.Attacks {
		a := &g.Player.Attacks[ai]
		dmg := a.Damage
		if a.Kind == WeaponSacredFlame {
			if !a.Pulsing() {
				continue
			}
			dmg = a.DOTDamage
		}
		for ei := range g.Enemies.Enemies {
			e := &g.Enemies.Enemies[ei]
			if aabb(a.X, a.Y, float64(a.Range), float64(a.Range), e.X, e.Y, EnemySize, EnemySize) {
				e.TakeDamage(dmg)
			}
		}
	}

	// Reap kills in spawn order: score, events, experience.
	leveled := false
	for i := range g.Enemies.Enemies {
		e := &g.Enemies.Enemies[i]
		if e.IsAlive() {
			continue
		}
		g.Score += e.Exp
		g.FX.SpawnBurst(e.X, e.Y, enemyTable[e.Kind].Color)
		g.Bus.Emit(Event{Type: EventEnemyKilled, X: e.X, Y: e.Y, Data: e.Exp})
		if g.Player.GainExp(e.Exp) {
			leveled = true
		}
	}
	g.Enemies.RemoveDead()

	if g.Player.IsDead() {
		g.gameOver(s)
		return
	}
	if leveled {
		g.openLevelUp(s)
	}

	g.Music.Update(g.Player.Speed(), g.Enemies.Count(), g.Enemies.KindsPresent(), g.Minutes, s)
}

func (g *Game) updateLevelUp(in Input, s Synth) {
	if len(g.Options) == 0 {
		g.State = StatePlaying
		return
	}
	if in.Pressed(ButtonUp) {
		g.Selected = (g.Selected + len(g.Options) - 1) % len(g.Options)
		s.Play(ChannelUI, SampleCursor)
	} else if in.Pressed(ButtonDown) {
		g.Selected = (g.Selected + 1) % len(g.Options)
		s.Play(ChannelUI, SampleCursor)
	} else if in.Pressed(ButtonConfirm) {
		applyLevelUpOption(&g.Player, g.Options[g.Selected])
		g.Options = g.Options[:0]
		g.Selected = 0
		g.State = StatePlaying
		s.Play(ChannelUI, SampleConfirm)
	}
}

func (g *Game) updateGameOver(in Input, s Synth) {
	if in.Pressed(ButtonConfirm) {
		s.Play(ChannelUI, SampleConfirm)
		g.State = StateMenu
	}
}

func (g *Game) openLevelUp(s Synth) {
	g.Options = buildLevelUpOptions(&g.Player)
	g.Selected = 0
	g.State = StateLevelUp
	g.FX.SpawnSparkle(g.Player.X, g.Player.Y)
	s.Play(ChannelUI, SampleLevelUp)
	g.Bus.Emit(Event{Type: EventLevelUp, Data: g.Player.Level})
}

func (g *Game) gameOver(s Synth) {
	g.State = StateGameOver
	if g.Score > g.HighScore {
		g.HighScore = g.Score
	}
	s.Play(ChannelUI, SampleGameOver)
	g.Bus.Emit(Event{Type: EventGameOver, Data: g.Score})
}

func (g *Game) Draw(r Renderer) {
	r.Cls(ColBlack)
	switch g.State {
	case StateMenu:
		g.drawMenu(r)
	case StatePlaying:
		g.drawWorld(r)
		g.drawHUD(r)
	case StateLevelUp:
		g.drawWorld(r)
		g.drawLevelUpModal(r)
		g.drawHUD(r)
	case StateGameOver:
		g.drawGameOver(r)
	}
}

// aabb reports whether two axis-aligned boxes touch or overlap.
// Edge contact counts as a hit.
func aabb(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 <= x2+w2 && x1+w1 >= x2 && y1 <= y2+h2 && y1+h1 >= y2
}
