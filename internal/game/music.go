package game

import "math"

// MelodyKind selects which four-note loop the melody channel cycles.
type MelodyKind int

const (
	MelodyNormal MelodyKind = iota
	MelodyKnife
	MelodyHolyWater
	MelodyMagicBlade
	MelodySacredFlame

	MelodyKindCount // must stay last
)

// RhythmKind selects the percussion loop by crowd pressure.
type RhythmKind int

const (
	RhythmNormal RhythmKind = iota
	RhythmIntense
	RhythmBoss

	RhythmKindCount // must stay last
)

// Melody loops index straight into the sample bank; SampleRest slots
// read as silent beats.
var melodyPatterns = [MelodyKindCount][4]SampleID{
	MelodyNormal:      {SampleArpC, SampleArpD, SampleNoiseHigh, SampleArpD},
	MelodyKnife:       {SampleArpC, SampleArpD, SampleNoiseHigh, SampleRest},
	MelodyHolyWater:   {SampleArpC, SampleArpE, SampleNoiseHigh, SamplePadHigh},
	MelodyMagicBlade:  {SampleArpC, SampleArpD, SamplePadLow, SampleRest},
	MelodySacredFlame: {SampleArpC, SampleArpE, SampleNoiseMid, SamplePadMid},
}

// Rhythm loops hold offsets from SampleNoiseLow.
var rhythmPatterns = [RhythmKindCount][]int{
	RhythmNormal:  {0, 2},
	RhythmIntense: {0, 1, 2, 3},
	RhythmBoss:    {0, 1, 1, 2, 2, 3},
}

// Music derives tempo, melody and rhythm from live simulation
// readings every tick, then drives the synth on its own beat timers.
// It holds no state beyond those timers; every selector is recomputed
// from scratch each update.
type Music struct {
	BPM         int
	Melody      MelodyKind
	Rhythm      RhythmKind
	Instruments KindSet

	melodyTimer  int
	rhythmTimer  int
	ambientTimer int
	noteIndex    int
}

func NewMusic() *Music {
	return &Music{BPM: BaseBPM}
}

func (m *Music) Reset() {
	*m = Music{BPM: BaseBPM}
}

// Update recomputes the selectors, then advances the playback timers
// and emits due notes into the synth.
func (m *Music) Update(playerSpeed float64, enemyCount int, kinds KindSet, minutes int, s Synth) {
	// Tempo tracks movement speed, up to +50% over base.
	m.BPM = int(math.Round(float64(BaseBPM) * (1 + playerSpeed/2*0.5)))

	switch {
	case enemyCount > 30:
		m.Rhythm = RhythmBoss
	case enemyCount > 15:
		m.Rhythm = RhythmIntense
	default:
		m.Rhythm = RhythmNormal
	}

	// One kind wins the melody; the priority order matches the threat
	// each weapon theme answers.
	switch {
	case kinds.Has(EnemyGhost):
		m.Melody = MelodyHolyWater
	case kinds.Has(EnemySkeleton):
		m.Melody = MelodySacredFlame
	case kinds.Has(EnemyBat):
		m.Melody = MelodyMagicBlade
	case kinds.Has(EnemyZombie):
		m.Melody = MelodyKnife
	default:
		m.Melody = MelodyNormal
	}

	// Every kind on screen contributes its own percussion voice.
	m.Instruments = kinds

	m.ambientTimer++
	if m.ambientTimer >= AmbientInterval {
		m.ambientTimer = 0
		if minutes > 0 {
			s.Play(ChannelAmbient, SamplePadLow+SampleID(minutes%3))
		}
	}

	beat := 30.0 * 60.0 / float64(m.BPM)

	m.melodyTimer++
	if float64(m.melodyTimer) >= beat {
		m.melodyTimer = 0
		pat := melodyPatterns[m.Melody]
		s.Play(ChannelMelody, pat[m.noteIndex])
		m.noteIndex = (m.noteIndex + 1) % len(pat)
	}

	// Percussion runs at double time and reads the melody's note
	// index, so both layers stay phase-locked.
	m.rhythmTimer++
	if float64(m.rhythmTimer) >= beat/2 {
		m.rhythmTimer = 0
		pat := rhythmPatterns[m.Rhythm]
		note := SampleNoiseLow + SampleID(pat[m.noteIndex%len(pat)])
		for k := EnemyKind(0); k < EnemyKindCount; k++ {
			if m.Instruments.Has(k) {
				s.Play(ChannelRhythm, note)
			}
		}
	}
}
