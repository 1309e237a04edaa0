package game

import "testing"

func TestBPMTracksSpeed(t *testing.T) {
	tests := []struct {
		speed float64
		want  int
	}{
		{0, 120},
		{2.0, 180},
		{2.5, 195},
		{3.0, 210},
		{4.0, 240},
	}
	for _, tt := range tests {
		m := NewMusic()
		m.Update(tt.speed, 0, 0, 0, &fakeSynth{})
		if m.BPM != tt.want {
			t.Errorf("Expected bpm at speed %v to be %d, got %d", tt.speed, tt.want, m.BPM)
		}
	}
}

func TestRhythmThresholds(t *testing.T) {
	tests := []struct {
		count int
		want  RhythmKind
	}{
		{0, RhythmNormal},
		{10, RhythmNormal},
		{15, RhythmNormal},
		{16, RhythmIntense},
		{30, RhythmIntense},
		{31, RhythmBoss},
		{100, RhythmBoss},
	}
	for _, tt := range tests {
		m := NewMusic()
		m.Update(0, tt.count, 0, 0, &fakeSynth{})
		if m.Rhythm != tt.want {
			t.Errorf("Expected rhythm at %d enemies to be %d, got %d", tt.count, tt.want, m.Rhythm)
		}
	}
}

func TestMelodyPriority(t *testing.T) {
	tests := []struct {
		name  string
		kinds []EnemyKind
		want  MelodyKind
	}{
		{"empty field idles", nil, MelodyNormal},
		{"zombies alone", []EnemyKind{EnemyZombie}, MelodyKnife},
		{"bats outrank zombies", []EnemyKind{EnemyZombie, EnemyBat}, MelodyMagicBlade},
		{"skeletons outrank bats", []EnemyKind{EnemyBat, EnemySkeleton, EnemyZombie}, MelodySacredFlame},
		{"ghosts outrank everything", []EnemyKind{EnemyZombie, EnemyBat, EnemySkeleton, EnemyGhost}, MelodyHolyWater},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var set KindSet
			for _, k := range tt.kinds {
				set = set.With(k)
			}
			m := NewMusic()
			m.Update(0, 0, set, 0, &fakeSynth{})
			if m.Melody != tt.want {
				t.Errorf("Expected melody to be %d, got %d", tt.want, m.Melody)
			}
		})
	}
}

func TestMelodyBeatAndNoteOrder(t *testing.T) {
	m := NewMusic()
	s := &fakeSynth{}
	kinds := KindSet(0).With(EnemyZombie)

	// At 120 bpm the melody fires every 15 ticks; four beats walk the
	// knife pattern, rest included.
	for i := 0; i < 60; i++ {
		m.Update(0, 0, kinds, 0, s)
	}
	want := []SampleID{SampleArpC, SampleArpD, SampleNoiseHigh, SampleRest}
	got := s.onChannel(ChannelMelody)
	if len(got) != len(want) {
		t.Fatalf("Expected %d melody notes in 60 ticks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected melody note %d to be %d, got %d", i, want[i], got[i])
		}
	}
}

func TestRhythmDoubleTimeAndPhaseLock(t *testing.T) {
	m := NewMusic()
	s := &fakeSynth{}
	kinds := KindSet(0).With(EnemyZombie)

	// Rhythm fires at ticks 8 and 16; the melody advances the shared
	// note index at tick 15, so the second hit reads index 1.
	for i := 0; i < 16; i++ {
		m.Update(0, 0, kinds, 0, s)
	}
	want := []SampleID{SampleNoiseLow, SampleNoiseHigh}
	got := s.onChannel(ChannelRhythm)
	if len(got) != len(want) {
		t.Fatalf("Expected %d rhythm notes in 16 ticks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected rhythm note %d to be %d, got %d", i, want[i], got[i])
		}
	}
}

func TestRhythmVoicePerKind(t *testing.T) {
	s := &fakeSynth{}
	m := NewMusic()
	kinds := KindSet(0).With(EnemyZombie).With(EnemyGhost).With(EnemyBat)

	for i := 0; i < 8; i++ {
		m.Update(0, 0, kinds, 0, s)
	}
	if got := len(s.onChannel(ChannelRhythm)); got != 3 {
		t.Errorf("Expected one percussion voice per kind (3), got %d", got)
	}
}

func TestRhythmSilentWithNoEnemies(t *testing.T) {
	s := &fakeSynth{}
	m := NewMusic()
	for i := 0; i < 30; i++ {
		m.Update(0, 0, 0, 0, s)
	}
	if got := len(s.onChannel(ChannelRhythm)); got != 0 {
		t.Errorf("Expected no percussion on an empty field, got %d notes", got)
	}
}

func TestAmbientCadence(t *testing.T) {
	s := &fakeSynth{}
	m := NewMusic()

	// Minute zero: the timer runs but nothing plays.
	for i := 0; i < AmbientInterval; i++ {
		m.Update(0, 0, 0, 0, s)
	}
	if got := len(s.onChannel(ChannelAmbient)); got != 0 {
		t.Fatalf("Expected no ambient pad in minute zero, got %d notes", got)
	}

	// Minute one: exactly one pad per interval.
	for i := 0; i < AmbientInterval; i++ {
		m.Update(0, 0, 0, 1, s)
	}
	got := s.onChannel(ChannelAmbient)
	if len(got) != 1 {
		t.Fatalf("Expected one ambient pad in minute one, got %d", len(got))
	}
	if got[0] != SamplePadMid {
		t.Errorf("Expected the minute-one pad to be %d, got %d", SamplePadMid, got[0])
	}
}

func TestAmbientPadRotation(t *testing.T) {
	tests := []struct {
		minutes int
		want    SampleID
	}{
		{1, SamplePadMid},
		{2, SamplePadHigh},
		{3, SamplePadLow},
		{4, SamplePadMid},
	}
	for _, tt := range tests {
		s := &fakeSynth{}
		m := NewMusic()
		for i := 0; i < AmbientInterval; i++ {
			m.Update(0, 0, 0, tt.minutes, s)
		}
		got := s.onChannel(ChannelAmbient)
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("Expected the minute-%d pad to be %d, got %v", tt.minutes, tt.want, got)
		}
	}
}

func TestMusicReset(t *testing.T) {
	m := NewMusic()
	s := &fakeSynth{}
	for i := 0; i < 40; i++ {
		m.Update(4, 40, KindSet(0).With(EnemyGhost), 2, s)
	}
	m.Reset()
	if m.BPM != BaseBPM {
		t.Errorf("Expected bpm to reset to %d, got %d", BaseBPM, m.BPM)
	}
	if m.Melody != MelodyNormal || m.Rhythm != RhythmNormal {
		t.Errorf("Expected selectors to reset, got melody %d rhythm %d", m.Melody, m.Rhythm)
	}
	if m.melodyTimer != 0 || m.rhythmTimer != 0 || m.ambientTimer != 0 || m.noteIndex != 0 {
		t.Error("Expected all timers to reset to zero")
	}
}
