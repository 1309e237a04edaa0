package game

import (
	"fmt"
	"io"
	"math"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Mixer channels. Each holds one playing sample; playing another on
// the same channel replaces it.
const (
	ChannelMelody = iota
	ChannelRhythm
	ChannelAmbient
	ChannelUI

	MixerChannels // must stay last
)

// SampleID indexes the fixed sample bank. The music layer's note
// tables point straight at these, so the order is load-bearing.
type SampleID int

const (
	SampleArpC SampleID = iota
	SampleArpA
	SampleArpG
	SampleArpE
	SampleArpD
	SampleNoiseLow
	SampleNoiseMid
	SampleNoiseHigh
	SamplePadLow
	SamplePadMid
	SamplePadHigh
	SampleRest // empty slot, reads as a silent beat
	SampleLevelUp
	SampleCursor
	SampleConfirm
	SampleGameOver

	SampleCount // must stay last
)

type toneKind int

const (
	toneTriangle toneKind = iota
	toneSquare
	toneNoise
)

type effectKind int

const (
	effectNone effectKind = iota
	effectFade
)

// sampleSpec is a compact tracker-style voice: a run of equal-length
// notes on one oscillator. speed is in 1/120 s ticks per note.
type sampleSpec struct {
	notes  string
	tone   toneKind
	volume float64 // 0..7
	effect effectKind
	speed  int
}

var sampleSpecs = [SampleCount]sampleSpec{
	SampleArpC:      {"c2e2g2c3e3g3", toneTriangle, 7, effectNone, 20},
	SampleArpA:      {"a2c3e3a3c4e4", toneTriangle, 7, effectNone, 20},
	SampleArpG:      {"g2a2c3e3g3a3", toneTriangle, 7, effectNone, 20},
	SampleArpE:      {"e2g2b2e3g3b3", toneTriangle, 7, effectNone, 20},
	SampleArpD:      {"d2f2a2d3f3a3", toneTriangle, 7, effectNone, 20},
	SampleNoiseLow:  {"c2c2", toneNoise, 7, effectNone, 10},
	SampleNoiseMid:  {"c3c3c3", toneNoise, 7, effectFade, 10},
	SampleNoiseHigh: {"c3c3c3c3", toneNoise, 7, effectFade, 10},
	SamplePadLow:    {"c2e2g2c3", toneSquare, 3, effectFade, 40},
	SamplePadMid:    {"g2b2d3g3", toneSquare, 3, effectFade, 40},
	SamplePadHigh:   {"c3e3g3c4", toneSquare, 3, effectFade, 40},
}

// AudioSystem renders the sample bank once at startup and plays bank
// entries on four mixer channels. A nil receiver is valid and silent,
// so the game keeps running when audio init fails.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}

	bank    [SampleCount][]byte
	players [MixerChannels]oto.Player

	musicVolume float64
	sfxVolume   float64
}

func InitAudio() (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	a := &AudioSystem{
		ctx:         ctx,
		ready:       ready,
		musicVolume: 0.25,
		sfxVolume:   0.5,
	}
	for id := SampleID(0); id < SampleCount; id++ {
		a.bank[id] = generateSample(id)
	}
	return a, nil
}

// Play starts bank entry id on the given channel, replacing whatever
// the channel was playing. The rest sample just stops the channel.
func (a *AudioSystem) Play(channel int, id SampleID) {
	if a == nil || channel < 0 || channel >= MixerChannels {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	if old := a.players[channel]; old != nil {
		old.Close()
		a.players[channel] = nil
	}
	data := a.bank[id]
	if len(data) == 0 {
		return
	}
	p := a.ctx.NewPlayer(&soundReader{data: data})
	if channel == ChannelUI {
		p.SetVolume(a.sfxVolume)
	} else {
		p.SetVolume(a.musicVolume)
	}
	p.Play()
	a.players[channel] = p
}

// StopMusic silences the three music channels, leaving UI sounds
// alone. Used on run transitions.
func (a *AudioSystem) StopMusic() {
	if a == nil {
		return
	}
	for _, ch := range [...]int{ChannelMelody, ChannelRhythm, ChannelAmbient} {
		if p := a.players[ch]; p != nil {
			p.Close()
			a.players[ch] = nil
		}
	}
}

func (a *AudioSystem) SetMusicVolume(vol float64) {
	if a == nil {
		return
	}
	a.musicVolume = clampF(vol, 0, 1)
	for ch := 0; ch < MixerChannels; ch++ {
		if ch == ChannelUI {
			continue
		}
		if p := a.players[ch]; p != nil {
			p.SetVolume(a.musicVolume)
		}
	}
}

func (a *AudioSystem) SetSFXVolume(vol float64) {
	if a == nil {
		return
	}
	a.sfxVolume = clampF(vol, 0, 1)
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation to keep peaks from clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(phase))
}

func softSquareWave(phase float64) float64 {
	return math.Tanh(math.Sin(phase) * 3.4)
}

// ---- Sample bank ---------------------------------------------------------

func generateSample(id SampleID) []byte {
	switch id {
	case SampleRest:
		return nil
	case SampleLevelUp:
		return genLevelUpJingle()
	case SampleCursor:
		return genCursorBlip()
	case SampleConfirm:
		return genConfirm()
	case SampleGameOver:
		return genGameOverSting()
	default:
		return renderNotes(sampleSpecs[id])
	}
}

// noteSemitone maps a natural note letter to its semitone offset.
func noteSemitone(c byte) (int, bool) {
	switch c {
	case 'c':
		return 0, true
	case 'd':
		return 2, true
	case 'e':
		return 4, true
	case 'f':
		return 5, true
	case 'g':
		return 7, true
	case 'a':
		return 9, true
	case 'b':
		return 11, true
	}
	return 0, false
}

// parseNotes expands a note string like "c2e2g2c3" into frequencies.
// Letter plus optional '#' plus octave digit; equal temperament with
// a4 = 440. The strings are compile-time constants, so a bad one is a
// programmer error and panics.
func parseNotes(s string) []float64 {
	var freqs []float64
	for i := 0; i < len(s); {
		sem, ok := noteSemitone(s[i])
		if !ok {
			panic(fmt.Sprintf("bad note letter %q in %q", s[i], s))
		}
		i++
		if i < len(s) && s[i] == '#' {
			sem++
			i++
		}
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			panic(fmt.Sprintf("missing octave in %q", s))
		}
		n := int(s[i]-'0')*12 + sem
		i++
		freqs = append(freqs, 440*math.Pow(2, float64(n-57)/12))
	}
	return freqs
}

// renderNotes synthesizes a sampleSpec into a stereo float32 buffer.
// Oscillator phase carries across notes so transitions don't click.
func renderNotes(spec sampleSpec) []byte {
	notes := parseNotes(spec.notes)
	noteLen := SampleRate * spec.speed / 120
	buf := makeBuf(len(notes) * noteLen)

	seed := uint64(99991)
	phase := 0.0
	noiseVal := 0.0
	amp := 0.5 * spec.volume / 7

	for ni, freq := range notes {
		for j := 0; j < noteLen; j++ {
			np := float64(j) / float64(noteLen)
			env := adsr(np, 0.02, 0.1, 0.85, 0.15)
			if spec.effect == effectFade {
				env *= 1 - np
			}

			var s float64
			switch spec.tone {
			case toneTriangle:
				s = triWave(phase)
			case toneSquare:
				s = softSquareWave(phase)
			case toneNoise:
				// Sample-and-hold noise pitched by the note.
				hold := int(SampleRate / (freq * 4))
				if hold < 1 {
					hold = 1
				}
				if j%hold == 0 {
					noiseVal = lcg(&seed)
				}
				s = noiseVal
			}
			phase += 2 * math.Pi * freq / SampleRate

			putStereoF32(buf, ni*noteLen+j, softSat(s*env*amp))
		}
	}
	return buf
}

// ---- UI jingles ----------------------------------------------------------

// genLevelUpJingle: ascending FM staircase, each note ringing over the next.
func genLevelUpJingle() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteStep := int(0.08 * SampleRate)
	total := len(notes)*noteStep + int(0.22*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.05, 0.3)
			s := fm(t, freq, 3.5, 5.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCursorBlip: short rising tick for menu navigation.
func genCursorBlip() []byte {
	n := SampleRate * 45 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.15)
		freq := 900 + 350*p
		s := fm(t, freq, 1.0, 0.7) * env * 0.34
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genConfirm: quick two-note affirmation.
func genConfirm() []byte {
	freqs := []float64{659.25, 880} // E5 A5
	noteLen := SampleRate * 70 / 1000
	tail := int(0.12 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.005, 0.5, 0.08, 0.35)
			s := fm(t, freq, 2.0, 3.0*env) * env * 0.36
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOverSting: slow descending minor chord, staggered, with a
// slight left/right detune for width.
func genGameOverSting() []byte {
	dur := 0.8
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{440.00, 0.00}, // A4
		{329.63, 0.15}, // E4
		{261.63, 0.30}, // C4
		{220.00, 0.45}, // A3
	}
	left := make([]float64, n)
	right := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.02)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.3
			left[i] += s
			right[i] += fm(t, freq*1.003, 2.0, 2.0*env) * env * 0.3
		}
	}
	buf := makeBuf(n)
	for i := range left {
		putStereoF32LR(buf, i, softSat(left[i]), softSat(right[i]))
	}
	return buf
}
