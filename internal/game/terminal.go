package game

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminals deliver key repeats instead of release events, so a key
// counts as held for this many ticks after its last event.
const termHoldTicks = 10

// termInput adapts tcell key events to the Input capability. Events
// arrive between ticks via handleKey; endTick ages the hold counters
// and clears the edge flags once the simulation has consumed them.
type termInput struct {
	hold    [ButtonCount]int
	pressed [ButtonCount]bool
	quit    bool
}

func (in *termInput) Held(b Button) bool    { return in.hold[b] > 0 }
func (in *termInput) Pressed(b Button) bool { return in.pressed[b] }

func (in *termInput) keyDown(b Button) {
	// A repeat while the hold is still live is not a new press.
	if in.hold[b] <= 0 {
		in.pressed[b] = true
	}
	in.hold[b] = termHoldTicks
}

func (in *termInput) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		in.keyDown(ButtonCancel)
	case tcell.KeyCtrlC:
		in.quit = true
	case tcell.KeyUp:
		in.keyDown(ButtonUp)
	case tcell.KeyDown:
		in.keyDown(ButtonDown)
	case tcell.KeyLeft:
		in.keyDown(ButtonLeft)
	case tcell.KeyRight:
		in.keyDown(ButtonRight)
	case tcell.KeyEnter:
		in.keyDown(ButtonConfirm)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			in.keyDown(ButtonUp)
		case 's', 'S':
			in.keyDown(ButtonDown)
		case 'a', 'A':
			in.keyDown(ButtonLeft)
		case 'd', 'D':
			in.keyDown(ButtonRight)
		case ' ':
			in.keyDown(ButtonConfirm)
		case 'q', 'Q':
			in.quit = true
		}
	}
}

func (in *termInput) endTick() {
	for b := range in.hold {
		if in.hold[b] > 0 {
			in.hold[b]--
		}
	}
	in.pressed = [ButtonCount]bool{}
}

// RunTerminal drives the game in a terminal, packing two canvas rows
// into each cell with the upper half block.
func RunTerminal(cfg Settings) {
	// Audio comes up before tcell takes the tty so its warning, if
	// any, still lands on a readable stderr.
	audio, err := InitAudio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}
	audio.SetMusicVolume(cfg.MusicVolume)
	audio.SetSFXVolume(cfg.SFXVolume)

	screen, err := tcell.NewScreen()
	if err != nil {
		panic(fmt.Errorf("terminal init: %w", err))
	}
	if err := screen.Init(); err != nil {
		panic(fmt.Errorf("terminal init: %w", err))
	}
	defer screen.Fini()
	screen.HideCursor()

	g := NewGame(cfg.ResolveSeed())
	g.HighScore = LoadHighScore(cfg.HighScoreFile)
	wireSessionEvents(g, audio, cfg)

	canvas := NewCanvas(ScreenWidth, ScreenHeight)
	in := &termInput{}

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	for !in.quit {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				in.handleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if in.Pressed(ButtonCancel) {
				in.quit = true
			}
			g.Update(in, audio)
			in.endTick()

			g.Draw(canvas)
			blitCanvas(screen, canvas)
			screen.Show()
		}
	}
}

// blitCanvas centers the canvas on the screen and renders pixel pairs
// as half blocks, foreground on top of background. tcell drops cells
// outside the screen, so an undersized terminal just clips.
func blitCanvas(s tcell.Screen, c *Canvas) {
	tw, th := s.Size()
	offX := (tw - c.W) / 2
	offY := (th - c.H/2) / 2
	if offX < 0 {
		offX = 0
	}
	if offY < 0 {
		offY = 0
	}

	for row := 0; row < c.H/2; row++ {
		for x := 0; x < c.W; x++ {
			top := Palette[c.Pix[(row*2)*c.W+x]%PaletteSize]
			bot := Palette[c.Pix[(row*2+1)*c.W+x]%PaletteSize]
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			s.SetContent(offX+x, offY+row, '▀', nil, st)
		}
	}
}
