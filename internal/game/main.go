package game

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop opens the GLFW window and drives the fixed-step loop
// until the window closes. Rendering runs at the display rate; the
// simulation always steps at TickRate.
func RunDesktop(cfg Settings) {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Scale)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	audio, err := InitAudio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}
	audio.SetMusicVolume(cfg.MusicVolume)
	audio.SetSFXVolume(cfg.SFXVolume)

	rend, err := NewGLRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	g := NewGame(cfg.ResolveSeed())
	g.HighScore = LoadHighScore(cfg.HighScoreFile)
	wireSessionEvents(g, audio, cfg)

	canvas := NewCanvas(ScreenWidth, ScreenHeight)
	input := NewKeyboardInput()

	const step = 1.0 / TickRate
	acc := 0.0
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}
		acc += dt

		glfw.PollEvents()

		for acc >= step {
			input.Poll(window)
			if input.Pressed(ButtonCancel) {
				window.SetShouldClose(true)
			}
			g.Update(input, audio)
			acc -= step
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		g.Draw(canvas)
		rend.Present(canvas, fbW, fbH)
		window.SwapBuffers()
	}
}

// wireSessionEvents hooks run transitions to the mixer and scoreboard.
func wireSessionEvents(g *Game, audio *AudioSystem, cfg Settings) {
	g.Bus.Subscribe(EventGameOver, func(Event) {
		audio.StopMusic()
		SaveHighScore(cfg.HighScoreFile, g.HighScore)
	})
}
