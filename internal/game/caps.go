package game

// The simulation talks to the outside world through three capabilities:
// a drawing surface, a keyboard, and a sample player. The frontends
// provide implementations; tests substitute their own.

// Button is a logical input button, independent of the physical key map.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonConfirm
	ButtonCancel

	ButtonCount
)

// Input reports button state for the current tick.
type Input interface {
	// Held reports whether the button is currently down.
	Held(b Button) bool
	// Pressed reports whether the button went down this tick.
	Pressed(b Button) bool
}

// Renderer is the drawing surface the game paints every frame.
// Coordinates are screen pixels, colours are palette indices.
type Renderer interface {
	Cls(col uint8)
	Rect(x, y float64, w, h int, col uint8)
	Line(x1, y1, x2, y2 float64, col uint8)
	Circb(x, y float64, r int, col uint8)
	Text(x, y int, s string, col uint8)
	Size() (w, h int)
}

// Synth triggers a sample on a mixer channel. Fire and forget; a new
// trigger on a channel replaces whatever that channel was playing.
type Synth interface {
	Play(channel int, id SampleID)
}
