package game

import "github.com/go-gl/glfw/v3.3/glfw"

// KeyboardInput adapts GLFW key state to the Input capability.
// Arrows and WASD move, space or enter confirms, escape cancels. The
// window loop turns a cancel press into a quit.
type KeyboardInput struct {
	cur  [ButtonCount]bool
	prev [ButtonCount]bool
}

func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

var keyBindings = map[Button][]glfw.Key{
	ButtonUp:      {glfw.KeyUp, glfw.KeyW},
	ButtonDown:    {glfw.KeyDown, glfw.KeyS},
	ButtonLeft:    {glfw.KeyLeft, glfw.KeyA},
	ButtonRight:   {glfw.KeyRight, glfw.KeyD},
	ButtonConfirm: {glfw.KeySpace, glfw.KeyEnter},
	ButtonCancel:  {glfw.KeyEscape},
}

// Poll samples key state once per tick. Pressed edges are relative to
// the previous Poll, so call it exactly once per simulation tick.
func (in *KeyboardInput) Poll(window *glfw.Window) {
	in.prev = in.cur
	for b, keys := range keyBindings {
		down := false
		for _, k := range keys {
			if window.GetKey(k) == glfw.Press {
				down = true
				break
			}
		}
		in.cur[b] = down
	}
}

func (in *KeyboardInput) Held(b Button) bool    { return in.cur[b] }
func (in *KeyboardInput) Pressed(b Button) bool { return in.cur[b] && !in.prev[b] }
