package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// GLRenderer presents the finished canvas as a single textured quad.
// All drawing happens CPU-side on the canvas; the GPU only scales the
// 160x120 texture up with nearest filtering.
type GLRenderer struct {
	prog uint32
	vao  uint32
	vbo  uint32
	tex  uint32

	uCanvas int32

	rgba []byte // reused canvas expansion buffer
}

func NewGLRenderer() (*GLRenderer, error) {
	prog, err := linkProgram(screenVertSrc, screenFragSrc)
	if err != nil {
		return nil, fmt.Errorf("screen program: %w", err)
	}
	r := &GLRenderer{prog: prog}
	r.uCanvas = gl.GetUniformLocation(prog, gl.Str("uCanvas\x00"))

	// x, y, u, v per corner; two triangles. Texel row 0 is the top of
	// the canvas, so v runs 0 at the top edge.
	quad := []float32{
		-1, -1, 0, 1,
		1, -1, 1, 1,
		-1, 1, 0, 0,
		1, -1, 1, 1,
		1, 1, 1, 0,
		-1, 1, 0, 0,
	}
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(&quad[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 16, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 16, glOffset(8))

	gl.GenTextures(1, &r.tex)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		ScreenWidth, ScreenHeight, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil,
	)

	gl.ClearColor(0, 0, 0, 1)
	return r, nil
}

// Present uploads the canvas and draws it letterboxed into the
// framebuffer, preserving the 4:3 aspect.
func (r *GLRenderer) Present(c *Canvas, fbW, fbH int) {
	r.rgba = c.RGBA(r.rgba)

	gl.Clear(gl.COLOR_BUFFER_BIT)

	vw, vh := fbW, fbW*ScreenHeight/ScreenWidth
	if vh > fbH {
		vh = fbH
		vw = fbH * ScreenWidth / ScreenHeight
	}
	gl.Viewport(int32((fbW-vw)/2), int32((fbH-vh)/2), int32(vw), int32(vh))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		ScreenWidth, ScreenHeight,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(r.rgba),
	)

	gl.UseProgram(r.prog)
	gl.Uniform1i(r.uCanvas, 0)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (r *GLRenderer) Destroy() {
	gl.DeleteTextures(1, &r.tex)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.prog)
}
