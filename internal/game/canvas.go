package game

// Canvas is the CPU-side indexed-colour framebuffer. Both frontends
// present the same canvas: the GL renderer expands it to an RGBA
// texture, the terminal frontend maps pixel pairs to half-block cells.
// All drawing clips at the edges; out-of-bounds pixels are dropped.
type Canvas struct {
	W, H int
	Pix  []uint8 // palette indices, row-major
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{W: w, H: h, Pix: make([]uint8, w*h)}
}

func (c *Canvas) Size() (int, int) { return c.W, c.H }

func (c *Canvas) Cls(col uint8) {
	for i := range c.Pix {
		c.Pix[i] = col
	}
}

func (c *Canvas) PSet(x, y int, col uint8) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	c.Pix[y*c.W+x] = col
}

func (c *Canvas) Rect(x, y float64, w, h int, col uint8) {
	x0 := int(x)
	y0 := int(y)
	x1 := x0 + w
	y1 := y0 + h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.W {
		x1 = c.W
	}
	if y1 > c.H {
		y1 = c.H
	}
	for py := y0; py < y1; py++ {
		row := py * c.W
		for px := x0; px < x1; px++ {
			c.Pix[row+px] = col
		}
	}
}

func (c *Canvas) Line(x1, y1, x2, y2 float64, col uint8) {
	x0, y0 := int(x1), int(y1)
	xe, ye := int(x2), int(y2)
	dx := abs(xe - x0)
	dy := -abs(ye - y0)
	sx := 1
	if x0 > xe {
		sx = -1
	}
	sy := 1
	if y0 > ye {
		sy = -1
	}
	err := dx + dy
	for {
		c.PSet(x0, y0, col)
		if x0 == xe && y0 == ye {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circb draws a one-pixel circle outline (midpoint algorithm).
func (c *Canvas) Circb(x, y float64, r int, col uint8) {
	if r < 0 {
		return
	}
	cx, cy := int(x), int(y)
	if r == 0 {
		c.PSet(cx, cy, col)
		return
	}
	px, py := r, 0
	d := 3 - 2*r
	for py <= px {
		c.PSet(cx+px, cy+py, col)
		c.PSet(cx-px, cy+py, col)
		c.PSet(cx+px, cy-py, col)
		c.PSet(cx-px, cy-py, col)
		c.PSet(cx+py, cy+px, col)
		c.PSet(cx-py, cy+px, col)
		c.PSet(cx+py, cy-px, col)
		c.PSet(cx-py, cy-px, col)
		if d < 0 {
			d += 4*py + 6
		} else {
			d += 4*(py-px) + 10
			px--
		}
		py++
	}
}

func (c *Canvas) Text(x, y int, s string, col uint8) {
	drawText(c, x, y, s, col)
}

// RGBA expands the canvas into an RGBA8 pixel buffer, reusing dst when
// it is large enough. Used by the GL frontend for texture upload.
func (c *Canvas) RGBA(dst []byte) []byte {
	need := c.W * c.H * 4
	if cap(dst) < need {
		dst = make([]byte, need)
	}
	dst = dst[:need]
	for i, p := range c.Pix {
		col := Palette[p%PaletteSize]
		dst[i*4+0] = col.R
		dst[i*4+1] = col.G
		dst[i*4+2] = col.B
		dst[i*4+3] = 0xFF
	}
	return dst
}
