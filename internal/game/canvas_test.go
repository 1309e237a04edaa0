package game

import "testing"

func countPixels(c *Canvas, col uint8) int {
	n := 0
	for _, p := range c.Pix {
		if p == col {
			n++
		}
	}
	return n
}

func TestPSetBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	c.PSet(1, 2, ColRed)
	if c.Pix[2*4+1] != ColRed {
		t.Errorf("Expected pixel (1, 2) to be %d, got %d", ColRed, c.Pix[2*4+1])
	}

	// Out-of-range writes are dropped, not wrapped.
	c.PSet(-1, 0, ColWhite)
	c.PSet(0, -1, ColWhite)
	c.PSet(4, 0, ColWhite)
	c.PSet(0, 4, ColWhite)
	if n := countPixels(c, ColWhite); n != 0 {
		t.Errorf("Expected out-of-bounds writes to be dropped, got %d pixels", n)
	}
}

func TestClsFills(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Cls(ColNavy)
	if n := countPixels(c, ColNavy); n != 9 {
		t.Errorf("Expected 9 navy pixels, got %d", n)
	}
}

func TestRectClips(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		w, h int
		want int
	}{
		{"inside", 1, 1, 2, 2, 4},
		{"clipped top left", -2, -2, 4, 4, 4},
		{"clipped bottom right", 6, 6, 4, 4, 4},
		{"fully outside", 20, 20, 4, 4, 0},
		{"zero size", 1, 1, 0, 0, 0},
		{"negative size", 1, 1, -3, -3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(8, 8)
			c.Rect(tt.x, tt.y, tt.w, tt.h, ColLime)
			if n := countPixels(c, ColLime); n != tt.want {
				t.Errorf("Expected %d pixels, got %d", tt.want, n)
			}
		})
	}
}

func TestLineEndpoints(t *testing.T) {
	c := NewCanvas(8, 8)
	c.Line(1, 1, 5, 1, ColWhite)
	for x := 1; x <= 5; x++ {
		if c.Pix[1*8+x] != ColWhite {
			t.Errorf("Expected pixel (%d, 1) on the line", x)
		}
	}
	if n := countPixels(c, ColWhite); n != 5 {
		t.Errorf("Expected 5 pixels, got %d", n)
	}

	c.Cls(ColBlack)
	c.Line(0, 0, 3, 3, ColWhite)
	for i := 0; i <= 3; i++ {
		if c.Pix[i*8+i] != ColWhite {
			t.Errorf("Expected pixel (%d, %d) on the diagonal", i, i)
		}
	}
}

func TestCircbSmallRadii(t *testing.T) {
	c := NewCanvas(16, 16)
	c.Circb(8, 8, 0, ColRed)
	if c.Pix[8*16+8] != ColRed {
		t.Error("Expected a zero-radius circle to paint its center")
	}

	c.Cls(ColBlack)
	c.Circb(8, 8, -1, ColRed)
	if n := countPixels(c, ColRed); n != 0 {
		t.Errorf("Expected a negative radius to paint nothing, got %d pixels", n)
	}

	c.Circb(8, 8, 3, ColRed)
	for _, p := range [][2]int{{11, 8}, {5, 8}, {8, 11}, {8, 5}} {
		if c.Pix[p[1]*16+p[0]] != ColRed {
			t.Errorf("Expected cardinal point (%d, %d) on the circle", p[0], p[1])
		}
	}
	if c.Pix[8*16+8] == ColRed {
		t.Error("Expected the outline to leave the center empty")
	}
}

func TestRGBAExpansion(t *testing.T) {
	c := NewCanvas(2, 2)
	c.PSet(0, 0, ColRed)

	buf := c.RGBA(nil)
	if len(buf) != 16 {
		t.Fatalf("Expected 16 bytes, got %d", len(buf))
	}
	want := Palette[ColRed]
	if buf[0] != want.R || buf[1] != want.G || buf[2] != want.B || buf[3] != 0xFF {
		t.Errorf("Expected pixel 0 to be %v opaque, got [%d %d %d %d]", want, buf[0], buf[1], buf[2], buf[3])
	}
	black := Palette[ColBlack]
	if buf[4] != black.R || buf[7] != 0xFF {
		t.Errorf("Expected pixel 1 to be black opaque, got [%d %d %d %d]", buf[4], buf[5], buf[6], buf[7])
	}

	// A big enough destination is reused, not reallocated.
	big := make([]byte, 64)
	out := c.RGBA(big)
	if len(out) != 16 {
		t.Errorf("Expected the reused buffer trimmed to 16, got %d", len(out))
	}
	if &out[0] != &big[0] {
		t.Error("Expected the destination buffer to be reused")
	}
}

func TestTextGlyphs(t *testing.T) {
	c := NewCanvas(16, 8)
	c.Text(0, 0, "A", ColWhite)
	// Row 0 of 'A' is 010: only the middle column is lit.
	if c.Pix[1] != ColWhite {
		t.Error("Expected the top-middle pixel of A to be lit")
	}
	if c.Pix[0] == ColWhite || c.Pix[2] == ColWhite {
		t.Error("Expected the top corners of A to be dark")
	}

	// Lowercase folds to uppercase.
	c2 := NewCanvas(16, 8)
	c2.Text(0, 0, "a", ColWhite)
	for i := range c.Pix {
		if c.Pix[i] != c2.Pix[i] {
			t.Fatal("Expected lowercase a to render like A")
		}
	}
}

func TestTextWidth(t *testing.T) {
	if got := textWidth("ABC"); got != 3*FontAdvance {
		t.Errorf("Expected width to be %d, got %d", 3*FontAdvance, got)
	}
	if got := textWidth(""); got != 0 {
		t.Errorf("Expected empty width to be 0, got %d", got)
	}
}

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(160, 120)
	w, h := c.Size()
	if w != 160 || h != 120 {
		t.Errorf("Expected size (160, 120), got (%d, %d)", w, h)
	}
}
