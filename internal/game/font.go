package game

// 3x5 pixel font, ASCII 32-90, lowercase folded to uppercase. Each
// glyph is 15 bits, rows top to bottom, three bits per row with the
// leftmost column in the highest bit.
const (
	FontGlyphW  = 3
	FontGlyphH  = 5
	FontAdvance = 4
	FontLineH   = 6
)

var fontGlyphs = [...]uint16{
	0b000_000_000_000_000, // space
	0b010_010_010_000_010, // !
	0b101_101_000_000_000, // "
	0b101_111_101_111_101, // #
	0b011_110_010_011_110, // $
	0b101_001_010_100_101, // %
	0b010_101_010_101_011, // &
	0b010_010_000_000_000, // '
	0b001_010_010_010_001, // (
	0b100_010_010_010_100, // )
	0b101_010_101_000_000, // *
	0b000_010_111_010_000, // +
	0b000_000_000_010_100, // ,
	0b000_000_111_000_000, // -
	0b000_000_000_000_010, // .
	0b001_001_010_100_100, // /
	0b111_101_101_101_111, // 0
	0b010_110_010_010_111, // 1
	0b111_001_111_100_111, // 2
	0b111_001_111_001_111, // 3
	0b101_101_111_001_001, // 4
	0b111_100_111_001_111, // 5
	0b111_100_111_101_111, // 6
	0b111_001_001_010_010, // 7
	0b111_101_111_101_111, // 8
	0b111_101_111_001_111, // 9
	0b000_010_000_010_000, // :
	0b000_010_000_010_100, // ;
	0b001_010_100_010_001, // <
	0b000_111_000_111_000, // =
	0b100_010_001_010_100, // >
	0b111_001_011_000_010, // ?
	0b011_101_111_100_011, // @
	0b010_101_111_101_101, // A
	0b110_101_110_101_110, // B
	0b011_100_100_100_011, // C
	0b110_101_101_101_110, // D
	0b111_100_110_100_111, // E
	0b111_100_110_100_100, // F
	0b011_100_101_101_011, // G
	0b101_101_111_101_101, // H
	0b111_010_010_010_111, // I
	0b001_001_001_101_010, // J
	0b101_101_110_101_101, // K
	0b100_100_100_100_111, // L
	0b101_111_101_101_101, // M
	0b110_101_101_101_101, // N
	0b010_101_101_101_010, // O
	0b110_101_110_100_100, // P
	0b010_101_101_010_001, // Q
	0b110_101_110_101_101, // R
	0b011_100_010_001_110, // S
	0b111_010_010_010_010, // T
	0b101_101_101_101_111, // U
	0b101_101_101_101_010, // V
	0b101_101_101_111_101, // W
	0b101_101_010_101_101, // X
	0b101_101_010_010_010, // Y
	0b111_001_010_100_111, // Z
}

// drawText paints s onto the canvas at (x, y). Supports '\n'; glyphs
// outside the table are skipped but still advance the cursor.
func drawText(c *Canvas, x, y int, s string, col uint8) {
	cx, cy := x, y
	for _, ch := range s {
		if ch == '\n' {
			cx = x
			cy += FontLineH
			continue
		}
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch >= 32 && ch <= 90 {
			bits := fontGlyphs[ch-32]
			for row := 0; row < FontGlyphH; row++ {
				for colN := 0; colN < FontGlyphW; colN++ {
					if bits&(1<<(14-(row*FontGlyphW+colN))) != 0 {
						c.PSet(cx+colN, cy+row, col)
					}
				}
			}
		}
		cx += FontAdvance
	}
}

func textWidth(s string) int { return len(s) * FontAdvance }
