package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Colour indices into Palette. The canvas stores these, not RGB values;
// only the frontends ever expand them.
const (
	ColBlack uint8 = iota
	ColNavy
	ColPurple
	ColGreen
	ColBrown
	ColDarkBlue
	ColLightBlue
	ColWhite
	ColRed
	ColOrange
	ColYellow
	ColLime
	ColCyan
	ColGray
	ColPink
	ColPeach

	PaletteSize
)

var Palette = [PaletteSize]RGB{
	ColBlack:     {R: 0x00, G: 0x00, B: 0x00},
	ColNavy:      {R: 0x2B, G: 0x33, B: 0x5F},
	ColPurple:    {R: 0x7E, G: 0x20, B: 0x72},
	ColGreen:     {R: 0x19, G: 0x95, B: 0x9C},
	ColBrown:     {R: 0x8B, G: 0x48, B: 0x52},
	ColDarkBlue:  {R: 0x39, G: 0x5C, B: 0x98},
	ColLightBlue: {R: 0xA9, G: 0xC1, B: 0xFF},
	ColWhite:     {R: 0xEE, G: 0xEE, B: 0xEE},
	ColRed:       {R: 0xD4, G: 0x18, B: 0x6C},
	ColOrange:    {R: 0xD3, G: 0x84, B: 0x41},
	ColYellow:    {R: 0xE9, G: 0xC3, B: 0x5B},
	ColLime:      {R: 0x70, G: 0xC6, B: 0xA9},
	ColCyan:      {R: 0x76, G: 0x96, B: 0xDE},
	ColGray:      {R: 0x7F, G: 0x7F, B: 0x7F},
	ColPink:      {R: 0xFF, G: 0x97, B: 0x98},
	ColPeach:     {R: 0xED, G: 0xC7, B: 0xB0},
}
