package bloodos

import "image/color"

// Color is a 4-bit VGA palette index.
type Color uint8

// The 16 VGA text-mode colors. Indices 0-7 are valid for both foreground and
// background; 8-15 are bright foreground variants (using them as background
// would set the blink bit on real hardware).
const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGrey
	ColorDarkGrey
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorLightMagenta
	ColorYellow
	ColorWhite
)

var colorNames = [16]string{
	"black", "blue", "green", "cyan",
	"red", "magenta", "brown", "light-grey",
	"dark-grey", "light-blue", "light-green", "light-cyan",
	"light-red", "light-magenta", "yellow", "white",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "invalid"
}

// RGBA returns the canonical display color for the palette index.
func (c Color) RGBA() color.RGBA {
	return VGAPalette[c&0x0F]
}

// VGAPalette maps the 16 VGA colors to the RGB values the standard text-mode
// DAC programs at boot.
var VGAPalette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF}, // black
	{0x00, 0x00, 0xAA, 0xFF}, // blue
	{0x00, 0xAA, 0x00, 0xFF}, // green
	{0x00, 0xAA, 0xAA, 0xFF}, // cyan
	{0xAA, 0x00, 0x00, 0xFF}, // red
	{0xAA, 0x00, 0xAA, 0xFF}, // magenta
	{0xAA, 0x55, 0x00, 0xFF}, // brown
	{0xAA, 0xAA, 0xAA, 0xFF}, // light grey
	{0x55, 0x55, 0x55, 0xFF}, // dark grey
	{0x55, 0x55, 0xFF, 0xFF}, // light blue
	{0x55, 0xFF, 0x55, 0xFF}, // light green
	{0x55, 0xFF, 0xFF, 0xFF}, // light cyan
	{0xFF, 0x55, 0x55, 0xFF}, // light red
	{0xFF, 0x55, 0xFF, 0xFF}, // light magenta
	{0xFF, 0xFF, 0x55, 0xFF}, // yellow
	{0xFF, 0xFF, 0xFF, 0xFF}, // white
}

// Attr packs a foreground and a background color the way the VGA attribute
// byte does: (bg << 4) | fg.
type Attr uint8

// DefaultAttr is white on black, the attribute the BIOS leaves the screen in.
const DefaultAttr = Attr(0x0F)

// MakeAttr builds an attribute byte. Both colors are masked to 4 bits.
func MakeAttr(fg, bg Color) Attr {
	return Attr(bg&0x0F)<<4 | Attr(fg&0x0F)
}

// Fg returns the foreground color.
func (a Attr) Fg() Color {
	return Color(a & 0x0F)
}

// Bg returns the background color.
func (a Attr) Bg() Color {
	return Color(a >> 4)
}

// WithFg returns the attribute with the foreground replaced.
func (a Attr) WithFg(fg Color) Attr {
	return MakeAttr(fg, a.Bg())
}

// WithBg returns the attribute with the background replaced.
func (a Attr) WithBg(bg Color) Attr {
	return MakeAttr(a.Fg(), bg)
}
