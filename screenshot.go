package bloodos

import (
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontFinder locates font files by name (useful for avoiding font library dependencies).
type FontFinder interface {
	// Find returns the filesystem path to a font file matching the given name.
	Find(name string) (string, error)
}

// ScreenshotConfig controls how the console screen is rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil and FontName is empty, uses basicfont.Face7x13.
	Font font.Face

	// FontFinder is used to find fonts by name. Optional.
	FontFinder FontFinder

	// FontName is the font name to find using FontFinder.
	FontName string

	// FontSize is the font size when using FontFinder. Default 14.
	FontSize float64

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Palette overrides the 16-color VGA palette.
	Palette *[16]color.RGBA

	// CursorColor is the cursor block color. If nil, the cursor inverts the
	// cell under it.
	CursorColor *color.RGBA

	// ShowCursor controls whether to render the cursor. Default true.
	ShowCursor *bool
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return face, nil
}

// Screenshot renders the screen to an RGBA image using default settings
// (basicfont, VGA palette).
func (c *Console) Screenshot() *image.RGBA {
	return c.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the screen to an RGBA image with custom font,
// palette, and cursor settings.
func (c *Console) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()

	face := cfg.Font
	if face == nil && cfg.FontFinder != nil && cfg.FontName != "" {
		size := cfg.FontSize
		if size == 0 {
			size = 14
		}
		if path, err := cfg.FontFinder.Find(cfg.FontName); err == nil {
			if loadedFace, err := LoadFont(path, size); err == nil {
				face = loadedFace
			}
		}
	}
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth == 0 || cellHeight == 0 {
		metrics := face.Metrics()
		if cellWidth == 0 {
			adv, _ := face.GlyphAdvance('M')
			cellWidth = adv.Ceil()
			if cellWidth == 0 {
				cellWidth = 7 // fallback for basicfont
			}
		}
		if cellHeight == 0 {
			cellHeight = metrics.Height.Ceil()
		}
	}

	palette := cfg.Palette
	if palette == nil {
		palette = &VGAPalette
	}

	showCursor := true
	if cfg.ShowCursor != nil {
		showCursor = *cfg.ShowCursor
	}

	imgWidth := VGAWidth * cellWidth
	imgHeight := VGAHeight * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	buf := c.display.Buffer()
	for row := 0; row < VGAHeight; row++ {
		for col := 0; col < VGAWidth; col++ {
			cell := buf.Cell(col, row)
			fg := palette[cell.Attr.Fg()&0x0F]
			bg := palette[cell.Attr.Bg()&0x0F]

			x := col * cellWidth
			y := row * cellHeight

			// Fill cell background
			for py := 0; py < cellHeight; py++ {
				for px := 0; px < cellWidth; px++ {
					img.Set(x+px, y+py, bg)
				}
			}

			ch := cell.Rune()
			if ch == ' ' {
				continue
			}

			baseline := y + face.Metrics().Ascent.Ceil()
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, baseline),
			}
			d.DrawString(string(ch))
		}
	}

	if showCursor {
		cur := c.display.Cursor()
		cursorX := cur.X * cellWidth
		cursorY := cur.Y * cellHeight

		for py := 0; py < cellHeight; py++ {
			for px := 0; px < cellWidth; px++ {
				cx, cy := cursorX+px, cursorY+py
				if cx >= imgWidth || cy >= imgHeight {
					continue
				}
				if cfg.CursorColor != nil {
					img.Set(cx, cy, *cfg.CursorColor)
					continue
				}
				existing := img.RGBAAt(cx, cy)
				img.Set(cx, cy, color.RGBA{
					R: 255 - existing.R,
					G: 255 - existing.G,
					B: 255 - existing.B,
					A: 255,
				})
			}
		}
	}

	return img
}
