package bloodos

import (
	"image/color"
	"testing"
)

func TestScreenshot_Bounds(t *testing.T) {
	con := New()
	con.Boot()

	img := con.Screenshot()

	// basicfont.Face7x13: 7x13 pixel cells.
	bounds := img.Bounds()
	if bounds.Dx() != VGAWidth*7 {
		t.Errorf("width = %d, want %d", bounds.Dx(), VGAWidth*7)
	}
	if bounds.Dy() != VGAHeight*13 {
		t.Errorf("height = %d, want %d", bounds.Dy(), VGAHeight*13)
	}
}

func TestScreenshot_CellSizeOverride(t *testing.T) {
	con := New()
	con.Boot()

	img := con.ScreenshotWithConfig(&ScreenshotConfig{CellWidth: 8, CellHeight: 16})

	bounds := img.Bounds()
	if bounds.Dx() != VGAWidth*8 || bounds.Dy() != VGAHeight*16 {
		t.Errorf("bounds = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), VGAWidth*8, VGAHeight*16)
	}
}

func TestScreenshot_BannerPixels(t *testing.T) {
	con := New()
	con.Boot()

	img := con.Screenshot()

	// The banner draws red glyphs on row 1.
	red := VGAPalette[ColorRed]
	found := false
	for y := 13; y < 26 && !found; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y) == red {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected red banner pixels in the second cell row")
	}
}

func TestScreenshot_CursorInverts(t *testing.T) {
	con := New()
	con.Boot()

	img := con.Screenshot()

	// The cursor sits on a blank black cell at (15, 10) and inverts it.
	x, y := 15*7, 10*13
	if got := img.RGBAAt(x, y); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("cursor pixel = %v, want inverted white", got)
	}
}

func TestScreenshot_CursorHidden(t *testing.T) {
	con := New()
	con.Boot()

	hide := false
	img := con.ScreenshotWithConfig(&ScreenshotConfig{ShowCursor: &hide})

	x, y := 15*7, 10*13
	if got := img.RGBAAt(x, y); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("hidden cursor pixel = %v, want background black", got)
	}
}

func TestScreenshot_CursorColor(t *testing.T) {
	con := New()
	con.Boot()

	green := color.RGBA{0, 255, 0, 255}
	img := con.ScreenshotWithConfig(&ScreenshotConfig{CursorColor: &green})

	x, y := 15*7, 10*13
	if got := img.RGBAAt(x, y); got != green {
		t.Errorf("cursor pixel = %v, want %v", got, green)
	}
}

func TestScreenshot_PaletteOverride(t *testing.T) {
	con := New()
	con.Boot()

	palette := VGAPalette
	palette[ColorBlack] = color.RGBA{10, 20, 30, 255}

	img := con.ScreenshotWithConfig(&ScreenshotConfig{Palette: &palette})

	// The bottom-right cell is a blank with a black background, far from the
	// cursor block.
	x, y := img.Bounds().Dx()-1, img.Bounds().Dy()-1
	if got := img.RGBAAt(x, y); got != palette[ColorBlack] {
		t.Errorf("background pixel = %v, want %v", got, palette[ColorBlack])
	}
}
