package bloodos

// Cursor is an insertion position on the screen grid, 0-based, X column and
// Y row. The display keeps it inside [0,VGAWidth) x [0,VGAHeight) at all
// times; the hardware cursor follows it only when the driver syncs.
type Cursor struct {
	X int
	Y int
}

// Offset returns the position as a linear cell index (y*width + x), the form
// the CRTC cursor registers hold.
func (c Cursor) Offset() int {
	return c.Y*VGAWidth + c.X
}
