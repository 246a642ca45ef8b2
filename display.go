package bloodos

// Tab stops sit every 4 columns.
const tabWidth = 4

// Display owns the screen grid, the insertion cursor, and the active color
// attribute. It renders bytes the way the VGA text console does: four control
// bytes get special movement, everything else is stored at the cursor and
// advances it. Wrapping past the right edge and moving past the bottom row
// both resolve before the next byte, so the cursor is always on the grid.
//
// Display methods are not synchronized; Console serializes access for the
// interrupt path.
type Display struct {
	buf    *Buffer
	cursor Cursor
	attr   Attr
	bus    PortBus
}

// NewDisplay creates a cleared display writing cursor updates to bus.
// A nil bus falls back to NoopBus.
func NewDisplay(bus PortBus) *Display {
	if bus == nil {
		bus = NoopBus{}
	}
	d := &Display{attr: DefaultAttr, bus: bus}
	d.buf = NewBuffer(d.attr)
	return d
}

// WriteByte renders one byte at the cursor.
//
//	'\n'  moves to column 0 of the next row
//	'\b'  steps back one cell, wrapping to the end of the previous row at
//	      column 0 (no move at the top-left corner), and blanks the cell
//	'\r'  moves to column 0
//	'\t'  advances to the next 4-column tab stop
//
// Any other byte is stored with the active attribute and advances the cursor.
// A cursor past the right edge wraps to the next row; a cursor past the last
// row scrolls the grid up one line.
func (d *Display) WriteByte(c byte) {
	switch c {
	case '\n':
		d.cursor.X = 0
		d.cursor.Y++
	case '\b':
		if d.cursor.X > 0 {
			d.cursor.X--
		} else if d.cursor.Y > 0 {
			d.cursor.Y--
			d.cursor.X = VGAWidth - 1
		}
		d.buf.SetCell(d.cursor.X, d.cursor.Y, NewCell(d.attr))
	case '\r':
		d.cursor.X = 0
	case '\t':
		d.cursor.X = (d.cursor.X + tabWidth) &^ (tabWidth - 1)
	default:
		d.buf.SetCell(d.cursor.X, d.cursor.Y, Cell{Char: c, Attr: d.attr})
		d.cursor.X++
	}

	if d.cursor.X >= VGAWidth {
		d.cursor.X = 0
		d.cursor.Y++
	}
	if d.cursor.Y >= VGAHeight {
		d.buf.ScrollUp(d.attr)
		d.cursor.Y = VGAHeight - 1
	}
}

// WriteString renders a string byte by byte.
func (d *Display) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		d.WriteByte(s[i])
	}
}

// Clear blanks the whole grid with the active attribute and homes the cursor.
func (d *Display) Clear() {
	d.buf.Fill(d.attr)
	d.cursor = Cursor{}
}

// SetColor replaces the active attribute.
func (d *Display) SetColor(fg, bg Color) {
	d.attr = MakeAttr(fg, bg)
}

// Attr returns the active attribute.
func (d *Display) Attr() Attr {
	return d.attr
}

// Cursor returns the insertion position.
func (d *Display) Cursor() Cursor {
	return d.cursor
}

// Buffer returns the underlying screen grid.
func (d *Display) Buffer() *Buffer {
	return d.buf
}

// SyncCursor publishes the insertion position to the CRTC cursor registers:
// low byte then high byte, each through an index write followed by a data
// write. Until this runs, the hardware cursor lags the insertion position.
func (d *Display) SyncCursor() {
	pos := uint16(d.cursor.Offset())
	d.bus.OutB(PortCursorIndex, crtcCursorLow)
	d.bus.OutB(PortCursorData, byte(pos))
	d.bus.OutB(PortCursorIndex, crtcCursorHigh)
	d.bus.OutB(PortCursorData, byte(pos>>8))
}
