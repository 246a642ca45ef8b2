package bloodos

// VGA text mode geometry. The grid never resizes: 80x25 is the mode the boot
// stage programs before handing control to the console.
const (
	VGAWidth  = 80
	VGAHeight = 25
)

// Buffer is the fixed 80x25 grid of VGA cells, the in-process stand-in for
// the memory-mapped text buffer. Rows carry dirty flags so frontends can
// repaint only what changed since the last ClearDirty.
//
// Every accessor tolerates out-of-range coordinates: reads return the zero
// Cell, writes are dropped. Nothing here can fail.
type Buffer struct {
	cells [VGAHeight][VGAWidth]Cell
	dirty [VGAHeight]bool
}

// NewBuffer creates a buffer with every cell blanked to a space with the
// given attribute.
func NewBuffer(attr Attr) *Buffer {
	b := &Buffer{}
	b.Fill(attr)
	return b
}

// Cell returns the cell at (x, y), or the zero Cell out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	if x < 0 || x >= VGAWidth || y < 0 || y >= VGAHeight {
		return Cell{}
	}
	return b.cells[y][x]
}

// SetCell stores a cell at (x, y) and marks the row dirty.
// Does nothing if the coordinates are out of bounds.
func (b *Buffer) SetCell(x, y int, cell Cell) {
	if x < 0 || x >= VGAWidth || y < 0 || y >= VGAHeight {
		return
	}
	b.cells[y][x] = cell
	b.dirty[y] = true
}

// Word returns the raw VGA memory word at (x, y), or zero out of bounds.
func (b *Buffer) Word(x, y int) uint16 {
	return b.Cell(x, y).Word()
}

// SetWord stores a raw VGA memory word at (x, y).
func (b *Buffer) SetWord(x, y int, w uint16) {
	b.SetCell(x, y, CellFromWord(w))
}

// Fill blanks the whole grid to spaces with the given attribute and marks
// every row dirty.
func (b *Buffer) Fill(attr Attr) {
	blank := NewCell(attr)
	for y := 0; y < VGAHeight; y++ {
		for x := 0; x < VGAWidth; x++ {
			b.cells[y][x] = blank
		}
		b.dirty[y] = true
	}
}

// ScrollUp discards row 0, shifts every remaining row up by one, and blanks
// the last row with the given attribute. The whole grid is marked dirty.
func (b *Buffer) ScrollUp(attr Attr) {
	copy(b.cells[:], b.cells[1:])
	blank := NewCell(attr)
	for x := 0; x < VGAWidth; x++ {
		b.cells[VGAHeight-1][x] = blank
	}
	for y := range b.dirty {
		b.dirty[y] = true
	}
}

// HasDirty returns true if any row changed since the last ClearDirty.
func (b *Buffer) HasDirty() bool {
	for _, d := range b.dirty {
		if d {
			return true
		}
	}
	return false
}

// DirtyRows returns the indices of rows changed since the last ClearDirty.
func (b *Buffer) DirtyRows() []int {
	var rows []int
	for y, d := range b.dirty {
		if d {
			rows = append(rows, y)
		}
	}
	return rows
}

// MarkAllDirty flags every row for repaint.
func (b *Buffer) MarkAllDirty() {
	for y := range b.dirty {
		b.dirty[y] = true
	}
}

// ClearDirty resets the dirty flags of all rows.
func (b *Buffer) ClearDirty() {
	for y := range b.dirty {
		b.dirty[y] = false
	}
}

// LineContent returns the text of row y with trailing spaces trimmed.
// Unprintable bytes read as spaces. Returns "" for blank or out-of-range rows.
func (b *Buffer) LineContent(y int) string {
	if y < 0 || y >= VGAHeight {
		return ""
	}

	last := -1
	for x := VGAWidth - 1; x >= 0; x-- {
		if !b.cells[y][x].IsBlank() {
			last = x
			break
		}
	}
	if last < 0 {
		return ""
	}

	runes := make([]rune, 0, last+1)
	for x := 0; x <= last; x++ {
		runes = append(runes, b.cells[y][x].Rune())
	}
	return string(runes)
}
