package bloodos

// Cell is one character position of the VGA text buffer: a byte of character
// data and a byte of color attribute. In the memory-mapped buffer at 0xB8000 a
// cell is a single 16-bit word, low byte character, high byte attribute.
type Cell struct {
	Char byte
	Attr Attr
}

// NewCell creates a blank cell: a space with the given attribute.
func NewCell(attr Attr) Cell {
	return Cell{Char: ' ', Attr: attr}
}

// CellFromWord decodes a raw VGA memory word into a cell.
func CellFromWord(w uint16) Cell {
	return Cell{Char: byte(w), Attr: Attr(w >> 8)}
}

// Word encodes the cell as a VGA memory word: (attr << 8) | char.
func (c Cell) Word() uint16 {
	return uint16(c.Attr)<<8 | uint16(c.Char)
}

// IsBlank returns true if the cell holds a space, regardless of attribute.
func (c Cell) IsBlank() bool {
	return c.Char == ' '
}

// Rune returns the cell character for text export. Bytes outside the printable
// ASCII range read as spaces; the grid itself stores the raw byte unchanged.
func (c Cell) Rune() rune {
	if c.Char < 0x20 || c.Char > 0x7E {
		return ' '
	}
	return rune(c.Char)
}
