package bloodos

import (
	"testing"
)

func TestNewCell(t *testing.T) {
	cell := NewCell(MakeAttr(ColorGreen, ColorBlue))

	if cell.Char != ' ' {
		t.Errorf("expected space, got %q", cell.Char)
	}
	if cell.Attr.Fg() != ColorGreen {
		t.Errorf("expected green foreground, got %v", cell.Attr.Fg())
	}
	if cell.Attr.Bg() != ColorBlue {
		t.Errorf("expected blue background, got %v", cell.Attr.Bg())
	}
	if !cell.IsBlank() {
		t.Error("expected a new cell to be blank")
	}
}

func TestCellWord(t *testing.T) {
	cell := Cell{Char: 'A', Attr: MakeAttr(ColorLightGrey, ColorBlack)}

	if w := cell.Word(); w != 0x0741 {
		t.Errorf("expected word 0x0741, got %#04x", w)
	}

	back := CellFromWord(0x0741)
	if back != cell {
		t.Errorf("expected %+v, got %+v", cell, back)
	}
}

func TestCellRune(t *testing.T) {
	if r := (Cell{Char: 'k'}).Rune(); r != 'k' {
		t.Errorf("expected 'k', got %q", r)
	}
	// Control and high bytes read as spaces.
	if r := (Cell{Char: 0x07}).Rune(); r != ' ' {
		t.Errorf("expected space for control byte, got %q", r)
	}
	if r := (Cell{Char: 0xFE}).Rune(); r != ' ' {
		t.Errorf("expected space for high byte, got %q", r)
	}
}

func TestMakeAttr(t *testing.T) {
	attr := MakeAttr(ColorYellow, ColorRed)

	if attr != 0x4E {
		t.Errorf("expected 0x4E, got %#02x", attr)
	}
	if attr.Fg() != ColorYellow {
		t.Errorf("expected yellow, got %v", attr.Fg())
	}
	if attr.Bg() != ColorRed {
		t.Errorf("expected red, got %v", attr.Bg())
	}

	// Out-of-range values are masked to 4 bits.
	if got := MakeAttr(Color(0x1F), ColorBlack); got.Fg() != ColorWhite {
		t.Errorf("expected masked foreground white, got %v", got.Fg())
	}
}

func TestAttrWith(t *testing.T) {
	attr := MakeAttr(ColorGreen, ColorBlack)

	if got := attr.WithFg(ColorRed); got.Fg() != ColorRed || got.Bg() != ColorBlack {
		t.Errorf("WithFg: got fg=%v bg=%v", got.Fg(), got.Bg())
	}
	if got := attr.WithBg(ColorBlue); got.Fg() != ColorGreen || got.Bg() != ColorBlue {
		t.Errorf("WithBg: got fg=%v bg=%v", got.Fg(), got.Bg())
	}
}

func TestColorString(t *testing.T) {
	if got := ColorLightGrey.String(); got != "light-grey" {
		t.Errorf("expected %q, got %q", "light-grey", got)
	}
	if got := Color(200).String(); got != "invalid" {
		t.Errorf("expected %q, got %q", "invalid", got)
	}
}
