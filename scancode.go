package bloodos

// Key classifies a decoded keyboard event.
type Key int

const (
	// KeyNone is a key release, an unmapped press, or a scancode past the
	// end of the translation table. The driver acknowledges and ignores it.
	KeyNone Key = iota
	// KeyChar is a printable character press; KeyEvent.Char holds the byte.
	KeyChar
	// KeyEnter submits the pending line.
	KeyEnter
	// KeyBackspace removes the last pending character.
	KeyBackspace
)

// Scancode set 1 values the decoder treats specially. A release (break code)
// is the press code with the top bit set.
const (
	ScancodeBackspace byte = 0x0E
	ScancodeEnter     byte = 0x1C

	scancodeBreakBit byte = 0x80
)

// scancodeMap translates set-1 make codes to characters; '?' marks codes that
// do not produce input. The table is the original firmware's and is kept
// byte-for-byte, quirks included: the letter rows sit one code below their
// standard set-1 positions and the space bar (0x39) is past the end of the
// table, so neither decodes to what a standard keymap would give. Correcting
// it would change what the console accepts.
const scancodeMap = "??1234567890-=??qwertyuiop[]?asdfghjkl;'`?\\zxcvbnm,./"

// KeyEvent is one decoded keyboard event.
type KeyEvent struct {
	Key  Key
	Char byte // set only for KeyChar
}

// DecodeScancode translates one raw scancode into a key event. Break codes
// decode to KeyNone; Enter and Backspace take precedence over the character
// table; everything else is looked up in the keymap.
func DecodeScancode(code byte) KeyEvent {
	if code&scancodeBreakBit != 0 {
		return KeyEvent{Key: KeyNone}
	}
	switch code {
	case ScancodeEnter:
		return KeyEvent{Key: KeyEnter}
	case ScancodeBackspace:
		return KeyEvent{Key: KeyBackspace}
	}
	if int(code) >= len(scancodeMap) {
		return KeyEvent{Key: KeyNone}
	}
	if c := scancodeMap[code]; c != '?' {
		return KeyEvent{Key: KeyChar, Char: c}
	}
	return KeyEvent{Key: KeyNone}
}
