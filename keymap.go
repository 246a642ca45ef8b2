package bloodos

import "github.com/unilibs/uniwidth"

// scancodeByChar inverts scancodeMap: the press code for every character the
// keymap can produce.
var scancodeByChar = func() map[byte]byte {
	m := make(map[byte]byte, len(scancodeMap))
	for code := 0; code < len(scancodeMap); code++ {
		if c := scancodeMap[code]; c != '?' {
			m[c] = byte(code)
		}
	}
	return m
}()

// ScancodeFor returns the press scancode that decodes to r. '\n' and '\r'
// map to Enter and '\b' to Backspace; any other rune qualifies only if it is
// a single-column ASCII character present in the keymap. Notably absent from
// the keymap: space, tab, and every uppercase letter. The second result
// reports whether a code exists.
func ScancodeFor(r rune) (byte, bool) {
	switch r {
	case '\n', '\r':
		return ScancodeEnter, true
	case '\b':
		return ScancodeBackspace, true
	}
	if r > 0x7F || uniwidth.RuneWidth(r) != 1 {
		return 0, false
	}
	code, ok := scancodeByChar[byte(r)]
	return code, ok
}

// Typeable reports whether the keymap can produce r.
func Typeable(r rune) bool {
	_, ok := ScancodeFor(r)
	return ok
}
