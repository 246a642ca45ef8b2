package bloodos

// LineBufferSize is the keystroke buffer capacity. One slot stays reserved
// for a terminator, so the longest accepted line is LineBufferSize-1 bytes.
const LineBufferSize = 128

// LineEditor accumulates keystrokes into the pending command line and owns
// the history ring. It never touches the screen: the console echoes a
// keystroke only when the corresponding edit here reports success, which is
// what keeps the visible line and the buffered line identical.
type LineEditor struct {
	buf     [LineBufferSize]byte
	n       int
	history History
}

// Insert appends a character to the pending line. It reports false when the
// buffer is full and the character was dropped.
func (e *LineEditor) Insert(c byte) bool {
	if e.n >= LineBufferSize-1 {
		return false
	}
	e.buf[e.n] = c
	e.n++
	return true
}

// Backspace removes the last pending character, reporting whether one was
// there to remove.
func (e *LineEditor) Backspace() bool {
	if e.n == 0 {
		return false
	}
	e.n--
	return true
}

// Submit finalizes the pending line: the line is recorded in history, the
// buffer resets, and the line is returned. An empty pending line returns
// ("", false) and is not recorded.
func (e *LineEditor) Submit() (string, bool) {
	if e.n == 0 {
		return "", false
	}
	line := string(e.buf[:e.n])
	e.history.Push(line)
	e.n = 0
	return line, true
}

// Reset drops the pending line without recording it.
func (e *LineEditor) Reset() {
	e.n = 0
}

// Len returns the pending line length in bytes.
func (e *LineEditor) Len() int {
	return e.n
}

// Line returns a copy of the pending line.
func (e *LineEditor) Line() string {
	return string(e.buf[:e.n])
}

// History exposes the ring of submitted lines.
func (e *LineEditor) History() *History {
	return &e.history
}
