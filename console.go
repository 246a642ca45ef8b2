package bloodos

import (
	"strings"
	"sync"
)

const bootBanner = `
              ____   _       ___    ___   ____      ___   ____
             | __ ) | |     / _ \  / _ \ |  _ \    / _ \ / ___|
             |  _ \ | |    | | | || | | || | | |  | | | |\___ \
             | |_) || |___ | |_| || |_| || |_| |  | |_| | ___) |
             |____/ |_____| \___/  \___/ |____/    \___/ |____/
`

// Console is the interrupt-driven text console: a display, a line editor, and
// a command shell wired to a platform bus. It is the keyboard interrupt
// handler for the machine it runs on.
//
// All methods are safe for concurrent use. ServiceKeyboard runs to completion
// under the console lock, which is the in-process version of the handler
// never being preempted.
type Console struct {
	mu sync.RWMutex

	display *Display
	editor  *LineEditor
	shell   *Shell
	bus     PortBus
	machine *Machine // set only when the console owns the default platform
	halted  bool
}

// Option configures a Console during construction.
type Option func(*Console)

// WithBus attaches a custom platform bus instead of the default Machine. The
// caller then owns event delivery: make a scancode readable at port 0x60 and
// call ServiceKeyboard for it.
func WithBus(bus PortBus) Option {
	return func(c *Console) {
		c.bus = bus
	}
}

// New creates a console. Unless WithBus overrides it, a fresh Machine becomes
// the platform and its keyboard interrupt is wired to ServiceKeyboard, so
// Machine.Press is all a frontend needs to drive input. The screen stays
// blank until Boot runs.
func New(opts ...Option) *Console {
	c := &Console{}
	for _, opt := range opts {
		opt(c)
	}
	if c.bus == nil {
		m := NewMachine()
		c.bus = m
		c.machine = m
	}
	c.display = NewDisplay(c.bus)
	c.editor = &LineEditor{}
	c.shell = NewShell(c.display, c.bus)
	if c.machine != nil {
		c.machine.SetKeyboardHandler(c.ServiceKeyboard)
	}
	return c
}

// Boot runs the kernel entry sequence: clear the screen with the default
// attribute, print the banner in red, restore light grey, print the ready
// text, render the first prompt, and publish the cursor.
func (c *Console) Boot() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.display.Clear()
	c.display.SetColor(ColorRed, ColorBlack)
	c.display.WriteString(bootBanner)
	c.display.SetColor(ColorLightGrey, ColorBlack)
	c.display.WriteString("\n                    Terminal Ready\n")
	c.display.WriteString("            Type 'help' for available commands\n\n")
	c.prompt()
	c.display.SyncCursor()
}

// ServiceKeyboard handles one keyboard interrupt. It reads the pending
// scancode from the controller, applies it to the line editor and the screen,
// dispatches a completed line, publishes the cursor, and acknowledges the
// interrupt.
//
// A halted console returns immediately without acknowledging, and a dispatch
// that halts (reboot, shutdown) suppresses both the cursor sync and the
// acknowledgement for its own event. Withholding the EOI is what freezes
// input after a power command: the controller never opens the gate again.
func (c *Console) ServiceKeyboard() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.halted {
		return
	}

	code := c.bus.InB(PortKeyboardData)
	switch ev := DecodeScancode(code); ev.Key {
	case KeyEnter:
		c.display.WriteByte('\n')
		if line, ok := c.editor.Submit(); ok {
			c.dispatch(line)
		} else {
			c.prompt()
		}
	case KeyBackspace:
		if c.editor.Backspace() {
			c.display.WriteByte('\b')
		}
	case KeyChar:
		if c.editor.Insert(ev.Char) {
			c.display.WriteByte(ev.Char)
		}
	case KeyNone:
		// Releases and unmapped presses still get acknowledged below.
	}

	if c.halted {
		return
	}

	c.display.SyncCursor()
	c.ackKeyboard()
}

// dispatch runs the shell on a completed line and applies its prompt outcome.
func (c *Console) dispatch(line string) {
	switch c.shell.Execute(line) {
	case outcomeHalt:
		c.halted = true
	case outcomeReprompt:
		c.prompt()
	case outcomePrompted:
		c.editor.Reset()
	}
}

// prompt renders the shell prompt and opens a fresh input cycle.
func (c *Console) prompt() {
	c.shell.Prompt()
	c.editor.Reset()
}

// ackKeyboard signals end-of-interrupt for the keyboard line.
func (c *Console) ackKeyboard() {
	c.irqAck(1)
}

// irqAck writes the end-of-interrupt command: always to the master PIC, and
// to the slave first for lines 8 and up.
func (c *Console) irqAck(irq int) {
	if irq >= 8 {
		c.bus.OutB(PortPICSlaveCmd, picEOI)
	}
	c.bus.OutB(PortPICMasterCmd, picEOI)
}

// --- Query Methods ---

// Cell returns the screen cell at (x, y).
func (c *Console) Cell(x, y int) Cell {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.display.Buffer().Cell(x, y)
}

// CursorPos returns the insertion cursor. The hardware cursor can lag it; see
// Machine.CursorPos for the programmed one.
func (c *Console) CursorPos() (x, y int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cur := c.display.Cursor()
	return cur.X, cur.Y
}

// Attr returns the active color attribute.
func (c *Console) Attr() Attr {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.display.Attr()
}

// LineContent returns the text of screen row y, trailing blanks trimmed.
func (c *Console) LineContent(y int) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.display.Buffer().LineContent(y)
}

// String renders the screen as text: one line per row, trailing blank rows
// dropped.
func (c *Console) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines := make([]string, VGAHeight)
	for y := 0; y < VGAHeight; y++ {
		lines[y] = c.display.Buffer().LineContent(y)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// Pending returns the line being edited, as buffered so far.
func (c *Console) Pending() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.editor.Line()
}

// History returns the submitted command lines, oldest first.
func (c *Console) History() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.editor.History().Lines()
}

// Halted reports whether a reboot or shutdown command stopped the console.
func (c *Console) Halted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.halted
}

// Machine returns the default platform, or nil when WithBus replaced it.
func (c *Console) Machine() *Machine {
	return c.machine
}

// Bus returns the platform bus the console writes to.
func (c *Console) Bus() PortBus {
	return c.bus
}

// HasDirty reports whether any row changed since the last ClearDirty.
func (c *Console) HasDirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.display.Buffer().HasDirty()
}

// DirtyRows returns the rows changed since the last ClearDirty.
func (c *Console) DirtyRows() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.display.Buffer().DirtyRows()
}

// ClearDirty resets row dirty tracking.
func (c *Console) ClearDirty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.display.Buffer().ClearDirty()
}
