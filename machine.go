package bloodos

import "sync"

// PowerState reports the platform's power and reset lines.
type PowerState int

const (
	// PowerRunning: the machine is up and delivering interrupts.
	PowerRunning PowerState = iota
	// PowerReset: the 8042 pulsed the CPU reset line. Terminal for this
	// Machine; a frontend models the reboot by constructing a fresh console.
	PowerReset
	// PowerOff: the debug-exit or ACPI power-off sequence fired.
	PowerOff
)

// String returns the power state name.
func (p PowerState) String() string {
	switch p {
	case PowerRunning:
		return "running"
	case PowerReset:
		return "reset"
	case PowerOff:
		return "off"
	}
	return "invalid"
}

// kbcQueueSize bounds the pending-scancode queue, mirroring the small output
// buffer of the 8042. Scancodes injected past a full queue are dropped.
const kbcQueueSize = 16

// Machine emulates the platform the console runs on: the 8042 keyboard
// controller, the PIC's end-of-interrupt gate, the CRTC cursor registers, and
// the reset and power-off lines. It implements PortBus and is safe for
// concurrent use.
//
// Scancode delivery follows the single-interrupt-in-service model. Press
// queues a code; the machine latches one code at a time and invokes the
// keyboard handler for it. The next code is not latched until the handler
// writes the end-of-interrupt to the master PIC, so a handler that never
// acknowledges stalls input for good, exactly as on the real controller. The
// machine never holds its lock while the handler runs.
type Machine struct {
	mu sync.Mutex

	queue [kbcQueueSize]byte
	head  int
	count int

	scancode  byte // latched code, readable at port 0x60
	inService bool // interrupt dispatched, EOI not yet written

	cursorIndex byte
	cursorLow   byte
	cursorHigh  byte

	power   PowerState
	handler func()
}

// NewMachine creates a running machine with no keyboard handler attached.
// Scancodes pressed before a handler is set stay queued (up to the queue
// bound) and are delivered once one is attached.
func NewMachine() *Machine {
	return &Machine{}
}

// SetKeyboardHandler attaches the keyboard interrupt handler and delivers any
// queued scancodes to it.
func (m *Machine) SetKeyboardHandler(h func()) {
	m.mu.Lock()
	m.handler = h
	m.mu.Unlock()
	m.deliver()
}

// Press injects one raw scancode, as the keyboard would on a key press or
// release. The code is dropped when the machine is no longer running or the
// queue is full.
func (m *Machine) Press(code byte) {
	m.mu.Lock()
	if m.power != PowerRunning || m.count == kbcQueueSize {
		m.mu.Unlock()
		return
	}
	m.queue[(m.head+m.count)%kbcQueueSize] = code
	m.count++
	m.mu.Unlock()
	m.deliver()
}

// Tap injects a key press followed by its release.
func (m *Machine) Tap(code byte) {
	m.Press(code)
	m.Press(code | scancodeBreakBit)
}

// Type presses and releases the keys for each rune of s. '\n' and '\r' tap
// Enter, '\b' taps Backspace, and runes the keymap cannot produce are
// skipped.
func (m *Machine) Type(s string) {
	for _, r := range s {
		if code, ok := ScancodeFor(r); ok {
			m.Tap(code)
		}
	}
}

// deliver latches and dispatches queued scancodes until the queue drains, an
// unacknowledged interrupt blocks the gate, or the machine leaves the running
// state. The lock is released around every handler call.
//
// Delivery is pumped from injection points only. An EOI written outside a
// handler reopens the gate but leaves queued codes where they are until the
// next Press; an EOI written inside a handler lets this loop continue, which
// is the path the console always takes.
func (m *Machine) deliver() {
	for {
		m.mu.Lock()
		if m.inService || m.count == 0 || m.handler == nil || m.power != PowerRunning {
			m.mu.Unlock()
			return
		}
		m.scancode = m.queue[m.head]
		m.head = (m.head + 1) % kbcQueueSize
		m.count--
		m.inService = true
		h := m.handler
		m.mu.Unlock()

		h()
	}
}

// Power returns the power state.
func (m *Machine) Power() PowerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.power
}

// QueueLen returns the number of scancodes waiting behind the latch.
func (m *Machine) QueueLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

// CursorOffset returns the linear cursor position last programmed into the
// CRTC registers.
func (m *Machine) CursorOffset() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int(m.cursorHigh)<<8 | int(m.cursorLow)
}

// CursorPos returns the programmed hardware cursor as grid coordinates.
func (m *Machine) CursorPos() (x, y int) {
	off := m.CursorOffset()
	return off % VGAWidth, off / VGAWidth
}

// --- PortBus ---

// OutB handles a byte write. EOI on the master PIC opens the delivery gate;
// 0xFE on the 8042 command port pulses reset; any write to the debug-exit
// port powers off; CRTC index/data pairs program the cursor registers. All
// other writes are absorbed.
func (m *Machine) OutB(port uint16, v byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch port {
	case PortPICMasterCmd:
		if v == picEOI {
			m.inService = false
		}
	case PortPICSlaveCmd:
		// Slave EOI has no effect on the keyboard line.
	case PortKeyboardCmd:
		if v == kbcPulseReset {
			m.power = PowerReset
		}
	case PortDebugExit:
		m.power = PowerOff
	case PortCursorIndex:
		m.cursorIndex = v
	case PortCursorData:
		switch m.cursorIndex {
		case crtcCursorLow:
			m.cursorLow = v
		case crtcCursorHigh:
			m.cursorHigh = v
		}
	}
}

// OutW handles a word write. 0x2000 to the ACPI control port powers off;
// everything else is absorbed.
func (m *Machine) OutW(port uint16, v uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if port == PortACPIControl && v == acpiPowerOff {
		m.power = PowerOff
	}
}

// InB handles a byte read. Port 0x60 returns the latched scancode; the 8042
// status port reports whether a latched code is pending; other ports read
// zero.
func (m *Machine) InB(port uint16) byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch port {
	case PortKeyboardData:
		return m.scancode
	case PortKeyboardCmd:
		if m.inService {
			return 0x01 // output buffer full
		}
		return 0x00
	}
	return 0
}
