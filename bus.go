package bloodos

// I/O port numbers the console driver touches. These are the standard PC
// assignments: the legacy interrupt controller pair, the 8042 keyboard
// controller, the CRTC register window, and the two power-off ports QEMU
// guests use.
const (
	PortPICMasterCmd uint16 = 0x20  // master PIC command register (EOI target)
	PortPICSlaveCmd  uint16 = 0xA0  // slave PIC command register
	PortKeyboardData uint16 = 0x60  // 8042 output buffer, read for scancodes
	PortKeyboardCmd  uint16 = 0x64  // 8042 command register
	PortCursorIndex  uint16 = 0x3D4 // CRTC index register
	PortCursorData   uint16 = 0x3D5 // CRTC data register
	PortDebugExit    uint16 = 0xF4  // isa-debug-exit device, any write powers off
	PortACPIControl  uint16 = 0x604 // PM1a control block, 0x2000 powers off
)

// Register values written through the ports above.
const (
	picEOI         = 0x20   // end-of-interrupt command
	crtcCursorHigh = 0x0E   // CRTC cursor location, high byte
	crtcCursorLow  = 0x0F   // CRTC cursor location, low byte
	kbcPulseReset  = 0xFE   // 8042 command: pulse the CPU reset line
	acpiPowerOff   = 0x2000 // PM1a SLP_EN | SLP_TYP for S5
)

// PortBus carries the console's I/O port traffic to the platform: cursor
// register writes, interrupt acknowledgements, scancode reads, and the
// reboot/power-off sequences. Machine is the full-fidelity implementation;
// NoopBus suffices when only the screen matters.
type PortBus interface {
	// OutB writes one byte to a port.
	OutB(port uint16, v byte)
	// OutW writes a 16-bit word to a port.
	OutW(port uint16, v uint16)
	// InB reads one byte from a port.
	InB(port uint16) byte
}

// NoopBus discards all writes and reads zero from every port.
type NoopBus struct{}

func (NoopBus) OutB(port uint16, v byte)   {}
func (NoopBus) OutW(port uint16, v uint16) {}
func (NoopBus) InB(port uint16) byte       { return 0 }

// PortWrite records one write observed on a RecordingBus.
type PortWrite struct {
	Port  uint16
	Value uint16
	Wide  bool // true for 16-bit writes
}

// RecordingBus keeps every write, in order, for later inspection. Reads
// return zero. Useful in tests and for tracing a frontend's port traffic.
type RecordingBus struct {
	Writes []PortWrite
}

func (b *RecordingBus) OutB(port uint16, v byte) {
	b.Writes = append(b.Writes, PortWrite{Port: port, Value: uint16(v)})
}

func (b *RecordingBus) OutW(port uint16, v uint16) {
	b.Writes = append(b.Writes, PortWrite{Port: port, Value: v, Wide: true})
}

func (b *RecordingBus) InB(port uint16) byte { return 0 }

// WritesTo returns the recorded writes addressed to one port, in order.
func (b *RecordingBus) WritesTo(port uint16) []PortWrite {
	var out []PortWrite
	for _, w := range b.Writes {
		if w.Port == port {
			out = append(out, w)
		}
	}
	return out
}

// Reset discards everything recorded so far.
func (b *RecordingBus) Reset() {
	b.Writes = nil
}

// TeeBus fans every write out to all member buses in order. Reads are served
// by the first member. An empty TeeBus behaves like NoopBus.
type TeeBus []PortBus

func (t TeeBus) OutB(port uint16, v byte) {
	for _, b := range t {
		b.OutB(port, v)
	}
}

func (t TeeBus) OutW(port uint16, v uint16) {
	for _, b := range t {
		b.OutW(port, v)
	}
}

func (t TeeBus) InB(port uint16) byte {
	if len(t) == 0 {
		return 0
	}
	return t[0].InB(port)
}
