// Package bloodos emulates the BloodOS text console: an 80x25 VGA screen, a
// PS/2 scancode keyboard, and the interrupt-driven shell that ties them
// together, all without any display or real hardware.
//
// This package reproduces the console's observable behavior, making it ideal
// for:
//   - Driving the shell from tests and scripts
//   - Rendering the screen in a terminal, a browser, or an image
//   - Inspecting exactly what a keystroke sequence leaves on screen
//   - Studying the console's quirks without booting a VM
//
// # Quick Start
//
// Create a console, boot it, and type:
//
//	con := bloodos.New()
//	con.Boot()
//	con.Machine().Type("help\n")
//	fmt.Println(con)
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Console]: the interrupt-driven driver wiring everything together
//   - [Display]: the 80x25 screen grid, cursor, and color attribute
//   - [LineEditor]: the bounded keystroke buffer and [History] ring
//   - [Shell]: the command dispatcher with its fixed builtin set
//   - [Machine]: the emulated platform (keyboard controller, interrupt
//     gate, cursor registers, power lines), implementing [PortBus]
//
// # Input Model
//
// Input is interrupt-shaped. The machine latches one scancode at a time and
// invokes [Console.ServiceKeyboard] for it; the handler decodes the code,
// updates the editor and the screen, and acknowledges the interrupt. The next
// scancode is not delivered until the acknowledgement arrives, so the reboot
// and shutdown commands, which never acknowledge, freeze input permanently:
//
//	con := bloodos.New()
//	con.Boot()
//	con.Machine().Type("shutdown\n")
//	con.Machine().Power() // PowerOff
//	con.Machine().Type("help\n") // silently dropped
//
// Raw scancodes can be injected directly with [Machine.Press] and
// [Machine.Tap]; [Machine.Type] translates a string through the keymap. The
// keymap is the original firmware's, preserved quirks and all: there is no
// space key, no uppercase, and the letter rows sit one scancode off from the
// standard layout, so not every string is typeable.
//
// # The Screen
//
// Cells carry a character byte and a VGA attribute byte (foreground and
// background [Color]). The screen scrolls by discarding the top row; the
// blanked bottom row takes the attribute active at scroll time:
//
//	cell := con.Cell(0, 24)
//	fmt.Println(cell.Char, cell.Attr.Fg(), cell.Attr.Bg())
//	fmt.Println(con.LineContent(24))
//
// # Custom Platforms
//
// [PortBus] abstracts the platform. The default [Machine] emulates the
// controller handshake; [WithBus] swaps in anything else, from a [NoopBus] to
// a [RecordingBus] capturing port traffic:
//
//	rec := &bloodos.RecordingBus{}
//	con := bloodos.New(bloodos.WithBus(rec))
//	con.Boot()
//	rec.WritesTo(bloodos.PortCursorData) // CRTC cursor programming
//
// A custom bus owns delivery: make a scancode readable at port 0x60, then
// call ServiceKeyboard.
//
// # Snapshots and Screenshots
//
// Capture console state for serialization or rendering:
//
//	snap := con.Snapshot(bloodos.SnapshotDetailStyled)
//	data, _ := json.Marshal(snap)
//
//	img := con.Screenshot()
//	png.Encode(f, img)
//
// Snapshot detail levels: text only, attribute runs per line (good for HTML
// rendering), or full cell-by-cell data.
//
// # Dirty Tracking
//
// Track which rows changed for efficient repainting:
//
//	if con.HasDirty() {
//	    for _, y := range con.DirtyRows() {
//	        // repaint row y
//	    }
//	    con.ClearDirty()
//	}
//
// # Thread Safety
//
// All Console and Machine methods are safe for concurrent use. ServiceKeyboard
// runs under the console lock, so each keyboard event is handled atomically
// with respect to queries.
package bloodos
