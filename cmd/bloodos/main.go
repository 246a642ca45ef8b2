// Command bloodos runs the emulated console interactively in the current
// terminal. Keys are translated to set-1 scancodes and injected through the
// machine; the 80x25 cell grid is repainted from the console's dirty rows.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	bloodos "github.com/bloodos/go-bloodos"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS repaint cadence

type app struct {
	screen tcell.Screen
	con    *bloodos.Console
	styles [16][16]tcell.Style
}

func newApp() (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	a := &app{screen: screen}
	for fg := 0; fg < 16; fg++ {
		for bg := 0; bg < 16; bg++ {
			a.styles[fg][bg] = tcell.StyleDefault.
				Foreground(paletteColor(bloodos.Color(fg))).
				Background(paletteColor(bloodos.Color(bg)))
		}
	}
	a.boot()
	return a, nil
}

func paletteColor(c bloodos.Color) tcell.Color {
	rgba := bloodos.VGAPalette[c&0x0F]
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

// boot cold-starts a fresh console, as after a reset pulse.
func (a *app) boot() {
	a.con = bloodos.New()
	a.con.Boot()
	a.drawAll()
}

// handleKey injects one key into the machine. Returns false to quit.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	m := a.con.Machine()

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return false
	case tcell.KeyEnter:
		m.Tap(bloodos.ScancodeEnter)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		m.Tap(bloodos.ScancodeBackspace)
	case tcell.KeyRune:
		if code, ok := bloodos.ScancodeFor(ev.Rune()); ok {
			m.Tap(code)
		}
	}
	return true
}

func (a *app) draw(rows []int) {
	for _, y := range rows {
		for x := 0; x < bloodos.VGAWidth; x++ {
			cell := a.con.Cell(x, y)
			style := a.styles[cell.Attr.Fg()][cell.Attr.Bg()]
			a.screen.SetContent(x, y, cell.Rune(), nil, style)
		}
	}
	a.con.ClearDirty()

	// The blinking cursor sits wherever the CRTC was last programmed, which
	// lags the insertion point on a halted console.
	x, y := a.con.Machine().CursorPos()
	a.screen.ShowCursor(x, y)
	a.screen.Show()
}

func (a *app) drawAll() {
	rows := make([]int, 0, bloodos.VGAHeight)
	for y := 0; y < bloodos.VGAHeight; y++ {
		rows = append(rows, y)
	}
	a.draw(rows)
}

func (a *app) run() {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
				a.drawAll()
			}

			switch a.con.Machine().Power() {
			case bloodos.PowerReset:
				a.boot()
			case bloodos.PowerOff:
				a.drawAll()
				time.Sleep(750 * time.Millisecond)
				return
			}

		case <-ticker.C:
			if a.con.HasDirty() {
				a.draw(a.con.DirtyRows())
			}
		}
	}
}

func (a *app) cleanup() {
	a.screen.Fini()
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}
