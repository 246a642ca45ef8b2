package bloodos

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with attribute runs per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailFull returns full cell-by-cell data.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot is a point-in-time capture of the console: screen contents, both
// kinds of state a frontend cares about (cursor and colors), and the shell's
// input state.
type Snapshot struct {
	Size    SnapshotSize   `json:"size"`
	Cursor  SnapshotCursor `json:"cursor"`
	Attr    SnapshotAttr   `json:"attr"`
	Halted  bool           `json:"halted,omitempty"`
	Power   string         `json:"power,omitempty"`
	Pending string         `json:"pending,omitempty"`
	History []string       `json:"history,omitempty"`
	Lines   []SnapshotLine `json:"lines"`
}

// SnapshotSize holds the screen dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds the insertion cursor position.
type SnapshotCursor struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SnapshotAttr holds the active color pair by palette name.
type SnapshotAttr struct {
	Fg string `json:"fg"`
	Bg string `json:"bg"`
}

// SnapshotLine is one screen row.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
	Cells    []SnapshotCell    `json:"cells,omitempty"`
}

// SnapshotSegment is a run of consecutive cells sharing one attribute.
// Unlike Text, segments cover the full row width, blanks included.
type SnapshotSegment struct {
	Text string `json:"text"`
	Fg   string `json:"fg"`
	Bg   string `json:"bg"`
}

// SnapshotCell is a single cell with its colors.
type SnapshotCell struct {
	Char string `json:"char"`
	Fg   string `json:"fg"`
	Bg   string `json:"bg"`
}

// Snapshot captures the current console state. The detail parameter controls
// how much per-line information is included.
func (c *Console) Snapshot(detail SnapshotDetail) *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	attr := c.display.Attr()
	cur := c.display.Cursor()
	snap := &Snapshot{
		Size:    SnapshotSize{Rows: VGAHeight, Cols: VGAWidth},
		Cursor:  SnapshotCursor{X: cur.X, Y: cur.Y},
		Attr:    SnapshotAttr{Fg: attr.Fg().String(), Bg: attr.Bg().String()},
		Halted:  c.halted,
		Pending: c.editor.Line(),
		History: c.editor.History().Lines(),
		Lines:   make([]SnapshotLine, VGAHeight),
	}
	if c.machine != nil {
		snap.Power = c.machine.Power().String()
	}

	for y := 0; y < VGAHeight; y++ {
		snap.Lines[y] = c.snapshotLine(y, detail)
	}
	return snap
}

// snapshotLine captures one screen row at the requested detail.
func (c *Console) snapshotLine(y int, detail SnapshotDetail) SnapshotLine {
	line := SnapshotLine{Text: c.display.Buffer().LineContent(y)}

	switch detail {
	case SnapshotDetailStyled:
		line.Segments = c.lineToSegments(y)
	case SnapshotDetailFull:
		line.Cells = c.lineToCells(y)
	}
	return line
}

// lineToSegments converts a row into runs of cells sharing one attribute.
func (c *Console) lineToSegments(y int) []SnapshotSegment {
	buf := c.display.Buffer()

	var segments []SnapshotSegment
	runStart := 0
	runAttr := buf.Cell(0, y).Attr

	flush := func(end int) {
		chars := make([]rune, 0, end-runStart)
		for x := runStart; x < end; x++ {
			chars = append(chars, buf.Cell(x, y).Rune())
		}
		segments = append(segments, SnapshotSegment{
			Text: string(chars),
			Fg:   runAttr.Fg().String(),
			Bg:   runAttr.Bg().String(),
		})
	}

	for x := 1; x < VGAWidth; x++ {
		if attr := buf.Cell(x, y).Attr; attr != runAttr {
			flush(x)
			runStart, runAttr = x, attr
		}
	}
	flush(VGAWidth)
	return segments
}

// lineToCells converts a row into full cell data.
func (c *Console) lineToCells(y int) []SnapshotCell {
	buf := c.display.Buffer()

	cells := make([]SnapshotCell, 0, VGAWidth)
	for x := 0; x < VGAWidth; x++ {
		cell := buf.Cell(x, y)
		cells = append(cells, SnapshotCell{
			Char: string(cell.Rune()),
			Fg:   cell.Attr.Fg().String(),
			Bg:   cell.Attr.Bg().String(),
		})
	}
	return cells
}
