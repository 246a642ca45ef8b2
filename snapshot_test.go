package bloodos

import (
	"encoding/json"
	"testing"
)

func TestSnapshot_Text(t *testing.T) {
	con := New()
	con.Boot()

	snap := con.Snapshot(SnapshotDetailText)

	if snap.Size.Rows != VGAHeight {
		t.Errorf("Size.Rows = %d, want %d", snap.Size.Rows, VGAHeight)
	}
	if snap.Size.Cols != VGAWidth {
		t.Errorf("Size.Cols = %d, want %d", snap.Size.Cols, VGAWidth)
	}
	if len(snap.Lines) != VGAHeight {
		t.Fatalf("len(Lines) = %d, want %d", len(snap.Lines), VGAHeight)
	}

	if snap.Lines[7].Text != "                    Terminal Ready" {
		t.Errorf("Lines[7].Text = %q", snap.Lines[7].Text)
	}
	if snap.Lines[10].Text != "root~bloodos:~" {
		t.Errorf("Lines[10].Text = %q, want the prompt", snap.Lines[10].Text)
	}

	// Text mode should not have segments or cells
	if snap.Lines[10].Segments != nil {
		t.Error("Text mode should not have segments")
	}
	if snap.Lines[10].Cells != nil {
		t.Error("Text mode should not have cells")
	}
}

func TestSnapshot_Cursor(t *testing.T) {
	con := New()
	con.Boot()
	con.Machine().Type("ls")

	snap := con.Snapshot(SnapshotDetailText)

	if snap.Cursor.X != len(Prompt)+2 {
		t.Errorf("Cursor.X = %d, want %d", snap.Cursor.X, len(Prompt)+2)
	}
	if snap.Cursor.Y != 10 {
		t.Errorf("Cursor.Y = %d, want 10", snap.Cursor.Y)
	}
	if snap.Attr.Fg != "light-grey" {
		t.Errorf("Attr.Fg = %q, want %q", snap.Attr.Fg, "light-grey")
	}
	if snap.Attr.Bg != "black" {
		t.Errorf("Attr.Bg = %q, want %q", snap.Attr.Bg, "black")
	}
}

func TestSnapshot_Styled(t *testing.T) {
	con := New()
	con.Boot()
	con.Machine().Type("ls")

	snap := con.Snapshot(SnapshotDetailStyled)

	segments := snap.Lines[10].Segments
	if len(segments) < 2 {
		t.Fatalf("Expected at least 2 segments, got %d", len(segments))
	}

	// The prompt renders green, the typed input light grey.
	if segments[0].Text != Prompt {
		t.Errorf("Segments[0].Text = %q, want %q", segments[0].Text, Prompt)
	}
	if segments[0].Fg != "green" {
		t.Errorf("Segments[0].Fg = %q, want %q", segments[0].Fg, "green")
	}
	if segments[1].Text != "ls" {
		t.Errorf("Segments[1].Text = %q, want %q", segments[1].Text, "ls")
	}
	if segments[1].Fg != "light-grey" {
		t.Errorf("Segments[1].Fg = %q, want %q", segments[1].Fg, "light-grey")
	}

	// Segments cover the full row, blanks included.
	total := 0
	for _, seg := range segments {
		total += len(seg.Text)
	}
	if total != VGAWidth {
		t.Errorf("Segment text covers %d columns, want %d", total, VGAWidth)
	}

	// Styled mode should not have cells
	if snap.Lines[10].Cells != nil {
		t.Error("Styled mode should not have cells")
	}
}

func TestSnapshot_Full(t *testing.T) {
	con := New()
	con.Boot()

	snap := con.Snapshot(SnapshotDetailFull)

	cells := snap.Lines[10].Cells
	if len(cells) != VGAWidth {
		t.Fatalf("Expected %d cells, got %d", VGAWidth, len(cells))
	}

	if cells[0].Char != "r" {
		t.Errorf("Cells[0].Char = %q, want %q", cells[0].Char, "r")
	}
	if cells[0].Fg != "green" {
		t.Errorf("Cells[0].Fg = %q, want %q", cells[0].Fg, "green")
	}
	// Rest should be spaces
	if cells[20].Char != " " {
		t.Errorf("Cells[20].Char = %q, want %q", cells[20].Char, " ")
	}
}

func TestSnapshot_InputState(t *testing.T) {
	con := New()
	con.Boot()
	con.Machine().Type("ver\n")
	con.Machine().Type("ls")

	snap := con.Snapshot(SnapshotDetailText)

	if snap.Pending != "ls" {
		t.Errorf("Pending = %q, want %q", snap.Pending, "ls")
	}
	if len(snap.History) != 1 || snap.History[0] != "ver" {
		t.Errorf("History = %v, want [ver]", snap.History)
	}
}

func TestSnapshot_Power(t *testing.T) {
	con := New()
	con.Boot()

	snap := con.Snapshot(SnapshotDetailText)
	if snap.Power != "running" {
		t.Errorf("Power = %q, want %q", snap.Power, "running")
	}
	if snap.Halted {
		t.Error("Halted = true, want false")
	}

	con.Machine().Type("shutdown\n")

	snap = con.Snapshot(SnapshotDetailText)
	if snap.Power != "off" {
		t.Errorf("Power = %q, want %q", snap.Power, "off")
	}
	if !snap.Halted {
		t.Error("Halted = false, want true")
	}
}

func TestSnapshot_CustomBus(t *testing.T) {
	con := New(WithBus(NoopBus{}))
	con.Boot()

	snap := con.Snapshot(SnapshotDetailText)

	// No machine behind the bus: no power state to report.
	if snap.Power != "" {
		t.Errorf("Power = %q, want empty", snap.Power)
	}
}

func TestSnapshot_JSON(t *testing.T) {
	con := New()
	con.Boot()

	data, err := json.Marshal(con.Snapshot(SnapshotDetailStyled))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Size.Rows != VGAHeight || decoded.Size.Cols != VGAWidth {
		t.Errorf("Size = %+v after round trip", decoded.Size)
	}
	if decoded.Lines[10].Text != "root~bloodos:~" {
		t.Errorf("Lines[10].Text = %q after round trip", decoded.Lines[10].Text)
	}
}
