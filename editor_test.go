package bloodos

import (
	"strings"
	"testing"
)

func TestEditorInsert(t *testing.T) {
	var e LineEditor

	for _, c := range []byte("ls") {
		if !e.Insert(c) {
			t.Fatalf("expected insert of %q to succeed", c)
		}
	}

	if e.Len() != 2 {
		t.Errorf("expected length 2, got %d", e.Len())
	}
	if e.Line() != "ls" {
		t.Errorf("expected %q, got %q", "ls", e.Line())
	}
}

func TestEditorInsertFull(t *testing.T) {
	var e LineEditor

	for i := 0; i < LineBufferSize-1; i++ {
		if !e.Insert('x') {
			t.Fatalf("insert %d: expected success", i)
		}
	}

	// The buffer keeps one slot reserved; the next insert is dropped.
	if e.Insert('y') {
		t.Error("expected insert into a full buffer to fail")
	}
	if e.Len() != LineBufferSize-1 {
		t.Errorf("expected length %d, got %d", LineBufferSize-1, e.Len())
	}
	if strings.ContainsRune(e.Line(), 'y') {
		t.Error("dropped character leaked into the line")
	}
}

func TestEditorBackspace(t *testing.T) {
	var e LineEditor
	e.Insert('a')
	e.Insert('b')

	if !e.Backspace() {
		t.Fatal("expected backspace to succeed")
	}
	if e.Line() != "a" {
		t.Errorf("expected %q, got %q", "a", e.Line())
	}

	e.Backspace()
	if e.Backspace() {
		t.Error("expected backspace on an empty line to fail")
	}
	if e.Len() != 0 {
		t.Errorf("expected empty line, got length %d", e.Len())
	}
}

func TestEditorSubmit(t *testing.T) {
	var e LineEditor
	for _, c := range []byte("echo hi") {
		e.Insert(c)
	}

	line, ok := e.Submit()
	if !ok {
		t.Fatal("expected submit to produce a line")
	}
	if line != "echo hi" {
		t.Errorf("expected %q, got %q", "echo hi", line)
	}
	if e.Len() != 0 {
		t.Errorf("expected buffer reset after submit, got length %d", e.Len())
	}
	if got := e.History().Last(); got != "echo hi" {
		t.Errorf("expected history to record the line, got %q", got)
	}
}

func TestEditorSubmitEmpty(t *testing.T) {
	var e LineEditor

	line, ok := e.Submit()
	if ok || line != "" {
		t.Errorf("expected empty submit to report nothing, got %q, %v", line, ok)
	}
	if e.History().Len() != 0 {
		t.Error("empty submit must not touch history")
	}
}

func TestEditorSubmitAfterBackspace(t *testing.T) {
	var e LineEditor
	for _, c := range []byte("verx") {
		e.Insert(c)
	}
	e.Backspace()

	line, _ := e.Submit()
	if line != "ver" {
		t.Errorf("expected %q, got %q", "ver", line)
	}
}

func TestEditorReset(t *testing.T) {
	var e LineEditor
	e.Insert('a')

	e.Reset()

	if e.Len() != 0 {
		t.Errorf("expected empty line after reset, got %d", e.Len())
	}
	if e.History().Len() != 0 {
		t.Error("reset must not record the dropped line")
	}
}
