package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Makepad-fr/restaurant/internal/model"
)

func TestMenuLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	lines := MenuLines([]model.Item{
		model.NewItem("Sweet corn soup", 119),
		model.NewItem("Pizza", 500),
	})
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], " 1. Sweet corn soup") || !strings.HasSuffix(lines[0], "119") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if len(lines[0]) != len(lines[1]) {
		t.Errorf("lines not aligned:\n%q\n%q", lines[0], lines[1])
	}
}

func TestMenuLines_Empty(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	lines := MenuLines(nil)
	if len(lines) != 1 || lines[0] != "no items" {
		t.Errorf("MenuLines(nil) = %q", lines)
	}
}

func TestOKFail(t *testing.T) {
	var out, errOut bytes.Buffer
	prevOut, prevErr := stdout, stderr
	SetOutput(&out, &errOut)
	SetTheme("mono")
	defer func() {
		SetOutput(prevOut, prevErr)
		SetTheme("classic")
	}()

	OK("added")
	Fail("boom")

	if got := out.String(); got != "ok added\n" {
		t.Errorf("OK wrote %q", got)
	}
	if got := errOut.String(); got != "error: boom\n" {
		t.Errorf("Fail wrote %q", got)
	}
}

func TestPanelString(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	box := PanelString("hi")
	lines := strings.Split(box, "\n")
	if len(lines) != 3 {
		t.Fatalf("panel has %d lines, want 3:\n%s", len(lines), box)
	}
	if !strings.HasPrefix(lines[0], "+") || !strings.Contains(lines[1], "hi") {
		t.Errorf("unexpected panel:\n%s", box)
	}
}
