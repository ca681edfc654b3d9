package editor

import (
	"testing"

	"github.com/iw2rmb/vine/buffer"
	"github.com/iw2rmb/vine/internal/term"
	"github.com/iw2rmb/vine/syntax"
)

func TestFind_IncrementalMatchAndStep(t *testing.T) {
	e, console := newTestEditor(t, "a x", "b", "c x")
	console.keys = []term.Key{term.Key('x'), term.KeyArrowRight, term.KeyEnter}

	if err := e.findCommand(); err != nil {
		t.Fatalf("findCommand: %v", err)
	}

	// 'x' matched row 0, arrow-right stepped to row 2, Enter accepted there.
	if e.cy != 2 || e.cx != 2 {
		t.Fatalf("cursor = (%d,%d), want (2,2)", e.cy, e.cx)
	}
}

func TestFind_WrapsAround(t *testing.T) {
	e, console := newTestEditor(t, "a x", "b", "c x")
	console.keys = []term.Key{
		term.Key('x'),
		term.KeyArrowRight, // row 2
		term.KeyArrowRight, // wraps back to row 0
		term.KeyEnter,
	}

	if err := e.findCommand(); err != nil {
		t.Fatalf("findCommand: %v", err)
	}
	if e.cy != 0 || e.cx != 2 {
		t.Fatalf("cursor = (%d,%d), want (0,2)", e.cy, e.cx)
	}
}

func TestFind_BackwardWraps(t *testing.T) {
	e, console := newTestEditor(t, "a x", "b", "c x")
	console.keys = []term.Key{
		term.Key('x'),
		term.KeyArrowLeft, // backward from row 0 wraps to row 2
		term.KeyEnter,
	}

	if err := e.findCommand(); err != nil {
		t.Fatalf("findCommand: %v", err)
	}
	if e.cy != 2 || e.cx != 2 {
		t.Fatalf("cursor = (%d,%d), want (2,2)", e.cy, e.cx)
	}
}

func TestFind_MatchOverlayMovesWithSearch(t *testing.T) {
	e, _ := newTestEditor(t, "a x", "b", "c x")
	e.find = findSession{lastMatch: -1, direction: buffer.Forward}

	// Inspect highlight state mid-session by feeding the prompt handler
	// one key at a time.
	searchPrompt{}.OnKey(e, []byte("x"), term.Key('x'))

	if got := e.doc.Row(0).Classes()[2]; got != syntax.Match {
		t.Fatalf("row 0 col 2 class = %v, want Match", got)
	}

	searchPrompt{}.OnKey(e, []byte("x"), term.KeyArrowRight)

	if got := e.doc.Row(0).Classes()[2]; got != syntax.Normal {
		t.Fatalf("row 0 overlay not restored: class = %v", got)
	}
	if got := e.doc.Row(2).Classes()[2]; got != syntax.Match {
		t.Fatalf("row 2 col 2 class = %v, want Match", got)
	}

	// Accepting the session removes the remaining overlay.
	searchPrompt{}.OnKey(e, []byte("x"), term.KeyEnter)
	if got := e.doc.Row(2).Classes()[2]; got != syntax.Normal {
		t.Fatalf("overlay left behind after accept: class = %v", got)
	}
}

func TestFind_EscapeRestoresCursorAndViewport(t *testing.T) {
	e, console := newTestEditor(t, "a x", "b", "c x")
	e.cy, e.cx = 1, 1
	e.rowOffset, e.colOffset = 1, 0

	console.keys = []term.Key{term.Key('x'), term.KeyEscape}

	if err := e.findCommand(); err != nil {
		t.Fatalf("findCommand: %v", err)
	}
	if e.cy != 1 || e.cx != 1 {
		t.Fatalf("cursor = (%d,%d), want (1,1)", e.cy, e.cx)
	}
	if e.rowOffset != 1 || e.colOffset != 0 {
		t.Fatalf("viewport = (%d,%d), want (1,0)", e.rowOffset, e.colOffset)
	}
}

func TestFind_NoMatchLeavesCursor(t *testing.T) {
	e, console := newTestEditor(t, "aaa", "bbb")
	console.keys = []term.Key{term.Key('z'), term.KeyEnter}

	if err := e.findCommand(); err != nil {
		t.Fatalf("findCommand: %v", err)
	}
	if e.cy != 0 || e.cx != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", e.cy, e.cx)
	}
}

func TestFind_MatchLandsOnDisplayColumn(t *testing.T) {
	// The match on a tab-indented row must place the cursor on the
	// character column that projects to the match's display column.
	e, console := newTestEditor(t, "\tx")
	console.keys = []term.Key{term.Key('x'), term.KeyEnter}

	if err := e.findCommand(); err != nil {
		t.Fatalf("findCommand: %v", err)
	}
	if e.cy != 0 || e.cx != 1 {
		t.Fatalf("cursor = (%d,%d), want (0,1)", e.cy, e.cx)
	}
}
