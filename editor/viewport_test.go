package editor

import (
	"fmt"
	"testing"
)

func manyLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func TestScroll_FollowsCursorDown(t *testing.T) {
	e, _ := newTestEditor(t, manyLines(100)...)

	e.cy = 50
	e.scroll()

	// screenRows is 22 on the 24-row fake console.
	if want := 50 - e.screenRows + 1; e.rowOffset != want {
		t.Fatalf("rowOffset = %d, want %d", e.rowOffset, want)
	}

	e.cy = 10
	e.scroll()
	if e.rowOffset != 10 {
		t.Fatalf("rowOffset = %d, want 10", e.rowOffset)
	}
}

func TestScroll_FollowsCursorRight(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	e, _ := newTestEditor(t, string(long))

	e.cx = 150
	e.scroll()

	if want := 150 - e.textCols() + 1; e.colOffset != want {
		t.Fatalf("colOffset = %d, want %d", e.colOffset, want)
	}
	if e.rx != 150 {
		t.Fatalf("rx = %d, want 150", e.rx)
	}

	e.cx = 20
	e.scroll()
	if e.colOffset != 20 {
		t.Fatalf("colOffset = %d, want 20", e.colOffset)
	}
}

func TestScroll_ProjectsTabsIntoDisplaySpace(t *testing.T) {
	e, _ := newTestEditor(t, "\tx")

	e.cx = 1
	e.scroll()

	if e.rx != 4 {
		t.Fatalf("rx = %d, want 4", e.rx)
	}
}

func TestScroll_CursorOnVirtualLastLine(t *testing.T) {
	e, _ := newTestEditor(t, "ab")

	e.cy = 1
	e.cx = 5
	e.scroll()

	if e.rx != 0 {
		t.Fatalf("rx = %d, want 0 on virtual line", e.rx)
	}
}

func TestGutterWidth_GrowsWithRowCount(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{0, 4},
		{1, 4},
		{9999, 4},
		{10000, 5},
		{100000, 6},
	}

	for _, tt := range tests {
		e, _ := newTestEditor(t)
		for i := 0; i < tt.rows; i++ {
			e.doc.InsertRow(i, nil)
		}
		if got := e.gutterWidth(); got != tt.want {
			t.Fatalf("gutterWidth with %d rows = %d, want %d", tt.rows, got, tt.want)
		}
	}
}

func TestScroll_SnapsMatchToTop(t *testing.T) {
	// The search session forces rowOffset past the end so the next scroll
	// lands the match row at the top of the screen.
	e, _ := newTestEditor(t, manyLines(100)...)

	e.cy = 30
	e.rowOffset = e.doc.RowCount()
	e.scroll()

	if e.rowOffset != 30 {
		t.Fatalf("rowOffset = %d, want 30", e.rowOffset)
	}
}
