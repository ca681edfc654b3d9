package buffer

import (
	"bytes"

	"github.com/iw2rmb/vine/syntax"
)

// Document is the row store. It owns every Row, keeps each row's derived
// display/highlight state consistent, and tracks the dirty flag.
//
// All mutating operations treat out-of-range indices as no-ops: callers pass
// already-clamped cursor state, so an out-of-range index is never fatal.
type Document struct {
	rows     []*Row
	lang     *syntax.Language
	tabWidth int
	dirty    bool
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func New(tabWidth int) *Document {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return &Document{tabWidth: tabWidth}
}

func (d *Document) RowCount() int { return len(d.rows) }

// Row returns the row at index i, or nil when i is out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

func (d *Document) TabWidth() int { return d.tabWidth }

func (d *Document) Dirty() bool { return d.dirty }

// MarkClean resets the dirty flag, typically after a successful save or an
// initial load.
func (d *Document) MarkClean() { d.dirty = false }

func (d *Document) Language() *syntax.Language { return d.lang }

// SetLanguage switches the active profile and re-derives every row's
// highlight from scratch.
func (d *Document) SetLanguage(lang *syntax.Language) {
	d.lang = lang
	prevOpen := false
	for _, row := range d.rows {
		row.hl, row.commentOpen = syntax.HighlightLine(row.display, d.lang, prevOpen)
		prevOpen = row.commentOpen
	}
}

// InsertRow inserts a new row holding raw at position at, clamped to
// [0, RowCount].
func (d *Document) InsertRow(at int, raw []byte) {
	at = clampInt(at, 0, len(d.rows))
	row := newRow(raw)
	row.update(d.tabWidth)

	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = row

	d.rehighlightFrom(at)
	d.dirty = true
}

// DeleteRow removes the row at position at. Out of range is a no-op.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	d.rows = append(d.rows[:at], d.rows[at+1:]...)

	// The deleted row may have carried comment state into its successor.
	d.rehighlightFrom(at)
	d.dirty = true
}

// SplitRow truncates the row at col and inserts a new row below holding the
// remainder. col is clamped to the row's length.
func (d *Document) SplitRow(at, col int) {
	row := d.Row(at)
	if row == nil {
		return
	}
	col = clampInt(col, 0, len(row.raw))

	rest := make([]byte, len(row.raw)-col)
	copy(rest, row.raw[col:])

	row.raw = row.raw[:col]
	row.update(d.tabWidth)

	d.InsertRow(at+1, rest)
	d.rehighlightFrom(at)
	d.dirty = true
}

// AppendBytes appends b onto the end of the row at position at. Out of
// range is a no-op.
func (d *Document) AppendBytes(at int, b []byte) {
	row := d.Row(at)
	if row == nil {
		return
	}
	row.raw = append(row.raw, b...)
	row.update(d.tabWidth)

	d.rehighlightFrom(at)
	d.dirty = true
}

// JoinRows appends row at+1's raw content onto row at and deletes it.
func (d *Document) JoinRows(at int) {
	if at < 0 || at+1 >= len(d.rows) {
		return
	}
	d.AppendBytes(at, d.rows[at+1].raw)
	d.DeleteRow(at + 1)
}

// InsertChar inserts c into the row at character column col, clamping col to
// the row's length.
func (d *Document) InsertChar(at, col int, c byte) {
	row := d.Row(at)
	if row == nil {
		return
	}
	col = clampInt(col, 0, len(row.raw))

	row.raw = append(row.raw, 0)
	copy(row.raw[col+1:], row.raw[col:])
	row.raw[col] = c

	row.update(d.tabWidth)
	d.rehighlightFrom(at)
	d.dirty = true
}

// DeleteChar removes the byte at character column col. Out of range is a
// no-op.
func (d *Document) DeleteChar(at, col int) {
	row := d.Row(at)
	if row == nil || col < 0 || col >= len(row.raw) {
		return
	}
	row.raw = append(row.raw[:col], row.raw[col+1:]...)

	row.update(d.tabWidth)
	d.rehighlightFrom(at)
	d.dirty = true
}

// Contents serializes the document: each row's raw bytes followed by one
// line terminator, in row order. A document loaded from lines and saved
// unchanged round-trips byte-identically modulo a trailing terminator.
func (d *Document) Contents() []byte {
	var buf bytes.Buffer
	for _, row := range d.rows {
		buf.Write(row.raw)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// CxToRx converts a character column on row at into a display column.
func (d *Document) CxToRx(at, cx int) int {
	row := d.Row(at)
	if row == nil {
		return 0
	}
	return CxToRx(row.raw, cx, d.tabWidth)
}

// RxToCx converts a display column on row at into a character column.
func (d *Document) RxToCx(at, rx int) int {
	row := d.Row(at)
	if row == nil {
		return 0
	}
	return RxToCx(row.raw, rx, d.tabWidth)
}

// rehighlightFrom re-derives highlighting for the row at index at, then
// walks forward while the recomputed comment state keeps differing from the
// stored one. The walk is iterative so a file-wide comment toggle cannot
// grow the call stack.
func (d *Document) rehighlightFrom(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	for i := at; i < len(d.rows); i++ {
		row := d.rows[i]
		prevOpen := false
		if i > 0 {
			prevOpen = d.rows[i-1].commentOpen
		}
		wasOpen := row.commentOpen
		row.hl, row.commentOpen = syntax.HighlightLine(row.display, d.lang, prevOpen)
		if row.commentOpen == wasOpen {
			break
		}
	}
}

// MarkMatch overlays the Match class over n display bytes starting at rx and
// returns the previous classes so the caller can restore them when the
// search session moves on. Returns nil when the span is out of range.
func (d *Document) MarkMatch(at, rx, n int) []syntax.Class {
	row := d.Row(at)
	if row == nil || rx < 0 || n <= 0 || rx+n > len(row.hl) {
		return nil
	}
	saved := make([]syntax.Class, len(row.hl))
	copy(saved, row.hl)
	for i := rx; i < rx+n; i++ {
		row.hl[i] = syntax.Match
	}
	return saved
}

// RestoreClasses reinstates a class slice saved by MarkMatch. Length
// mismatches (the row changed underneath) are ignored.
func (d *Document) RestoreClasses(at int, saved []syntax.Class) {
	row := d.Row(at)
	if row == nil || saved == nil || len(saved) != len(row.hl) {
		return
	}
	copy(row.hl, saved)
}
