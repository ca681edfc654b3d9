package editor

import "strconv"

// minGutterWidth is the smallest line-number gutter; the numbers are
// right-aligned in it and followed by one space.
const minGutterWidth = 4

// gutterWidth returns the gutter column count, widened when the line count
// outgrows the minimum so numbers never spill into the text area.
func (e *Editor) gutterWidth() int {
	w := len(strconv.Itoa(e.doc.RowCount()))
	if w < minGutterWidth {
		w = minGutterWidth
	}
	return w
}

// textCols returns the columns left for row content after the gutter.
func (e *Editor) textCols() int {
	cols := e.screenCols - e.gutterWidth() - 1
	if cols < 0 {
		cols = 0
	}
	return cols
}

// scroll re-derives rx from the cursor and drags the viewport origin the
// minimum distance needed to keep the cursor on screen. Runs before every
// frame, so the offsets are always consistent with the cursor by the time
// anything is drawn.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < e.doc.RowCount() {
		e.rx = e.doc.CxToRx(e.cy, e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.textCols() {
		e.colOffset = e.rx - e.textCols() + 1
	}
}
