package editor

import "github.com/iw2rmb/vine/internal/term"

// processKey applies one keypress and reports whether the session should
// end. Errors come only from console I/O inside prompts.
func (e *Editor) processKey(k term.Key) (quit bool, err error) {
	switch k {
	case term.KeyEnter:
		e.insertNewline()

	case term.Ctrl('q'):
		if e.doc.Dirty() && e.quitPresses > 0 {
			e.SetStatusMessage("WARNING! File has unsaved changes. "+
				"Press Ctrl-Q %d more times to quit.", e.quitPresses)
			e.quitPresses--
			return false, nil
		}
		return true, nil

	case term.Ctrl('s'):
		if err := e.save(); err != nil {
			return false, err
		}

	case term.Ctrl('f'):
		if err := e.findCommand(); err != nil {
			return false, err
		}

	case term.Ctrl('d'):
		e.deleteRow()

	case term.KeyHome, term.Ctrl('j'):
		e.cx = 0

	case term.KeyEnd, term.Ctrl('k'):
		if row := e.doc.Row(e.cy); row != nil {
			e.cx = row.Len()
		}

	case term.KeyBackspace, term.Ctrl('h'):
		e.deleteChar()

	case term.KeyDelete, term.Ctrl('x'):
		// Forward delete: step over the target, then delete backwards.
		e.moveCursor(term.KeyArrowRight)
		e.deleteChar()

	case term.KeyPageUp, term.KeyPageDown:
		e.movePage(k)

	case term.KeyArrowUp, term.KeyArrowDown, term.KeyArrowLeft, term.KeyArrowRight:
		e.moveCursor(k)

	case term.Ctrl('l'), term.KeyEscape:
		// Ignored.

	default:
		if k == '\t' || k.IsPrintable() {
			e.insertChar(byte(k))
		}
	}

	e.quitPresses = e.quitWarnings
	return false, nil
}

// moveCursor applies one arrow step. Left at column zero wraps to the end
// of the previous row, right at end of row wraps to the start of the next;
// vertical moves clamp the column to the destination row's length.
func (e *Editor) moveCursor(k term.Key) {
	row := e.doc.Row(e.cy)

	switch k {
	case term.KeyArrowLeft:
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.doc.Row(e.cy).Len()
		}
	case term.KeyArrowRight:
		if row != nil && e.cx < row.Len() {
			e.cx++
		} else if row != nil && e.cx == row.Len() {
			e.cy++
			e.cx = 0
		}
	case term.KeyArrowUp:
		if e.cy > 0 {
			e.cy--
		}
	case term.KeyArrowDown:
		if e.cy < e.doc.RowCount() {
			e.cy++
		}
	}

	rowLen := 0
	if row := e.doc.Row(e.cy); row != nil {
		rowLen = row.Len()
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

// movePage jumps a full screen. The cursor first snaps to the viewport
// edge, then steps one screenful of arrow moves so the usual clamping
// applies row by row.
func (e *Editor) movePage(k term.Key) {
	if k == term.KeyPageUp {
		e.cy = e.rowOffset
	} else {
		e.cy = e.rowOffset + e.screenRows - 1
		if e.cy > e.doc.RowCount() {
			e.cy = e.doc.RowCount()
		}
	}

	arrow := term.KeyArrowDown
	if k == term.KeyPageUp {
		arrow = term.KeyArrowUp
	}
	for i := 0; i < e.screenRows; i++ {
		e.moveCursor(arrow)
	}
}

func (e *Editor) insertChar(c byte) {
	if e.cy == e.doc.RowCount() {
		e.doc.InsertRow(e.doc.RowCount(), nil)
	}
	e.doc.InsertChar(e.cy, e.cx, c)
	e.cx++
}

func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.doc.InsertRow(e.cy, nil)
	} else {
		e.doc.SplitRow(e.cy, e.cx)
	}
	e.cy++
	e.cx = 0
}

// deleteChar removes the character left of the cursor, joining with the
// previous row at column zero. At the origin it does nothing.
func (e *Editor) deleteChar() {
	if e.cy == e.doc.RowCount() {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}
	if e.cx > 0 {
		e.doc.DeleteChar(e.cy, e.cx-1)
		e.cx--
		return
	}
	e.cx = e.doc.Row(e.cy - 1).Len()
	e.doc.JoinRows(e.cy - 1)
	e.cy--
}

func (e *Editor) deleteRow() {
	e.doc.DeleteRow(e.cy)
	if e.cy > e.doc.RowCount() {
		e.cy = e.doc.RowCount()
	}
	rowLen := 0
	if row := e.doc.Row(e.cy); row != nil {
		rowLen = row.Len()
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}
