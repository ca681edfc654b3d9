package editor

import (
	"github.com/iw2rmb/vine/buffer"
	"github.com/iw2rmb/vine/internal/term"
	"github.com/iw2rmb/vine/syntax"
)

// findSession is the state of one incremental search: where the last match
// landed, which way the next step goes, and the highlight classes displaced
// by the match overlay.
type findSession struct {
	lastMatch int
	direction buffer.Direction

	savedRow int
	saved    []syntax.Class
}

// searchPrompt advances the search on every keypress of the find prompt.
type searchPrompt struct{}

func (searchPrompt) OnKey(e *Editor, query []byte, k term.Key) {
	f := &e.find

	if f.saved != nil {
		e.doc.RestoreClasses(f.savedRow, f.saved)
		f.saved = nil
	}

	switch k {
	case term.KeyEnter, term.KeyEscape:
		f.lastMatch = -1
		f.direction = buffer.Forward
		return
	case term.KeyArrowRight, term.KeyArrowDown:
		f.direction = buffer.Forward
	case term.KeyArrowLeft, term.KeyArrowUp:
		f.direction = buffer.Backward
	default:
		// The query changed; restart from the top.
		f.lastMatch = -1
		f.direction = buffer.Forward
	}

	if len(query) == 0 {
		return
	}

	row, rx, found := e.doc.Search(query, f.lastMatch, f.direction)
	if !found {
		return
	}

	f.lastMatch = row
	e.cy = row
	e.cx = e.doc.RxToCx(row, rx)

	// Force the next scroll to land the match at the top of the screen.
	e.rowOffset = e.doc.RowCount()

	f.savedRow = row
	f.saved = e.doc.MarkMatch(row, rx, len(query))
}

// findCommand runs the incremental search prompt. Cancelling with Escape
// restores the cursor and viewport to where the search began.
func (e *Editor) findCommand() error {
	savedCx, savedCy := e.cx, e.cy
	savedColOff, savedRowOff := e.colOffset, e.rowOffset

	e.find = findSession{lastMatch: -1, direction: buffer.Forward}

	_, ok, err := e.prompt("Search: %s (Use ESC/Arrows/Enter)", searchPrompt{})
	if err != nil {
		return err
	}
	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.colOffset, e.rowOffset = savedColOff, savedRowOff
	}
	return nil
}
