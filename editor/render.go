package editor

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/vine"
	"github.com/iw2rmb/vine/syntax"
)

var (
	hideCursor  = termenv.CSI + termenv.HideCursorSeq
	showCursor  = termenv.CSI + termenv.ShowCursorSeq
	cursorHome  = termenv.CSI + "1;1H"
	eraseRight  = termenv.CSI + termenv.EraseLineRightSeq
	clearScreen = termenv.CSI + "2J" + cursorHome

	defaultFg  = termenv.CSI + "39m"
	inverseOn  = termenv.CSI + termenv.ReverseSeq + "m"
	styleReset = termenv.CSI + termenv.ResetSeq + "m"
)

var statusStyle = lipgloss.NewStyle().Reverse(true)

// RefreshScreen paints one complete frame: every text row, the status bar
// and the message line, then the cursor. The frame is accumulated in memory
// and handed to the console in a single Write, with the cursor hidden for
// the duration, so a slow terminal never shows a torn screen.
func (e *Editor) RefreshScreen() error {
	rows, cols, err := e.console.Size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	e.screenRows, e.screenCols = rows-2, cols

	e.scroll()

	var frame bytes.Buffer
	frame.WriteString(hideCursor)
	frame.WriteString(cursorHome)

	e.drawRows(&frame)
	e.drawStatusBar(&frame)
	e.drawMessageBar(&frame)

	fmt.Fprintf(&frame, termenv.CSI+termenv.CursorPositionSeq,
		e.cy-e.rowOffset+1, e.rx-e.colOffset+e.gutterWidth()+2)
	frame.WriteString(showCursor)

	_, err = e.console.Write(frame.Bytes())
	return err
}

func (e *Editor) drawRows(frame *bytes.Buffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowOffset
		if filerow >= e.doc.RowCount() {
			if e.doc.RowCount() == 0 && y == e.screenRows/3 {
				e.drawWelcome(frame)
			} else {
				frame.WriteByte('~')
			}
		} else {
			fmt.Fprintf(frame, "%*d ", e.gutterWidth(), filerow+1)
			e.drawRow(frame, filerow)
		}
		frame.WriteString(eraseRight)
		frame.WriteString("\r\n")
	}
}

// drawRow emits the visible slice of one row with its highlighting. Color
// escapes are only written when the class changes between adjacent bytes,
// which keeps frames small on mostly-plain text.
func (e *Editor) drawRow(frame *bytes.Buffer, filerow int) {
	row := e.doc.Row(filerow)
	display := row.Display()
	classes := row.Classes()

	start := e.colOffset
	if start > len(display) {
		start = len(display)
	}
	end := start + e.textCols()
	if end > len(display) {
		end = len(display)
	}

	current := ""
	for i := start; i < end; i++ {
		c := display[i]
		if c < 32 || c == 127 {
			// Render control bytes as an inverse-video caret symbol.
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			frame.WriteString(inverseOn)
			frame.WriteByte(sym)
			frame.WriteString(styleReset)
			if current != "" {
				frame.WriteString(current)
			}
			continue
		}
		seq := ""
		if classes[i] != syntax.Normal {
			seq = e.theme.sequence(classes[i])
		}
		if seq != current {
			if seq == "" {
				frame.WriteString(defaultFg)
			} else {
				frame.WriteString(seq)
			}
			current = seq
		}
		frame.WriteByte(c)
	}
	if current != "" {
		frame.WriteString(defaultFg)
	}
}

func (e *Editor) drawWelcome(frame *bytes.Buffer) {
	welcome := fmt.Sprintf("Vine editor -- version %s", vine.Version())
	welcome = runewidth.Truncate(welcome, e.screenCols, "")

	padding := (e.screenCols - runewidth.StringWidth(welcome)) / 2
	if padding > 0 {
		frame.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		frame.WriteByte(' ')
	}
	frame.WriteString(welcome)
}

func (e *Editor) drawStatusBar(frame *bytes.Buffer) {
	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	dirty := ""
	if e.doc.Dirty() {
		dirty = " (modified)"
	}
	left := fmt.Sprintf("%.20s - %d lines%s", name, e.doc.RowCount(), dirty)

	lang := "no ft"
	if l := e.doc.Language(); l != nil {
		lang = l.Name
	}
	right := fmt.Sprintf("%s | %d/%d", lang, e.cy+1, e.doc.RowCount())

	left = runewidth.Truncate(left, e.screenCols, "")
	gap := e.screenCols - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	line := left
	if gap > 0 {
		line += fmt.Sprintf("%*s", gap+runewidth.StringWidth(right), right)
	}
	line = runewidth.Truncate(line, e.screenCols, "")

	frame.WriteString(statusStyle.Render(line))
	frame.WriteString(styleReset)
	frame.WriteString("\r\n")
}

func (e *Editor) drawMessageBar(frame *bytes.Buffer) {
	frame.WriteString(eraseRight)
	if e.statusMsg == "" || e.now().Sub(e.statusTime) >= messageTimeout {
		return
	}
	frame.WriteString(runewidth.Truncate(e.statusMsg, e.screenCols, ""))
}
