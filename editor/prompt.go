package editor

import "github.com/iw2rmb/vine/internal/term"

// promptHandler observes every keypress of a prompt session, including the
// final Enter or Escape. The search prompt uses it to move the cursor live;
// the save prompt has nothing to do per key.
type promptHandler interface {
	OnKey(e *Editor, input []byte, k term.Key)
}

// savePrompt is the plain filename prompt.
type savePrompt struct{}

func (savePrompt) OnKey(*Editor, []byte, term.Key) {}

// prompt runs a single-line input session on the status bar. format must
// contain one %s for the current input. Enter on non-empty input accepts,
// Escape cancels, Backspace edits; every other printable key appends. The
// handler sees the input after each key.
func (e *Editor) prompt(format string, h promptHandler) (input []byte, ok bool, err error) {
	var buf []byte
	for {
		e.SetStatusMessage(format, buf)
		if err := e.RefreshScreen(); err != nil {
			return nil, false, err
		}

		k, err := e.console.ReadKey()
		if err != nil {
			return nil, false, err
		}

		switch k {
		case term.KeyBackspace, term.KeyDelete, term.Ctrl('h'), term.Ctrl('x'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case term.KeyEscape:
			e.SetStatusMessage("")
			h.OnKey(e, buf, k)
			return nil, false, nil
		case term.KeyEnter:
			if len(buf) > 0 {
				e.SetStatusMessage("")
				h.OnKey(e, buf, k)
				return buf, true, nil
			}
		default:
			if k.IsPrintable() {
				buf = append(buf, byte(k))
			}
		}

		h.OnKey(e, buf, k)
	}
}
