package editor

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/iw2rmb/vine/buffer"
	"github.com/iw2rmb/vine/internal/term"
)

// messageTimeout is how long a status message stays visible.
const messageTimeout = 5 * time.Second

// Console is the terminal surface the editor draws to and reads from. The
// real implementation is internal/term.Terminal; tests supply a fake.
type Console interface {
	io.Writer

	// ReadKey blocks for the next logical keypress.
	ReadKey() (term.Key, error)

	// Size returns the terminal dimensions as (rows, cols).
	Size() (rows, cols int, err error)
}

// Config carries the settings the editor needs at startup.
type Config struct {
	TabWidth     int
	QuitWarnings int
	Theme        Theme
	Logger       zerolog.Logger
}

// Editor is the full session state: the document, the cursor in character
// space, the viewport origin, and the transient status line.
type Editor struct {
	console Console
	log     zerolog.Logger
	theme   Theme

	doc      *buffer.Document
	filename string

	// cx is a character column, rx its display-space projection. cy may sit
	// one past the last row, on the virtual empty line used for appending.
	cx, cy int
	rx     int

	rowOffset  int
	colOffset  int
	screenRows int
	screenCols int

	statusMsg  string
	statusTime time.Time

	quitWarnings int
	quitPresses  int

	find findSession

	// now is stubbed in tests to control message expiry.
	now func() time.Time
}

// New builds an editor over console. The initial screen size is queried
// immediately so a dead terminal fails fast.
func New(console Console, cfg Config) (*Editor, error) {
	rows, cols, err := console.Size()
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}
	if cfg.TabWidth < 1 {
		cfg.TabWidth = 4
	}
	if cfg.QuitWarnings < 1 {
		cfg.QuitWarnings = 3
	}
	e := &Editor{
		console:      console,
		log:          cfg.Logger,
		theme:        cfg.Theme,
		doc:          buffer.New(cfg.TabWidth),
		screenRows:   rows - 2,
		screenCols:   cols,
		quitWarnings: cfg.QuitWarnings,
		quitPresses:  cfg.QuitWarnings,
		now:          time.Now,
	}
	return e, nil
}

// Document exposes the underlying row store.
func (e *Editor) Document() *buffer.Document { return e.doc }

// SetStatusMessage formats a message for the status area. It expires
// messageTimeout after being set.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusTime = e.now()
}

// Run repaints and dispatches keys until the user quits or the terminal
// fails. On a clean quit the screen is cleared and nil returned.
func (e *Editor) Run() error {
	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		if err := e.RefreshScreen(); err != nil {
			return err
		}
		k, err := e.console.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		quit, err := e.processKey(k)
		if err != nil {
			return err
		}
		if quit {
			_, err := io.WriteString(e.console, clearScreen)
			return err
		}
	}
}
