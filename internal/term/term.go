// Package term owns the process's terminal: raw-mode acquisition and
// restoration, size queries, and decoding raw byte sequences into logical
// keys.
package term

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// Terminal is the real terminal attached to stdin/stdout.
type Terminal struct {
	in  *os.File
	out *os.File

	state   *term.State
	pending []byte
	buf     [64]byte
}

// Open switches the controlling terminal into raw mode. The caller must
// call Restore before the process exits, or the user's shell is left
// corrupted.
func Open() (*Terminal, error) {
	in, out := os.Stdin, os.Stdout
	if !term.IsTerminal(int(in.Fd())) {
		return nil, errors.New("stdin is not a terminal")
	}
	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, err
	}
	return &Terminal{in: in, out: out, state: state}, nil
}

// Restore returns the terminal to its original mode.
func (t *Terminal) Restore() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.state)
	t.state = nil
	return err
}

// Size returns the terminal dimensions as (rows, cols).
func (t *Terminal) Size() (rows, cols int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, err
	}
	return h, w, nil
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// ReadKey blocks for the next logical key. Escape sequences arrive from the
// terminal in a single read, so decoding works on whole bursts; leftover
// bytes are served on subsequent calls.
func (t *Terminal) ReadKey() (Key, error) {
	for len(t.pending) == 0 {
		n, err := t.in.Read(t.buf[:])
		if err != nil {
			return 0, err
		}
		t.pending = t.buf[:n]
	}
	k, n := decodeKey(t.pending)
	t.pending = t.pending[n:]
	return k, nil
}
