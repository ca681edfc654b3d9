package editor

import (
	"bufio"
	"bytes"
	"os"

	"github.com/iw2rmb/vine/syntax"
)

// maxLineBytes bounds a single input line; anything longer than this is not
// a text file worth editing.
const maxLineBytes = 1 << 20

// readLines loads path split into lines, with line terminators (including a
// trailing \r from CRLF files) stripped.
func readLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines [][]byte
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := bytes.TrimSuffix(sc.Bytes(), []byte("\r"))
		lines = append(lines, append([]byte(nil), line...))
	}
	return lines, sc.Err()
}

// Open loads path into the buffer and selects a highlight profile from the
// filename. A missing file is not an error: the editor starts empty and the
// file is created on first save. Any other failure leaves the editor usable
// with an empty buffer and a status message.
func (e *Editor) Open(path string) error {
	e.filename = path
	e.doc.SetLanguage(syntax.Detect(path))

	lines, err := readLines(path)
	if err != nil {
		if os.IsNotExist(err) {
			e.log.Info().Str("path", path).Msg("new file")
			return nil
		}
		e.SetStatusMessage("[ERROR] The requested file could not be opened: %v", err)
		e.log.Error().Err(err).Str("path", path).Msg("open failed")
		return err
	}

	for i, line := range lines {
		e.doc.InsertRow(i, line)
	}
	e.doc.MarkClean()
	e.log.Info().Str("path", path).Int("rows", len(lines)).Msg("opened")
	return nil
}

// save writes the buffer to its file, prompting for a name first when the
// session started without one. Write failures are reported on the status
// line, never fatal.
func (e *Editor) save() error {
	if e.filename == "" {
		name, ok, err := e.prompt("Save as: %s (ESC to cancel)", savePrompt{})
		if err != nil {
			return err
		}
		if !ok {
			e.SetStatusMessage("Save aborted")
			return nil
		}
		e.filename = string(name)
		e.doc.SetLanguage(syntax.Detect(e.filename))
	}

	data := e.doc.Contents()
	if err := os.WriteFile(e.filename, data, 0o644); err != nil {
		e.SetStatusMessage("[ERROR] Can't save! I/O error: %v", err)
		e.log.Error().Err(err).Str("path", e.filename).Msg("save failed")
		return nil
	}

	e.doc.MarkClean()
	e.SetStatusMessage("%d bytes written to disk", len(data))
	e.log.Info().Str("path", e.filename).Int("bytes", len(data)).Msg("saved")
	return nil
}
