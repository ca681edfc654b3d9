package buffer

import "bytes"

// Direction selects where a search continues relative to the last match.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Search scans rows circularly for query, starting one row past last in the
// given direction (pass last = -1 to start from the top). The match position
// is returned as a display column against the row's display form; convert
// with RxToCx before placing the cursor.
func (d *Document) Search(query []byte, last int, dir Direction) (row, rx int, ok bool) {
	if len(query) == 0 || len(d.rows) == 0 {
		return 0, 0, false
	}
	if last < -1 || last >= len(d.rows) {
		last = -1
	}
	if last == -1 {
		dir = Forward
	}

	current := last
	for i := 0; i < len(d.rows); i++ {
		current += int(dir)
		if current == -1 {
			current = len(d.rows) - 1
		} else if current == len(d.rows) {
			current = 0
		}

		if idx := bytes.Index(d.rows[current].display, query); idx >= 0 {
			return current, idx, true
		}
	}
	return 0, 0, false
}
