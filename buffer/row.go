package buffer

import "github.com/iw2rmb/vine/syntax"

// Row is one line of the document. raw holds the bytes as loaded or typed;
// display, hl, and commentOpen are derived and recomputed by the Document
// whenever raw changes or a predecessor's comment state changes.
type Row struct {
	raw         []byte
	display     []byte
	hl          []syntax.Class
	commentOpen bool
}

func newRow(raw []byte) *Row {
	r := &Row{raw: make([]byte, len(raw))}
	copy(r.raw, raw)
	return r
}

// Raw returns the row's raw bytes. Callers must not modify the slice.
func (r *Row) Raw() []byte { return r.raw }

// Display returns the tab-expanded display form. Callers must not modify
// the slice.
func (r *Row) Display() []byte { return r.display }

// Classes returns one highlight class per display byte. Callers must not
// modify the slice.
func (r *Row) Classes() []syntax.Class { return r.hl }

// CommentOpen reports whether an unterminated block comment runs from this
// row into the next.
func (r *Row) CommentOpen() bool { return r.commentOpen }

// Len returns the raw length in bytes.
func (r *Row) Len() int { return len(r.raw) }

// DisplayLen returns the display-form length in bytes.
func (r *Row) DisplayLen() int { return len(r.display) }

// update re-derives the display form after a raw mutation. Highlighting is
// re-derived separately because it depends on the preceding row.
func (r *Row) update(tabWidth int) {
	r.display = ExpandTabs(r.raw, tabWidth)
}

// ExpandTabs renders raw with every tab expanded to spaces up to the next
// multiple of tabWidth. All other bytes pass through unchanged.
func ExpandTabs(raw []byte, tabWidth int) []byte {
	tabs := 0
	for _, c := range raw {
		if c == '\t' {
			tabs++
		}
	}
	out := make([]byte, 0, len(raw)+tabs*(tabWidth-1))
	for _, c := range raw {
		if c == '\t' {
			out = append(out, ' ')
			for len(out)%tabWidth != 0 {
				out = append(out, ' ')
			}
		} else {
			out = append(out, c)
		}
	}
	return out
}

// CxToRx converts a character column into a display column: each byte before
// cx contributes 1, plus the extra spaces its tab expansion consumed.
func CxToRx(raw []byte, cx, tabWidth int) int {
	rx := 0
	for j := 0; j < cx && j < len(raw); j++ {
		if raw[j] == '\t' {
			rx += (tabWidth - 1) - (rx % tabWidth)
		}
		rx++
	}
	return rx
}

// RxToCx is the inverse of CxToRx at character boundaries: it scans raw
// accumulating display width until it exceeds rx. When rx is past the end of
// the row, the row length is returned.
func RxToCx(raw []byte, rx, tabWidth int) int {
	curRx := 0
	for cx := 0; cx < len(raw); cx++ {
		if raw[cx] == '\t' {
			curRx += (tabWidth - 1) - (curRx % tabWidth)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return len(raw)
}
