package term

// Key is one decoded logical keypress. Printable keys carry their byte
// value; navigation keys decoded from escape sequences sit above the byte
// range.
type Key int

const (
	KeyEnter     Key = '\r'
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 127
)

const (
	KeyArrowLeft Key = 1000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
)

// Ctrl returns the key produced by holding Ctrl with c: the three upper
// bits cleared, mirroring what the terminal sends.
func Ctrl(c byte) Key { return Key(c & 0x1f) }

// IsPrintable reports whether k is a plain text byte suitable for insertion.
func (k Key) IsPrintable() bool {
	return k >= 32 && k < 127
}

// decodeKey consumes one logical key from the head of buf and returns it
// with the number of bytes consumed. An escape byte without a complete,
// recognized sequence behind it decodes as KeyEscape.
func decodeKey(buf []byte) (Key, int) {
	if len(buf) == 0 {
		return 0, 0
	}
	if buf[0] != 0x1b {
		return Key(buf[0]), 1
	}
	if len(buf) < 3 {
		return KeyEscape, 1
	}

	switch buf[1] {
	case '[':
		if buf[2] >= '0' && buf[2] <= '9' {
			if len(buf) < 4 || buf[3] != '~' {
				return KeyEscape, 1
			}
			switch buf[2] {
			case '1', '7':
				return KeyHome, 4
			case '4', '8':
				return KeyEnd, 4
			case '3':
				return KeyDelete, 4
			case '5':
				return KeyPageUp, 4
			case '6':
				return KeyPageDown, 4
			}
			return KeyEscape, 4
		}
		switch buf[2] {
		case 'A':
			return KeyArrowUp, 3
		case 'B':
			return KeyArrowDown, 3
		case 'C':
			return KeyArrowRight, 3
		case 'D':
			return KeyArrowLeft, 3
		case 'H':
			return KeyHome, 3
		case 'F':
			return KeyEnd, 3
		}
		return KeyEscape, 3
	case 'O':
		switch buf[2] {
		case 'H':
			return KeyHome, 3
		case 'F':
			return KeyEnd, 3
		}
		return KeyEscape, 3
	}
	return KeyEscape, 1
}
