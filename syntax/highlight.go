package syntax

import "bytes"

// separators delimit identifiers, keywords, and number boundaries.
const separators = ",.()+-/*^=@#~&%$`<>[]{}!\\:|;?"

// IsSeparator reports whether c delimits a token. NUL counts as a separator
// so tokens ending at end-of-row behave like tokens followed by whitespace.
func IsSeparator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return bytes.IndexByte([]byte(separators), c) >= 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// numberCont are the bytes that extend a number once one has started.
// The rule is deliberately heuristic (bare a-f letters continue a number
// regardless of base) to stay compatible with the observable behavior the
// profiles were tuned against.
func numberCont(c byte) bool {
	switch c {
	case '.', 'x', 'a', 'b', 'c', 'd', 'e', 'f':
		return true
	}
	return false
}

// HighlightLine assigns a Class to every byte of a row's display form.
//
// prevOpen is the block-comment state inherited from the previous row
// (false for row 0). The returned bool is this row's own trailing state:
// true iff an unterminated block comment runs past the end of the row.
func HighlightLine(display []byte, lang *Language, prevOpen bool) ([]Class, bool) {
	hl := make([]Class, len(display))
	if lang == nil {
		return hl, false
	}

	scs := []byte(lang.LineComment)
	mcs := []byte(lang.BlockCommentOpen)
	mce := []byte(lang.BlockCommentClose)

	prevSep := true
	var inString byte
	inComment := prevOpen

	i := 0
	for i < len(display) {
		c := display[i]
		prevClass := Normal
		if i > 0 {
			prevClass = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(display[i:], scs) {
				for j := i; j < len(display); j++ {
					hl[j] = Comment
				}
				break
			}
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				hl[i] = BlockComment
				if bytes.HasPrefix(display[i:], mce) {
					for j := i; j < i+len(mce); j++ {
						hl[j] = BlockComment
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(display[i:], mcs) {
				for j := i; j < i+len(mcs); j++ {
					hl[j] = BlockComment
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if lang.HighlightStrings {
			if inString != 0 {
				hl[i] = String
				if c == '\\' && i+1 < len(display) {
					hl[i+1] = String
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = String
				i++
				continue
			}
		}

		if lang.HighlightNumbers {
			if (isDigit(c) && (prevSep || prevClass == Number)) ||
				(numberCont(c) && prevClass == Number) {
				hl[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if kw, class, ok := matchKeyword(display[i:], lang); ok {
				for j := i; j < i+len(kw); j++ {
					hl[j] = class
				}
				i += len(kw)
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return hl, inComment
}

// matchKeyword finds the longest profile keyword starting at the head of
// rest. The byte after the keyword must be a separator (or end-of-row), so
// a keyword never matches as a prefix of a longer identifier.
func matchKeyword(rest []byte, lang *Language) (string, Class, bool) {
	for _, kw := range lang.ordered {
		if len(kw) > len(rest) {
			continue
		}
		if !bytes.HasPrefix(rest, []byte(kw)) {
			continue
		}
		if len(kw) < len(rest) && !IsSeparator(rest[len(kw)]) {
			continue
		}
		return kw, lang.keywords[kw], true
	}
	return "", Normal, false
}
