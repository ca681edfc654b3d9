package editor

import (
	"github.com/muesli/termenv"

	"github.com/iw2rmb/vine/syntax"
)

// Theme maps highlight classes to terminal colors. Normal text always
// renders in the terminal's default foreground and is not themed.
type Theme struct {
	Comment  termenv.Color
	Keyword1 termenv.Color
	Keyword2 termenv.Color
	String   termenv.Color
	Number   termenv.Color
	Match    termenv.Color
}

// Sonokai returns the default color scheme.
func Sonokai() Theme {
	return Theme{
		Comment:  termenv.ANSIBrightBlack,
		Keyword1: termenv.ANSIRed,
		Keyword2: termenv.ANSIGreen,
		String:   termenv.ANSIBrightGreen,
		Number:   termenv.ANSIMagenta,
		Match:    termenv.ANSIBlue,
	}
}

// sequence returns the full SGR escape selecting the foreground color for
// class, or the default-foreground escape for Normal.
func (t Theme) sequence(class syntax.Class) string {
	var c termenv.Color
	switch class {
	case syntax.Comment, syntax.BlockComment:
		c = t.Comment
	case syntax.Keyword1:
		c = t.Keyword1
	case syntax.Keyword2:
		c = t.Keyword2
	case syntax.String:
		c = t.String
	case syntax.Number:
		c = t.Number
	case syntax.Match:
		c = t.Match
	default:
		return defaultFg
	}
	if c == nil {
		return defaultFg
	}
	return termenv.CSI + c.Sequence(false) + "m"
}
