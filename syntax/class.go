package syntax

// Class is the highlight category assigned to a single display-form byte.
// It is purely a rendering label and is never persisted.
type Class uint8

const (
	Normal Class = iota
	Comment
	BlockComment
	Keyword1
	Keyword2
	String
	Number
	Match
)

func (c Class) String() string {
	switch c {
	case Normal:
		return "normal"
	case Comment:
		return "comment"
	case BlockComment:
		return "block-comment"
	case Keyword1:
		return "keyword1"
	case Keyword2:
		return "keyword2"
	case String:
		return "string"
	case Number:
		return "number"
	case Match:
		return "match"
	}
	return "unknown"
}
