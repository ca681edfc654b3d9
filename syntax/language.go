package syntax

import (
	"sort"
	"strings"
)

// Language describes how one file type is highlighted.
//
// Pattern matching: a pattern starting with '.' matches as a filename
// suffix, anything else matches as a substring. The first language whose
// pattern matches wins, in declaration order.
type Language struct {
	Name     string
	Patterns []string

	LineComment       string
	BlockCommentOpen  string
	BlockCommentClose string

	HighlightNumbers bool
	HighlightStrings bool

	// keyword text -> class (Keyword1 or Keyword2), plus the same keys
	// ordered longest-first so prefix matching picks the longest token.
	keywords map[string]Class
	ordered  []string
}

// newLanguage builds a Language from a vine-style keyword table: a trailing
// '|' marks a secondary keyword.
func newLanguage(name string, patterns, keywords []string, lineComment, blockOpen, blockClose string) *Language {
	l := &Language{
		Name:              name,
		Patterns:          patterns,
		LineComment:       lineComment,
		BlockCommentOpen:  blockOpen,
		BlockCommentClose: blockClose,
		HighlightNumbers:  true,
		HighlightStrings:  true,
		keywords:          make(map[string]Class, len(keywords)),
	}
	for _, kw := range keywords {
		class := Keyword1
		if strings.HasSuffix(kw, "|") {
			kw = kw[:len(kw)-1]
			class = Keyword2
		}
		if kw == "" {
			continue
		}
		if _, ok := l.keywords[kw]; !ok {
			l.ordered = append(l.ordered, kw)
		}
		l.keywords[kw] = class
	}
	sort.SliceStable(l.ordered, func(i, j int) bool {
		return len(l.ordered[i]) > len(l.ordered[j])
	})
	return l
}

// Keyword returns the class for an exact keyword, if any.
func (l *Language) Keyword(word string) (Class, bool) {
	c, ok := l.keywords[word]
	return c, ok
}

// Detect returns the language profile matching filename, or nil.
func Detect(filename string) *Language {
	if filename == "" {
		return nil
	}
	for _, l := range Languages() {
		for _, pat := range l.Patterns {
			if strings.HasPrefix(pat, ".") {
				if strings.HasSuffix(filename, pat) {
					return l
				}
			} else if strings.Contains(filename, pat) {
				return l
			}
		}
	}
	return nil
}

var languages []*Language

// Languages returns the built-in profiles in declaration order.
func Languages() []*Language {
	return languages
}

func init() {
	languages = []*Language{
		newLanguage("C/C++",
			[]string{".c", ".h", ".cpp", ".hpp", ".cc", ".hh", ".cxx", ".hxx"},
			[]string{
				"auto", "break", "case", "const", "continue", "default", "do", "else", "enum", "extern",
				"for", "goto", "if", "register", "return", "sizeof", "static", "struct", "switch",
				"typedef", "union", "volatile", "while", "__asm__", "NULL", "alignas", "alignof",
				"and", "and_eq", "asm", "bitand", "bitor", "class", "compl", "constexpr",
				"const_cast", "deltype", "delete", "dynamic_cast", "explicit", "export", "false",
				"friend", "inline", "mutable", "using", "namespace", "new", "noexcept", "not",
				"not_eq", "nullptr", "operator", "or", "or_eq", "private", "protected", "public",
				"reinterpret_cast", "static_assert", "static_cast", "template", "this",
				"thread_local", "throw", "true", "try", "typeid", "typename", "virtual",
				"xor", "xor_eq", "#define", "#include", "#if", "ifdef", "#ifndef",
				"#endif", "#error", "#warning", "#pragma",

				"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
				"void|", "short|", "auto|", "bool|",
			},
			"//", "/*", "*/"),
		newLanguage("Golang",
			[]string{".go"},
			[]string{
				"if", "else", "switch", "case", "func", "then", "for", "var", "type", "interface", "const", "range",
				"return", "struct", "default", "iota", "nil", "package", "import", "map", "break", "continue",

				"int|", "int8|", "int16|", "int32|", "int64|", "uint|", "uint8|", "uint16|", "uint32|", "uint64|",
				"float32|", "float64|", "byte|", "rune|", "bool|", "string|", "complex64|", "complex128|",
				"any|", "error|", "comparable|",
			},
			"//", "/*", "*/"),
		newLanguage("Python",
			[]string{".py", "pyi", ".xpy", "pyx", ".pyw", ".ipynb"},
			[]string{
				"and", "as", "assert", "break", "class", "continue", "def", "del", "elif",
				"else", "except", "exec", "finally", "for", "from", "global", "if", "import",
				"in", "is", "lambda", "not", "or", "pass", "print", "raise", "return", "try",
				"while", "with", "yield", "async", "await", "nonlocal", "range", "xrange",
				"reduce", "map", "filter", "all", "any", "sum", "dir", "abs", "breakpoint",
				"compile", "delattr", "divmod", "format", "eval", "getattr", "hasattr",
				"hash", "help", "id", "input", "isinstance", "issubclass", "len", "locals",
				"max", "min", "next", "open", "pow", "repr", "reversed", "round", "setattr",
				"slice", "sorted", "super", "vars", "zip", "__import__", "reload", "raw_input",
				"execfile", "file", "cmp", "basestring",

				"buffer|", "bytearray|", "bytes|", "complex|", "float|", "frozenset|", "int|",
				"list|", "long|", "None|", "set|", "str|", "chr|", "tuple|", "bool|", "False|",
				"True|", "type|", "unicode|", "dict|", "ascii|", "bin|", "callable|",
				"classmethod|", "enumerate|", "hex|", "oct|", "ord|", "iter|", "memoryview|",
				"object|", "property|", "staticmethod|", "unichr|",
			},
			"#", `"""`, `"""`),
		newLanguage("Rust",
			[]string{".rs"},
			[]string{
				"as", "async", "await", "const", "crate", "dyn", "enum", "extern", "fn", "impl", "let",
				"mod", "move", "mut", "pub", "ref", "Self", "static", "struct", "super", "trait", "type",
				"union", "unsafe", "use", "where", "break", "continue", "else", "for", "if", "in", "loop",
				"match", "return", "while",

				"i8|", "i16|", "i32|", "i64|", "i128|", "isize|", "u8|", "u16|", "u32|", "u64|", "u128|", "usize|",
				"f32|", "f64|", "bool|", "char|", "Box|", "Option|", "Some|", "None|", "Result|", "Ok|", "Err|",
				"String|", "Vec|", "self|", "true|", "false|",
			},
			"//", "/*", "*/"),
	}
}
