package syntax

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"main.go", "Golang"},
		{"foo.c", "C/C++"},
		{"foo.hpp", "C/C++"},
		{"script.py", "Python"},
		{"lib.rs", "Rust"},
		{"README.md", ""},
		{"", ""},
		// Substring patterns match anywhere in the name.
		{"types.pyx", "Python"},
		// Suffix patterns require the suffix, not a substring.
		{"go.sum", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			l := Detect(tt.filename)
			got := ""
			if l != nil {
				got = l.Name
			}
			if got != tt.want {
				t.Fatalf("Detect(%q)=%q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetect_FirstDeclaredWins(t *testing.T) {
	// ".c" appears only in the C profile, declared first; a name matching
	// multiple patterns resolves to the earliest declaration.
	if l := Detect("pyx.c"); l == nil || l.Name != "C/C++" {
		t.Fatalf("Detect(pyx.c)=%v, want C/C++", l)
	}
}

func TestKeywordClasses(t *testing.T) {
	goLang := mustLang(t, "Golang")

	if c, ok := goLang.Keyword("func"); !ok || c != Keyword1 {
		t.Fatalf("func => (%v,%v), want primary keyword", c, ok)
	}
	if c, ok := goLang.Keyword("error"); !ok || c != Keyword2 {
		t.Fatalf("error => (%v,%v), want secondary keyword", c, ok)
	}
	if _, ok := goLang.Keyword("nope"); ok {
		t.Fatalf("unexpected keyword match")
	}
}
