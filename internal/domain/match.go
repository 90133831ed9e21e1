package domain

import "strings"

// FoldASCII lower-cases A-Z and leaves every other byte untouched.
// Unlike strings.ToLower it never rewrites non-ASCII runes.
func FoldASCII(s string) string {
	var b []byte

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			continue
		}

		if b == nil {
			b = []byte(s)
		}

		b[i] = c + ('a' - 'A')
	}

	if b == nil {
		return s
	}

	return string(b)
}

// EqualFoldASCII reports whether a and b match under ASCII case folding.
func EqualFoldASCII(a, b string) bool {
	return FoldASCII(a) == FoldASCII(b)
}

// ContainsFoldASCII reports whether needle occurs in haystack under ASCII
// case folding. An empty needle is contained in everything.
func ContainsFoldASCII(haystack, needle string) bool {
	return strings.Contains(FoldASCII(haystack), FoldASCII(needle))
}
