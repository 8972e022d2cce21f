package rtg

import "strings"

// Только ASCII: остальные символы остаются как есть.

func upperASCII(r rune) rune {
	if 'a' <= r && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func lowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// ToLowerASCII lowercases ASCII letters in s.
func ToLowerASCII(s string) string { return strings.Map(lowerASCII, s) }

// ToUpperASCII uppercases ASCII letters in s.
func ToUpperASCII(s string) string { return strings.Map(upperASCII, s) }

// ToProperASCII uppercases the first character of s and leaves the rest as stored.
func ToProperASCII(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}
