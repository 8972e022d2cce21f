package token

import "fmt"

// Token represents a single classified spec character with its location.
type Token struct {
	Kind   Kind
	Index  int    // позиция в символах (runes)
	Offset uint32 // позиция в байтах
	Char   rune
}

// Producing reports whether the token contributes output.
func (t Token) Producing() bool { return t.Kind.Producing() }

// IsShuffle reports whether the token is the shuffle marker.
func (t Token) IsShuffle() bool { return t.Kind == Shuffle }

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Char, t.Index)
}
