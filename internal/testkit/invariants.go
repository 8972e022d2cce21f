// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"
	"unicode/utf8"

	"mpass/internal/source"
	"mpass/internal/token"
)

// CheckTokenInvariants verifies a lexed token stream against its text:
//  1. one token per character, in order, Index = 0, 1, 2, ...
//  2. Offset is the byte offset of that character and Char the character itself
//  3. Invalid tokens appear exactly where the character is outside the alphabet
func CheckTokenInvariants(text *source.Text, toks []token.Token) error {
	if text == nil {
		return fmt.Errorf("nil text")
	}
	if want := text.Len(); len(toks) != want {
		return fmt.Errorf("token count %d, want %d characters", len(toks), want)
	}
	i := 0
	for off, ch := range text.Content {
		tok := toks[i]
		if tok.Index != i {
			return fmt.Errorf("token %d has index %d", i, tok.Index)
		}
		if int(tok.Offset) != off {
			return fmt.Errorf("token %d at byte %d, want %d", i, tok.Offset, off)
		}
		if ch == utf8.RuneError {
			// невалидный UTF-8 декодируется в U+FFFD
			if tok.Kind != token.Invalid {
				return fmt.Errorf("token %d: invalid UTF-8 classified as %s", i, tok.Kind)
			}
		} else if tok.Char != ch {
			return fmt.Errorf("token %d has char %q, want %q", i, tok.Char, ch)
		}
		if allowed := token.IsAllowed(ch); allowed == (tok.Kind == token.Invalid) {
			return fmt.Errorf("token %d (%q): kind %s disagrees with alphabet", i, ch, tok.Kind)
		}
		i++
	}
	return nil
}

// CheckSpanCovers verifies that SpanAt partitions the text: consecutive
// character spans touch and together cover every byte.
func CheckSpanCovers(text *source.Text) error {
	var prev source.Span
	n := text.Len()
	for i := range n {
		sp := text.SpanAt(i)
		if sp.Empty() {
			return fmt.Errorf("character %d has empty span", i)
		}
		if i > 0 && sp.Start != prev.End {
			return fmt.Errorf("gap between character %d (%v) and %d (%v)", i-1, prev, i, sp)
		}
		prev = sp
	}
	if n > 0 && int(prev.End) != len(text.Content) {
		return fmt.Errorf("spans end at %d, content has %d bytes", prev.End, len(text.Content))
	}
	return nil
}
