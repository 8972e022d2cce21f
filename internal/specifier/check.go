package specifier

import (
	"strings"

	"mpass/internal/token"
)

// Check validates spec without compiling it. It is advisory: Compile and
// Recompile perform their own classification and always agree with Check.
//
// The returned error is a *SyntaxError or nil.
func Check(spec string) error {
	index, shuffles := 0, 0
	for _, ch := range spec {
		if !strings.ContainsRune(token.Alphabet, ch) {
			return &SyntaxError{Offset: index, Char: ch, Reason: ReasonUnrecognized}
		}
		if ch == '?' {
			shuffles++
		}
		index++
	}
	if index-shuffles < 1 {
		return &SyntaxError{Offset: index, Reason: ReasonEmpty}
	}
	return nil
}
