package specifier

import (
	"errors"
	"fmt"

	"mpass/internal/token"
)

var (
	// ErrEmptyWordList is returned when compiling against an empty word list.
	ErrEmptyWordList = errors.New("no words available")
	// ErrEmptySymbolList is returned when compiling against an empty symbol list.
	ErrEmptySymbolList = errors.New("no symbols available")
)

// Reason classifies a SyntaxError.
type Reason uint8

const (
	// ReasonUnrecognized means a character outside the spec alphabet.
	ReasonUnrecognized Reason = iota + 1
	// ReasonEmpty means the spec has no producing characters.
	ReasonEmpty
)

func (r Reason) String() string {
	switch r {
	case ReasonUnrecognized:
		return "unrecognized character"
	case ReasonEmpty:
		return "nothing to generate"
	default:
		return "unknown"
	}
}

// SyntaxError reports an invalid spec string. Offset is a character index:
// the first disallowed character, or the spec length for ReasonEmpty.
type SyntaxError struct {
	Offset int
	Char   rune // zero for ReasonEmpty
	Reason Reason
}

func (e *SyntaxError) Error() string {
	if e.Reason == ReasonUnrecognized {
		return fmt.Sprintf("invalid spec at offset %d: %s %q", e.Offset, e.Reason, e.Char)
	}
	return fmt.Sprintf("invalid spec at offset %d: %s", e.Offset, e.Reason)
}

// Unwrap exposes the classifier error for unrecognized characters.
func (e *SyntaxError) Unwrap() error {
	if e.Reason == ReasonUnrecognized {
		return &token.UnrecognizedTokenError{Char: e.Char}
	}
	return nil
}

// Offset extracts the character offset from err if it is a *SyntaxError.
func Offset(err error) (int, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Offset, true
	}
	return 0, false
}
