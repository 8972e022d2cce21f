package token

import "fmt"

// UnrecognizedTokenError is returned by Classify for characters outside Alphabet.
type UnrecognizedTokenError struct {
	Char rune
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unrecognized token %q", e.Char)
}

// Classify maps a single spec character to its Kind.
func Classify(ch rune) (Kind, error) {
	switch ch {
	case 'w':
		return LowercaseWord, nil
	case 'W':
		return UppercaseWord, nil
	case 'i':
		return PropercaseWord, nil
	case 'r':
		return RandomCapitalWord, nil
	case 'a':
		return LowercaseLetter, nil
	case 'A':
		return UppercaseLetter, nil
	case 'x':
		return AlphaNumChar, nil
	case 'z':
		return AnyChar, nil
	case '#':
		return Digit, nil
	case '$':
		return Symbol, nil
	case ' ':
		return Space, nil
	case '?':
		return Shuffle, nil
	default:
		return Invalid, &UnrecognizedTokenError{Char: ch}
	}
}

// IsAllowed reports whether ch belongs to Alphabet.
func IsAllowed(ch rune) bool {
	_, err := Classify(ch)
	return err == nil
}
