package token_test

import (
	"errors"
	"testing"

	"mpass/internal/token"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		ch   rune
		want token.Kind
	}{
		{'w', token.LowercaseWord},
		{'W', token.UppercaseWord},
		{'i', token.PropercaseWord},
		{'r', token.RandomCapitalWord},
		{'a', token.LowercaseLetter},
		{'A', token.UppercaseLetter},
		{'x', token.AlphaNumChar},
		{'z', token.AnyChar},
		{'#', token.Digit},
		{'$', token.Symbol},
		{' ', token.Space},
		{'?', token.Shuffle},
	}
	for _, tc := range cases {
		got, err := token.Classify(tc.ch)
		if err != nil {
			t.Fatalf("Classify(%q) unexpected error: %v", tc.ch, err)
		}
		if got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.ch, got, tc.want)
		}
	}
}

func TestClassifyRejects(t *testing.T) {
	for _, ch := range []rune{'I', 'R', 'X', 'Z', 'b', '0', '!', '\t', '\n', 'é', '語'} {
		k, err := token.Classify(ch)
		if err == nil {
			t.Fatalf("Classify(%q) = %v, want error", ch, k)
		}
		if k != token.Invalid {
			t.Errorf("Classify(%q) kind = %v, want Invalid", ch, k)
		}
		var ute *token.UnrecognizedTokenError
		if !errors.As(err, &ute) {
			t.Fatalf("Classify(%q) error type %T", ch, err)
		}
		if ute.Char != ch {
			t.Errorf("error carries %q, want %q", ute.Char, ch)
		}
		if token.IsAllowed(ch) {
			t.Errorf("IsAllowed(%q) = true", ch)
		}
	}
}

func TestAlphabetAllowed(t *testing.T) {
	for _, ch := range token.Alphabet {
		if !token.IsAllowed(ch) {
			t.Errorf("IsAllowed(%q) = false", ch)
		}
	}
}
