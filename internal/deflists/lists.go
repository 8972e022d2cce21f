// Package deflists provides the built-in word and character lists used when
// the caller supplies none.
//
// Every function returns a fresh slice; callers may modify it freely.
package deflists

// Words returns the default word list: short common English nouns meant to be
// easy to read aloud and spell.
func Words() []string {
	return clone(simpletonWords)
}

// Symbols returns easy-to-recognise ASCII symbols.
func Symbols() []string {
	return []string{"!", "@", "#", "$", "%", "&", "*", "+", "-"}
}

// Digits returns "0" through "9".
func Digits() []string {
	return charRange('0', '9')
}

// Lowercase returns "a" through "z".
func Lowercase() []string {
	return charRange('a', 'z')
}

// Uppercase returns "A" through "Z".
func Uppercase() []string {
	return charRange('A', 'Z')
}

// Alphabet returns the lowercase letters followed by the uppercase letters.
func Alphabet() []string {
	return append(Lowercase(), Uppercase()...)
}

// AlphaNum returns Alphabet followed by Digits.
func AlphaNum() []string {
	return append(Alphabet(), Digits()...)
}

func charRange(lo, hi byte) []string {
	out := make([]string, 0, int(hi-lo)+1)
	for c := lo; c <= hi; c++ {
		out = append(out, string(rune(c)))
	}
	return out
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
