package token

// Kind represents the category of a spec-string token.
type Kind uint8

const (
	// Invalid indicates an erroneous token. Never returned by Classify.
	Invalid Kind = iota

	// LowercaseWord represents a word from the list in lowercase.
	LowercaseWord // w
	// UppercaseWord represents a word from the list in uppercase.
	UppercaseWord // W
	// PropercaseWord represents a word with its first letter capitalised.
	PropercaseWord // i
	// RandomCapitalWord represents a lowercase word with one random letter capitalised.
	RandomCapitalWord // r
	// LowercaseLetter represents a single ASCII letter a-z.
	LowercaseLetter // a
	// UppercaseLetter represents a single ASCII letter A-Z.
	UppercaseLetter // A
	// AlphaNumChar represents a single letter (either case) or digit.
	AlphaNumChar // x
	// AnyChar represents a single letter, digit or symbol.
	AnyChar // z
	// Digit represents a single decimal digit.
	Digit // #
	// Symbol represents one entry from the symbol list.
	Symbol // $
	// Space represents a literal space.
	Space // ' '
	// Shuffle marks the spec for slot reordering; produces nothing.
	Shuffle // ?

	numKinds
)

// NumKinds is the number of kinds including Invalid; usable as an array bound.
const NumKinds = int(numKinds)

// Alphabet is the exact set of characters accepted in a spec string.
const Alphabet = "wWaAirxz#$ ?"

var kindNames = [...]string{
	Invalid:           "Invalid",
	LowercaseWord:     "LowercaseWord",
	UppercaseWord:     "UppercaseWord",
	PropercaseWord:    "PropercaseWord",
	RandomCapitalWord: "RandomCapitalWord",
	LowercaseLetter:   "LowercaseLetter",
	UppercaseLetter:   "UppercaseLetter",
	AlphaNumChar:      "AlphaNumChar",
	AnyChar:           "AnyChar",
	Digit:             "Digit",
	Symbol:            "Symbol",
	Space:             "Space",
	Shuffle:           "Shuffle",
}

var kindChars = [...]rune{
	LowercaseWord:     'w',
	UppercaseWord:     'W',
	PropercaseWord:    'i',
	RandomCapitalWord: 'r',
	LowercaseLetter:   'a',
	UppercaseLetter:   'A',
	AlphaNumChar:      'x',
	AnyChar:           'z',
	Digit:             '#',
	Symbol:            '$',
	Space:             ' ',
	Shuffle:           '?',
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Char returns the spec character that selects k, or 0 for Invalid.
func (k Kind) Char() rune {
	if k == Invalid || int(k) >= len(kindChars) {
		return 0
	}
	return kindChars[k]
}

// Valid reports whether k is one of the classifiable kinds.
func (k Kind) Valid() bool {
	return k > Invalid && k < numKinds
}

// Producing reports whether the kind contributes output to a passphrase.
func (k Kind) Producing() bool {
	return k.Valid() && k != Shuffle
}

// SingleChar reports whether each occurrence contributes exactly one character.
// Symbol is excluded: symbol list entries are not required to be one character long.
func (k Kind) SingleChar() bool {
	switch k {
	case LowercaseLetter, UppercaseLetter, AlphaNumChar, Digit, Space:
		return true
	default:
		return false
	}
}

// IsWord reports whether the kind draws from the word list.
func (k Kind) IsWord() bool {
	switch k {
	case LowercaseWord, UppercaseWord, PropercaseWord, RandomCapitalWord:
		return true
	default:
		return false
	}
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, NumKinds-1)
	for k := Invalid + 1; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}
