package rtg

import (
	"errors"
	"fmt"
)

// ErrEmptyCandidates is returned when a generator would be built from an empty list.
var ErrEmptyCandidates = errors.New("rtg: empty candidate list")

// Variant tags the concrete production rule of a Generator.
type Variant uint8

const (
	// Uniform picks one candidate verbatim.
	Uniform Variant = iota + 1
	// Lowercase picks from a list lowercased at construction.
	Lowercase
	// Uppercase picks from a list uppercased at construction.
	Uppercase
	// Propercase picks from a list whose first characters were uppercased at construction.
	Propercase
	// RandomCap picks a lowercase word and uppercases one of its characters per call.
	RandomCap
	// Placeholder fills table slots for kinds that never produce output.
	Placeholder
)

func (v Variant) String() string {
	switch v {
	case Uniform:
		return "RTG"
	case Lowercase:
		return "Lowercase"
	case Uppercase:
		return "Uppercase"
	case Propercase:
		return "Propercase"
	case RandomCap:
		return "RandomCap"
	case Placeholder:
		return "Placeholder"
	default:
		return "Unknown"
	}
}

// Generator produces one random token per call.
// The candidate list is never mutated after construction.
type Generator struct {
	variant    Variant
	candidates []string
}

// NewUniform returns a generator picking one of candidates verbatim.
func NewUniform(candidates []string) (*Generator, error) {
	return newGenerator(Uniform, candidates, nil)
}

// NewCaseDerived returns a Lowercase, Uppercase or Propercase generator
// whose candidates are derived from base once.
func NewCaseDerived(v Variant, base []string) (*Generator, error) {
	var transform func(string) string
	switch v {
	case Lowercase:
		transform = ToLowerASCII
	case Uppercase:
		transform = ToUpperASCII
	case Propercase:
		transform = ToProperASCII
	default:
		return nil, fmt.Errorf("rtg: %s is not a case-derived variant", v)
	}
	return newGenerator(v, base, transform)
}

// NewRandomCap returns a generator that capitalises one random character of a
// random word. Words are lowercased at construction.
func NewRandomCap(words []string) (*Generator, error) {
	return newGenerator(RandomCap, words, ToLowerASCII)
}

// NewPlaceholder returns a generator that is never expected to be invoked.
func NewPlaceholder() *Generator {
	return &Generator{variant: Placeholder}
}

func newGenerator(v Variant, list []string, transform func(string) string) (*Generator, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrEmptyCandidates, v)
	}
	candidates := make([]string, len(list))
	for i, s := range list {
		if transform != nil {
			s = transform(s)
		}
		candidates[i] = s
	}
	return &Generator{variant: v, candidates: candidates}, nil
}

// Produce returns one token drawn with src.
func (g *Generator) Produce(src Source) string {
	switch g.variant {
	case Uniform, Lowercase, Uppercase, Propercase:
		return g.pick(src)
	case RandomCap:
		return capitaliseAt(g.pick(src), src)
	case Placeholder:
		return ""
	default:
		panic(fmt.Sprintf("rtg: unknown variant %d", g.variant))
	}
}

func (g *Generator) pick(src Source) string {
	if len(g.candidates) == 0 {
		return ""
	}
	return g.candidates[src.IntN(len(g.candidates))]
}

// capitaliseAt uppercases one uniformly chosen character of word.
func capitaliseAt(word string, src Source) string {
	if word == "" {
		return ""
	}
	runes := []rune(word)
	i := src.IntN(len(runes))
	runes[i] = upperASCII(runes[i])
	return string(runes)
}

// Variant returns the generator's production rule.
func (g *Generator) Variant() Variant { return g.variant }

// Len returns the number of candidates.
func (g *Generator) Len() int { return len(g.candidates) }

// Candidates returns a copy of the candidate list.
func (g *Generator) Candidates() []string {
	out := make([]string, len(g.candidates))
	copy(out, g.candidates)
	return out
}

// String returns a diagnostic tag, e.g. "Lowercase(500)". Not meant to be parsed.
func (g *Generator) String() string {
	return fmt.Sprintf("%s(%d)", g.variant, len(g.candidates))
}
