package driver

import (
	"math"

	"mpass/internal/rtg"
	"mpass/internal/specifier"
	"mpass/internal/token"
)

// DistinctCandidates counts the different strings g can produce. Case
// folding may map several list words onto one candidate ("Apple", "apple").
func DistinctCandidates(g *rtg.Generator) int {
	if g == nil {
		return 0
	}
	seen := make(map[string]struct{}, g.Len())
	for _, c := range g.Candidates() {
		seen[c] = struct{}{}
	}
	return len(seen)
}

// GeneratorBits is log2 of the distinct candidates of g; 0 for a single
// candidate or none.
func GeneratorBits(g *rtg.Generator) float64 {
	n := DistinctCandidates(g)
	if n <= 1 {
		return 0
	}
	return math.Log2(float64(n))
}

// SpecBits sums GeneratorBits over the producing positions of s. RandomCap
// capital positions and the shuffle order are not counted.
func SpecBits(s *specifier.Specifier) float64 {
	perKind := make(map[token.Kind]float64)
	total := 0.0
	for _, tok := range s.Tokens() {
		if !tok.Producing() {
			continue
		}
		b, ok := perKind[tok.Kind]
		if !ok {
			b = GeneratorBits(s.Table().Lookup(tok.Kind))
			perKind[tok.Kind] = b
		}
		total += b
	}
	return total
}

// Shape describes what one occurrence of k contributes: "word", "char"
// (exactly one character) or "entry" (a symbol list entry or a character
// that may be one). Empty for the shuffle marker.
func Shape(k token.Kind) string {
	switch {
	case !k.Producing():
		return ""
	case k.IsWord():
		return "word"
	case k.SingleChar():
		return "char"
	default:
		return "entry"
	}
}
