package specifier

import (
	"slices"
	"strings"

	"mpass/internal/rtg"
)

// Generate produces one passphrase from the active spec.
func (s *Specifier) Generate() string {
	return s.GenerateWith(s.src)
}

// GenerateWith is Generate with an explicit randomness source, for callers
// that keep one source per goroutine.
func (s *Specifier) GenerateWith(src rtg.Source) string {
	p := s.prog.Load()
	order := p.gens
	if p.shuffle {
		order = slices.Clone(p.gens)
		shuffleSlots(order, src)
	}

	var sb strings.Builder
	for _, g := range order {
		sb.WriteString(g.Produce(src))
	}
	return sb.String()
}

// shuffleSlots is a Fisher–Yates permutation of the compiled positions.
func shuffleSlots(gens []*rtg.Generator, src rtg.Source) {
	for i := len(gens) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		gens[i], gens[j] = gens[j], gens[i]
	}
}
