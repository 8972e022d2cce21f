package specifier

import (
	"fmt"
	"slices"

	"mpass/internal/deflists"
	"mpass/internal/rtg"
	"mpass/internal/token"
)

// Table maps every token kind to its generator. It is immutable after
// BuildTable returns and may be shared freely.
type Table struct {
	gens [token.NumKinds]*rtg.Generator
}

type tableEntry struct {
	kind  token.Kind
	build func() (*rtg.Generator, error)
}

// BuildTable constructs one generator per token kind from the given lists.
// The word list is checked before the symbol list.
func BuildTable(words, symbols []string) (*Table, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	if len(symbols) == 0 {
		return nil, ErrEmptySymbolList
	}

	alphaNum := deflists.AlphaNum()
	anyChar := slices.Concat(alphaNum, symbols)

	entries := []tableEntry{
		{token.LowercaseWord, func() (*rtg.Generator, error) { return rtg.NewCaseDerived(rtg.Lowercase, words) }},
		{token.UppercaseWord, func() (*rtg.Generator, error) { return rtg.NewCaseDerived(rtg.Uppercase, words) }},
		{token.PropercaseWord, func() (*rtg.Generator, error) { return rtg.NewCaseDerived(rtg.Propercase, words) }},
		{token.RandomCapitalWord, func() (*rtg.Generator, error) { return rtg.NewRandomCap(words) }},
		{token.Symbol, func() (*rtg.Generator, error) { return rtg.NewUniform(symbols) }},
		{token.Space, func() (*rtg.Generator, error) { return rtg.NewUniform([]string{" "}) }},
		{token.Digit, func() (*rtg.Generator, error) { return rtg.NewUniform(deflists.Digits()) }},
		{token.LowercaseLetter, func() (*rtg.Generator, error) { return rtg.NewUniform(deflists.Lowercase()) }},
		{token.UppercaseLetter, func() (*rtg.Generator, error) { return rtg.NewUniform(deflists.Uppercase()) }},
		{token.AlphaNumChar, func() (*rtg.Generator, error) { return rtg.NewUniform(alphaNum) }},
		{token.AnyChar, func() (*rtg.Generator, error) { return rtg.NewUniform(anyChar) }},
		// заглушка: Shuffle ничего не производит, но таблица должна быть полной
		{token.Shuffle, func() (*rtg.Generator, error) { return rtg.NewPlaceholder(), nil }},
	}

	t := &Table{}
	for _, e := range entries {
		g, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("build %s generator: %w", e.kind, err)
		}
		t.gens[e.kind] = g
	}
	return t, nil
}

// Lookup returns the generator for k, or nil for Invalid.
func (t *Table) Lookup(k token.Kind) *rtg.Generator {
	if !k.Valid() {
		return nil
	}
	return t.gens[k]
}

// Candidates returns a copy of the candidate list behind k.
func (t *Table) Candidates(k token.Kind) []string {
	g := t.Lookup(k)
	if g == nil {
		return nil
	}
	return g.Candidates()
}
