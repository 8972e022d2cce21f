package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mpass/internal/specifier"
	"mpass/internal/token"
)

func TestBitsCountDistinctCandidates(t *testing.T) {
	words := []string{"Apple", "apple", "pear", "PEAR"}
	s, err := specifier.Compile("w", words, []string{"!"})
	require.NoError(t, err)

	for _, k := range []token.Kind{token.LowercaseWord, token.UppercaseWord, token.RandomCapitalWord} {
		g := s.Table().Lookup(k)
		assert.Equal(t, 4, g.Len(), k.String())
		assert.Equal(t, 2, DistinctCandidates(g), k.String())
		assert.InDelta(t, 1.0, GeneratorBits(g), 1e-9, k.String())
	}
	// Propercase keeps the tail as stored: Apple, Apple, Pear, PEAR
	assert.Equal(t, 3, DistinctCandidates(s.Table().Lookup(token.PropercaseWord)))

	assert.InDelta(t, 1.0, SpecBits(s), 1e-9)
	require.NoError(t, s.Recompile("w?w #"))
	// space carries no entropy
	assert.InDelta(t, 2+GeneratorBits(s.Table().Lookup(token.Digit)), SpecBits(s), 1e-9)
	assert.Zero(t, GeneratorBits(s.Table().Lookup(token.Space)))
}

func TestShape(t *testing.T) {
	cases := map[token.Kind]string{
		token.LowercaseWord:     "word",
		token.RandomCapitalWord: "word",
		token.Digit:             "char",
		token.Space:             "char",
		token.AnyChar:           "entry",
		token.Symbol:            "entry",
		token.Shuffle:           "",
	}
	for k, want := range cases {
		assert.Equal(t, want, Shape(k), k.String())
	}
}

func TestExplainUsesDistinctCandidates(t *testing.T) {
	path := writeWords(t, "Apple\napple\n")
	ex, _, err := Explain(t.Context(), "w#", ListOptions{WordsPath: path}, 10)
	require.NoError(t, err)
	require.Len(t, ex.Items, 2)
	assert.Equal(t, 1, ex.Items[0].Candidates)
	assert.Zero(t, ex.Items[0].Bits)
	assert.Equal(t, "word", ex.Items[0].Shape)
	assert.Equal(t, "char", ex.Items[1].Shape)
	assert.InDelta(t, ex.Items[1].Bits, ex.TotalBits, 1e-9)
}
