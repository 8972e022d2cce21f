package specifier

import (
	"regexp"
	"strings"
	"sync"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mpass/internal/rtg"
	"mpass/internal/token"
)

var (
	testWords   = []string{"medium", "test", "phrase"}
	testSymbols = []string{"!"}
)

func TestCompileErrors(t *testing.T) {
	_, err := Compile("w", nil, nil)
	require.ErrorIs(t, err, ErrEmptyWordList)

	_, err = Compile("w", nil, []string{"!"})
	require.ErrorIs(t, err, ErrEmptyWordList)

	_, err = Compile("w", []string{"x"}, nil)
	require.ErrorIs(t, err, ErrEmptySymbolList)

	_, err = Compile("w?b", testWords, testSymbols)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Offset)
	assert.Equal(t, ReasonUnrecognized, se.Reason)

	_, err = Compile("??", testWords, testSymbols)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ReasonEmpty, se.Reason)
	assert.Equal(t, 2, se.Offset)

	_, err = Compile("", testWords, testSymbols)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 0, se.Offset)
}

func TestCompileNonASCIIOffset(t *testing.T) {
	_, err := Compile("ww語w", testWords, testSymbols)
	off, ok := Offset(err)
	require.True(t, ok)
	assert.Equal(t, 2, off, "offset counts characters, not bytes")
}

func TestCompileStructure(t *testing.T) {
	s, err := Compile("i w w ###$", testWords, testSymbols)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Len())
	assert.False(t, s.Shuffle())
	assert.Equal(t, "i w w ###$", s.Spec())
	assert.Equal(t, "Propercase(3) RTG(1) Lowercase(3) RTG(1) Lowercase(3) RTG(1) RTG(10) RTG(10) RTG(10) RTG(1)", s.String())

	s, err = Compile("?a?#", testWords, testSymbols)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len(), "shuffle markers produce no slots")
	assert.True(t, s.Shuffle())
	assert.Len(t, s.Tokens(), 4)
}

func TestSharedGenerators(t *testing.T) {
	s, err := Compile("www", testWords, testSymbols)
	require.NoError(t, err)
	p := s.prog.Load()
	require.Len(t, p.gens, 3)
	assert.Same(t, p.gens[0], p.gens[1])
	assert.Same(t, p.gens[1], p.gens[2])
	assert.Same(t, s.Table().Lookup(token.LowercaseWord), p.gens[0])
}

func TestGenerateExample(t *testing.T) {
	s, err := Compile("i w w ###$", testWords, testSymbols, WithSource(rtg.NewSeeded(1)))
	require.NoError(t, err)
	re := regexp.MustCompile(`^(Medium|Test|Phrase) (medium|test|phrase) (medium|test|phrase) [0-9]{3}!$`)
	for range 100 {
		out := s.Generate()
		assert.Regexp(t, re, out)
	}
}

func TestGenerateWordCase(t *testing.T) {
	words := []string{"Alpha", "bETA", "gamma"}
	cases := []struct {
		spec  string
		check func(string) bool
	}{
		{"w", func(s string) bool { return s == strings.ToLower(s) }},
		{"W", func(s string) bool { return s == strings.ToUpper(s) }},
		{"i", func(s string) bool {
			return unicode.IsUpper(rune(s[0])) && (s[1:] == "lpha" || s[1:] == "ETA" || s[1:] == "amma")
		}},
	}
	for _, tc := range cases {
		s, err := Compile(tc.spec, words, testSymbols)
		require.NoError(t, err)
		for range 50 {
			out := s.Generate()
			assert.Truef(t, tc.check(out), "spec %q produced %q", tc.spec, out)
		}
	}
}

func TestGenerateSingleCharLength(t *testing.T) {
	s, err := Compile("aA#xz", testWords, testSymbols)
	require.NoError(t, err)
	for range 100 {
		out := s.Generate()
		require.Len(t, out, 5)
		assert.True(t, out[0] >= 'a' && out[0] <= 'z')
		assert.True(t, out[1] >= 'A' && out[1] <= 'Z')
		assert.True(t, out[2] >= '0' && out[2] <= '9')
	}
}

func TestGenerateShuffle(t *testing.T) {
	s, err := Compile("?aaa###", testWords, testSymbols, WithSource(rtg.NewSeeded(3)))
	require.NoError(t, err)
	layouts := map[string]bool{}
	for range 300 {
		out := s.Generate()
		require.Len(t, out, 6)
		var layout strings.Builder
		letters, digits := 0, 0
		for _, r := range out {
			switch {
			case r >= 'a' && r <= 'z':
				letters++
				layout.WriteByte('a')
			case r >= '0' && r <= '9':
				digits++
				layout.WriteByte('#')
			default:
				t.Fatalf("unexpected character %q in %q", r, out)
			}
		}
		require.Equal(t, 3, letters, out)
		require.Equal(t, 3, digits, out)
		layouts[layout.String()] = true
	}
	assert.Greater(t, len(layouts), 1, "shuffle should vary slot order")
}

func TestGenerateWithoutShuffleKeepsOrder(t *testing.T) {
	s, err := Compile("aaa###", testWords, testSymbols)
	require.NoError(t, err)
	re := regexp.MustCompile(`^[a-z]{3}[0-9]{3}$`)
	for range 100 {
		assert.Regexp(t, re, s.Generate())
	}
}

func TestRecompile(t *testing.T) {
	s, err := Compile("w", testWords, testSymbols)
	require.NoError(t, err)
	table := s.Table()
	before := table.Candidates(token.LowercaseWord)

	require.NoError(t, s.Recompile("?##"))
	assert.Equal(t, "?##", s.Spec())
	assert.True(t, s.Shuffle())
	assert.Equal(t, 2, s.Len())
	assert.Same(t, table, s.Table(), "recompile must reuse the table")
	assert.Equal(t, before, s.Table().Candidates(token.LowercaseWord))

	err = s.Recompile("##x!")
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 3, se.Offset)
	assert.Equal(t, "?##", s.Spec(), "failed recompile keeps the previous spec")
	assert.True(t, s.Shuffle())

	require.Error(t, s.Recompile("?"))
	assert.Equal(t, "?##", s.Spec())

	require.NoError(t, s.Recompile("W"))
	assert.False(t, s.Shuffle())
	assert.Contains(t, []string{"MEDIUM", "TEST", "PHRASE"}, s.Generate())
}

func TestConcurrentGenerateAndRecompile(t *testing.T) {
	s, err := Compile("###", testWords, testSymbols)
	require.NoError(t, err)
	digits := regexp.MustCompile(`^[0-9]{3}$`)
	letters := regexp.MustCompile(`^[a-z]{3}$`)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				out := s.Generate()
				if !digits.MatchString(out) && !letters.MatchString(out) {
					t.Errorf("observed mixed program output %q", out)
					return
				}
			}
		}()
	}
	for i := range 200 {
		spec := "###"
		if i%2 == 0 {
			spec = "aaa"
		}
		if err := s.Recompile(spec); err != nil {
			t.Fatalf("Recompile: %v", err)
		}
	}
	wg.Wait()
}

func TestCompileDefault(t *testing.T) {
	s, err := CompileDefault("ii##$")
	require.NoError(t, err)
	out := s.Generate()
	assert.Regexp(t, regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+[0-9]{2}[!@#$%&*+\-]$`), out)
}
