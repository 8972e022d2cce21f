package specifier

import (
	"strings"
	"sync/atomic"

	"mpass/internal/deflists"
	"mpass/internal/rtg"
	"mpass/internal/token"
)

// Specifier holds a generator table and the currently compiled spec string.
// Generate and Recompile may be called concurrently.
type Specifier struct {
	table *Table
	src   rtg.Source
	prog  atomic.Pointer[program]
}

// Option configures a Specifier.
type Option func(*Specifier)

// WithSource sets the randomness source. The default is rtg.Default.
func WithSource(src rtg.Source) Option {
	return func(s *Specifier) {
		if src != nil {
			s.src = src
		}
	}
}

// Compile builds a table from words and symbols and compiles spec against it.
// Errors are ErrEmptyWordList, ErrEmptySymbolList or *SyntaxError.
func Compile(spec string, words, symbols []string, opts ...Option) (*Specifier, error) {
	table, err := BuildTable(words, symbols)
	if err != nil {
		return nil, err
	}
	return CompileWithTable(spec, table, opts...)
}

// CompileDefault compiles spec against the built-in word and symbol lists.
func CompileDefault(spec string, opts ...Option) (*Specifier, error) {
	return Compile(spec, deflists.Words(), deflists.Symbols(), opts...)
}

// CompileWithTable compiles spec against an existing table.
func CompileWithTable(spec string, table *Table, opts ...Option) (*Specifier, error) {
	p, err := tokenize(spec, table)
	if err != nil {
		return nil, err
	}
	s := &Specifier{table: table, src: rtg.Default}
	for _, opt := range opts {
		opt(s)
	}
	s.prog.Store(p)
	return s, nil
}

// Recompile replaces the active spec string, reusing the existing table.
// On failure the previous program stays active and a *SyntaxError is returned.
func (s *Specifier) Recompile(spec string) error {
	p, err := tokenize(spec, s.table)
	if err != nil {
		return err
	}
	s.prog.Store(p)
	return nil
}

// Table returns the generator table shared by every compiled program.
func (s *Specifier) Table() *Table { return s.table }

// Spec returns the active spec string.
func (s *Specifier) Spec() string { return s.prog.Load().spec }

// Shuffle reports whether the active spec contains a shuffle marker.
func (s *Specifier) Shuffle() bool { return s.prog.Load().shuffle }

// Len returns the number of producing positions.
func (s *Specifier) Len() int { return len(s.prog.Load().gens) }

// Tokens returns the classified characters of the active spec, including
// shuffle markers.
func (s *Specifier) Tokens() []token.Token {
	p := s.prog.Load()
	out := make([]token.Token, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// String lists the generators of the active spec, e.g. "Propercase(500) RTG(1)".
func (s *Specifier) String() string {
	p := s.prog.Load()
	parts := make([]string, len(p.gens))
	for i, g := range p.gens {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}
