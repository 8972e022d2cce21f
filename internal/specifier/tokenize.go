package specifier

import (
	"mpass/internal/lexer"
	"mpass/internal/rtg"
	"mpass/internal/source"
	"mpass/internal/token"
)

// program is one compiled spec string. Never mutated after tokenize returns.
type program struct {
	spec    string
	tokens  []token.Token
	gens    []*rtg.Generator // только производящие позиции, в порядке spec
	shuffle bool
}

// tokenize compiles spec against table. On error no partial program is returned.
func tokenize(spec string, table *Table) (*program, error) {
	lx := lexer.New(source.NewText("", spec), lexer.Options{})
	p := &program{spec: spec}
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		if tok.Kind == token.Invalid {
			return nil, &SyntaxError{Offset: tok.Index, Char: tok.Char, Reason: ReasonUnrecognized}
		}
		p.tokens = append(p.tokens, tok)
		if tok.IsShuffle() {
			p.shuffle = true
			continue
		}
		p.gens = append(p.gens, table.Lookup(tok.Kind))
	}
	if len(p.gens) == 0 {
		return nil, &SyntaxError{Offset: lx.Pos(), Reason: ReasonEmpty}
	}
	return p, nil
}
