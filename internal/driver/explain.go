package driver

import (
	"context"

	"mpass/internal/diag"
	"mpass/internal/rtg"
	"mpass/internal/source"
	"mpass/internal/specifier"
	"mpass/internal/token"
	"mpass/internal/trace"
)

// ExplainItem describes one character of a compiled spec.
type ExplainItem struct {
	Index      int
	Char       rune
	Kind       token.Kind
	Shape      string   // see Shape
	Generator  string   // "Lowercase(500)"; empty for '?'
	Candidates int      // distinct candidates
	Examples   []string // up to three candidates
	// Bits is log2(Candidates); RandomCap adds the capital position, which
	// depends on the drawn word and is not counted.
	Bits float64
}

type Explanation struct {
	Spec    string
	Shuffle bool
	Items   []ExplainItem
	// TotalBits sums Bits over producing positions, ignoring the shuffle.
	TotalBits float64
}

// Explain compiles spec and describes each position.
func Explain(ctx context.Context, spec string, opts ListOptions, maxDiagnostics int) (*Explanation, *diag.Bag, error) {
	ctx, span := trace.Start(ctx, trace.ScopePhase, "explain")
	defer span.End("")

	bag := diag.NewBag(max(maxDiagnostics, 1))
	lists, err := ResolveLists(ctx, opts, bag, nil)
	if err != nil {
		return nil, bag, err
	}
	s, err := specifier.Compile(spec, lists.Words, lists.Symbols)
	if err != nil {
		reportCompileError(bag, source.NewText("", spec), err)
		return nil, bag, err
	}

	ex := &Explanation{Spec: s.Spec(), Shuffle: s.Shuffle()}
	for _, tok := range s.Tokens() {
		item := ExplainItem{Index: tok.Index, Char: tok.Char, Kind: tok.Kind, Shape: Shape(tok.Kind)}
		if tok.Producing() {
			g := s.Table().Lookup(tok.Kind)
			item.Generator = g.String()
			item.Candidates = DistinctCandidates(g)
			item.Examples = examples(g)
			item.Bits = GeneratorBits(g)
		}
		ex.Items = append(ex.Items, item)
	}
	ex.TotalBits = SpecBits(s)
	return ex, bag, nil
}

func examples(g *rtg.Generator) []string {
	c := g.Candidates()
	return c[:min(3, len(c))]
}
