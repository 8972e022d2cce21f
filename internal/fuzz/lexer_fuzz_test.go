package fuzztests

import (
	"testing"

	"mpass/internal/diag"
	"mpass/internal/lexer"
	"mpass/internal/source"
	"mpass/internal/testkit"
	"mpass/internal/token"
)

const maxFuzzInput = 1 << 12

func clampInput(s string) string {
	if len(s) > maxFuzzInput {
		return s[:maxFuzzInput]
	}
	return s
}

func FuzzLexerTokens(f *testing.F) {
	addSpecSeeds(f)
	f.Fuzz(func(t *testing.T, spec string) {
		spec = clampInput(spec)
		text := source.NewText("fuzz", spec)
		if err := testkit.CheckSpanCovers(text); err != nil {
			t.Fatalf("spans of %q: %v", spec, err)
		}

		bag := diag.NewBag(maxFuzzInput)
		lx := lexer.New(text, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		toks := lx.All()
		if err := testkit.CheckTokenInvariants(text, toks); err != nil {
			t.Fatalf("tokens of %q: %v", spec, err)
		}

		invalid := 0
		for _, tok := range toks {
			if tok.Kind == token.Invalid {
				invalid++
			}
		}
		if bag.Len() != invalid {
			t.Fatalf("%q: %d diagnostics for %d invalid tokens", spec, bag.Len(), invalid)
		}
	})
}
