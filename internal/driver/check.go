package driver

import (
	"context"
	"errors"
	"fmt"

	"mpass/internal/diag"
	"mpass/internal/lexer"
	"mpass/internal/source"
	"mpass/internal/specifier"
	"mpass/internal/token"
	"mpass/internal/trace"
)

// CheckResult holds everything known about a spec string without compiling it.
type CheckResult struct {
	Text   *source.Text
	Tokens []token.Token // every character, Invalid included
	Bag    *diag.Bag
	// Err is what specifier.Check returned: nil or *specifier.SyntaxError.
	Err error
}

// OK reports whether the spec would compile.
func (r *CheckResult) OK() bool { return r.Err == nil }

// Check validates spec and collects diagnostics for every problem, not only
// the first one.
func Check(ctx context.Context, spec string, maxDiagnostics int) *CheckResult {
	_, span := trace.Start(ctx, trace.ScopePhase, "check")
	defer span.End("")

	text := source.NewText("", spec)
	bag := diag.NewBag(maxDiagnostics)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	lx := lexer.New(text, lexer.Options{Reporter: rep})
	toks := lx.All()

	err := specifier.Check(spec)
	var se *specifier.SyntaxError
	if errors.As(err, &se) && se.Reason == specifier.ReasonEmpty {
		diag.ReportError(rep, diag.SpecEmpty, text.SpanAt(se.Offset), se.Offset,
			fmt.Sprintf("spec produces no output; add at least one of %q", producingChars()))
	}
	reportRepeatedShuffle(rep, text, toks)

	span.WithExtra("diagnostics", fmt.Sprint(bag.Len()))
	bag.Sort()
	return &CheckResult{Text: text, Tokens: toks, Bag: bag, Err: err}
}

// reportRepeatedShuffle flags every '?' after the first; one is enough.
func reportRepeatedShuffle(rep diag.Reporter, text *source.Text, toks []token.Token) {
	first := -1
	for _, tok := range toks {
		if !tok.IsShuffle() {
			continue
		}
		if first < 0 {
			first = tok.Index
			continue
		}
		rep.Report(diag.SpecShuffleRepeated, diag.SevInfo, text.SpanAt(tok.Index), tok.Index,
			"shuffle marker repeated; one '?' already shuffles the whole spec",
			[]diag.Note{{Span: text.SpanAt(first), Msg: fmt.Sprintf("first '?' at offset %d", first)}})
	}
}

func producingChars() string {
	var out []rune
	for _, k := range token.Kinds() {
		if k.Producing() {
			out = append(out, k.Char())
		}
	}
	return string(out)
}

// reportCompileError converts a compile failure into diagnostics on bag.
// Errors that are not spec or list errors are left to the caller.
func reportCompileError(bag *diag.Bag, text *source.Text, err error) bool {
	rep := diag.BagReporter{Bag: bag}
	var se *specifier.SyntaxError
	switch {
	case errors.As(err, &se):
		sp := text.SpanAt(se.Offset)
		if se.Reason == specifier.ReasonEmpty {
			diag.ReportError(rep, diag.SpecEmpty, sp, se.Offset, "spec produces no output")
		} else {
			diag.ReportError(rep, diag.SpecUnknownChar, sp, se.Offset,
				fmt.Sprintf("unrecognized character %q at offset %d; allowed: %q", se.Char, se.Offset, token.Alphabet))
		}
	case errors.Is(err, specifier.ErrEmptyWordList):
		diag.ReportError(rep, diag.ListEmptyWords, source.Span{}, -1, "word list is empty")
	case errors.Is(err, specifier.ErrEmptySymbolList):
		diag.ReportError(rep, diag.ListEmptySymbols, source.Span{}, -1, "symbol list is empty")
	default:
		return false
	}
	return true
}
