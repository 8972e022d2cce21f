package driver

import (
	"context"
	"errors"
	"fmt"

	"mpass/internal/deflists"
	"mpass/internal/diag"
	"mpass/internal/observ"
	"mpass/internal/source"
	"mpass/internal/trace"
	"mpass/internal/wordlist"
)

// ListOptions selects the word and symbol lists for a command.
type ListOptions struct {
	WordsPath string   // empty: built-in list
	Symbols   []string // nil: built-in symbols; an explicit empty slice stays empty
	Cache     *wordlist.Cache
}

// Lists are the resolved inputs of specifier.BuildTable.
type Lists struct {
	Words     []string
	Symbols   []string
	WordsPath string
	CacheHit  bool
}

// ResolveLists loads the configured lists. Normalization notes become
// LST warnings on bag; a failing cache write becomes an IO warning.
func ResolveLists(ctx context.Context, opts ListOptions, bag *diag.Bag, timer *observ.Timer) (*Lists, error) {
	_, span := trace.Start(ctx, trace.ScopePhase, "load-lists")
	defer span.End("")
	idx := timer.Begin("load-lists")
	defer timer.End(idx, "")

	out := &Lists{Words: deflists.Words(), Symbols: deflists.Symbols()}
	if opts.Symbols != nil {
		out.Symbols = append([]string(nil), opts.Symbols...)
	}
	if opts.WordsPath == "" {
		span.WithExtra("words", "builtin")
		return out, nil
	}

	l, hit, err := wordlist.LoadCached(opts.Cache, opts.WordsPath)
	switch {
	case err == nil:
	case errors.Is(err, wordlist.ErrCacheWrite) && l != nil:
		diag.ReportWarning(diag.BagReporter{Bag: bag}, diag.IOLoadFileError, source.Span{}, -1, err.Error())
	default:
		diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError, source.Span{}, -1, err.Error())
		return nil, err
	}

	out.Words = l.Entries
	out.WordsPath = l.Path
	out.CacheHit = hit
	reportListNotes(bag, l)
	span.WithExtra("words", fmt.Sprint(len(l.Entries))).WithExtra("cache_hit", fmt.Sprint(hit))
	return out, nil
}

func reportListNotes(bag *diag.Bag, l *wordlist.List) {
	groups := []struct {
		kind wordlist.NoteKind
		code diag.Code
		what string
	}{
		{wordlist.NoteDuplicate, diag.ListDuplicate, "duplicate entries dropped"},
		{wordlist.NoteNonASCII, diag.ListNonASCII, "non-ASCII entries kept; case transforms leave them unchanged"},
	}
	for _, g := range groups {
		count := 0
		for _, n := range l.Notes {
			if n.Kind == g.kind {
				count++
			}
		}
		if count == 0 {
			continue
		}
		d := diag.New(diag.SevWarning, g.code, source.Span{}, -1,
			fmt.Sprintf("%s: %d %s", l.Path, count, g.what))
		for _, n := range l.Notes {
			if n.Kind == g.kind {
				d = d.WithNote(source.Span{}, fmt.Sprintf("line %d: %s", n.Line, n.Entry))
			}
		}
		bag.Add(d)
	}
}
