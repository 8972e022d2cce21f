package driver

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"mpass/internal/diag"
	"mpass/internal/rtg"
	"mpass/internal/source"
	"mpass/internal/specifier"
	"mpass/internal/trace"
)

// annotationRe matches <<name:spec>>. The spec part accepts any character
// so that typos surface as diagnostics instead of being left in place.
var annotationRe = regexp.MustCompile(`<<([A-Za-z][A-Za-z0-9_-]*):([^<>\n]*)>>`)

// Field is one replaced annotation.
type Field struct {
	Name  string
	Spec  string
	Value string
	Line  int // 1-based
}

type FillResult struct {
	Output string
	Fields []Field
	Bag    *diag.Bag
	// Failed is the annotation spec the diagnostics point into, if any.
	Failed *source.Text
}

type FillRequest struct {
	Lists          ListOptions
	Source         string
	Seed           uint64
	MaxDiagnostics int
}

// Fill replaces every <<name:spec>> annotation in text with a passphrase.
// One Specifier is recompiled per annotation so the table is built once.
// Annotations reusing a name get the value generated for the first one.
// Any invalid annotation fails the whole fill; nothing is partially replaced.
func Fill(ctx context.Context, text string, req FillRequest) (*FillResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopePhase, "fill")
	defer span.End("")

	res := &FillResult{Bag: diag.NewBag(max(req.MaxDiagnostics, 1))}
	matches := annotationRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		res.Output = text
		return res, nil
	}

	src, ok := rtg.ParseSource(req.Source, req.Seed)
	if !ok {
		return res, fmt.Errorf("unknown random source %q (expected: default|crypto|seeded)", req.Source)
	}
	lists, err := ResolveLists(ctx, req.Lists, res.Bag, nil)
	if err != nil {
		return res, err
	}
	table, err := specifier.BuildTable(lists.Words, lists.Symbols)
	if err != nil {
		reportCompileError(res.Bag, source.NewText("", ""), err)
		return res, err
	}

	var s *specifier.Specifier
	values := make(map[string]string, len(matches))
	var out strings.Builder
	last := 0
	for _, m := range matches {
		f := Field{
			Name: text[m[2]:m[3]],
			Spec: text[m[4]:m[5]],
			Line: strings.Count(text[:m[0]], "\n") + 1,
		}
		if v, seen := values[f.Name]; seen {
			f.Value = v
		} else {
			if s == nil {
				s, err = specifier.CompileWithTable(f.Spec, table, specifier.WithSource(src))
			} else {
				err = s.Recompile(f.Spec)
			}
			if err != nil {
				res.Failed = source.NewText(fmt.Sprintf("%s@%d", f.Name, f.Line), f.Spec)
				reportCompileError(res.Bag, res.Failed, err)
				return res, fmt.Errorf("annotation %q on line %d: %w", f.Name, f.Line, err)
			}
			f.Value = s.Generate()
			values[f.Name] = f.Value
		}
		trace.Point(trace.FromContext(ctx), trace.ScopeItem, "annotation", f.Name, trace.ParentSpan(ctx))

		out.WriteString(text[last:m[0]])
		out.WriteString(f.Value)
		last = m[1]
		res.Fields = append(res.Fields, f)
	}
	out.WriteString(text[last:])
	res.Output = out.String()
	span.WithExtra("annotations", fmt.Sprint(len(res.Fields)))
	return res, nil
}
