// Package diagfmt renders diag.Bag contents for terminals and tools.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"mpass/internal/diag"
	"mpass/internal/source"
)

type palette struct {
	on                          bool
	err, warn, info, code, pipe *color.Color
}

func newPalette(on bool) palette {
	p := palette{
		on:   on,
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		info: color.New(color.FgCyan, color.Bold),
		code: color.New(color.Bold),
		pipe: color.New(color.FgBlue),
	}
	if on {
		for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.pipe} {
			c.EnableColor()
		}
	}
	return p
}

func (p palette) paint(c *color.Color, s string) string {
	if !p.on {
		return s
	}
	return c.Sprint(s)
}

func (p palette) severity(s diag.Severity) string {
	label := strings.ToLower(s.String())
	switch s {
	case diag.SevError:
		return p.paint(p.err, label)
	case diag.SevWarning:
		return p.paint(p.warn, label)
	default:
		return p.paint(p.info, label)
	}
}

// Pretty печатает диагностики в виде
//
//	<name>:<col>: <sev> <CODE>: <message>
//	  | w w q #
//	  |     ^
//
// Колонка 1-based. Диагностики без позиции (списки) печатаются без строки
// спецификации. Ожидается bag.Sort() заранее.
func Pretty(w io.Writer, bag *diag.Bag, text *source.Text, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}

	var sb strings.Builder
	for _, d := range items {
		name := "<spec>"
		if text != nil {
			name = text.Name
		}
		if d.HasPosition() {
			fmt.Fprintf(&sb, "%s:%d: ", name, d.Column+1)
		} else {
			fmt.Fprintf(&sb, "%s: ", name)
		}
		fmt.Fprintf(&sb, "%s %s: %s\n", p.severity(d.Severity), p.paint(p.code, d.Code.ID()), d.Message)

		if d.HasPosition() && text != nil {
			writeSnippet(&sb, p, text, d)
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(&sb, "  %s %s\n", p.paint(p.pipe, "note:"), n.Msg)
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeSnippet(sb *strings.Builder, p palette, text *source.Text, d diag.Diagnostic) {
	pipe := p.paint(p.pipe, "|")
	fmt.Fprintf(sb, "  %s %s\n", pipe, text.Content)

	pad, width := caretGeometry(text, d.Primary)
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(sb, "  %s %s%s\n", pipe, strings.Repeat(" ", pad), p.paint(caretColor(p, d.Severity), marker))
}

// caretGeometry returns the display column of sp.Start and the display width
// of the spanned text, at least 1 so an end-of-input caret stays visible.
func caretGeometry(text *source.Text, sp source.Span) (pad, width int) {
	pad = runewidth.StringWidth(text.Slice(source.Span{Start: 0, End: sp.Start}))
	width = max(runewidth.StringWidth(text.Slice(sp)), 1)
	return pad, width
}

func caretColor(p palette, s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}
