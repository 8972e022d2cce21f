package main

import (
	"github.com/spf13/cobra"

	"mpass/internal/diag"
	"mpass/internal/diagfmt"
	"mpass/internal/source"
)

// printDiagnostics writes bag to stderr, as JSON when asJSON is set.
// Warnings and infos are skipped with --quiet.
func (a *app) printDiagnostics(cmd *cobra.Command, bag *diag.Bag, text *source.Text, asJSON bool) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	if a.quiet && !bag.HasErrors() {
		return nil
	}
	bag.Sort()
	if asJSON {
		return diagfmt.JSON(cmd.ErrOrStderr(), bag, text, diagfmt.JSONOpts{Max: a.maxDiags, IncludeNotes: true})
	}
	return diagfmt.Pretty(cmd.ErrOrStderr(), bag, text, diagfmt.PrettyOpts{
		Color:     a.color,
		ShowNotes: true,
		Max:       a.maxDiags,
	})
}

func sourceText(spec string) *source.Text { return source.NewText("", spec) }
