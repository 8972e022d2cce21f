package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"mpass/internal/driver"
)

func newExplainCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain [spec]",
		Short: "Show the generator behind every spec character",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := a.cfg.Generate.Spec
			if len(args) == 1 {
				spec = args[0]
			}
			format, _ := cmd.Flags().GetString("format")
			if format != "pretty" && format != "json" {
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
			lists, err := a.listOptions(cmd)
			if err != nil {
				return err
			}

			ex, bag, err := driver.Explain(cmd.Context(), spec, lists, a.maxDiags)
			if err != nil {
				if bag.HasErrors() {
					_ = a.printDiagnostics(cmd, bag, sourceText(spec), format == "json")
					return a.fail(cmd, errReported)
				}
				return a.fail(cmd, err)
			}
			if err := a.printDiagnostics(cmd, bag, sourceText(spec), format == "json"); err != nil {
				return err
			}
			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(explainJSON(ex))
			}
			return writeExplainTable(cmd.OutOrStdout(), ex)
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	addListFlags(cmd)
	return cmd
}

type explainItemJSON struct {
	Offset     int      `json:"offset"`
	Char       string   `json:"char"`
	Kind       string   `json:"kind"`
	Shape      string   `json:"shape,omitempty"`
	Generator  string   `json:"generator,omitempty"`
	Candidates int      `json:"candidates,omitempty"`
	Bits       float64  `json:"bits,omitempty"`
	Examples   []string `json:"examples,omitempty"`
}

type explanationJSON struct {
	Spec      string            `json:"spec"`
	Shuffle   bool              `json:"shuffle"`
	TotalBits float64           `json:"total_bits"`
	Items     []explainItemJSON `json:"items"`
}

func explainJSON(ex *driver.Explanation) explanationJSON {
	out := explanationJSON{Spec: ex.Spec, Shuffle: ex.Shuffle, TotalBits: ex.TotalBits}
	for _, it := range ex.Items {
		out.Items = append(out.Items, explainItemJSON{
			Offset:     it.Index,
			Char:       string(it.Char),
			Kind:       it.Kind.String(),
			Shape:      it.Shape,
			Generator:  it.Generator,
			Candidates: it.Candidates,
			Bits:       it.Bits,
			Examples:   it.Examples,
		})
	}
	return out
}

// writeExplainTable pads by display width so wide example words line up.
func writeExplainTable(w io.Writer, ex *driver.Explanation) error {
	header := []string{"#", "char", "kind", "shape", "generator", "bits", "examples"}
	rows := [][]string{header}
	for _, it := range ex.Items {
		bits := ""
		if it.Generator != "" {
			bits = fmt.Sprintf("%.2f", it.Bits)
		}
		gen := it.Generator
		if gen == "" {
			gen = "(shuffle)"
		}
		rows = append(rows, []string{
			fmt.Sprint(it.Index),
			fmt.Sprintf("%q", it.Char),
			it.Kind.String(),
			it.Shape,
			gen,
			bits,
			strings.Join(it.Examples, ", "),
		})
	}

	widths := make([]int, len(header))
	for _, r := range rows {
		for i, cell := range r {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	for _, r := range rows {
		for i, cell := range r {
			if i == len(r)-1 {
				sb.WriteString(cell)
				continue
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
			sb.WriteString("  ")
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\nspec %q: %.1f bits", ex.Spec, ex.TotalBits)
	if ex.Shuffle {
		sb.WriteString(" before shuffling")
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
