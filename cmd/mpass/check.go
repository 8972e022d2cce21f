package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mpass/internal/diagfmt"
	"mpass/internal/driver"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <spec>",
		Short: "Validate a spec string and report every problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if format != "pretty" && format != "json" {
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}

			idx := a.timer.Begin("check")
			res := driver.Check(cmd.Context(), args[0], a.maxDiags)
			a.timer.End(idx, "")

			if format == "json" {
				// в JSON-режиме пустой отчёт тоже печатается
				if err := a.jsonReport(cmd, res); err != nil {
					return err
				}
			} else if err := a.printDiagnostics(cmd, res.Bag, res.Text, false); err != nil {
				return err
			}
			if !res.OK() {
				return a.fail(cmd, errReported)
			}
			if format == "pretty" && !a.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %q\n", args[0])
			}
			return nil
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func (a *app) jsonReport(cmd *cobra.Command, res *driver.CheckResult) error {
	return diagfmt.JSON(cmd.OutOrStdout(), res.Bag, res.Text, diagfmt.JSONOpts{Max: a.maxDiags, IncludeNotes: true})
}
