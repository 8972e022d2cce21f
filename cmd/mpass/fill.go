package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mpass/internal/driver"
)

func newFillCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill [file]",
		Short: "Replace <<name:spec>> annotations in a text with passphrases",
		Long: `fill reads a template (a file, or stdin when omitted or "-") and replaces
every <<name:spec>> annotation with a passphrase generated from spec.
Annotations sharing a name receive the same passphrase.`,
		Example: `  echo 'user: admin  pass: <<admin:i w w ###$>>' | mpass fill
  mpass fill --list config.tmpl`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			lists, err := a.listOptions(cmd)
			if err != nil {
				return err
			}
			req := driver.FillRequest{
				Lists:          lists,
				Source:         a.cfg.Generate.Source,
				Seed:           a.cfg.Generate.Seed,
				MaxDiagnostics: a.maxDiags,
			}
			if cmd.Flags().Changed("source") {
				req.Source, _ = cmd.Flags().GetString("source")
			}
			if cmd.Flags().Changed("seed") {
				req.Seed, _ = cmd.Flags().GetUint64("seed")
				if !cmd.Flags().Changed("source") {
					req.Source = "seeded"
				}
			}

			res, err := driver.Fill(cmd.Context(), input, req)
			if err != nil {
				if res != nil && res.Bag.HasErrors() {
					_ = a.printDiagnostics(cmd, res.Bag, res.Failed, false)
					fmt.Fprintf(cmd.ErrOrStderr(), "mpass: %v\n", err)
					return a.fail(cmd, errReported)
				}
				return a.fail(cmd, err)
			}
			if err := a.printDiagnostics(cmd, res.Bag, nil, false); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if list, _ := cmd.Flags().GetBool("list"); list {
				for _, field := range res.Fields {
					fmt.Fprintf(out, "%s (%s): %s\n", field.Name, field.Spec, field.Value)
				}
				return nil
			}
			outPath, _ := cmd.Flags().GetString("output")
			if outPath == "" || outPath == "-" {
				_, err = io.WriteString(out, res.Output)
				return err
			}
			return os.WriteFile(outPath, []byte(res.Output), 0o600)
		},
	}
	f := cmd.Flags()
	f.StringP("output", "o", "", "write the filled text to a file instead of stdout")
	f.Bool("list", false, "print name (spec): value for each annotation instead of the text")
	f.String("source", "default", "random source (default|crypto|seeded)")
	f.Uint64("seed", 0, "seed for --source seeded")
	addListFlags(cmd)
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
