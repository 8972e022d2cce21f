package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mpass/internal/diagfmt"
	"mpass/internal/driver"
	"mpass/internal/wordlist"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [spec]",
		Short: "Generate passphrases from a spec string",
		Example: `  mpass generate "i w w ###$"
  mpass generate -n 5 --source crypto "W?w##$$"
  mpass generate --words ./words.txt --symbols '!?' "r r #"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args)
		},
	}
	addGenerateFlags(cmd)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("count", "n", 1, "number of passphrases")
	f.String("format", "plain", "output format (plain|pretty|json)")
	addListFlags(cmd)
	f.String("source", "default", "random source (default|crypto|seeded)")
	f.Uint64("seed", 0, "seed for --source seeded")
	f.Int("jobs", 0, "parallel workers for -n > 1 (0=auto)")
}

func addListFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("words", "", "word list file, one word per line (default: built-in list)")
	f.String("symbols", "", "symbols: whitespace separated, or one per character")
	f.Bool("cache", false, "cache normalized word lists on disk")
	f.Bool("no-cache", false, "disable the word list cache even if mpass.toml enables it")
	f.Bool("drop-cache", false, "clear cached word lists before loading (implies --cache)")
}

// listOptions merges list flags over the loaded configuration.
func (a *app) listOptions(cmd *cobra.Command) (driver.ListOptions, error) {
	f := cmd.Flags()
	opts := driver.ListOptions{WordsPath: a.cfg.Lists.Words}
	if len(a.cfg.Lists.Symbols) > 0 {
		opts.Symbols = a.cfg.Lists.Symbols
	}
	if f.Changed("words") {
		opts.WordsPath, _ = f.GetString("words")
	}
	if f.Changed("symbols") {
		s, _ := f.GetString("symbols")
		opts.Symbols = wordlist.SplitSymbols(s)
		if opts.Symbols == nil {
			opts.Symbols = []string{}
		}
	}

	useCache := a.cfg.Lists.Cache
	if f.Changed("cache") {
		useCache, _ = f.GetBool("cache")
	}
	if off, _ := f.GetBool("no-cache"); off {
		useCache = false
	}
	drop, _ := f.GetBool("drop-cache")
	if drop {
		useCache = true
	}
	if !useCache || (opts.WordsPath == "" && !drop) {
		return opts, nil
	}
	c, err := wordlist.OpenCache("mpass", a.cfg.Lists.CacheDir)
	if err != nil {
		return opts, fmt.Errorf("open list cache: %w", err)
	}
	if drop {
		if err := c.DropAll(); err != nil {
			return opts, fmt.Errorf("drop list cache: %w", err)
		}
	}
	if opts.WordsPath != "" {
		opts.Cache = c
	}
	return opts, nil
}

type generateJSON struct {
	Spec        string                   `json:"spec"`
	Generators  string                   `json:"generators"`
	Passphrases []string                 `json:"passphrases"`
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	req := driver.GenerateRequest{
		Spec:           a.cfg.Generate.Spec,
		Count:          a.cfg.Generate.Count,
		Source:         a.cfg.Generate.Source,
		Seed:           a.cfg.Generate.Seed,
		MaxDiagnostics: a.maxDiags,
		Timer:          a.timer,
	}
	if len(args) == 1 {
		req.Spec = args[0]
	}
	if f.Changed("count") {
		req.Count, _ = f.GetInt("count")
	}
	if f.Changed("source") {
		req.Source, _ = f.GetString("source")
	}
	if f.Changed("seed") {
		req.Seed, _ = f.GetUint64("seed")
		if !f.Changed("source") {
			req.Source = "seeded"
		}
	}
	req.Jobs, _ = f.GetInt("jobs")
	if req.Count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", req.Count)
	}

	format, _ := f.GetString("format")
	format = strings.ToLower(format)
	switch format {
	case "plain", "pretty", "json":
	default:
		return fmt.Errorf("unsupported format %q (must be plain, pretty or json)", format)
	}

	lists, err := a.listOptions(cmd)
	if err != nil {
		return err
	}
	req.Lists = lists

	res, err := driver.Generate(cmd.Context(), req)
	if err != nil {
		if res != nil && res.Bag.HasErrors() {
			_ = a.printDiagnostics(cmd, res.Bag, res.Text, format == "json")
			return a.fail(cmd, errReported)
		}
		return a.fail(cmd, err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		payload := generateJSON{
			Spec:        res.Specifier.Spec(),
			Generators:  res.Specifier.String(),
			Passphrases: res.Passphrases,
			Diagnostics: diagfmt.BuildDiagnosticsOutput(res.Bag, res.Text, diagfmt.JSONOpts{IncludeNotes: true}).Diagnostics,
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty":
		if err := a.printDiagnostics(cmd, res.Bag, res.Text, false); err != nil {
			return err
		}
		return writePretty(out, res, a.quiet)
	default:
		if err := a.printDiagnostics(cmd, res.Bag, res.Text, false); err != nil {
			return err
		}
		for _, p := range res.Passphrases {
			if _, err := fmt.Fprintln(out, p); err != nil {
				return err
			}
		}
		return nil
	}
}

func writePretty(out io.Writer, res *driver.GenerateResult, quiet bool) error {
	var sb strings.Builder
	if !quiet {
		fmt.Fprintf(&sb, "spec %q: %s\n", res.Specifier.Spec(), res.Specifier.String())
	}
	width := len(fmt.Sprint(len(res.Passphrases)))
	for i, p := range res.Passphrases {
		fmt.Fprintf(&sb, "%*d  %s\n", width, i+1, p)
	}
	_, err := io.WriteString(out, sb.String())
	return err
}
