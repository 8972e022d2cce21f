package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mpass/internal/diag"
	"mpass/internal/driver"
	"mpass/internal/rtg"
	"mpass/internal/specifier"
	"mpass/internal/ui"
)

func newEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [spec]",
		Short: "Edit a spec string interactively with live validation",
		Long: `edit opens a terminal editor. Every keystroke re-validates the spec and
shows a caret under problems; valid specs are recompiled and a fresh sample
is shown. ctrl+r draws another sample, enter prints the spec and exits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uiFlag, _ := cmd.Flags().GetString("ui")
			mode, err := readUIMode(uiFlag)
			if err != nil {
				return err
			}
			if !shouldUseTUI(mode) {
				return fmt.Errorf("edit needs a terminal (use --ui=on to force)")
			}

			spec := a.cfg.Generate.Spec
			if len(args) == 1 {
				spec = args[0]
			}
			lists, err := a.listOptions(cmd)
			if err != nil {
				return err
			}
			src, ok := rtg.ParseSource(a.cfg.Generate.Source, a.cfg.Generate.Seed)
			if !ok {
				return fmt.Errorf("unknown random source %q", a.cfg.Generate.Source)
			}

			// стартовая спецификация может быть невалидной; редактор всё равно нужен
			start := spec
			if err := specifier.Check(spec); err != nil {
				start = "w"
			}
			words, symbols, err := resolveForEdit(cmd, a, lists)
			if err != nil {
				return err
			}
			s, err := specifier.Compile(start, words, symbols, specifier.WithSource(src))
			if err != nil {
				return err
			}

			model := ui.NewEditor(cmd.Context(), s)
			if start != spec {
				model.SetInput(spec)
			}
			program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
			if _, err := program.Run(); err != nil {
				return err
			}
			if final, ok := model.Result(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), final)
			}
			return nil
		},
	}
	cmd.Flags().String("ui", "auto", "terminal UI (auto|on|off)")
	addListFlags(cmd)
	return cmd
}

func resolveForEdit(cmd *cobra.Command, a *app, opts driver.ListOptions) ([]string, []string, error) {
	bag := diag.NewBag(a.maxDiags)
	lists, err := driver.ResolveLists(cmd.Context(), opts, bag, a.timer)
	if perr := a.printDiagnostics(cmd, bag, nil, false); perr != nil {
		return nil, nil, perr
	}
	if err != nil {
		return nil, nil, a.fail(cmd, errReported)
	}
	return lists.Words, lists.Symbols, nil
}
