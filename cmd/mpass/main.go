package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mpass/internal/config"
	"mpass/internal/observ"
	"mpass/internal/prof"
	"mpass/internal/trace"
	"mpass/internal/version"
)

// errReported means diagnostics were already printed; main only sets the exit code.
var errReported = errors.New("diagnostics reported")

// app is the per-invocation state filled by the root PersistentPreRunE.
type app struct {
	cfg      config.Config
	timer    *observ.Timer
	color    bool
	quiet    bool
	maxDiags int
	tracer   trace.Tracer
	cleanup  func()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mpass [spec]",
		Short: "Memorable passphrase generator",
		Long: `mpass builds passphrases from a spec string. Each character of the spec
selects a generator:

  w  lowercase word       W  UPPERCASE word       i  Propercase word
  r  wOrd with one random capital
  a  lowercase letter     A  uppercase letter     x  letter or digit
  z  letter, digit or symbol                      #  digit
  $  symbol               ' ' literal space       ?  shuffle all positions

Without a subcommand mpass behaves like "mpass generate".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.finish(cmd)
		},
	}
	addGenerateFlags(root)
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return a.runGenerate(cmd, args)
	}

	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("config", "", "path to mpass.toml (default: search upwards from the working directory)")
	pf.String("trace", "", "trace output file ('-' for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "events kept in ring mode")
	pf.String("cpuprofile", "", "write CPU profile to file")
	pf.String("memprofile", "", "write heap profile to file on exit")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	root.AddCommand(
		newGenerateCmd(a),
		newCheckCmd(a),
		newExplainCmd(a),
		newFillCmd(a),
		newEditCmd(a),
		newInitCmd(),
		newVersionCmd(),
	)
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "mpass: %v\n", err)
		}
		os.Exit(1)
	}
}

// setup загружает конфигурацию, настраивает цвет и трассировку.
func (a *app) setup(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()

	colorFlag, err := pf.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	if a.color, err = resolveColor(colorFlag, isTerminal(os.Stderr)); err != nil {
		return err
	}
	if a.quiet, err = pf.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if a.maxDiags, err = pf.GetInt("max-diagnostics"); err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	timings, err := pf.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		a.timer = observ.NewTimer()
	}

	if a.cfg, err = loadConfig(cmd); err != nil {
		return err
	}
	if err := a.setupTracing(cmd); err != nil {
		return err
	}
	if err := a.setupProfiling(cmd); err != nil {
		return err
	}
	ctx, span := trace.Start(cmd.Context(), trace.ScopeCommand, cmd.Name())
	cmd.SetContext(ctx)
	a.cleanup = chain(func() { span.End("") }, a.cleanup)
	return nil
}

func (a *app) finish(cmd *cobra.Command) {
	if a.timer != nil && !a.quiet {
		fmt.Fprint(cmd.ErrOrStderr(), a.timer.Summary())
	}
	if a.cleanup != nil {
		a.cleanup()
	}
}

// fail dumps the trace ring, if any, before returning err. Cobra skips
// PersistentPostRun on error, so tracing is also closed here.
func (a *app) fail(cmd *cobra.Command, err error) error {
	if ring, ok := trace.RingOf(a.tracer); ok && !a.quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), "trace (last events):")
		_ = ring.Dump(cmd.ErrOrStderr(), trace.FormatText)
	}
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
	return err
}

// setupProfiling starts pprof/runtime trace collection when requested.
// The session is stopped by cleanup, before the trace is closed.
func (a *app) setupProfiling(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = pf.GetString("cpuprofile"); err != nil {
		return fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	if opts.Mem, err = pf.GetString("memprofile"); err != nil {
		return fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	if opts.Trace, err = pf.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	sess, err := prof.Start(opts)
	if err != nil {
		return fmt.Errorf("start profiling: %w", err)
	}
	errOut := cmd.ErrOrStderr()
	a.cleanup = chain(func() {
		if err := sess.Stop(); err != nil {
			fmt.Fprintf(errOut, "mpass: profiling: %v\n", err)
		}
	}, a.cleanup)
	return nil
}

func chain(fns ...func()) func() {
	return func() {
		for _, fn := range fns {
			if fn != nil {
				fn()
			}
		}
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
