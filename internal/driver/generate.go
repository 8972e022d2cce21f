package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"mpass/internal/diag"
	"mpass/internal/observ"
	"mpass/internal/rtg"
	"mpass/internal/source"
	"mpass/internal/specifier"
	"mpass/internal/trace"
)

// GenerateRequest describes one `mpass generate` run.
type GenerateRequest struct {
	Spec   string
	Lists  ListOptions
	Count  int
	Source string // default, crypto, seeded
	Seed   uint64
	Jobs   int // 0: GOMAXPROCS
	// MaxDiagnostics bounds the result bag; 0 means 64.
	MaxDiagnostics int
	Timer          *observ.Timer
}

type GenerateResult struct {
	Text        *source.Text
	Passphrases []string
	Specifier   *specifier.Specifier
	Lists       *Lists
	Bag         *diag.Bag
}

// Generate compiles req.Spec and produces req.Count passphrases in request
// order. Compile problems are reported on the result bag and returned.
func Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopePhase, "generate")
	defer span.End("")

	if req.Count <= 0 {
		req.Count = 1
	}
	if req.MaxDiagnostics <= 0 {
		req.MaxDiagnostics = 64
	}
	res := &GenerateResult{Text: source.NewText("", req.Spec), Bag: diag.NewBag(req.MaxDiagnostics)}

	src, ok := rtg.ParseSource(req.Source, req.Seed)
	if !ok {
		return res, fmt.Errorf("unknown random source %q (expected: default|crypto|seeded)", req.Source)
	}

	lists, err := ResolveLists(ctx, req.Lists, res.Bag, req.Timer)
	if err != nil {
		return res, err
	}
	res.Lists = lists

	s, err := compile(ctx, req.Spec, lists, src, req.Timer)
	if err != nil {
		reportCompileError(res.Bag, res.Text, err)
		return res, err
	}
	res.Specifier = s

	idx := req.Timer.Begin("produce")
	res.Passphrases, err = produceBatch(ctx, s, req)
	req.Timer.End(idx, fmt.Sprintf("%d passphrase(s)", len(res.Passphrases)))
	span.WithExtra("count", fmt.Sprint(len(res.Passphrases)))
	return res, err
}

func compile(ctx context.Context, spec string, lists *Lists, src rtg.Source, timer *observ.Timer) (*specifier.Specifier, error) {
	_, span := trace.Start(ctx, trace.ScopePhase, "compile")
	defer span.End("")
	idx := timer.Begin("compile")
	defer timer.End(idx, "")

	s, err := specifier.Compile(spec, lists.Words, lists.Symbols, specifier.WithSource(src))
	if err != nil {
		span.WithExtra("error", err.Error())
		return nil, err
	}
	span.WithExtra("generators", s.String())
	return s, nil
}

// produceBatch fills results[i] for every i. Seeded runs give item i its own
// PCG stream so output does not depend on scheduling.
func produceBatch(ctx context.Context, s *specifier.Specifier, req GenerateRequest) ([]string, error) {
	results := make([]string, req.Count)
	if req.Count == 1 {
		results[0] = s.GenerateWith(itemSource(req, 0))
		return results, nil
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, req.Count))
	for i := range req.Count {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, item := trace.Start(gctx, trace.ScopeItem, fmt.Sprintf("item:%d", i))
			results[i] = s.GenerateWith(itemSource(req, i))
			item.End("")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func itemSource(req GenerateRequest, i int) rtg.Source {
	switch req.Source {
	case "seeded":
		// splitmix-константа разводит соседние сиды
		return rtg.NewSeeded(req.Seed + uint64(i)*0x9e3779b97f4a7c15)
	case "crypto":
		return rtg.Crypto
	default:
		return rtg.Default
	}
}
