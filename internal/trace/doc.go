// Package trace records what mpass is doing as structured events.
//
// mpass has no logger. Commands, driver phases and individual batch items
// open spans on a Tracer taken from the context; the CLI decides where the
// events go:
//
//	mpass generate --trace=- --trace-level=detail "w w ##"
//
// Tracers:
//
//   - Nop: disabled tracing, zero cost
//   - StreamTracer: writes each event as it arrives (text or ndjson)
//   - RingTracer: keeps the last N events for a dump on failure
//   - MultiTracer: fans out to several tracers
//
// Scopes go from coarse to fine: ScopeCommand (one CLI invocation),
// ScopePhase (list loading, compile, batch), ScopeItem (single passphrase,
// single fill annotation). LevelPhase shows commands and phases,
// LevelDetail and LevelDebug add items.
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "compile", 0)
//	defer span.End("")
package trace
