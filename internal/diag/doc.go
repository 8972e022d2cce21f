// Package diag defines the diagnostic model used to report problems with spec
// strings and word/symbol lists.
//
// # Scope
//
// Package diag does not format or print anything. Rendering lives in
// internal/diagfmt; the driver decides which diagnostics to collect.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – byte range inside the spec string.
//   - Column – character index of the span start; -1 for list diagnostics.
//   - Notes – optional secondary spans/messages.
//
// # Emitting diagnostics
//
// Producers report through a Reporter. BagReporter aggregates into a bounded
// Bag, which supports sorting and deduplication; DedupReporter filters repeats
// before forwarding.
package diag
