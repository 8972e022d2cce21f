// Package rtg implements random token generators: the producers a compiled
// spec string invokes, one per producing position.
//
// A Generator is a closed set of variants (see Variant). Each variant owns an
// immutable candidate list fixed at construction; Produce only reads it, so a
// single Generator may be shared by any number of positions and goroutines.
// Randomness comes from a Source supplied by the caller.
package rtg
