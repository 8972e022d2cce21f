// Package token defines the spec-string token kinds for mpass.
// Invariants:
//   - Every valid spec character maps to exactly one Kind; the mapping is
//     case-sensitive and fixed (see Alphabet).
//   - Shuffle is the only non-producing kind: it never yields output and
//     only toggles slot reordering in the assembler.
//   - Token.Index counts characters (runes), Token.Offset counts bytes.
//     Diagnostics report Index; Offset is kept for slicing the source.
package token
