// Package specifier compiles spec strings into passphrase generators.
//
// A spec string is a template where each character selects a token kind
// (see internal/token for the alphabet). Compile builds a generator Table
// from a word list and a symbol list once, then maps every producing
// character to a shared generator from that table. The result, a
// Specifier, produces a fresh passphrase on every Generate call.
//
//	s, err := specifier.CompileDefault("i w w ###$")
//	if err != nil {
//		// *SyntaxError carries the character offset of the problem
//	}
//	fmt.Println(s.Generate()) // e.g. "Medium test phrase 123!"
//
// A '?' anywhere in the spec makes Generate reorder the compiled slots
// before producing them. It reorders whole tokens, never characters
// within a token.
//
// Recompile replaces the active spec string without rebuilding the table.
// The swap is atomic: concurrent Generate calls see either the old or the
// new program, never a mix, and a failed Recompile leaves the old one in
// place.
package specifier
