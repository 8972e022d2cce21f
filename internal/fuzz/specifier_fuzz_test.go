package fuzztests

import (
	"testing"
	"unicode/utf8"

	"mpass/internal/rtg"
	"mpass/internal/specifier"
)

// FuzzCheckMatchesCompile asserts that Check and Compile reject the same
// specs at the same offset, and that accepted specs generate output of the
// expected shape.
func FuzzCheckMatchesCompile(f *testing.F) {
	addSpecSeeds(f)
	f.Fuzz(func(t *testing.T, spec string) {
		spec = clampInput(spec)
		checkErr := specifier.Check(spec)
		s, compileErr := specifier.CompileDefault(spec, specifier.WithSource(rtg.NewSeeded(1)))

		if (checkErr == nil) != (compileErr == nil) {
			t.Fatalf("%q: Check=%v Compile=%v", spec, checkErr, compileErr)
		}
		if checkErr != nil {
			co, ok1 := specifier.Offset(checkErr)
			po, ok2 := specifier.Offset(compileErr)
			if !ok1 || !ok2 || co != po {
				t.Fatalf("%q: offsets differ: check %d/%v compile %d/%v", spec, co, ok1, po, ok2)
			}
			if co < 0 || co > utf8.RuneCountInString(spec) {
				t.Fatalf("%q: offset %d out of range", spec, co)
			}
			return
		}

		singleOnly := true
		producing := 0
		for _, tok := range s.Tokens() {
			if !tok.Producing() {
				continue
			}
			producing++
			if !tok.Kind.SingleChar() {
				singleOnly = false
			}
		}
		if s.Len() != producing {
			t.Fatalf("%q: Len=%d, %d producing tokens", spec, s.Len(), producing)
		}
		out := s.Generate()
		if singleOnly && utf8.RuneCountInString(out) != producing {
			t.Fatalf("%q: output %q has %d chars, want %d", spec, out, utf8.RuneCountInString(out), producing)
		}
	})
}
