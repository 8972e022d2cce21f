package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"mpass/internal/diag"
	"mpass/internal/source"
)

func specBag(text *source.Text, col int, code diag.Code, sev diag.Severity, msg string) *diag.Bag {
	bag := diag.NewBag(10)
	bag.Add(diag.New(sev, code, text.SpanAt(col), col, msg))
	return bag
}

func TestPrettyCaretUnderColumn(t *testing.T) {
	text := source.NewText("", "w w q #")
	bag := specBag(text, 4, diag.SpecUnknownChar, diag.SevError, "unrecognized character 'q'")

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, text, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "<spec>:5: error SPC1001: unrecognized character 'q'" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "  | w w q #" {
		t.Errorf("snippet = %q", lines[1])
	}
	if lines[2] != "  |     ^" {
		t.Errorf("caret = %q", lines[2])
	}
}

func TestPrettyWideCharacters(t *testing.T) {
	// 日 занимает две колонки терминала
	text := source.NewText("spec", "w日q")
	bag := specBag(text, 1, diag.SpecUnknownChar, diag.SevError, "unrecognized character '日'")

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, text, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "  |  ^~\n") {
		t.Fatalf("caret should cover two columns:\n%s", buf.String())
	}
}

func TestPrettyEndOfInput(t *testing.T) {
	text := source.NewText("", "??")
	bag := specBag(text, 2, diag.SpecEmpty, diag.SevError, "spec produces no output")

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, text, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "  |   ^\n") {
		t.Fatalf("caret should sit past the end:\n%s", buf.String())
	}
}

func TestPrettyListDiagnosticWithNotes(t *testing.T) {
	bag := diag.NewBag(10)
	d := diag.New(diag.SevWarning, diag.ListDuplicate, source.Span{}, -1, "words.txt: 2 duplicate entries dropped").
		WithNote(source.Span{}, "line 4: apple")
	bag.Add(d)

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, source.NewText("", "w"), PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	want := "<spec>: warning LST2003: words.txt: 2 duplicate entries dropped\n  note: line 4: apple\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestPrettyMax(t *testing.T) {
	text := source.NewText("", "qq")
	bag := diag.NewBag(10)
	for col := range 2 {
		bag.Add(diag.New(diag.SevError, diag.SpecUnknownChar, text.SpanAt(col), col, "bad"))
	}
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, text, PrettyOpts{Max: 1}); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "SPC1001"); n != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", n)
	}
}
