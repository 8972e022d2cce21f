package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseNormalizes(t *testing.T) {
	raw := []byte("# comment\r\n  apple \nbanana\n\napple\ncafé\n")
	l, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff([]string{"apple", "banana", "café"}, l.Entries); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	wantNotes := []Note{
		{Kind: NoteDuplicate, Line: 5, Entry: "apple"},
		{Kind: NoteNonASCII, Line: 6, Entry: "café"},
	}
	if diff := cmp.Diff(wantNotes, l.Notes); diff != "" {
		t.Fatalf("notes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBOM(t *testing.T) {
	utf8BOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("one\ntwo\n")...)
	// "hi\n" in UTF-16 LE with BOM
	utf16LE := []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0}
	cases := []struct {
		name string
		raw  []byte
		want []string
	}{
		{"utf8-bom", utf8BOM, []string{"one", "two"}},
		{"utf16le", utf16LE, []string{"hi"}},
	}
	for _, tc := range cases {
		l, err := Parse(tc.raw)
		if err != nil {
			t.Fatalf("%s: Parse: %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.want, l.Entries); diff != "" {
			t.Errorf("%s: entries mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("x\ny\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Path != path || len(l.Entries) != 2 {
		t.Fatalf("Load = %+v", l)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSplitSymbols(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"!@#", []string{"!", "@", "#"}},
		{"!! ?? ##", []string{"!!", "??", "##"}},
		{"  ", []string{}},
		{" % ", []string{"%"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, SplitSymbols(tc.in)); diff != "" {
			t.Errorf("SplitSymbols(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}
