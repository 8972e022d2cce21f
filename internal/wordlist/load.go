package wordlist

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Digest identifies the raw content of a list file.
type Digest [32]byte

// NoteKind classifies a normalization note.
type NoteKind uint8

const (
	// NoteDuplicate marks an entry dropped because it appeared earlier.
	NoteDuplicate NoteKind = iota + 1
	// NoteNonASCII marks an entry containing non-ASCII characters. Case
	// transforms leave such characters untouched.
	NoteNonASCII
)

// Note records something the loader changed or noticed.
type Note struct {
	Kind  NoteKind
	Line  int // 1-based
	Entry string
}

// List is a normalized list of entries.
type List struct {
	Path    string
	Entries []string
	Digest  Digest
	Notes   []Note
}

// Load reads and normalizes the list file at path.
func Load(path string) (*List, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read list %q: %w", path, err)
	}
	l, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse list %q: %w", path, err)
	}
	l.Path = path
	return l, nil
}

// Parse normalizes raw list content.
func Parse(raw []byte) (*List, error) {
	// UTF-8 по умолчанию; BOM переключает на UTF-16 LE/BE или снимается для UTF-8
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	r := transform.NewReader(bytes.NewReader(raw), dec)

	l := &List{Digest: sha256.Sum256(raw)}
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		entry := strings.TrimSpace(sc.Text())
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		if _, dup := seen[entry]; dup {
			l.Notes = append(l.Notes, Note{Kind: NoteDuplicate, Line: line, Entry: entry})
			continue
		}
		seen[entry] = struct{}{}
		if !isASCII(entry) {
			l.Notes = append(l.Notes, Note{Kind: NoteNonASCII, Line: line, Entry: entry})
		}
		l.Entries = append(l.Entries, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// SplitSymbols parses an inline symbol list: whitespace-separated entries,
// or one entry per character when there is no whitespace ("!@#" → "!", "@", "#").
func SplitSymbols(s string) []string {
	if fields := strings.Fields(s); len(fields) > 1 {
		return fields
	}
	s = strings.TrimSpace(s)
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
