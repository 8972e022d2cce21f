package lexer

import (
	"testing"

	"mpass/internal/source"
)

func TestCursorMultibyte(t *testing.T) {
	c := NewCursor(source.NewText("t", "aé#"))
	if r := c.Bump(); r != 'a' {
		t.Fatalf("Bump = %q", r)
	}
	m := c.Mark()
	if r := c.Bump(); r != 'é' {
		t.Fatalf("Bump = %q", r)
	}
	sp := c.SpanFrom(m)
	if sp.Start != 1 || sp.End != 3 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	if c.Index != 2 || c.Off != 3 {
		t.Fatalf("Index=%d Off=%d", c.Index, c.Off)
	}
	c.Bump()
	if !c.EOF() {
		t.Fatalf("expected EOF")
	}
	if r := c.Bump(); r != 0 {
		t.Fatalf("Bump at EOF = %q", r)
	}
}

func TestCursorEmpty(t *testing.T) {
	c := NewCursor(source.NewText("", ""))
	if !c.EOF() {
		t.Fatalf("empty text must be EOF")
	}
	if r, n := c.Peek(); r != 0 || n != 0 {
		t.Fatalf("Peek = %q, %d", r, n)
	}
}
