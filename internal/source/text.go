package source

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Text is a named spec string. Spec strings are single-line, so positions are
// reported as a 0-based character column.
type Text struct {
	Name    string
	Content string
}

// NewText wraps content; an empty name becomes "<spec>".
func NewText(name, content string) *Text {
	if name == "" {
		name = "<spec>"
	}
	return &Text{Name: name, Content: content}
}

// Len returns the length of the content in characters.
func (t *Text) Len() int {
	return utf8.RuneCountInString(t.Content)
}

// ByteOffset converts a character index into a byte offset.
// Indices past the end map to len(Content).
func (t *Text) ByteOffset(index int) uint32 {
	off := len(t.Content)
	i := 0
	for b := range t.Content {
		if i == index {
			off = b
			break
		}
		i++
	}
	return MustU32(off)
}

// Column converts a byte offset into a character index.
func (t *Text) Column(offset uint32) int {
	end := min(int(offset), len(t.Content))
	return utf8.RuneCountInString(t.Content[:end])
}

// SpanAt returns the span of the character at index, or an empty span at the
// end of the content when index is out of range.
func (t *Text) SpanAt(index int) Span {
	start := t.ByteOffset(index)
	if int(start) >= len(t.Content) {
		return Span{Start: start, End: start}
	}
	_, size := utf8.DecodeRuneInString(t.Content[start:])
	return Span{Start: start, End: start + MustU32(size)}
}

// Slice returns the text covered by sp.
func (t *Text) Slice(sp Span) string {
	lo := min(int(sp.Start), len(t.Content))
	hi := max(min(int(sp.End), len(t.Content)), lo)
	return t.Content[lo:hi]
}

// MustU32 converts a length or offset to uint32, panicking on overflow.
func MustU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}
