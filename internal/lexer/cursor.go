package lexer

import (
	"unicode/utf8"

	"mpass/internal/source"
)

// Cursor представляет собой позицию в spec-строке.
// Off считает байты, Index — символы.
type Cursor struct {
	Text  *source.Text
	Off   uint32
	Index int
}

// NewCursor creates a new cursor at the start of t.
func NewCursor(t *source.Text) Cursor {
	return Cursor{Text: t}
}

// EOF проверяет, достигнут ли конец строки
func (c *Cursor) EOF() bool {
	return int(c.Off) >= len(c.Text.Content)
}

// Peek читает текущий символ и его размер в байтах; на EOF возвращает (0, 0).
// Невалидный UTF-8 читается как utf8.RuneError размером 1.
func (c *Cursor) Peek() (rune, int) {
	if c.EOF() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(c.Text.Content[c.Off:])
}

// Bump перемещает курсор на один символ вперед и возвращает его
func (c *Cursor) Bump() rune {
	r, size := c.Peek()
	if size == 0 {
		return 0
	}
	c.Off += source.MustU32(size)
	c.Index++
	return r
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark struct {
	off   uint32
	index int
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, index: c.Index}
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: m.off, End: c.Off}
}
