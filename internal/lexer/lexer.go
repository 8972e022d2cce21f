package lexer

import (
	"fmt"

	"mpass/internal/diag"
	"mpass/internal/source"
	"mpass/internal/token"
)

// Lexer splits a spec string into classified tokens, one per character.
type Lexer struct {
	text   *source.Text
	cursor Cursor
	opts   Options
}

func New(text *source.Text, opts Options) *Lexer {
	return &Lexer{
		text:   text,
		cursor: NewCursor(text),
		opts:   opts,
	}
}

// Next возвращает следующий токен. ok == false только на EOF.
// Неизвестный символ даёт токен Kind == token.Invalid и диагностику SpecUnknownChar.
func (lx *Lexer) Next() (tok token.Token, ok bool) {
	if lx.cursor.EOF() {
		return token.Token{Kind: token.Invalid, Index: lx.cursor.Index, Offset: lx.cursor.Off}, false
	}

	m := lx.cursor.Mark()
	ch := lx.cursor.Bump()
	kind, err := token.Classify(ch)
	if err != nil {
		lx.report(diag.SpecUnknownChar, diag.SevError, m,
			fmt.Sprintf("unrecognized character %q at offset %d; allowed: %q", ch, m.index, token.Alphabet))
	}
	return token.Token{
		Kind:   kind,
		Index:  m.index,
		Offset: m.off,
		Char:   ch,
	}, true
}

// All collects every token until EOF, including Invalid ones.
func (lx *Lexer) All() []token.Token {
	var toks []token.Token
	for {
		tok, ok := lx.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Pos returns the current character index.
func (lx *Lexer) Pos() int { return lx.cursor.Index }
