package lexer

import "mpass/internal/diag"

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, m Mark, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, lx.cursor.SpanFrom(m), m.index, msg, nil)
	}
}
