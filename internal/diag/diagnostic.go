package diag

import (
	"mpass/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single finding about a spec string or an input list.
// Column is the 0-based character index of Primary.Start; -1 when the
// diagnostic does not point into the spec string (list problems).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Column   int
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, column int, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Column:   column,
		Message:  msg,
	}
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// HasPosition reports whether the diagnostic points into the spec string.
func (d Diagnostic) HasPosition() bool { return d.Column >= 0 }
