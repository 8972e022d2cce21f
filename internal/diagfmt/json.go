package diagfmt

import (
	"encoding/json"
	"io"

	"mpass/internal/diag"
	"mpass/internal/source"
)

type NoteJSON struct {
	Message string `json:"message"`
}

// DiagnosticJSON is one diagnostic. Offset is the 0-based character index
// into the spec and is omitted for list diagnostics.
type DiagnosticJSON struct {
	Severity  diag.Severity `json:"severity"`
	Code      string        `json:"code"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Offset    *int          `json:"offset,omitempty"`
	StartByte uint32        `json:"start_byte,omitempty"`
	EndByte   uint32        `json:"end_byte,omitempty"`
	Notes     []NoteJSON    `json:"notes,omitempty"`
}

type DiagnosticsOutput struct {
	Spec        string           `json:"spec,omitempty"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, text *source.Text, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}

	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(items))}
	if text != nil {
		out.Spec = text.Content
	}
	for _, d := range items {
		dj := DiagnosticJSON{
			Severity: d.Severity,
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
		}
		if d.HasPosition() {
			col := d.Column
			dj.Offset = &col
			dj.StartByte, dj.EndByte = d.Primary.Start, d.Primary.End
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{Message: n.Msg})
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON пишет диагностики в w с отступами.
func JSON(w io.Writer, bag *diag.Bag, text *source.Text, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, text, opts))
}
