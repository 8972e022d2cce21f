package diagfmt

// PrettyOpts configures human-readable output.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	// Max truncates the output, not the Bag; 0 means no limit.
	Max int
}

// JSONOpts configures machine-readable output.
type JSONOpts struct {
	Max          int
	IncludeNotes bool
}
