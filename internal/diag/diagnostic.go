// Package diag implements the diagnostic model and colored renderer
// consumed by the CLI: a four-line block (error header, location arrow,
// source line, caret underline) plus an optional help line, matching the
// original pick-frame tool's tui::show_error contract (spec §6).
package diag

// Diagnostic is the renderer's input contract: everything it needs to
// print one error, independent of where the error came from.
type Diagnostic struct {
	Message     string
	Location    string
	SourceLine  string
	CaretOffset int
	CaretLength int
	Tip         string
	Help        string // empty means no help line
}
