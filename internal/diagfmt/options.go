// Package diagfmt renders diagnostics and token dumps for the CLI:
// человекочитаемый вид с цветом и контекстом строки, либо JSON.
package diagfmt

// ColorMode controls whether pretty output uses ANSI colors.
type ColorMode uint8

const (
	// ColorAuto enables color only when writing to a terminal;
	// решение принимает вызывающая сторона (cmd) через x/term.
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// ShowNotes prints secondary notes under the primary message.
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions добавляет line/col помимо байтовых смещений.
	IncludePositions bool
	IncludeNotes     bool
}
