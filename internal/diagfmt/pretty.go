package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"minilang/internal/diag"
	"minilang/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой печатает:
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//
// затем строку источника с подчёркиванием ^~~~ по месту ошибки,
// затем Notes в том же формате.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for _, d := range bag.Items() {
		if err := p.printDiagnostic(d); err != nil {
			return err
		}
	}
	return nil
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (p *prettyPrinter) severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.color(color.FgRed, color.Bold)
	case diag.SevWarning:
		return p.color(color.FgYellow, color.Bold)
	default:
		return p.color(color.FgCyan)
	}
}

func (p *prettyPrinter) printDiagnostic(d diag.Diagnostic) error {
	sevC := p.severityColor(d.Severity)
	// в заголовке severity строчными, как у привычных компиляторов
	sevName := strings.ToLower(d.Severity.String())
	if err := p.printHeadline(sevC, sevName, d.Code.ID(), d.Message, d.Primary); err != nil {
		return err
	}
	if err := p.printContext(sevC, d.Primary); err != nil {
		return err
	}
	if !p.opts.ShowNotes {
		return nil
	}
	noteC := p.color(color.FgCyan)
	for _, note := range d.Notes {
		if err := p.printHeadline(noteC, "note", "", note.Msg, note.Span); err != nil {
			return err
		}
		if err := p.printContext(noteC, note.Span); err != nil {
			return err
		}
	}
	return nil
}

func (p *prettyPrinter) printHeadline(sevC *color.Color, sevName, codeID, msg string, sp source.Span) error {
	file := p.fs.Get(sp.File)
	start, _ := p.fs.Resolve(sp)

	loc := p.color(color.Bold).Sprintf("%s:%d:%d", file.Path, start.Line, start.Col)

	var err error
	if codeID != "" {
		_, err = fmt.Fprintf(p.w, "%s: %s [%s]: %s\n", loc, sevC.Sprint(sevName), codeID, msg)
	} else {
		_, err = fmt.Fprintf(p.w, "%s: %s: %s\n", loc, sevC.Sprint(sevName), msg)
	}
	return err
}

// printContext выводит строку источника и подчёркивание под спаном.
// Многострочные спаны подчёркиваются только в первой строке.
func (p *prettyPrinter) printContext(sevC *color.Color, sp source.Span) error {
	file := p.fs.Get(sp.File)
	start, end := p.fs.Resolve(sp)
	line := strings.TrimRight(file.GetLine(start.Line), "\n")
	if line == "" {
		return nil
	}

	if _, err := fmt.Fprintf(p.w, "  %4d | %s\n", start.Line, line); err != nil {
		return err
	}

	underlineLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		underlineLen = int(end.Col - start.Col)
	}
	pad := strings.Repeat(" ", int(start.Col)-1)
	marker := "^"
	if underlineLen > 1 {
		marker = "^" + strings.Repeat("~", underlineLen-1)
	}
	_, err := fmt.Fprintf(p.w, "       | %s%s\n", pad, sevC.Sprint(marker))
	return err
}
