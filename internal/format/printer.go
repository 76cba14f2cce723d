package format

import (
	"errors"

	"minilang/internal/ast"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

type printer struct {
	builder *ast.Builder
	writer  *Writer
}

// PrintFile renders the whole file in canonical form: one function per
// paragraph, four-space indent, minimal parentheses.
func PrintFile(b *ast.Builder, fid ast.FileID, opt Options) ([]byte, error) {
	if b == nil {
		return nil, errors.New("format: nil builder")
	}
	if !fid.IsValid() {
		return nil, errors.New("format: invalid file id")
	}
	file := b.Files.Get(fid)
	if file == nil {
		return nil, errors.New("format: missing ast file")
	}

	pr := printer{
		builder: b,
		writer:  NewWriter(opt),
	}
	for i, fnID := range file.Funcs {
		if i > 0 {
			pr.writer.BlankLine()
		}
		pr.printFn(fnID)
	}
	pr.writer.Newline()
	return pr.writer.Bytes(), nil
}

func (p *printer) printFn(id ast.FnID) {
	fn := p.builder.Fns.Get(id)
	if fn == nil {
		return
	}
	p.writer.WriteString("fn ")
	p.writer.WriteString(p.builder.Name(fn.Name))
	p.writer.WriteString("(")
	for i, param := range fn.Params {
		if i > 0 {
			p.writer.WriteString(", ")
		}
		p.writer.WriteString(p.builder.Name(param.Name))
		p.writer.WriteString(": ")
		p.writer.WriteString(param.Type.String())
	}
	p.writer.WriteString("): ")
	p.writer.WriteString(fn.Result.String())
	p.writer.Space()
	p.printBlock(fn.Body)
	p.writer.Newline()
}

func (p *printer) printBlock(id ast.StmtID) {
	block, ok := p.builder.Stmts.Block(id)
	if !ok {
		return
	}
	p.writer.WriteString("{")
	p.writer.Newline()
	p.writer.IndentPush()
	for _, stmtID := range block.Stmts {
		p.printStmt(stmtID)
	}
	p.writer.IndentPop()
	p.writer.WriteString("}")
}

func (p *printer) printStmt(id ast.StmtID) {
	stmt := p.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtBlock:
		p.printBlock(id)
		p.writer.Newline()

	case ast.StmtIf:
		p.printIf(id)
		p.writer.Newline()

	case ast.StmtWhile:
		data, _ := p.builder.Stmts.While(id)
		p.writer.WriteString("while (")
		p.printExpr(data.Cond, precLowest)
		p.writer.WriteString(") ")
		p.printBlock(data.Body)
		p.writer.Newline()

	case ast.StmtReturn:
		data, _ := p.builder.Stmts.Return(id)
		p.writer.WriteString("return ")
		p.printExpr(data.Value, precLowest)
		p.writer.WriteString(";")
		p.writer.Newline()

	case ast.StmtPrint:
		data, _ := p.builder.Stmts.Print(id)
		p.writer.WriteString("print(")
		p.printExpr(data.Value, precLowest)
		p.writer.WriteString(");")
		p.writer.Newline()

	case ast.StmtExpr:
		data, _ := p.builder.Stmts.Expr(id)
		p.printExpr(data.Expr, precLowest)
		p.writer.WriteString(";")
		p.writer.Newline()
	}
}

func (p *printer) printIf(id ast.StmtID) {
	data, ok := p.builder.Stmts.If(id)
	if !ok {
		return
	}
	p.writer.WriteString("if (")
	p.printExpr(data.Cond, precLowest)
	p.writer.WriteString(") ")
	p.printBlock(data.Then)
	if data.Else.IsValid() {
		p.writer.WriteString(" else ")
		if p.builder.Stmts.Get(data.Else).Kind == ast.StmtIf {
			p.printIf(data.Else)
		} else {
			p.printBlock(data.Else)
		}
	}
}
