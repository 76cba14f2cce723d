package format

import (
	"minilang/internal/ast"
)

// Уровни приоритета для восстановления скобок. Совпадают с каскадом
// парсера: присваивание внизу, унарные операторы наверху.
const (
	precLowest     = 0 // присваивание
	precEquality   = 1
	precComparison = 2
	precAdditive   = 3
	precMultiplic  = 4
	precUnary      = 5
	precPrimary    = 6
)

func (p *printer) exprPrec(id ast.ExprID) int {
	expr := p.builder.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprAssign:
		return precLowest
	case ast.ExprBinary:
		data, _ := p.builder.Exprs.Binary(id)
		switch data.Op {
		case ast.BinEq, ast.BinNe:
			return precEquality
		case ast.BinLt, ast.BinLe, ast.BinGt, ast.BinGe:
			return precComparison
		case ast.BinAdd, ast.BinSub:
			return precAdditive
		default:
			return precMultiplic
		}
	case ast.ExprUnary:
		return precUnary
	default:
		return precPrimary
	}
}

// printExpr печатает выражение, заключая его в скобки, если его приоритет
// ниже требуемого контекстом.
func (p *printer) printExpr(id ast.ExprID, minPrec int) {
	prec := p.exprPrec(id)
	if prec < minPrec {
		p.writer.WriteString("(")
		p.printExpr(id, precLowest)
		p.writer.WriteString(")")
		return
	}

	expr := p.builder.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := p.builder.Exprs.Ident(id)
		p.writer.WriteString(p.builder.Name(data.Name))

	case ast.ExprLit:
		data, _ := p.builder.Exprs.Literal(id)
		p.writer.WriteString(p.builder.Name(data.Value))

	case ast.ExprBinary:
		data, _ := p.builder.Exprs.Binary(id)
		// левоассоциативность: правому потомку нужен приоритет на ступень выше
		p.printExpr(data.Left, prec)
		p.writer.WriteString(" ")
		p.writer.WriteString(data.Op.String())
		p.writer.WriteString(" ")
		p.printExpr(data.Right, prec+1)

	case ast.ExprUnary:
		data, _ := p.builder.Exprs.Unary(id)
		p.writer.WriteString(data.Op.String())
		p.printExpr(data.Operand, precUnary)

	case ast.ExprCall:
		data, _ := p.builder.Exprs.Call(id)
		p.writer.WriteString(p.builder.Name(data.Name))
		p.writer.WriteString("(")
		for i, arg := range data.Args {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.printExpr(arg, precLowest)
		}
		p.writer.WriteString(")")

	case ast.ExprAssign:
		data, _ := p.builder.Exprs.Assign(id)
		p.writer.WriteString(p.builder.Name(data.Name))
		p.writer.WriteString(" = ")
		// правоассоциативность: вложенное присваивание скобок не требует
		p.printExpr(data.Value, precLowest)
	}
}
