package parser

import (
	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/source"
	"minilang/internal/token"
)

// parseExpr — вершина каскада: присваивание. Оно правоассоциативно и
// имеет самый низкий приоритет; цель обязана быть голым идентификатором.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	lhs, ok := p.parseBinaryExpr(0)
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.Assign) {
		return lhs, true
	}

	lhsExpr := p.arenas.Exprs.Get(lhs)
	ident, isIdent := p.arenas.Exprs.Ident(lhs)
	if !isIdent {
		p.report(diag.SynBadAssignTarget, diag.SevError, lhsExpr.Span,
			"assignment target must be a bare identifier")
		return ast.NoExprID, false
	}
	nameSpan := lhsExpr.Span

	p.advance() // '='
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := nameSpan.Cover(p.arenas.Exprs.Get(value).Span)
	return p.arenas.Exprs.NewAssign(span, ident.Name, nameSpan, value), true
}

// parseBinaryExpr — precedence climbing по таблице из op_table.go.
// Все бинарные операторы левоассоциативны.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		prec := getBinaryOperatorPrec(p.lx.Peek().Kind)
		if prec < 0 || prec < minPrec {
			return left, true
		}
		opTok := p.advance()
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}
		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(span, tokenKindToBinaryOp(opTok.Kind), left, right)
	}
}

// parseUnaryExpr — префиксные '+'/'-'.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	if op, ok := getUnaryOperator(p.lx.Peek().Kind); ok {
		opTok := p.advance()
		operand, ok := p.parseUnaryExpr()
		if !ok {
			return ast.NoExprID, false
		}
		span := opTok.Span.Cover(p.arenas.Exprs.Get(operand).Span)
		return p.arenas.Exprs.NewUnary(span, op, operand), true
	}
	return p.parsePrimaryExpr()
}

// parsePrimaryExpr — литерал, идентификатор, вызов или скобки.
// Идентификатор от вызова отличаем одним токеном lookahead: '('.
// Скобочное выражение не порождает узла — возвращаем внутренний.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	switch p.lx.Peek().Kind {
	case token.IntLit:
		tok := p.advance()
		value := p.arenas.StringsInterner.Intern(tok.Text)
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitInt, value), true

	case token.FloatLit:
		tok := p.advance()
		value := p.arenas.StringsInterner.Intern(tok.Text)
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitFloat, value), true

	case token.Ident:
		tok := p.advance()
		name := p.arenas.StringsInterner.Intern(tok.Text)
		if p.at(token.LParen) {
			return p.parseCallArgs(name, tok.Span)
		}
		return p.arenas.Exprs.NewIdent(tok.Span, name), true

	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
			return ast.NoExprID, false
		}
		return inner, true

	default:
		p.err(diag.SynExpectExpression, "expected expression, got \""+p.lx.Peek().Text+"\"")
		return ast.NoExprID, false
	}
}

// parseCallArgs — аргументы вызова после уже съеденного имени.
func (p *Parser) parseCallArgs(name source.StringID, nameSpan source.Span) (ast.ExprID, bool) {
	p.advance() // '('

	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	rparen, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after call arguments")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewCall(nameSpan.Cover(rparen.Span), name, nameSpan, args), true
}
