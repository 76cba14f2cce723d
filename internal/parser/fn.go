package parser

import (
	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/token"
	"minilang/internal/types"
)

// parseFnItem — разбор одной функции:
//
//	fn IDENT '(' params? ')' ':' type block
func (p *Parser) parseFnItem() (ast.FnID, bool) {
	fnTok, ok := p.expect(token.KwFn, diag.SynUnexpectedTopLevel,
		"expected 'fn', got \""+p.lx.Peek().Text+"\"")
	if !ok {
		return ast.NoFnID, false
	}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoFnID, false
	}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return ast.NoFnID, false
	}

	var params []ast.Param
	if !p.at(token.RParen) {
		params, ok = p.parseParams()
		if !ok {
			return ast.NoFnID, false
		}
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		return ast.NoFnID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' before return type"); !ok {
		return ast.NoFnID, false
	}

	result, ok := p.parseTypeName()
	if !ok {
		return ast.NoFnID, false
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoFnID, false
	}

	fn := ast.Fn{
		Span:     fnTok.Span.Cover(p.lastSpan),
		Name:     name,
		NameSpan: nameSpan,
		Params:   params,
		Result:   result,
		Body:     body,
	}
	return p.arenas.Fns.New(fn), true
}

// parseParams — непустой список `IDENT ':' type`, разделённый запятыми.
func (p *Parser) parseParams() ([]ast.Param, bool) {
	var params []ast.Param
	for {
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); !ok {
			return nil, false
		}
		ty, ok := p.parseTypeName()
		if !ok {
			return nil, false
		}
		params = append(params, ast.Param{
			Name:     name,
			NameSpan: nameSpan,
			Type:     ty,
			Span:     nameSpan.Cover(p.lastSpan),
		})
		if !p.at(token.Comma) {
			return params, true
		}
		p.advance()
	}
}

// parseTypeName — 'int' или 'float'; других типов в языке нет.
func (p *Parser) parseTypeName() (types.Kind, bool) {
	switch p.lx.Peek().Kind {
	case token.KwInt:
		p.advance()
		return types.Int32, true
	case token.KwFloat:
		p.advance()
		return types.Float64, true
	default:
		p.err(diag.SynExpectType, "expected type name, got \""+p.lx.Peek().Text+"\"")
		return types.Invalid, false
	}
}
