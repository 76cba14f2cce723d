package parser

import (
	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/token"
)

// parseBlock — '{' stmt* '}'. Блок открывает новую лексическую область
// на этапе разрешения имён, парсер об этом ничего не знает.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	lbrace, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return ast.NoStmtID, false
	}

	var stmts []ast.StmtID
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBrace, "expected '}' before end of file")
			return ast.NoStmtID, false
		}
		stmt, ok := p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		stmts = append(stmts, stmt)
	}
	rbrace := p.advance() // '}'

	return p.arenas.Stmts.NewBlock(lbrace.Span.Cover(rbrace.Span), stmts), true
}

// parseStmt выбирает распознаватель по первому токену.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwPrint:
		return p.parsePrintStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseIfStmt — 'if' '(' expr ')' block ('else' (block | if))?
func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	ifTok := p.advance() // 'if'
	cond, ok := p.parseGuard("if")
	if !ok {
		return ast.NoStmtID, false
	}
	thenStmt, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	elseStmt := ast.NoStmtID
	if p.at(token.KwElse) {
		p.advance()
		if p.at(token.KwIf) {
			elseStmt, ok = p.parseIfStmt()
		} else {
			elseStmt, ok = p.parseBlock()
		}
		if !ok {
			return ast.NoStmtID, false
		}
	}

	return p.arenas.Stmts.NewIf(ifTok.Span.Cover(p.lastSpan), cond, thenStmt, elseStmt), true
}

// parseWhileStmt — 'while' '(' expr ')' block
func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	whileTok := p.advance() // 'while'
	cond, ok := p.parseGuard("while")
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewWhile(whileTok.Span.Cover(p.lastSpan), cond, body), true
}

// parseGuard — обязательные скобки вокруг условия if/while.
func (p *Parser) parseGuard(kw string) (ast.ExprID, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after '"+kw+"'"); !ok {
		return ast.NoExprID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition"); !ok {
		return ast.NoExprID, false
	}
	return cond, true
}

// parseReturnStmt — 'return' expr ';'
func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	retTok := p.advance() // 'return'
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return value"); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewReturn(retTok.Span.Cover(p.lastSpan), value), true
}

// parsePrintStmt — 'print' '(' expr ')' ';'. print — статэмент, не выражение.
func (p *Parser) parsePrintStmt() (ast.StmtID, bool) {
	printTok := p.advance() // 'print'
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'print'"); !ok {
		return ast.NoStmtID, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after print argument"); !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after print"); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewPrint(printTok.Span.Cover(p.lastSpan), value), true
}

// parseExprStmt — expr ';' (присваивания и вызовы ради эффекта).
func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	start := p.lx.Peek().Span
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after expression"); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewExpr(start.Cover(p.lastSpan), expr), true
}
