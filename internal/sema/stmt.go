package sema

import (
	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/source"
	"minilang/internal/symbols"
)

func (c *checker) errorAt(code diag.Code, sp source.Span, msg string) {
	c.reporter.Report(code, diag.SevError, sp, msg, nil)
}

func (c *checker) checkStmt(id ast.StmtID, scope symbols.ScopeID) {
	stmt := c.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtBlock:
		child := c.res.Env.Scopes.New(symbols.ScopeBlock, scope, stmt.Span)
		c.checkBlockInScope(id, child)

	case ast.StmtIf:
		data, _ := c.builder.Stmts.If(id)
		c.checkCond(data.Cond, scope)
		c.checkStmt(data.Then, scope)
		if data.Else.IsValid() {
			c.checkStmt(data.Else, scope)
		}

	case ast.StmtWhile:
		data, _ := c.builder.Stmts.While(id)
		c.checkCond(data.Cond, scope)
		c.checkStmt(data.Body, scope)

	case ast.StmtReturn:
		data, _ := c.builder.Stmts.Return(id)
		ty := c.checkExpr(data.Value, scope)
		if ty.IsValid() && ty != c.fn.Result {
			c.errorAt(diag.TypeReturnMismatch, c.builder.Exprs.Get(data.Value).Span,
				"cannot return "+ty.String()+" from a function declared "+c.fn.Result.String())
		}

	case ast.StmtPrint:
		data, _ := c.builder.Stmts.Print(id)
		// print принимает оба типа и не производит значения
		c.checkExpr(data.Value, scope)

	case ast.StmtExpr:
		data, _ := c.builder.Stmts.Expr(id)
		c.checkExpr(data.Expr, scope)
	}
}

// checkBlockInScope проверяет операторы блока в уже выбранной области.
// Для тела функции это область функции с предобъявленными параметрами.
func (c *checker) checkBlockInScope(id ast.StmtID, scope symbols.ScopeID) {
	block, ok := c.builder.Stmts.Block(id)
	if !ok {
		return
	}
	for _, stmtID := range block.Stmts {
		c.checkStmt(stmtID, scope)
	}
}
