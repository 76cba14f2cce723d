package mir

import (
	"minilang/internal/ast"
)

func (lw *lowerer) lowerBlockStmts(id ast.StmtID) {
	block, ok := lw.builder.Stmts.Block(id)
	if !ok {
		return
	}
	for _, stmtID := range block.Stmts {
		lw.lowerStmt(stmtID)
		if lw.failed {
			return
		}
	}
}

func (lw *lowerer) lowerStmt(id ast.StmtID) {
	stmt := lw.builder.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtBlock:
		// лексические области уже разрешены; на уровне IR блок прозрачен
		lw.lowerBlockStmts(id)

	case ast.StmtIf:
		lw.lowerIf(id)

	case ast.StmtWhile:
		lw.lowerWhile(id)

	case ast.StmtReturn:
		data, _ := lw.builder.Stmts.Return(id)
		value := lw.lowerExpr(data.Value)
		lw.setTerm(Terminator{Kind: TermReturn, Return: ReturnTerm{Value: value}})

	case ast.StmtPrint:
		data, _ := lw.builder.Stmts.Print(id)
		value := lw.lowerExpr(data.Value)
		lw.emit(Instr{
			Kind:  InstrPrint,
			Type:  lw.fnRes.ExprTypes[data.Value],
			Print: PrintInstr{Value: value},
		})

	case ast.StmtExpr:
		data, _ := lw.builder.Stmts.Expr(id)
		lw.lowerExpr(data.Expr)
	}
}

// lowerIf: блок условия завершается условным переходом на then/else
// (или then/merge без else); ветка, не завершившаяся return, прыгает
// в merge.
func (lw *lowerer) lowerIf(id ast.StmtID) {
	data, _ := lw.builder.Stmts.If(id)

	cond := lw.lowerCond(data.Cond)
	thenB := lw.newBlock()
	elseB := NoBlockID
	if data.Else.IsValid() {
		elseB = lw.newBlock()
	}
	mergeB := lw.newBlock()

	ifElse := mergeB
	if elseB != NoBlockID {
		ifElse = elseB
	}
	lw.setTerm(Terminator{Kind: TermIf, If: IfTerm{Cond: cond, Then: thenB, Else: ifElse}})

	lw.cur = thenB
	lw.lowerStmt(data.Then)
	lw.setTerm(Terminator{Kind: TermGoto, Goto: GotoTerm{Target: mergeB}})

	if elseB != NoBlockID {
		lw.cur = elseB
		lw.lowerStmt(data.Else)
		lw.setTerm(Terminator{Kind: TermGoto, Goto: GotoTerm{Target: mergeB}})
	}

	lw.cur = mergeB
}

// lowerWhile: блок условия перезаходится из конца тела; выход — в exit.
func (lw *lowerer) lowerWhile(id ast.StmtID) {
	data, _ := lw.builder.Stmts.While(id)

	condB := lw.newBlock()
	lw.setTerm(Terminator{Kind: TermGoto, Goto: GotoTerm{Target: condB}})

	lw.cur = condB
	cond := lw.lowerCond(data.Cond)
	bodyB := lw.newBlock()
	exitB := lw.newBlock()
	lw.setTerm(Terminator{Kind: TermIf, If: IfTerm{Cond: cond, Then: bodyB, Else: exitB}})

	lw.cur = bodyB
	lw.lowerStmt(data.Body)
	// обратное ребро к условию
	lw.setTerm(Terminator{Kind: TermGoto, Goto: GotoTerm{Target: condB}})

	lw.cur = exitB
}
