package mir

import (
	"strconv"

	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/types"
)

func (lw *lowerer) lowerExpr(id ast.ExprID) ValueID {
	if lw.failed {
		return NoValueID
	}
	expr := lw.builder.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprLit:
		return lw.lowerLiteral(id)

	case ast.ExprIdent:
		symID := lw.fnRes.IdentSyms[id]
		local := lw.localFor(symID)
		return lw.emit(Instr{
			Kind: InstrLoad,
			Type: lw.fn.Locals[local].Type,
			Load: LoadInstr{Local: local},
		})

	case ast.ExprUnary:
		data, _ := lw.builder.Exprs.Unary(id)
		operand := lw.lowerExpr(data.Operand)
		if data.Op == ast.UnPlus {
			// унарный плюс — тождество
			return operand
		}
		return lw.emit(Instr{
			Kind: InstrUn,
			Type: lw.fnRes.ExprTypes[id],
			Un:   UnInstr{Op: OpNeg, Operand: operand},
		})

	case ast.ExprBinary:
		data, _ := lw.builder.Exprs.Binary(id)
		left := lw.lowerExpr(data.Left)
		right := lw.lowerExpr(data.Right)
		return lw.emit(Instr{
			Kind: InstrBin,
			Type: lw.fnRes.ExprTypes[id],
			Bin:  BinInstr{Op: binOpFor(data.Op), Left: left, Right: right},
		})

	case ast.ExprCall:
		data, _ := lw.builder.Exprs.Call(id)
		args := make([]ValueID, len(data.Args))
		for i, arg := range data.Args {
			args[i] = lw.lowerExpr(arg)
		}
		name := lw.builder.Name(data.Name)
		return lw.emit(Instr{
			Kind: InstrCall,
			Type: lw.fnRes.ExprTypes[id],
			Call: CallInstr{Callee: lw.byName[name], Name: name, Args: args},
		})

	case ast.ExprAssign:
		data, _ := lw.builder.Exprs.Assign(id)
		value := lw.lowerExpr(data.Value)
		local := lw.localFor(lw.fnRes.IdentSyms[id])
		lw.emit(Instr{
			Kind:  InstrStore,
			Type:  lw.fn.Locals[local].Type,
			Store: StoreInstr{Local: local, Value: value},
		})
		// значение присваивания — присвоенное значение (x = y = 2)
		return value
	}
	return NoValueID
}

// lowerCond понижает охранное сравнение: одна инструкция сравнения,
// чей результат питает ближайший условный переход. Тип инструкции —
// тип операндов, чтобы бэкенд знал ширину сравнения.
func (lw *lowerer) lowerCond(id ast.ExprID) ValueID {
	data, _ := lw.builder.Exprs.Binary(id)
	left := lw.lowerExpr(data.Left)
	right := lw.lowerExpr(data.Right)
	return lw.emit(Instr{
		Kind: InstrBin,
		Type: lw.fnRes.ExprTypes[data.Left],
		Bin:  BinInstr{Op: binOpFor(data.Op), Left: left, Right: right},
	})
}

func (lw *lowerer) lowerLiteral(id ast.ExprID) ValueID {
	data, _ := lw.builder.Exprs.Literal(id)
	expr := lw.builder.Exprs.Get(id)
	text := lw.builder.Name(data.Value)

	if data.Kind == ast.LitFloat {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			lw.error(diag.LowerLiteralOverflow, expr, "float literal '"+text+"' does not fit float")
			return NoValueID
		}
		return lw.emit(Instr{
			Kind:  InstrConst,
			Type:  types.Float64,
			Const: ConstInstr{FloatVal: value},
		})
	}

	value, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		lw.error(diag.LowerLiteralOverflow, expr, "int literal '"+text+"' does not fit int")
		return NoValueID
	}
	return lw.emit(Instr{
		Kind:  InstrConst,
		Type:  types.Int32,
		Const: ConstInstr{IntVal: int32(value)},
	})
}

func (lw *lowerer) error(code diag.Code, expr *ast.Expr, msg string) {
	lw.failed = true
	if lw.reporter != nil {
		lw.reporter.Report(code, diag.SevError, expr.Span, msg, nil)
	}
}

func binOpFor(op ast.ExprBinaryOp) BinOp {
	switch op {
	case ast.BinAdd:
		return OpAdd
	case ast.BinSub:
		return OpSub
	case ast.BinMul:
		return OpMul
	case ast.BinDiv:
		return OpDiv
	case ast.BinEq:
		return OpCmpEq
	case ast.BinNe:
		return OpCmpNe
	case ast.BinLt:
		return OpCmpLt
	case ast.BinLe:
		return OpCmpLe
	case ast.BinGt:
		return OpCmpGt
	default:
		return OpCmpGe
	}
}
