package parser

import (
	"minilang/internal/ast"
	"minilang/internal/token"
)

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет. Присваивание разбирается
// отдельно (см. parseExpr) и в таблице не участвует.
const (
	precEquality       = 1 // == !=
	precComparison     = 2 // < <= > >=
	precAdditive       = 3 // + -
	precMultiplicative = 4 // * /
)

// getBinaryOperatorPrec возвращает приоритет бинарного оператора,
// либо -1, если токен не бинарный оператор. Все уровни левоассоциативны.
func getBinaryOperatorPrec(kind token.Kind) int {
	switch kind {
	case token.EqEq, token.BangEq:
		return precEquality
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash:
		return precMultiplicative
	default:
		return -1
	}
}

// tokenKindToBinaryOp преобразует токен в тип бинарного оператора
func tokenKindToBinaryOp(kind token.Kind) ast.ExprBinaryOp {
	switch kind {
	case token.Plus:
		return ast.BinAdd
	case token.Minus:
		return ast.BinSub
	case token.Star:
		return ast.BinMul
	case token.Slash:
		return ast.BinDiv
	case token.EqEq:
		return ast.BinEq
	case token.BangEq:
		return ast.BinNe
	case token.Lt:
		return ast.BinLt
	case token.LtEq:
		return ast.BinLe
	case token.Gt:
		return ast.BinGt
	case token.GtEq:
		return ast.BinGe
	default:
		// не должно случаться, если таблица приоритетов корректна
		return ast.BinAdd
	}
}

// getUnaryOperator возвращает тип унарного оператора для токена
func getUnaryOperator(kind token.Kind) (ast.ExprUnaryOp, bool) {
	switch kind {
	case token.Plus:
		return ast.UnPlus, true
	case token.Minus:
		return ast.UnMinus, true
	default:
		return ast.UnPlus, false
	}
}
