package ast

import (
	"minilang/internal/source"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprBinary
	ExprUnary
	ExprCall
	ExprAssign
)

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLitKind distinguishes numeric literal flavours.
type ExprLitKind uint8

const (
	LitInt ExprLitKind = iota
	LitFloat
)

// ExprBinaryOp enumerates binary operators.
type ExprBinaryOp uint8

const (
	BinAdd ExprBinaryOp = iota // +
	BinSub                     // -
	BinMul                     // *
	BinDiv                     // /
	BinEq                      // ==
	BinNe                      // !=
	BinLt                      // <
	BinLe                      // <=
	BinGt                      // >
	BinGe                      // >=
)

// IsComparison reports whether the operator yields a condition rather than a
// value. Conditions are only legal directly under if/while guards.
func (op ExprBinaryOp) IsComparison() bool {
	switch op {
	case BinEq, BinNe, BinLt, BinLe, BinGt, BinGe:
		return true
	default:
		return false
	}
}

func (op ExprBinaryOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinEq:
		return "=="
	case BinNe:
		return "!="
	case BinLt:
		return "<"
	case BinLe:
		return "<="
	case BinGt:
		return ">"
	case BinGe:
		return ">="
	default:
		return "?"
	}
}

// ExprUnaryOp enumerates unary prefix operators.
type ExprUnaryOp uint8

const (
	UnPlus  ExprUnaryOp = iota // +
	UnMinus                    // -
)

func (op ExprUnaryOp) String() string {
	if op == UnMinus {
		return "-"
	}
	return "+"
}

type ExprIdentData struct {
	Name source.StringID
}

type ExprLiteralData struct {
	Kind ExprLitKind
	// Value хранит исходный текст литерала; число парсится на понижении.
	Value source.StringID
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

// ExprCallData: вызываемое имя в MiniLang — всегда голый идентификатор.
type ExprCallData struct {
	Name     source.StringID
	NameSpan source.Span
	Args     []ExprID
}

// ExprAssignData: присваивание — выражение с самым низким приоритетом,
// цель всегда голый идентификатор.
type ExprAssignData struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
}
