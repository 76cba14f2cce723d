package token

import (
	"minilang/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFn, KwReturn, KwIf, KwElse, KwWhile, KwInt, KwFloat, KwPrint:
		return true
	default:
		return false
	}
}

// IsTypeKeyword reports whether the token names a primitive type.
func (t Token) IsTypeKeyword() bool {
	return t.Kind == KwInt || t.Kind == KwFloat
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Assign, EqEq, BangEq, Lt, LtEq, Gt, GtEq,
		LParen, RParen, LBrace, RBrace, Colon, Comma, Semicolon:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
