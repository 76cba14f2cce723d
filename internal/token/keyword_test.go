package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"fn":     KwFn,
		"return": KwReturn,
		"if":     KwIf,
		"else":   KwElse,
		"while":  KwWhile,
		"int":    KwInt,
		"float":  KwFloat,
		"print":  KwPrint,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{
		"Fn", "RETURN", "If", // регистр важен
		"integer", "float64", "printf",
		"main", "factorial",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestKindString(t *testing.T) {
	if KwFn.String() != "fn" {
		t.Fatalf("KwFn.String() = %q", KwFn.String())
	}
	if EqEq.String() != "==" {
		t.Fatalf("EqEq.String() = %q", EqEq.String())
	}
	if Kind(200).String() != "unknown" {
		t.Fatalf("out-of-range kind must stringify as unknown")
	}
}

func TestTokenClassification(t *testing.T) {
	if !(Token{Kind: IntLit}).IsLiteral() || (Token{Kind: Ident}).IsLiteral() {
		t.Fatal("IsLiteral misclassifies")
	}
	if !(Token{Kind: KwWhile}).IsKeyword() || (Token{Kind: Semicolon}).IsKeyword() {
		t.Fatal("IsKeyword misclassifies")
	}
	if !(Token{Kind: KwInt}).IsTypeKeyword() || (Token{Kind: KwFn}).IsTypeKeyword() {
		t.Fatal("IsTypeKeyword misclassifies")
	}
	if !(Token{Kind: LtEq}).IsPunctOrOp() || (Token{Kind: EOF}).IsPunctOrOp() {
		t.Fatal("IsPunctOrOp misclassifies")
	}
}
