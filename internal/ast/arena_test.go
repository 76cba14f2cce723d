package ast

import (
	"testing"

	"minilang/internal/source"
)

func TestArenaIDsAreOneBased(t *testing.T) {
	a := NewArena[int](4)
	first := a.Allocate(10)
	second := a.Allocate(20)

	if first != 1 || second != 2 {
		t.Fatalf("expected 1-based ids, got %d and %d", first, second)
	}
	if a.Get(0) != nil {
		t.Fatal("index 0 is the invalid sentinel and must yield nil")
	}
	if got := a.Get(first); got == nil || *got != 10 {
		t.Fatalf("Get(1) = %v", got)
	}
	if a.Get(3) != nil {
		t.Fatal("out-of-range index must yield nil")
	}
}

func TestBuilderOwnsTree(t *testing.T) {
	b := NewBuilder(Hints{})
	sp := source.Span{File: 0, Start: 0, End: 10}

	fileID := b.NewFile(sp)
	name := b.StringsInterner.Intern("main")

	lit := b.Exprs.NewLiteral(sp, LitInt, b.StringsInterner.Intern("0"))
	ret := b.Stmts.NewReturn(sp, lit)
	body := b.Stmts.NewBlock(sp, []StmtID{ret})
	fn := b.Fns.New(Fn{Span: sp, Name: name, Body: body, Result: 1})
	b.PushFn(fileID, fn)

	file := b.Files.Get(fileID)
	if len(file.Funcs) != 1 || file.Funcs[0] != fn {
		t.Fatalf("file does not own its function: %v", file.Funcs)
	}

	block, ok := b.Stmts.Block(b.Fns.Get(fn).Body)
	if !ok || len(block.Stmts) != 1 {
		t.Fatal("function body must be the allocated block")
	}
	retData, ok := b.Stmts.Return(block.Stmts[0])
	if !ok || retData.Value != lit {
		t.Fatal("return payload lost")
	}
}

func TestPayloadAccessorsRejectWrongKind(t *testing.T) {
	b := NewBuilder(Hints{})
	sp := source.Span{}
	lit := b.Exprs.NewLiteral(sp, LitFloat, b.StringsInterner.Intern("2.5"))

	if _, ok := b.Exprs.Binary(lit); ok {
		t.Fatal("Binary accessor must reject a literal expression")
	}
	if _, ok := b.Exprs.Literal(lit); !ok {
		t.Fatal("Literal accessor must accept a literal expression")
	}
}

func TestComparisonClassification(t *testing.T) {
	comparisons := []ExprBinaryOp{BinEq, BinNe, BinLt, BinLe, BinGt, BinGe}
	for _, op := range comparisons {
		if !op.IsComparison() {
			t.Fatalf("%v must be a comparison", op)
		}
	}
	arith := []ExprBinaryOp{BinAdd, BinSub, BinMul, BinDiv}
	for _, op := range arith {
		if op.IsComparison() {
			t.Fatalf("%v must not be a comparison", op)
		}
	}
}
