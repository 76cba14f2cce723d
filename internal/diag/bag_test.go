package diag

import (
	"testing"

	"minilang/internal/source"
)

func span(file, start, end uint32) source.Span {
	return source.Span{File: source.FileID(file), Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(LexUnknownChar, span(0, 0, 1), "a")) {
		t.Fatal("first add must succeed")
	}
	if !b.Add(NewError(LexUnknownChar, span(0, 1, 2), "b")) {
		t.Fatal("second add must succeed")
	}
	if b.Add(NewError(LexUnknownChar, span(0, 2, 3), "c")) {
		t.Fatal("third add must be rejected: limit reached")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", b.Len())
	}
}

func TestBagSortOrder(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(TypeMismatch, span(0, 30, 31), "late"))
	b.Add(NewError(SynUnexpectedToken, span(0, 5, 6), "early"))
	b.Add(New(SevWarning, SemaInfo, span(0, 5, 6), "same-pos warning"))
	b.Sort()

	items := b.Items()
	if items[0].Message != "early" {
		t.Fatalf("expected error first at same position, got %q", items[0].Message)
	}
	if items[2].Message != "late" {
		t.Fatalf("expected positional order, got %q last", items[2].Message)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	d := NewError(SemaUndeclaredIdentifier, span(0, 3, 4), "undeclared identifier 'x'")
	b.Add(d)
	b.Add(d)
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("expected 1 item after dedup, got %d", b.Len())
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(LexUnknownChar, span(0, 0, 1), "a"))
	other := NewBag(2)
	other.Add(NewError(LexUnknownChar, span(0, 1, 2), "b"))
	other.Add(NewError(LexUnknownChar, span(0, 2, 3), "c"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Fatalf("expected merged 3 items, got %d", a.Len())
	}
}

func TestCodeStageRanges(t *testing.T) {
	cases := map[Code]Stage{
		LexUnknownChar:           StageLexer,
		SynUnexpectedToken:       StageParser,
		SemaDuplicateDeclaration: StageResolver,
		SemaUndeclaredIdentifier: StageResolver,
		TypeMismatch:             StageTypeChecker,
		TypeArityMismatch:        StageTypeChecker,
		TypeReturnMismatch:       StageTypeChecker,
		TypeInvalidCondition:     StageTypeChecker,
		LowerMissingReturn:       StageLowering,
	}
	for code, want := range cases {
		if got := code.Stage(); got != want {
			t.Fatalf("Code %d: stage %v, want %v", code, got, want)
		}
	}
}

func TestCodeID(t *testing.T) {
	if got := TypeMismatch.ID(); got != "TYP4001" {
		t.Fatalf("TypeMismatch.ID() = %q", got)
	}
	if got := LowerMissingReturn.ID(); got != "LOW5001" {
		t.Fatalf("LowerMissingReturn.ID() = %q", got)
	}
}

func TestCountingReporter(t *testing.T) {
	bag := NewBag(10)
	cr := &CountingReporter{Next: BagReporter{Bag: bag}}
	cr.Report(TypeMismatch, SevError, span(0, 0, 1), "boom", nil)
	cr.Report(SemaInfo, SevInfo, span(0, 0, 1), "note", nil)

	if cr.Errors != 1 {
		t.Fatalf("expected 1 counted error, got %d", cr.Errors)
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 forwarded diagnostics, got %d", bag.Len())
	}
}
