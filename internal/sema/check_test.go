package sema_test

import (
	"testing"

	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/lexer"
	"minilang/internal/parser"
	"minilang/internal/sema"
	"minilang/internal/source"
	"minilang/internal/types"
)

func checkSource(t *testing.T, src string) (sema.Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("test.mini", []byte(src))
	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fid), lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	parseRes := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: reporter})
	if !parseRes.Ok {
		t.Fatalf("parse failed: %+v", bag.Items())
	}
	return sema.Check(builder, parseRes.File, sema.Options{Reporter: reporter}), bag
}

func errorCodes(bag *diag.Bag) []diag.Code {
	var codes []diag.Code
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			codes = append(codes, d.Code)
		}
	}
	return codes
}

func wantOnlyCode(t *testing.T, bag *diag.Bag, want diag.Code) {
	t.Helper()
	codes := errorCodes(bag)
	if len(codes) != 1 || codes[0] != want {
		t.Errorf("error codes = %v, want exactly [%v]", codes, want)
	}
}

func TestCleanProgram(t *testing.T) {
	res, bag := checkSource(t, `
fn factorial(n: int): int {
    result = 1;
    i = 2;
    while (i <= n) {
        result = result * i;
        i = i + 1;
    }
    return result;
}

fn main(): int {
    print(factorial(5));
    return 0;
}
`)
	if !res.Ok || bag.HasErrors() {
		t.Fatalf("clean program reported errors: %+v", bag.Items())
	}
}

func TestFirstAssignmentFixesType(t *testing.T) {
	_, bag := checkSource(t, `
fn main(): int {
    x = 1;
    x = 2.5;
    return x;
}
`)
	wantOnlyCode(t, bag, diag.TypeMismatch)
}

func TestForwardCallResolves(t *testing.T) {
	res, bag := checkSource(t, `
fn main(): int {
    return helper(3);
}

fn helper(x: int): int {
    return x + 1;
}
`)
	if !res.Ok || bag.HasErrors() {
		t.Fatalf("forward call must resolve: %+v", bag.Items())
	}
}

func TestBlockScopeClosesOverVariable(t *testing.T) {
	_, bag := checkSource(t, `
fn main(): int {
    {
        inner = 1;
    }
    return inner;
}
`)
	wantOnlyCode(t, bag, diag.SemaUndeclaredIdentifier)
}

func TestBlockAssignsOuterVariable(t *testing.T) {
	// присваивание поднимается по цепочке областей: v внутри блока — внешняя v
	res, bag := checkSource(t, `
fn main(): int {
    v = 1;
    {
        v = 2;
        w = v + 3;
        print(w);
    }
    return v;
}
`)
	if !res.Ok || bag.HasErrors() {
		t.Fatalf("assignment to outer variable inside block must check: %+v", bag.Items())
	}
}

func TestAssignmentSeesOuterScope(t *testing.T) {
	// присваивание внутри блока находит внешнюю переменную и требует её тип
	_, bag := checkSource(t, `
fn main(): int {
    v = 1;
    {
        v = 2.5;
    }
    return v;
}
`)
	wantOnlyCode(t, bag, diag.TypeMismatch)
}

func TestArityMismatch(t *testing.T) {
	_, bag := checkSource(t, `
fn factorial(n: int): int {
    return n;
}

fn main(): int {
    return factorial(1, 2);
}
`)
	wantOnlyCode(t, bag, diag.TypeArityMismatch)
}

func TestArgumentTypeMismatch(t *testing.T) {
	_, bag := checkSource(t, `
fn half(x: float): float {
    return x / 2.0;
}

fn main(): int {
    y = half(4);
    return 0;
}
`)
	wantOnlyCode(t, bag, diag.TypeMismatch)
}

func TestReturnTypeMismatch(t *testing.T) {
	_, bag := checkSource(t, `
fn main(): int {
    return 2.5;
}
`)
	wantOnlyCode(t, bag, diag.TypeReturnMismatch)
}

func TestBareValueCondition(t *testing.T) {
	_, bag := checkSource(t, `
fn main(): int {
    if (1 + 2) {
        return 1;
    }
    return 0;
}
`)
	wantOnlyCode(t, bag, diag.TypeInvalidCondition)
}

func TestComparisonAsValue(t *testing.T) {
	_, bag := checkSource(t, `
fn main(): int {
    x = 1 < 2;
    return 0;
}
`)
	wantOnlyCode(t, bag, diag.TypeConditionAsValue)
}

func TestParenthesizedComparisonGuardOK(t *testing.T) {
	res, bag := checkSource(t, `
fn main(): int {
    if ((1 < 2)) {
        return 1;
    }
    return 0;
}
`)
	if !res.Ok || bag.HasErrors() {
		t.Fatalf("parenthesized comparison guard must be accepted: %+v", bag.Items())
	}
}

func TestUndeclaredIdentifier(t *testing.T) {
	_, bag := checkSource(t, `
fn main(): int {
    return missing;
}
`)
	wantOnlyCode(t, bag, diag.SemaUndeclaredIdentifier)
}

func TestUnknownFunction(t *testing.T) {
	_, bag := checkSource(t, `
fn main(): int {
    return missing(1);
}
`)
	wantOnlyCode(t, bag, diag.SemaUnknownFunction)
}

func TestCallToVariable(t *testing.T) {
	_, bag := checkSource(t, `
fn main(): int {
    f = 1;
    return f(2);
}
`)
	wantOnlyCode(t, bag, diag.SemaCallToVariable)
}

func TestDuplicateParameter(t *testing.T) {
	_, bag := checkSource(t, `
fn bad(a: int, a: int): int {
    return 0;
}
`)
	wantOnlyCode(t, bag, diag.SemaDuplicateDeclaration)
}

func TestNoCascadeAfterFirstError(t *testing.T) {
	// тип x потерян, но использование x дальше не плодит вторичных ошибок
	_, bag := checkSource(t, `
fn main(): int {
    x = missing;
    y = x + 1;
    return y;
}
`)
	wantOnlyCode(t, bag, diag.SemaUndeclaredIdentifier)
}

func TestErrorsCollectedAcrossFunctions(t *testing.T) {
	res, bag := checkSource(t, `
fn first(): int {
    return 2.5;
}

fn second(): int {
    return missing;
}
`)
	if res.Ok {
		t.Fatalf("expected failures")
	}
	codes := errorCodes(bag)
	if len(codes) != 2 {
		t.Fatalf("both functions must report, got %v", codes)
	}
}

func TestExprTypesRecorded(t *testing.T) {
	res, bag := checkSource(t, `
fn main(): float {
    x = 1.5;
    return x * 2.0;
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	for _, fnRes := range res.Fns {
		floats := 0
		for _, ty := range fnRes.ExprTypes {
			if ty == types.Float64 {
				floats++
			}
		}
		if floats == 0 {
			t.Errorf("expected float-typed expressions to be recorded")
		}
	}
}
