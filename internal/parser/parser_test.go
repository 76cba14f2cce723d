package parser_test

import (
	"testing"

	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/lexer"
	"minilang/internal/parser"
	"minilang/internal/source"
	"minilang/internal/types"
)

// parseSource — прогоняет строку через лексер и парсер.
func parseSource(t *testing.T, src string) (*ast.Builder, parser.Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mini", []byte(src))
	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: reporter})
	return builder, res, bag
}

func mustParse(t *testing.T, src string) (*ast.Builder, *ast.File) {
	t.Helper()
	builder, res, bag := parseSource(t, src)
	if !res.Ok {
		t.Fatalf("parse failed: %+v", bag.Items())
	}
	return builder, builder.Files.Get(res.File)
}

func firstError(t *testing.T, src string) diag.Diagnostic {
	t.Helper()
	_, res, bag := parseSource(t, src)
	if res.Ok {
		t.Fatalf("expected parse error, got none")
	}
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			return d
		}
	}
	t.Fatalf("parse reported failure but bag has no errors")
	return diag.Diagnostic{}
}

func TestParseFactorial(t *testing.T) {
	src := `
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
`
	builder, file := mustParse(t, src)
	if len(file.Funcs) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(file.Funcs))
	}

	fact := builder.Fns.Get(file.Funcs[0])
	if builder.Name(fact.Name) != "factorial" {
		t.Errorf("fn[0] name = %q, want factorial", builder.Name(fact.Name))
	}
	if len(fact.Params) != 1 || builder.Name(fact.Params[0].Name) != "n" || fact.Params[0].Type != types.Int32 {
		t.Errorf("unexpected params: %+v", fact.Params)
	}
	if fact.Result != types.Int32 {
		t.Errorf("fn[0] result = %v, want int", fact.Result)
	}

	body, ok := builder.Stmts.Block(fact.Body)
	if !ok {
		t.Fatalf("fn body is not a block")
	}
	// result = 1; i = 2; while ...; return result;
	if len(body.Stmts) != 4 {
		t.Fatalf("expected 4 body statements, got %d", len(body.Stmts))
	}
	if builder.Stmts.Get(body.Stmts[2]).Kind != ast.StmtWhile {
		t.Errorf("stmt[2] kind = %v, want while", builder.Stmts.Get(body.Stmts[2]).Kind)
	}
	if builder.Stmts.Get(body.Stmts[3]).Kind != ast.StmtReturn {
		t.Errorf("stmt[3] kind = %v, want return", builder.Stmts.Get(body.Stmts[3]).Kind)
	}

	mainFn := builder.Fns.Get(file.Funcs[1])
	mainBody, _ := builder.Stmts.Block(mainFn.Body)
	printData, ok := builder.Stmts.Print(mainBody.Stmts[0])
	if !ok {
		t.Fatalf("main stmt[0] is not print")
	}
	call, ok := builder.Exprs.Call(printData.Value)
	if !ok {
		t.Fatalf("print argument is not a call")
	}
	if builder.Name(call.Name) != "factorial" || len(call.Args) != 1 {
		t.Errorf("unexpected call: name=%q args=%d", builder.Name(call.Name), len(call.Args))
	}
}

func TestPrecedence(t *testing.T) {
	// 1 + 2 * 3 == 7  →  (==  (+ 1 (* 2 3))  7)
	builder, file := mustParse(t, `
fn main(): int {
    if (1 + 2 * 3 == 7) { return 1; }
    return 0;
}
`)
	fn := builder.Fns.Get(file.Funcs[0])
	body, _ := builder.Stmts.Block(fn.Body)
	ifData, ok := builder.Stmts.If(body.Stmts[0])
	if !ok {
		t.Fatalf("stmt[0] is not if")
	}

	eq, ok := builder.Exprs.Binary(ifData.Cond)
	if !ok || eq.Op != ast.BinEq {
		t.Fatalf("guard root op = %+v, want ==", eq)
	}
	add, ok := builder.Exprs.Binary(eq.Left)
	if !ok || add.Op != ast.BinAdd {
		t.Fatalf("left of == is %+v, want +", add)
	}
	mul, ok := builder.Exprs.Binary(add.Right)
	if !ok || mul.Op != ast.BinMul {
		t.Fatalf("right of + is %+v, want *", mul)
	}
}

func TestLeftAssociativity(t *testing.T) {
	// 10 - 3 - 2  →  (- (- 10 3) 2)
	builder, file := mustParse(t, `
fn main(): int {
    x = 10 - 3 - 2;
    return x;
}
`)
	fn := builder.Fns.Get(file.Funcs[0])
	body, _ := builder.Stmts.Block(fn.Body)
	exprStmt, _ := builder.Stmts.Expr(body.Stmts[0])
	assign, ok := builder.Exprs.Assign(exprStmt.Expr)
	if !ok {
		t.Fatalf("stmt[0] is not an assignment")
	}
	outer, ok := builder.Exprs.Binary(assign.Value)
	if !ok || outer.Op != ast.BinSub {
		t.Fatalf("outer op = %+v, want -", outer)
	}
	inner, ok := builder.Exprs.Binary(outer.Left)
	if !ok || inner.Op != ast.BinSub {
		t.Fatalf("inner op should be the left child, got %+v", inner)
	}
	if lit, ok := builder.Exprs.Literal(outer.Right); !ok || builder.Name(lit.Value) != "2" {
		t.Errorf("rightmost operand should be 2")
	}
}

func TestAssignmentRightAssociative(t *testing.T) {
	builder, file := mustParse(t, `
fn main(): int {
    x = y = 2;
    return x;
}
`)
	fn := builder.Fns.Get(file.Funcs[0])
	body, _ := builder.Stmts.Block(fn.Body)
	exprStmt, _ := builder.Stmts.Expr(body.Stmts[0])
	outer, ok := builder.Exprs.Assign(exprStmt.Expr)
	if !ok || builder.Name(outer.Name) != "x" {
		t.Fatalf("outer assignment target should be x")
	}
	inner, ok := builder.Exprs.Assign(outer.Value)
	if !ok || builder.Name(inner.Name) != "y" {
		t.Fatalf("x should be assigned the nested assignment y = 2")
	}
}

func TestBadAssignTarget(t *testing.T) {
	d := firstError(t, `
fn main(): int {
    x + 1 = 2;
    return 0;
}
`)
	if d.Code != diag.SynBadAssignTarget {
		t.Errorf("code = %v, want SynBadAssignTarget", d.Code)
	}
}

func TestParensStripToInner(t *testing.T) {
	builder, file := mustParse(t, `
fn main(): int {
    x = (((5)));
    return x;
}
`)
	fn := builder.Fns.Get(file.Funcs[0])
	body, _ := builder.Stmts.Block(fn.Body)
	exprStmt, _ := builder.Stmts.Expr(body.Stmts[0])
	assign, _ := builder.Exprs.Assign(exprStmt.Expr)
	// скобки не создают узлов: сразу литерал
	if _, ok := builder.Exprs.Literal(assign.Value); !ok {
		t.Errorf("parenthesized literal should strip to the literal node")
	}
}

func TestCallVsIdentLookahead(t *testing.T) {
	builder, file := mustParse(t, `
fn main(): int {
    x = f(1, 2.5) + f;
    return x;
}
`)
	fn := builder.Fns.Get(file.Funcs[0])
	body, _ := builder.Stmts.Block(fn.Body)
	exprStmt, _ := builder.Stmts.Expr(body.Stmts[0])
	assign, _ := builder.Exprs.Assign(exprStmt.Expr)
	add, _ := builder.Exprs.Binary(assign.Value)
	call, ok := builder.Exprs.Call(add.Left)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("left operand should be a call with 2 args")
	}
	if _, ok := builder.Exprs.Ident(add.Right); !ok {
		t.Errorf("bare f without '(' should stay an identifier")
	}
}

func TestUnaryMinus(t *testing.T) {
	builder, file := mustParse(t, `
fn main(): int {
    x = -5 + +3;
    return x;
}
`)
	fn := builder.Fns.Get(file.Funcs[0])
	body, _ := builder.Stmts.Block(fn.Body)
	exprStmt, _ := builder.Stmts.Expr(body.Stmts[0])
	assign, _ := builder.Exprs.Assign(exprStmt.Expr)
	add, _ := builder.Exprs.Binary(assign.Value)
	neg, ok := builder.Exprs.Unary(add.Left)
	if !ok || neg.Op != ast.UnMinus {
		t.Fatalf("left operand should be unary minus")
	}
	pos, ok := builder.Exprs.Unary(add.Right)
	if !ok || pos.Op != ast.UnPlus {
		t.Fatalf("right operand should be unary plus")
	}
}

func TestElseIfChain(t *testing.T) {
	builder, file := mustParse(t, `
fn sign(x: int): int {
    if (x > 0) {
        return 1;
    } else if (x < 0) {
        return 0 - 1;
    } else {
        return 0;
    }
}
`)
	fn := builder.Fns.Get(file.Funcs[0])
	body, _ := builder.Stmts.Block(fn.Body)
	ifData, _ := builder.Stmts.If(body.Stmts[0])
	nested, ok := builder.Stmts.If(ifData.Else)
	if !ok {
		t.Fatalf("else branch should be a nested if")
	}
	if !nested.Else.IsValid() {
		t.Errorf("nested if should carry the final else block")
	}
}

func TestFirstErrorWins(t *testing.T) {
	// две ошибки в исходнике — репортится только первая
	_, res, bag := parseSource(t, `
fn broken(: int { return ; }
fn also_broken(: int { return ; }
`)
	if res.Ok {
		t.Fatalf("expected failure")
	}
	errors := 0
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			errors++
		}
	}
	if errors != 1 {
		t.Errorf("expected exactly 1 error, got %d: %+v", errors, bag.Items())
	}
}

func TestExpectedTokenErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"missing semicolon", "fn main(): int { return 0 }", diag.SynExpectSemicolon},
		{"missing return type", "fn main(): bool { return 0; }", diag.SynExpectType},
		{"missing close brace", "fn main(): int { return 0;", diag.SynUnclosedBrace},
		{"missing close paren", "fn main(): int { return (1 + 2; }", diag.SynUnclosedParen},
		{"statement keyword in expr", "fn main(): int { return if; }", diag.SynExpectExpression},
		{"top level junk", "return 0;", diag.SynUnexpectedTopLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := firstError(t, tc.src)
			if d.Code != tc.code {
				t.Errorf("code = %v, want %v (msg: %s)", d.Code, tc.code, d.Message)
			}
		})
	}
}

func TestNodeSpansCoverSource(t *testing.T) {
	src := "fn main(): int { return 1 + 2; }"
	builder, file := mustParse(t, src)
	fn := builder.Fns.Get(file.Funcs[0])
	if got := src[fn.Span.Start:fn.Span.End]; got != src {
		t.Errorf("fn span covers %q, want the whole definition", got)
	}
	body, _ := builder.Stmts.Block(fn.Body)
	ret := builder.Stmts.Get(body.Stmts[0])
	if got := src[ret.Span.Start:ret.Span.End]; got != "return 1 + 2;" {
		t.Errorf("return span covers %q", got)
	}
	retData, _ := builder.Stmts.Return(body.Stmts[0])
	sum := builder.Exprs.Get(retData.Value)
	if got := src[sum.Span.Start:sum.Span.End]; got != "1 + 2" {
		t.Errorf("sum span covers %q", got)
	}
}

func TestEOFDiagnosticSpanPointsPastLastToken(t *testing.T) {
	src := "fn main(): int { return 0;"
	d := firstError(t, src)
	if d.Primary.Start != uint32(len(src)) {
		t.Errorf("diagnostic at offset %d, want %d (just past last token)", d.Primary.Start, len(src))
	}
}

func TestTokenTextPreserved(t *testing.T) {
	builder, file := mustParse(t, "fn main(): float { return 2.5; }")
	fn := builder.Fns.Get(file.Funcs[0])
	body, _ := builder.Stmts.Block(fn.Body)
	retData, _ := builder.Stmts.Return(body.Stmts[0])
	lit, _ := builder.Exprs.Literal(retData.Value)
	if lit.Kind != ast.LitFloat || builder.Name(lit.Value) != "2.5" {
		t.Errorf("literal = %+v text %q", lit, builder.Name(lit.Value))
	}
	if fn.Result != types.Float64 {
		t.Errorf("result type = %v, want float", fn.Result)
	}
}
