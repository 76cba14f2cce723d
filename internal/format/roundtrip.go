package format

import (
	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/lexer"
	"minilang/internal/parser"
	"minilang/internal/source"
)

// CheckRoundTrip parses the file, prints it canonically and re-parses the
// output, then compares the two trees structurally. Идемпотентность принтера:
// дерево после повторного разбора обязано совпасть с исходным.
func CheckRoundTrip(sf *source.File, opt Options, maxDiag int) (ok bool, msg string) {
	origBag := diag.NewBag(maxDiag)
	origBuilder, origFileID, parsed := parseOnce(sf, origBag)
	if !parsed {
		return false, "fmt-check: initial parse failed"
	}

	printed, err := PrintFile(origBuilder, origFileID, opt)
	if err != nil {
		return false, "fmt-check: printer failed: " + err.Error()
	}

	fs2 := source.NewFileSet()
	fid := fs2.AddVirtual(sf.Path, printed)
	newBag := diag.NewBag(maxDiag)
	newBuilder, newFileID, parsed := parseOnce(fs2.Get(fid), newBag)
	if !parsed {
		return false, "fmt-check: reparse failed: " + string(printed)
	}

	cmp := treeCompare{a: origBuilder, b: newBuilder}
	if !cmp.files(origFileID, newFileID) {
		return false, "fmt-check: tree differs after round-trip"
	}
	return true, "fmt-check: OK"
}

func parseOnce(sf *source.File, bag *diag.Bag) (*ast.Builder, ast.FileID, bool) {
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(sf, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(source.NewFileSet(), lx, builder, parser.Options{Reporter: reporter})
	return builder, res.File, res.Ok && !bag.HasErrors()
}

// treeCompare — структурное сравнение двух деревьев из разных арен.
// Спаны игнорируются, имена сравниваются по тексту.
type treeCompare struct {
	a, b *ast.Builder
}

func (c *treeCompare) files(fa, fb ast.FileID) bool {
	filea, fileb := c.a.Files.Get(fa), c.b.Files.Get(fb)
	if filea == nil || fileb == nil || len(filea.Funcs) != len(fileb.Funcs) {
		return false
	}
	for i := range filea.Funcs {
		if !c.fns(filea.Funcs[i], fileb.Funcs[i]) {
			return false
		}
	}
	return true
}

func (c *treeCompare) fns(ida, idb ast.FnID) bool {
	fna, fnb := c.a.Fns.Get(ida), c.b.Fns.Get(idb)
	if c.a.Name(fna.Name) != c.b.Name(fnb.Name) ||
		fna.Result != fnb.Result ||
		len(fna.Params) != len(fnb.Params) {
		return false
	}
	for i := range fna.Params {
		if c.a.Name(fna.Params[i].Name) != c.b.Name(fnb.Params[i].Name) ||
			fna.Params[i].Type != fnb.Params[i].Type {
			return false
		}
	}
	return c.stmts(fna.Body, fnb.Body)
}

func (c *treeCompare) stmts(ida, idb ast.StmtID) bool {
	if ida.IsValid() != idb.IsValid() {
		return false
	}
	if !ida.IsValid() {
		return true
	}
	sa, sb := c.a.Stmts.Get(ida), c.b.Stmts.Get(idb)
	if sa.Kind != sb.Kind {
		return false
	}
	switch sa.Kind {
	case ast.StmtBlock:
		da, _ := c.a.Stmts.Block(ida)
		db, _ := c.b.Stmts.Block(idb)
		if len(da.Stmts) != len(db.Stmts) {
			return false
		}
		for i := range da.Stmts {
			if !c.stmts(da.Stmts[i], db.Stmts[i]) {
				return false
			}
		}
		return true
	case ast.StmtIf:
		da, _ := c.a.Stmts.If(ida)
		db, _ := c.b.Stmts.If(idb)
		return c.exprs(da.Cond, db.Cond) && c.stmts(da.Then, db.Then) && c.stmts(da.Else, db.Else)
	case ast.StmtWhile:
		da, _ := c.a.Stmts.While(ida)
		db, _ := c.b.Stmts.While(idb)
		return c.exprs(da.Cond, db.Cond) && c.stmts(da.Body, db.Body)
	case ast.StmtReturn:
		da, _ := c.a.Stmts.Return(ida)
		db, _ := c.b.Stmts.Return(idb)
		return c.exprs(da.Value, db.Value)
	case ast.StmtPrint:
		da, _ := c.a.Stmts.Print(ida)
		db, _ := c.b.Stmts.Print(idb)
		return c.exprs(da.Value, db.Value)
	case ast.StmtExpr:
		da, _ := c.a.Stmts.Expr(ida)
		db, _ := c.b.Stmts.Expr(idb)
		return c.exprs(da.Expr, db.Expr)
	default:
		return false
	}
}

func (c *treeCompare) exprs(ida, idb ast.ExprID) bool {
	ea, eb := c.a.Exprs.Get(ida), c.b.Exprs.Get(idb)
	if ea == nil || eb == nil || ea.Kind != eb.Kind {
		return false
	}
	switch ea.Kind {
	case ast.ExprIdent:
		da, _ := c.a.Exprs.Ident(ida)
		db, _ := c.b.Exprs.Ident(idb)
		return c.a.Name(da.Name) == c.b.Name(db.Name)
	case ast.ExprLit:
		da, _ := c.a.Exprs.Literal(ida)
		db, _ := c.b.Exprs.Literal(idb)
		return da.Kind == db.Kind && c.a.Name(da.Value) == c.b.Name(db.Value)
	case ast.ExprBinary:
		da, _ := c.a.Exprs.Binary(ida)
		db, _ := c.b.Exprs.Binary(idb)
		return da.Op == db.Op && c.exprs(da.Left, db.Left) && c.exprs(da.Right, db.Right)
	case ast.ExprUnary:
		da, _ := c.a.Exprs.Unary(ida)
		db, _ := c.b.Exprs.Unary(idb)
		return da.Op == db.Op && c.exprs(da.Operand, db.Operand)
	case ast.ExprCall:
		da, _ := c.a.Exprs.Call(ida)
		db, _ := c.b.Exprs.Call(idb)
		if c.a.Name(da.Name) != c.b.Name(db.Name) || len(da.Args) != len(db.Args) {
			return false
		}
		for i := range da.Args {
			if !c.exprs(da.Args[i], db.Args[i]) {
				return false
			}
		}
		return true
	case ast.ExprAssign:
		da, _ := c.a.Exprs.Assign(ida)
		db, _ := c.b.Exprs.Assign(idb)
		return c.a.Name(da.Name) == c.b.Name(db.Name) && c.exprs(da.Value, db.Value)
	default:
		return false
	}
}
