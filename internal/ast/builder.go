package ast

import (
	"minilang/internal/source"
)

type Hints struct{ Files, Fns, Stmts, Exprs uint }

// Builder owns every node arena for one parse. The tree is acyclic and owned
// top-down: File → Fn → Stmt → Expr, children referenced by 1-based IDs.
type Builder struct {
	Files *Files
	Fns   *Fns
	Stmts *Stmts
	Exprs *Exprs

	StringsInterner *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1
	}
	if hints.Fns == 0 {
		hints.Fns = 1 << 4
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Files:           NewFiles(hints.Files),
		Fns:             NewFns(hints.Fns),
		Stmts:           NewStmts(hints.Stmts),
		Exprs:           NewExprs(hints.Exprs),
		StringsInterner: source.NewInterner(),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) PushFn(file FileID, fn FnID) {
	f := b.Files.Get(file)
	f.Funcs = append(f.Funcs, fn)
}

// Name resolves a StringID back to its text.
func (b *Builder) Name(id source.StringID) string {
	return b.StringsInterner.MustLookup(id)
}
