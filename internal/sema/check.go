package sema

import (
	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/symbols"
	"minilang/internal/types"
)

// Options configure a semantic pass over a file.
type Options struct {
	Reporter diag.Reporter
	// Table с уже собранными сигнатурами; nil — Check соберёт её сам.
	Table *symbols.Table
}

// Result stores semantic artefacts for the whole file.
type Result struct {
	Table *symbols.Table
	Fns   map[ast.FnID]*FnResult
	Ok    bool
}

// FnResult carries per-function artefacts. Each function owns its scope
// arenas, so bodies can be checked independently of one another.
type FnResult struct {
	Fn  ast.FnID
	Env *symbols.Env
	// ExprTypes: тип каждого значимого выражения. У сравнений типа нет —
	// они живут только в охранных условиях и в карту не попадают.
	ExprTypes map[ast.ExprID]types.Kind
	// IdentSyms: символ за каждым ident/assign, для понижения в Load/Store.
	IdentSyms map[ast.ExprID]symbols.SymbolID
	// ParamSyms: символы параметров в порядке объявления.
	ParamSyms []symbols.SymbolID
	Ok        bool
}

// Check resolves names and checks types for every function in the file.
// Ошибки резолвера и тайпчекера собираются все сразу (best effort), но
// функция с ошибками помечается Ok=false и не должна попадать в понижение.
func Check(builder *ast.Builder, fileID ast.FileID, opts Options) Result {
	res := Result{
		Fns: make(map[ast.FnID]*FnResult),
		Ok:  true,
	}
	if builder == nil || !fileID.IsValid() {
		return res
	}
	file := builder.Files.Get(fileID)
	if file == nil {
		return res
	}

	table := opts.Table
	if table == nil {
		counting := &diag.CountingReporter{Next: opts.Reporter}
		table = symbols.NewTable(builder.StringsInterner)
		table.CollectSignatures(builder, fileID, counting)
		if counting.Errors > 0 {
			res.Ok = false
		}
	}
	res.Table = table

	for _, fnID := range file.Funcs {
		fnRes := CheckFn(builder, fnID, table, opts.Reporter)
		res.Fns[fnID] = fnRes
		if !fnRes.Ok {
			res.Ok = false
		}
	}
	return res
}

// CheckFn resolves and type-checks a single function body against the
// read-only signature table. Безопасно звать из параллельных воркеров:
// вся изменяемая память (арены областей, карты типов) своя на вызов,
// общим остаётся только reporter.
func CheckFn(builder *ast.Builder, fnID ast.FnID, table *symbols.Table, reporter diag.Reporter) *FnResult {
	counting := &diag.CountingReporter{Next: reporter}
	res := &FnResult{
		Fn:        fnID,
		Env:       symbols.NewEnv(symbols.Hints{}),
		ExprTypes: make(map[ast.ExprID]types.Kind),
		IdentSyms: make(map[ast.ExprID]symbols.SymbolID),
	}

	fn := builder.Fns.Get(fnID)
	if fn == nil {
		return res
	}

	c := checker{
		builder:  builder,
		table:    table,
		reporter: counting,
		fn:       fn,
		res:      res,
	}
	c.run()

	res.Ok = counting.Errors == 0
	return res
}

type checker struct {
	builder  *ast.Builder
	table    *symbols.Table
	reporter *diag.CountingReporter
	fn       *ast.Fn
	res      *FnResult
}

func (c *checker) run() {
	fnScope := c.res.Env.Scopes.New(symbols.ScopeFunction, symbols.NoScopeID, c.fn.Span)
	for _, param := range c.fn.Params {
		symID, ok := c.res.Env.Declare(fnScope, symbols.Symbol{
			Name: param.Name,
			Kind: symbols.SymbolParam,
			Span: param.NameSpan,
			Type: param.Type,
		})
		if !ok {
			c.errorAt(diag.SemaDuplicateDeclaration, param.NameSpan,
				"parameter '"+c.builder.Name(param.Name)+"' is declared twice")
			continue
		}
		c.res.ParamSyms = append(c.res.ParamSyms, symID)
	}

	// операторы тела живут прямо в области функции;
	// вложенные блоки открывают дочерние области
	c.checkBlockInScope(c.fn.Body, fnScope)
}
