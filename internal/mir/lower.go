package mir

import (
	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/sema"
	"minilang/internal/source"
	"minilang/internal/symbols"
)

// LowerModule converts every successfully checked function into MIR.
// MissingReturn фатален для своей функции, но соседние функции
// понижаются независимо. Возвращает ok=false, если хоть одна функция
// не попала в модуль.
func LowerModule(builder *ast.Builder, semaRes *sema.Result, reporter diag.Reporter) (*Module, bool) {
	out := &Module{
		ByName: make(map[string]FuncID),
	}
	if builder == nil || semaRes == nil || semaRes.Table == nil {
		return out, false
	}

	// FuncID назначается по порядку объявления, до понижения тел:
	// вызовы вперёд ссылаются на ещё не пониженные функции
	var sigs []*symbols.FuncSignature
	semaRes.Table.FuncsInOrder(func(sig *symbols.FuncSignature) {
		id := FuncID(len(sigs))
		out.ByName[builder.Name(sig.Name)] = id
		out.Signatures = append(out.Signatures, Signature{
			Name:   builder.Name(sig.Name),
			Params: sig.Params,
			Result: sig.Result,
		})
		sigs = append(sigs, sig)
	})
	out.Funcs = make([]*Func, len(sigs))

	ok := true
	for i, sig := range sigs {
		fnRes := semaRes.Fns[sig.Fn]
		if fnRes == nil || !fnRes.Ok {
			ok = false
			continue
		}
		f := LowerFunc(builder, sig, fnRes, out.ByName, reporter)
		if f == nil {
			ok = false
			continue
		}
		f.ID = FuncID(i)
		out.Funcs[i] = f
	}
	return out, ok
}

// LowerFunc lowers a single checked function. Возвращает nil, если
// управление может дойти до конца тела мимо return.
func LowerFunc(
	builder *ast.Builder,
	sig *symbols.FuncSignature,
	fnRes *sema.FnResult,
	byName map[string]FuncID,
	reporter diag.Reporter,
) *Func {
	fn := builder.Fns.Get(sig.Fn)
	lw := lowerer{
		builder:  builder,
		fnRes:    fnRes,
		byName:   byName,
		reporter: reporter,
		fn: &Func{
			ID:     NoFuncID,
			Name:   builder.Name(sig.Name),
			Span:   fn.Span,
			Result: sig.Result,
		},
		localOf: make(map[symbols.SymbolID]LocalID),
	}

	// слоты параметров идут первыми, в порядке объявления
	for _, symID := range fnRes.ParamSyms {
		lw.fn.Params = append(lw.fn.Params, lw.localFor(symID))
	}

	lw.fn.Entry = lw.newBlock()
	lw.cur = lw.fn.Entry
	lw.lowerBlockStmts(fn.Body)

	if lw.failed {
		return nil
	}

	if !returnsOnAllPaths(lw.fn) {
		if reporter != nil {
			end := source.Span{File: fn.Span.File, Start: fn.Span.End, End: fn.Span.End}
			reporter.Report(diag.LowerMissingReturn, diag.SevError, end,
				"control may reach the end of '"+lw.fn.Name+"' without 'return'", nil)
		}
		return nil
	}

	// всё, что осталось незапечатанным, недостижимо из входа
	for i := range lw.fn.Blocks {
		if lw.fn.Blocks[i].Term.Kind == TermNone {
			lw.fn.Blocks[i].Term = Terminator{Kind: TermUnreachable}
		}
	}
	return lw.fn
}

type lowerer struct {
	builder  *ast.Builder
	fnRes    *sema.FnResult
	byName   map[string]FuncID
	reporter diag.Reporter
	fn       *Func
	cur      BlockID
	localOf  map[symbols.SymbolID]LocalID
	failed   bool
}

func (lw *lowerer) newBlock() BlockID {
	id := BlockID(len(lw.fn.Blocks))
	lw.fn.Blocks = append(lw.fn.Blocks, Block{ID: id})
	return id
}

func (lw *lowerer) block() *Block {
	return &lw.fn.Blocks[lw.cur]
}

// emit добавляет инструкцию в текущий блок и выдаёт её результату
// свежий ValueID (NoValueID, если инструкция значения не производит).
func (lw *lowerer) emit(instr Instr) ValueID {
	switch instr.Kind {
	case InstrStore, InstrPrint:
		instr.Dst = NoValueID
	default:
		instr.Dst = ValueID(lw.fn.NumValues)
		lw.fn.NumValues++
	}
	b := lw.block()
	b.Instrs = append(b.Instrs, instr)
	return instr.Dst
}

func (lw *lowerer) setTerm(t Terminator) {
	b := lw.block()
	if b.Term.Kind == TermNone {
		b.Term = t
	}
}

func (lw *lowerer) localFor(symID symbols.SymbolID) LocalID {
	if id, ok := lw.localOf[symID]; ok {
		return id
	}
	sym := lw.fnRes.Env.Symbols.Get(symID)
	id := LocalID(len(lw.fn.Locals))
	lw.fn.Locals = append(lw.fn.Locals, Local{
		Sym:  symID,
		Type: sym.Type,
		Name: lw.builder.Name(sym.Name),
		Span: sym.Span,
	})
	lw.localOf[symID] = id
	return id
}
