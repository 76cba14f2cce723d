package symbols

import (
	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/source"
	"minilang/internal/types"
)

// Hints provide optional capacity suggestions for symbol arenas.
type Hints struct{ Scopes, Symbols uint }

// Table is the flat, program-wide function namespace. Функции не вложены,
// не затеняются и видны до своего определения, поэтому их сигнатуры
// собираются отдельным первым проходом; после него таблица неизменна
// и безопасно читается из параллельных воркеров.
type Table struct {
	Strings *source.Interner
	funcs   map[source.StringID]*FuncSignature
	order   []source.StringID // порядок объявления, для детерминированного обхода
}

// NewTable builds a fresh table.
// If strings is nil, a fresh interner is allocated.
func NewTable(strings *source.Interner) *Table {
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		Strings: strings,
		funcs:   make(map[source.StringID]*FuncSignature),
	}
}

// CollectSignatures — первый проход: регистрирует сигнатуры всех функций
// файла, не заглядывая в тела. Дубликаты репортятся и не перезаписывают
// первое определение.
func (t *Table) CollectSignatures(b *ast.Builder, fileID ast.FileID, reporter diag.Reporter) {
	file := b.Files.Get(fileID)
	if file == nil {
		return
	}
	for _, fnID := range file.Funcs {
		fn := b.Fns.Get(fnID)
		if prev, ok := t.funcs[fn.Name]; ok {
			if reporter != nil {
				reporter.Report(diag.SemaDuplicateFunction, diag.SevError, fn.NameSpan,
					"function '"+b.Name(fn.Name)+"' is already defined",
					[]diag.Note{{Span: prev.NameSpan, Msg: "first definition is here"}})
			}
			continue
		}
		params := make([]types.Kind, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = p.Type
		}
		t.funcs[fn.Name] = &FuncSignature{
			Name:     fn.Name,
			Fn:       fnID,
			Params:   params,
			Result:   fn.Result,
			NameSpan: fn.NameSpan,
		}
		t.order = append(t.order, fn.Name)
	}
}

// LookupFunc returns the collected signature for name, if any.
func (t *Table) LookupFunc(name source.StringID) (*FuncSignature, bool) {
	sig, ok := t.funcs[name]
	return sig, ok
}

// FuncsInOrder walks the collected signatures in declaration order.
func (t *Table) FuncsInOrder(visit func(*FuncSignature)) {
	for _, name := range t.order {
		visit(t.funcs[name])
	}
}

// FuncCount reports the number of distinct collected functions.
func (t *Table) FuncCount() int { return len(t.order) }
