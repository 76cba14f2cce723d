package symbols

import (
	"minilang/internal/ast"
	"minilang/internal/source"
	"minilang/internal/types"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid  SymbolKind = iota
	SymbolFunction            // top-level function, lives in the flat namespace
	SymbolParam               // function parameter
	SymbolVar                 // variable, declared by its first assignment
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolFunction:
		return "function"
	case SymbolParam:
		return "param"
	case SymbolVar:
		return "variable"
	default:
		return "invalid"
	}
}

// Symbol describes a named entity available in a scope.
type Symbol struct {
	Name  source.StringID
	Kind  SymbolKind
	Scope ScopeID
	Span  source.Span // место объявления, для диагностик
	Type  types.Kind  // тип переменной/параметра; Invalid у функций
}

// FuncSignature is the program-wide view of one function, collected before
// any body is resolved so that forward calls work.
type FuncSignature struct {
	Name     source.StringID
	Fn       ast.FnID
	Params   []types.Kind
	Result   types.Kind
	NameSpan source.Span
}
