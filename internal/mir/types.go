package mir

import (
	"minilang/internal/source"
	"minilang/internal/symbols"
	"minilang/internal/types"
)

type FuncID int32
type BlockID int32
type LocalID int32

// ValueID — временное значение, результат одной инструкции.
// Уникально в пределах функции; определяется строго раньше использования.
type ValueID int32

const (
	NoFuncID  FuncID  = -1
	NoBlockID BlockID = -1
	NoLocalID LocalID = -1
	NoValueID ValueID = -1
)

// Local is a named storage slot. Каждая переменная и каждый параметр
// получают слот; чтение — Load, запись — Store, никакого продвижения
// в регистры на этом уровне.
type Local struct {
	Sym  symbols.SymbolID
	Type types.Kind
	Name string
	Span source.Span
}
