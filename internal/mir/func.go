package mir

import (
	"minilang/internal/source"
	"minilang/internal/types"
)

type Func struct {
	ID   FuncID
	Name string
	Span source.Span

	Result types.Kind

	// Первые len(Params) слотов в Locals — параметры; бэкенд кладёт
	// туда аргументы до входа в Entry.
	Params []LocalID
	Locals []Local
	Blocks []Block
	Entry  BlockID

	// NumValues — сколько временных значений определяет функция.
	NumValues int32
}

func (f *Func) Block(id BlockID) *Block {
	if f == nil || id < 0 || int(id) >= len(f.Blocks) {
		return nil
	}
	return &f.Blocks[id]
}

func (f *Func) Local(id LocalID) *Local {
	if f == nil || id < 0 || int(id) >= len(f.Locals) {
		return nil
	}
	return &f.Locals[id]
}
