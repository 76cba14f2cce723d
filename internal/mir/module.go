package mir

import (
	"minilang/internal/types"
)

// Signature — заголовок функции модуля. Таблица сигнатур хранится в
// модуле целиком, чтобы артефакт был самодостаточным: заголовки есть
// даже у функций, не переживших понижение.
type Signature struct {
	Name   string
	Params []types.Kind
	Result types.Kind
}

type Module struct {
	// Funcs индексируется FuncID; nil — функция не пережила понижение.
	Funcs []*Func
	// Signatures индексируется FuncID параллельно Funcs.
	Signatures []Signature
	ByName     map[string]FuncID
}

// Signature returns the header for id, or nil if id is out of range.
func (m *Module) Signature(id FuncID) *Signature {
	if m == nil || id < 0 || int(id) >= len(m.Signatures) {
		return nil
	}
	return &m.Signatures[id]
}

func (m *Module) Func(id FuncID) *Func {
	if m == nil || id < 0 || int(id) >= len(m.Funcs) {
		return nil
	}
	return m.Funcs[id]
}

// Lookup finds a lowered function by source name.
func (m *Module) Lookup(name string) *Func {
	if m == nil {
		return nil
	}
	id, ok := m.ByName[name]
	if !ok {
		return nil
	}
	return m.Func(id)
}
