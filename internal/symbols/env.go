package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"minilang/internal/source"
)

// Env is the lexical-scope machinery for one function body. Каждая функция
// получает собственный Env, поэтому тела можно резолвить параллельно:
// общая остаётся только неизменяемая таблица сигнатур.
type Env struct {
	Scopes  *Scopes
	Symbols *Symbols
}

// NewEnv builds scope and symbol arenas with optional capacity hints.
func NewEnv(h Hints) *Env {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	return &Env{
		Scopes:  NewScopes(scopeCap),
		Symbols: NewSymbols(symCap),
	}
}

// Declare binds sym.Name in its scope. Повторное объявление в той же
// области — отказ; затенение внешней области разрешено и здесь не
// проверяется.
func (e *Env) Declare(scopeID ScopeID, sym Symbol) (SymbolID, bool) {
	scope := e.Scopes.Get(scopeID)
	if scope == nil {
		return NoSymbolID, false
	}
	if _, exists := scope.NameIndex[sym.Name]; exists {
		return NoSymbolID, false
	}
	sym.Scope = scopeID
	id := e.Symbols.New(sym)
	scope.NameIndex[sym.Name] = id
	scope.Symbols = append(scope.Symbols, id)
	return id, true
}

// Resolve searches the scope chain from scopeID outward.
func (e *Env) Resolve(scopeID ScopeID, name source.StringID) (SymbolID, bool) {
	for scopeID.IsValid() {
		scope := e.Scopes.Get(scopeID)
		if scope == nil {
			return NoSymbolID, false
		}
		if id, ok := scope.NameIndex[name]; ok {
			return id, true
		}
		scopeID = scope.Parent
	}
	return NoSymbolID, false
}

// ResolveLocal ищет имя только в указанной области, без подъёма по цепочке.
func (e *Env) ResolveLocal(scopeID ScopeID, name source.StringID) (SymbolID, bool) {
	scope := e.Scopes.Get(scopeID)
	if scope == nil {
		return NoSymbolID, false
	}
	id, ok := scope.NameIndex[name]
	return id, ok
}
