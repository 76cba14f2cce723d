package ast

import (
	"minilang/internal/source"
	"minilang/internal/types"
)

// Param is one parameter of a function definition.
type Param struct {
	Name     source.StringID
	NameSpan source.Span
	Type     types.Kind
	Span     source.Span // имя + ':' + тип
}

// Fn is a top-level function definition.
type Fn struct {
	Span     source.Span
	Name     source.StringID
	NameSpan source.Span
	Params   []Param
	Result   types.Kind
	Body     StmtID // всегда StmtBlock
}

type Fns struct {
	Arena *Arena[Fn]
}

func NewFns(capHint uint) *Fns {
	return &Fns{
		Arena: NewArena[Fn](capHint),
	}
}

func (f *Fns) New(fn Fn) FnID {
	return FnID(f.Arena.Allocate(fn))
}

func (f *Fns) Get(id FnID) *Fn {
	return f.Arena.Get(uint32(id))
}
