package ast

import (
	"minilang/internal/source"
)

// File is the root node: an ordered list of top-level function definitions.
type File struct {
	Span  source.Span
	Funcs []FnID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{
		Span:  sp,
		Funcs: make([]FnID, 0),
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
