package source

import "testing"

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.mini", []byte("fn main(): int {\n    return 0;\n}\n"))

	// "return" начинается на 2-й строке, колонка 5
	start, _ := fs.Resolve(Span{File: id, Start: 21, End: 27})
	if start.Line != 2 || start.Col != 5 {
		t.Fatalf("expected 2:5, got %d:%d", start.Line, start.Col)
	}

	// закрывающая скобка — 3-я строка, колонка 1
	brace, _ := fs.Resolve(Span{File: id, Start: 31, End: 32})
	if brace.Line != 3 || brace.Col != 1 {
		t.Fatalf("expected 3:1, got %d:%d", brace.Line, brace.Col)
	}
}

func TestResolveFirstLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.mini", []byte("fn f(): int { return 1; }"))

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 4})
	if start.Line != 1 || start.Col != 4 {
		t.Fatalf("expected 1:4, got %d:%d", start.Line, start.Col)
	}
	if end.Line != 1 || end.Col != 5 {
		t.Fatalf("expected end 1:5, got %d:%d", end.Line, end.Col)
	}
}

func TestAddNormalizesCRLFOnLoad(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.mini", []byte("x\ny\n"))
	f := fs.Get(id)
	if len(f.LineIdx) != 2 {
		t.Fatalf("expected 2 newline offsets, got %d", len(f.LineIdx))
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("b.mini", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(2); got != "second" {
		t.Fatalf("expected %q, got %q", "second", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Fatalf("expected %q, got %q", "third", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Fatalf("expected empty line, got %q", got)
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("dir/prog.mini", []byte("fn main(): int { return 0; }"))

	if _, ok := fs.GetByPath("dir/prog.mini"); !ok {
		t.Fatal("expected to find file by path")
	}
	if _, ok := fs.GetByPath("missing.mini"); ok {
		t.Fatal("did not expect to find missing path")
	}
}
