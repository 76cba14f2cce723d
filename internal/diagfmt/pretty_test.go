package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"minilang/internal/diag"
	"minilang/internal/diagfmt"
	"minilang/internal/source"
)

func buildBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("main.mini", []byte("fn main(): int {\n    return x;\n}\n"))
	bag := diag.NewBag(16)
	reporter := diag.BagReporter{Bag: bag}

	// span выражения x на второй строке
	var off uint32 = uint32(strings.Index("fn main(): int {\n    return x;\n}\n", "x"))
	reporter.Report(diag.SemaUndeclaredIdentifier, diag.SevError,
		source.Span{File: fid, Start: off, End: off + 1},
		"undeclared identifier 'x'",
		[]diag.Note{{Span: source.Span{File: fid, Start: 3, End: 7}, Msg: "in this function"}})
	return bag, fs
}

func TestPrettyPlain(t *testing.T) {
	bag, fs := buildBag(t)
	var buf bytes.Buffer
	if err := diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"main.mini:2:12",
		"error",
		"undeclared identifier 'x'",
		"return x;",
		"^",
		"note",
		"in this function",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ERROR") {
		t.Error("headline severity should be lowercase")
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain output contains ANSI escapes")
	}
}

func TestPrettyColor(t *testing.T) {
	bag, fs := buildBag(t)
	var buf bytes.Buffer
	if err := diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{Color: true}); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("colored output has no ANSI escapes")
	}
}

func TestJSONOutput(t *testing.T) {
	bag, fs := buildBag(t)
	var buf bytes.Buffer
	opts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}
	if err := diagfmt.JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("json: %v", err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Errors != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("output = %+v, want one error", out)
	}
	d := out.Diagnostics[0]
	if d.Code != diag.SemaUndeclaredIdentifier.ID() {
		t.Errorf("code = %q, want %q", d.Code, diag.SemaUndeclaredIdentifier.ID())
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 12 {
		t.Errorf("location = %+v, want 2:12", d.Location)
	}
	if len(d.Notes) != 1 {
		t.Errorf("notes = %+v, want one", d.Notes)
	}
}
