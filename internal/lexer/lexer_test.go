package lexer_test

import (
	"strings"
	"testing"

	"minilang/internal/diag"
	"minilang/internal/lexer"
	"minilang/internal/source"
	"minilang/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mini", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{diagnostics: make([]diag.Diagnostic, 0)}
	opts := lexer.Options{Reporter: reporter}
	lx := lexer.New(file, opts)

	return lx, reporter
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens проверяет последовательность токенов (без EOF)
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v",
			len(expected), len(tokens), input, tokens)
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Fatalf("token %d: expected %v, got %v (%q)\ninput: %q",
				i, expected[i], tok.Kind, tok.Text, input)
		}
	}
	if reporter.HasErrors() {
		t.Fatalf("unexpected lexer errors: %v", reporter.diagnostics)
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	expectTokens(t, "fn factorial n int float print printx",
		[]token.Kind{
			token.KwFn, token.Ident, token.Ident, token.KwInt,
			token.KwFloat, token.KwPrint, token.Ident,
		})
}

func TestNumbers(t *testing.T) {
	expectTokens(t, "0 42 3.14 120", []token.Kind{
		token.IntLit, token.IntLit, token.FloatLit, token.IntLit,
	})
}

func TestFloatClassification(t *testing.T) {
	lx, _ := makeTestLexer("2.5")
	tok := lx.Next()
	if tok.Kind != token.FloatLit || tok.Text != "2.5" {
		t.Fatalf("expected float literal 2.5, got %v %q", tok.Kind, tok.Text)
	}
}

func TestOperatorsLongestFirst(t *testing.T) {
	expectTokens(t, "== != <= >= = < > + - * /", []token.Kind{
		token.EqEq, token.BangEq, token.LtEq, token.GtEq, token.Assign,
		token.Lt, token.Gt, token.Plus, token.Minus, token.Star, token.Slash,
	})
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "( ) { } : , ;", []token.Kind{
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.Colon, token.Comma, token.Semicolon,
	})
}

func TestAdjacentOperators(t *testing.T) {
	// "n>=1" без пробелов: жадность должна отдать >=, не > =
	expectTokens(t, "n>=1", []token.Kind{token.Ident, token.GtEq, token.IntLit})
	expectTokens(t, "x==y", []token.Kind{token.Ident, token.EqEq, token.Ident})
}

func TestFunctionHeader(t *testing.T) {
	expectTokens(t, "fn factorial(n: int): int {",
		[]token.Kind{
			token.KwFn, token.Ident, token.LParen, token.Ident, token.Colon,
			token.KwInt, token.RParen, token.Colon, token.KwInt, token.LBrace,
		})
}

func TestUnexpectedChar(t *testing.T) {
	lx, reporter := makeTestLexer("x = $;")
	tokens := collectAllTokens(lx)

	if !reporter.HasErrors() {
		t.Fatal("expected a lexer error for '$'")
	}
	d := reporter.diagnostics[0]
	if d.Code != diag.LexUnknownChar {
		t.Fatalf("expected LexUnknownChar, got %v", d.Code)
	}
	if d.Code.Stage() != diag.StageLexer {
		t.Fatalf("expected lexer stage, got %v", d.Code.Stage())
	}

	// лексер продолжает после ошибки
	var sawSemicolon bool
	for _, tok := range tokens {
		if tok.Kind == token.Semicolon {
			sawSemicolon = true
		}
	}
	if !sawSemicolon {
		t.Fatal("lexer must continue past the invalid character")
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("x")
	lx.Next() // x
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d after end: expected EOF, got %v", i, tok.Kind)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("fn main")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Span != n.Span {
		t.Fatalf("Peek %v must equal subsequent Next %v", p, n)
	}
	if lx.Next().Kind != token.Ident {
		t.Fatal("stream advanced incorrectly after Peek")
	}
}

// Свойство из спеки: склейка Text всех токенов == исходник без пробелов.
func TestLosslessSpanCoverage(t *testing.T) {
	input := `fn factorial(n: int): int {
	result = 1;
	while (n > 1) {
		result = result * n;
		n = n - 1;
	}
	return result;
}`

	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.diagnostics)
	}

	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}

	want := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, input)

	if sb.String() != want {
		t.Fatalf("token texts do not reassemble the source\n got: %q\nwant: %q", sb.String(), want)
	}
}

func TestSpansMatchText(t *testing.T) {
	input := "result = result * n;"
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("spans.mini", []byte(input))
	file := fs.Get(fileID)
	lx := lexer.New(file, lexer.Options{})

	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		got := string(file.Content[tok.Span.Start:tok.Span.End])
		if got != tok.Text {
			t.Fatalf("span %v yields %q, token text is %q", tok.Span, got, tok.Text)
		}
	}
}
