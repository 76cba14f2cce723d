package parser

import (
	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/lexer"
	"minilang/internal/source"
	"minilang/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

type Result struct {
	File ast.FileID
	// Ok == false, если разбор оборвался на первой ошибке.
	Ok bool
}

// Parser — состояние парсера на один файл. Разбор однопроходный:
// первая же синтаксическая ошибка останавливает работу, восстановления нет.
type Parser struct {
	lx       *lexer.Lexer // поток токенов (Peek/Next)
	arenas   *ast.Builder // построитель аренных узлов
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	failed   bool
}

// ParseFile — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.NewFile(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseItems()
	return Result{
		File: p.file,
		Ok:   !p.failed,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// parseItems — основной цикл верхнего уровня: пока не EOF — одна функция.
func (p *Parser) parseItems() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) && !p.failed {
		fnID, ok := p.parseFnItem()
		if !ok {
			// first-error-wins: никакой ресинхронизации
			return
		}
		p.arenas.PushFn(p.file, fnID)
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lastSpan)
}

// parseIdent — утилита: ожидает Ident и интернирует его.
// На ошибке — репорт SynExpectIdentifier.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		id := p.arenas.StringsInterner.Intern(tok.Text)
		return id, tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.lx.Peek().Text+"\"")
	return source.NoStringID, p.getDiagnosticSpan(), false
}
