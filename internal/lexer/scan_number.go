package lexer

import (
	"minilang/internal/token"
)

// Числовые литералы MiniLang: [0-9]+ с необязательной одной дробной частью.
// Наличие '.' делает литерал FloatLit, отсутствие — IntLit.
// Без баз (0x...), без экспонент, без подчёркиваний — грамматика их не знает.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	kind := token.IntLit

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть: ровно одна точка, за которой идёт цифра
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
