// Package token defines lexical token kinds for the MiniLang compiler.
// Invariants:
//   - Token.Text is a copy of the matched source slice.
//   - Token.Span matches Text exactly (Begin..End).
//   - Type names (int, float) are keywords, not identifiers: the grammar has
//     exactly two primitive types and no user-defined ones.
//   - MiniLang defines no comment marker, so no trivia kinds exist.
package token
