package diag

import (
	"fmt"
)

type Code uint16

// Stage identifies the pipeline stage a diagnostic code belongs to.
type Stage uint8

const (
	StageUnknown Stage = iota
	StageLexer
	StageParser
	StageResolver
	StageTypeChecker
	StageLowering
)

func (s Stage) String() string {
	switch s {
	case StageLexer:
		return "Lexer"
	case StageParser:
		return "Parser"
	case StageResolver:
		return "Resolver"
	case StageTypeChecker:
		return "TypeChecker"
	case StageLowering:
		return "Lowering"
	}
	return "Unknown"
}

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedTopLevel Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectType         Code = 2004
	SynExpectExpression   Code = 2005
	SynExpectSemicolon    Code = 2006
	SynUnclosedParen      Code = 2007
	SynUnclosedBrace      Code = 2008
	SynExpectColon        Code = 2009
	SynBadAssignTarget    Code = 2010

	// Резолвер (имена и области видимости)
	SemaInfo                 Code = 3000
	SemaDuplicateDeclaration Code = 3001
	SemaUndeclaredIdentifier Code = 3002
	SemaUnknownFunction      Code = 3003
	SemaDuplicateFunction    Code = 3004
	SemaCallToVariable       Code = 3005

	// Проверка типов
	TypeInfo             Code = 4000
	TypeMismatch         Code = 4001
	TypeArityMismatch    Code = 4002
	TypeReturnMismatch   Code = 4003
	TypeInvalidCondition Code = 4004
	TypeConditionAsValue Code = 4005

	// Понижение в IR
	LowerInfo            Code = 5000
	LowerMissingReturn   Code = 5001
	LowerLiteralOverflow Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:        "lexer note",
	LexUnknownChar: "character matches no token rule",

	SynInfo:               "parser note",
	SynUnexpectedToken:    "unexpected token",
	SynUnexpectedTopLevel: "only function definitions are allowed at the top level",
	SynExpectIdentifier:   "identifier expected",
	SynExpectType:         "type name expected ('int' or 'float')",
	SynExpectExpression:   "expression expected",
	SynExpectSemicolon:    "';' expected",
	SynUnclosedParen:      "')' expected",
	SynUnclosedBrace:      "'}' expected",
	SynExpectColon:        "':' expected",
	SynBadAssignTarget:    "assignment target must be a bare identifier",

	SemaInfo:                 "resolver note",
	SemaDuplicateDeclaration: "name already declared in this scope",
	SemaUndeclaredIdentifier: "undeclared identifier",
	SemaUnknownFunction:      "call to unknown function",
	SemaDuplicateFunction:    "function defined more than once",
	SemaCallToVariable:       "called name is not a function",

	TypeInfo:             "type checker note",
	TypeMismatch:         "operand types do not match",
	TypeArityMismatch:    "wrong number of call arguments",
	TypeReturnMismatch:   "return type does not match function signature",
	TypeInvalidCondition: "condition must be a comparison",
	TypeConditionAsValue: "comparison result cannot be used as a value",

	LowerInfo:            "lowering note",
	LowerMissingReturn:   "control may reach the end of the function without 'return'",
	LowerLiteralOverflow: "literal does not fit the target type",
}

// Stage maps the code range back to the pipeline stage that owns it.
func (c Code) Stage() Stage {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return StageLexer
	case ic >= 2000 && ic < 3000:
		return StageParser
	case ic >= 3000 && ic < 4000:
		return StageResolver
	case ic >= 4000 && ic < 5000:
		return StageTypeChecker
	case ic >= 5000 && ic < 6000:
		return StageLowering
	}
	return StageUnknown
}

func (c Code) ID() string {
	switch c.Stage() {
	case StageLexer:
		return fmt.Sprintf("LEX%04d", int(c))
	case StageParser:
		return fmt.Sprintf("SYN%04d", int(c))
	case StageResolver:
		return fmt.Sprintf("SEM%04d", int(c))
	case StageTypeChecker:
		return fmt.Sprintf("TYP%04d", int(c))
	case StageLowering:
		return fmt.Sprintf("LOW%04d", int(c))
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
