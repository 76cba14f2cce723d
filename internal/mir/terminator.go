package mir

type TermKind uint8

const (
	TermNone TermKind = iota
	TermReturn
	TermGoto
	TermIf
	// TermUnreachable запечатывает блок, в который нет пути из входа;
	// появляется только после кода, где обе ветки уже вернулись.
	TermUnreachable
)

type Terminator struct {
	Kind TermKind

	Return ReturnTerm
	Goto   GotoTerm
	If     IfTerm
}

type ReturnTerm struct {
	Value ValueID
}

type GotoTerm struct {
	Target BlockID
}

// IfTerm — условный переход; Cond обязан быть результатом сравнения
// в этом же блоке.
type IfTerm struct {
	Cond ValueID
	Then BlockID
	Else BlockID
}
