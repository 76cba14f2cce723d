package mir

import (
	"minilang/internal/types"
)

// InstrKind enumerates instruction kinds in MIR.
type InstrKind uint8

const (
	// InstrConst materializes a literal constant.
	InstrConst InstrKind = iota
	// InstrBin applies a binary operator to two values.
	InstrBin
	// InstrUn applies a unary operator to one value.
	InstrUn
	// InstrLoad reads a local storage slot.
	InstrLoad
	// InstrStore writes a value into a local storage slot.
	InstrStore
	// InstrCall invokes another function in the module.
	InstrCall
	// InstrPrint hands one value to the runtime print primitive.
	InstrPrint
)

// BinOp enumerates MIR binary operators. Сравнения — обычные бинарные
// инструкции; их результат питает ближайший условный переход.
type BinOp uint8

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpCmpEq
	OpCmpNe
	OpCmpLt
	OpCmpLe
	OpCmpGt
	OpCmpGe
)

// IsComparison reports whether op yields a branch flag rather than a value.
func (op BinOp) IsComparison() bool { return op >= OpCmpEq }

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpCmpEq:
		return "cmp.eq"
	case OpCmpNe:
		return "cmp.ne"
	case OpCmpLt:
		return "cmp.lt"
	case OpCmpLe:
		return "cmp.le"
	case OpCmpGt:
		return "cmp.gt"
	case OpCmpGe:
		return "cmp.ge"
	default:
		return "?"
	}
}

// UnOp enumerates MIR unary operators. Унарный плюс — тождество,
// он не доживает до понижения.
type UnOp uint8

const (
	OpNeg UnOp = iota
)

func (op UnOp) String() string { return "neg" }

// Instr represents a MIR instruction. Dst == NoValueID у инструкций,
// не производящих значения (Store, Print).
// Type — тип результата; у Store/Print — тип операнда, у сравнений —
// тип сравниваемых операндов (бэкенду нужно знать ширину).
type Instr struct {
	Kind InstrKind
	Dst  ValueID
	Type types.Kind

	Const ConstInstr
	Bin   BinInstr
	Un    UnInstr
	Load  LoadInstr
	Store StoreInstr
	Call  CallInstr
	Print PrintInstr
}

// ConstInstr materializes a literal; which field is live follows Instr.Type.
type ConstInstr struct {
	IntVal   int32
	FloatVal float64
}

// BinInstr represents a binary operation on two prior values.
type BinInstr struct {
	Op    BinOp
	Left  ValueID
	Right ValueID
}

// UnInstr represents a unary operation.
type UnInstr struct {
	Op      UnOp
	Operand ValueID
}

// LoadInstr reads a local slot.
type LoadInstr struct {
	Local LocalID
}

// StoreInstr writes a value to a local slot.
type StoreInstr struct {
	Local LocalID
	Value ValueID
}

// CallInstr invokes a module function by ID.
type CallInstr struct {
	Callee FuncID
	Name   string
	Args   []ValueID
}

// PrintInstr passes one tagged value to the print primitive.
// Instr.Type сообщает бэкенду, форматировать как целое или как дробное.
type PrintInstr struct {
	Value ValueID
}
