// Package interp is a direct MIR evaluator. It stands in for a native
// backend: tests and 'minilang run' execute programs through it.
package interp

import (
	"fmt"
	"io"

	"minilang/internal/mir"
	"minilang/internal/source"
	"minilang/internal/types"
)

// DefaultMaxDepth bounds the call stack.
const DefaultMaxDepth = 10_000

// Options configures execution.
type Options struct {
	// Stdout receives print output as it happens; nil — только захват.
	Stdout io.Writer
	// MaxDepth bounds call nesting; 0 means DefaultMaxDepth.
	MaxDepth int
}

// Stats counts executed instructions, one counter per kind plus a
// per-operator breakdown for binary instructions.
type Stats struct {
	Instrs [7]int64
	BinOps [10]int64
	Calls  int64
}

// Result of a completed run.
type Result struct {
	// Exit is the value 'main' returned.
	Exit Value
	// Output holds one entry per executed print, already formatted.
	Output []string
	Stats  Stats
}

// RunError is a runtime failure: the program itself misbehaved,
// not the host.
type RunError struct {
	Msg  string
	Func string
	Span source.Span
}

func (e *RunError) Error() string {
	if e.Func == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: in function %s", e.Msg, e.Func)
}

// Run executes the module starting from main. main обязан быть
// нульарным; его результат становится кодом выхода программы.
func Run(m *mir.Module, opts Options) (*Result, error) {
	f := m.Lookup("main")
	if f == nil {
		return nil, &RunError{Msg: "no 'main' function in module"}
	}
	if len(f.Params) != 0 {
		return nil, &RunError{Msg: "'main' must take no parameters", Func: f.Name, Span: f.Span}
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	ma := &machine{
		m:        m,
		stdout:   opts.Stdout,
		maxDepth: maxDepth,
	}
	exit, err := ma.call(f, nil)
	if err != nil {
		return nil, err
	}
	return &Result{Exit: exit, Output: ma.output, Stats: ma.stats}, nil
}

type machine struct {
	m        *mir.Module
	stdout   io.Writer
	maxDepth int
	depth    int
	output   []string
	stats    Stats
}

// call runs one activation of f to its return terminator.
func (ma *machine) call(f *mir.Func, args []Value) (Value, error) {
	if ma.depth >= ma.maxDepth {
		return Value{}, &RunError{Msg: "call stack overflow", Func: f.Name, Span: f.Span}
	}
	ma.depth++
	defer func() { ma.depth-- }()

	locals := make([]slot, len(f.Locals))
	for i, id := range f.Params {
		locals[id] = slot{V: args[i], IsInit: true}
	}
	values := make([]Value, f.NumValues)

	bb := f.Entry
	for {
		b := f.Block(bb)
		if b == nil {
			return Value{}, &RunError{Msg: fmt.Sprintf("jump to missing block bb%d", bb), Func: f.Name, Span: f.Span}
		}
		for i := range b.Instrs {
			if err := ma.exec(f, &b.Instrs[i], locals, values); err != nil {
				return Value{}, err
			}
		}
		switch b.Term.Kind {
		case mir.TermReturn:
			return values[b.Term.Return.Value], nil
		case mir.TermGoto:
			bb = b.Term.Goto.Target
		case mir.TermIf:
			if values[b.Term.If.Cond].I != 0 {
				bb = b.Term.If.Then
			} else {
				bb = b.Term.If.Else
			}
		default:
			// TermUnreachable и TermNone: сюда нет пути из входа
			return Value{}, &RunError{Msg: fmt.Sprintf("executed unreachable block bb%d", bb), Func: f.Name, Span: f.Span}
		}
	}
}

func (ma *machine) exec(f *mir.Func, instr *mir.Instr, locals []slot, values []Value) error {
	ma.stats.Instrs[instr.Kind]++
	switch instr.Kind {
	case mir.InstrConst:
		if instr.Type == types.Float64 {
			values[instr.Dst] = FloatValue(instr.Const.FloatVal)
		} else {
			values[instr.Dst] = IntValue(instr.Const.IntVal)
		}

	case mir.InstrBin:
		ma.stats.BinOps[instr.Bin.Op]++
		out, err := ma.binary(f, instr, values[instr.Bin.Left], values[instr.Bin.Right])
		if err != nil {
			return err
		}
		values[instr.Dst] = out

	case mir.InstrUn:
		v := values[instr.Un.Operand]
		if v.Kind == types.Float64 {
			values[instr.Dst] = FloatValue(-v.F)
		} else {
			values[instr.Dst] = IntValue(-v.I)
		}

	case mir.InstrLoad:
		s := &locals[instr.Load.Local]
		if !s.IsInit {
			return &RunError{
				Msg:  fmt.Sprintf("variable '%s' used before assignment", f.Local(instr.Load.Local).Name),
				Func: f.Name,
				Span: f.Local(instr.Load.Local).Span,
			}
		}
		values[instr.Dst] = s.V

	case mir.InstrStore:
		locals[instr.Store.Local] = slot{V: values[instr.Store.Value], IsInit: true}

	case mir.InstrCall:
		ma.stats.Calls++
		callee := ma.m.Func(instr.Call.Callee)
		if callee == nil {
			return &RunError{Msg: fmt.Sprintf("call to missing function %s", instr.Call.Name), Func: f.Name}
		}
		args := make([]Value, len(instr.Call.Args))
		for i, a := range instr.Call.Args {
			args[i] = values[a]
		}
		out, err := ma.call(callee, args)
		if err != nil {
			return err
		}
		values[instr.Dst] = out

	case mir.InstrPrint:
		line := values[instr.Print.Value].Text()
		ma.output = append(ma.output, line)
		if ma.stdout != nil {
			if _, err := fmt.Fprintln(ma.stdout, line); err != nil {
				return fmt.Errorf("write print output: %w", err)
			}
		}
	}
	return nil
}

func (ma *machine) binary(f *mir.Func, instr *mir.Instr, l, r Value) (Value, error) {
	op := instr.Bin.Op
	if op.IsComparison() {
		var flag bool
		if instr.Type == types.Float64 {
			flag = compareFloat(op, l.F, r.F)
		} else {
			flag = compareInt(op, l.I, r.I)
		}
		if flag {
			return IntValue(1), nil
		}
		return IntValue(0), nil
	}
	if instr.Type == types.Float64 {
		switch op {
		case mir.OpAdd:
			return FloatValue(l.F + r.F), nil
		case mir.OpSub:
			return FloatValue(l.F - r.F), nil
		case mir.OpMul:
			return FloatValue(l.F * r.F), nil
		case mir.OpDiv:
			// IEEE: деление на ноль даёт бесконечность, не ошибку
			return FloatValue(l.F / r.F), nil
		}
	}
	switch op {
	case mir.OpAdd:
		return IntValue(l.I + r.I), nil
	case mir.OpSub:
		return IntValue(l.I - r.I), nil
	case mir.OpMul:
		return IntValue(l.I * r.I), nil
	case mir.OpDiv:
		if r.I == 0 {
			return Value{}, &RunError{Msg: "integer division by zero", Func: f.Name}
		}
		return IntValue(l.I / r.I), nil
	}
	return Value{}, &RunError{Msg: fmt.Sprintf("bad binary op %v", op), Func: f.Name}
}

func compareInt(op mir.BinOp, l, r int32) bool {
	switch op {
	case mir.OpCmpEq:
		return l == r
	case mir.OpCmpNe:
		return l != r
	case mir.OpCmpLt:
		return l < r
	case mir.OpCmpLe:
		return l <= r
	case mir.OpCmpGt:
		return l > r
	default:
		return l >= r
	}
}

func compareFloat(op mir.BinOp, l, r float64) bool {
	switch op {
	case mir.OpCmpEq:
		return l == r
	case mir.OpCmpNe:
		return l != r
	case mir.OpCmpLt:
		return l < r
	case mir.OpCmpLe:
		return l <= r
	case mir.OpCmpGt:
		return l > r
	default:
		return l >= r
	}
}
