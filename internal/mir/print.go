package mir

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"minilang/internal/types"
)

// DumpModule writes a human-readable representation of a MIR module.
func DumpModule(w io.Writer, m *Module) error {
	first := true
	for _, f := range m.Funcs {
		if f == nil {
			continue
		}
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false
		if err := DumpFunc(w, f); err != nil {
			return err
		}
	}
	return nil
}

// DumpFunc writes one function in the same textual form.
func DumpFunc(w io.Writer, f *Func) error {
	var sb strings.Builder

	sb.WriteString("fn ")
	sb.WriteString(f.Name)
	sb.WriteByte('(')
	for i, id := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		p := f.Local(id)
		sb.WriteString(p.Name)
		sb.WriteString(": ")
		sb.WriteString(p.Type.String())
	}
	sb.WriteString(") -> ")
	sb.WriteString(f.Result.String())
	sb.WriteString(" {\n")

	if len(f.Locals) > 0 {
		sb.WriteString("locals:\n")
		for i := range f.Locals {
			l := &f.Locals[i]
			fmt.Fprintf(&sb, "  l%d %s: %s\n", i, l.Name, l.Type)
		}
	}

	for i := range f.Blocks {
		fmt.Fprintf(&sb, "bb%d:\n", i)
		b := &f.Blocks[i]
		for j := range b.Instrs {
			sb.WriteString("  ")
			writeInstr(&sb, f, &b.Instrs[j])
			sb.WriteByte('\n')
		}
		sb.WriteString("  ")
		writeTerm(&sb, &b.Term)
		sb.WriteByte('\n')
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeInstr(sb *strings.Builder, f *Func, instr *Instr) {
	if instr.Dst != NoValueID {
		fmt.Fprintf(sb, "v%d = ", instr.Dst)
	}
	switch instr.Kind {
	case InstrConst:
		fmt.Fprintf(sb, "const %s %s", instr.Type, constText(instr))
	case InstrBin:
		fmt.Fprintf(sb, "%s %s v%d, v%d", instr.Bin.Op, instr.Type, instr.Bin.Left, instr.Bin.Right)
	case InstrUn:
		fmt.Fprintf(sb, "%s %s v%d", instr.Un.Op, instr.Type, instr.Un.Operand)
	case InstrLoad:
		fmt.Fprintf(sb, "load l%d", instr.Load.Local)
		if l := f.Local(instr.Load.Local); l != nil {
			fmt.Fprintf(sb, " ; %s", l.Name)
		}
	case InstrStore:
		fmt.Fprintf(sb, "store l%d, v%d", instr.Store.Local, instr.Store.Value)
		if l := f.Local(instr.Store.Local); l != nil {
			fmt.Fprintf(sb, " ; %s", l.Name)
		}
	case InstrCall:
		fmt.Fprintf(sb, "call %s(", instr.Call.Name)
		for i, arg := range instr.Call.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "v%d", arg)
		}
		sb.WriteByte(')')
	case InstrPrint:
		fmt.Fprintf(sb, "print %s v%d", instr.Type, instr.Print.Value)
	default:
		sb.WriteString("???")
	}
}

func constText(instr *Instr) string {
	if instr.Type == types.Float64 {
		return strconv.FormatFloat(instr.Const.FloatVal, 'g', -1, 64)
	}
	return strconv.FormatInt(int64(instr.Const.IntVal), 10)
}

func writeTerm(sb *strings.Builder, term *Terminator) {
	switch term.Kind {
	case TermReturn:
		fmt.Fprintf(sb, "return v%d", term.Return.Value)
	case TermGoto:
		fmt.Fprintf(sb, "goto bb%d", term.Goto.Target)
	case TermIf:
		fmt.Fprintf(sb, "if v%d then bb%d else bb%d", term.If.Cond, term.If.Then, term.If.Else)
	case TermUnreachable:
		sb.WriteString("unreachable")
	default:
		sb.WriteString("<none>")
	}
}
