package mir

import (
	"errors"
	"fmt"
)

// Validate checks MIR module invariants.
// Returns error if any invariant is violated.
func Validate(m *Module) error {
	if m == nil {
		return nil
	}
	var errs []error
	if err := validateSignatures(m); err != nil {
		errs = append(errs, err)
	}
	for _, f := range m.Funcs {
		if f == nil {
			continue
		}
		if err := validateFunc(f); err != nil {
			errs = append(errs, fmt.Errorf("function %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// validateSignatures checks that the header table mirrors Funcs.
func validateSignatures(m *Module) error {
	var errs []error
	if len(m.Signatures) != len(m.Funcs) {
		errs = append(errs, fmt.Errorf("signature table has %d entries for %d functions",
			len(m.Signatures), len(m.Funcs)))
	}
	for i, f := range m.Funcs {
		if f == nil || i >= len(m.Signatures) {
			continue
		}
		sig := &m.Signatures[i]
		if sig.Name != f.Name {
			errs = append(errs, fmt.Errorf("f%d: header name %q, function name %q", i, sig.Name, f.Name))
		}
		if sig.Result != f.Result {
			errs = append(errs, fmt.Errorf("function %s: header result %v, function result %v",
				f.Name, sig.Result, f.Result))
		}
		if len(sig.Params) != len(f.Params) {
			errs = append(errs, fmt.Errorf("function %s: header has %d params, function has %d",
				f.Name, len(sig.Params), len(f.Params)))
		}
	}
	return errors.Join(errs...)
}

func validateFunc(f *Func) error {
	var errs []error

	if err := validateBlocksTerminated(f); err != nil {
		errs = append(errs, err)
	}
	if err := validateBlockTargets(f); err != nil {
		errs = append(errs, err)
	}
	if err := validateValues(f); err != nil {
		errs = append(errs, err)
	}
	if err := validateLocals(f); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// validateBlocksTerminated checks that every block ends with a terminator.
func validateBlocksTerminated(f *Func) error {
	var errs []error
	for i := range f.Blocks {
		if f.Blocks[i].Term.Kind == TermNone {
			errs = append(errs, fmt.Errorf("bb%d: unterminated block", i))
		}
	}
	return errors.Join(errs...)
}

// validateBlockTargets checks that every terminator target exists.
func validateBlockTargets(f *Func) error {
	var errs []error
	inRange := func(id BlockID) bool { return id >= 0 && int(id) < len(f.Blocks) }
	for i := range f.Blocks {
		term := &f.Blocks[i].Term
		switch term.Kind {
		case TermGoto:
			if !inRange(term.Goto.Target) {
				errs = append(errs, fmt.Errorf("bb%d: goto to missing bb%d", i, term.Goto.Target))
			}
		case TermIf:
			if !inRange(term.If.Then) || !inRange(term.If.Else) {
				errs = append(errs, fmt.Errorf("bb%d: if to missing block", i))
			}
		}
	}
	return errors.Join(errs...)
}

// validateValues — define-before-use: операнды инструкции и терминатора
// обязаны быть определены раньше в том же блоке. Значения между блоками
// не передаются, only Load/Store именованных слотов.
func validateValues(f *Func) error {
	var errs []error
	for i := range f.Blocks {
		b := &f.Blocks[i]
		defined := make(map[ValueID]*Instr)
		use := func(v ValueID, what string) {
			if _, ok := defined[v]; !ok {
				errs = append(errs, fmt.Errorf("bb%d: %s uses undefined value v%d", i, what, v))
			}
		}
		for j := range b.Instrs {
			instr := &b.Instrs[j]
			switch instr.Kind {
			case InstrBin:
				use(instr.Bin.Left, "bin")
				use(instr.Bin.Right, "bin")
			case InstrUn:
				use(instr.Un.Operand, "un")
			case InstrStore:
				use(instr.Store.Value, "store")
			case InstrCall:
				for _, arg := range instr.Call.Args {
					use(arg, "call")
				}
			case InstrPrint:
				use(instr.Print.Value, "print")
			}
			if instr.Dst != NoValueID {
				if _, dup := defined[instr.Dst]; dup {
					errs = append(errs, fmt.Errorf("bb%d: value v%d defined twice", i, instr.Dst))
				}
				defined[instr.Dst] = instr
			}
		}
		switch b.Term.Kind {
		case TermReturn:
			use(b.Term.Return.Value, "return")
			if def, ok := defined[b.Term.Return.Value]; ok && def.Type != f.Result {
				errs = append(errs, fmt.Errorf("bb%d: return of %s from %s function",
					i, def.Type, f.Result))
			}
		case TermIf:
			use(b.Term.If.Cond, "if")
			if def, ok := defined[b.Term.If.Cond]; ok {
				if def.Kind != InstrBin || !def.Bin.Op.IsComparison() {
					errs = append(errs, fmt.Errorf("bb%d: if condition v%d is not a comparison",
						i, b.Term.If.Cond))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// validateLocals checks that every referenced slot exists and is typed.
func validateLocals(f *Func) error {
	var errs []error
	inRange := func(id LocalID) bool { return id >= 0 && int(id) < len(f.Locals) }
	for i := range f.Blocks {
		for j := range f.Blocks[i].Instrs {
			instr := &f.Blocks[i].Instrs[j]
			switch instr.Kind {
			case InstrLoad:
				if !inRange(instr.Load.Local) {
					errs = append(errs, fmt.Errorf("bb%d: load from missing local %d", i, instr.Load.Local))
				}
			case InstrStore:
				if !inRange(instr.Store.Local) {
					errs = append(errs, fmt.Errorf("bb%d: store to missing local %d", i, instr.Store.Local))
				}
			}
		}
	}
	for i := range f.Locals {
		if !f.Locals[i].Type.IsValid() {
			errs = append(errs, fmt.Errorf("local %d (%s): invalid type", i, f.Locals[i].Name))
		}
	}
	return errors.Join(errs...)
}
