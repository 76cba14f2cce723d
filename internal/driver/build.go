package driver

import (
	"context"
	"fmt"

	"minilang/internal/diag"
	"minilang/internal/mir"
	"minilang/internal/sema"
	"minilang/internal/source"
)

type BuildResult struct {
	Parse  *ParseResult
	Sema   *sema.Result
	Bag    *diag.Bag
	Module *mir.Module
	Ok     bool
}

// Build runs the whole front end and lowers every healthy function.
// Модуль возвращается и при ошибках — в нём остаются выжившие функции,
// Ok при этом false.
func Build(ctx context.Context, path string, opts Options) (*BuildResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	parseRes := parseLoaded(fs, fileID, opts.MaxDiagnostics)
	if !parseRes.Ok {
		return &BuildResult{Parse: parseRes, Bag: parseRes.Bag}, nil
	}

	semaRes, module, err := checkParallel(ctx, parseRes, opts, true)
	if err != nil {
		return nil, err
	}

	ok := semaRes.Ok && !parseRes.Bag.HasErrors()
	for _, f := range module.Funcs {
		if f == nil {
			ok = false
		}
	}
	if ok {
		if verr := mir.Validate(module); verr != nil {
			return nil, fmt.Errorf("internal error: lowered module failed validation: %w", verr)
		}
	}

	return &BuildResult{
		Parse:  parseRes,
		Sema:   semaRes,
		Bag:    parseRes.Bag,
		Module: module,
		Ok:     ok,
	}, nil
}
