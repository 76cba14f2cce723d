package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/mir"
	"minilang/internal/sema"
	"minilang/internal/source"
	"minilang/internal/symbols"
)

// Options управляет стадиями check и build.
type Options struct {
	MaxDiagnostics int
	// Jobs — сколько функций проверяется одновременно; <=0 значит
	// GOMAXPROCS.
	Jobs int
}

type CheckResult struct {
	Parse *ParseResult
	Sema  *sema.Result
	Bag   *diag.Bag
	Ok    bool
}

// Check parses the file and checks every function body.
// Сигнатуры собираются последовательно, тела — воркерами errgroup;
// диагностики сливаются в порядке объявления, поэтому результат
// не зависит от числа воркеров.
func Check(ctx context.Context, path string, opts Options) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	parseRes := parseLoaded(fs, fileID, opts.MaxDiagnostics)
	if !parseRes.Ok {
		return &CheckResult{Parse: parseRes, Bag: parseRes.Bag}, nil
	}

	semaRes, _, err := checkParallel(ctx, parseRes, opts, false)
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		Parse: parseRes,
		Sema:  semaRes,
		Bag:   parseRes.Bag,
		Ok:    semaRes.Ok && !parseRes.Bag.HasErrors(),
	}, nil
}

// checkParallel does signature collection plus per-function body checks.
// Когда lower == true, каждый воркер сразу понижает свою функцию;
// FuncID назначаются по порядку объявления до запуска воркеров, так что
// вызовы вперёд ссылаются на уже известные ID. Записи по индексам не
// пересекаются, общий мешок не трогается до финального слияния.
func checkParallel(
	ctx context.Context,
	parseRes *ParseResult,
	opts Options,
	lower bool,
) (*sema.Result, *mir.Module, error) {
	builder := parseRes.Builder
	bag := parseRes.Bag

	counting := &diag.CountingReporter{Next: diag.BagReporter{Bag: bag}}
	table := symbols.NewTable(builder.StringsInterner)
	table.CollectSignatures(builder, parseRes.FileID, counting)

	semaRes := &sema.Result{
		Table: table,
		Fns:   make(map[ast.FnID]*sema.FnResult),
		Ok:    counting.Errors == 0,
	}

	var sigs []*symbols.FuncSignature
	var headers []mir.Signature
	byName := make(map[string]mir.FuncID)
	table.FuncsInOrder(func(sig *symbols.FuncSignature) {
		byName[builder.Name(sig.Name)] = mir.FuncID(len(sigs))
		headers = append(headers, mir.Signature{
			Name:   builder.Name(sig.Name),
			Params: sig.Params,
			Result: sig.Result,
		})
		sigs = append(sigs, sig)
	})

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fnResults := make([]*sema.FnResult, len(sigs))
	fnBags := make([]*diag.Bag, len(sigs))
	lowered := make([]*mir.Func, len(sigs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(sigs), 1)))
	for i, sig := range sigs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fnBag := diag.NewBag(opts.MaxDiagnostics)
			reporter := diag.BagReporter{Bag: fnBag}
			fnRes := sema.CheckFn(builder, sig.Fn, table, reporter)
			if lower && fnRes.Ok {
				if f := mir.LowerFunc(builder, sig, fnRes, byName, reporter); f != nil {
					f.ID = mir.FuncID(i)
					lowered[i] = f
				}
			}
			fnResults[i] = fnRes
			fnBags[i] = fnBag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// слияние в порядке объявления — детерминизм не зависит от jobs
	for i, sig := range sigs {
		bag.Merge(fnBags[i])
		semaRes.Fns[sig.Fn] = fnResults[i]
		if !fnResults[i].Ok {
			semaRes.Ok = false
		}
	}

	if !lower {
		return semaRes, nil, nil
	}
	return semaRes, &mir.Module{Funcs: lowered, Signatures: headers, ByName: byName}, nil
}
