package mir

type pathState uint8

const (
	pathUnvisited pathState = iota
	pathVisiting
	pathReturns
	pathFallsOff
)

// returnsOnAllPaths — структурная проверка достижимости: блок «возвращает
// на всех путях», если завершается Return, либо Goto/If, все цели которых
// возвращают на всех путях. Обратные рёбра циклов сами по себе требование
// не закрывают и не проваливают: решает путь через exit-блок.
func returnsOnAllPaths(f *Func) bool {
	states := make([]pathState, len(f.Blocks))
	return blockReturns(f, f.Entry, states)
}

func blockReturns(f *Func, id BlockID, states []pathState) bool {
	if id < 0 || int(id) >= len(f.Blocks) {
		return false
	}
	switch states[id] {
	case pathVisiting:
		// обратное ребро нейтрально: вердикт выносит выходное ребро цикла
		return true
	case pathReturns:
		return true
	case pathFallsOff:
		return false
	}
	states[id] = pathVisiting

	var ok bool
	b := &f.Blocks[id]
	switch b.Term.Kind {
	case TermReturn:
		ok = true
	case TermGoto:
		ok = blockReturns(f, b.Term.Goto.Target, states)
	case TermIf:
		// порядок важен: оба плеча должны пройти, && не срезает рекурсию
		thenOK := blockReturns(f, b.Term.If.Then, states)
		elseOK := blockReturns(f, b.Term.If.Else, states)
		ok = thenOK && elseOK
	default:
		ok = false
	}

	if ok {
		states[id] = pathReturns
	} else {
		states[id] = pathFallsOff
	}
	return ok
}
