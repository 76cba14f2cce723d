package sema

import (
	"strconv"

	"minilang/internal/ast"
	"minilang/internal/diag"
	"minilang/internal/symbols"
	"minilang/internal/types"
)

// checkExpr возвращает тип выражения-значения, либо types.Invalid.
// Invalid никогда не порождает вторичных диагностик: ошибка уже
// отрепорчена там, где тип потерялся.
func (c *checker) checkExpr(id ast.ExprID, scope symbols.ScopeID) types.Kind {
	expr := c.builder.Exprs.Get(id)
	if expr == nil {
		return types.Invalid
	}

	var ty types.Kind
	switch expr.Kind {
	case ast.ExprLit:
		data, _ := c.builder.Exprs.Literal(id)
		if data.Kind == ast.LitFloat {
			ty = types.Float64
		} else {
			ty = types.Int32
		}

	case ast.ExprIdent:
		ty = c.checkIdent(id, scope)

	case ast.ExprUnary:
		data, _ := c.builder.Exprs.Unary(id)
		ty = c.checkExpr(data.Operand, scope)

	case ast.ExprBinary:
		ty = c.checkBinary(id, scope)

	case ast.ExprCall:
		ty = c.checkCall(id, scope)

	case ast.ExprAssign:
		ty = c.checkAssign(id, scope)
	}

	if ty.IsValid() {
		c.res.ExprTypes[id] = ty
	}
	return ty
}

func (c *checker) checkIdent(id ast.ExprID, scope symbols.ScopeID) types.Kind {
	data, _ := c.builder.Exprs.Ident(id)
	expr := c.builder.Exprs.Get(id)

	symID, ok := c.res.Env.Resolve(scope, data.Name)
	if !ok {
		name := c.builder.Name(data.Name)
		if _, isFn := c.table.LookupFunc(data.Name); isFn {
			c.errorAt(diag.SemaUndeclaredIdentifier, expr.Span,
				"'"+name+"' is a function, call it with '()'")
		} else {
			c.errorAt(diag.SemaUndeclaredIdentifier, expr.Span,
				"undeclared identifier '"+name+"'")
		}
		return types.Invalid
	}
	c.res.IdentSyms[id] = symID
	return c.res.Env.Symbols.Get(symID).Type
}

func (c *checker) checkBinary(id ast.ExprID, scope symbols.ScopeID) types.Kind {
	data, _ := c.builder.Exprs.Binary(id)
	expr := c.builder.Exprs.Get(id)

	if data.Op.IsComparison() {
		// сравнение — не значение; допустимо только под if/while
		c.errorAt(diag.TypeConditionAsValue, expr.Span,
			"comparison is only allowed as an if/while condition")
		c.checkExpr(data.Left, scope)
		c.checkExpr(data.Right, scope)
		return types.Invalid
	}

	left := c.checkExpr(data.Left, scope)
	right := c.checkExpr(data.Right, scope)
	if !left.IsValid() || !right.IsValid() {
		return types.Invalid
	}
	if left != right {
		c.errorAt(diag.TypeMismatch, expr.Span,
			"operands of '"+data.Op.String()+"' have different types: "+left.String()+" and "+right.String())
		return types.Invalid
	}
	return left
}

// checkCond проверяет охранное условие if/while: это обязано быть
// сравнение (скобки парсер уже снял), операнды — одного типа.
func (c *checker) checkCond(id ast.ExprID, scope symbols.ScopeID) {
	expr := c.builder.Exprs.Get(id)
	if expr == nil {
		return
	}
	data, isBinary := c.builder.Exprs.Binary(id)
	if !isBinary || !data.Op.IsComparison() {
		// проверяем выражение как значение, чтобы не терять ошибки внутри
		ty := c.checkExpr(id, scope)
		if ty.IsValid() {
			c.errorAt(diag.TypeInvalidCondition, expr.Span,
				"condition must be a comparison, got a bare "+ty.String()+" value")
		}
		return
	}

	left := c.checkExpr(data.Left, scope)
	right := c.checkExpr(data.Right, scope)
	if left.IsValid() && right.IsValid() && left != right {
		c.errorAt(diag.TypeMismatch, expr.Span,
			"comparison operands have different types: "+left.String()+" and "+right.String())
	}
}

func (c *checker) checkCall(id ast.ExprID, scope symbols.ScopeID) types.Kind {
	data, _ := c.builder.Exprs.Call(id)

	sig, ok := c.table.LookupFunc(data.Name)
	if !ok {
		if _, isVar := c.res.Env.Resolve(scope, data.Name); isVar {
			c.errorAt(diag.SemaCallToVariable, data.NameSpan,
				"'"+c.builder.Name(data.Name)+"' is a variable, not a function")
		} else {
			c.errorAt(diag.SemaUnknownFunction, data.NameSpan,
				"call to unknown function '"+c.builder.Name(data.Name)+"'")
		}
		for _, arg := range data.Args {
			c.checkExpr(arg, scope)
		}
		return types.Invalid
	}

	if len(data.Args) != len(sig.Params) {
		c.errorAt(diag.TypeArityMismatch, data.NameSpan,
			"'"+c.builder.Name(data.Name)+"' expects "+countNoun(len(sig.Params), "argument")+
				", got "+countNoun(len(data.Args), "argument"))
		for _, arg := range data.Args {
			c.checkExpr(arg, scope)
		}
		return sig.Result
	}

	for i, arg := range data.Args {
		argTy := c.checkExpr(arg, scope)
		if argTy.IsValid() && argTy != sig.Params[i] {
			c.errorAt(diag.TypeMismatch, c.builder.Exprs.Get(arg).Span,
				"argument has type "+argTy.String()+", parameter is declared "+sig.Params[i].String())
		}
	}
	return sig.Result
}

// checkAssign: первое присваивание имени в области объявляет переменную
// с типом правой части; последующие обязаны совпасть по типу.
func (c *checker) checkAssign(id ast.ExprID, scope symbols.ScopeID) types.Kind {
	data, _ := c.builder.Exprs.Assign(id)

	valueTy := c.checkExpr(data.Value, scope)

	symID, found := c.res.Env.Resolve(scope, data.Name)
	if found {
		sym := c.res.Env.Symbols.Get(symID)
		c.res.IdentSyms[id] = symID
		if !valueTy.IsValid() {
			return types.Invalid
		}
		if valueTy != sym.Type {
			c.errorAt(diag.TypeMismatch, c.builder.Exprs.Get(data.Value).Span,
				"cannot assign "+valueTy.String()+" to '"+c.builder.Name(data.Name)+
					"' declared as "+sym.Type.String())
			return types.Invalid
		}
		return sym.Type
	}

	// неявное объявление; при невалидной правой части тоже объявляем,
	// чтобы дальнейшие использования не каскадировали Undeclared
	symID, _ = c.res.Env.Declare(scope, symbols.Symbol{
		Name: data.Name,
		Kind: symbols.SymbolVar,
		Span: data.NameSpan,
		Type: valueTy,
	})
	c.res.IdentSyms[id] = symID
	return valueTy
}

func countNoun(n int, noun string) string {
	s := strconv.Itoa(n) + " " + noun
	if n != 1 {
		s += "s"
	}
	return s
}
