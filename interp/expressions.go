/*
File    : gomix-lox/interp/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"strconv"

	"github.com/akashmaji946/gomix-lox/ast"
	"github.com/akashmaji946/gomix-lox/diag"
	"github.com/akashmaji946/gomix-lox/env"
	"github.com/akashmaji946/gomix-lox/lexer"
	"github.com/akashmaji946/gomix-lox/values"
)

// evalExpr evaluates expr once, WITHOUT resolving an Identifier sentinel.
// A bare *ast.Variable always evaluates to an Identifier Value; callers
// that are about to operate on the result (arithmetic, logical, assignment
// RHS, call arguments, field access) must call evalAndResolveTop or
// resolve first, per spec.md §4.5's identifier-resolution rule.
func (it *Interpreter) evalExpr(expr ast.Expr) *values.Value {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e)
	case *ast.Variable:
		return values.NewIdentifier(e.Name)
	case *ast.Grouping:
		return it.evalExpr(e.Inner)
	case *ast.Unary:
		return it.evalUnary(e)
	case *ast.Binary:
		return it.evalBinary(e)
	case *ast.Logical:
		return it.evalLogical(e)
	case *ast.Assign:
		return it.evalAssign(e)
	case *ast.Call:
		return it.evalCall(e)
	case *ast.Get:
		return it.evalGet(e)
	}
	panic("interp: unhandled expression type")
}

// evalAndResolveTop evaluates expr and, if the result is an Identifier
// sentinel, immediately dereferences it via env lookup and returns a
// snapshot copy of the bound value.
func (it *Interpreter) evalAndResolveTop(expr ast.Expr) *values.Value {
	return it.resolve(it.evalExpr(expr), expr)
}

func (it *Interpreter) resolve(v *values.Value, src ast.Expr) *values.Value {
	if v.Kind != values.KindIdentifier {
		return v
	}
	bound, ok := it.Env.Lookup(v.Str)
	if !ok {
		line, col := exprPos(src)
		it.report(diag.NameError, line, col, "undefined variable '%s'", v.Str)
	}
	return bound.Copy()
}

func literalValue(l *ast.Literal) *values.Value {
	switch l.Kind {
	case lexer.Number:
		n, _ := strconv.ParseInt(l.Text, 10, 64)
		return values.NewNumber(n)
	case lexer.String:
		return values.NewString(l.Text)
	case lexer.True:
		return values.NewBool(true)
	case lexer.False:
		return values.NewBool(false)
	default:
		return values.Nil()
	}
}

// exprPos extracts the source position of expr for diagnostics, pulling
// from whichever token field that node carries.
func exprPos(expr ast.Expr) (int, int) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Token.Line, e.Token.Column
	case *ast.Variable:
		return e.Token.Line, e.Token.Column
	case *ast.Grouping:
		return e.Token.Line, e.Token.Column
	case *ast.Unary:
		return e.Op.Line, e.Op.Column
	case *ast.Binary:
		return e.Op.Line, e.Op.Column
	case *ast.Logical:
		return e.Op.Line, e.Op.Column
	case *ast.Assign:
		return e.Token.Line, e.Token.Column
	case *ast.Call:
		return e.Paren.Line, e.Paren.Column
	case *ast.Get:
		return e.Dot.Line, e.Dot.Column
	}
	return 0, 0
}

func (it *Interpreter) evalUnary(e *ast.Unary) *values.Value {
	operand := it.evalAndResolveTop(e.Operand)
	switch e.Op.Type {
	case lexer.Minus:
		if operand.Kind != values.KindNumber {
			it.report(diag.TypeError, e.Op.Line, e.Op.Column, "unary - requires Number, got %s", operand.TypeName())
		}
		return values.NewNumber(-operand.Num)
	case lexer.Bang:
		if operand.Kind != values.KindBoolean {
			it.report(diag.TypeError, e.Op.Line, e.Op.Column, "unary ! requires Boolean, got %s", operand.TypeName())
		}
		return values.NewBool(!operand.Bool)
	}
	panic("interp: unhandled unary operator")
}

func (it *Interpreter) evalBinary(e *ast.Binary) *values.Value {
	lhs := it.evalAndResolveTop(e.Lhs)
	rhs := it.evalAndResolveTop(e.Rhs)
	line, col := e.Op.Line, e.Op.Column

	switch {
	case lhs.Kind == values.KindNumber && rhs.Kind == values.KindNumber:
		return it.numberBinary(e.Op.Type, lhs.Num, rhs.Num, line, col)
	case lhs.Kind == values.KindString && rhs.Kind == values.KindString:
		return it.stringBinary(e.Op.Type, lhs.Str, rhs.Str, line, col)
	case lhs.Kind == values.KindBoolean && rhs.Kind == values.KindBoolean:
		return it.booleanBinary(e.Op.Type, lhs.Bool, rhs.Bool, line, col)
	default:
		it.report(diag.TypeError, line, col, "operator %s requires matching operand types, got %s and %s",
			e.Op.Type, lhs.TypeName(), rhs.TypeName())
		return values.Nil()
	}
}

// numberBinary implements spec.md §4.5's Number-op-Number table: `/` is
// integer division, `%` is Euclidean remainder (non-negative when the
// divisor is positive), and division/modulo by zero raise DivideByZero
// (this repo's chosen resolution of spec.md §9's division-by-zero Open
// Question) instead of yielding Nil.
func (it *Interpreter) numberBinary(op lexer.TokenType, l, r int64, line, col int) *values.Value {
	switch op {
	case lexer.Plus:
		return values.NewNumber(l + r)
	case lexer.Minus:
		return values.NewNumber(l - r)
	case lexer.Star:
		return values.NewNumber(l * r)
	case lexer.Slash:
		if r == 0 {
			it.report(diag.DivideByZero, line, col, "division by zero")
		}
		return values.NewNumber(l / r)
	case lexer.Percent:
		if r == 0 {
			it.report(diag.DivideByZero, line, col, "modulo by zero")
		}
		return values.NewNumber(euclidMod(l, r))
	case lexer.EqualEqual:
		return values.NewBool(l == r)
	case lexer.BangEqual:
		return values.NewBool(l != r)
	case lexer.Less:
		return values.NewBool(l < r)
	case lexer.LessEqual:
		return values.NewBool(l <= r)
	case lexer.Greater:
		return values.NewBool(l > r)
	case lexer.GreaterEqual:
		return values.NewBool(l >= r)
	}
	it.report(diag.TypeError, line, col, "operator %s is not defined for Number", op)
	return values.Nil()
}

// euclidMod implements Rust's rem_euclid: the result always lies in
// [0, |r|), regardless of the sign of either operand. Grounded in
// original_source's `(lhs_res.number).rem_euclid(rhs_res.number)`.
func euclidMod(l, r int64) int64 {
	m := l % r
	if m < 0 {
		if r < 0 {
			m -= r
		} else {
			m += r
		}
	}
	return m
}

func (it *Interpreter) stringBinary(op lexer.TokenType, l, r string, line, col int) *values.Value {
	switch op {
	case lexer.Plus:
		return values.NewString(l + r)
	case lexer.EqualEqual:
		return values.NewBool(l == r)
	case lexer.BangEqual:
		return values.NewBool(l != r)
	}
	it.report(diag.TypeError, line, col, "operator %s is not defined for String", op)
	return values.Nil()
}

// booleanBinary is this repo's resolution of spec.md §9's boolean-equality
// Open Question: `==`/`!=` are extended to accept Boolean operands.
func (it *Interpreter) booleanBinary(op lexer.TokenType, l, r bool, line, col int) *values.Value {
	switch op {
	case lexer.EqualEqual:
		return values.NewBool(l == r)
	case lexer.BangEqual:
		return values.NewBool(l != r)
	}
	it.report(diag.TypeError, line, col, "operator %s is not defined for Boolean", op)
	return values.Nil()
}

func (it *Interpreter) evalLogical(e *ast.Logical) *values.Value {
	lhs := it.evalAndResolveTop(e.Lhs)
	rhs := it.evalAndResolveTop(e.Rhs)
	if lhs.Kind != values.KindBoolean || rhs.Kind != values.KindBoolean {
		it.report(diag.TypeError, e.Op.Line, e.Op.Column, "%s requires Boolean operands, got %s and %s",
			e.Op.Type, lhs.TypeName(), rhs.TypeName())
	}
	switch e.Op.Type {
	case lexer.And:
		return values.NewBool(lhs.Bool && rhs.Bool)
	case lexer.Or:
		return values.NewBool(lhs.Bool || rhs.Bool)
	}
	panic("interp: unhandled logical operator")
}

// evalAssign implements spec.md §4.5's Assignment rule: evaluate (and
// dereference) the value, remove the binding entirely if it resolved to
// Nil, otherwise assign_existing and yield a copy of the assigned value.
func (it *Interpreter) evalAssign(e *ast.Assign) *values.Value {
	resolved := it.resolve(it.evalExpr(e.Value), e.Value)
	if resolved.IsNil() {
		it.Env.Remove(e.Target)
		return values.Nil()
	}
	if !it.Env.AssignExisting(e.Target, resolved.Copy()) {
		it.report(diag.NameError, e.Token.Line, e.Token.Column, "assignment to undeclared variable '%s'", e.Target)
	}
	return resolved.Copy()
}

// evalCall implements spec.md §4.5's Call rule for both Function and Class
// callees.
func (it *Interpreter) evalCall(e *ast.Call) *values.Value {
	callee := it.evalAndResolveTop(e.Callee)

	args := make([]*values.Value, len(e.Args))
	for i, a := range e.Args {
		args[i] = it.evalAndResolveTop(a)
	}

	line, col := e.Paren.Line, e.Paren.Column
	switch callee.Kind {
	case values.KindFunction:
		return it.callFunction(callee.Function, args, line, col)
	case values.KindClass:
		return it.callClass(callee.Class, args, line, col)
	default:
		it.report(diag.CallTargetErr, line, col, "cannot call a value of kind %s", callee.TypeName())
		return values.Nil()
	}
}

func (it *Interpreter) callFunction(fn *values.Function, args []*values.Value, line, col int) *values.Value {
	if len(fn.Params) != len(args) {
		it.report(diag.ArityError, line, col, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	closure, _ := fn.Closure.(*env.Environment)
	callEnv := env.New(closure)
	for i, p := range fn.Params {
		callEnv.Define(p, args[i].Copy())
	}

	prev := it.Env
	it.Env = callEnv
	result := voidResult()
	for _, s := range fn.Body.Stmts {
		result = it.execStmt(s)
		if result.Kind == ReturnResult {
			break
		}
	}
	it.Env = prev

	if result.Kind == ReturnResult {
		return result.V
	}
	return values.Nil()
}

// callClass implements the Call-on-Class rule: bind constructor arguments
// into fields_env, clone each method into methods_env with its closure set
// to methods_env itself, and return the resulting Instance.
func (it *Interpreter) callClass(cls *values.Class, args []*values.Value, line, col int) *values.Value {
	if len(cls.Params) != len(args) {
		it.report(diag.ArityError, line, col, "%s expects %d constructor argument(s), got %d", cls.Name, len(cls.Params), len(args))
	}

	fieldsEnv := env.New(nil)
	for i, p := range cls.Params {
		fieldsEnv.Define(p, args[i].Copy())
	}

	methodsEnv := env.New(fieldsEnv)
	for _, m := range cls.Methods {
		// Closure is methodsEnv itself (not fieldsEnv), so a bare call to a
		// sibling method from within a method body resolves: the lookup
		// chain from a method's own call frame is callEnv -> methodsEnv ->
		// fieldsEnv, reaching both other methods and constructor fields.
		bound := &values.Function{Name: m.Name, Params: m.Params, Body: m.Body, Closure: methodsEnv}
		methodsEnv.Define(m.Name, values.NewFunction(bound))
	}

	return values.NewInstance(&values.Instance{Class: cls, Env: methodsEnv})
}

// evalGet implements spec.md §4.5's Get rule, rebinding a resolved method
// to a fresh child of the instance's environment on every access — this is
// how methods observe the instance's fields without a `this` keyword.
func (it *Interpreter) evalGet(e *ast.Get) *values.Value {
	obj := it.evalAndResolveTop(e.Object)
	if obj.Kind != values.KindInstance {
		line, col := exprPos(e.Object)
		it.report(diag.TypeError, line, col, "cannot access property '%s' on a %s", e.Property, obj.TypeName())
	}

	instEnv, _ := obj.Instance.Env.(*env.Environment)
	bound, ok := instEnv.Lookup(e.Property)
	if !ok {
		it.report(diag.NameError, e.Dot.Line, e.Dot.Column, "undefined property '%s'", e.Property)
	}

	if bound.Kind == values.KindFunction {
		fn := bound.Function
		rebound := &values.Function{Name: fn.Name, Params: fn.Params, Body: fn.Body, Closure: env.New(instEnv)}
		return values.NewFunction(rebound)
	}
	return bound.Copy()
}
