/*
File    : gomix-lox/interp/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/gomix-lox/ast"
	"github.com/akashmaji946/gomix-lox/diag"
	"github.com/akashmaji946/gomix-lox/env"
	"github.com/akashmaji946/gomix-lox/values"
)

// execStmt runs one statement against it.Env per spec.md §4.5's statement
// table and returns the StatementResult it produces. A ReturnResult must be
// propagated unchanged by every caller up to the nearest function call
// frame (see callFunction).
func (it *Interpreter) execStmt(stmt ast.Stmt) StatementResult {
	switch n := stmt.(type) {
	case *ast.ExprStmt:
		v := it.evalAndResolveTop(n.Expr)
		return valueResult(v)

	case *ast.PrintStmt:
		v := it.evalAndResolveTop(n.Expr)
		fmt.Fprintln(it.Writer, v.Print())
		return voidResult()

	case *ast.VarDecl:
		v := values.Nil()
		if n.Init != nil {
			v = it.evalAndResolveTop(n.Init)
		}
		it.Env.Define(n.Name, v.Copy())
		return voidResult()

	case *ast.Block:
		return it.execBlock(n, env.New(it.Env))

	case *ast.If:
		return it.execIf(n)

	case *ast.While:
		return it.execWhile(n)

	case *ast.For:
		return it.execFor(n)

	case *ast.FunDecl:
		it.Env.Define(n.Name, values.NewFunction(&values.Function{
			Name:    n.Name,
			Params:  n.Params,
			Body:    n.Body,
			Closure: it.Env,
		}))
		return voidResult()

	case *ast.Return:
		v := values.Nil()
		if n.Expr != nil {
			v = it.evalAndResolveTop(n.Expr)
		}
		return returnResult(v)

	case *ast.ClassDecl:
		it.Env.Define(n.Name, values.NewClass(it.buildClass(n)))
		return voidResult()
	}
	panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
}

// execBlock runs b's statements against child, restoring the previous
// environment on the way out. Blocks never create their own further nested
// scope beyond child; the caller decides what child encloses.
func (it *Interpreter) execBlock(b *ast.Block, child *env.Environment) StatementResult {
	prev := it.Env
	it.Env = child
	defer func() { it.Env = prev }()

	result := voidResult()
	for _, s := range b.Stmts {
		result = it.execStmt(s)
		if result.Kind == ReturnResult {
			return result
		}
	}
	return result
}

func (it *Interpreter) execIf(n *ast.If) StatementResult {
	cond := it.requireBoolean(n.Cond)
	if cond {
		return it.execStmt(n.Then)
	}
	if n.Else != nil {
		return it.execStmt(n.Else)
	}
	return voidResult()
}

func (it *Interpreter) execWhile(n *ast.While) StatementResult {
	for it.requireBoolean(n.Cond) {
		result := it.execStmt(n.Body)
		if result.Kind == ReturnResult {
			return result
		}
	}
	return voidResult()
}

// execFor lowers `for (init; cond; step) body` to
// `{ init; while (cond_or_true) { body; step; } }` evaluated in a fresh
// scope enclosing the surrounding environment, exactly as spec.md §4.5
// directs.
func (it *Interpreter) execFor(n *ast.For) StatementResult {
	prev := it.Env
	it.Env = env.New(prev)
	defer func() { it.Env = prev }()

	if n.Init != nil {
		if r := it.execStmt(n.Init); r.Kind == ReturnResult {
			return r
		}
	}
	for {
		if n.Cond != nil && !it.requireBoolean(n.Cond) {
			break
		}
		if r := it.execStmt(n.Body); r.Kind == ReturnResult {
			return r
		}
		if n.Step != nil {
			it.evalAndResolveTop(n.Step)
		}
	}
	return voidResult()
}

// requireBoolean evaluates cond and raises a TypeError unless it resolves
// to a Boolean, per spec.md §4.5's "evaluate cond; require Boolean" rule
// for If and the analogous rule this repo applies to While/For.
func (it *Interpreter) requireBoolean(cond ast.Expr) bool {
	v := it.evalAndResolveTop(cond)
	if v.Kind != values.KindBoolean {
		line, col := exprPos(cond)
		it.report(diag.TypeError, line, col, "condition must be Boolean, got %s", v.TypeName())
	}
	return v.Bool
}

// buildClass constructs the Class template for a ClassDecl. Method bodies
// are captured without a closure here; Call-on-Class sets each method's
// closure to the new instance's methods_env, whose parent is its fields_env.
func (it *Interpreter) buildClass(n *ast.ClassDecl) *values.Class {
	cls := &values.Class{Name: n.Name, Params: n.Params}
	for _, m := range n.Methods {
		cls.Methods = append(cls.Methods, &values.Function{Name: m.Name, Params: m.Params, Body: m.Body})
	}
	return cls
}
