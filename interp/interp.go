/*
File    : gomix-lox/interp/interp.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp is the gomix-lox evaluator: the teacher's eval package,
// renamed and rebuilt for this grammar. Statement execution returns a
// StatementResult sum type instead of the teacher's type-asserted
// *std.ReturnValue wrapper, per spec.md §9's explicit redesign note ("the
// evaluator can check-and-unwind explicitly" rather than using an
// exception-like propagation).
package interp

import (
	"io"
	"os"

	"github.com/akashmaji946/gomix-lox/ast"
	"github.com/akashmaji946/gomix-lox/diag"
	"github.com/akashmaji946/gomix-lox/env"
	"github.com/akashmaji946/gomix-lox/values"
)

// ResultKind tags a StatementResult.
type ResultKind int

const (
	Void ResultKind = iota
	ValueResult
	ReturnResult
)

// StatementResult is what executing one ast.Stmt produces: nothing (Void),
// an expression statement's discarded value (ValueResult, carried only so
// the REPL and file-mode drivers can echo the last statement's value), or a
// return in flight (ReturnResult,
// which unwinds every enclosing Block up to the nearest function call
// frame).
type StatementResult struct {
	Kind ResultKind
	V    *values.Value
}

func voidResult() StatementResult                { return StatementResult{Kind: Void} }
func valueResult(v *values.Value) StatementResult { return StatementResult{Kind: ValueResult, V: v} }
func returnResult(v *values.Value) StatementResult {
	return StatementResult{Kind: ReturnResult, V: v}
}

// Interpreter walks a parsed program against one environment chain. Unlike
// the teacher's Evaluator, it carries no Builtins/Types maps (spec.md's
// core has none) and no Reader (the core defines no input surface); it
// keeps the Writer field for the same reason the teacher does: tests
// redirect `print` output into a buffer instead of os.Stdout.
type Interpreter struct {
	Env    *env.Environment
	Sink   diag.Sink
	Writer io.Writer
}

// New creates an Interpreter with a fresh global environment, an
// os.Stdout writer, and the given diagnostic sink.
func New(sink diag.Sink) *Interpreter {
	return &Interpreter{Env: env.New(nil), Sink: sink, Writer: os.Stdout}
}

// SetWriter redirects `print` output, mirroring the teacher's
// Evaluator.SetWriter.
func (it *Interpreter) SetWriter(w io.Writer) {
	it.Writer = w
}

// Run executes every statement in program against the interpreter's
// current environment, in order. It's the entry point cmd/gomix and repl
// use for both file mode and one REPL line.
func (it *Interpreter) Run(program []ast.Stmt) StatementResult {
	var last StatementResult
	for _, stmt := range program {
		last = it.execStmt(stmt)
		if last.Kind == ReturnResult {
			return last
		}
	}
	return last
}

// report records a runtime diagnostic on it.Sink, then panics with it so
// the error unwinds the evaluator's recursive Eval calls to the nearest
// recover (file/REPL driver). Recording on the sink first means callers
// that inspect it.Sink after recovering (tests, a future non-panicking
// driver) see every runtime error this Interpreter has raised, not just
// the last one that escaped.
func (it *Interpreter) report(kind diag.Kind, line, col int, format string, args ...interface{}) {
	rerr := diag.NewRuntimeError(kind, line, col, format, args...)
	if it.Sink != nil {
		it.Sink.Report(rerr.Diagnostic)
	}
	panic(rerr)
}
