/*
File    : gomix-lox/diag/diag.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diag carries the diagnostic kinds spec.md §7 names across the
// parser/evaluator boundary. Parse errors are collected (the parser never
// panics); runtime errors unwind the Go call stack through a single panic
// caught at the driver boundary, mirroring the teacher's
// executeFileWithRecovery/executeWithRecovery defer-recover idiom.
package diag

import "fmt"

// Kind is one of the error categories spec.md §7 defines.
type Kind string

const (
	ParseError    Kind = "ParseError"
	TypeError     Kind = "TypeError"
	NameError     Kind = "NameError"
	ArityError    Kind = "ArityError"
	DivideByZero  Kind = "DivideByZero"
	CallTargetErr Kind = "CallTargetError"
)

// Diagnostic is a single reported problem with source position context.
type Diagnostic struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

// String renders "[line:col] Kind: message", the format the teacher's
// CreateError/addError helpers use for REPL and file-mode error display.
func (d Diagnostic) String() string {
	return fmt.Sprintf("[%d:%d] %s: %s", d.Line, d.Column, d.Kind, d.Message)
}

// Sink receives diagnostics as they're produced. The evaluator records each
// runtime diagnostic on its Sink (a Collector in the drivers and tests) and
// then raises a RuntimeError, since a single runtime fault must stop
// evaluation (spec.md §7: "a failed + must not have printed anything"). The
// parser keeps its own list of error strings and does not use a Sink.
type Sink interface {
	Report(d Diagnostic)
}

// Collector accumulates diagnostics without halting the producer.
type Collector struct {
	items []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.items = append(c.items, d)
}

// HasErrors reports whether any diagnostic has been collected.
func (c *Collector) HasErrors() bool {
	return len(c.items) > 0
}

// Errors returns all collected diagnostics in report order.
func (c *Collector) Errors() []Diagnostic {
	return c.items
}

// RuntimeError is a Diagnostic promoted to a Go error so it can unwind the
// evaluator's recursive Eval calls via panic/recover. Callers at the top
// level recover it, print Diagnostic.String(), and exit non-zero.
type RuntimeError struct {
	Diagnostic
}

func (e *RuntimeError) Error() string {
	return e.Diagnostic.String()
}

// NewRuntimeError constructs and returns a *RuntimeError ready to panic
// with: `panic(diag.NewRuntimeError(...))`.
func NewRuntimeError(kind Kind, line, col int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: col}}
}
