/*
File    : gomix-lox/interp/interp_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/gomix-lox/diag"
	"github.com/akashmaji946/gomix-lox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSource parses and runs src against a fresh Interpreter, returning
// everything written via `print` and the final StatementResult.
func runSource(t *testing.T, src string) (string, StatementResult) {
	t.Helper()
	par := parser.NewParser(src)
	stmts := par.Parse()
	require.False(t, par.HasErrors(), "unexpected parse errors: %v", par.GetErrors())

	var out bytes.Buffer
	it := New(&diag.Collector{})
	it.SetWriter(&out)
	result := it.Run(stmts)
	return out.String(), result
}

func TestInterp_Arithmetic(t *testing.T) {
	out, _ := runSource(t, `print 1 + 2 * 3;`)
	assert.Equal(t, "7\n", out)
}

func TestInterp_EuclideanModulo(t *testing.T) {
	out, _ := runSource(t, `print -1 % 5; print 7 % 3; print -7 % -3;`)
	assert.Equal(t, "4\n1\n2\n", out)
}

func TestInterp_DivideByZeroPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		rerr, ok := r.(*diag.RuntimeError)
		require.True(t, ok)
		assert.Equal(t, diag.DivideByZero, rerr.Kind)
	}()
	runSource(t, `print 1 / 0;`)
}

func TestInterp_VariablesAndScoping(t *testing.T) {
	out, _ := runSource(t, `
		var x = 10;
		{
			var x = 20;
			print x;
		}
		print x;
	`)
	assert.Equal(t, "20\n10\n", out)
}

func TestInterp_AssignmentRebindsNotShadows(t *testing.T) {
	out, _ := runSource(t, `
		var x = 1;
		var y = x;
		x = 5;
		print y;
	`)
	assert.Equal(t, "1\n", out)
}

func TestInterp_AssignNilRemovesBinding(t *testing.T) {
	assert.Panics(t, func() {
		runSource(t, `
			var x = 1;
			x = nil;
			print x;
		`)
	})
}

func TestInterp_IfElse(t *testing.T) {
	out, _ := runSource(t, `
		if (1 == 1) { print "yes"; } else { print "no"; }
	`)
	assert.Equal(t, "yes\n", out)
}

func TestInterp_WhileLoop(t *testing.T) {
	out, _ := runSource(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterp_ForLoop(t *testing.T) {
	out, _ := runSource(t, `
		for (var i = 0; i < 3; i = i + 1) print i;
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterp_FunctionClosureCounter(t *testing.T) {
	out, _ := runSource(t, `
		fun makeCounter() {
			var i = 0;
			fun inc() {
				i = i + 1;
				return i;
			}
			return inc;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterp_FunctionCallAndReturn(t *testing.T) {
	out, _ := runSource(t, `
		fun add(a, b) {
			return a + b;
		}
		print add(2, 3);
	`)
	assert.Equal(t, "5\n", out)
}

func TestInterp_FunctionArityMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		runSource(t, `
			fun add(a, b) { return a + b; }
			print add(1);
		`)
	})
}

func TestInterp_EmptyFunctionBodyReturnsNil(t *testing.T) {
	out, _ := runSource(t, `
		fun noop() { }
		print noop();
	`)
	assert.Equal(t, "nil\n", out)
}

func TestInterp_ClassConstructorAndMethod(t *testing.T) {
	out, _ := runSource(t, `
		class Box(x) {
			value() { return x; }
		}
		var b = Box(42);
		print b.value();
	`)
	assert.Equal(t, "42\n", out)
}

func TestInterp_ClassConstructorArityMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		runSource(t, `
			class Box(x) { value() { return x; } }
			var b = Box();
		`)
	})
}

func TestInterp_ClassMethodsCallEachOther(t *testing.T) {
	out, _ := runSource(t, `
		class Pair(a, b) {
			sum() { return a + b; }
			twiceSum() { return sum() * 2; }
		}
		var p = Pair(3, 4);
		print p.twiceSum();
	`)
	assert.Equal(t, "14\n", out)
}

func TestInterp_LogicalOperatorsRequireBoolean(t *testing.T) {
	assert.Panics(t, func() {
		runSource(t, `print 1 and true;`)
	})
}

func TestInterp_IfConditionRequiresBoolean(t *testing.T) {
	assert.Panics(t, func() {
		runSource(t, `if (1) print "no";`)
	})
}

func TestInterp_BooleanEquality(t *testing.T) {
	out, _ := runSource(t, `print true == true; print true == false;`)
	assert.Equal(t, "true\nfalse\n", out)
}

func TestInterp_StringConcatenation(t *testing.T) {
	out, _ := runSource(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestInterp_MixedTypeBinaryIsError(t *testing.T) {
	assert.Panics(t, func() {
		runSource(t, `print 1 + "two";`)
	})
}

func TestInterp_CallingNonCallableIsError(t *testing.T) {
	assert.Panics(t, func() {
		runSource(t, `
			var x = 1;
			print x();
		`)
	})
}
