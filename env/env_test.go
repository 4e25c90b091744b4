/*
File    : gomix-lox/env/env_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package env

import (
	"testing"

	"github.com/akashmaji946/gomix-lox/values"
	"github.com/stretchr/testify/assert"
)

func TestEnvironment_DefineAndLookup(t *testing.T) {
	e := New(nil)
	e.Define("x", values.NewNumber(1))

	v, ok := e.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.Num)

	_, ok = e.Lookup("missing")
	assert.False(t, ok)
}

func TestEnvironment_LookupWalksParentChain(t *testing.T) {
	parent := New(nil)
	parent.Define("x", values.NewNumber(1))
	child := New(parent)

	v, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.Num)
}

func TestEnvironment_ShadowingDoesNotMutateParent(t *testing.T) {
	parent := New(nil)
	parent.Define("x", values.NewNumber(1))
	child := New(parent)
	child.Define("x", values.NewNumber(2))

	childVal, _ := child.Lookup("x")
	parentVal, _ := parent.Lookup("x")
	assert.Equal(t, int64(2), childVal.Num)
	assert.Equal(t, int64(1), parentVal.Num)
}

func TestEnvironment_AssignExisting_MutatesThroughAlias(t *testing.T) {
	parent := New(nil)
	parent.Define("counter", values.NewNumber(0))
	alias, _ := parent.Lookup("counter")

	child := New(parent)
	ok := child.AssignExisting("counter", values.NewNumber(5))
	assert.True(t, ok)

	// The pointer obtained before the assignment observes the mutation, the
	// testable property closures rely on.
	assert.Equal(t, int64(5), alias.Num)
}

func TestEnvironment_AssignExisting_UndeclaredFails(t *testing.T) {
	e := New(nil)
	ok := e.AssignExisting("nope", values.NewNumber(1))
	assert.False(t, ok)
}

func TestEnvironment_Remove(t *testing.T) {
	parent := New(nil)
	parent.Define("x", values.NewNumber(1))
	child := New(parent)

	ok := child.Remove("x")
	assert.True(t, ok)

	_, found := parent.Lookup("x")
	assert.False(t, found)
}

func TestEnvironment_Remove_NotFound(t *testing.T) {
	e := New(nil)
	assert.False(t, e.Remove("nope"))
}

func TestEnvironment_NewChild_SatisfiesValuesEnvironment(t *testing.T) {
	var _ values.Environment = New(nil)
}
