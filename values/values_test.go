/*
File    : gomix-lox/values/values_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Print(t *testing.T) {
	assert.Equal(t, "nil", Nil().Print())
	assert.Equal(t, "hello", NewString("hello").Print())
	assert.Equal(t, "42", NewNumber(42).Print())
	assert.Equal(t, "-7", NewNumber(-7).Print())
	assert.Equal(t, "true", NewBool(true).Print())
	assert.Equal(t, "false", NewBool(false).Print())

	fn := NewFunction(&Function{Name: "f"})
	assert.Equal(t, "function :f", fn.Print())

	cls := NewClass(&Class{Name: "Box"})
	assert.Equal(t, "class :Box", cls.Print())

	inst := NewInstance(&Instance{Class: cls.Class})
	assert.Equal(t, "instance of Box", inst.Print())
}

func TestValue_IsNil(t *testing.T) {
	assert.True(t, Nil().IsNil())
	assert.True(t, (*Value)(nil).IsNil())
	assert.False(t, NewNumber(0).IsNil())
	assert.False(t, NewBool(false).IsNil())
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Nil().Equal(Nil()))
	assert.True(t, NewNumber(3).Equal(NewNumber(3)))
	assert.False(t, NewNumber(3).Equal(NewNumber(4)))
	assert.True(t, NewString("a").Equal(NewString("a")))
	assert.False(t, NewString("a").Equal(NewNumber(1)))
	assert.True(t, NewBool(true).Equal(NewBool(true)))
	assert.False(t, Nil().Equal(NewNumber(0)))

	fn := &Function{Name: "f"}
	assert.True(t, NewFunction(fn).Equal(NewFunction(fn)))
	assert.False(t, NewFunction(fn).Equal(NewFunction(&Function{Name: "f"})))
}

func TestValue_Copy_IsIndependentForPrimitives(t *testing.T) {
	orig := NewNumber(10)
	cp := orig.Copy()
	cp.Num = 20
	assert.Equal(t, int64(10), orig.Num)
	assert.Equal(t, int64(20), cp.Num)
}

func TestValue_Copy_SharesCompositePointer(t *testing.T) {
	cls := &Class{Name: "Box"}
	orig := NewClass(cls)
	cp := orig.Copy()
	assert.Same(t, orig.Class, cp.Class)
}

func TestClass_Method(t *testing.T) {
	value := &Function{Name: "value"}
	cls := &Class{Name: "Box", Methods: []*Function{value}}

	got, ok := cls.Method("value")
	assert.True(t, ok)
	assert.Same(t, value, got)

	_, ok = cls.Method("missing")
	assert.False(t, ok)
}

func TestValue_TypeName(t *testing.T) {
	assert.Equal(t, "nil", Nil().TypeName())
	assert.Equal(t, "number", NewNumber(1).TypeName())
	assert.Equal(t, "string", NewString("s").TypeName())
	assert.Equal(t, "boolean", NewBool(true).TypeName())
}
