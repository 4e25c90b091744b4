/*
File    : gomix-lox/values/values.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package values implements the gomix-lox runtime value representation: a
// single tagged Value struct covering every Kind the language has, rather
// than the teacher's interface-plus-struct-per-type GoMixObject hierarchy.
// spec.md §3's Value model is a closed, seven-member union with no plans
// for user-defined primitive kinds, so a tag switch is simpler to construct,
// copy, and print than a family of types satisfying a shared interface.
package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/gomix-lox/ast"
)

// Kind identifies which field of a Value is meaningful.
type Kind string

const (
	KindNil        Kind = "Nil"
	KindString     Kind = "String"
	KindNumber     Kind = "Number"
	KindBoolean    Kind = "Boolean"
	KindIdentifier Kind = "Identifier"
	KindFunction   Kind = "Function"
	KindClass      Kind = "Class"
	KindInstance   Kind = "Instance"
)

// Environment is the subset of env.Environment the values package needs.
// Declaring it here (rather than importing env directly) avoids an import
// cycle: env.Environment stores *Value, and Function/Instance need to carry
// an *env.Environment of their own.
type Environment interface {
	Define(name string, v *Value)
	Lookup(name string) (*Value, bool)
	AssignExisting(name string, v *Value) bool
	NewChild() Environment
}

// Function is a user-defined callable: its parameter names, its body, and
// the environment captured at the `fun` declaration site. Closures work
// because Closure is shared (not copied) across every Value that wraps the
// same *Function.
type Function struct {
	Name    string
	Params  []string
	Body    *ast.Block
	Closure Environment
}

// Class is a callable that produces Instances. Params names the
// constructor's positional arguments (see DESIGN.md's Open Question on
// class constructor parameters); Methods are looked up by name from Get
// expressions and from within other methods via the instance's own env.
type Class struct {
	Name    string
	Params  []string
	Methods []*Function
}

// Method looks up a method by name, returning (nil, false) if Class
// declares no method with that name.
func (c *Class) Method(name string) (*Function, bool) {
	for _, m := range c.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Instance is one construction of a Class: Env holds the constructor
// arguments bound by name plus whatever each method call layers on top of
// it when resolving free variables, so methods see both their own locals
// and the fields captured at construction time.
type Instance struct {
	Class *Class
	Env   Environment
}

// Value is the tagged union every gomix-lox expression evaluates to. Only
// the field named by Kind is meaningful; the others are zero.
type Value struct {
	Kind     Kind
	Str      string
	Num      int64
	Bool     bool
	Function *Function
	Class    *Class
	Instance *Instance
}

// Nil is the language's single `nil` value. It has no payload.
func Nil() *Value { return &Value{Kind: KindNil} }

// NewString wraps s as a String value.
func NewString(s string) *Value { return &Value{Kind: KindString, Str: s} }

// NewNumber wraps n as a Number value. gomix-lox numbers are integers
// (spec.md has no float literal grammar); arithmetic stays in int64.
func NewNumber(n int64) *Value { return &Value{Kind: KindNumber, Num: n} }

// NewBool wraps b as a Boolean value.
func NewBool(b bool) *Value { return &Value{Kind: KindBoolean, Bool: b} }

// NewIdentifier wraps name as an Identifier value, the sentinel a bare
// variable reference evaluates to before the evaluator looks it up. The
// evaluator resolves it before any operator, binding or assignment sees it,
// so `x = y` stores y's current contents, not y's identifier.
func NewIdentifier(name string) *Value { return &Value{Kind: KindIdentifier, Str: name} }

// NewFunction wraps fn as a Function value.
func NewFunction(fn *Function) *Value { return &Value{Kind: KindFunction, Function: fn} }

// NewClass wraps cls as a Class value.
func NewClass(cls *Class) *Value { return &Value{Kind: KindClass, Class: cls} }

// NewInstance wraps inst as an Instance value.
func NewInstance(inst *Instance) *Value { return &Value{Kind: KindInstance, Instance: inst} }

// IsNil reports whether v is the Nil value (or a nil pointer, which the
// evaluator treats the same way).
func (v *Value) IsNil() bool {
	return v == nil || v.Kind == KindNil
}

// Copy returns a shallow copy of v. Composite payloads (Function, Class,
// Instance) are shared by pointer, matching the teacher's ExtractValue
// convention of handing back the same underlying value rather than a deep
// clone: gomix-lox instances and closures are reference types.
func (v *Value) Copy() *Value {
	if v == nil {
		return Nil()
	}
	cp := *v
	return &cp
}

// Print renders v the way the `print` statement writes it to stdout, in
// the exact canonical forms spec.md §4.4 mandates for each Kind.
func (v *Value) Print() string {
	if v.IsNil() {
		return "nil"
	}
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatInt(v.Num, 10)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindIdentifier:
		return v.Str
	case KindFunction:
		return fmt.Sprintf("function :%s", v.Function.Name)
	case KindClass:
		return fmt.Sprintf("class :%s", v.Class.Name)
	case KindInstance:
		return fmt.Sprintf("instance of %s", v.Instance.Class.Name)
	default:
		return "nil"
	}
}

// Equal implements `==`/`!=` equality. Values of different Kind are never
// equal except that every Nil compares equal to every other Nil; Function,
// Class, and Instance compare by identity (same underlying pointer), which
// is the only sensible notion of equality for reference types with no
// field-level comparison defined in spec.md.
func (v *Value) Equal(other *Value) bool {
	if v.IsNil() || other.IsNil() {
		return v.IsNil() && other.IsNil()
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindString, KindIdentifier:
		return v.Str == other.Str
	case KindNumber:
		return v.Num == other.Num
	case KindBoolean:
		return v.Bool == other.Bool
	case KindFunction:
		return v.Function == other.Function
	case KindClass:
		return v.Class == other.Class
	case KindInstance:
		return v.Instance == other.Instance
	default:
		return false
	}
}

// TypeName returns the lowercase name spec.md's TypeError diagnostics use
// when reporting an operand of the wrong kind.
func (v *Value) TypeName() string {
	if v.IsNil() {
		return "nil"
	}
	return strings.ToLower(string(v.Kind))
}
