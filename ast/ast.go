/*
File    : gomix-lox/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the gomix-lox syntax tree: two tagged variants,
// Expr and Stmt, built once by the parser and walked repeatedly by the
// interpreter (loop bodies and function calls reuse the same nodes).
// Nodes are immutable after parsing, per spec.md §3's invariant.
package ast

import "github.com/akashmaji946/gomix-lox/lexer"

// Node is the common base of every AST node: something that can report the
// source token it was built from and render itself as source-like text for
// debugging. String is not a full unparser: string literals are rendered
// without their quotes and a For node omits its init/cond/step clauses, so
// not every program round-trips through it.
type Node interface {
	TokenLiteral() string
	String() string
}

// Expr is any expression node: Literal, Variable, Grouping, Unary, Binary,
// Logical, Assign, Call, Get.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement node: ExprStmt, PrintStmt, VarDecl, Block, If,
// While, For, FunDecl, Return, ClassDecl.
type Stmt interface {
	Node
	stmtNode()
}

// ---- Expressions ----

// Literal is a Number, String, True, False, or Nil constant.
type Literal struct {
	Token lexer.Token
	Kind  lexer.TokenType // Number, String, True, False, Nil
	Text  string
}

func (l *Literal) exprNode()            {}
func (l *Literal) TokenLiteral() string { return l.Token.Lexeme }
func (l *Literal) String() string       { return l.Text }

// Variable is an identifier used as a value.
type Variable struct {
	Token lexer.Token
	Name  string
}

func (v *Variable) exprNode()            {}
func (v *Variable) TokenLiteral() string { return v.Token.Lexeme }
func (v *Variable) String() string       { return v.Name }

// Grouping is a parenthesized sub-expression.
type Grouping struct {
	Token lexer.Token
	Inner Expr
}

func (g *Grouping) exprNode()            {}
func (g *Grouping) TokenLiteral() string { return g.Token.Lexeme }
func (g *Grouping) String() string       { return "(" + g.Inner.String() + ")" }

// Unary is a prefix `-` or `!` applied to Operand.
type Unary struct {
	Op      lexer.Token
	Operand Expr
}

func (u *Unary) exprNode()            {}
func (u *Unary) TokenLiteral() string { return u.Op.Lexeme }
func (u *Unary) String() string       { return u.Op.Lexeme + u.Operand.String() }

// Binary is an arithmetic or comparison operator applied to Lhs and Rhs.
type Binary struct {
	Op  lexer.Token
	Lhs Expr
	Rhs Expr
}

func (b *Binary) exprNode()            {}
func (b *Binary) TokenLiteral() string { return b.Op.Lexeme }
func (b *Binary) String() string {
	return "(" + b.Lhs.String() + " " + b.Op.Lexeme + " " + b.Rhs.String() + ")"
}

// Logical is `and`/`or` applied to Lhs and Rhs.
type Logical struct {
	Op  lexer.Token
	Lhs Expr
	Rhs Expr
}

func (l *Logical) exprNode()            {}
func (l *Logical) TokenLiteral() string { return l.Op.Lexeme }
func (l *Logical) String() string {
	return "(" + l.Lhs.String() + " " + l.Op.Lexeme + " " + l.Rhs.String() + ")"
}

// Assign is `target = value`; the target is always a bare identifier
// (spec.md §4.1: class fields are never assignment targets in the core).
type Assign struct {
	Token  lexer.Token
	Target string
	Value  Expr
}

func (a *Assign) exprNode()            {}
func (a *Assign) TokenLiteral() string { return a.Token.Lexeme }
func (a *Assign) String() string       { return a.Target + " = " + a.Value.String() }

// Call is `callee(args...)`.
type Call struct {
	Paren  lexer.Token // closing ')' token, used for error position
	Callee Expr
	Args   []Expr
}

func (c *Call) exprNode()            {}
func (c *Call) TokenLiteral() string { return c.Paren.Lexeme }
func (c *Call) String() string {
	s := c.Callee.String() + "("
	for i, a := range c.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

// Get is `object.property`.
type Get struct {
	Dot      lexer.Token
	Object   Expr
	Property string
}

func (g *Get) exprNode()            {}
func (g *Get) TokenLiteral() string { return g.Dot.Lexeme }
func (g *Get) String() string       { return g.Object.String() + "." + g.Property }

// ---- Statements ----

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Expr Expr
}

func (s *ExprStmt) stmtNode()            {}
func (s *ExprStmt) TokenLiteral() string { return s.Expr.TokenLiteral() }
func (s *ExprStmt) String() string       { return s.Expr.String() + ";" }

// PrintStmt evaluates Expr and writes its canonical form plus a newline.
type PrintStmt struct {
	Token lexer.Token
	Expr  Expr
}

func (s *PrintStmt) stmtNode()            {}
func (s *PrintStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *PrintStmt) String() string       { return "print " + s.Expr.String() + ";" }

// VarDecl introduces Name in the current scope, bound to Init (or nil).
type VarDecl struct {
	Token lexer.Token
	Name  string
	Init  Expr // nil if no initializer
}

func (s *VarDecl) stmtNode()            {}
func (s *VarDecl) TokenLiteral() string { return s.Token.Lexeme }
func (s *VarDecl) String() string {
	if s.Init == nil {
		return "var " + s.Name + ";"
	}
	return "var " + s.Name + " = " + s.Init.String() + ";"
}

// Block is `{ stmts... }`; it opens a child scope when executed.
type Block struct {
	LBrace lexer.Token
	Stmts  []Stmt
}

func (s *Block) stmtNode()            {}
func (s *Block) TokenLiteral() string { return s.LBrace.Lexeme }
func (s *Block) String() string {
	out := "{ "
	for _, st := range s.Stmts {
		out += st.String() + " "
	}
	return out + "}"
}

// If is `if (Cond) Then [else Else]`.
type If struct {
	Token lexer.Token
	Cond  Expr
	Then  Stmt
	Else  Stmt // nil if no else branch
}

func (s *If) stmtNode()            {}
func (s *If) TokenLiteral() string { return s.Token.Lexeme }
func (s *If) String() string {
	out := "if (" + s.Cond.String() + ") " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

// While is `while (Cond) Body`.
type While struct {
	Token lexer.Token
	Cond  Expr
	Body  Stmt
}

func (s *While) stmtNode()            {}
func (s *While) TokenLiteral() string { return s.Token.Lexeme }
func (s *While) String() string       { return "while (" + s.Cond.String() + ") " + s.Body.String() }

// For is `for (Init; Cond; Step) Body`, any of Init/Cond/Step may be nil.
type For struct {
	Token lexer.Token
	Init  Stmt // VarDecl or ExprStmt, or nil
	Cond  Expr // nil means "true"
	Step  Expr // nil means no step
	Body  Stmt
}

func (s *For) stmtNode()            {}
func (s *For) TokenLiteral() string { return s.Token.Lexeme }
func (s *For) String() string       { return "for (...) " + s.Body.String() }

// FunDecl is `fun Name(Params...) Body`.
type FunDecl struct {
	Token  lexer.Token
	Name   string
	Params []string
	Body   *Block
}

func (s *FunDecl) stmtNode()            {}
func (s *FunDecl) TokenLiteral() string { return s.Token.Lexeme }
func (s *FunDecl) String() string {
	out := "fun " + s.Name + "("
	for i, p := range s.Params {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out + ") " + s.Body.String()
}

// Return is `return [Expr];`, unwinding to the nearest function call frame.
type Return struct {
	Token lexer.Token
	Expr  Expr // nil means "return nil"
}

func (s *Return) stmtNode()            {}
func (s *Return) TokenLiteral() string { return s.Token.Lexeme }
func (s *Return) String() string {
	if s.Expr == nil {
		return "return;"
	}
	return "return " + s.Expr.String() + ";"
}

// ClassDecl is `class Name(params...) { methods... }`. The parenthesized
// parameter list is an extension over spec.md's bare `class Name { ... }`
// grammar, needed to name the constructor parameters that the instance's
// field environment binds on construction (see DESIGN.md's Open Question
// on class constructor parameters).
type ClassDecl struct {
	Token   lexer.Token
	Name    string
	Params  []string
	Methods []*FunDecl
}

func (s *ClassDecl) stmtNode()            {}
func (s *ClassDecl) TokenLiteral() string { return s.Token.Lexeme }
func (s *ClassDecl) String() string {
	out := "class " + s.Name + "("
	for i, p := range s.Params {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	out += ") { "
	for _, m := range s.Methods {
		out += m.String() + " "
	}
	return out + "}"
}
