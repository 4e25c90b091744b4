/*
File    : gomix-lox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a hand-written recursive-descent parser for
// gomix-lox, one token of lookahead via a two-token cursor. Unlike the
// teacher's Pratt-style dispatch tables (UnaryFuncs/BinaryFuncs keyed by
// token type), this parser follows spec.md §4.1's named grammar
// productions directly: the grammar is small and LL(1), and a hand-written
// descent parser is simplest and matches spec.md's own design note in §9.
// The token-cursor and error-collection idiom (advance/expect/
// addErrorf/Errors/HasErrors/GetErrors) is carried over from the teacher's
// parser.Parser.
package parser

import (
	"fmt"

	"github.com/akashmaji946/gomix-lox/ast"
	"github.com/akashmaji946/gomix-lox/lexer"
)

const maxArgs = 255

// Parser holds the token cursor and accumulated errors for one parse.
type Parser struct {
	Lex       *lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token

	// Errors collects parse diagnostics instead of panicking, so one bad
	// statement doesn't stop the rest of the program from being parsed.
	Errors []string
}

// NewParser creates a Parser over src, primed with its first two tokens.
func NewParser(src string) *Parser {
	par := &Parser{Lex: lexer.NewLexer(src)}
	par.advance()
	par.advance()
	return par
}

// advance shifts the lookahead window forward by one token.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// check reports whether CurrToken has type t without consuming it.
func (par *Parser) check(t lexer.TokenType) bool {
	return par.CurrToken.Type == t
}

// match consumes CurrToken and returns true if it has type t; otherwise it
// leaves the cursor untouched and returns false.
func (par *Parser) match(t lexer.TokenType) bool {
	if !par.check(t) {
		return false
	}
	par.advance()
	return true
}

// expect consumes CurrToken if it has type t, otherwise records a
// {expected, found, position} diagnostic per spec.md §4.1's error
// conditions and leaves the cursor where it is; Parse's synchronize step
// then moves it on to the next statement boundary.
func (par *Parser) expect(t lexer.TokenType, context string) lexer.Token {
	tok := par.CurrToken
	if !par.check(t) {
		par.addErrorf(tok, "expected %s %s, got %s", t, context, tok.Type)
		return tok
	}
	par.advance()
	return tok
}

func (par *Parser) addErrorf(at lexer.Token, format string, a ...interface{}) {
	msg := fmt.Sprintf("[%d:%d] PARSER ERROR: %s", at.Line, at.Column, fmt.Sprintf(format, a...))
	par.Errors = append(par.Errors, msg)
}

// HasErrors reports whether any parse diagnostic was collected.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns every parse diagnostic collected so far, in order.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// synchronize discards tokens until a likely statement boundary (a
// semicolon just consumed, or a token that starts a new declaration), the
// teacher's continue-past-error recovery strategy applied at a statement
// granularity instead of an expression one.
func (par *Parser) synchronize() {
	for !par.check(lexer.EOF) {
		switch par.CurrToken.Type {
		case lexer.Class, lexer.Fun, lexer.Var, lexer.If, lexer.While, lexer.For, lexer.Return, lexer.Print:
			return
		}
		if par.CurrToken.Type == lexer.Semicolon {
			par.advance()
			return
		}
		switch par.NextToken.Type {
		case lexer.Class, lexer.Fun, lexer.Var, lexer.If, lexer.While, lexer.For, lexer.Return, lexer.Print:
			par.advance()
			return
		}
		par.advance()
	}
}

// Parse runs the parser to completion, returning every top-level
// declaration. A parser error recovers at the next statement boundary and
// does not poison sibling declarations (spec.md §4.1).
func (par *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !par.check(lexer.EOF) {
		before := len(par.Errors)
		stmt := par.declaration()
		if len(par.Errors) > before {
			par.synchronize()
			continue
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// declaration := varDecl | classDecl | statement
func (par *Parser) declaration() ast.Stmt {
	switch par.CurrToken.Type {
	case lexer.Var:
		return par.varDecl()
	case lexer.Class:
		return par.classDecl()
	default:
		return par.statement()
	}
}

// varDecl := "var" IDENT ("=" expression)? ";"
func (par *Parser) varDecl() ast.Stmt {
	tok := par.CurrToken
	par.advance() // consume 'var'
	nameTok := par.expect(lexer.Identifier, "after 'var'")
	decl := &ast.VarDecl{Token: tok, Name: nameTok.Lexeme}
	if par.match(lexer.Equal) {
		decl.Init = par.expression()
	}
	par.expect(lexer.Semicolon, "after variable declaration")
	return decl
}

// classDecl := "class" IDENT ("(" params? ")")? "{" function* "}"
//
// The parenthesized parameter list is an extension over spec.md's bare
// grammar; see SPEC_FULL.md §4.2's Open Question resolution on class
// constructor parameters.
func (par *Parser) classDecl() ast.Stmt {
	tok := par.CurrToken
	par.advance() // consume 'class'
	nameTok := par.expect(lexer.Identifier, "after 'class'")
	decl := &ast.ClassDecl{Token: tok, Name: nameTok.Lexeme}
	if par.match(lexer.LeftParen) {
		if !par.check(lexer.RightParen) {
			decl.Params = par.params()
		}
		par.expect(lexer.RightParen, "after class constructor parameters")
	}
	par.expect(lexer.LeftBrace, "before class body")
	for !par.check(lexer.RightBrace) && !par.check(lexer.EOF) {
		decl.Methods = append(decl.Methods, par.function())
	}
	par.expect(lexer.RightBrace, "after class body")
	return decl
}

// function := IDENT "(" params? ")" block
func (par *Parser) function() *ast.FunDecl {
	nameTok := par.expect(lexer.Identifier, "as method/function name")
	fd := &ast.FunDecl{Token: nameTok, Name: nameTok.Lexeme}
	par.expect(lexer.LeftParen, "after function name")
	if !par.check(lexer.RightParen) {
		fd.Params = par.params()
	}
	par.expect(lexer.RightParen, "after parameters")
	fd.Body = par.block()
	return fd
}

// params := IDENT ("," IDENT)*
func (par *Parser) params() []string {
	var names []string
	for {
		tok := par.expect(lexer.Identifier, "as parameter name")
		names = append(names, tok.Lexeme)
		if len(names) > maxArgs {
			par.addErrorf(par.CurrToken, "cannot exceed %d parameters", maxArgs)
		}
		if !par.match(lexer.Comma) {
			break
		}
	}
	return names
}

// statement := printStmt | ifStmt | funDecl | whileStmt
//
//	| forStmt | block | returnStmt | exprStmt
func (par *Parser) statement() ast.Stmt {
	switch par.CurrToken.Type {
	case lexer.Print:
		return par.printStmt()
	case lexer.If:
		return par.ifStmt()
	case lexer.Fun:
		return par.funDecl()
	case lexer.While:
		return par.whileStmt()
	case lexer.For:
		return par.forStmt()
	case lexer.LeftBrace:
		return par.block()
	case lexer.Return:
		return par.returnStmt()
	default:
		return par.exprStmt()
	}
}

func (par *Parser) printStmt() ast.Stmt {
	tok := par.CurrToken
	par.advance() // consume 'print'
	expr := par.expression()
	par.expect(lexer.Semicolon, "after print statement")
	return &ast.PrintStmt{Token: tok, Expr: expr}
}

func (par *Parser) ifStmt() ast.Stmt {
	tok := par.CurrToken
	par.advance() // consume 'if'
	par.expect(lexer.LeftParen, "after 'if'")
	cond := par.expression()
	par.expect(lexer.RightParen, "after if condition")
	then := par.statement()
	node := &ast.If{Token: tok, Cond: cond, Then: then}
	if par.match(lexer.Else) {
		node.Else = par.statement()
	}
	return node
}

func (par *Parser) funDecl() ast.Stmt {
	tok := par.CurrToken
	par.advance() // consume 'fun'
	fd := par.function()
	fd.Token = tok
	return fd
}

func (par *Parser) whileStmt() ast.Stmt {
	tok := par.CurrToken
	par.advance() // consume 'while'
	par.expect(lexer.LeftParen, "after 'while'")
	cond := par.expression()
	par.expect(lexer.RightParen, "after while condition")
	body := par.statement()
	return &ast.While{Token: tok, Cond: cond, Body: body}
}

// forStmt := "for" "(" (varDecl | exprStmt | ";") expression? ";" expression? ")" statement
//
// spec.md §4.5 lowers this to `{init; while(cond_or_true){ body; step; }}`;
// this parser keeps For as its own node (ast.For) and leaves the lowering
// to the evaluator, matching the teacher's habit of keeping loop-shape
// nodes distinct rather than desugaring at parse time.
func (par *Parser) forStmt() ast.Stmt {
	tok := par.CurrToken
	par.advance() // consume 'for'
	par.expect(lexer.LeftParen, "after 'for'")

	var init ast.Stmt
	switch {
	case par.match(lexer.Semicolon):
		// no initializer
	case par.check(lexer.Var):
		init = par.varDecl()
	default:
		init = par.exprStmt()
	}

	var cond ast.Expr
	if !par.check(lexer.Semicolon) {
		cond = par.expression()
	}
	par.expect(lexer.Semicolon, "after for condition")

	var step ast.Expr
	if !par.check(lexer.RightParen) {
		step = par.expression()
	}
	par.expect(lexer.RightParen, "after for clauses")

	body := par.statement()
	return &ast.For{Token: tok, Init: init, Cond: cond, Step: step, Body: body}
}

func (par *Parser) block() *ast.Block {
	tok := par.CurrToken
	par.expect(lexer.LeftBrace, "to start block")
	blk := &ast.Block{LBrace: tok}
	for !par.check(lexer.RightBrace) && !par.check(lexer.EOF) {
		blk.Stmts = append(blk.Stmts, par.declaration())
	}
	par.expect(lexer.RightBrace, "to close block")
	return blk
}

func (par *Parser) returnStmt() ast.Stmt {
	tok := par.CurrToken
	par.advance() // consume 'return'
	node := &ast.Return{Token: tok}
	if !par.check(lexer.Semicolon) {
		node.Expr = par.expression()
	}
	par.expect(lexer.Semicolon, "after return statement")
	return node
}

func (par *Parser) exprStmt() ast.Stmt {
	expr := par.expression()
	par.expect(lexer.Semicolon, "after expression statement")
	return &ast.ExprStmt{Expr: expr}
}

// ---- Expressions, low to high precedence ----

func (par *Parser) expression() ast.Expr {
	return par.assignment()
}

// assignment := logic_or ( "=" assignment | "or" logic_or )?
func (par *Parser) assignment() ast.Expr {
	expr := par.logicOr()
	if par.check(lexer.Equal) {
		eq := par.CurrToken
		par.advance()
		value := par.assignment()
		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Token: eq, Target: v.Name, Value: value}
		}
		par.addErrorf(eq, "invalid assignment target")
		return expr
	}
	return expr
}

func (par *Parser) logicOr() ast.Expr {
	expr := par.logicAnd()
	for par.check(lexer.Or) {
		op := par.CurrToken
		par.advance()
		expr = &ast.Logical{Op: op, Lhs: expr, Rhs: par.logicAnd()}
	}
	return expr
}

func (par *Parser) logicAnd() ast.Expr {
	expr := par.equality()
	for par.check(lexer.And) {
		op := par.CurrToken
		par.advance()
		expr = &ast.Logical{Op: op, Lhs: expr, Rhs: par.equality()}
	}
	return expr
}

func (par *Parser) equality() ast.Expr {
	expr := par.comparison()
	for par.check(lexer.EqualEqual) || par.check(lexer.BangEqual) {
		op := par.CurrToken
		par.advance()
		expr = &ast.Binary{Op: op, Lhs: expr, Rhs: par.comparison()}
	}
	return expr
}

func (par *Parser) comparison() ast.Expr {
	expr := par.term()
	for par.check(lexer.Less) || par.check(lexer.LessEqual) || par.check(lexer.Greater) || par.check(lexer.GreaterEqual) {
		op := par.CurrToken
		par.advance()
		expr = &ast.Binary{Op: op, Lhs: expr, Rhs: par.term()}
	}
	return expr
}

func (par *Parser) term() ast.Expr {
	expr := par.factor()
	for par.check(lexer.Plus) || par.check(lexer.Minus) {
		op := par.CurrToken
		par.advance()
		expr = &ast.Binary{Op: op, Lhs: expr, Rhs: par.factor()}
	}
	return expr
}

func (par *Parser) factor() ast.Expr {
	expr := par.unary()
	for par.check(lexer.Star) || par.check(lexer.Slash) || par.check(lexer.Percent) {
		op := par.CurrToken
		par.advance()
		expr = &ast.Binary{Op: op, Lhs: expr, Rhs: par.unary()}
	}
	return expr
}

func (par *Parser) unary() ast.Expr {
	if par.check(lexer.Bang) || par.check(lexer.Minus) {
		op := par.CurrToken
		par.advance()
		return &ast.Unary{Op: op, Operand: par.unary()}
	}
	return par.call()
}

// call := primary ( "(" args? ")" | "." IDENT )*
func (par *Parser) call() ast.Expr {
	expr := par.primary()
	for {
		switch {
		case par.check(lexer.LeftParen):
			par.advance()
			expr = par.finishCall(expr)
		case par.check(lexer.Dot):
			dot := par.CurrToken
			par.advance()
			nameTok := par.expect(lexer.Identifier, "after '.'")
			expr = &ast.Get{Dot: dot, Object: expr, Property: nameTok.Lexeme}
		default:
			return expr
		}
	}
}

func (par *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !par.check(lexer.RightParen) {
		for {
			if len(args) >= maxArgs {
				par.addErrorf(par.CurrToken, "cannot exceed %d arguments", maxArgs)
			}
			args = append(args, par.expression())
			if !par.match(lexer.Comma) {
				break
			}
		}
	}
	paren := par.expect(lexer.RightParen, "after arguments")
	return &ast.Call{Paren: paren, Callee: callee, Args: args}
}

// primary := NUMBER | STRING | "true"|"false"|"nil"
//
//	| "(" expression ")" | IDENT
func (par *Parser) primary() ast.Expr {
	tok := par.CurrToken
	switch tok.Type {
	case lexer.Number, lexer.String, lexer.True, lexer.False, lexer.Nil:
		par.advance()
		return &ast.Literal{Token: tok, Kind: tok.Type, Text: tok.Literal}
	case lexer.Identifier:
		par.advance()
		return &ast.Variable{Token: tok, Name: tok.Lexeme}
	case lexer.LeftParen:
		par.advance()
		inner := par.expression()
		par.expect(lexer.RightParen, "after grouped expression")
		return &ast.Grouping{Token: tok, Inner: inner}
	default:
		par.addErrorf(tok, "expected expression, got %s", tok.Type)
		par.advance()
		return &ast.Literal{Token: tok, Kind: lexer.Nil, Text: "nil"}
	}
}
