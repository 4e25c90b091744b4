/*
File    : gomix-lox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func TestLexer_NextToken(t *testing.T) {
	cases := []tokenCase{
		{
			Input: `var x = 1 + 2 * 3;`,
			Expected: []Token{
				NewToken(Var, "var"),
				NewToken(Identifier, "x"),
				NewToken(Equal, "="),
				NewToken(Number, "1"),
				NewToken(Plus, "+"),
				NewToken(Number, "2"),
				NewToken(Star, "*"),
				NewToken(Number, "3"),
				NewToken(Semicolon, ";"),
			},
		},
		{
			Input: `if (a <= b) { print "hi"; } else { print nil; }`,
			Expected: []Token{
				NewToken(If, "if"),
				NewToken(LeftParen, "("),
				NewToken(Identifier, "a"),
				NewToken(LessEqual, "<="),
				NewToken(Identifier, "b"),
				NewToken(RightParen, ")"),
				NewToken(LeftBrace, "{"),
				NewToken(Print, "print"),
				{Type: String, Lexeme: "\"hi\"", Literal: "hi"},
				NewToken(Semicolon, ";"),
				NewToken(RightBrace, "}"),
				NewToken(Else, "else"),
				NewToken(LeftBrace, "{"),
				NewToken(Print, "print"),
				NewToken(Nil, "nil"),
				NewToken(Semicolon, ";"),
				NewToken(RightBrace, "}"),
			},
		},
		{
			Input: "// a comment\n fun f() { return true and false; }",
			Expected: []Token{
				NewToken(Fun, "fun"),
				NewToken(Identifier, "f"),
				NewToken(LeftParen, "("),
				NewToken(RightParen, ")"),
				NewToken(LeftBrace, "{"),
				NewToken(Return, "return"),
				NewToken(True, "true"),
				NewToken(And, "and"),
				NewToken(False, "false"),
				NewToken(Semicolon, ";"),
				NewToken(RightBrace, "}"),
			},
		},
	}

	for _, c := range cases {
		lex := NewLexer(c.Input)
		for i, want := range c.Expected {
			got := lex.NextToken()
			assert.Equal(t, want.Type, got.Type, "case %q token %d type", c.Input, i)
			assert.Equal(t, want.Literal, got.Literal, "case %q token %d literal", c.Input, i)
		}
		assert.Equal(t, EOF, lex.NextToken().Type)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"unterminated`)
	tok := lex.NextToken()
	assert.Equal(t, Invalid, tok.Type)
}

func TestLexer_TracksLineAndColumn(t *testing.T) {
	lex := NewLexer("var a\n= 1;")
	lex.NextToken() // var
	nameTok := lex.NextToken()
	assert.Equal(t, 1, nameTok.Line)
	eqTok := lex.NextToken()
	assert.Equal(t, 2, eqTok.Line)
}
