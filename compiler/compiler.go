package compiler

import (
	"fmt"
	"io"

	"github.com/harunobu/occ/token"
	"github.com/harunobu/occ/utils"
)

// Compiler walks the token sequence left to right, checking the grammar
//
//	expr = INTEGER (("+" | "-") INTEGER)* ;
//
// and emitting one instruction per matched production. There is no AST:
// grammar validation and code emission happen in the same pass, so the
// cursor advances exactly once per emitted instruction.
type Compiler struct {
	tokens  []token.Token
	current int
}

func New(tokens []token.Token) *Compiler {
	return &Compiler{tokens: tokens, current: 0}
}

// Compile emits the whole program to w. The result accumulates in rax:
// the first number loads it, every following operator adds to or
// subtracts from it, and ret hands it back as the process exit value.
// On a grammar error Compile stops and returns it; callers that must
// not show partial output should hand in a buffer.
func (c *Compiler) Compile(w io.Writer) error {
	fmt.Fprintln(w, ".intel_syntax noprefix")
	fmt.Fprintln(w, ".globl main")
	fmt.Fprintln(w, "main:")

	value, err := c.expectNumber()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  mov rax, %d\n", value)

	for !c.isAtEnd() {
		if c.tryConsume("+") {
			value, err := c.expectNumber()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  add rax, %d\n", value)

			continue
		}

		if err := c.expect("-"); err != nil {
			return err
		}
		value, err := c.expectNumber()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  sub rax, %d\n", value)
	}

	fmt.Fprintln(w, "  ret")

	return nil
}

func (c Compiler) peek() token.Token {
	return c.tokens[c.current]
}

func (c *Compiler) advance() token.Token {
	if !c.isAtEnd() {
		c.current++
	}

	return c.previous()
}

func (c Compiler) previous() token.Token {
	return c.tokens[c.current-1]
}

func (c Compiler) isAtEnd() bool {
	return c.peek().Kind == token.EOF
}

// tryConsume advances past the current token if it is the operator op,
// and reports whether it did. It has no effect on mismatch.
func (c *Compiler) tryConsume(op string) bool {
	if c.peek().Kind != token.OPERATOR || c.peek().Lexeme != op {
		return false
	}
	c.advance()

	return true
}

// expect is tryConsume that fails with a positioned error on mismatch.
func (c *Compiler) expect(op string) error {
	if c.tryConsume(op) {
		return nil
	}

	return unexpectedToken(c.peek(), fmt.Sprintf("'%s'", op))
}

// expectNumber returns the value of the current INTEGER token and
// advances past it, or fails with a positioned error.
func (c *Compiler) expectNumber() (int, error) {
	if c.peek().Kind != token.INTEGER {
		return 0, unexpectedToken(c.peek(), "number")
	}

	return c.advance().Literal.(int), nil
}

type UnexpectedTokenError struct {
	Expected []string
}

func (e UnexpectedTokenError) Error() string {
	var msg string
	if len(e.Expected) >= 1 {
		msg = e.Expected[0]
	}

	for _, ex := range e.Expected[1:] {
		msg = msg + ", " + ex
	}

	return "unexpected token: expected " + msg
}

func unexpectedToken(t token.Token, expected ...string) error {
	return utils.PosError{Where: t, Err: UnexpectedTokenError{Expected: expected}}
}
