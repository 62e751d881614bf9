package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	EOF Kind = iota
	OPERATOR
	INTEGER
)

// Token is a classified unit of lexical input.
// Pos is the byte offset of the token's first character in the source.
// Literal holds the int value of an INTEGER token and is nil otherwise.
type Token struct {
	Kind    Kind
	Lexeme  string
	Pos     int
	Literal any
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d, %v}", t.Kind, t.Lexeme, t.Pos, t.Literal)
}
