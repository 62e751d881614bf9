package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/harunobu/occ/token"
)

// Lex scans source left to right and returns the complete token sequence,
// terminated by an EOF token positioned at the end of the buffer.
// It stops at the first character that matches no token shape.
func Lex(source string) ([]token.Token, error) {
	lexer := lexer{
		source:  source,
		tokens:  []token.Token{},
		start:   0,
		current: 0,
	}

	for !lexer.isAtEnd() {
		if err := lexer.scanToken(); err != nil {
			return nil, err
		}
	}

	lexer.tokens = append(lexer.tokens, token.Token{Kind: token.EOF, Lexeme: "", Pos: len(source), Literal: nil})

	return lexer.tokens, nil
}

type lexer struct {
	source string
	tokens []token.Token

	start   int // start of current lexeme
	current int // current position in source
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current:])

	return runeValue
}

func (l *lexer) advance() rune {
	runeValue, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width

	return runeValue
}

func (l *lexer) addToken(kind token.Kind, literal any) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: text, Pos: l.start, Literal: literal})
}

type UnexpectedCharacterError struct {
	Pos  int
	Char rune
}

func (e UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("cannot tokenize %q", e.Char)
}

func (e UnexpectedCharacterError) Position() int {
	return e.Pos
}

func (l *lexer) scanToken() error {
	l.start = l.current
	char := l.advance()
	switch char {
	case ' ', '\r', '\t', '\n':
		// ignore whitespace
		return nil
	case '+', '-':
		l.addToken(token.OPERATOR, nil)

		return nil
	default:
		if isDigit(char) {
			return l.integer()
		}
	}

	return UnexpectedCharacterError{Pos: l.start, Char: char}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

type InvalidIntegerError struct {
	Pos    int
	Digits string
}

func (e InvalidIntegerError) Error() string {
	return fmt.Sprintf("integer %s is out of range", e.Digits)
}

func (e InvalidIntegerError) Position() int {
	return e.Pos
}

// integer consumes the maximal run of digits starting at l.start.
// Values beyond the native int range are rejected, not wrapped.
func (l *lexer) integer() error {
	for isDigit(l.peek()) {
		l.advance()
	}

	value, err := strconv.Atoi(l.source[l.start:l.current])
	if err != nil {
		return InvalidIntegerError{Pos: l.start, Digits: l.source[l.start:l.current]}
	}
	l.addToken(token.INTEGER, value)

	return nil
}
