package diagnostics_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/harunobu/occ/compiler"
	"github.com/harunobu/occ/diagnostics"
	"github.com/harunobu/occ/lexer"
)

func TestReportCaretAtLexicalError(t *testing.T) {
	t.Parallel()

	source := "1 + *"
	_, err := lexer.Lex(source)
	if err == nil {
		t.Fatal("Lex should fail on *")
	}

	var builder strings.Builder
	diagnostics.Report(&builder, source, err)

	want := "1 + *\n" +
		"    ^ cannot tokenize '*'\n"
	if builder.String() != want {
		t.Errorf("Report rendered %q, want %q", builder.String(), want)
	}
}

func TestReportCaretAtGrammarError(t *testing.T) {
	t.Parallel()

	source := "1 + + 2"
	tokens, err := lexer.Lex(source)
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	err = compiler.New(tokens).Compile(io.Discard)
	if err == nil {
		t.Fatal("Compile should fail on the second +")
	}

	var builder strings.Builder
	diagnostics.Report(&builder, source, err)

	want := "1 + + 2\n" +
		"    ^ unexpected token: expected number\n"
	if builder.String() != want {
		t.Errorf("Report rendered %q, want %q", builder.String(), want)
	}
}

func TestReportCaretAtOffsetZero(t *testing.T) {
	t.Parallel()

	source := "*"
	_, err := lexer.Lex(source)
	if err == nil {
		t.Fatal("Lex should fail on *")
	}

	var builder strings.Builder
	diagnostics.Report(&builder, source, err)

	want := "*\n" +
		"^ cannot tokenize '*'\n"
	if builder.String() != want {
		t.Errorf("Report rendered %q, want %q", builder.String(), want)
	}
}

func TestReportUnpositioned(t *testing.T) {
	t.Parallel()

	var builder strings.Builder
	diagnostics.Report(&builder, "", errors.New("invalid number of arguments"))

	want := "invalid number of arguments\n"
	if builder.String() != want {
		t.Errorf("Report rendered %q, want %q", builder.String(), want)
	}
}
