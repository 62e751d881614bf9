package driver

import (
	"bytes"
	"fmt"
	"io"

	"github.com/harunobu/occ/compiler"
	"github.com/harunobu/occ/lexer"
)

// Runner runs the lex-then-compile pipeline for one source string and
// writes the finished listing to Out. The listing is buffered internally
// so a malformed input never produces partial output.
type Runner struct {
	Out io.Writer
}

func NewRunner(out io.Writer) *Runner {
	return &Runner{Out: out}
}

// CompileSource compiles source and writes the assembly listing to Out.
func (r *Runner) CompileSource(source string) error {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return fmt.Errorf("lex: %w", err)
	}

	var buf bytes.Buffer
	if err := compiler.New(tokens).Compile(&buf); err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	if _, err := io.Copy(r.Out, &buf); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}
