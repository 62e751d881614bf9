package diagnostics

import (
	"errors"
	"fmt"
	"io"
)

// Positioned is implemented by errors that point at a byte offset in the
// source.
type Positioned interface {
	error
	Position() int
}

// Report renders err against source on w. If any error in the chain is
// Positioned, it prints the source line and a caret under the failing
// byte offset; otherwise just the message. Report never terminates the
// process; exiting is the caller's decision.
func Report(w io.Writer, source string, err error) {
	var at Positioned
	if !errors.As(err, &at) {
		fmt.Fprintln(w, err)

		return
	}

	msg := at.Error()
	if inner := errors.Unwrap(at); inner != nil {
		msg = inner.Error()
	}

	fmt.Fprintln(w, source)
	fmt.Fprintf(w, "%*s^ %s\n", at.Position(), "", msg)
}
