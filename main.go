package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/harunobu/occ/diagnostics"
	"github.com/harunobu/occ/driver"
	"github.com/peterh/liner"
)

func main() {
	var repl bool
	flag.BoolVar(&repl, "repl", false, "start an interactive prompt")

	flag.Parse()

	if repl {
		if err := runPrompt(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s <expression>\n", os.Args[0])
		os.Exit(1)
	}

	source := flag.Arg(0)
	runner := driver.NewRunner(os.Stdout)
	if err := runner.CompileSource(source); err != nil {
		diagnostics.Report(os.Stderr, source, err)
		os.Exit(1)
	}
}

var history = filepath.Join(xdg.DataHome, "occ", ".occ_history")

func runPrompt() error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	runner := driver.NewRunner(os.Stdout)
	for {
		input, err := line.Prompt("> ")
		if err != nil {
			return err
		}
		line.AppendHistory(input)
		if err := runner.CompileSource(input); err != nil {
			diagnostics.Report(os.Stderr, input, err)
		}
	}
}
