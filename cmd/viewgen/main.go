// Package main provides the CLI entrypoint for viewgen.
//
// viewgen compiles a parsed template statement stream (YAML) into the
// JavaScript source of a view-class definition:
//   - Loads the statement stream
//   - Runs the writer session with the default statement processor
//   - Prints collected diagnostics to stderr
//   - Writes the class text to a file or stdout
package main

import (
	"flag"
	"fmt"
	"os"

	"viewgen/internal/compile"
	"viewgen/internal/statement"
)

func main() {
	os.Exit(run())
}

func run() int {
	in := flag.String("in", "", "path to the YAML statement stream (required)")
	out := flag.String("out", "", "output file path (default: stdout)")
	class := flag.String("class", "", "generated class name (default: the stream's view name)")
	indent := flag.String("indent", "\t", "indent unit; empty disables indentation")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "viewgen: -in is required")
		flag.Usage()

		return 2
	}

	doc, err := statement.LoadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "viewgen: %v\n", err)
		return 1
	}

	c := compile.New(compile.Config{
		ClassName:  *class,
		IndentUnit: *indent,
	})

	text, compileErr := c.CompileDocument(doc)

	for _, r := range c.Diagnostics().Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", r)
	}

	for _, r := range c.Diagnostics().Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", r)
	}

	if compileErr != nil {
		fmt.Fprintln(os.Stderr, "viewgen: generation failed, output discarded")
		return 1
	}

	if *out == "" {
		fmt.Print(text)
		return 0
	}

	if err := compile.WriteFile(*out, text); err != nil {
		fmt.Fprintf(os.Stderr, "viewgen: %v\n", err)
		return 1
	}

	return 0
}
