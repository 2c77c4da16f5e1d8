/*
File    : go-gcode/cmd/gcode/cmd/root.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/go-gcode/ast"
	"github.com/akashmaji946/go-gcode/parser"
	"github.com/spf13/cobra"
)

// Version information (set by build flags)
var (
	Version = "0.1.0-dev"
)

// readChunkSize is the buffer size of the file driver. Chunks are fed to
// the parser as they come; statement boundaries need not align with them.
const readChunkSize = 4096

var rootCmd = &cobra.Command{
	Use:   "gcode FILENAME",
	Short: "Extended G-code parser",
	Long: `go-gcode parses extended G-code: classic G/M commands, extended
KEY=VALUE commands, raw-text commands (M117, ECHO), and embedded {...}
expressions with strings, numbers, operators, conditionals, function calls
and parameter lookups.

Given a file, each statement is parsed to a syntax tree and printed as its
fields. Errors are reported per statement and parsing continues with the
next line.`,
	Version:       Version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0], cmd.OutOrStdout())
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// runFile feeds the named file through a parser in fixed-size chunks and
// prints each statement's fields on one line. Diagnostics go to writer
// prefixed "*** ERROR:"; they do not stop the run.
func runFile(filename string, writer io.Writer) error {
	input, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(writer, "*** ERROR: Error opening input file\n")
		return err
	}
	defer input.Close()

	par := parser.NewParser(
		func(msg string) bool {
			fmt.Fprintf(writer, "*** ERROR: %s\n", msg)
			return true
		},
		func(stmt *ast.StatementNode) bool {
			for field := stmt.Children; field != nil; field = field.Next() {
				if field != stmt.Children {
					fmt.Fprint(writer, " ")
				}
				fmt.Fprint(writer, fieldText(field))
			}
			fmt.Fprintln(writer)
			return true
		},
	)

	buf := make([]byte, readChunkSize)
	for {
		n, err := input.Read(buf)
		if n > 0 {
			par.Parse(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(writer, "*** ERROR: I/O error reading input\n")
			return err
		}
	}
	par.Finish()

	return nil
}

// fieldText renders a statement field the way the interpreter would see
// it: strings as their raw content, everything else as source-like text.
func fieldText(field ast.Node) string {
	if str, ok := field.(*ast.StringNode); ok {
		return str.Value
	}
	return field.Literal()
}
