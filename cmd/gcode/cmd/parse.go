/*
File    : go-gcode/cmd/gcode/cmd/parse.go
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
	"github.com/akashmaji946/go-gcode/repl"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILENAME",
	Short: "Parse a G-code file and print its syntax trees",
	Long: `Parse a G-code file and print one indented syntax tree per
statement. This command is useful for debugging the parser and inspecting
how statements, arguments and embedded expressions reduce to nodes.

Examples:
  # Dump the trees of a job file
  gcode parse print.gcode`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return parseFile(args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

// parseFile parses the named file and dumps each statement tree.
func parseFile(filename string, writer io.Writer) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	par := parser.NewParser(
		func(msg string) bool {
			fmt.Fprintf(writer, "*** ERROR: %s\n", msg)
			return true
		},
		func(stmt *ast.StatementNode) bool {
			printer := repl.NewTreePrinter()
			stmt.Accept(printer)
			fmt.Fprint(writer, printer.String())
			return true
		},
	)
	par.Parse(content)
	par.Finish()
	return nil
}
