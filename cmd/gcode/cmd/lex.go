/*
File    : go-gcode/cmd/gcode/cmd/lex.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/go-gcode/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex FILENAME",
	Short: "Tokenize a G-code file",
	Long: `Tokenize a G-code file and print the resulting token stream, one
token per line. This command is useful for debugging the lexer and
understanding how source text is tokenized.

Examples:
  # Tokenize a job file
  gcode lex print.gcode`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return lexFile(args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

// tokenDumper is a lexer.TokenSink that prints each emission.
type tokenDumper struct {
	writer io.Writer
}

func (d *tokenDumper) LexError(msg string) bool {
	fmt.Fprintf(d.writer, "error %q\n", msg)
	return true
}

func (d *tokenDumper) Keyword(id lexer.TokenID) bool {
	fmt.Fprintf(d.writer, "keyword %s\n", id.Name())
	return true
}

func (d *tokenDumper) Identifier(name string) bool {
	fmt.Fprintf(d.writer, "identifier %s\n", name)
	return true
}

func (d *tokenDumper) StringLiteral(value string) bool {
	fmt.Fprintf(d.writer, "string %q\n", value)
	return true
}

func (d *tokenDumper) IntLiteral(value int64) bool {
	fmt.Fprintf(d.writer, "int %d\n", value)
	return true
}

func (d *tokenDumper) FloatLiteral(value float64) bool {
	fmt.Fprintf(d.writer, "float %g\n", value)
	return true
}

func (d *tokenDumper) Bridge() bool {
	fmt.Fprintf(d.writer, "bridge\n")
	return true
}

func (d *tokenDumper) EndStatement() bool {
	fmt.Fprintf(d.writer, "end-of-statement\n")
	return true
}

// lexFile scans the named file and dumps its token stream.
func lexFile(filename string, writer io.Writer) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	lex := lexer.NewLexer(&tokenDumper{writer: writer}, nil)
	lex.Scan(content)
	lex.Finish()
	return nil
}
