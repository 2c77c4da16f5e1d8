/*
File    : go-gcode/repl/printer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-gcode/ast"
	"github.com/akashmaji946/go-gcode/parser"
)

// parseOne parses a single statement for printer tests.
func parseOne(t *testing.T, input string) *ast.StatementNode {
	t.Helper()
	var stmt *ast.StatementNode
	par := parser.NewParser(
		func(msg string) bool {
			t.Fatalf("unexpected error: %s", msg)
			return true
		},
		func(s *ast.StatementNode) bool {
			stmt = s
			return true
		},
	)
	par.Parse([]byte(input))
	par.Finish()
	assert.NotNil(t, stmt)
	return stmt
}

func TestTreePrinter_Statement(t *testing.T) {

	stmt := parseOne(t, "G1 X{1+2}\n")

	printer := NewTreePrinter()
	stmt.Accept(printer)

	expected := "statement\n" +
		"    str \"G1\"\n" +
		"    op concat\n" +
		"        str \"X\"\n" +
		"        op add\n" +
		"            int 1\n" +
		"            int 2\n"
	assert.Equal(t, expected, printer.String())
}

func TestTreePrinter_ExpressionKinds(t *testing.T) {

	stmt := parseOne(t, "SET V={max(printer.bed, 2.5) IF TRUE ELSE -1}\n")

	printer := NewTreePrinter()
	stmt.Accept(printer)
	out := printer.String()

	assert.Contains(t, out, "op ifelse\n")
	assert.Contains(t, out, "call max\n")
	assert.Contains(t, out, "op lookup\n")
	assert.Contains(t, out, "param printer\n")
	assert.Contains(t, out, "float 2.5\n")
	assert.Contains(t, out, "bool TRUE\n")
	assert.Contains(t, out, "op negate\n")
}
