/*
File    : go-gcode/repl/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/akashmaji946/go-gcode/ast"
)

const INDENT_SIZE = 4

// TreePrinter is a NodeVisitor that renders a statement tree with one node
// per line, indented by depth. It backs the REPL echo and the CLI's parse
// command.
type TreePrinter struct {
	Indent int
	Buf    bytes.Buffer
}

// NewTreePrinter creates a printer at depth zero.
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// indent writes the current indentation.
func (p *TreePrinter) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// children visits a sibling chain one level deeper.
func (p *TreePrinter) children(head ast.Node) {
	p.Indent += INDENT_SIZE
	for child := head; child != nil; child = child.Next() {
		child.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIntegerNode prints an integer literal.
func (p *TreePrinter) VisitIntegerNode(node *ast.IntegerNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("int %d\n", node.Value))
}

// VisitFloatNode prints a float literal.
func (p *TreePrinter) VisitFloatNode(node *ast.FloatNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("float %s\n", node.Literal()))
}

// VisitBooleanNode prints a boolean literal.
func (p *TreePrinter) VisitBooleanNode(node *ast.BooleanNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("bool %s\n", node.Literal()))
}

// VisitStringNode prints a string node.
func (p *TreePrinter) VisitStringNode(node *ast.StringNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("str %s\n", strconv.Quote(node.Value)))
}

// VisitParameterNode prints a parameter reference.
func (p *TreePrinter) VisitParameterNode(node *ast.ParameterNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("param %s\n", node.Name))
}

// VisitFunctionNode prints a function call and its arguments.
func (p *TreePrinter) VisitFunctionNode(node *ast.FunctionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("call %s\n", node.Name))
	p.children(node.Args)
}

// VisitOperatorNode prints an operator and its operands.
func (p *TreePrinter) VisitOperatorNode(node *ast.OperatorNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("op %s\n", operatorName(node.Op)))
	p.children(node.Children)
}

// VisitStatementNode prints a statement and its fields.
func (p *TreePrinter) VisitStatementNode(node *ast.StatementNode) {
	p.indent()
	p.Buf.WriteString("statement\n")
	p.children(node.Children)
}

// String returns the accumulated rendering.
func (p *TreePrinter) String() string {
	return p.Buf.String()
}

// operatorName returns a stable name for each operator kind.
func operatorName(op ast.OperatorType) string {
	switch op {
	case ast.ADD_OP:
		return "add"
	case ast.SUBTRACT_OP:
		return "subtract"
	case ast.MULTIPLY_OP:
		return "multiply"
	case ast.DIVIDE_OP:
		return "divide"
	case ast.MODULUS_OP:
		return "modulus"
	case ast.POWER_OP:
		return "power"
	case ast.NEGATE_OP:
		return "negate"
	case ast.NOT_OP:
		return "not"
	case ast.AND_OP:
		return "and"
	case ast.OR_OP:
		return "or"
	case ast.LT_OP:
		return "lt"
	case ast.GT_OP:
		return "gt"
	case ast.LTE_OP:
		return "lte"
	case ast.GTE_OP:
		return "gte"
	case ast.EQUALS_OP:
		return "equals"
	case ast.CONCAT_OP:
		return "concat"
	case ast.LOOKUP_OP:
		return "lookup"
	case ast.IFELSE_OP:
		return "ifelse"
	}
	return "unknown"
}
