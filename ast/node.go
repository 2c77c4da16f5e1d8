/*
File    : go-gcode/ast/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast implements the node library for parsed G-code statements.
//
// The parser produces one tree per statement. Trees are built from a small
// set of node kinds (literals, parameter references, function calls,
// operators, and the statement wrapper). Sibling nodes are linked through an
// intrusive "next" pointer so that child lists, argument lists and statement
// fields are all plain chains; AddNext appends to a chain and returns its
// head. Deletion is garbage collection.
package ast

import (
	"strconv"
	"strings"
)

// OperatorType identifies the operation performed by an OperatorNode.
// Unary operators (NEGATE_OP, NOT_OP) have one child, IFELSE_OP has three,
// everything else has two.
type OperatorType int

// Operator kinds, one per operation the expression grammar can produce.
const (
	ADD_OP      OperatorType = iota // a + b
	SUBTRACT_OP                     // a - b
	MULTIPLY_OP                     // a * b
	DIVIDE_OP                       // a / b
	MODULUS_OP                      // a % b
	POWER_OP                        // a ** b
	NEGATE_OP                       // -a
	NOT_OP                          // !a
	AND_OP                          // a AND b
	OR_OP                           // a OR b
	LT_OP                           // a < b
	GT_OP                           // a > b
	LTE_OP                          // a <= b
	GTE_OP                          // a >= b
	EQUALS_OP                       // a = b
	CONCAT_OP                       // a ~ b
	LOOKUP_OP                       // a.b or a[b]
	IFELSE_OP                       // a IF b ELSE c
)

// operatorSymbols maps binary operator kinds to their source spelling,
// used by Literal rendering.
var operatorSymbols = map[OperatorType]string{
	ADD_OP:      "+",
	SUBTRACT_OP: "-",
	MULTIPLY_OP: "*",
	DIVIDE_OP:   "/",
	MODULUS_OP:  "%",
	POWER_OP:    "**",
	AND_OP:      "AND",
	OR_OP:       "OR",
	LT_OP:       "<",
	GT_OP:       ">",
	LTE_OP:      "<=",
	GTE_OP:      ">=",
	EQUALS_OP:   "=",
	CONCAT_OP:   "~",
}

// NodeVisitor implements the Visitor design pattern for traversing an AST.
// Each Visit method processes one node kind, enabling operations like
// printing or transformation without switching on node types everywhere.
type NodeVisitor interface {
	VisitIntegerNode(node *IntegerNode)     // Integer literals: 42, 0x1f
	VisitFloatNode(node *FloatNode)         // Float literals: 3.14, 1e-5
	VisitBooleanNode(node *BooleanNode)     // TRUE / FALSE
	VisitStringNode(node *StringNode)       // String fields and literals
	VisitParameterNode(node *ParameterNode) // Parameter references
	VisitFunctionNode(node *FunctionNode)   // Function calls: sin(x)
	VisitOperatorNode(node *OperatorNode)   // Unary/binary/ternary operators
	VisitStatementNode(node *StatementNode) // One full statement
}

// Node is the base interface for all nodes of the AST.
// Next() returns the following sibling in the chain (nil at the end),
// Literal() renders the node back to source-like text, and Accept()
// dispatches a visitor.
type Node interface {
	Next() Node
	setNext(n Node)
	Literal() string
	Accept(visitor NodeVisitor)
}

// chain provides the intrusive sibling link shared by every node kind.
type chain struct {
	next Node
}

// Next returns the next sibling node, or nil.
func (c *chain) Next() Node { return c.next }

func (c *chain) setNext(n Node) { c.next = n }

// AddNext appends b to the end of a's sibling chain and returns a.
// Either argument may be nil: AddNext(nil, b) returns b, AddNext(a, nil)
// returns a unchanged.
func AddNext(a, b Node) Node {
	if a == nil {
		return b
	}
	if b != nil {
		end := a
		for end.Next() != nil {
			end = end.Next()
		}
		end.setNext(b)
	}
	return a
}

// IntegerNode represents a 64-bit signed integer literal.
type IntegerNode struct {
	chain
	Value int64
}

// NewInteger creates an integer literal node.
func NewInteger(value int64) *IntegerNode {
	return &IntegerNode{Value: value}
}

// Literal renders the integer in base 10.
func (node *IntegerNode) Literal() string {
	return strconv.FormatInt(node.Value, 10)
}

// Accept dispatches the visitor on this node.
func (node *IntegerNode) Accept(visitor NodeVisitor) {
	visitor.VisitIntegerNode(node)
}

// FloatNode represents a floating-point literal (including INFINITY and
// NAN, which are delivered as float values).
type FloatNode struct {
	chain
	Value float64
}

// NewFloat creates a float literal node.
func NewFloat(value float64) *FloatNode {
	return &FloatNode{Value: value}
}

// Literal renders the float in shortest round-trip form.
func (node *FloatNode) Literal() string {
	return strconv.FormatFloat(node.Value, 'g', -1, 64)
}

// Accept dispatches the visitor on this node.
func (node *FloatNode) Accept(visitor NodeVisitor) {
	visitor.VisitFloatNode(node)
}

// BooleanNode represents a TRUE or FALSE literal.
type BooleanNode struct {
	chain
	Value bool
}

// NewBool creates a boolean literal node.
func NewBool(value bool) *BooleanNode {
	return &BooleanNode{Value: value}
}

// Literal renders the boolean as TRUE or FALSE.
func (node *BooleanNode) Literal() string {
	if node.Value {
		return "TRUE"
	}
	return "FALSE"
}

// Accept dispatches the visitor on this node.
func (node *BooleanNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanNode(node)
}

// StringNode represents string content: quoted literals, unquoted argument
// values, argument keys and command names all arrive here.
type StringNode struct {
	chain
	Value string
}

// NewString creates a string node.
func NewString(value string) *StringNode {
	return &StringNode{Value: value}
}

// Literal renders the string quoted.
func (node *StringNode) Literal() string {
	return strconv.Quote(node.Value)
}

// Accept dispatches the visitor on this node.
func (node *StringNode) Accept(visitor NodeVisitor) {
	visitor.VisitStringNode(node)
}

// ParameterNode represents a reference to a named parameter inside an
// expression.
type ParameterNode struct {
	chain
	Name string
}

// NewParameter creates a parameter reference node.
func NewParameter(name string) *ParameterNode {
	return &ParameterNode{Name: name}
}

// Literal renders the parameter name.
func (node *ParameterNode) Literal() string {
	return node.Name
}

// Accept dispatches the visitor on this node.
func (node *ParameterNode) Accept(visitor NodeVisitor) {
	visitor.VisitParameterNode(node)
}

// FunctionNode represents a function call. Args is the head of the argument
// chain and may be nil for a call with no arguments.
type FunctionNode struct {
	chain
	Name string
	Args Node
}

// NewFunction creates a function call node from a name and an argument
// chain (nil for no arguments).
func NewFunction(name string, args Node) *FunctionNode {
	return &FunctionNode{Name: name, Args: args}
}

// Literal renders the call as name(arg, arg, ...).
func (node *FunctionNode) Literal() string {
	var sb strings.Builder
	sb.WriteString(node.Name)
	sb.WriteByte('(')
	for arg := node.Args; arg != nil; arg = arg.Next() {
		if arg != node.Args {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Literal())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Accept dispatches the visitor on this node.
func (node *FunctionNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionNode(node)
}

// OperatorNode represents a unary, binary or ternary operation. Children is
// the head of the operand chain: one operand for NEGATE_OP/NOT_OP, two for
// the binary kinds, three for IFELSE_OP (value, condition, alternative).
type OperatorNode struct {
	chain
	Op       OperatorType
	Children Node
}

// NewOperator creates an operator node over an existing operand chain.
func NewOperator(op OperatorType, children Node) *OperatorNode {
	return &OperatorNode{Op: op, Children: children}
}

// NewOperator2 creates a binary operator node from its two operands.
func NewOperator2(op OperatorType, a, b Node) *OperatorNode {
	return NewOperator(op, AddNext(a, b))
}

// NewOperator3 creates a ternary operator node from its three operands.
func NewOperator3(op OperatorType, a, b, c Node) *OperatorNode {
	return NewOperator(op, AddNext(AddNext(a, b), c))
}

// Literal renders the operation with explicit grouping.
func (node *OperatorNode) Literal() string {
	a := node.Children
	switch node.Op {
	case NEGATE_OP:
		return "-" + a.Literal()
	case NOT_OP:
		return "!" + a.Literal()
	case LOOKUP_OP:
		return "lookup(" + a.Literal() + ", " + a.Next().Literal() + ")"
	case IFELSE_OP:
		b := a.Next()
		return "(" + a.Literal() + " IF " + b.Literal() + " ELSE " + b.Next().Literal() + ")"
	default:
		return "(" + a.Literal() + " " + operatorSymbols[node.Op] + " " + a.Next().Literal() + ")"
	}
}

// Accept dispatches the visitor on this node.
func (node *OperatorNode) Accept(visitor NodeVisitor) {
	visitor.VisitOperatorNode(node)
}

// StatementNode wraps one parsed statement. Children is the head of the
// field chain (command name first), never nil for delivered statements.
type StatementNode struct {
	chain
	Children Node
}

// NewStatement wraps a field chain in a statement node.
func NewStatement(children Node) *StatementNode {
	return &StatementNode{Children: children}
}

// Literal renders the statement as its fields separated by spaces.
func (node *StatementNode) Literal() string {
	var sb strings.Builder
	for field := node.Children; field != nil; field = field.Next() {
		if field != node.Children {
			sb.WriteByte(' ')
		}
		sb.WriteString(field.Literal())
	}
	return sb.String()
}

// Accept dispatches the visitor on this node.
func (node *StatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitStatementNode(node)
}
