/*
File    : go-gcode/ast/node_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddNext_Chaining(t *testing.T) {

	a := NewString("a")
	b := NewString("b")
	c := NewString("c")

	head := AddNext(a, b)
	assert.Same(t, a, head)
	head = AddNext(a, c)
	assert.Same(t, a, head)

	// a -> b -> c
	assert.Same(t, b, a.Next().(*StringNode))
	assert.Same(t, c, a.Next().Next().(*StringNode))
	assert.Nil(t, a.Next().Next().Next())
}

func TestAddNext_NilArguments(t *testing.T) {

	b := NewString("b")
	assert.Same(t, b, AddNext(nil, b).(*StringNode))

	a := NewString("a")
	assert.Same(t, a, AddNext(a, nil).(*StringNode))
	assert.Nil(t, a.Next())
}

func TestOperatorConstructors(t *testing.T) {

	add := NewOperator2(ADD_OP, NewInteger(1), NewInteger(2))
	assert.Equal(t, ADD_OP, add.Op)
	assert.Equal(t, int64(1), add.Children.(*IntegerNode).Value)
	assert.Equal(t, int64(2), add.Children.Next().(*IntegerNode).Value)
	assert.Nil(t, add.Children.Next().Next())

	ifelse := NewOperator3(IFELSE_OP, NewInteger(1), NewParameter("c"), NewInteger(2))
	assert.Equal(t, 3, chainLen(ifelse.Children))

	neg := NewOperator(NEGATE_OP, NewInteger(5))
	assert.Equal(t, 1, chainLen(neg.Children))
}

func chainLen(head Node) int {
	n := 0
	for node := head; node != nil; node = node.Next() {
		n++
	}
	return n
}

func TestLiteralRendering(t *testing.T) {

	tests := []struct {
		Node     Node
		Expected string
	}{
		{NewInteger(42), "42"},
		{NewFloat(2.5), "2.5"},
		{NewBool(true), "TRUE"},
		{NewBool(false), "FALSE"},
		{NewString("a b"), `"a b"`},
		{NewParameter("speed"), "speed"},
		{NewFunction("max", AddNext(NewInteger(1), NewInteger(2))), "max(1, 2)"},
		{NewFunction("now", nil), "now()"},
		{NewOperator2(ADD_OP, NewInteger(1), NewInteger(2)), "(1 + 2)"},
		{NewOperator2(POWER_OP, NewInteger(2), NewInteger(3)), "(2 ** 3)"},
		{NewOperator(NOT_OP, NewParameter("a")), "!a"},
		{NewOperator(NEGATE_OP, NewInteger(3)), "-3"},
		{
			NewOperator2(LOOKUP_OP, NewParameter("a"), NewParameter("b")),
			"lookup(a, b)",
		},
		{
			NewOperator3(IFELSE_OP, NewInteger(1), NewParameter("c"), NewInteger(2)),
			"(1 IF c ELSE 2)",
		},
		{
			NewStatement(AddNext(NewString("G1"), NewString("X1"))),
			`"G1" "X1"`,
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.Expected, test.Node.Literal())
	}
}

// countingVisitor tallies visits per node kind.
type countingVisitor struct {
	ints, floats, bools, strs, params, funcs, ops, stmts int
}

func (v *countingVisitor) VisitIntegerNode(node *IntegerNode) { v.ints++ }
func (v *countingVisitor) VisitFloatNode(node *FloatNode)     { v.floats++ }
func (v *countingVisitor) VisitBooleanNode(node *BooleanNode) { v.bools++ }
func (v *countingVisitor) VisitStringNode(node *StringNode)   { v.strs++ }
func (v *countingVisitor) VisitParameterNode(node *ParameterNode) {
	v.params++
}
func (v *countingVisitor) VisitFunctionNode(node *FunctionNode) {
	v.funcs++
	for arg := node.Args; arg != nil; arg = arg.Next() {
		arg.Accept(v)
	}
}
func (v *countingVisitor) VisitOperatorNode(node *OperatorNode) {
	v.ops++
	for child := node.Children; child != nil; child = child.Next() {
		child.Accept(v)
	}
}
func (v *countingVisitor) VisitStatementNode(node *StatementNode) {
	v.stmts++
	for field := node.Children; field != nil; field = field.Next() {
		field.Accept(v)
	}
}

func TestVisitorDispatch(t *testing.T) {

	stmt := NewStatement(AddNext(
		NewString("G1"),
		NewOperator2(CONCAT_OP,
			NewString("X"),
			NewFunction("max", AddNext(NewInteger(1), NewFloat(2.5)))),
	))

	visitor := &countingVisitor{}
	stmt.Accept(visitor)

	assert.Equal(t, 1, visitor.stmts)
	assert.Equal(t, 2, visitor.strs)
	assert.Equal(t, 1, visitor.ops)
	assert.Equal(t, 1, visitor.funcs)
	assert.Equal(t, 1, visitor.ints)
	assert.Equal(t, 1, visitor.floats)
}
