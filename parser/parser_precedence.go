/*
File    : go-gcode/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-gcode/ast"
	"github.com/akashmaji946/go-gcode/lexer"
)

// Operator priority constants for the Pratt expression parser.
// Higher number = higher priority (binds tighter).
//
// Priority hierarchy (lowest to highest):
//  1. Logical OR
//  2. Logical AND
//  3. Logical NOT (prefix)
//  4. Relational operators and equality: < > <= >= =
//  5. Additive operators: + -
//  6. Multiplicative operators: * / %
//  7. Power: ** (right-to-left associativity)
//  8. Unary minus (prefix)
//  9. Concatenation: ~
// 10. Conditional: value IF cond ELSE alt (alt associates rightward)
// 11. Member/indexed lookup: expr.name, expr[expr]
//
// Example: in "1 + 2 * 3", multiplication binds tighter than addition, so
// it parses as "1 + (2 * 3)". In "X ~ a IF b ELSE c", the conditional binds
// tighter than "~", so the concatenation receives the whole conditional.
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Logical OR: a OR b, parsed left-to-right
	OR_PRIORITY = 10

	// Logical AND: binds tighter than OR
	AND_PRIORITY = 20

	// Logical NOT: prefix, binding its operand at this priority
	NOT_PRIORITY = 30

	// Relational and equality operators: < > <= >= =
	RELATIONAL_PRIORITY = 40

	// Additive operators: + -
	PLUS_PRIORITY = 50

	// Multiplicative operators: * / %
	MUL_PRIORITY = 60

	// Power operator: ** (right associative: 2**3**2 is 2**(3**2))
	POWER_PRIORITY = 70

	// Unary minus: prefix, above **
	UNARY_PRIORITY = 80

	// Concatenation: ~
	CONCAT_PRIORITY = 90

	// Conditional expression: value IF cond ELSE alt
	IFELSE_PRIORITY = 100

	// Member and indexed lookup: a.b, a[b]
	LOOKUP_PRIORITY = 110
)

// getPriority returns the binding priority for an infix/postfix token, or
// -1 for tokens that cannot continue an expression. This drives the Pratt
// loop: parsing continues while the next token binds tighter than the
// current context.
func getPriority(id lexer.TokenID) int {
	switch id {
	case lexer.TOK_OR:
		return OR_PRIORITY
	case lexer.TOK_AND:
		return AND_PRIORITY
	case lexer.TOK_EQUAL, lexer.TOK_LT, lexer.TOK_GT, lexer.TOK_LTE, lexer.TOK_GTE:
		return RELATIONAL_PRIORITY
	case lexer.TOK_PLUS, lexer.TOK_MINUS:
		return PLUS_PRIORITY
	case lexer.TOK_TIMES, lexer.TOK_DIVIDE, lexer.TOK_MODULUS:
		return MUL_PRIORITY
	case lexer.TOK_POWER:
		return POWER_PRIORITY
	case lexer.TOK_CONCAT:
		return CONCAT_PRIORITY
	case lexer.TOK_IF:
		return IFELSE_PRIORITY
	case lexer.TOK_DOT, lexer.TOK_LBRACKET:
		return LOOKUP_PRIORITY
	default:
		return -1
	}
}

// binaryOperators maps infix token ids to the operator kind their node
// carries.
var binaryOperators = map[lexer.TokenID]ast.OperatorType{
	lexer.TOK_OR:      ast.OR_OP,
	lexer.TOK_AND:     ast.AND_OP,
	lexer.TOK_EQUAL:   ast.EQUALS_OP,
	lexer.TOK_LT:      ast.LT_OP,
	lexer.TOK_GT:      ast.GT_OP,
	lexer.TOK_LTE:     ast.LTE_OP,
	lexer.TOK_GTE:     ast.GTE_OP,
	lexer.TOK_PLUS:    ast.ADD_OP,
	lexer.TOK_MINUS:   ast.SUBTRACT_OP,
	lexer.TOK_TIMES:   ast.MULTIPLY_OP,
	lexer.TOK_DIVIDE:  ast.DIVIDE_OP,
	lexer.TOK_MODULUS: ast.MODULUS_OP,
	lexer.TOK_POWER:   ast.POWER_OP,
	lexer.TOK_CONCAT:  ast.CONCAT_OP,
}
