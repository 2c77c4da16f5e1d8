/*
File    : go-gcode/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"math"

	"github.com/akashmaji946/go-gcode/ast"
	"github.com/akashmaji946/go-gcode/lexer"
)

// parseExpression parses an expression whose operators bind tighter than
// minPriority. This is the Pratt core: a prefix/literal parse followed by
// a loop absorbing infix and postfix operators while they outrank the
// caller's context.
func (par *Parser) parseExpression(minPriority int) ast.Node {
	left := par.parseUnary()
	for !par.failed {
		cur := par.current()
		priority := getPriority(cur.id)
		if priority <= minPriority {
			break
		}
		switch cur.id {
		case lexer.TOK_POWER:
			// Right associative: the right operand reabsorbs **.
			par.advance()
			right := par.parseExpression(priority - 1)
			left = ast.NewOperator2(ast.POWER_OP, left, right)

		case lexer.TOK_DOT:
			par.advance()
			name := par.current()
			if name.id != lexer.TOK_IDENTIFIER {
				par.parseError("syntax error, unexpected %s, expecting IDENTIFIER",
					name.id.Name())
				return nil
			}
			par.advance()
			left = ast.NewOperator2(ast.LOOKUP_OP, left, ast.NewParameter(name.text))

		case lexer.TOK_LBRACKET:
			par.advance()
			index := par.parseExpression(MINIMUM_PRIORITY)
			par.expect(lexer.TOK_RBRACKET)
			left = ast.NewOperator2(ast.LOOKUP_OP, left, index)

		case lexer.TOK_IF:
			// value IF cond ELSE alt; the alternative associates
			// rightward so chained conditionals nest into it.
			par.advance()
			cond := par.parseExpression(MINIMUM_PRIORITY)
			par.expect(lexer.TOK_ELSE)
			alt := par.parseExpression(IFELSE_PRIORITY - 1)
			left = ast.NewOperator3(ast.IFELSE_OP, left, cond, alt)

		default:
			par.advance()
			right := par.parseExpression(priority)
			left = ast.NewOperator2(binaryOperators[cur.id], left, right)
		}
	}
	if par.failed {
		return nil
	}
	return left
}

// parseUnary parses a literal, parameter, function call, parenthesized
// expression or prefix operation.
func (par *Parser) parseUnary() ast.Node {
	cur := par.current()
	switch cur.id {
	case lexer.TOK_INTEGER:
		par.advance()
		return ast.NewInteger(cur.ival)

	case lexer.TOK_FLOAT:
		par.advance()
		return ast.NewFloat(cur.fval)

	case lexer.TOK_STRING:
		par.advance()
		return ast.NewString(cur.text)

	case lexer.TOK_TRUE:
		par.advance()
		return ast.NewBool(true)

	case lexer.TOK_FALSE:
		par.advance()
		return ast.NewBool(false)

	case lexer.TOK_INFINITY:
		par.advance()
		return ast.NewFloat(math.Inf(1))

	case lexer.TOK_NAN:
		par.advance()
		return ast.NewFloat(math.NaN())

	case lexer.TOK_IDENTIFIER:
		par.advance()
		if par.current().id == lexer.TOK_LPAREN {
			return par.parseCall(cur.text)
		}
		return ast.NewParameter(cur.text)

	case lexer.TOK_LPAREN:
		par.advance()
		expr := par.parseExpression(MINIMUM_PRIORITY)
		par.expect(lexer.TOK_RPAREN)
		return expr

	case lexer.TOK_MINUS:
		par.advance()
		return ast.NewOperator(ast.NEGATE_OP, par.parseExpression(UNARY_PRIORITY))

	case lexer.TOK_PLUS:
		// Unary plus is the identity: the operand stands alone.
		par.advance()
		return par.parseExpression(UNARY_PRIORITY)

	case lexer.TOK_NOT:
		par.advance()
		return ast.NewOperator(ast.NOT_OP, par.parseExpression(NOT_PRIORITY))

	default:
		par.parseError("syntax error, unexpected %s", cur.id.Name())
		return nil
	}
}

// parseCall parses a function call's argument list; the name has been
// consumed and the cursor sits on '('.
func (par *Parser) parseCall(name string) ast.Node {
	par.advance()
	var args ast.Node
	if par.current().id != lexer.TOK_RPAREN {
		args = par.parseExpressionList()
		if par.failed {
			return nil
		}
	}
	par.expect(lexer.TOK_RPAREN)
	return ast.NewFunction(name, args)
}

// parseExpressionList parses a comma-separated expression chain.
func (par *Parser) parseExpressionList() ast.Node {
	list := par.parseExpression(MINIMUM_PRIORITY)
	for !par.failed && par.current().id == lexer.TOK_COMMA {
		par.advance()
		next := par.parseExpression(MINIMUM_PRIORITY)
		list = ast.AddNext(list, next)
	}
	return list
}
