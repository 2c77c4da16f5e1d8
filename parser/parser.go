/*
File    : go-gcode/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements the push parser of the G-code front-end.

The parser owns a lexer and implements its TokenSink: callers feed raw
bytes through Parse in chunks of any size, the lexer pushes completed
tokens back in, and the parser buffers them until the end-of-statement
token arrives. The statement grammar then runs over the buffered tokens:

	statement  -> (field)* EOL
	field      -> IDENTIFIER | STRING | INTEGER | FLOAT | '{' expr '}'
	            | field BRIDGE field
	expr       -> the full expression grammar (literals, parameters,
	              operators, lookups, function calls, conditionals)

Adjacent fields joined by BRIDGE tokens fold into concatenation operator
nodes. Expressions are parsed with Pratt priorities (see
parser_precedence.go). Each completed statement is wrapped in an
ast.StatementNode and handed to the statement sink exactly once, after its
terminating newline.

Errors are per-statement: the first lexical or syntactic error of a
statement is reported through the error sink, the rest of the statement is
discarded, and the next newline resynchronizes parser and lexer. No
error is fatal; the caller decides whether to continue.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-gcode/ast"
	"github.com/akashmaji946/go-gcode/lexer"
)

// ErrorFunc receives diagnostics. The return value is not consulted: the
// statement in which the error occurred is discarded up to its newline
// either way.
type ErrorFunc func(msg string) bool

// StatementFunc receives each completed statement tree. Ownership of the
// tree transfers to the sink. The return value is not consulted.
type StatementFunc func(stmt *ast.StatementNode) bool

// token is one buffered semantic token: an id plus its payload, if any.
type token struct {
	id   lexer.TokenID
	text string
	ival int64
	fval float64
}

// Parser buffers tokens pushed by its lexer and reduces them to statement
// trees. All buffering state lives here, so parsing is resumable across
// arbitrary chunk boundaries.
type Parser struct {
	lex      *lexer.Lexer
	location lexer.Location

	errorFn     ErrorFunc
	statementFn StatementFunc

	tokens  []token
	discard bool // drop tokens until the next end-of-statement

	// statement-reduction cursor
	pos    int
	failed bool
}

// NewParser creates a parser delivering diagnostics to errorFn and
// completed statements to statementFn. The parser builds and owns its
// lexer and wires the emission callbacks internally.
func NewParser(errorFn ErrorFunc, statementFn StatementFunc) *Parser {
	par := &Parser{
		errorFn:     errorFn,
		statementFn: statementFn,
		tokens:      make([]token, 0, 16),
	}
	par.lex = lexer.NewLexer(par, &par.location)
	return par
}

// Parse consumes a chunk of raw input. Chunk boundaries may fall anywhere;
// statements complete whenever their terminating newline is scanned.
func (par *Parser) Parse(buf []byte) {
	par.lex.Scan(buf)
}

// Finish flushes a trailing statement that lacks a final newline.
func (par *Parser) Finish() {
	par.lex.Finish()
}

// Reset rewinds the parser to its start state and the owned lexer to its
// newline state.
func (par *Parser) Reset() {
	par.lex.Reset()
	par.tokens = par.tokens[:0]
	par.discard = false
}

// Location returns the lexer's current token location snapshot.
func (par *Parser) Location() lexer.Location {
	return par.location
}

// push buffers one token unless the current statement is being discarded.
func (par *Parser) push(tok token) {
	if !par.discard {
		par.tokens = append(par.tokens, tok)
	}
}

// LexError implements lexer.TokenSink. The diagnostic is forwarded as-is
// and the remainder of the statement is discarded.
func (par *Parser) LexError(msg string) bool {
	par.discard = true
	par.tokens = par.tokens[:0]
	return par.errorFn(msg)
}

// Keyword implements lexer.TokenSink.
func (par *Parser) Keyword(id lexer.TokenID) bool {
	par.push(token{id: id})
	return true
}

// Identifier implements lexer.TokenSink.
func (par *Parser) Identifier(name string) bool {
	par.push(token{id: lexer.TOK_IDENTIFIER, text: name})
	return true
}

// StringLiteral implements lexer.TokenSink.
func (par *Parser) StringLiteral(value string) bool {
	par.push(token{id: lexer.TOK_STRING, text: value})
	return true
}

// IntLiteral implements lexer.TokenSink.
func (par *Parser) IntLiteral(value int64) bool {
	par.push(token{id: lexer.TOK_INTEGER, ival: value})
	return true
}

// FloatLiteral implements lexer.TokenSink.
func (par *Parser) FloatLiteral(value float64) bool {
	par.push(token{id: lexer.TOK_FLOAT, fval: value})
	return true
}

// Bridge implements lexer.TokenSink.
func (par *Parser) Bridge() bool {
	par.push(token{id: lexer.TOK_BRIDGE})
	return true
}

// EndStatement implements lexer.TokenSink. This is the reduction point:
// the buffered statement is parsed and delivered, or dropped if an error
// silenced it.
func (par *Parser) EndStatement() bool {
	if par.discard {
		par.discard = false
		par.tokens = par.tokens[:0]
		return true
	}
	par.parseStatement()
	par.tokens = par.tokens[:0]
	return true
}

// current returns the token at the reduction cursor. Past the end it
// reports end-of-statement, which every grammar path treats as a stop.
func (par *Parser) current() token {
	if par.pos < len(par.tokens) {
		return par.tokens[par.pos]
	}
	return token{id: lexer.TOK_EOL}
}

// advance moves the reduction cursor forward by one token.
func (par *Parser) advance() {
	par.pos++
}

// parseError reports a syntax diagnostic and abandons the statement.
func (par *Parser) parseError(format string, args ...interface{}) {
	if !par.failed {
		par.errorFn("G-Code parse error: " + fmt.Sprintf(format, args...))
	}
	par.failed = true
}

// expect consumes a token of the given id or raises a syntax error.
func (par *Parser) expect(id lexer.TokenID) {
	if cur := par.current(); cur.id != id {
		par.parseError("syntax error, unexpected %s, expecting %s",
			cur.id.Name(), id.Name())
		return
	}
	par.advance()
}

// parseStatement reduces the buffered tokens of one statement. An empty
// statement (bare EOL) is a no-op; otherwise the field chain is wrapped
// and delivered to the statement sink.
func (par *Parser) parseStatement() {
	par.pos = 0
	par.failed = false

	var fields ast.Node
	for par.current().id != lexer.TOK_EOL {
		field := par.parseField()
		if par.failed {
			return
		}
		fields = ast.AddNext(fields, field)
	}
	if fields == nil {
		return
	}
	par.statementFn(ast.NewStatement(fields))
}

// parseField parses one field, folding bridge-adjacent pieces into
// concatenation nodes.
func (par *Parser) parseField() ast.Node {
	field := par.parseFieldAtom()
	for !par.failed && par.current().id == lexer.TOK_BRIDGE {
		par.advance()
		next := par.parseFieldAtom()
		if par.failed {
			return nil
		}
		field = ast.NewOperator2(ast.CONCAT_OP, field, next)
	}
	return field
}

// parseFieldAtom parses a single field piece: a bare word, a string, a
// braced expression, or a numeric argument value.
func (par *Parser) parseFieldAtom() ast.Node {
	cur := par.current()
	switch cur.id {
	case lexer.TOK_IDENTIFIER:
		par.advance()
		return ast.NewString(cur.text)
	case lexer.TOK_STRING:
		par.advance()
		return ast.NewString(cur.text)
	case lexer.TOK_INTEGER:
		par.advance()
		return ast.NewInteger(cur.ival)
	case lexer.TOK_FLOAT:
		par.advance()
		return ast.NewFloat(cur.fval)
	case lexer.TOK_LBRACE:
		par.advance()
		expr := par.parseExpression(MINIMUM_PRIORITY)
		if par.failed {
			return nil
		}
		par.expect(lexer.TOK_RBRACE)
		return expr
	default:
		par.parseError("syntax error, unexpected %s", cur.id.Name())
		return nil
	}
}
