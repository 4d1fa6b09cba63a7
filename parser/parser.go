// Package parser implements a recursive-descent parser that turns a
// token stream into the ast.Expr/ast.Stmt tree.
//
// The overall shape — a Parser struct holding current/lookahead state,
// Errors collected rather than panicked on, and a synchronize step that
// discards tokens up to a statement boundary — is grounded on the
// teacher's parser.Parser (akashmaji946/go-mix/parser/parser.go). The
// grammar itself and the exact recovery token set and error messages
// ("Expect ')' after expression.", "Expect expression.") follow the
// original source's recursive-descent parser (original_source/src/parser.rs),
// extended from bare expression parsing up to the full statement,
// function, and class grammar spec.md §4.2 names.
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/token"
)

const maxArgs = 255

// Parser consumes a flat token slice (the lexer already ran to
// completion) and produces a list of statements plus any ParseErrors.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []*loxerr.ParseError
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs the parser to completion, returning every top-level
// statement it could recover plus the aggregate of every ParseError
// encountered. A non-empty error slice means the caller must not hand
// the statements to the resolver or interpreter.
func Parse(tokens []token.Token) ([]ast.Stmt, []*loxerr.ParseError) {
	p := New(tokens)
	var stmts []ast.Stmt
	for !p.atEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, p.errors
}

// ParseExpression parses a single expression and nothing else — the
// grammar the `evaluate` CLI subcommand needs, since spec.md §6.4
// evaluates one bare expression rather than a full statement program.
// It does not require (or consume) a trailing semicolon.
func ParseExpression(tokens []token.Token) (expr ast.Expr, errs []*loxerr.ParseError) {
	p := New(tokens)
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseBail); ok {
				errs = p.errors
				return
			}
			panic(r)
		}
	}()
	expr = p.expression()
	errs = p.errors
	return expr, errs
}

// --- token stream helpers ---

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t token.Type) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type or records a ParseError
// and returns the zero Token with false; callers that can't proceed
// without the token call bail() and let declaration-level recovery
// resynchronize.
func (p *Parser) consume(t token.Type, message string) (token.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	p.errorAt(p.peek(), message)
	return token.Token{}, false
}

func (p *Parser) errorAt(tok token.Token, message string) {
	p.errors = append(p.errors, &loxerr.ParseError{Message: message, Line: tok.Line})
}

// synchronize discards tokens until it reaches a likely statement
// boundary, so one malformed statement doesn't poison the rest of the
// parse. The recovery set matches the original source's synchronize().
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// --- declarations ---

func (p *Parser) declaration() ast.Stmt {
	defer func() {
		if r := recover(); r != nil {
			p.synchronize()
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

type parseBail struct{}

func (p *Parser) bail() {
	panic(parseBail{})
}

func (p *Parser) classDeclaration() ast.Stmt {
	name, ok := p.consume(token.IDENTIFIER, "Expect class name.")
	if !ok {
		p.bail()
	}

	var superclass *ast.VariableExpr
	if p.match(token.LESS) {
		superName, ok := p.consume(token.IDENTIFIER, "Expect superclass name.")
		if !ok {
			p.bail()
		}
		superclass = ast.NewVariableExpr(superName)
	}

	if _, ok := p.consume(token.LEFT_BRACE, "Expect '{' before class body."); !ok {
		p.bail()
	}

	var methods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}

	if _, ok := p.consume(token.RIGHT_BRACE, "Expect '}' after class body."); !ok {
		p.bail()
	}

	return ast.NewClassStmt(name, superclass, methods)
}

func (p *Parser) function(kind string) *ast.FunctionStmt {
	name, ok := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	if !ok {
		p.bail()
	}
	if _, ok := p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name."); !ok {
		p.bail()
	}
	params, body := p.functionTail(kind)
	return ast.NewFunctionStmt(name, params, body)
}

// functionTail parses the parameter list and body shared by named
// function/method declarations and anonymous function expressions,
// starting just after the opening '('.
func (p *Parser) functionTail(kind string) ([]token.Token, []ast.Stmt) {
	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			param, ok := p.consume(token.IDENTIFIER, "Expect parameter name.")
			if !ok {
				p.bail()
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, ok := p.consume(token.RIGHT_PAREN, "Expect ')' after parameters."); !ok {
		p.bail()
	}

	if _, ok := p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body."); !ok {
		p.bail()
	}
	return params, p.block()
}

func (p *Parser) varDeclaration() ast.Stmt {
	name, ok := p.consume(token.IDENTIFIER, "Expect variable name.")
	if !ok {
		p.bail()
	}

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); !ok {
		p.bail()
	}
	return ast.NewVarStmt(name, initializer)
}

// --- statements ---

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LEFT_BRACE):
		return ast.NewBlockStmt(p.block())
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		stmts = append(stmts, p.declaration())
	}
	if _, ok := p.consume(token.RIGHT_BRACE, "Expect '}' after block."); !ok {
		p.bail()
	}
	return stmts
}

// forStatement desugars `for (init; cond; incr) body` into:
//
//	{ init; while (cond) { body; incr; } }
//
// There is no ast.ForStmt; the resolver and interpreter never see `for`.
func (p *Parser) forStatement() ast.Stmt {
	if _, ok := p.consume(token.LEFT_PAREN, "Expect '(' after 'for'."); !ok {
		p.bail()
	}

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after loop condition."); !ok {
		p.bail()
	}

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	if _, ok := p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses."); !ok {
		p.bail()
	}

	body := p.statement()

	if increment != nil {
		body = ast.NewBlockStmt([]ast.Stmt{body, ast.NewExpressionStmt(increment)})
	}
	if condition == nil {
		condition = ast.NewLiteralExpr(true)
	}
	body = ast.NewWhileStmt(condition, body)

	if initializer != nil {
		body = ast.NewBlockStmt([]ast.Stmt{initializer, body})
	}
	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	if _, ok := p.consume(token.LEFT_PAREN, "Expect '(' after 'if'."); !ok {
		p.bail()
	}
	condition := p.expression()
	if _, ok := p.consume(token.RIGHT_PAREN, "Expect ')' after if condition."); !ok {
		p.bail()
	}

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return ast.NewIfStmt(condition, thenBranch, elseBranch)
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after value."); !ok {
		p.bail()
	}
	return ast.NewPrintStmt(value)
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after return value."); !ok {
		p.bail()
	}
	return ast.NewReturnStmt(keyword, value)
}

func (p *Parser) whileStatement() ast.Stmt {
	if _, ok := p.consume(token.LEFT_PAREN, "Expect '(' after 'while'."); !ok {
		p.bail()
	}
	condition := p.expression()
	if _, ok := p.consume(token.RIGHT_PAREN, "Expect ')' after condition."); !ok {
		p.bail()
	}
	body := p.statement()
	return ast.NewWhileStmt(condition, body)
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after expression."); !ok {
		p.bail()
	}
	return ast.NewExpressionStmt(expr)
}

// --- expressions, lowest to highest precedence ---

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses the left-hand side at precedence-of-or-above, then
// only on seeing '=' does it validate that the LHS is an assignable
// shape (a bare variable or a get-expression). This mirrors the
// original source's approach of parsing a full expression first and
// checking shape afterward, rather than predicting assignment targets
// in the grammar.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return ast.NewAssignExpr(target.Name, value)
		case *ast.GetExpr:
			return ast.NewSetExpr(target.Object, target.Name, value)
		default:
			p.errorAt(equals, "Invalid assignment target.")
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogicalExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogicalExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnaryExpr(op, right)
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name, ok := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			if !ok {
				p.bail()
			}
			expr = ast.NewGetExpr(expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, ok := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	if !ok {
		p.bail()
	}
	return ast.NewCallExpr(callee, paren, args)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteralExpr(false)
	case p.match(token.TRUE):
		return ast.NewLiteralExpr(true)
	case p.match(token.NIL):
		return ast.NewLiteralExpr(nil)
	case p.match(token.NUMBER):
		return ast.NewLiteralExpr(p.previous().Literal.Num)
	case p.match(token.STRING):
		return ast.NewLiteralExpr(p.previous().Literal.Str)
	case p.match(token.SUPER):
		keyword := p.previous()
		if _, ok := p.consume(token.DOT, "Expect '.' after 'super'."); !ok {
			p.bail()
		}
		method, ok := p.consume(token.IDENTIFIER, "Expect superclass method name.")
		if !ok {
			p.bail()
		}
		return ast.NewSuperExpr(keyword, method)
	case p.match(token.THIS):
		return ast.NewThisExpr(p.previous())
	case p.match(token.FUN):
		if _, ok := p.consume(token.LEFT_PAREN, "Expect '(' after 'fun'."); !ok {
			p.bail()
		}
		params, body := p.functionTail("function")
		return ast.NewFunctionExpr(params, body)
	case p.match(token.IDENTIFIER):
		return ast.NewVariableExpr(p.previous())
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		if _, ok := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); !ok {
			p.bail()
		}
		return ast.NewGroupingExpr(expr)
	default:
		p.errorAt(p.peek(), "Expect expression.")
		p.bail()
		return nil
	}
}
