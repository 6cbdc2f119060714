package internal

// parser stores parser data
type parser struct {
	tokens  []token
	current int

	depth    int
	maxDepth int
}

func newParser(tokens []token, maxDepth int) *parser {
	return &parser{
		tokens:   tokens,
		maxDepth: maxDepth,
	}
}

// parse builds the statements of a program, it stops at the first syntax
// error and returns no statements in that case.
func parse(tokens []token) ([]stmt, error) {
	return newParser(tokens, 0).parse()
}

func (p *parser) parse() ([]stmt, error) {
	stmts := make([]stmt, 0)
	for !p.isAtEnd() {
		st, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	if p.current >= len(p.tokens) || p.tokens[p.current].token != tkEOF {
		return nil, p.errorAt(p.peek(), errUnexpectedToken)
	}
	return stmts, nil
}

// parseAll keeps parsing after an error by skipping to the next statement
// boundary, every error found is returned.
func (p *parser) parseAll() ([]stmt, []error) {
	stmts := make([]stmt, 0)
	errs := make([]error, 0)
	for !p.isAtEnd() {
		st, err := p.declaration()
		if err != nil {
			errs = append(errs, err)
			p.synchronize()
			continue
		}
		stmts = append(stmts, st)
	}
	return stmts, errs
}

func (p *parser) declaration() (stmt, error) {
	if p.match(tkVar) {
		return p.let()
	}
	return p.statement()
}

func (p *parser) let() (stmt, error) {
	name, err := p.consume(tkIdentifier, "Expected variable name after 'var'")
	if err != nil {
		return nil, err
	}

	var init expr
	if p.match(tkEqual) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(tkSemicolon, "Expected ';' after variable declaration"); err != nil {
		return nil, err
	}

	return &varStmt{
		name:        symbolFromToken(name),
		initializer: init,
	}, nil
}

func (p *parser) statement() (stmt, error) {
	if p.match(tkPrint) {
		return p.printStmt()
	}
	return p.expressionStmt()
}

func (p *parser) printStmt() (stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tkSemicolon, "Expected ';' after value"); err != nil {
		return nil, err
	}
	return &printStmt{expression: value}, nil
}

func (p *parser) expressionStmt() (stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tkSemicolon, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &exprStmt{expression: expr}, nil
}

func (p *parser) expression() (expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return p.assignment()
}

func (p *parser) assignment() (expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	if p.match(tkEqual) {
		equal := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}, nil
		}

		return nil, p.errorAt(*equal, errInvalidAssignment)
	}
	return expr, nil
}

func (p *parser) equality() (expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(tkEqualEqual, tkBangEqual) {
		operator, err := p.binaryOperator(p.previous())
		if err != nil {
			return nil, err
		}
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr, nil
}

func (p *parser) comparison() (expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator, err := p.binaryOperator(p.previous())
		if err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr, nil
}

func (p *parser) term() (expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(tkMinus, tkPlus) {
		operator, err := p.binaryOperator(p.previous())
		if err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr, nil
}

func (p *parser) factor() (expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(tkSlash, tkStar) {
		operator, err := p.binaryOperator(p.previous())
		if err != nil {
			return nil, err
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr, nil
}

func (p *parser) unary() (expr, error) {
	if p.match(tkBang, tkMinus) {
		tk := p.previous()
		kind, ok := unaryOperators[tk.token]
		if !ok {
			return nil, p.errorAt(*tk, errInvalidUnaryOp)
		}
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{
			operator: unaryOp{kind: kind, line: tk.line, column: tk.column},
			right:    right,
		}, nil
	}
	return p.primary()
}

func (p *parser) primary() (expr, error) {
	if p.match(tkFalse) {
		return &literalExpr{value: aprnBool(false)}, nil
	}
	if p.match(tkTrue) {
		return &literalExpr{value: aprnBool(true)}, nil
	}
	if p.match(tkNull) {
		return &literalExpr{value: aprnNull{}}, nil
	}
	if p.match(tkInt, tkFloat) {
		tk := p.previous()
		switch lit := tk.literal.(type) {
		case intLiteral:
			return &literalExpr{value: aprnNumber(lit)}, nil
		case floatLiteral:
			return &literalExpr{value: aprnNumber(lit)}, nil
		}
		return nil, p.errorAt(*tk, errUnexpectedToken)
	}
	if p.match(tkString) {
		tk := p.previous()
		lit, ok := tk.literal.(stringLiteral)
		if !ok {
			return nil, p.errorAt(*tk, errUnexpectedToken)
		}
		return &literalExpr{value: aprnString(lit)}, nil
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: symbolFromToken(p.previous())}, nil
	}
	if p.match(tkLeftParen) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tkRightParen, "Expect ')' after expression"); err != nil {
			return nil, err
		}
		return &groupingExpr{expression: expr}, nil
	}

	return nil, p.errorAt(p.peek(), errExpectedExpression)
}

func (p *parser) binaryOperator(tk *token) (binaryOp, error) {
	kind, ok := binaryOperators[tk.token]
	if !ok {
		return binaryOp{}, p.errorAt(*tk, errInvalidBinaryOp)
	}
	return binaryOp{kind: kind, line: tk.line, column: tk.column}, nil
}

// enter guards the recursion depth when maxDepth is set
func (p *parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.depth--
		return p.errorAt(p.peek(), errTooDeeplyNested)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) consume(tk tokenType, context string) (*token, error) {
	if p.check(tk) {
		return p.advance(), nil
	}

	found := p.peek()
	return nil, &SyntaxError{
		Err:      errTokenMismatch,
		Lexeme:   found.lexeme,
		Context:  context,
		Expected: tk,
		Found:    found.token,
		Line:     found.line,
		Column:   found.column,
	}
}

func (p *parser) errorAt(tk token, err error) *SyntaxError {
	return &SyntaxError{
		Err:    err,
		Lexeme: tk.lexeme,
		Found:  tk.token,
		Line:   tk.line,
		Column: tk.column,
	}
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == tk
}

func (p *parser) peek() token {
	if p.current >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.current >= len(p.tokens) || p.tokens[p.current].token == tkEOF
}

// eof stands in for a missing EOF token at the end of the stream
func (p *parser) eof() token {
	if len(p.tokens) == 0 {
		return token{token: tkEOF, line: 1, column: 1}
	}
	last := p.tokens[len(p.tokens)-1]
	return token{token: tkEOF, line: last.line, column: last.column + len(last.lexeme)}
}

// synchronize skips tokens until the probable beginning of the next statement
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().token == tkSemicolon {
			return
		}
		switch p.peek().token {
		case tkClass, tkFunc, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		}
		p.advance()
	}
}
