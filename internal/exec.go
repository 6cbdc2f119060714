package internal

// exec walks statements and expressions over its own environment
type exec struct {
	env     *env
	printer IPrinter
}

func newExec(p IPrinter) *exec {
	return &exec{
		env:     newEnv(),
		printer: p,
	}
}

// interpret runs statements in order and stops at the first runtime error.
// Lines already printed stay printed.
func (e *exec) interpret(stmts []stmt) error {
	for _, s := range stmts {
		if _, err := s.accept(e); err != nil {
			return err
		}
	}
	return nil
}

func (e *exec) evaluate(ex expr) (value, error) {
	result, err := ex.accept(e)
	if err != nil {
		return nil, err
	}
	return result.(value), nil
}

func (e *exec) visitExprStmt(stmt *exprStmt) (R, error) {
	_, err := e.evaluate(stmt.expression)
	return nil, err
}

func (e *exec) visitPrintStmt(stmt *printStmt) (R, error) {
	val, err := e.evaluate(stmt.expression)
	if err != nil {
		return nil, err
	}
	e.printer.Println(val.String())
	return nil, nil
}

func (e *exec) visitVarStmt(stmt *varStmt) (R, error) {
	var val value
	if stmt.initializer != nil {
		var err error
		val, err = e.evaluate(stmt.initializer)
		if err != nil {
			return nil, err
		}
	}
	e.env.define(stmt.name.name, val)
	return nil, nil
}

func (e *exec) visitLiteralExpr(expr *literalExpr) (R, error) {
	return expr.value, nil
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return e.evaluate(expr.expression)
}

func (e *exec) visitVariableExpr(expr *variableExpr) (R, error) {
	val, err := e.env.get(expr.name)
	if err != nil {
		return nil, runtimeErr(err, expr.name.name, expr.name.line, expr.name.column)
	}
	return val, nil
}

func (e *exec) visitAssignExpr(expr *assignExpr) (R, error) {
	val, err := e.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	if err := e.env.assign(expr.name, val); err != nil {
		return nil, runtimeErr(err, expr.name.name, expr.name.line, expr.name.column)
	}
	return val, nil
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) (R, error) {
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	result, err := applyUnary(expr.operator.kind, right)
	if err != nil {
		return nil, runtimeErr(err, string(expr.operator.kind), expr.operator.line, expr.operator.column)
	}
	return result, nil
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) (R, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	result, err := applyBinary(expr.operator.kind, left, right)
	if err != nil {
		lexeme := string(expr.operator.kind)
		if err == errMismatchedTypes {
			lexeme = left.typeName() + " " + lexeme + " " + right.typeName()
		}
		return nil, runtimeErr(err, lexeme, expr.operator.line, expr.operator.column)
	}
	return result, nil
}

func runtimeErr(err error, lexeme string, line, column int) *RuntimeError {
	return &RuntimeError{
		Err:    err,
		Lexeme: lexeme,
		Line:   line,
		Column: column,
	}
}
