package internal

import (
	"fmt"
	"strings"
)

//R generic type
type R interface{}

// PrintTree prints the parsed statements, one per line
func (s *interpreterState) PrintTree() {
	s.printer.Println(strings.TrimSuffix(printTree(s.stmts), "\n"))
}

// PrintTokens prints every scanned token, one per line
func (s *interpreterState) PrintTokens() {
	for _, tk := range s.tokens {
		s.printer.Println(tk.String())
	}
}

func printTree(stmts []stmt) string {
	out := ""
	for _, st := range stmts {
		s, _ := st.accept(stringVisitor{})
		out += s.(string) + "\n"
	}
	return out
}

func printExpr(ex expr) string {
	s, _ := ex.accept(stringVisitor{})
	return s.(string)
}

type stringVisitor struct{}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) (R, error) {
	return stmt.expression.accept(v)
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) (R, error) {
	return fmt.Sprintf("(print %s)", printExpr(stmt.expression)), nil
}

func (v stringVisitor) visitVarStmt(stmt *varStmt) (R, error) {
	if stmt.initializer == nil {
		return fmt.Sprintf("(var %s)", stmt.name.name), nil
	}
	return fmt.Sprintf("(var %s %s)", stmt.name.name, printExpr(stmt.initializer)), nil
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) (R, error) {
	if repr, ok := expr.value.(Representable); ok {
		return repr.Repr(), nil
	}
	return expr.value.String(), nil
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) (R, error) {
	return fmt.Sprintf("(%s %s)", expr.operator.kind, printExpr(expr.right)), nil
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) (R, error) {
	return fmt.Sprintf("(%s %s %s)", expr.operator.kind, printExpr(expr.left), printExpr(expr.right)), nil
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return fmt.Sprintf("(group %s)", printExpr(expr.expression)), nil
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) (R, error) {
	return expr.name.name, nil
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) (R, error) {
	return fmt.Sprintf("(= %s %s)", expr.name.name, printExpr(expr.value)), nil
}
