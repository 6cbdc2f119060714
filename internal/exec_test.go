package internal

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

type testPrinter struct {
	printed string
}

func (t *testPrinter) Println(a ...interface{}) (n int, err error) {
	for i, e := range a {
		if i != 0 {
			t.printed += " "
		}
		t.printed += fmt.Sprintf("%v", e)
	}
	t.printed += "\n"
	return 0, nil
}

func (t *testPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return t.Println(fmt.Sprintf(format, a...))
}

func (t *testPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return t.Println(a...)
}

func (t *testPrinter) Equals(p string) bool {
	if t.printed == p+"\n" {
		t.Reset()
		return true
	}
	return false
}

func (t *testPrinter) Reset() {
	t.printed = ""
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func runSource(source string, tp *testPrinter) error {
	config := DefaultConfig()
	config.Color = false
	return RunSourceWithConfig("", source, tp, config, quietLogger())
}

func checkExpression(t *testing.T, exp string, result ...string) {
	t.Helper()
	source := "print " + exp + ";"
	tp := &testPrinter{}
	runSource(source, tp)
	any := false
	for _, r := range result {
		if tp.Equals(r) {
			any = true
			break
		}
	}
	if !any {
		t.Errorf(
			"Error on: \n%s\n\tResult should be equal to %s instead of %s",
			exp,
			result,
			tp.printed,
		)
	}
}

func checkErrorMsg(t *testing.T, source string, errorMsg string, line, column int) {
	t.Helper()
	result := fmt.Sprintf("Runtime error on line %d, column %d\n\t%s\n", line, column, errorMsg)

	tp := &testPrinter{}
	runSource(source, tp)
	if !tp.Equals(result) {
		t.Errorf(
			"\nSource:\n----\n%s\n----\nExpected:\n----\n%s----\nFound:\n----\n%s----",
			source,
			result,
			tp.printed,
		)
	}
}

func checkStatements(t *testing.T, code string, resultVar string, result string) {
	t.Helper()
	source := code + "\nprint " + resultVar + ";"
	tp := &testPrinter{}
	runSource(source, tp)
	if !tp.Equals(result) {
		t.Errorf(
			"Error on: \n%s\n\t%s should be equal to %s instead of %s",
			code,
			resultVar,
			result,
			tp.printed,
		)
	}
}

func interpretSource(t *testing.T, source string) (*testPrinter, error) {
	t.Helper()
	tp := &testPrinter{}
	err := newExec(tp).interpret(parseOrFail(t, source))
	return tp, err
}

func TestExpressions(t *testing.T) {

	// Arithmethic
	{
		// Number
		checkExpression(t, "1", "1")

		// Negative
		checkExpression(t, "-4", "-4")

		// Precedence
		checkExpression(t, "1 + 2 * 3", "7")

		// Grouping
		checkExpression(t, "(1 + 2) * 3", "9")

		// Left associative
		checkExpression(t, "1 - 2 - 3", "-4")

		// Divide numbers
		checkExpression(t, "12 / 2", "6")
		checkExpression(t, "1 / 4", "0.25")

		// Floats
		checkExpression(t, "3.14", "3.14")
		checkExpression(t, "0.1 + 0.2", "0.30000000000000004")

		// Double negation
		checkExpression(t, "--2", "2")
	}

	// Strings
	{
		checkExpression(t, `"ab"`, "ab")
		checkExpression(t, `"a" + "b"`, "ab")
		checkExpression(t, `""`, "")
	}

	// Literals
	{
		checkExpression(t, "true", "true")
		checkExpression(t, "false", "false")
		checkExpression(t, "null", "null")
		checkExpression(t, "!true", "false")
		checkExpression(t, "!!true", "true")
	}

	// Comparison
	{
		checkExpression(t, "1 < 2", "true")
		checkExpression(t, "2 <= 2", "true")
		checkExpression(t, "1 > 2", "false")
		checkExpression(t, "1 >= 2", "false")
	}

	// Equality
	{
		checkExpression(t, "1 == 1", "true")
		checkExpression(t, "0.1 + 0.2 == 0.3", "true")
		checkExpression(t, "1 == 1.000001", "false")
		checkExpression(t, `"a" == "a"`, "true")
		checkExpression(t, `"a" == "b"`, "false")
		checkExpression(t, "true == true", "true")
		checkExpression(t, "null == null", "true")
		checkExpression(t, `1 == "1"`, "false")
		checkExpression(t, "null == false", "false")
		checkExpression(t, "1 != 2", "true")
		checkExpression(t, "1 != 1", "false")
		checkExpression(t, `1 != "1"`, "true")
		checkExpression(t, "null != null", "false")
	}
}

func TestRuntimeErrors(t *testing.T) {
	checkErrorMsg(t, "print 1 / 0;", "Can't divide by zero: /", 1, 9)
	checkErrorMsg(t, "1/0;", "Can't divide by zero: /", 1, 2)
	checkErrorMsg(t, `print "a" + 1;`, "Mismatched operand types: string + number", 1, 11)
	checkErrorMsg(t, `print 1 - "a";`, "Mismatched operand types: number - string", 1, 9)
	checkErrorMsg(t, `print "a" * "b";`, "Undefined operation: *", 1, 11)
	checkErrorMsg(t, "print true + 1;", "Mismatched operand types: bool + number", 1, 12)
	checkErrorMsg(t, "print 1 + true;", "Mismatched operand types: number + bool", 1, 9)
	checkErrorMsg(t, "print null + null;", "Mismatched operand types: null + null", 1, 12)
	checkErrorMsg(t, `print true + "a";`, "Mismatched operand types: bool + string", 1, 12)
	checkErrorMsg(t, "print true - 1;", "Mismatched operand types: bool - number", 1, 12)
	checkErrorMsg(t, `print "a" < 1;`, "Mismatched operand types: string < number", 1, 11)
	checkErrorMsg(t, "print true - false;", "Undefined operation: -", 1, 12)
	checkErrorMsg(t, `print "b" > "a";`, "Undefined operation: >", 1, 11)
	checkErrorMsg(t, `print -"a";`, "Operand is not a number: -", 1, 7)
	checkErrorMsg(t, "print !1;", "Operand is not a boolean: !", 1, 7)
	checkErrorMsg(t, "print y;", "Undefined variable: y", 1, 7)
	checkErrorMsg(t, "y = 1;", "Undefined variable: y", 1, 1)
	checkErrorMsg(t, "var x;\nprint x;", "Undefined variable (declared without a value): x", 2, 7)
}

func TestRuntimeErrorKinds(t *testing.T) {
	_, err := interpretSource(t, "var x; print x;")
	if !errors.Is(err, errUndefinedVar) {
		t.Errorf("Reading an unbound variable should be %v, found %v", errUndefinedVar, err)
	}

	_, err = interpretSource(t, "print 1 / 0;")
	var runtimeErr *RuntimeError
	if !errors.As(err, &runtimeErr) || !errors.Is(err, errDivisionByZero) {
		t.Fatalf("Expected %v, found %v", errDivisionByZero, err)
	}
	if runtimeErr.Line != 1 || runtimeErr.Column != 9 {
		t.Errorf("Expected error at 1:9, found %d:%d", runtimeErr.Line, runtimeErr.Column)
	}
}

func TestRuntimeErrorStopsExecution(t *testing.T) {
	tp, err := interpretSource(t, "print 1; print 1 / 0; print 2;")
	if err == nil {
		t.Fatal("Expected a runtime error")
	}
	if !tp.Equals("1") {
		t.Errorf("Only the statements before the error should run, printed %q", tp.printed)
	}
}

func TestStatements(t *testing.T) {

	// Var
	{
		checkStatements(t, "var x = 1;", "x", "1")
		checkStatements(t, "var x = 1; x = 2;", "x", "2")
		checkStatements(t, "var x = 1; var x = 3;", "x", "3")
		checkStatements(t, "var x; x = 4;", "x", "4")
		checkStatements(t, `var s = "a"; s = s + "b";`, "s", "ab")
	}

	// Assignment is an expression
	{
		checkStatements(t, "var a; var b; a = b = 5;", "a", "5")
		checkStatements(t, "var a; var b; a = b = 5;", "b", "5")
		checkStatements(t, "var a = 1;", "a = 7", "7")
	}

	// Expression statements only have side effects
	{
		tp, err := interpretSource(t, "1 + 2; \"discarded\";")
		if err != nil || tp.printed != "" {
			t.Errorf("Expression statements should print nothing, found %q %v", tp.printed, err)
		}
	}

	// Print order
	{
		tp, err := interpretSource(t, "print 1; print \"two\"; print true;")
		if err != nil || !tp.Equals("1\ntwo\ntrue") {
			t.Errorf("Unexpected output %q %v", tp.printed, err)
		}
	}
}

func TestGroupingIsTransparent(t *testing.T) {
	for _, exp := range []string{"1 + 2", `"a"`, "!false", "null"} {
		plain, _ := interpretSource(t, "print "+exp+";")
		grouped, _ := interpretSource(t, "print (("+exp+"));")
		if plain.printed != grouped.printed {
			t.Errorf("Grouping changed %s from %q to %q", exp, plain.printed, grouped.printed)
		}
	}
}

func TestSeparateRunsDoNotShareState(t *testing.T) {
	tp := &testPrinter{}
	if err := runSource("var shared = 1;", tp); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	err := runSource("print shared;", tp)
	if !errors.Is(err, errUndefinedVar) {
		t.Errorf("Variables should not leak between runs, found %v", err)
	}
}

type countingVisitor struct {
	visited map[string]int
}

func (v *countingVisitor) count(name string) (R, error) {
	v.visited[name]++
	return nil, nil
}

func (v *countingVisitor) visitExprStmt(stmt *exprStmt) (R, error)    { return v.count("expr") }
func (v *countingVisitor) visitPrintStmt(stmt *printStmt) (R, error)  { return v.count("print") }
func (v *countingVisitor) visitVarStmt(stmt *varStmt) (R, error)      { return v.count("var") }
func (v *countingVisitor) visitLiteralExpr(e *literalExpr) (R, error) { return v.count("literal") }
func (v *countingVisitor) visitUnaryExpr(e *unaryExpr) (R, error)     { return v.count("unary") }
func (v *countingVisitor) visitBinaryExpr(e *binaryExpr) (R, error)   { return v.count("binary") }
func (v *countingVisitor) visitGroupingExpr(e *groupingExpr) (R, error) {
	return v.count("grouping")
}
func (v *countingVisitor) visitVariableExpr(e *variableExpr) (R, error) {
	return v.count("variable")
}
func (v *countingVisitor) visitAssignExpr(e *assignExpr) (R, error) { return v.count("assign") }

func TestEveryNodeAcceptsItsVisitor(t *testing.T) {
	v := &countingVisitor{visited: make(map[string]int)}
	stmts := []stmt{&exprStmt{}, &printStmt{}, &varStmt{}}
	exprs := []expr{&literalExpr{}, &unaryExpr{}, &binaryExpr{}, &groupingExpr{}, &variableExpr{}, &assignExpr{}}
	for _, s := range stmts {
		s.accept(v)
	}
	for _, e := range exprs {
		e.accept(v)
	}
	for _, name := range []string{"expr", "print", "var", "literal", "unary", "binary", "grouping", "variable", "assign"} {
		if v.visited[name] != 1 {
			t.Errorf("%s visited %d times", name, v.visited[name])
		}
	}
}
