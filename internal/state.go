package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

// Lexer errors
var errIllegalChar = errors.New("Illegal character")
var errUnclosedString = errors.New("Closing \" was expected")
var errEscapeUnsupported = errors.New("Escape sequences are not supported")
var errNumberRange = errors.New("Number literal out of range")

// Parser errors
var errUnexpectedToken = errors.New("Unexpected token")
var errTokenMismatch = errors.New("Token mismatch")
var errInvalidBinaryOp = errors.New("Invalid binary operator")
var errInvalidUnaryOp = errors.New("Invalid unary operator")
var errExpectedExpression = errors.New("Expected expression")
var errInvalidAssignment = errors.New("Invalid assignment target")
var errTooDeeplyNested = errors.New("Expression too deeply nested")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errUninitializedVar = fmt.Errorf("%w (declared without a value)", errUndefinedVar)
var errNotANumber = errors.New("Operand is not a number")
var errNotABoolean = errors.New("Operand is not a boolean")
var errMismatchedTypes = errors.New("Mismatched operand types")
var errDivisionByZero = errors.New("Can't divide by zero")
var errUndefinedOp = errors.New("Undefined operation")

// ScanError is an invalid input found by the lexer
type ScanError struct {
	Err    error
	Char   rune
	Line   int
	Column int
}

func (e *ScanError) Error() string {
	if errors.Is(e.Err, errIllegalChar) {
		return fmt.Sprintf("%s: '%c'", e.Err, e.Char)
	}
	return e.Err.Error()
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// ScanErrors every error found while scanning a source
type ScanErrors []*ScanError

func (e ScanErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = fmt.Sprintf("[line %d, column %d] %s", err.Line, err.Column, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// SyntaxError is the first grammar violation found by the parser
type SyntaxError struct {
	Err      error
	Lexeme   string
	Context  string
	Expected tokenType
	Found    tokenType
	Line     int
	Column   int
}

func (e *SyntaxError) Error() string {
	if errors.Is(e.Err, errTokenMismatch) {
		return fmt.Sprintf("%s, expected %s but found %s", e.Context, e.Expected, e.Found)
	}
	if e.Found == tkEOF {
		return fmt.Sprintf("%s at end", e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Lexeme)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// RuntimeError is the error that stopped the evaluation of a program
type RuntimeError struct {
	Err    error
	Lexeme string
	Line   int
	Column int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Lexeme)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

type stage string

const (
	stageScan    stage = "Scan"
	stageParse   stage = "Syntax"
	stageRuntime stage = "Runtime"
)

type stageError struct {
	stage  stage
	err    error
	line   int
	column int
}

// interpreterState stores the state of a single run
type interpreterState struct {
	absPath string
	source  string
	errors  []stageError
	tokens  []token
	stmts   []stmt

	config  Config
	printer IPrinter
	log     logrus.FieldLogger
	colors  *color.Color
}

func newInterpreterState(absPath, source string, p IPrinter, config Config, log logrus.FieldLogger) *interpreterState {
	colors := color.New()
	colors.SetOutput(os.Stderr)
	if !config.Color {
		colors.Disable()
	}
	return &interpreterState{
		absPath: absPath,
		source:  source,
		errors:  make([]stageError, 0),
		config:  config,
		printer: p,
		log:     log,
		colors:  colors,
	}
}

func (s *interpreterState) setError(st stage, err error) {
	switch e := err.(type) {
	case ScanErrors:
		for _, scanErr := range e {
			s.setError(st, scanErr)
		}
		return
	case *ScanError:
		s.errors = append(s.errors, stageError{stage: st, err: e, line: e.Line, column: e.Column})
	case *SyntaxError:
		s.errors = append(s.errors, stageError{stage: st, err: e, line: e.Line, column: e.Column})
	case *RuntimeError:
		s.errors = append(s.errors, stageError{stage: st, err: e, line: e.Line, column: e.Column})
	default:
		s.errors = append(s.errors, stageError{stage: st, err: err})
	}
	last := s.errors[len(s.errors)-1]
	s.log.WithFields(logrus.Fields{
		"stage":  string(st),
		"line":   last.line,
		"column": last.column,
	}).Info(err.Error())
}

// PrintErrors prints all errors, returns true if there was any
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.printer.Fprintf(
			os.Stderr,
			"%s on line %d, column %d\n\t%s\n",
			s.colors.Red(fmt.Sprintf("%s error", e.stage), color.B),
			e.line,
			e.column,
			s.colors.Yellow(e.err.Error()),
		)
	}
	return len(s.errors) > 0
}
