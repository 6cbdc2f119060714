package internal

import (
	"errors"
	"fmt"
	"io"

	"github.com/labstack/gommon/bytes"
	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// StdPrinter prints to the process standard streams
type StdPrinter struct{}

// Println writes to stdout
func (s StdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

// Fprintf writes to w
func (s StdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

// Fprintln writes to w
func (s StdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

// Exit codes reported by the command line runner
const (
	ExitOK          = 0
	ExitUsage       = 64
	ExitDataErr     = 65
	ExitNoInput     = 66
	ExitSoftwareErr = 70
)

// RunSourceWithConfig runs source code on a fresh interpreter instance and
// returns the error that stopped it. Errors are also printed through p.
func RunSourceWithConfig(absPath, source string, p IPrinter, config Config, log logrus.FieldLogger) error {
	state := newInterpreterState(absPath, source, p, config, log)
	err := state.run()
	state.PrintErrors()
	return err
}

// PrintTokens scans source and prints its tokens
func PrintTokens(source string, p IPrinter) error {
	config := DefaultConfig()
	config.Color = false
	log := logrus.New()
	log.SetOutput(io.Discard)
	state := newInterpreterState("", source, p, config, log)
	if err := state.scan(); err != nil {
		state.PrintErrors()
		return err
	}
	state.PrintTokens()
	return nil
}

// PrintTree scans and parses source and prints its syntax tree
func PrintTree(source string, p IPrinter) error {
	config := DefaultConfig()
	config.Color = false
	log := logrus.New()
	log.SetOutput(io.Discard)
	state := newInterpreterState("", source, p, config, log)
	if err := state.scan(); err != nil {
		state.PrintErrors()
		return err
	}
	if err := state.parse(); err != nil {
		state.PrintErrors()
		return err
	}
	state.PrintTree()
	return nil
}

// ExitCode maps the error returned by a run to a process exit code
func ExitCode(err error) int {
	var scanErrs ScanErrors
	var syntaxErr *SyntaxError
	var runtimeErr *RuntimeError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &scanErrs), errors.As(err, &syntaxErr):
		return ExitDataErr
	case errors.As(err, &runtimeErr):
		return ExitSoftwareErr
	}
	return ExitSoftwareErr
}

func (s *interpreterState) run() error {
	s.log.WithFields(logrus.Fields{
		"source": s.absPath,
		"size":   bytes.Format(int64(len(s.source))),
	}).Debug("Running source")

	if err := s.scan(); err != nil {
		return err
	}
	if s.config.DumpTokens {
		s.PrintTokens()
	}

	if err := s.parse(); err != nil {
		return err
	}
	if s.config.DumpAST {
		s.PrintTree()
	}

	return s.interpret()
}

func (s *interpreterState) scan() error {
	tokens, err := scan(s.source)
	if err != nil {
		s.setError(stageScan, err)
		return err
	}
	s.tokens = tokens
	s.log.WithFields(logrus.Fields{
		"stage":  string(stageScan),
		"tokens": len(tokens),
	}).Debug("Scanned source")
	return nil
}

func (s *interpreterState) parse() error {
	p := newParser(s.tokens, s.config.MaxDepth)
	if s.config.CollectSyntaxErrors {
		stmts, errs := p.parseAll()
		for _, err := range errs {
			s.setError(stageParse, err)
		}
		if len(errs) > 0 {
			return errs[0]
		}
		s.stmts = stmts
	} else {
		stmts, err := p.parse()
		if err != nil {
			s.setError(stageParse, err)
			return err
		}
		s.stmts = stmts
	}
	s.log.WithFields(logrus.Fields{
		"stage":      string(stageParse),
		"statements": len(s.stmts),
	}).Debug("Parsed tokens")
	return nil
}

func (s *interpreterState) interpret() error {
	if err := newExec(s.printer).interpret(s.stmts); err != nil {
		s.setError(stageRuntime, err)
		return err
	}
	s.log.WithField("stage", string(stageRuntime)).Debug("Program finished")
	return nil
}
