package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

//go:generate sh -c "go run . Expr > ../../internal/expr.go"
//go:generate sh -c "go run . Stmt > ../../internal/stmt.go"

var nodes = map[string][]string{
	"Stmt": {
		"Expr: expression expr",
		"Print: expression expr",
		"Var: name symbol, initializer expr",
	},
	"Expr": {
		"Literal: value value",
		"Unary: operator unaryOp, right expr",
		"Binary: left expr, operator binaryOp, right expr",
		"Grouping: expression expr",
		"Variable: name symbol",
		"Assign: name symbol, value expr",
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Expr|Stmt")
		os.Exit(64)
	}
	types, ok := nodes[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown node kind %q\n", os.Args[1])
		os.Exit(64)
	}
	out, err := format.Source([]byte(generateAst(os.Args[1], types)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + strings.ToLower(baseName) + " interface {\n"
	out += "\taccept(" + strings.ToLower(baseName) + "Visitor) (R, error)\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", strings.ToLower(baseName))
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + structType + ") (R, error)\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) (R, error) {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
