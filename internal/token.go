package internal

import "fmt"

// tokenType Holds a token kind
type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), [, ], {, }, ',', ., -, +, ;, /, *
	tkLeftParen
	tkRightParen
	tkLeftBracket
	tkRightBracket
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar

	// One or two character tokens.
	// !, !=, =, ==, >, >=, <, <=
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, string, int, float
	tkIdentifier
	tkString
	tkInt
	tkFloat

	// Keywords.
	// and, class, else, false, for, func, if, null, or,
	// print, return, this, true, var, while
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFor
	tkFunc
	tkIf
	tkNull
	tkOr
	tkPrint
	tkReturn
	tkThis
	tkTrue
	tkVar
	tkWhile
)

var tokenNames = map[tokenType]string{
	tkEOF:          "EOF",
	tkLeftParen:    "LeftParen",
	tkRightParen:   "RightParen",
	tkLeftBracket:  "LeftBracket",
	tkRightBracket: "RightBracket",
	tkLeftBrace:    "LeftBrace",
	tkRightBrace:   "RightBrace",
	tkComma:        "Comma",
	tkDot:          "Dot",
	tkMinus:        "Minus",
	tkPlus:         "Plus",
	tkSemicolon:    "Semicolon",
	tkSlash:        "Slash",
	tkStar:         "Star",
	tkBang:         "Bang",
	tkBangEqual:    "BangEqual",
	tkEqual:        "Equal",
	tkEqualEqual:   "EqualEqual",
	tkGreater:      "Greater",
	tkGreaterEqual: "GreaterEqual",
	tkLess:         "Less",
	tkLessEqual:    "LessEqual",
	tkIdentifier:   "Identifier",
	tkString:       "String",
	tkInt:          "Int",
	tkFloat:        "Float",
	tkAnd:          "And",
	tkClass:        "Class",
	tkElse:         "Else",
	tkFalse:        "False",
	tkFor:          "For",
	tkFunc:         "Func",
	tkIf:           "If",
	tkNull:         "Null",
	tkOr:           "Or",
	tkPrint:        "Print",
	tkReturn:       "Return",
	tkThis:         "This",
	tkTrue:         "True",
	tkVar:          "Var",
	tkWhile:        "While",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tokenType(%d)", int(t))
}

// literal is the value the lexer attaches to identifier, string and number tokens
type literal interface {
	fmt.Stringer
	isLiteral()
}

type identifierLiteral string

type stringLiteral string

type intLiteral uint64

type floatLiteral float64

func (identifierLiteral) isLiteral() {}
func (stringLiteral) isLiteral()     {}
func (intLiteral) isLiteral()        {}
func (floatLiteral) isLiteral()      {}

func (l identifierLiteral) String() string {
	return fmt.Sprintf("Identifier(%s)", string(l))
}

func (l stringLiteral) String() string {
	return fmt.Sprintf("String(%q)", string(l))
}

func (l intLiteral) String() string {
	return fmt.Sprintf("Int(%d)", uint64(l))
}

func (l floatLiteral) String() string {
	return fmt.Sprintf("Float(%v)", float64(l))
}

type token struct {
	token   tokenType
	lexeme  string
	literal literal
	line    int
	column  int
}

func (t token) String() string {
	lit := "None"
	if t.literal != nil {
		lit = t.literal.String()
	}
	return fmt.Sprintf(
		"Token {type: %s, lexeme: %q, literal: %s, line: %d, col: %d}",
		t.token, t.lexeme, lit, t.line, t.column,
	)
}
