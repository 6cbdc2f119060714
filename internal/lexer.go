package internal

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

type lexer struct {
	source  string
	start   int
	current int
	line    int
	column  int

	startLine   int
	startColumn int

	tokens []token
	errors ScanErrors
}

var keywords = map[string]tokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"for":    tkFor,
	"func":   tkFunc,
	"if":     tkIf,
	"null":   tkNull,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

func newLexer(source string) *lexer {
	return &lexer{
		source: source,
		line:   1,
	}
}

// scan converts source into tokens, the last one is always EOF.
// Scanning continues past invalid characters so that every one of them is
// reported in the returned ScanErrors.
func scan(source string) ([]token, error) {
	return newLexer(source).scan()
}

func (l *lexer) scan() ([]token, error) {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLine = l.line
		l.startColumn = l.column + 1
		l.scanToken()
	}

	l.tokens = append(l.tokens, token{
		token:  tkEOF,
		lexeme: "",
		line:   l.line,
		column: l.column + 1,
	})

	if len(l.errors) > 0 {
		return nil, l.errors
	}
	return l.tokens, nil
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case '{':
		l.emit(tkLeftBrace, nil)
	case '}':
		l.emit(tkRightBrace, nil)
	case '[':
		l.emit(tkLeftBracket, nil)
	case ']':
		l.emit(tkRightBracket, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case '-':
		l.emit(tkMinus, nil)
	case '+':
		l.emit(tkPlus, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case '*':
		l.emit(tkStar, nil)
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.emit(tkSlash, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, nil)
		} else {
			l.emit(tkBang, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tkEqualEqual, nil)
		} else {
			l.emit(tkEqual, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tkLessEqual, nil)
		} else {
			l.emit(tkLess, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tkGreaterEqual, nil)
		} else {
			l.emit(tkGreater, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	// advance already moved to the next line
	case '\n':

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.illegal()
		}
	}
}

func (l *lexer) string() {
	valid := true
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\\' {
			l.setError(errEscapeUnsupported, '\\', l.line, l.column+1)
			valid = false
			// Skip the escaped character so \" does not close the string
			l.advance()
			if l.isAtEnd() {
				break
			}
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.setError(errUnclosedString, '"', l.startLine, l.startColumn)
		return
	}

	// Consume ending "
	l.advance()

	if valid {
		l.emit(tkString, stringLiteral(l.source[l.start+1:l.current-1]))
	}
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		// Consume the "."
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}

		text := l.source[l.start:l.current]
		value, err := strconv.ParseFloat(text, 64)
		if errors.Is(err, strconv.ErrRange) {
			l.setError(errNumberRange, 0, l.startLine, l.startColumn)
			return
		}
		if err != nil {
			panic(fmt.Sprintf("lexer: float literal %q: %v", text, err))
		}
		l.emit(tkFloat, floatLiteral(value))
		return
	}

	value, err := strconv.ParseUint(l.source[l.start:l.current], 10, 64)
	if err != nil {
		l.setError(errNumberRange, 0, l.startLine, l.startColumn)
		return
	}
	l.emit(tkInt, intLiteral(value))
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		l.emit(tkIdentifier, identifierLiteral(identifier))
		return
	}

	l.emit(tokenType, nil)
}

// illegal reports the character starting at l.start and skips the rest of
// its encoding
func (l *lexer) illegal() {
	r, size := utf8.DecodeRuneInString(l.source[l.start:])
	for i := 1; i < size; i++ {
		l.advance()
	}
	l.setError(errIllegalChar, r, l.startLine, l.startColumn)
}

// advance moves one byte forward. Columns count characters, so UTF-8
// continuation bytes leave the column unchanged.
func (l *lexer) advance() byte {
	current := l.source[l.current]
	l.current++
	if current == '\n' {
		l.line++
		l.column = 0
	} else if !isContinuation(current) {
		l.column++
	}
	return current
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.advance()
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *lexer) emit(tk tokenType, lit literal) {
	l.tokens = append(l.tokens, token{
		token:   tk,
		lexeme:  l.source[l.start:l.current],
		literal: lit,
		line:    l.startLine,
		column:  l.startColumn,
	})
}

func (l *lexer) setError(err error, c rune, line, column int) {
	l.errors = append(l.errors, &ScanError{
		Err:    err,
		Char:   c,
		Line:   line,
		Column: column,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
