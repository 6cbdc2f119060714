package internal

import (
	"fmt"
	"strconv"
)

// value is anything an expression can evaluate to
type value interface {
	fmt.Stringer
	typeName() string
}

type aprnNumber float64

type aprnString string

type aprnBool bool

type aprnNull struct{}

// Representable object that can be represented as source code
type Representable interface {
	Repr() string
}

func (n aprnNumber) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (n aprnNumber) typeName() string {
	return "number"
}

func (s aprnString) String() string {
	return string(s)
}

func (s aprnString) Repr() string {
	return "\"" + string(s) + "\""
}

func (s aprnString) typeName() string {
	return "string"
}

func (b aprnBool) String() string {
	return fmt.Sprintf("%v", bool(b))
}

func (b aprnBool) typeName() string {
	return "bool"
}

func (aprnNull) String() string {
	return "null"
}

func (aprnNull) typeName() string {
	return "null"
}
