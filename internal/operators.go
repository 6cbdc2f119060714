package internal

import "math"

type unaryOperator string

const (
	opNeg unaryOperator = "-"
	opNot unaryOperator = "!"
)

type binaryOperator string

const (
	opEq  binaryOperator = "=="
	opNeq binaryOperator = "!="
	opLt  binaryOperator = "<"
	opLte binaryOperator = "<="
	opGt  binaryOperator = ">"
	opGte binaryOperator = ">="
	opAdd binaryOperator = "+"
	opSub binaryOperator = "-"
	opMul binaryOperator = "*"
	opDiv binaryOperator = "/"
)

// unaryOp is an operator tagged with its position in the source
type unaryOp struct {
	kind   unaryOperator
	line   int
	column int
}

type binaryOp struct {
	kind   binaryOperator
	line   int
	column int
}

var unaryOperators = map[tokenType]unaryOperator{
	tkMinus: opNeg,
	tkBang:  opNot,
}

var binaryOperators = map[tokenType]binaryOperator{
	tkEqualEqual:   opEq,
	tkBangEqual:    opNeq,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkStar:         opMul,
	tkSlash:        opDiv,
}

// epsilon is the float64 machine epsilon, numbers closer than this are equal
const epsilon = 2.220446049250313e-16

var numberOperations = map[binaryOperator]func(x, y aprnNumber) (value, error){
	opAdd: func(x, y aprnNumber) (value, error) {
		return x + y, nil
	},
	opSub: func(x, y aprnNumber) (value, error) {
		return x - y, nil
	},
	opMul: func(x, y aprnNumber) (value, error) {
		return x * y, nil
	},
	opDiv: func(x, y aprnNumber) (value, error) {
		if y == 0 {
			return nil, errDivisionByZero
		}
		return x / y, nil
	},
	opLt: func(x, y aprnNumber) (value, error) {
		return aprnBool(x < y), nil
	},
	opLte: func(x, y aprnNumber) (value, error) {
		return aprnBool(x <= y), nil
	},
	opGt: func(x, y aprnNumber) (value, error) {
		return aprnBool(x > y), nil
	},
	opGte: func(x, y aprnNumber) (value, error) {
		return aprnBool(x >= y), nil
	},
}

var stringOperations = map[binaryOperator]func(x, y aprnString) (value, error){
	opAdd: func(x, y aprnString) (value, error) {
		return x + y, nil
	},
}

// applyBinary dispatches on the operator and both operand types. Addition
// of anything but two numbers or two strings is a type mismatch, so is a
// numeric operator over operands of different types. Same typed operands
// with no operation defined are undefined.
func applyBinary(op binaryOperator, left, right value) (value, error) {
	switch op {
	case opEq:
		return aprnBool(equals(left, right)), nil
	case opNeq:
		return aprnBool(!equals(left, right)), nil
	}

	switch x := left.(type) {
	case aprnNumber:
		if y, ok := right.(aprnNumber); ok {
			if apply, ok := numberOperations[op]; ok {
				return apply(x, y)
			}
		}
	case aprnString:
		if y, ok := right.(aprnString); ok {
			if apply, ok := stringOperations[op]; ok {
				return apply(x, y)
			}
		}
	}

	if op == opAdd {
		return nil, errMismatchedTypes
	}
	if _, numeric := numberOperations[op]; numeric && left.typeName() != right.typeName() {
		return nil, errMismatchedTypes
	}
	return nil, errUndefinedOp
}

func applyUnary(op unaryOperator, operand value) (value, error) {
	switch op {
	case opNeg:
		n, ok := operand.(aprnNumber)
		if !ok {
			return nil, errNotANumber
		}
		return -n, nil
	case opNot:
		b, ok := operand.(aprnBool)
		if !ok {
			return nil, errNotABoolean
		}
		return !b, nil
	}
	return nil, errUndefinedOp
}

func equals(left, right value) bool {
	switch x := left.(type) {
	case aprnNumber:
		y, ok := right.(aprnNumber)
		return ok && math.Abs(float64(x-y)) < epsilon
	case aprnString:
		y, ok := right.(aprnString)
		return ok && x == y
	case aprnBool:
		y, ok := right.(aprnBool)
		return ok && x == y
	case aprnNull:
		_, ok := right.(aprnNull)
		return ok
	}
	return false
}
