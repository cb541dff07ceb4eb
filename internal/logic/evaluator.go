package logic

import "fmt"

// Valuation supplies the value of each variable letter.
type Valuation interface {
	Value(letter byte) (value bool, ok bool)
}

// MapValuation is a Valuation backed by a map.
type MapValuation map[byte]bool

func (m MapValuation) Value(letter byte) (bool, bool) {
	v, ok := m[letter]
	return v, ok
}

// Evaluate runs the postfix sequence of expr against v.
func Evaluate(expr Expression, v Valuation) (bool, error) {
	stack := make([]bool, 0, len(expr.tokens))

	for i, tok := range expr.tokens {
		if tok.Kind == VariableToken {
			val, ok := v.Value(tok.Letter)
			if !ok {
				return false, &Error{Kind: ErrUndefinedVariable, Pos: -1, Char: tok.Letter}
			}
			stack = append(stack, val != tok.Inverted)
			continue
		}

		if !tok.Op.isBinary() {
			return false, newEvalError(ErrUnexpectedToken, fmt.Sprintf("%s at index %d", tok.Op, i))
		}
		if len(stack) < 2 {
			return false, newEvalError(ErrStackUnderflow, fmt.Sprintf("%s at index %d needs two operands, have %d", tok.Op, i, len(stack)))
		}

		// right operand is on top
		right, left := stack[len(stack)-1], stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, apply(tok.Op, left, right))
	}

	if len(stack) != 1 {
		return false, newEvalError(ErrMalformedExpression, fmt.Sprintf("%d values left on the stack", len(stack)))
	}
	return stack[0], nil
}

func apply(op Operator, left, right bool) bool {
	switch op {
	case AND:
		return left && right
	case OR:
		return left || right
	case XOR:
		return left != right
	case EQUIV:
		return left == right
	case IMPL:
		return !left || right
	default:
		panic("logic: apply called with non-binary operator " + op.String())
	}
}
