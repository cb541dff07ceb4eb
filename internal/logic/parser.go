package logic

type stackedOp struct {
	op  Operator
	pos int
}

// parser converts the infix token stream into postfix order.
// A NOT is folded into the variable it precedes rather than emitted as an
// operator, so it may only negate a single variable.
type parser struct {
	out []Token
	ops []stackedOp

	consumed    int
	mayNot      bool
	mayOperator bool
	negate      bool
}

// Compile tokenizes and parses text into a postfix Expression.
// Empty or all-space input compiles to an empty Expression.
func Compile(text string) (Expression, error) {
	p := &parser{mayNot: true}
	t := NewTokenizer(text)

	for {
		tok, pos, ok, err := t.Next()
		if err != nil {
			return Expression{}, err
		}
		if !ok {
			break
		}
		if err := p.consume(tok, pos); err != nil {
			return Expression{}, err
		}
	}

	if err := p.finish(len(text)); err != nil {
		return Expression{}, err
	}
	return Expression{tokens: p.out}, nil
}

func (p *parser) consume(tok Token, pos int) error {
	p.consumed++

	if tok.Kind == VariableToken {
		tok.Inverted = p.negate
		p.out = append(p.out, tok)
		p.negate = false
		p.mayNot = false
		p.mayOperator = true
		return nil
	}

	switch tok.Op {
	case NOT:
		if !p.mayNot {
			return newError(ErrUnexpectedNot, pos)
		}
		p.negate = !p.negate
	case LPAREN:
		if p.negate {
			return newError(ErrUnsupportedNegatedGroup, pos)
		}
		p.ops = append(p.ops, stackedOp{op: LPAREN, pos: pos})
		p.mayOperator = false
		p.mayNot = true
	case RPAREN:
		if !p.mayOperator {
			return &Error{Kind: ErrInvalidExpression, Pos: pos, Detail: "expected an operand before ')'"}
		}
		if !p.popUntilGroupStart() {
			return newError(ErrUnmatchedParenthesis, pos)
		}
		p.mayOperator = true
		p.mayNot = false
	default:
		if !p.mayOperator {
			return &Error{Kind: ErrInvalidExpression, Pos: pos, Detail: "expected an operand before " + string(tok.Op.Symbol())}
		}
		for len(p.ops) > 0 && p.top().precedence() >= tok.Op.precedence() {
			p.out = append(p.out, Op(p.pop().op))
		}
		p.ops = append(p.ops, stackedOp{op: tok.Op, pos: pos})
		p.mayOperator = false
		p.mayNot = true
	}

	return nil
}

func (p *parser) finish(end int) error {
	for len(p.ops) > 0 {
		s := p.pop()
		if s.op == LPAREN {
			return newError(ErrUnmatchedParenthesis, s.pos)
		}
		p.out = append(p.out, Op(s.op))
	}

	if p.consumed > 0 && !p.mayOperator {
		return &Error{Kind: ErrInvalidExpression, Pos: end, Detail: "expression ends without an operand"}
	}
	return nil
}

// popUntilGroupStart moves operators to the output until the matching '(' is
// discarded. It reports false if no '(' is on the stack.
func (p *parser) popUntilGroupStart() bool {
	for len(p.ops) > 0 {
		s := p.pop()
		if s.op == LPAREN {
			return true
		}
		p.out = append(p.out, Op(s.op))
	}
	return false
}

func (p *parser) top() Operator {
	return p.ops[len(p.ops)-1].op
}

func (p *parser) pop() stackedOp {
	s := p.ops[len(p.ops)-1]
	p.ops = p.ops[:len(p.ops)-1]
	return s
}
