package logic

type TokenKind int

const (
	VariableToken TokenKind = iota
	OperatorToken
)

func (k TokenKind) String() string {
	switch k {
	case VariableToken:
		return "VARIABLE"
	case OperatorToken:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

type Operator int

const (
	AND Operator = iota
	OR
	NOT
	XOR
	EQUIV
	IMPL
	LPAREN
	RPAREN
)

func (o Operator) String() string {
	switch o {
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	case XOR:
		return "XOR"
	case EQUIV:
		return "EQUIV"
	case IMPL:
		return "IMPL"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the character the operator is written with.
func (o Operator) Symbol() byte {
	switch o {
	case AND:
		return '&'
	case OR:
		return '|'
	case NOT:
		return '!'
	case XOR:
		return '^'
	case EQUIV:
		return '='
	case IMPL:
		return '@'
	case LPAREN:
		return '('
	case RPAREN:
		return ')'
	default:
		return '?'
	}
}

// precedence returns the binding strength of an operator, higher binds tighter.
// Parentheses never compete on precedence and return 0.
func (o Operator) precedence() int {
	switch o {
	case NOT:
		return 5
	case AND:
		return 4
	case OR, XOR:
		return 3
	case IMPL:
		return 2
	case EQUIV:
		return 1
	default:
		return 0
	}
}

func (o Operator) isBinary() bool {
	switch o {
	case AND, OR, XOR, EQUIV, IMPL:
		return true
	default:
		return false
	}
}

// Token is either a variable occurrence or an operator.
// Letter and Inverted are meaningful for variables only, Op for operators only.
type Token struct {
	Kind     TokenKind
	Letter   byte
	Inverted bool
	Op       Operator
}

func Variable(letter byte) Token {
	return Token{Kind: VariableToken, Letter: letter}
}

func Op(op Operator) Token {
	return Token{Kind: OperatorToken, Op: op}
}

func (t Token) String() string {
	if t.Kind == VariableToken {
		if t.Inverted {
			return "!" + string(t.Letter)
		}
		return string(t.Letter)
	}
	return string(t.Op.Symbol())
}
