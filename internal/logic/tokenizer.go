package logic

// Tokenizer splits an expression into tokens, one per non-space character.
type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Next returns the next token and its byte offset. ok is false once the input
// is exhausted.
func (t *Tokenizer) Next() (tok Token, pos int, ok bool, err error) {
	t.skipSpaces()
	if t.pos >= len(t.input) {
		return Token{}, t.pos, false, nil
	}

	pos = t.pos
	ch := t.input[t.pos]
	t.pos++

	if isLetter(ch) {
		return Variable(ch), pos, true, nil
	}

	switch ch {
	case '!':
		return Op(NOT), pos, true, nil
	case '&':
		return Op(AND), pos, true, nil
	case '|':
		return Op(OR), pos, true, nil
	case '^':
		return Op(XOR), pos, true, nil
	case '=':
		return Op(EQUIV), pos, true, nil
	case '@':
		return Op(IMPL), pos, true, nil
	case '(':
		return Op(LPAREN), pos, true, nil
	case ')':
		return Op(RPAREN), pos, true, nil
	default:
		return Token{}, pos, false, &Error{Kind: ErrInvalidCharacter, Pos: pos, Char: ch}
	}
}

func (t *Tokenizer) skipSpaces() {
	for t.pos < len(t.input) && t.input[t.pos] == ' ' {
		t.pos++
	}
}

// Tokenize maps every non-space character of input to a token.
// Example: `!A & (B | C)` -> NOT A AND LPAREN B OR C RPAREN
func Tokenize(input string) ([]Token, error) {
	t := NewTokenizer(input)

	var tokens []Token
	for {
		tok, _, ok, err := t.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}
