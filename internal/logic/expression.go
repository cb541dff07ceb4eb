package logic

import (
	"slices"
	"strings"
)

// Expression is a compiled expression: its tokens in postfix order.
// The zero value is an empty expression.
type Expression struct {
	tokens []Token
}

// NewExpression builds an expression from an already ordered postfix sequence.
// Compile is the usual way to obtain one; this is meant for callers that
// persist postfix sequences or construct them directly.
func NewExpression(postfix []Token) Expression {
	return Expression{tokens: slices.Clone(postfix)}
}

func (e Expression) Tokens() []Token {
	return slices.Clone(e.tokens)
}

func (e Expression) Len() int {
	return len(e.tokens)
}

// Variables returns the distinct variable letters in ascending byte order,
// so 'A' < 'Z' < 'a' < 'z'.
func (e Expression) Variables() []byte {
	seen := make(map[byte]struct{})
	var letters []byte
	for _, tok := range e.tokens {
		if tok.Kind != VariableToken {
			continue
		}
		if _, ok := seen[tok.Letter]; ok {
			continue
		}
		seen[tok.Letter] = struct{}{}
		letters = append(letters, tok.Letter)
	}
	slices.Sort(letters)
	return letters
}

// String renders the postfix sequence, e.g. "A !B &".
func (e Expression) String() string {
	parts := make([]string, len(e.tokens))
	for i, tok := range e.tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}
