package truthtable

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
)

// MaxVariables is the largest variable count EvaluateAll accepts. The table
// holds 2^n rows, so larger sets are rejected before anything is allocated.
const MaxVariables = 24

// Row is one assignment of the table. Values are aligned with Table.Header.
type Row struct {
	Values []bool `json:"values"`
	Result bool   `json:"result"`
}

// Table is the full truth table of an expression together with its normal forms.
type Table struct {
	Header         []string `json:"header"`
	Rows           []Row    `json:"rows"`
	FunctionVector []bool   `json:"function_vector"`
	PDNF           string   `json:"pdnf"`
	PCNF           string   `json:"pcnf"`
}

// EvaluateAll evaluates expr over every assignment of its variables, in
// enumeration order, and synthesizes the PDNF and PCNF.
func EvaluateAll(expr logic.Expression) (*Table, error) {
	a := NewAssignment(expr)
	n := a.Len()
	if n == 0 {
		return nil, &logic.Error{Kind: logic.ErrInvalidExpression, Pos: -1, Detail: "empty variable set"}
	}
	if n > MaxVariables {
		return nil, &logic.Error{Kind: logic.ErrInvalidExpression, Pos: -1, Detail: fmt.Sprintf("%d variables exceed the limit of %d", n, MaxVariables)}
	}

	letters := a.Letters()
	total := 1 << n

	t := &Table{
		Header: make([]string, n),
		Rows:   make([]Row, 0, total),
	}
	for i, l := range letters {
		t.Header[i] = string(l)
	}

	s := newSynthesizer(total)
	for i := 0; i < total; i++ {
		result, err := logic.Evaluate(expr, a)
		if err != nil {
			return nil, err
		}

		values := a.Values()
		t.Rows = append(t.Rows, Row{Values: values, Result: result})
		s.add(letters, values, result)

		a.Advance()
	}

	t.FunctionVector = s.vector
	t.PDNF = s.PDNF()
	t.PCNF = s.PCNF()
	return t, nil
}

// Evaluate compiles text and evaluates it.
func Evaluate(text string) (logic.Expression, *Table, error) {
	expr, err := logic.Compile(text)
	if err != nil {
		return logic.Expression{}, nil, err
	}
	t, err := EvaluateAll(expr)
	if err != nil {
		return expr, nil, err
	}
	return expr, t, nil
}

// VectorString renders the function vector as a string of 0 and 1, e.g. "0001".
func (t *Table) VectorString() string {
	return BitString(t.FunctionVector)
}

func (t *Table) IsTautology() bool {
	return t.PCNF == ""
}

func (t *Table) IsContradiction() bool {
	return t.PDNF == ""
}

func BitString(values []bool) string {
	var b strings.Builder
	b.Grow(len(values))
	for _, v := range values {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
