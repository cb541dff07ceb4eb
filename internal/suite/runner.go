package suite

import (
	"errors"
	"fmt"
	"slices"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

type CaseResult struct {
	ID         string   `json:"id"`
	Expression string   `json:"expression"`
	Postfix    string   `json:"postfix,omitempty"`
	Vector     string   `json:"vector,omitempty"`
	Error      string   `json:"error,omitempty"`
	Failures   []string `json:"failures,omitempty"`
}

func (r CaseResult) Passed() bool {
	return len(r.Failures) == 0
}

type Result struct {
	Suite  string       `json:"suite"`
	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
}

// Run evaluates every case in order and compares it with its expectations.
func Run(s *TestSuite) *Result {
	res := &Result{Suite: s.Name, Cases: make([]CaseResult, 0, len(s.Cases))}

	for _, c := range s.Cases {
		cr := runCase(c)
		if cr.Passed() {
			res.Passed++
		} else {
			res.Failed++
		}
		res.Cases = append(res.Cases, cr)
	}

	return res
}

func runCase(c Case) CaseResult {
	cr := CaseResult{ID: c.ID, Expression: c.Expression}

	expr, table, err := truthtable.Evaluate(c.Expression)
	if expr.Len() > 0 {
		cr.Postfix = expr.String()
	}
	if err != nil {
		cr.Error = err.Error()
		cr.Failures = checkError(c, err)
		return cr
	}

	cr.Vector = table.VectorString()
	if c.Error != "" {
		cr.Failures = append(cr.Failures, fmt.Sprintf("expected error %s, got vector %s", c.Error, cr.Vector))
		return cr
	}
	if len(c.Variables) > 0 && !slices.Equal(c.Variables, table.Header) {
		cr.Failures = append(cr.Failures, fmt.Sprintf("variables: expected %v, got %v", c.Variables, table.Header))
	}
	if c.Vector != "" && c.Vector != cr.Vector {
		cr.Failures = append(cr.Failures, fmt.Sprintf("vector: expected %s, got %s", c.Vector, cr.Vector))
	}
	if c.PDNF != nil && *c.PDNF != table.PDNF {
		cr.Failures = append(cr.Failures, fmt.Sprintf("pdnf: expected %q, got %q", *c.PDNF, table.PDNF))
	}
	if c.PCNF != nil && *c.PCNF != table.PCNF {
		cr.Failures = append(cr.Failures, fmt.Sprintf("pcnf: expected %q, got %q", *c.PCNF, table.PCNF))
	}
	return cr
}

func checkError(c Case, err error) []string {
	if c.Error == "" {
		return []string{"unexpected error: " + err.Error()}
	}
	want, _ := logic.ParseErrorKind(c.Error)
	if !errors.Is(err, want) {
		return []string{fmt.Sprintf("expected error %s, got %v", c.Error, err)}
	}
	return nil
}
