package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShippedSuitesPass(t *testing.T) {
	s, err := LoadFromFile("../../configs/suites/basics.yaml")
	require.NoError(t, err)

	res := Run(s)
	for _, c := range res.Cases {
		assert.True(t, c.Passed(), "case %s: %v", c.ID, c.Failures)
	}
	assert.Equal(t, len(s.Cases), res.Passed)
	assert.Zero(t, res.Failed)
}

func TestRun_ReportsFailures(t *testing.T) {
	pdnf := "(A)"
	s := &TestSuite{
		Name: "failing",
		Cases: []Case{
			{ID: "wrong-vector", Expression: "A&B", Vector: "0111"},
			{ID: "wrong-pdnf", Expression: "A|B", PDNF: &pdnf},
			{ID: "wrong-variables", Expression: "A|b", Variables: []string{"b", "A"}},
			{ID: "unexpected-error", Expression: "A&"},
			{ID: "missing-error", Expression: "A", Error: "InvalidExpression"},
			{ID: "wrong-error", Expression: "(A", Error: "UnexpectedNot"},
			{ID: "ok", Expression: "A^A", Vector: "00"},
		},
	}

	res := Run(s)
	assert.Equal(t, 1, res.Passed)
	assert.Equal(t, 6, res.Failed)

	byID := make(map[string]CaseResult)
	for _, c := range res.Cases {
		byID[c.ID] = c
	}
	assert.Contains(t, byID["wrong-vector"].Failures[0], "vector: expected 0111, got 0001")
	assert.Contains(t, byID["unexpected-error"].Failures[0], "unexpected error")
	assert.Equal(t, "A A ^", byID["ok"].Postfix)
	assert.Equal(t, "00", byID["ok"].Vector)
}

func TestRun_OversizedExpressionIsAnError(t *testing.T) {
	s := &TestSuite{
		Name: "limits",
		Cases: []Case{
			{ID: "every-letter", Expression: "A&B&C&D&E&F&G&H&I&J&K&L&M&N&O&P&Q&R&S&T&U&V&W&X&Y&Z&a&b&c&d&e&f&g&h&i&j&k&l&m&n&o&p&q&r&s&t&u&v&w&x&y&z", Error: "InvalidExpression"},
		},
	}

	res := Run(s)
	require.Len(t, res.Cases, 1)
	assert.True(t, res.Cases[0].Passed(), "%v", res.Cases[0].Failures)
	assert.Contains(t, res.Cases[0].Error, "exceed the limit")
}
