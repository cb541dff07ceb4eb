package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/truth-table/internal/suite"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

func TestWriteTable(t *testing.T) {
	expr, table, err := truthtable.Evaluate("A&B")
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteTable("A&B", expr, table, &buf)
	out := buf.String()

	assert.Contains(t, out, "A&B")
	assert.Contains(t, out, "A B &")
	assert.Contains(t, out, "A    B    Result")
	assert.Contains(t, out, "0    0    0")
	assert.Contains(t, out, "1    1    1")
	assert.Contains(t, out, "0001")
	assert.Contains(t, out, "(A & B)")
	assert.Contains(t, out, "(A | B) & (A | !B) & (!A | B)")
}

func TestWriteTable_EmptyNormalForm(t *testing.T) {
	expr, table, err := truthtable.Evaluate("A|!A")
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteTable("A|!A", expr, table, &buf)

	assert.Regexp(t, `PCNF:\s+-\n`, buf.String())
}

func TestWriteJSON(t *testing.T) {
	_, table, err := truthtable.Evaluate("A^B")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "table.json")
	require.NoError(t, WriteJSON(table, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got truthtable.Table
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *table, got)
}

func TestWriteJSON_BadPath(t *testing.T) {
	err := WriteJSON(map[string]int{"a": 1}, filepath.Join(t.TempDir(), "missing", "out.json"))
	assert.Error(t, err)
}

func TestWriteSuite(t *testing.T) {
	s := &suite.TestSuite{
		Name: "mixed",
		Cases: []suite.Case{
			{ID: "ok", Expression: "A&B", Vector: "0001"},
			{ID: "bad", Expression: "A|B", Vector: "0000"},
			{ID: "err", Expression: "A&&B", Error: "InvalidExpression"},
		},
	}
	res := suite.Run(s)

	var buf bytes.Buffer
	WriteSuite(res, &buf)
	out := buf.String()

	assert.Contains(t, out, "=== Suite: mixed ===")
	assert.Regexp(t, `ok\s+A&B\s+0001\s+PASS`, out)
	assert.Regexp(t, `bad\s+A\|B\s+0111\s+FAIL`, out)
	assert.Regexp(t, `err\s+A&&B\s+invalid expression.*PASS`, out)
	assert.Contains(t, out, "bad: vector: expected 0000, got 0111")
	assert.Contains(t, out, "Passed: 2, Failed: 1")
}
