package truthtable

import (
	"testing"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignment_Advance(t *testing.T) {
	expr, err := logic.Compile("B & A | C")
	require.NoError(t, err)

	a := NewAssignment(expr)
	assert.Equal(t, []byte{'A', 'B', 'C'}, a.Letters())

	var seen [][]bool
	seen = append(seen, a.Values())
	for i := 0; i < 7; i++ {
		require.True(t, a.Advance())
		seen = append(seen, a.Values())
	}

	expected := [][]bool{
		{false, false, false},
		{false, false, true},
		{false, true, false},
		{false, true, true},
		{true, false, false},
		{true, false, true},
		{true, true, false},
		{true, true, true},
	}
	assert.Equal(t, expected, seen)

	assert.False(t, a.Advance(), "overflow after the last assignment")
	assert.Equal(t, []bool{false, false, false}, a.Values())
}

func TestAssignment_Value(t *testing.T) {
	expr, err := logic.Compile("a & A")
	require.NoError(t, err)

	a := NewAssignment(expr)
	assert.Equal(t, []byte{'A', 'a'}, a.Letters())

	a.Advance()
	v, ok := a.Value('a')
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = a.Value('A')
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = a.Value('b')
	assert.False(t, ok)
}

func TestAssignment_ValuesIsSnapshot(t *testing.T) {
	expr, err := logic.Compile("A")
	require.NoError(t, err)

	a := NewAssignment(expr)
	snap := a.Values()
	a.Advance()
	assert.Equal(t, []bool{false}, snap)
	assert.Equal(t, []bool{true}, a.Values())
}
