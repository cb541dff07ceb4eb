package truthtable

import (
	"slices"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
)

// Assignment maps each variable of an expression to a value. Letters are kept
// in ascending order; the last letter is the least significant one.
// An Assignment is owned by a single enumeration and is not safe for
// concurrent use.
type Assignment struct {
	letters []byte
	values  []bool
}

// NewAssignment collects the variables of expr with every value false.
func NewAssignment(expr logic.Expression) *Assignment {
	letters := expr.Variables()
	return &Assignment{
		letters: letters,
		values:  make([]bool, len(letters)),
	}
}

func (a *Assignment) Len() int {
	return len(a.letters)
}

func (a *Assignment) Letters() []byte {
	return slices.Clone(a.letters)
}

// Values returns a snapshot of the current values in letter order.
func (a *Assignment) Values() []bool {
	return slices.Clone(a.values)
}

// Value implements logic.Valuation.
func (a *Assignment) Value(letter byte) (bool, bool) {
	i, ok := slices.BinarySearch(a.letters, letter)
	if !ok {
		return false, false
	}
	return a.values[i], true
}

// Advance moves to the next assignment by binary increment: the last false
// value becomes true and every true value after it resets to false.
// It reports false when the increment overflowed back to all false.
func (a *Assignment) Advance() bool {
	for i := len(a.values) - 1; i >= 0; i-- {
		if !a.values[i] {
			a.values[i] = true
			return true
		}
		a.values[i] = false
	}
	return false
}
