package domain

import (
	"time"

	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
	"github.com/google/uuid"
)

// Evaluation is a stored truth table together with the expression it was built from.
type Evaluation struct {
	ID         uuid.UUID        `json:"id"`
	Expression string           `json:"expression"`
	Postfix    string           `json:"postfix"`
	Variables  []string         `json:"variables"`
	Table      truthtable.Table `json:"table"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// Vector is the function vector of the evaluation as a 0/1 string.
func (e *Evaluation) Vector() string {
	return e.Table.VectorString()
}
