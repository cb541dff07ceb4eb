package dto

import (
	"github.com/DjordjeVuckovic/truth-table/internal/domain"
	"github.com/DjordjeVuckovic/truth-table/internal/logic"
)

type ExpressionRequest struct {
	Expression string `json:"expression" example:"A@B"`
}

type CompileResponse struct {
	Expression string   `json:"expression" example:"A@B"`
	Postfix    string   `json:"postfix" example:"A B @"`
	Variables  []string `json:"variables"`
}

func NewCompileResponse(text string, expr logic.Expression) CompileResponse {
	return CompileResponse{
		Expression: text,
		Postfix:    expr.String(),
		Variables:  Letters(expr.Variables()),
	}
}

type EvaluationResponse struct {
	domain.Evaluation
	Vector string `json:"vector" example:"1101"`
}

func NewEvaluationResponse(e domain.Evaluation) EvaluationResponse {
	return EvaluationResponse{Evaluation: e, Vector: e.Vector()}
}

// Letters converts variable letters to one-character strings.
func Letters(letters []byte) []string {
	out := make([]string, len(letters))
	for i, l := range letters {
		out[i] = string(l)
	}
	return out
}
