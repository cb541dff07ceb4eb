package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/truth-table/internal/api/dto"
	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
	"github.com/DjordjeVuckovic/truth-table/internal/domain"
	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/DjordjeVuckovic/truth-table/internal/storage"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
	"github.com/DjordjeVuckovic/truth-table/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const DefaultMaxVariables = 16

type TruthTableRouter struct {
	e            *echo.Echo
	store        storage.Store
	maxVariables int
}

type TruthTableRouterOption func(*TruthTableRouter)

// WithMaxVariables bounds the number of distinct variables, and so the
// 2^n rows, a single request may ask for.
func WithMaxVariables(n int) TruthTableRouterOption {
	return func(r *TruthTableRouter) {
		if n > 0 && n <= truthtable.MaxVariables {
			r.maxVariables = n
		}
	}
}

func NewTruthTableRouter(e *echo.Echo, store storage.Store, opts ...TruthTableRouterOption) *TruthTableRouter {
	r := &TruthTableRouter{
		e:            e,
		store:        store,
		maxVariables: DefaultMaxVariables,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TruthTableRouter) Bind() {
	r.e.POST("/compile", r.compileHandler)
	r.e.POST("/truth-tables", r.createHandler)
	r.e.GET("/truth-tables", r.listHandler)
	r.e.GET("/truth-tables/:id", r.getHandler)
}

// compileHandler godoc
// @Summary Compile an expression
// @Description Converts an infix expression to postfix notation and lists its variables
// @Tags expressions
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.CompileResponse
// @Failure 400 {object} map[string]string
// @Router /compile [post]
func (r *TruthTableRouter) compileHandler(c echo.Context) error {
	text, err := bindExpression(c)
	if err != nil {
		return err
	}

	expr, err := logic.Compile(text)
	if err != nil {
		return expressionError(err)
	}

	return c.JSON(http.StatusOK, dto.NewCompileResponse(text, expr))
}

// createHandler godoc
// @Summary Build a truth table
// @Description Evaluates the expression over every assignment, derives PDNF and PCNF and stores the result
// @Tags truth-tables
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 201 {object} dto.EvaluationResponse
// @Failure 400 {object} map[string]string
// @Router /truth-tables [post]
func (r *TruthTableRouter) createHandler(c echo.Context) error {
	text, err := bindExpression(c)
	if err != nil {
		return err
	}

	expr, err := logic.Compile(text)
	if err != nil {
		return expressionError(err)
	}

	if n := len(expr.Variables()); n > r.maxVariables {
		ve := apperr.NewValidation(fmt.Sprintf("expression has %d variables, at most %d are allowed", n, r.maxVariables))
		ve.Kind = "TooManyVariables"
		return ve
	}

	table, err := truthtable.EvaluateAll(expr)
	if err != nil {
		return expressionError(err)
	}

	evaluation := domain.Evaluation{
		Expression: text,
		Postfix:    expr.String(),
		Variables:  table.Header,
		Table:      *table,
	}

	id, err := r.store.Save(c.Request().Context(), evaluation)
	if err != nil {
		return fmt.Errorf("failed to save evaluation: %w", err)
	}

	saved, err := r.store.Get(c.Request().Context(), id)
	if err != nil {
		return fmt.Errorf("failed to load saved evaluation: %w", err)
	}

	slog.Info("Truth table built", "id", id, "variables", len(table.Header), "vector", table.VectorString())
	return c.JSON(http.StatusCreated, dto.NewEvaluationResponse(*saved))
}

// getHandler godoc
// @Summary Get a stored truth table
// @Tags truth-tables
// @Produce json
// @Param id path string true "Evaluation ID"
// @Success 200 {object} dto.EvaluationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /truth-tables/{id} [get]
func (r *TruthTableRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid evaluation id", err)
	}

	e, err := r.store.Get(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFound("evaluation", id.String())
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewEvaluationResponse(*e))
}

// listHandler godoc
// @Summary List stored truth tables
// @Description Newest first
// @Tags truth-tables
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} pagination.OffsetResult[domain.Evaluation]
// @Router /truth-tables [get]
func (r *TruthTableRouter) listHandler(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := c.Bind(&page); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	if err := page.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}

	res, err := r.store.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func bindExpression(c echo.Context) (string, error) {
	var req dto.ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return "", apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Expression) == "" {
		return "", apperr.NewValidation("expression is required")
	}
	return req.Expression, nil
}

func expressionError(err error) error {
	if kind, ok := logic.KindOf(err); ok {
		return apperr.NewExpressionError(kind.Name(), err)
	}
	return err
}
