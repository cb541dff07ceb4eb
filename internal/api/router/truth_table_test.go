package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/truth-table/internal/api/dto"
	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
	"github.com/DjordjeVuckovic/truth-table/internal/domain"
	"github.com/DjordjeVuckovic/truth-table/internal/storage/inmem"
	"github.com/DjordjeVuckovic/truth-table/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(opts ...TruthTableRouterOption) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewTruthTableRouter(e, inmem.NewStore(), opts...).Bind()
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCompileHandler(t *testing.T) {
	e := newTestEcho()

	rec := do(e, http.MethodPost, "/compile", `{"expression":"A|B^!c"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.CompileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "A B | !c ^", res.Postfix)
	assert.Equal(t, []string{"A", "B", "c"}, res.Variables)
}

func TestCreateHandler(t *testing.T) {
	e := newTestEcho()

	rec := do(e, http.MethodPost, "/truth-tables", `{"expression":"A&B"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var res dto.EvaluationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, "0001", res.Vector)
	assert.Equal(t, []string{"A", "B"}, res.Table.Header)
	assert.Len(t, res.Table.Rows, 4)
	assert.Equal(t, "(A & B)", res.Table.PDNF)
	assert.Equal(t, "(A | B) & (A | !B) & (!A | B)", res.Table.PCNF)

	rec = do(e, http.MethodGet, "/truth-tables/"+res.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.EvaluationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, res.ID, got.ID)
	assert.Equal(t, "A B &", got.Postfix)
}

func TestCreateHandler_ExpressionErrors(t *testing.T) {
	tests := []struct {
		body string
		kind string
	}{
		{`{"expression":"A&&B"}`, "InvalidExpression"},
		{`{"expression":"!(A&B)"}`, "UnsupportedNegatedGroup"},
		{`{"expression":"(A&B"}`, "UnmatchedParenthesis"},
		{`{"expression":"A!B"}`, "UnexpectedNot"},
		{`{"expression":"A+B"}`, "InvalidCharacter"},
		{`{"expression":"AB"}`, "MalformedExpression"},
	}

	e := newTestEcho()
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/truth-tables", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.kind, decodeError(t, rec)["kind"])
		})
	}
}

func TestCreateHandler_RequestValidation(t *testing.T) {
	e := newTestEcho(WithMaxVariables(2))

	rec := do(e, http.MethodPost, "/truth-tables", `{"expression":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "expression is required", decodeError(t, rec)["error"])

	rec = do(e, http.MethodPost, "/truth-tables", `{"expression":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/truth-tables", `{"expression":"A&B&C"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "TooManyVariables", decodeError(t, rec)["kind"])
}

func TestGetHandler_Errors(t *testing.T) {
	e := newTestEcho()

	rec := do(e, http.MethodGet, "/truth-tables/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/truth-tables/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListHandler(t *testing.T) {
	e := newTestEcho()

	for _, expr := range []string{"A", "A|B", "A^B"} {
		rec := do(e, http.MethodPost, "/truth-tables", `{"expression":"`+expr+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(e, http.MethodGet, "/truth-tables?page=1&size=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res pagination.OffsetResult[domain.Evaluation]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, int64(3), res.Total)
	assert.True(t, res.HasMore)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "A^B", res.Items[0].Expression)

	rec = do(e, http.MethodGet, "/truth-tables?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
