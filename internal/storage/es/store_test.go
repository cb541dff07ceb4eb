package es

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/truth-table/internal/domain"
	"github.com/DjordjeVuckovic/truth-table/internal/storage"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
	"github.com/DjordjeVuckovic/truth-table/pkg/pagination"
	pkgtesting "github.com/DjordjeVuckovic/truth-table/pkg/testing"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentMapping(t *testing.T) {
	expr, table, err := truthtable.Evaluate("A&!B")
	require.NoError(t, err)

	e := domain.Evaluation{
		ID:         uuid.New(),
		Expression: "A&!B",
		Postfix:    expr.String(),
		Variables:  table.Header,
		Table:      *table,
	}

	doc := toDocument(e)
	assert.Equal(t, e.ID.String(), doc.ID)
	assert.Equal(t, "0010", doc.FunctionVector)
	assert.Equal(t, "(A & !B)", doc.PDNF)

	mapping := buildMapping()
	assert.Contains(t, mapping.Properties, "function_vector")
	assert.Contains(t, mapping.Properties, "truth_table")

	for _, field := range []string{"expression", "postfix", "function_vector"} {
		kw, ok := mapping.Properties[field].(*types.KeywordProperty)
		require.True(t, ok, field)
		require.NotNil(t, kw.IgnoreAbove, field)
		assert.Equal(t, keywordIgnoreAbove, *kw.IgnoreAbove, field)
	}
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	store, err := NewStore(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "evaluations_test",
	})
	require.NoError(t, err)
	assert.True(t, NewHealthChecker(store).Healthy(ctx))

	expr, table, err := truthtable.Evaluate("A=B")
	require.NoError(t, err)

	id, err := store.Save(ctx, domain.Evaluation{
		Expression: "A=B",
		Postfix:    expr.String(),
		Variables:  table.Header,
		Table:      *table,
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "1001", got.Vector())
	assert.Equal(t, "A B =", got.Postfix)

	_, err = store.Get(ctx, uuid.New())
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	res, err := store.List(ctx, pagination.OffsetRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, id, res.Items[0].ID)

	long := "A" + strings.Repeat("|A", 20000)
	longExpr, longTable, err := truthtable.Evaluate(long)
	require.NoError(t, err)

	longID, err := store.Save(ctx, domain.Evaluation{
		Expression: long,
		Postfix:    longExpr.String(),
		Variables:  longTable.Header,
		Table:      *longTable,
	})
	require.NoError(t, err)

	got, err = store.Get(ctx, longID)
	require.NoError(t, err)
	assert.Equal(t, long, got.Expression)
}
