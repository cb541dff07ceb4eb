package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/truth-table/internal/domain"
	"github.com/DjordjeVuckovic/truth-table/internal/storage"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
	"github.com/DjordjeVuckovic/truth-table/pkg/pagination"
	pkgtesting "github.com/DjordjeVuckovic/truth-table/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *ConnectionPool) {
	t.Helper()
	ctx := context.Background()

	container := pkgtesting.NewPGContainerWithCleanup(ctx, t)

	pool, err := NewConnectionPool(ctx, PoolConfig{ConnStr: container.ConnString})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewStore(pool), pool
}

func evaluation(t *testing.T, text string) domain.Evaluation {
	t.Helper()
	expr, table, err := truthtable.Evaluate(text)
	require.NoError(t, err)
	return domain.Evaluation{
		Expression: text,
		Postfix:    expr.String(),
		Variables:  table.Header,
		Table:      *table,
	}
}

func TestStore(t *testing.T) {
	store, pool := newTestStore(t)
	ctx := context.Background()

	t.Run("health", func(t *testing.T) {
		assert.True(t, NewHealthChecker(pool).Healthy(ctx))
	})

	t.Run("save and get", func(t *testing.T) {
		id, err := store.Save(ctx, evaluation(t, "A@B"))
		require.NoError(t, err)

		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "A@B", got.Expression)
		assert.Equal(t, "A B @", got.Postfix)
		assert.Equal(t, []string{"A", "B"}, got.Variables)
		assert.Equal(t, "1101", got.Vector())
		assert.Equal(t, "(!A | B)", got.Table.PCNF)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := store.Get(ctx, uuid.New())
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})

	t.Run("list", func(t *testing.T) {
		_, err := pool.GetConn().Exec(ctx, "TRUNCATE TABLE evaluations")
		require.NoError(t, err)

		for _, text := range []string{"A", "A&B", "A|B"} {
			_, err := store.Save(ctx, evaluation(t, text))
			require.NoError(t, err)
		}

		res, err := store.List(ctx, pagination.OffsetRequest{Page: 1, Size: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), res.Total)
		assert.True(t, res.HasMore)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "A|B", res.Items[0].Expression)
	})
}
