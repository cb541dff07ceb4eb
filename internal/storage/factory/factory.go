package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/truth-table/internal/storage"
	"github.com/DjordjeVuckovic/truth-table/internal/storage/es"
	"github.com/DjordjeVuckovic/truth-table/internal/storage/inmem"
	"github.com/DjordjeVuckovic/truth-table/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/truth-table/pkg/server"
)

// Backend is a configured store with its health checker and cleanup.
type Backend struct {
	Store         storage.Store
	HealthChecker pkgserver.HealthChecker
	Close         func()
}

// NewStore creates the storage.Store selected by cfg.Type.
func NewStore(ctx context.Context, cfg StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return &Backend{
			Store:         pg.NewStore(pool),
			HealthChecker: pg.NewHealthChecker(pool),
			Close:         pool.Close,
		}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		s, err := es.NewStore(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Store:         s,
			HealthChecker: es.NewHealthChecker(s),
			Close:         func() {},
		}, nil

	case storage.InMem:
		return &Backend{
			Store:         inmem.NewStore(),
			HealthChecker: pkgserver.NewOkHealthChecker(),
			Close:         func() {},
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
