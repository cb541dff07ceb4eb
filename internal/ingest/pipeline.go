package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/truth-table/internal/domain"
	"github.com/DjordjeVuckovic/truth-table/internal/storage"
)

// Stats counts the outcome of one pipeline run.
type Stats struct {
	Saved  int
	Failed int
}

// Pipeline evaluates collected expressions and stores every successful result.
// Rows that fail to parse or evaluate are logged and counted, not fatal.
type Pipeline struct {
	collector Collector[domain.Evaluation]
	store     storage.Store
}

func NewPipeline(c Collector[domain.Evaluation], store storage.Store) *Pipeline {
	return &Pipeline{
		collector: c,
		store:     store,
	}
}

func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	var stats Stats

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results, err := p.collector.Collect(ctx)
	if err != nil {
		return stats, err
	}

	defer func() {
		slog.Info("Import pipeline finished",
			"saved", stats.Saved,
			"failed", stats.Failed,
			"duration", time.Since(start),
		)
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Pipeline context cancelled, stopping import")
			return stats, ctx.Err()
		case res, ok := <-results:
			if !ok {
				return stats, ctx.Err()
			}
			if res.Err != nil {
				stats.Failed++
				slog.Warn("Skipping expression", "line", res.Line, "error", res.Err)
				continue
			}

			id, err := p.store.Save(ctx, res.Value)
			if err != nil {
				return stats, err
			}
			stats.Saved++
			slog.Debug("Evaluation saved", "id", id, "expression", res.Value.Expression)
		}
	}
}
