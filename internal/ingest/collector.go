package ingest

import (
	"context"
	"fmt"
	"sync"

	"github.com/DjordjeVuckovic/truth-table/internal/domain"
	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

const (
	DefaultExpressionColumn = "expression"
	DefaultWorkers          = 4
	DefaultMaxVariables     = 16
)

type Result[T any] struct {
	Value T
	Line  int
	Err   error
}

type Collector[T any] interface {
	Collect(ctx context.Context) (<-chan Result[T], error)
}

// EvaluationCollector turns CSV rows into evaluated truth tables.
type EvaluationCollector struct {
	reader       *CSVReader
	column       string
	workers      int
	maxVariables int
}

type CollectorOption func(*EvaluationCollector)

func WithColumn(column string) CollectorOption {
	return func(c *EvaluationCollector) {
		c.column = column
	}
}

func WithWorkers(n int) CollectorOption {
	return func(c *EvaluationCollector) {
		if n > 0 {
			c.workers = n
		}
	}
}

func WithMaxVariables(n int) CollectorOption {
	return func(c *EvaluationCollector) {
		if n > 0 {
			c.maxVariables = n
		}
	}
}

func NewEvaluationCollector(r *CSVReader, opts ...CollectorOption) *EvaluationCollector {
	c := &EvaluationCollector{
		reader:       r,
		column:       DefaultExpressionColumn,
		workers:      DefaultWorkers,
		maxVariables: DefaultMaxVariables,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *EvaluationCollector) Collect(ctx context.Context) (<-chan Result[domain.Evaluation], error) {
	records, err := c.reader.ReadParallel(ctx, c.workers)
	if err != nil {
		return nil, err
	}

	out := make(chan Result[domain.Evaluation])
	var wg sync.WaitGroup

	wg.Add(c.workers)
	for w := 0; w < c.workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case rec, ok := <-records:
					if !ok {
						return
					}
					res := Result[domain.Evaluation]{Line: rec.Line, Err: rec.Err}
					if res.Err == nil {
						res.Value, res.Err = c.evaluate(rec)
					}
					select {
					case out <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out, nil
}

func (c *EvaluationCollector) evaluate(rec RecordResult) (domain.Evaluation, error) {
	text, ok := rec.Record[c.column]
	if !ok {
		return domain.Evaluation{}, fmt.Errorf("line %d: missing column %q", rec.Line, c.column)
	}

	expr, err := logic.Compile(text)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("line %d: %w", rec.Line, err)
	}
	if n := len(expr.Variables()); n > c.maxVariables {
		return domain.Evaluation{}, fmt.Errorf("line %d: expression has %d variables, the limit is %d", rec.Line, n, c.maxVariables)
	}

	table, err := truthtable.EvaluateAll(expr)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("line %d: %w", rec.Line, err)
	}

	return domain.Evaluation{
		Expression: text,
		Postfix:    expr.String(),
		Variables:  table.Header,
		Table:      *table,
	}, nil
}
