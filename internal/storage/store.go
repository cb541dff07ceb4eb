package storage

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/truth-table/internal/domain"
	"github.com/DjordjeVuckovic/truth-table/pkg/pagination"
	"github.com/google/uuid"
)

// Store keeps the history of evaluated expressions.
type Store interface {
	Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error)
	// List returns evaluations newest first.
	List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

var ErrNotFound = errors.New("evaluation not found")
