package inmem

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/truth-table/internal/domain"
	"github.com/DjordjeVuckovic/truth-table/internal/storage"
	"github.com/DjordjeVuckovic/truth-table/pkg/pagination"
	"github.com/google/uuid"
)

type Store struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Evaluation
	order       []uuid.UUID
}

func NewStore() *Store {
	return &Store{
		storage: make(map[uuid.UUID]domain.Evaluation),
	}
}

func (s *Store) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	if evaluation.CreatedAt.IsZero() {
		evaluation.CreatedAt = time.Now().UTC()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, exists := s.storage[evaluation.ID]; !exists {
		s.order = append(s.order, evaluation.ID)
	}
	s.storage[evaluation.ID] = evaluation

	slog.Debug("Saved evaluation to in-memory storage", "id", evaluation.ID, "expression", evaluation.Expression)
	return evaluation.ID, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	e, ok := s.storage[id]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", id, storage.ErrNotFound)
	}
	return &e, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	ids := slices.Clone(s.order)
	slices.Reverse(ids)

	total := int64(len(ids))
	offset := (page.Page - 1) * page.Size
	items := make([]domain.Evaluation, 0, page.Size)
	for i := offset; i < len(ids) && len(items) < page.Size; i++ {
		items = append(items, s.storage[ids[i]])
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}
