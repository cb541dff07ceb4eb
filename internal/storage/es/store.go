package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/truth-table/internal/domain"
	"github.com/DjordjeVuckovic/truth-table/internal/storage"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
	"github.com/DjordjeVuckovic/truth-table/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type evaluationDocument struct {
	ID             string           `json:"id"`
	Expression     string           `json:"expression"`
	Postfix        string           `json:"postfix"`
	Variables      []string         `json:"variables"`
	FunctionVector string           `json:"function_vector"`
	PDNF           string           `json:"pdnf"`
	PCNF           string           `json:"pcnf"`
	Table          truthtable.Table `json:"truth_table"`
	CreatedAt      time.Time        `json:"created_at"`
}

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
}

// NewStore connects to Elasticsearch and creates the index when missing.
func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &Store{
		client:    client,
		indexName: config.IndexName,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return s, nil
}

func (s *Store) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	if evaluation.CreatedAt.IsZero() {
		evaluation.CreatedAt = time.Now().UTC()
	}

	doc := toDocument(evaluation)
	res, err := s.client.Index(s.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index evaluation: %w", err)
	}

	slog.Debug("Evaluation indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return evaluation.ID, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	res, err := s.client.Get(s.indexName, id.String()).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return nil, fmt.Errorf("get %s: %w", id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	if !res.Found {
		return nil, fmt.Errorf("get %s: %w", id, storage.ErrNotFound)
	}

	return fromSource(res.Source_)
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	desc := sortorder.Desc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &desc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &desc},
				},
			},
		).
		From(page.Offset()).
		Size(page.Size).
		TrackTotalHits(true).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search evaluations: %w", err)
	}

	items := make([]domain.Evaluation, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		e, err := fromSource(hit.Source_)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}

func (s *Store) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := buildMapping()
	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

// keywordIgnoreAbove keeps keyword terms under the Lucene term limit of 32766
// bytes for any UTF-8 input. Longer values are stored but not indexed.
const keywordIgnoreAbove = 8191

func boundedKeyword() *types.KeywordProperty {
	p := types.NewKeywordProperty()
	ignoreAbove := keywordIgnoreAbove
	p.IgnoreAbove = &ignoreAbove
	return p
}

// buildMapping indexes the identifying fields as keywords; the table itself
// is stored but not indexed.
func buildMapping() types.TypeMapping {
	disabled := false
	table := types.NewObjectProperty()
	table.Enabled = &disabled

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":              types.NewKeywordProperty(),
			"expression":      boundedKeyword(),
			"postfix":         boundedKeyword(),
			"variables":       types.NewKeywordProperty(),
			"function_vector": boundedKeyword(),
			"pdnf":            types.NewTextProperty(),
			"pcnf":            types.NewTextProperty(),
			"truth_table":     table,
			"created_at":      types.NewDateProperty(),
		},
	}
}

func toDocument(e domain.Evaluation) evaluationDocument {
	return evaluationDocument{
		ID:             e.ID.String(),
		Expression:     e.Expression,
		Postfix:        e.Postfix,
		Variables:      e.Variables,
		FunctionVector: e.Vector(),
		PDNF:           e.Table.PDNF,
		PCNF:           e.Table.PCNF,
		Table:          e.Table,
		CreatedAt:      e.CreatedAt,
	}
}

func fromSource(source json.RawMessage) (*domain.Evaluation, error) {
	var doc evaluationDocument
	if err := json.Unmarshal(source, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evaluation document: %w", err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse evaluation ID: %w", err)
	}

	return &domain.Evaluation{
		ID:         id,
		Expression: doc.Expression,
		Postfix:    doc.Postfix,
		Variables:  doc.Variables,
		Table:      doc.Table,
		CreatedAt:  doc.CreatedAt,
	}, nil
}
