package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/truth-table/internal/storage"
	"github.com/DjordjeVuckovic/truth-table/internal/storage/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("defaults to in-memory", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, storage.InMem, cfg.Type)
		assert.Nil(t, cfg.Pg)
		assert.Nil(t, cfg.Es)
	})

	t.Run("invalid type", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "solr")
		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("pg requires connection string", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "")
		_, err := LoadEnv()
		assert.Error(t, err)

		t.Setenv("PG_CONNECTION_STRING", "postgres://u:p@localhost:5432/db")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@localhost:5432/db", cfg.Pg.ConnStr)
	})

	t.Run("es addresses and default index", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		t.Setenv("ES_ADDRESSES", "")
		_, err := LoadEnv()
		assert.Error(t, err)

		t.Setenv("ES_ADDRESSES", "http://a:9200, ,http://b:9200")
		t.Setenv("ES_INDEX_NAME", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Es.Addresses)
		assert.Equal(t, "evaluations", cfg.Es.IndexName)
	})
}

func TestNewStore_InMem(t *testing.T) {
	b, err := NewStore(context.Background(), StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	defer b.Close()

	assert.IsType(t, &inmem.Store{}, b.Store)
	assert.True(t, b.HealthChecker.Healthy(context.Background()))
}

func TestNewStore_Unsupported(t *testing.T) {
	_, err := NewStore(context.Background(), StorageConfig{Type: "solr"})
	assert.EqualError(t, err, "unsupported storer type: solr")
}
