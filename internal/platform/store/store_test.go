package store_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/adapters/database/memory"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/SscSPs/currency_converter/internal/platform/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	repos, err := store.Open(context.Background(), &config.Config{RateStore: config.StoreMemory}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, err)
	assert.IsType(t, &memory.RateRepository{}, repos.RateRepo)
	assert.NoError(t, repos.RateRepo.Close())
}

func TestOpen_PostgresWithoutURLFails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := store.Open(ctx, &config.Config{RateStore: config.StorePostgres}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Error(t, err)
}
