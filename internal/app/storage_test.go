package app

import (
	"context"
	"testing"

	"github.com/Freeeeeet/repair_booking_bot/internal/config"
	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenStorageMemory(t *testing.T) {
	storage, err := OpenStorage(context.Background(), &config.Config{StorageDriver: config.StorageMemory}, zap.NewNop())
	require.NoError(t, err)
	defer storage.Close()

	assert.IsType(t, &repository.MemoryKV{}, storage.KV)
}

func TestOpenStorageUnknownDriver(t *testing.T) {
	_, err := OpenStorage(context.Background(), &config.Config{StorageDriver: "sqlite"}, zap.NewNop())
	assert.Error(t, err)
}

func TestLoadStoresSeedsDefaults(t *testing.T) {
	repo := repository.NewSnapshotRepository(repository.NewMemoryKV(), zap.NewNop())

	stores, err := LoadStores(context.Background(), repo, zap.NewNop())
	require.NoError(t, err)

	assert.NotEmpty(t, stores.Catalog.ListBrands(model.CategorySmartphone))
	assert.Equal(t, model.DefaultAvailability().TimeSlots, stores.Availability.DefaultSlots())
	assert.NotEmpty(t, stores.Content.Get(model.ContentHeroTitle, ""))
}

func TestLoadStoresFailsOnCorruptSnapshot(t *testing.T) {
	kv := repository.NewMemoryKV()
	require.NoError(t, kv.Set(context.Background(), repository.KeyAvailability, "{not json"))
	repo := repository.NewSnapshotRepository(kv, zap.NewNop())

	_, err := LoadStores(context.Background(), repo, zap.NewNop())
	assert.Error(t, err)
}
