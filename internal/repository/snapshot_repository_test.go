package repository

import (
	"context"
	"testing"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository(NewMemoryKV(), zap.NewNop())

	catalog, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCatalog().Brands, catalog.Brands)

	availability, err := repo.LoadAvailability(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAvailability().TimeSlots, availability.TimeSlots)

	content, err := repo.LoadContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultContent().Texts, content.Texts)
}

func TestLoadCatalogMigratesLegacy(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	legacy := `{"brands":{"smartphone":["Apple"]},"models":{"Apple":{"smartphone":["iPhone X"]}},"repairs":[{"id":"screen","name":"Screen"}]}`
	require.NoError(t, kv.Set(ctx, KeyRepairDataLegacy, legacy))
	repo := NewSnapshotRepository(kv, zap.NewNop())

	catalog, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"Apple"}, catalog.Brands["smartphone"])
	assert.Equal(t, []string{"iPhone X"}, catalog.Models["Apple"]["smartphone"].Flat())
	assert.NotNil(t, catalog.ModelRepairs)
	assert.Empty(t, catalog.ModelRepairs)

	_, ok, err := kv.Get(ctx, KeyRepairData)
	require.NoError(t, err)
	assert.True(t, ok)

	// повторный запуск читает v5 и не трогает старый снимок
	require.NoError(t, kv.Set(ctx, KeyRepairDataLegacy, "{broken"))
	again, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"iPhone X"}, again.Models["Apple"]["smartphone"].Flat())
}

func TestLoadCatalogPrefersCurrentKey(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, KeyRepairDataLegacy, `{"brands":{"smartphone":["Old"]}}`))
	require.NoError(t, kv.Set(ctx, KeyRepairData, `{"brands":{"smartphone":["New"]},"models":{},"repairs":[],"modelRepairs":{}}`))
	repo := NewSnapshotRepository(kv, zap.NewNop())

	catalog, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"New"}, catalog.Brands["smartphone"])
}

func TestCorruptSnapshotIsAnError(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, KeyAvailability, `{"timeSlots":`))
	require.NoError(t, kv.Set(ctx, KeyRepairData, `not json`))
	require.NoError(t, kv.Set(ctx, KeySiteContent, `[]`))
	repo := NewSnapshotRepository(kv, zap.NewNop())

	_, err := repo.LoadAvailability(ctx)
	assert.Error(t, err)
	_, err = repo.LoadCatalog(ctx)
	assert.Error(t, err)
	_, err = repo.LoadContent(ctx)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository(NewMemoryKV(), zap.NewNop())

	availability := model.DefaultAvailability()
	availability.DisabledDates = []string{"2025-05-01"}
	availability.CustomSchedule["2025-05-02"] = []string{}
	require.NoError(t, repo.SaveAvailability(ctx, availability))

	loaded, err := repo.LoadAvailability(ctx)
	require.NoError(t, err)
	assert.Equal(t, availability, loaded)

	content := model.DefaultContent()
	content.Texts["heroTitle"] = "Changed"
	require.NoError(t, repo.SaveContent(ctx, content))

	loadedContent, err := repo.LoadContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, content, loadedContent)
}
