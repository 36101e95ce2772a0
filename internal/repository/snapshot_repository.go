package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"go.uber.org/zap"
)

// SnapshotRepository читает и пишет JSON-снимки хранилищ через KVStore.
// Отсутствующий ключ заполняется встроенными данными, битый JSON возвращается как ошибка.
type SnapshotRepository struct {
	kv     KVStore
	logger *zap.Logger
}

func NewSnapshotRepository(kv KVStore, logger *zap.Logger) *SnapshotRepository {
	return &SnapshotRepository{kv: kv, logger: logger}
}

// LoadContent загружает тексты сайта
func (r *SnapshotRepository) LoadContent(ctx context.Context) (*model.SiteContent, error) {
	raw, ok, err := r.kv.Get(ctx, KeySiteContent)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if !ok {
		r.logger.Info("No saved content, using defaults")
		return model.DefaultContent(), nil
	}

	var content model.SiteContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeySiteContent, err)
	}
	return &content, nil
}

// LoadCatalog загружает каталог. Если есть только снимок v4, он мигрируется: добавляется пустой modelRepairs,
// результат сразу записывается под ключом v5.
func (r *SnapshotRepository) LoadCatalog(ctx context.Context) (*model.Catalog, error) {
	raw, ok, err := r.kv.Get(ctx, KeyRepairData)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	key := KeyRepairData
	if !ok {
		raw, ok, err = r.kv.Get(ctx, KeyRepairDataLegacy)
		if err != nil {
			return nil, fmt.Errorf("load legacy catalog: %w", err)
		}
		if !ok {
			r.logger.Info("No saved catalog, using defaults")
			return model.DefaultCatalog(), nil
		}
		key = KeyRepairDataLegacy
		r.logger.Info("Migrating legacy catalog snapshot",
			zap.String("from", KeyRepairDataLegacy),
			zap.String("to", KeyRepairData))
	}

	var catalog model.Catalog
	if err := json.Unmarshal([]byte(raw), &catalog); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	normalizeCatalog(&catalog)

	if key == KeyRepairDataLegacy {
		if err := r.SaveCatalog(ctx, &catalog); err != nil {
			return nil, fmt.Errorf("save migrated catalog: %w", err)
		}
	}

	return &catalog, nil
}

// LoadAvailability загружает расписание
func (r *SnapshotRepository) LoadAvailability(ctx context.Context) (*model.Availability, error) {
	raw, ok, err := r.kv.Get(ctx, KeyAvailability)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}
	if !ok {
		r.logger.Info("No saved availability, using defaults")
		return model.DefaultAvailability(), nil
	}

	var availability model.Availability
	if err := json.Unmarshal([]byte(raw), &availability); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeyAvailability, err)
	}
	if availability.CustomSchedule == nil {
		availability.CustomSchedule = make(map[string][]string)
	}
	if availability.DisabledDates == nil {
		availability.DisabledDates = []string{}
	}

	return &availability, nil
}

// SaveContent сохраняет тексты сайта
func (r *SnapshotRepository) SaveContent(ctx context.Context, content *model.SiteContent) error {
	return r.save(ctx, KeySiteContent, content)
}

// SaveCatalog сохраняет каталог (всегда под ключом v5)
func (r *SnapshotRepository) SaveCatalog(ctx context.Context, catalog *model.Catalog) error {
	return r.save(ctx, KeyRepairData, catalog)
}

// SaveAvailability сохраняет расписание
func (r *SnapshotRepository) SaveAvailability(ctx context.Context, availability *model.Availability) error {
	return r.save(ctx, KeyAvailability, availability)
}

func (r *SnapshotRepository) save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func normalizeCatalog(c *model.Catalog) {
	if c.Brands == nil {
		c.Brands = make(map[string][]string)
	}
	if c.Models == nil {
		c.Models = make(map[string]map[string]model.ModelList)
	}
	if c.ModelRepairs == nil {
		c.ModelRepairs = make(map[string][]model.RepairAction)
	}
}
