package service

import (
	"sync"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ModelOptions задаёт режим добавления модели
type ModelOptions struct {
	NewSeries bool   // Имя модели - это имя новой серии
	Series    string // Добавить модель в эту серию
}

// CatalogService владеет брендами, моделями и видами ремонта.
// Некорректные категории и бренды дают пустые списки, а не ошибки.
type CatalogService struct {
	mu      sync.RWMutex
	catalog *model.Catalog
	saver   SnapshotSaver
	logger  *zap.Logger
}

func NewCatalogService(catalog *model.Catalog, saver SnapshotSaver, logger *zap.Logger) *CatalogService {
	if catalog == nil {
		catalog = model.DefaultCatalog()
	}
	if catalog.Brands == nil {
		catalog.Brands = make(map[string][]string)
	}
	if catalog.Models == nil {
		catalog.Models = make(map[string]map[string]model.ModelList)
	}
	if catalog.ModelRepairs == nil {
		catalog.ModelRepairs = make(map[string][]model.RepairAction)
	}
	return &CatalogService{
		catalog: catalog,
		saver:   saver,
		logger:  logger,
	}
}

// Snapshot возвращает копию каталога
func (s *CatalogService) Snapshot() *model.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone()
}

// ListBrands возвращает бренды категории. Если сохранённый список пуст, берётся встроенный.
func (s *CatalogService) ListBrands(category model.Category) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if brands := s.catalog.Brands[string(category)]; len(brands) > 0 {
		return append([]string{}, brands...)
	}
	return model.FallbackBrands(category)
}

// FilterBrands фильтрует список по подстроке без учёта регистра
func FilterBrands(brands []string, term string) []string {
	return model.FilterNames(brands, term)
}

// AddBrand добавляет бренд, если его ещё нет в категории
func (s *CatalogService) AddBrand(category model.Category, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	brands := s.catalog.Brands[string(category)]
	for _, b := range brands {
		if b == name {
			return
		}
	}
	s.catalog.Brands[string(category)] = append(append([]string{}, brands...), name)

	s.logger.Info("Brand added",
		zap.String("category", string(category)),
		zap.String("brand", name))
	s.persist()
}

// DeleteBrand удаляет все вхождения бренда. Модели и ремонты бренда остаются в снимке.
func (s *CatalogService) DeleteBrand(category model.Category, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	brands := s.catalog.Brands[string(category)]
	filtered := make([]string, 0, len(brands))
	for _, b := range brands {
		if b != name {
			filtered = append(filtered, b)
		}
	}
	s.catalog.Brands[string(category)] = filtered

	s.logger.Info("Brand deleted",
		zap.String("category", string(category)),
		zap.String("brand", name),
		zap.Int("removed", len(brands)-len(filtered)))
	s.persist()
}

// ListModels возвращает модели бренда в категории (пустой плоский список, если данных нет)
func (s *CatalogService) ListModels(brand string, category model.Category) model.ModelList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if byCategory, ok := s.catalog.Models[brand]; ok {
		if list, ok := byCategory[string(category)]; ok {
			return list.Clone()
		}
	}
	return model.FlatModels()
}

// AddModel добавляет модель в одном из трёх режимов:
// обычное добавление в плоский список, создание новой серии, добавление в серию
func (s *CatalogService) AddModel(brand string, category model.Category, name string, opts ModelOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byCategory, ok := s.catalog.Models[brand]
	if !ok {
		byCategory = make(map[string]model.ModelList)
		s.catalog.Models[brand] = byCategory
	}
	current := byCategory[string(category)]

	var updated model.ModelList
	switch {
	case opts.NewSeries:
		if !current.IsGrouped() && current.Len() > 0 {
			s.logger.Warn("Converting flat model list to series, previous models are dropped",
				zap.String("brand", brand),
				zap.String("category", string(category)),
				zap.Int("dropped", current.Len()))
		}
		updated = current.AddSeries(name)
	case opts.Series != "":
		updated = current.AppendToSeries(opts.Series, name)
	default:
		var changed bool
		updated, changed = current.AppendFlat(name)
		if !changed {
			if current.IsGrouped() {
				s.logger.Warn("Flat add ignored for grouped model list",
					zap.String("brand", brand),
					zap.String("model", name))
			}
			return
		}
	}
	byCategory[string(category)] = updated

	s.logger.Info("Model added",
		zap.String("brand", brand),
		zap.String("category", string(category)),
		zap.String("model", name),
		zap.Bool("new_series", opts.NewSeries),
		zap.String("series", opts.Series))
	s.persist()
}

// DeleteModel удаляет модель из плоского списка или из указанной серии
func (s *CatalogService) DeleteModel(brand string, category model.Category, name, series string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byCategory, ok := s.catalog.Models[brand]
	if !ok {
		return
	}
	current, ok := byCategory[string(category)]
	if !ok {
		return
	}

	updated, removed := current.Remove(name, series)
	if !removed {
		return
	}
	byCategory[string(category)] = updated

	s.logger.Info("Model deleted",
		zap.String("brand", brand),
		zap.String("category", string(category)),
		zap.String("model", name),
		zap.String("series", series))
	s.persist()
}

// ListRepairs возвращает ремонты устройства: собственный список, если он есть, иначе общий
func (s *CatalogService) ListRepairs(category model.Category, brand, modelName string) []model.RepairAction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := model.DeviceKey{Category: category, Brand: brand, Model: modelName}.String()
	if repairs, ok := s.catalog.ModelRepairs[key]; ok {
		return append([]model.RepairAction{}, repairs...)
	}
	return append([]model.RepairAction{}, s.catalog.Repairs...)
}

// AddRepairAction добавляет вид ремонта. С device список устройства сначала
// материализуется копией текущего эффективного списка.
func (s *CatalogService) AddRepairAction(name string, device *model.DeviceKey) model.RepairAction {
	s.mu.Lock()
	defer s.mu.Unlock()

	action := model.RepairAction{ID: uuid.NewString(), Name: name}

	if device == nil {
		s.catalog.Repairs = append(s.catalog.Repairs, action)
	} else {
		key := device.String()
		s.catalog.ModelRepairs[key] = append(s.effectiveRepairs(key), action)
	}

	s.logger.Info("Repair action added",
		zap.String("id", action.ID),
		zap.String("name", name),
		zap.String("device", deviceLabel(device)))
	s.persist()

	return action
}

// DeleteRepairAction удаляет вид ремонта по id с тем же правилом материализации
func (s *CatalogService) DeleteRepairAction(id string, device *model.DeviceKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if device == nil {
		s.catalog.Repairs = withoutRepair(s.catalog.Repairs, id)
	} else {
		key := device.String()
		s.catalog.ModelRepairs[key] = withoutRepair(s.effectiveRepairs(key), id)
	}

	s.logger.Info("Repair action deleted",
		zap.String("id", id),
		zap.String("device", deviceLabel(device)))
	s.persist()
}

func (s *CatalogService) effectiveRepairs(key string) []model.RepairAction {
	if repairs, ok := s.catalog.ModelRepairs[key]; ok {
		return append([]model.RepairAction{}, repairs...)
	}
	return append([]model.RepairAction{}, s.catalog.Repairs...)
}

func (s *CatalogService) persist() {
	if s.saver == nil {
		return
	}
	ctx, cancel := persistContext()
	defer cancel()

	if err := s.saver.SaveCatalog(ctx, s.catalog); err != nil {
		s.logger.Error("Failed to persist catalog", zap.Error(err))
	}
}

func withoutRepair(repairs []model.RepairAction, id string) []model.RepairAction {
	out := make([]model.RepairAction, 0, len(repairs))
	for _, r := range repairs {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func deviceLabel(device *model.DeviceKey) string {
	if device == nil {
		return "global"
	}
	return device.String()
}
