package service

import (
	"testing"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalog(t *testing.T) (*CatalogService, *recordingSaver) {
	t.Helper()
	saver := &recordingSaver{}
	return NewCatalogService(model.DefaultCatalog(), saver, zap.NewNop()), saver
}

func TestAddBrandDeduplicates(t *testing.T) {
	s, saver := newCatalog(t)
	before := len(s.ListBrands(model.CategoryLaptop))

	s.AddBrand(model.CategoryLaptop, "Framework")
	s.AddBrand(model.CategoryLaptop, "Framework")

	brands := s.ListBrands(model.CategoryLaptop)
	assert.Len(t, brands, before+1)
	assert.Equal(t, "Framework", brands[len(brands)-1])
	assert.Equal(t, 1, saver.saves)
	assert.Contains(t, saver.savedCatalog().Brands["laptop"], "Framework")
}

func TestDeleteBrandDoesNotCascade(t *testing.T) {
	s, _ := newCatalog(t)
	device := model.DeviceKey{Category: model.CategorySmartphone, Brand: "Google", Model: "Pixel 8"}
	s.AddRepairAction("Tensor Reflow", &device)

	s.DeleteBrand(model.CategorySmartphone, "Google")

	assert.NotContains(t, s.ListBrands(model.CategorySmartphone), "Google")
	assert.Equal(t, 8, s.ListModels("Google", model.CategorySmartphone).Len())
	assert.Len(t, s.ListRepairs(model.CategorySmartphone, "Google", "Pixel 8"), len(model.DefaultCatalog().Repairs)+1)
}

func TestListBrandsFallback(t *testing.T) {
	s := NewCatalogService(&model.Catalog{}, nil, zap.NewNop())

	assert.Equal(t, model.FallbackBrands(model.CategoryTablet), s.ListBrands(model.CategoryTablet))
	assert.Empty(t, s.ListBrands(model.CategoryFindModel))
}

func TestFilterBrands(t *testing.T) {
	assert.Equal(t, []string{"OnePlus", "Honor"}, FilterBrands([]string{"Apple", "OnePlus", "Honor"}, "ON"))
	assert.Len(t, FilterBrands([]string{"a", "b"}, ""), 2)
}

func TestAddModelFlat(t *testing.T) {
	s, _ := newCatalog(t)

	s.AddModel("Apple", model.CategorySmartphone, "iPhone 17", ModelOptions{})
	s.AddModel("Apple", model.CategorySmartphone, "iPhone 17", ModelOptions{})

	models := s.ListModels("Apple", model.CategorySmartphone).Flat()
	assert.Equal(t, "iPhone 17", models[len(models)-1])
	assert.Len(t, models, 26)
}

func TestAddModelFlatIgnoredForGrouped(t *testing.T) {
	s, saver := newCatalog(t)

	s.AddModel("Samsung", model.CategorySmartphone, "Galaxy X", ModelOptions{})

	assert.True(t, s.ListModels("Samsung", model.CategorySmartphone).IsGrouped())
	assert.NotContains(t, s.ListModels("Samsung", model.CategorySmartphone).All(), "Galaxy X")
	assert.Zero(t, saver.saves)
}

func TestAddModelSeries(t *testing.T) {
	s, saver := newCatalog(t)

	s.AddModel("Samsung", model.CategorySmartphone, "Galaxy M Series", ModelOptions{NewSeries: true})
	s.AddModel("Samsung", model.CategorySmartphone, "Galaxy M54", ModelOptions{Series: "Galaxy M Series"})

	list := s.ListModels("Samsung", model.CategorySmartphone)
	series := list.Series()
	require.Len(t, series, 5)
	assert.Equal(t, "Galaxy M Series", series[4].Name)
	assert.Equal(t, []string{"Galaxy M54"}, series[4].Models)

	saved := saver.savedCatalog().Models["Samsung"]["smartphone"].Series()
	assert.Equal(t, "Galaxy S Series", saved[0].Name)
	assert.Equal(t, "Galaxy M Series", saved[4].Name)
}

func TestAddSeriesOnFlatListDropsModels(t *testing.T) {
	s, _ := newCatalog(t)

	s.AddModel("Google", model.CategorySmartphone, "Pixel Fold Series", ModelOptions{NewSeries: true})

	list := s.ListModels("Google", model.CategorySmartphone)
	assert.True(t, list.IsGrouped())
	assert.Zero(t, list.Len())
}

func TestAddModelNewBrand(t *testing.T) {
	s, _ := newCatalog(t)

	s.AddModel("Nothing", model.CategorySmartphone, "Phone (2)", ModelOptions{})

	assert.Equal(t, []string{"Phone (2)"}, s.ListModels("Nothing", model.CategorySmartphone).Flat())
}

func TestDeleteModel(t *testing.T) {
	s, _ := newCatalog(t)

	s.DeleteModel("Apple", model.CategorySmartphone, "iPhone 11", "")
	s.DeleteModel("Samsung", model.CategorySmartphone, "Galaxy A54", "Galaxy A Series")
	s.DeleteModel("Samsung", model.CategorySmartphone, "Galaxy S24", "")

	assert.NotContains(t, s.ListModels("Apple", model.CategorySmartphone).All(), "iPhone 11")
	samsung := s.ListModels("Samsung", model.CategorySmartphone)
	assert.NotContains(t, samsung.All(), "Galaxy A54")
	assert.Contains(t, samsung.All(), "Galaxy S24")
}

func TestListModelsUnknown(t *testing.T) {
	s, _ := newCatalog(t)

	list := s.ListModels("Nokia", model.CategoryLaptop)
	assert.False(t, list.IsGrouped())
	assert.Zero(t, list.Len())
}

func TestDeviceRepairsCopyOnFirstWrite(t *testing.T) {
	s, saver := newCatalog(t)
	device := model.DeviceKey{Category: model.CategorySmartphone, Brand: "Apple", Model: "iPhone 15 Pro"}
	global := s.ListRepairs(model.CategorySmartphone, "Apple", "iPhone 15 Pro")

	added := s.AddRepairAction("Action Button", &device)

	deviceRepairs := s.ListRepairs(model.CategorySmartphone, "Apple", "iPhone 15 Pro")
	assert.Equal(t, append(global, added), deviceRepairs)
	assert.NotEmpty(t, added.ID)

	// глобальный список не меняется
	assert.Equal(t, global, s.ListRepairs(model.CategorySmartphone, "Apple", "iPhone 15"))

	// последующие изменения глобального списка не попадают в список устройства
	s.AddRepairAction("Data Recovery", nil)
	assert.Len(t, s.ListRepairs(model.CategorySmartphone, "Apple", "iPhone 15 Pro"), len(global)+1)
	assert.Len(t, s.ListRepairs(model.CategorySmartphone, "Apple", "iPhone 15"), len(global)+1)

	_, ok := saver.savedCatalog().ModelRepairs["smartphone_Apple_iPhone_15_Pro"]
	assert.True(t, ok)
}

func TestDeviceRepairsAreIndependent(t *testing.T) {
	s, _ := newCatalog(t)
	pro := model.DeviceKey{Category: model.CategorySmartphone, Brand: "Apple", Model: "iPhone 15 Pro"}
	base := model.DeviceKey{Category: model.CategorySmartphone, Brand: "Apple", Model: "iPhone 15"}

	s.AddRepairAction("Action Button", &pro)
	before := s.ListRepairs(model.CategorySmartphone, "Apple", "iPhone 15 Pro")

	added := s.AddRepairAction("Dynamic Island", &base)

	assert.Equal(t, before, s.ListRepairs(model.CategorySmartphone, "Apple", "iPhone 15 Pro"))
	assert.NotContains(t, s.ListRepairs(model.CategorySmartphone, "Apple", "iPhone 15 Pro"), added)
	assert.Contains(t, s.ListRepairs(model.CategorySmartphone, "Apple", "iPhone 15"), added)
}

func TestDeleteDeviceRepairMaterializes(t *testing.T) {
	s, _ := newCatalog(t)
	device := model.DeviceKey{Category: model.CategoryTablet, Brand: "Apple", Model: "iPad (10th Gen)"}

	s.DeleteRepairAction("screen", &device)

	deviceRepairs := s.ListRepairs(model.CategoryTablet, "Apple", "iPad (10th Gen)")
	assert.Len(t, deviceRepairs, len(model.DefaultCatalog().Repairs)-1)
	assert.Len(t, s.ListRepairs(model.CategoryTablet, "Apple", "iPad Air (5th Gen)"), len(model.DefaultCatalog().Repairs))

	s.DeleteRepairAction("battery", nil)
	assert.Len(t, s.ListRepairs(model.CategoryTablet, "Apple", "iPad (10th Gen)"), len(model.DefaultCatalog().Repairs)-1)
}

func TestPersistFailureIsNotReturned(t *testing.T) {
	saver := &recordingSaver{err: errSaveFailed}
	s := NewCatalogService(model.DefaultCatalog(), saver, zap.NewNop())

	s.AddBrand(model.CategoryTablet, "Nokia")

	assert.Contains(t, s.ListBrands(model.CategoryTablet), "Nokia")
	assert.Equal(t, 1, saver.saves)
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newCatalog(t)
	snap := s.Snapshot()
	snap.Brands["laptop"] = nil

	assert.NotEmpty(t, s.ListBrands(model.CategoryLaptop))
	assert.NotEmpty(t, s.Snapshot().Brands["laptop"])
}
