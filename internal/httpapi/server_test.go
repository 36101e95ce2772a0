package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, ratePerMin int) (*gin.Engine, Deps) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	deps := Deps{
		Catalog:      service.NewCatalogService(model.DefaultCatalog(), nil, logger),
		Availability: service.NewAvailabilityService(model.DefaultAvailability(), nil, logger),
		Content:      service.NewContentService(model.DefaultContent(), nil, logger),
	}
	s := NewServer(":0", ratePerMin, deps, "test", logger)
	return s.Router(ratePerMin), deps
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t, 100)

	w := get(r, "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestBrandsFilter(t *testing.T) {
	r, _ := newTestServer(t, 100)

	w := get(r, "/api/brands/smartphone?q=sam")
	require.Equal(t, http.StatusOK, w.Code)

	var brands []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &brands))
	assert.Equal(t, []string{"Samsung"}, brands)
}

func TestBrandsRejectsPseudoCategory(t *testing.T) {
	r, _ := newTestServer(t, 100)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/brands/find_model").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/brands/toaster").Code)
}

func TestModelsKeepSeriesOrder(t *testing.T) {
	r, deps := newTestServer(t, 100)
	deps.Catalog.AddModel("Acme", model.CategoryTablet, "Zeta", service.ModelOptions{NewSeries: true})
	deps.Catalog.AddModel("Acme", model.CategoryTablet, "Alpha", service.ModelOptions{NewSeries: true})
	deps.Catalog.AddModel("Acme", model.CategoryTablet, "Alpha 1", service.ModelOptions{Series: "Alpha"})

	w := get(r, "/api/models?brand=Acme&category=tablet")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"Zeta":[],"Alpha":["Alpha 1"]}`, w.Body.String())
}

func TestModelsRequiresBrand(t *testing.T) {
	r, _ := newTestServer(t, 100)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/models?category=tablet").Code)
}

func TestRepairsFallBackToGlobal(t *testing.T) {
	r, deps := newTestServer(t, 100)

	w := get(r, "/api/repairs?category=laptop&brand=Dell&model=XPS%2013")
	require.Equal(t, http.StatusOK, w.Code)

	var repairs []model.RepairAction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &repairs))
	assert.Equal(t, deps.Catalog.Snapshot().Repairs, repairs)
}

func TestSlots(t *testing.T) {
	r, deps := newTestServer(t, 100)
	deps.Availability.ToggleDateDisabled("2030-01-02")

	w := get(r, "/api/slots/2030-01-01")
	require.Equal(t, http.StatusOK, w.Code)
	var open SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &open))
	assert.True(t, open.Available)
	assert.Equal(t, deps.Availability.DefaultSlots(), open.Slots)

	w = get(r, "/api/slots/2030-01-02")
	require.Equal(t, http.StatusOK, w.Code)
	var closed SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &closed))
	assert.False(t, closed.Available)
	assert.Empty(t, closed.Slots)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/slots/01-02-2030").Code)
}

func TestContentIncludesSectionOrder(t *testing.T) {
	r, _ := newTestServer(t, 100)

	w := get(r, "/api/content")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Reliable Certified Phone Repair", body[model.ContentHeroTitle])
	assert.Len(t, body["sectionOrder"], 4)
}

func TestRateLimit(t *testing.T) {
	r, _ := newTestServer(t, 2)

	assert.Equal(t, http.StatusOK, get(r, "/api/categories").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/categories").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/api/categories").Code)

	// health не ограничивается
	assert.Equal(t, http.StatusOK, get(r, "/healthz").Code)
}
