package httpapi

import (
	"net/http"
	"strings"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/service"
	"github.com/gin-gonic/gin"
)

// SlotsResponse - слоты даты для календаря записи
type SlotsResponse struct {
	Date      string   `json:"date"`
	Slots     []string `json:"slots"`
	Available bool     `json:"available"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) content(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Content.All())
}

func (s *Server) categories(c *gin.Context) {
	c.JSON(http.StatusOK, model.Categories)
}

func (s *Server) brands(c *gin.Context) {
	category, ok := parseRealCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	brands := s.deps.Catalog.ListBrands(category)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		brands = service.FilterBrands(brands, q)
	}
	c.JSON(http.StatusOK, brands)
}

func (s *Server) models(c *gin.Context) {
	category, ok := parseRealCategory(c.Query("category"))
	brand := strings.TrimSpace(c.Query("brand"))
	if !ok || brand == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand and category are required"})
		return
	}

	list := s.deps.Catalog.ListModels(brand, category)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		list = list.Filter(q)
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) repairs(c *gin.Context) {
	category, ok := parseRealCategory(c.Query("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	c.JSON(http.StatusOK, s.deps.Catalog.ListRepairs(category, c.Query("brand"), c.Query("model")))
}

func (s *Server) slots(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	slots := s.deps.Availability.ResolveSlots(date)
	c.JSON(http.StatusOK, SlotsResponse{
		Date:      date,
		Slots:     slots,
		Available: s.deps.Availability.IsAvailable(date),
	})
}

// parseRealCategory принимает только категории устройств, без find_model
func parseRealCategory(raw string) (model.Category, bool) {
	category, ok := model.ParseCategory(strings.ToLower(strings.TrimSpace(raw)))
	if !ok || !category.IsReal() {
		return "", false
	}
	return category, true
}
