package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Deps - хранилища, которые читает HTTP API
type Deps struct {
	Catalog      *service.CatalogService
	Availability *service.AvailabilityService
	Content      *service.ContentService
}

// Server - HTTP API только для чтения: тексты страницы, каталог и слоты
type Server struct {
	deps   Deps
	srv    *http.Server
	logger *zap.Logger
}

// NewServer создаёт сервер. ratePerMin - лимит запросов в минуту с одного IP
func NewServer(addr string, ratePerMin int, deps Deps, env string, logger *zap.Logger) *Server {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{deps: deps, logger: logger}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(ratePerMin),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router собирает маршруты API
func (s *Server) Router(ratePerMin int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", s.health)

	api := r.Group("/api")
	api.Use(RateLimitMiddleware(ratePerMin, s.logger))
	{
		api.GET("/content", s.content)
		api.GET("/categories", s.categories)
		api.GET("/brands/:category", s.brands)
		api.GET("/models", s.models)
		api.GET("/repairs", s.repairs)
		api.GET("/slots/:date", s.slots)
	}

	return r
}

// Start слушает addr и блокируется до Shutdown
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP API", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http api: %w", err)
	}
	return nil
}

// Shutdown дожидается завершения активных запросов
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http api shutdown: %w", err)
	}
	s.logger.Info("HTTP API stopped gracefully")
	return nil
}

func validDate(date string) bool {
	_, err := time.Parse(model.DateLayout, date)
	return err == nil
}
