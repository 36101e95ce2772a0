package callbacks

import (
	"context"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Handler with Dependencies
// ========================

// Handler обертка для callbacktypes.Handler с методами
type Handler struct {
	*callbacktypes.Handler
}

// Deps - зависимости обработчиков callback
type Deps struct {
	Catalog       *service.CatalogService
	Availability  *service.AvailabilityService
	Content       *service.ContentService
	StateManager  callbacktypes.StateManager
	IsAdmin       func(telegramID int64) bool
	FallbackPhone string
	Now           func() time.Time
	Logger        *zap.Logger
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(deps Deps) *Handler {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	inner := &callbacktypes.Handler{
		Catalog:       deps.Catalog,
		Availability:  deps.Availability,
		Content:       deps.Content,
		StateManager:  deps.StateManager,
		IsAdmin:       deps.IsAdmin,
		FallbackPhone: deps.FallbackPhone,
		Now:           now,
		Logger:        deps.Logger,
	}
	return &Handler{Handler: inner}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.Logger.Info("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	Route(ctx, b, callback, h.Handler)
}
