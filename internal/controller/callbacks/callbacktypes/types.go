package callbacktypes

import (
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/service"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
	"go.uber.org/zap"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

// StateManager интерфейс для управления сессиями пользователей
type StateManager interface {
	ClearState(telegramID int64)
	GetState(telegramID int64) UserState
	SetState(telegramID int64, state UserState)
	SetData(telegramID int64, key string, value interface{})
	GetData(telegramID int64, key string) (interface{}, bool)
	Wizard(telegramID int64) *wizard.Wizard
	EditMode(telegramID int64) bool
	SetEditMode(telegramID int64, on bool)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	Catalog       *service.CatalogService
	Availability  *service.AvailabilityService
	Content       *service.ContentService
	StateManager  StateManager
	IsAdmin       func(telegramID int64) bool
	FallbackPhone string
	Now           func() time.Time
	Logger        *zap.Logger
}
