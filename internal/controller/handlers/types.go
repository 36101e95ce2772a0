package handlers

import (
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/state"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд и текстового ввода
type Handlers struct {
	deps         *callbacktypes.Handler
	stateManager *state.Manager
	logger       *zap.Logger
}

// NewHandlers создаёт новый обработчик команд.
// deps - те же зависимости, что и у callback handlers: экраны строятся общими функциями.
func NewHandlers(deps *callbacktypes.Handler, stateManager *state.Manager, logger *zap.Logger) *Handlers {
	return &Handlers{
		deps:         deps,
		stateManager: stateManager,
		logger:       logger,
	}
}
