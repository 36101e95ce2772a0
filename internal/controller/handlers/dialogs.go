package handlers

import (
	"context"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleSearchInput применяет строку поиска брендов или моделей
func (h *Handlers) handleSearchInput(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	term, err := validateText(update.Message.Text, SearchMaxLength)
	if err != nil {
		h.sendError(ctx, b, chatID, err.Error())
		return
	}

	h.stateManager.ClearState(telegramID)
	h.stateManager.Wizard(telegramID).SetSearch(term)

	h.logger.Debug("Search applied",
		zap.Int64("telegram_id", telegramID),
		zap.String("term", term))

	h.showStep(ctx, b, chatID, telegramID)
}

// handleFieldInput заполняет поле формы заявки
func (h *Handlers) handleFieldInput(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	raw, _ := h.stateManager.GetData(telegramID, callbacktypes.DataField)
	name, _ := raw.(string)
	field := model.Field(name)
	if name == "" {
		h.logger.Warn("Field input without field", zap.Int64("telegram_id", telegramID))
		h.stateManager.ClearState(telegramID)
		return
	}

	value, err := validateText(update.Message.Text, fieldMaxLength(field))
	if err != nil {
		h.sendError(ctx, b, chatID, err.Error())
		return
	}

	if err := h.stateManager.Wizard(telegramID).SetField(field, value); err != nil {
		h.logger.Warn("Failed to set field",
			zap.Int64("telegram_id", telegramID),
			zap.String("field", name),
			zap.Error(err))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		h.showStep(ctx, b, chatID, telegramID)
		return
	}

	h.stateManager.ClearState(telegramID)
	h.showStep(ctx, b, chatID, telegramID)
}
