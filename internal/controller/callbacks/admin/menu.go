package admin

import (
	"context"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleMenu показывает меню администратора
func HandleMenu(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		showMenu(hc)
		hc.Answer("")
	})
}

// HandleToggleEditMode включает или выключает режим редактирования каталога
func HandleToggleEditMode(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		enabled := !h.StateManager.EditMode(hc.TelegramID)
		h.StateManager.SetEditMode(hc.TelegramID, enabled)

		h.Logger.Info("Edit mode toggled",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Bool("enabled", enabled))

		answer := "✏️ Edit mode off"
		if enabled {
			answer = "✏️ Edit mode on"
		}
		hc.Answer(answer)
		showMenu(hc)
	})
}

func showMenu(hc *common.HandlerContext) {
	text, kb := common.BuildAdminMenuScreen(hc.Handler.StateManager.EditMode(hc.TelegramID))
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to show admin menu", zap.Error(err))
	}
}

// prompt переводит администратора в ожидание текстового ввода
func prompt(hc *common.HandlerContext, state callbacktypes.UserState, text string) {
	hc.SetState(state)
	hc.Answer("")
	if err := hc.SendMessage(text+"\n\nUse /cancel to stop.", nil); err != nil {
		hc.Handler.Logger.Error("Failed to send admin prompt",
			zap.String("state", string(state)),
			zap.Error(err))
	}
}

// edit заменяет сообщение callback'а экраном администратора
func edit(hc *common.HandlerContext, text string, kb *models.InlineKeyboardMarkup) {
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to update admin screen", zap.Error(err))
	}
}
