package common

import (
	"context"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// WithSession создаёт HandlerContext для любого пользователя
func WithSession(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	hc := NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil {
		hc.AnswerAlert(ErrorMessage(ErrNoMessage))
		return
	}

	handler(hc)
}

// WithAdmin создаёт HandlerContext и проверяет что пользователь - администратор
// При ошибке автоматически отвечает пользователю
func WithAdmin(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	WithSession(ctx, b, callback, h, func(hc *HandlerContext) {
		if err := hc.RequireAdmin(); err != nil {
			h.Logger.Warn("Admin check failed",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.String("data", callback.Data))
			hc.AnswerAlert(ErrorMessage(err))
			return
		}

		handler(hc)
	})
}

// WithEditMode как WithAdmin, но дополнительно требует включённый режим редактирования
func WithEditMode(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	WithAdmin(ctx, b, callback, h, func(hc *HandlerContext) {
		if err := hc.RequireEditMode(); err != nil {
			hc.AnswerAlert(ErrorMessage(err))
			return
		}

		handler(hc)
	})
}

// HandleError обрабатывает ошибку и отправляет ответ пользователю
func HandleError(hc *HandlerContext, err error, operation string) {
	hc.Handler.Logger.Warn("Operation failed",
		zap.String("operation", operation),
		zap.Int64("telegram_id", hc.TelegramID),
		zap.Error(err))
	hc.AnswerAlert(ErrorMessage(err))
}

// LogAndAnswer логирует действие и отвечает на callback
func LogAndAnswer(hc *HandlerContext, message string, answer string) {
	hc.Handler.Logger.Info(message, zap.Int64("telegram_id", hc.TelegramID))
	hc.Answer(answer)
}
