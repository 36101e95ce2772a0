package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start.
// Параметр ссылки предвыбирает категорию и поиск: /start smartphone--iphone-13
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	w := h.stateManager.Wizard(telegramID)
	w.Reset()

	payload := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/start"))
	if start, ok := ParseStartPayload(payload); ok {
		if err := w.Start(start.Category, start.Search); err != nil {
			h.logger.Warn("Failed to apply start payload",
				zap.Int64("telegram_id", telegramID),
				zap.String("payload", payload),
				zap.Error(err))
		} else {
			h.logger.Info("Wizard started from link",
				zap.Int64("telegram_id", telegramID),
				zap.String("category", string(start.Category)),
				zap.String("search", start.Search))
		}
	} else if payload != "" {
		h.logger.Debug("Ignoring unknown start payload",
			zap.Int64("telegram_id", telegramID),
			zap.String("payload", payload))
	}

	h.showStep(ctx, b, update.Message.Chat.ID, telegramID)
}

// HandleBook обрабатывает команду /book - продолжить запись с текущего шага
func (h *Handlers) HandleBook(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.ClearState(telegramID)
	h.showStep(ctx, b, update.Message.Chat.ID, telegramID)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Commands:\n\n" +
		"/start - Start a new repair request\n" +
		"/book - Continue your current request\n" +
		"/cancel - Stop typing a value\n" +
		"/help - Show this help\n\n" +
		"Pick your device, brand, model and repair, then send a quick inquiry " +
		"or book a technician visit.\n\n" +
		"Prefer to talk? Call us at " + h.deps.FallbackPhone

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	if currentState == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Nothing to cancel.\n\nUse /book to continue your request.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Cancelled.\n\nUse /book to continue your request.")
}

// HandleAdmin обрабатывает команду /admin
func (h *Handlers) HandleAdmin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.ClearState(telegramID)

	text, kb := common.BuildAdminMenuScreen(h.stateManager.EditMode(telegramID))
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	h.logger.Debug("HandleTextMessage called",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateNone:
		h.sendMessage(ctx, b, update.Message.Chat.ID, "Use /book to continue your repair request or /help for commands.")
	case state.StateSearch:
		h.handleSearchInput(ctx, b, update)
	case state.StateFieldInput:
		h.handleFieldInput(ctx, b, update)
	case state.StateAdminBrand, state.StateAdminModel, state.StateAdminRepair,
		state.StateAdminSlot, state.StateAdminOverrideSlot, state.StateAdminDate, state.StateAdminContent:
		h.handleAdminInput(ctx, b, update, currentState)
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
		h.stateManager.ClearState(telegramID)
	}
}

// showStep отправляет экран текущего шага визарда новым сообщением
func (h *Handlers) showStep(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	text, kb := common.RenderStep(h.deps, telegramID)
	h.sendScreen(ctx, b, chatID, text, kb)
}
