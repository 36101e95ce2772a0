package common

import (
	"context"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandlerContext содержит общие данные для обработки callback
type HandlerContext struct {
	Ctx        context.Context
	Bot        *bot.Bot
	Callback   *models.CallbackQuery
	Handler    *callbacktypes.Handler
	Message    *models.Message
	TelegramID int64
	ChatID     int64
}

// NewHandlerContext создаёт новый контекст обработчика
func NewHandlerContext(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
) *HandlerContext {
	msg := GetMessageFromCallback(callback)
	var chatID int64
	if msg != nil {
		chatID = msg.Chat.ID
	}

	return &HandlerContext{
		Ctx:        ctx,
		Bot:        b,
		Callback:   callback,
		Handler:    h,
		Message:    msg,
		TelegramID: callback.From.ID,
		ChatID:     chatID,
	}
}

// Wizard возвращает визард пользователя
func (hc *HandlerContext) Wizard() *wizard.Wizard {
	return hc.Handler.StateManager.Wizard(hc.TelegramID)
}

// RequireAdmin проверяет что пользователь - администратор
func (hc *HandlerContext) RequireAdmin() error {
	if hc.Handler.IsAdmin == nil || !hc.Handler.IsAdmin(hc.TelegramID) {
		return ErrNotAdmin
	}
	return nil
}

// RequireEditMode проверяет что администратор включил режим редактирования
func (hc *HandlerContext) RequireEditMode() error {
	if err := hc.RequireAdmin(); err != nil {
		return err
	}
	if !hc.Handler.StateManager.EditMode(hc.TelegramID) {
		return ErrEditModeOff
	}
	return nil
}

// Answer отвечает на callback query
func (hc *HandlerContext) Answer(text string) {
	AnswerCallback(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// AnswerAlert отвечает на callback query с alert
func (hc *HandlerContext) AnswerAlert(text string) {
	AnswerCallbackAlert(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// EditMessage редактирует сообщение
func (hc *HandlerContext) EditMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	if hc.Message == nil {
		return ErrNoMessage
	}

	// Сообщение с картинкой нельзя превратить в текстовое: заменяем новым
	if len(hc.Message.Photo) > 0 {
		if err := hc.DeleteMessage(); err != nil {
			hc.Handler.Logger.Debug("Failed to delete photo message", zap.Error(err))
		}
		return hc.SendMessage(text, keyboard)
	}

	_, err := hc.Bot.EditMessageText(hc.Ctx, &bot.EditMessageTextParams{
		ChatID:      hc.ChatID,
		MessageID:   hc.Message.ID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})

	// Игнорируем ошибку "message is not modified" - это не настоящая ошибка
	if IsMessageNotModifiedError(err) {
		return nil
	}

	return err
}

// DeleteMessage удаляет сообщение
func (hc *HandlerContext) DeleteMessage() error {
	if hc.Message == nil {
		return ErrNoMessage
	}

	_, err := hc.Bot.DeleteMessage(hc.Ctx, &bot.DeleteMessageParams{
		ChatID:    hc.ChatID,
		MessageID: hc.Message.ID,
	})

	return err
}

// SendMessage отправляет новое сообщение
func (hc *HandlerContext) SendMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	_, err := hc.Bot.SendMessage(hc.Ctx, &bot.SendMessageParams{
		ChatID:      hc.ChatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})

	return err
}

// ClearState очищает диалог пользователя
func (hc *HandlerContext) ClearState() {
	hc.Handler.StateManager.ClearState(hc.TelegramID)
}

// SetState устанавливает состояние пользователя
func (hc *HandlerContext) SetState(state callbacktypes.UserState) {
	hc.Handler.StateManager.SetState(hc.TelegramID, state)
}

// SetData устанавливает данные в state
func (hc *HandlerContext) SetData(key string, value interface{}) {
	hc.Handler.StateManager.SetData(hc.TelegramID, key, value)
}

// GetData получает данные из state
func (hc *HandlerContext) GetData(key string) (interface{}, bool) {
	return hc.Handler.StateManager.GetData(hc.TelegramID, key)
}

// Option возвращает вариант по индексу из запомненного списка
func (hc *HandlerContext) Option(key string, idx int) (string, error) {
	return Option(hc.Handler.StateManager, hc.TelegramID, key, idx)
}

// Remember запоминает список вариантов, на который ссылаются кнопки
func Remember(sm callbacktypes.StateManager, telegramID int64, key string, options []string) {
	sm.SetData(telegramID, key, append([]string(nil), options...))
}

// Option возвращает вариант по индексу из запомненного списка
func Option(sm callbacktypes.StateManager, telegramID int64, key string, idx int) (string, error) {
	raw, ok := sm.GetData(telegramID, key)
	if !ok {
		return "", ErrOptionExpired
	}
	options, ok := raw.([]string)
	if !ok || idx < 0 || idx >= len(options) {
		return "", ErrOptionExpired
	}
	return options[idx], nil
}
