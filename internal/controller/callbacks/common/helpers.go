package common

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ParseArg возвращает часть callback data после префикса
// Например: ("bk_cat:laptop", "bk_cat:") -> "laptop"
func ParseArg(data, prefix string) (string, error) {
	arg, ok := strings.CutPrefix(data, prefix)
	if !ok || arg == "" {
		return "", ErrInvalidFormat
	}
	return arg, nil
}

// ParseIndex извлекает индекс варианта из callback data
// Например: ("bk_brand:3", "bk_brand:") -> 3
func ParseIndex(data, prefix string) (int, error) {
	arg, err := ParseArg(data, prefix)
	if err != nil {
		return 0, err
	}
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 0 {
		return 0, ErrInvalidFormat
	}
	return idx, nil
}

// SplitLastIndex делит "2025-03-10:2" на аргумент и индекс
func SplitLastIndex(arg string) (string, int, error) {
	head, tail, ok := cutLast(arg, ":")
	if !ok || head == "" {
		return "", 0, ErrInvalidFormat
	}
	idx, err := strconv.Atoi(tail)
	if err != nil || idx < 0 {
		return "", 0, ErrInvalidFormat
	}
	return head, idx, nil
}

func cutLast(s, sep string) (string, string, bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

// IsMessageNotModifiedError проверяет ошибку Telegram "message is not modified":
// повторное нажатие той же кнопки отрисовывает тот же экран
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
