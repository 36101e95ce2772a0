package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
)

// StartPayload - предвыбор визарда из ссылки t.me/<bot>?start=<payload>
type StartPayload struct {
	Category model.Category
	Search   string
}

// ParseStartPayload разбирает параметр /start вида "smartphone" или "smartphone--iphone-13".
// Дефисы и подчёркивания в поиске заменяются пробелами: Telegram не допускает пробелы в параметре.
func ParseStartPayload(payload string) (StartPayload, bool) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return StartPayload{}, false
	}

	rawCategory, rawSearch, _ := strings.Cut(payload, startPayloadSeparator)
	category, ok := model.ParseCategory(strings.ToLower(rawCategory))
	if !ok {
		return StartPayload{}, false
	}

	search := strings.NewReplacer("-", " ", "_", " ").Replace(rawSearch)
	return StartPayload{
		Category: category,
		Search:   strings.Join(strings.Fields(search), " "),
	}, true
}

// validateText проверяет что ввод не пустой и не длиннее maxLen символов
func validateText(text string, maxLen int) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("❌ The value can't be empty.\n\nPlease try again:")
	}
	if utf8.RuneCountInString(text) > maxLen {
		return "", fmt.Errorf("❌ Too long. Maximum %d characters.\n\nPlease try again:", maxLen)
	}
	return text, nil
}

// fieldMaxLength возвращает ограничение длины для поля формы
func fieldMaxLength(field model.Field) int {
	if field == model.FieldAddress {
		return AddressMaxLength
	}
	return FieldMaxLength
}
