package common

import (
	"errors"

	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
)

// Общие ошибки для обработчиков
var (
	ErrNotAdmin      = errors.New("user is not an admin")
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
	ErrOptionExpired = errors.New("option list is out of date")
	ErrEditModeOff   = errors.New("edit mode is off")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	var validationErr *wizard.ValidationError
	var submitErr *wizard.SubmitError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.UserMessage()
	case errors.As(err, &submitErr):
		return submitErr.UserMessage()
	case errors.Is(err, ErrNotAdmin):
		return "❌ This action is available to shop staff only"
	case errors.Is(err, ErrNoMessage):
		return "❌ Message could not be processed"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid data format"
	case errors.Is(err, ErrOptionExpired), errors.Is(err, wizard.ErrInvalidTransition):
		return "⌛ This button is out of date. Use /book to continue."
	case errors.Is(err, ErrEditModeOff):
		return "✏️ Turn on edit mode in /admin first"
	case errors.Is(err, wizard.ErrSubmitInFlight):
		return "⏳ Your request is already being sent"
	case errors.Is(err, wizard.ErrInvalidDate):
		return "❌ Please enter the date as YYYY-MM-DD"
	case errors.Is(err, wizard.ErrDateInPast):
		return "❌ Please choose today or a later date"
	case errors.Is(err, wizard.ErrNoDate):
		return "📅 Please pick a date first"
	case errors.Is(err, wizard.ErrSlotUnavailable):
		return "❌ This time is not available for the selected date"
	case errors.Is(err, wizard.ErrUnknownCategory):
		return "❌ Unknown device category"
	default:
		return "❌ Something went wrong"
	}
}
