package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
)

var (
	ErrInvalidTransition = errors.New("action is not available on this step")
	ErrSubmitInFlight    = errors.New("submission already in progress")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")
	ErrDateInPast        = errors.New("date is in the past")
	ErrSlotUnavailable   = errors.New("time slot is not available for the selected date")
	ErrNoDate            = errors.New("pick a date first")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownField      = errors.New("unknown field")
)

// ValidationError - не заполнены обязательные поля заявки
type ValidationError struct {
	Kind    model.RequestType
	Missing []model.Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s: missing %s", e.Kind, strings.Join(names, ", "))
}

// UserMessage возвращает текст для пользователя
func (e *ValidationError) UserMessage() string {
	if e.Kind == model.RequestInquiry {
		return "Please fill in your name and phone number for the inquiry."
	}
	return "Please fill in your name, phone, address, preferred date, and time for the appointment."
}

// SubmitError - шлюз отклонил заявку или недоступен. Поля формы сохраняются.
type SubmitError struct {
	Kind          model.RequestType
	Err           error
	FallbackPhone string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit %s: %v", e.Kind, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// UserMessage возвращает текст для пользователя: исходная ошибка и телефон для связи,
// для ошибки конфигурации - нейтральное извинение
func (e *SubmitError) UserMessage() string {
	if errors.Is(e.Err, model.ErrGatewayNotConfigured) {
		return fmt.Sprintf("Sorry, online requests are temporarily unavailable.\n\nPlease contact us directly at %s.", e.FallbackPhone)
	}
	return fmt.Sprintf("There was an error submitting your %s: %s\n\nPlease try again or contact us directly at %s.",
		e.Kind, e.Err.Error(), e.FallbackPhone)
}
