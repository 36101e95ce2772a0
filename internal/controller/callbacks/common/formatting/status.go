package formatting

import (
	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
)

// SubmitButtonText возвращает подпись кнопки отправки с учётом её состояния
func SubmitButtonText(kind model.RequestType, status wizard.SubmitStatus) string {
	if status == wizard.SubmitPending {
		if kind == model.RequestAppointment {
			return "⏳ Booking..."
		}
		return "⏳ Sending..."
	}
	if kind == model.RequestAppointment {
		return "📅 Book Appointment"
	}
	return "📨 Send Inquiry"
}

// DayStatusDisplay представляет отображение состояния даты в расписании
type DayStatusDisplay struct {
	Emoji string
	Text  string
}

// GetDayStatusDisplay возвращает emoji и текст для даты: закрыта, изменена или по умолчанию
func GetDayStatusDisplay(disabled, custom bool) DayStatusDisplay {
	switch {
	case disabled:
		return DayStatusDisplay{"🚫", "closed"}
	case custom:
		return DayStatusDisplay{"✏️", "custom"}
	default:
		return DayStatusDisplay{"🟢", "default"}
	}
}
