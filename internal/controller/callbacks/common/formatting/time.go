package formatting

import (
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
)

// DaysPerPage - сколько дат показывает один экран выбора даты
const DaysPerPage = 7

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(date string) (time.Time, bool) {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate форматирует дату для кнопки: "Mon, Mar 10"
func FormatDate(date string) string {
	t, ok := ParseDate(date)
	if !ok {
		return date
	}
	return t.Format("Mon, Jan 2")
}

// FormatDateLong форматирует дату для текста: "Monday, March 10, 2025"
func FormatDateLong(date string) string {
	t, ok := ParseDate(date)
	if !ok {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// DatePage возвращает даты страницы выбора: 7 дней начиная с today + offset недель
func DatePage(today time.Time, offset int) []string {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, offset*DaysPerPage)

	dates := make([]string, 0, DaysPerPage)
	for i := 0; i < DaysPerPage; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(model.DateLayout))
	}
	return dates
}
