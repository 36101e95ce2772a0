package common

import (
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/go-telegram/bot/models"
)

// Экраны администратора с запоминанием вариантов.
// Нужны и callback handlers, и обработчикам текстового ввода.

// RenderGlobalRepairs формирует список ремонтов по умолчанию
func RenderGlobalRepairs(h *callbacktypes.Handler, telegramID int64) (string, *models.InlineKeyboardMarkup) {
	repairs := h.Catalog.Snapshot().Repairs
	ids := make([]string, 0, len(repairs))
	for _, r := range repairs {
		ids = append(ids, r.ID)
	}
	Remember(h.StateManager, telegramID, callbacktypes.OptionGlobalRepair, ids)
	return BuildGlobalRepairsScreen(repairs)
}

// RenderAvailability формирует экран слотов по умолчанию
func RenderAvailability(h *callbacktypes.Handler, telegramID int64) (string, *models.InlineKeyboardMarkup) {
	defaults := h.Availability.DefaultSlots()
	Remember(h.StateManager, telegramID, callbacktypes.OptionDefaultSlots, defaults)
	return BuildAvailabilityScreen(defaults, h.Availability.DisabledDates())
}

// RenderAdminDates формирует неделю дат начиная с offset
func RenderAdminDates(h *callbacktypes.Handler, offset int) (string, *models.InlineKeyboardMarkup) {
	return BuildAdminDatesScreen(AdminDays(h, offset), offset)
}

// AdminDays возвращает состояние дат недели offset
func AdminDays(h *callbacktypes.Handler, offset int) []DayOption {
	dates := formatting.DatePage(h.Now(), offset)
	days := make([]DayOption, 0, len(dates))
	for _, date := range dates {
		days = append(days, DayOption{
			Date:     date,
			Disabled: h.Availability.IsDisabled(date),
			Custom:   h.Availability.IsCustom(date),
			Slots:    len(h.Availability.ResolveSlots(date)),
		})
	}
	return days
}

// RenderAdminDate формирует редактирование конкретной даты
func RenderAdminDate(h *callbacktypes.Handler, telegramID int64, date string) (string, *models.InlineKeyboardMarkup) {
	slots := h.Availability.ResolveSlots(date)
	disabled := h.Availability.IsDisabled(date)
	Remember(h.StateManager, telegramID, callbacktypes.OptionOverride+date, slots)
	return BuildAdminDateScreen(date, slots, disabled, h.Availability.IsCustom(date))
}

// RenderContent формирует список редактируемых текстов
func RenderContent(h *callbacktypes.Handler, telegramID int64) (string, *models.InlineKeyboardMarkup) {
	ids := h.Content.IDs()
	Remember(h.StateManager, telegramID, callbacktypes.OptionContent, ids)
	return BuildContentScreen(ids, h.Content.All().Texts)
}

// RenderSectionOrder формирует порядок секций
func RenderSectionOrder(h *callbacktypes.Handler, telegramID int64) (string, *models.InlineKeyboardMarkup) {
	order := h.Content.SectionOrder()
	Remember(h.StateManager, telegramID, callbacktypes.OptionSections, order)
	return BuildSectionOrderScreen(order)
}
