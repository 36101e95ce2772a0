package common

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// DayOption - дата на экране управления доступностью
type DayOption struct {
	Date     string
	Disabled bool
	Custom   bool
	Slots    int
}

// BuildAdminMenuScreen формирует меню администратора
func BuildAdminMenuScreen(editMode bool) (string, *models.InlineKeyboardMarkup) {
	status := "off"
	toggle := "✏️ Turn edit mode on"
	if editMode {
		status = "on"
		toggle = "✏️ Turn edit mode off"
	}

	text := fmt.Sprintf("🛠 <b>Admin</b>\n\nCatalog edit mode: <b>%s</b>\n\n"+
		"With edit mode on, /book shows add and delete controls for brands, models and repairs.", status)

	kb := keyboard.NewBuilder().
		Row(keyboard.Button(toggle, callbacktypes.AdminEditMode)).
		Row(keyboard.Button("🔧 Default repairs", callbacktypes.AdminRepairs)).
		Row(keyboard.Button("📅 Availability", callbacktypes.AdminAvailability)).
		Row(keyboard.Button("🖼 Week overview", callbacktypes.AdminWeekImage+"0")).
		Row(keyboard.Button("📝 Site texts", callbacktypes.AdminContent)).
		Row(keyboard.Button("🔀 Section order", callbacktypes.AdminSectionOrder))
	return text, kb.Build()
}

// BuildGlobalRepairsScreen формирует список ремонтов по умолчанию
func BuildGlobalRepairsScreen(repairs []model.RepairAction) (string, *models.InlineKeyboardMarkup) {
	text := "🔧 <b>Default repairs</b>\n\nShown for every device without its own repair list."

	kb := keyboard.NewBuilder()
	for i, r := range repairs {
		kb.Row(
			keyboard.NoopButton(r.Name),
			keyboard.DeleteButton(callbacktypes.AdminRepairDel+callbacktypes.RepairScopeGlobal+":"+strconv.Itoa(i)),
		)
	}
	kb.Row(keyboard.AddButton("Add repair", callbacktypes.AdminRepairAdd+callbacktypes.RepairScopeGlobal)).
		AddAdminMenuButton()
	return text, kb.Build()
}

// BuildAvailabilityScreen формирует экран слотов по умолчанию
func BuildAvailabilityScreen(defaults []string, disabled []string) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("📅 <b>Availability</b>\n\n")
	sb.WriteString(fmt.Sprintf("Default time slots: %s\n", formatting.PluralizeSlots(len(defaults))))
	if len(disabled) > 0 {
		sb.WriteString("Closed dates: " + html.EscapeString(strings.Join(disabled, ", ")) + "\n")
	}

	kb := keyboard.NewBuilder()
	for i, slot := range defaults {
		kb.Row(
			keyboard.NoopButton(slot),
			keyboard.DeleteButton(callbacktypes.AdminSlotDel+strconv.Itoa(i)),
		)
	}
	kb.Row(keyboard.AddButton("Add default slot", callbacktypes.AdminSlotAdd)).
		Row(
			keyboard.Button("🗓 Manage dates", callbacktypes.AdminDates+"0"),
			keyboard.Button("⌨️ Enter a date", callbacktypes.AdminDateInput),
		).
		AddAdminMenuButton()
	return sb.String(), kb.Build()
}

// BuildAdminDatesScreen формирует неделю дат с их состоянием
func BuildAdminDatesScreen(days []DayOption, offset int) (string, *models.InlineKeyboardMarkup) {
	text := "🗓 <b>Manage dates</b>\n\n🟢 default · ✏️ custom · 🚫 closed"

	kb := keyboard.NewBuilder()
	for _, d := range days {
		status := formatting.GetDayStatusDisplay(d.Disabled, d.Custom)
		label := fmt.Sprintf("%s %s · %s", status.Emoji, formatting.FormatDate(d.Date), formatting.PluralizeSlots(d.Slots))
		kb.Row(keyboard.Button(label, callbacktypes.AdminDate+d.Date))
	}
	kb.Row(keyboard.WeekPagination(callbacktypes.AdminDates, offset)...).
		AddBackButton(callbacktypes.AdminAvailability)
	return text, kb.Build()
}

// BuildAdminDateScreen формирует редактирование слотов конкретной даты
func BuildAdminDateScreen(date string, slots []string, disabled, custom bool) (string, *models.InlineKeyboardMarkup) {
	status := formatting.GetDayStatusDisplay(disabled, custom)
	text := fmt.Sprintf("📅 <b>%s</b>\n\nStatus: %s %s", formatting.FormatDateLong(date), status.Emoji, status.Text)

	kb := keyboard.NewBuilder()
	if disabled {
		text += "\n\nThe date is closed for bookings."
		kb.Row(keyboard.Button("✅ Open date", callbacktypes.AdminToggleDate+date))
	} else {
		for i, slot := range slots {
			kb.Row(
				keyboard.NoopButton(slot),
				keyboard.DeleteButton(callbacktypes.AdminOverrideDel+date+":"+strconv.Itoa(i)),
			)
		}
		kb.Row(keyboard.AddButton("Add slot", callbacktypes.AdminOverrideAdd+date))
		if custom {
			kb.Row(keyboard.Button("↩️ Reset to default", callbacktypes.AdminOverrideReset+date))
		}
		kb.Row(keyboard.Button("🚫 Close date", callbacktypes.AdminToggleDate+date))
	}

	kb.AddBackButton(callbacktypes.AdminDates + "0")
	return text, kb.Build()
}

// BuildContentScreen формирует список редактируемых текстов
func BuildContentScreen(ids []string, texts map[string]string) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("📝 <b>Site texts</b>\n")
	for _, id := range ids {
		sb.WriteString(fmt.Sprintf("\n<b>%s</b>\n%s\n", html.EscapeString(id), html.EscapeString(texts[id])))
	}

	kb := keyboard.NewBuilder()
	for i, id := range ids {
		kb.Row(keyboard.Button("✏️ "+id, callbacktypes.AdminContentEdit+strconv.Itoa(i)))
	}
	kb.AddAdminMenuButton()
	return sb.String(), kb.Build()
}

// BuildSectionOrderScreen формирует порядок секций страницы
func BuildSectionOrderScreen(order []string) (string, *models.InlineKeyboardMarkup) {
	text := "🔀 <b>Section order</b>\n\nTap ⬆️ to move a section up."

	kb := keyboard.NewBuilder()
	for i, section := range order {
		if i == 0 {
			kb.Row(keyboard.NoopButton(fmt.Sprintf("%d. %s", i+1, section)))
			continue
		}
		kb.Row(
			keyboard.NoopButton(fmt.Sprintf("%d. %s", i+1, section)),
			keyboard.Button("⬆️", callbacktypes.AdminSectionUp+strconv.Itoa(i)),
		)
	}
	kb.AddAdminMenuButton()
	return text, kb.Build()
}
