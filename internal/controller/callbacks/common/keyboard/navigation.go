package keyboard

import (
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot/models"
)

// BackButton создаёт кнопку "Назад"
func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Back", callbackData)
}

// StartOverButton создаёт кнопку "Начать заново"
func StartOverButton() models.InlineKeyboardButton {
	return Button("🏠 Start over", callbacktypes.BookReset)
}

// AdminMenuButton создаёт кнопку возврата в меню администратора
func AdminMenuButton() models.InlineKeyboardButton {
	return Button("⬅️ Admin menu", callbacktypes.AdminMenu)
}

// AddButton создаёт кнопку "Добавить"
func AddButton(text, callbackData string) models.InlineKeyboardButton {
	return Button("➕ "+text, callbackData)
}

// DeleteButton создаёт кнопку "Удалить"
func DeleteButton(callbackData string) models.InlineKeyboardButton {
	return Button("🗑", callbackData)
}

// NoopButton создаёт некликабельную кнопку-подпись
func NoopButton(text string) models.InlineKeyboardButton {
	return Button(text, callbacktypes.Noop)
}

// AddBackButton добавляет кнопку "Назад" к builder
func (b *Builder) AddBackButton(callbackData string) *Builder {
	return b.Row(BackButton(callbackData))
}

// AddStartOverButton добавляет кнопку "Начать заново" к builder
func (b *Builder) AddStartOverButton() *Builder {
	return b.Row(StartOverButton())
}

// AddAdminMenuButton добавляет кнопку возврата в меню администратора
func (b *Builder) AddAdminMenuButton() *Builder {
	return b.Row(AdminMenuButton())
}
