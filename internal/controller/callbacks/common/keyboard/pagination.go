package keyboard

import (
	"fmt"

	"github.com/go-telegram/bot/models"
)

// WeekPagination создаёт пагинацию по неделям. Назад в прошлое не листается
func WeekPagination(prefix string, weekOffset int) []models.InlineKeyboardButton {
	var buttons []models.InlineKeyboardButton
	if weekOffset > 0 {
		buttons = append(buttons, Button("◀️ Previous week", fmt.Sprintf("%s%d", prefix, weekOffset-1)))
	}
	buttons = append(buttons, Button("▶️ Next week", fmt.Sprintf("%s%d", prefix, weekOffset+1)))
	return buttons
}
