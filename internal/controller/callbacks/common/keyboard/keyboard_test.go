package keyboard

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	kb := NewBuilder().Grid(toButtons("a", "b", "c", "d", "e"), 2).Build()

	require.Len(t, kb.InlineKeyboard, 3)
	assert.Len(t, kb.InlineKeyboard[0], 2)
	assert.Len(t, kb.InlineKeyboard[2], 1)
	assert.Equal(t, "e", kb.InlineKeyboard[2][0].Text)
}

func TestWeekPaginationStopsAtCurrentWeek(t *testing.T) {
	assert.Len(t, WeekPagination("w:", 0), 1)
	assert.Len(t, WeekPagination("w:", 1), 2)
}

func toButtons(texts ...string) []models.InlineKeyboardButton {
	out := make([]models.InlineKeyboardButton, 0, len(texts))
	for _, text := range texts {
		out = append(out, Button(text, text))
	}
	return out
}
