package admin

import (
	"context"
	"html"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ========================
// Site content
// ========================

// HandleContent показывает редактируемые тексты
func HandleContent(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		text, kb := common.RenderContent(h, hc.TelegramID)
		hc.Answer("")
		edit(hc, text, kb)
	})
}

// HandleContentEdit просит ввести новый текст
func HandleContentEdit(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		idx, err := common.ParseIndex(callback.Data, callbacktypes.AdminContentEdit)
		if err != nil {
			common.HandleError(hc, err, "content_edit")
			return
		}
		id, err := hc.Option(callbacktypes.OptionContent, idx)
		if err != nil {
			common.HandleError(hc, err, "content_edit")
			return
		}

		hc.SetData(callbacktypes.DataContentID, id)
		prompt(hc, callbacktypes.StateAdminContent,
			"✏️ Enter the new text for <b>"+html.EscapeString(id)+"</b>.\n\nCurrent:\n"+
				html.EscapeString(h.Content.Get(id, "")))
	})
}

// HandleSectionOrder показывает порядок секций
func HandleSectionOrder(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		text, kb := common.RenderSectionOrder(h, hc.TelegramID)
		hc.Answer("")
		edit(hc, text, kb)
	})
}

// HandleSectionUp поднимает секцию на одну позицию
func HandleSectionUp(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		idx, err := common.ParseIndex(callback.Data, callbacktypes.AdminSectionUp)
		if err != nil {
			common.HandleError(hc, err, "section_up")
			return
		}

		raw, ok := hc.GetData(callbacktypes.OptionSections)
		order, _ := raw.([]string)
		if !ok || idx == 0 || idx >= len(order) {
			common.HandleError(hc, common.ErrOptionExpired, "section_up")
			return
		}

		h.Content.UpdateSectionOrder(MoveUp(order, idx))

		text, kb := common.RenderSectionOrder(h, hc.TelegramID)
		hc.Answer("")
		edit(hc, text, kb)
	})
}

// MoveUp возвращает копию order с элементом idx, переставленным на позицию выше
func MoveUp(order []string, idx int) []string {
	out := append([]string(nil), order...)
	if idx <= 0 || idx >= len(out) {
		return out
	}
	out[idx-1], out[idx] = out[idx], out[idx-1]
	return out
}
