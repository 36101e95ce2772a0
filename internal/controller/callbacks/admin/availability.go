package admin

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common/keyboard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Availability management
// ========================

// HandleAvailability показывает слоты по умолчанию и закрытые даты
func HandleAvailability(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		text, kb := common.RenderAvailability(h, hc.TelegramID)
		hc.Answer("")
		edit(hc, text, kb)
	})
}

// HandleSlotAdd просит ввести слот по умолчанию
func HandleSlotAdd(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		prompt(hc, callbacktypes.StateAdminSlot,
			"➕ Enter the new default time slot (for example <i>09:00 - 11:00</i>):")
	})
}

// HandleSlotDelete удаляет слот по умолчанию
func HandleSlotDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		idx, err := common.ParseIndex(callback.Data, callbacktypes.AdminSlotDel)
		if err != nil {
			common.HandleError(hc, err, "slot_delete")
			return
		}
		slot, err := hc.Option(callbacktypes.OptionDefaultSlots, idx)
		if err != nil {
			common.HandleError(hc, err, "slot_delete")
			return
		}

		h.Availability.RemoveDefaultSlot(slot)

		text, kb := common.RenderAvailability(h, hc.TelegramID)
		hc.Answer("🗑 " + slot + " removed")
		edit(hc, text, kb)
	})
}

// HandleDates показывает неделю дат с их состоянием
func HandleDates(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		offset, err := common.ParseIndex(callback.Data, callbacktypes.AdminDates)
		if err != nil {
			common.HandleError(hc, err, "admin_dates")
			return
		}
		hc.ClearState()
		text, kb := common.RenderAdminDates(h, offset)
		hc.Answer("")
		edit(hc, text, kb)
	})
}

// HandleDate открывает редактирование даты
func HandleDate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	withDate(ctx, b, callback, h, callbacktypes.AdminDate, "admin_date", func(hc *common.HandlerContext, date string) {
		hc.ClearState()
		text, kb := common.RenderAdminDate(h, hc.TelegramID, date)
		hc.Answer("")
		edit(hc, text, kb)
	})
}

// HandleDateInput просит ввести дату вручную
func HandleDateInput(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		prompt(hc, callbacktypes.StateAdminDate, "📅 Enter the date as <code>YYYY-MM-DD</code>:")
	})
}

// HandleToggleDate закрывает или открывает дату
func HandleToggleDate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	withDate(ctx, b, callback, h, callbacktypes.AdminToggleDate, "toggle_date", func(hc *common.HandlerContext, date string) {
		disabled := h.Availability.ToggleDateDisabled(date)

		answer := "✅ Date opened"
		if disabled {
			answer = "🚫 Date closed"
		}
		text, kb := common.RenderAdminDate(h, hc.TelegramID, date)
		hc.Answer(answer)
		edit(hc, text, kb)
	})
}

// HandleOverrideAdd просит ввести слот для конкретной даты
func HandleOverrideAdd(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	withDate(ctx, b, callback, h, callbacktypes.AdminOverrideAdd, "override_add", func(hc *common.HandlerContext, date string) {
		hc.SetData(callbacktypes.DataDate, date)
		prompt(hc, callbacktypes.StateAdminOverrideSlot,
			fmt.Sprintf("➕ Enter a time slot for <b>%s</b>:", formatting.FormatDateLong(date)))
	})
}

// HandleOverrideDelete удаляет слот конкретной даты
func HandleOverrideDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		arg, err := common.ParseArg(callback.Data, callbacktypes.AdminOverrideDel)
		if err != nil {
			common.HandleError(hc, err, "override_delete")
			return
		}
		date, idx, err := common.SplitLastIndex(arg)
		if err != nil {
			common.HandleError(hc, err, "override_delete")
			return
		}
		if _, ok := formatting.ParseDate(date); !ok {
			common.HandleError(hc, common.ErrInvalidFormat, "override_delete")
			return
		}
		slot, err := hc.Option(callbacktypes.OptionOverride+date, idx)
		if err != nil {
			common.HandleError(hc, err, "override_delete")
			return
		}

		h.Availability.RemoveOverrideSlot(date, slot)

		text, kb := common.RenderAdminDate(h, hc.TelegramID, date)
		hc.Answer("🗑 " + slot + " removed")
		edit(hc, text, kb)
	})
}

// HandleOverrideReset возвращает дате слоты по умолчанию
func HandleOverrideReset(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	withDate(ctx, b, callback, h, callbacktypes.AdminOverrideReset, "override_reset", func(hc *common.HandlerContext, date string) {
		h.Availability.ResetDate(date)

		text, kb := common.RenderAdminDate(h, hc.TelegramID, date)
		hc.Answer("↩️ Reset to default")
		edit(hc, text, kb)
	})
}

// HandleWeekImage отправляет картинку с доступностью на неделю
func HandleWeekImage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		offset, err := common.ParseIndex(callback.Data, callbacktypes.AdminWeekImage)
		if err != nil {
			common.HandleError(hc, err, "week_image")
			return
		}

		days := WeekAvailability(h, offset)
		imageData, err := common.GenerateWeekImage(days, h.Now())
		if err != nil {
			h.Logger.Error("Failed to generate week image", zap.Error(err))
			common.HandleError(hc, err, "week_image")
			return
		}

		kb := keyboard.NewBuilder().
			Row(keyboard.WeekPagination(callbacktypes.AdminWeekImage, offset)...).
			AddAdminMenuButton().
			Build()

		caption := fmt.Sprintf("🖼 <b>Week overview</b>\n%s - %s",
			formatting.FormatDate(days[0].Date), formatting.FormatDate(days[len(days)-1].Date))

		_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:      hc.ChatID,
			Photo:       &models.InputFileUpload{Filename: "week.png", Data: bytes.NewReader(imageData)},
			Caption:     caption,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: kb,
		})
		if err != nil {
			h.Logger.Error("Failed to send week image", zap.Error(err))
			common.HandleError(hc, err, "week_image")
			return
		}

		// Удаляем старое сообщение: фото нельзя получить редактированием текста
		if err := hc.DeleteMessage(); err != nil {
			h.Logger.Debug("Failed to delete previous message", zap.Error(err))
		}
		hc.Answer("")
	})
}

// WeekAvailability собирает доступность дней недели offset для картинки
func WeekAvailability(h *callbacktypes.Handler, offset int) []common.DayAvailability {
	dates := formatting.DatePage(h.Now(), offset)
	days := make([]common.DayAvailability, 0, len(dates))
	for _, date := range dates {
		days = append(days, common.DayAvailability{
			Date:     date,
			Slots:    h.Availability.ResolveSlots(date),
			Disabled: h.Availability.IsDisabled(date),
			Custom:   h.Availability.IsCustom(date),
		})
	}
	return days
}

// withDate разбирает дату из callback data и проверяет права администратора
func withDate(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	prefix, operation string,
	handler func(hc *common.HandlerContext, date string),
) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		date, err := common.ParseArg(callback.Data, prefix)
		if err != nil {
			common.HandleError(hc, err, operation)
			return
		}
		if _, ok := formatting.ParseDate(date); !ok {
			common.HandleError(hc, common.ErrInvalidFormat, operation)
			return
		}
		handler(hc, date)
	})
}
