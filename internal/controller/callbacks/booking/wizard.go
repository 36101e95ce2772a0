package booking

import (
	"context"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Booking Wizard Navigation
// ========================

// HandlePickCategory выбирает категорию устройства (шаг 1)
func HandlePickCategory(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		arg, err := common.ParseArg(callback.Data, callbacktypes.BookCategory)
		if err != nil {
			common.HandleError(hc, err, "pick_category")
			return
		}
		category, ok := model.ParseCategory(arg)
		if !ok {
			common.HandleError(hc, wizard.ErrUnknownCategory, "pick_category")
			return
		}

		if err := hc.Wizard().PickCategory(category); err != nil {
			common.HandleError(hc, err, "pick_category")
			return
		}

		hc.Answer("")
		common.ShowStep(hc)
	})
}

// HandlePickBrand выбирает бренд (шаг 2)
func HandlePickBrand(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	pickOption(ctx, b, callback, h, callbacktypes.BookBrand, callbacktypes.OptionBrands, "pick_brand",
		func(w *wizard.Wizard, brand string) error { return w.PickBrand(brand) })
}

// HandlePickModel выбирает модель (шаг 3)
func HandlePickModel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	pickOption(ctx, b, callback, h, callbacktypes.BookModel, callbacktypes.OptionModels, "pick_model",
		func(w *wizard.Wizard, name string) error { return w.PickModel(name) })
}

// HandlePickRepair выбирает ремонт (шаг 4)
func HandlePickRepair(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	pickOption(ctx, b, callback, h, callbacktypes.BookRepair, callbacktypes.OptionRepairs, "pick_repair",
		func(w *wizard.Wizard, repair string) error { return w.PickRepair(repair) })
}

// pickOption разбирает индекс из callback, находит вариант и применяет его к визарду
func pickOption(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	prefix, optionKey, operation string,
	apply func(w *wizard.Wizard, value string) error,
) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		idx, err := common.ParseIndex(callback.Data, prefix)
		if err != nil {
			common.HandleError(hc, err, operation)
			return
		}
		value, err := hc.Option(optionKey, idx)
		if err != nil {
			common.HandleError(hc, err, operation)
			return
		}

		if err := apply(hc.Wizard(), value); err != nil {
			common.HandleError(hc, err, operation)
			return
		}

		h.Logger.Debug("Wizard option picked",
			zap.String("operation", operation),
			zap.String("value", value),
			zap.Int64("telegram_id", hc.TelegramID))
		hc.Answer("")
		common.ShowStep(hc)
	})
}

// HandleBack возвращает на предыдущий шаг
func HandleBack(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		hc.Wizard().Back()
		hc.Answer("")
		common.ShowStep(hc)
	})
}

// HandleReset начинает запись заново
func HandleReset(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.Wizard().Reset()
		common.LogAndAnswer(hc, "Wizard reset", "")
		common.ShowStep(hc)
	})
}

// HandleShow перерисовывает текущий шаг и отменяет ожидание ввода
func HandleShow(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		hc.Answer("")
		common.ShowStep(hc)
	})
}

// HandleSearch просит ввести строку поиска
func HandleSearch(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		step := hc.Wizard().Step()
		if step != wizard.StepBrand && step != wizard.StepModel {
			common.HandleError(hc, wizard.ErrInvalidTransition, "search")
			return
		}

		hc.SetState(callbacktypes.StateSearch)
		hc.Answer("")
		if err := hc.SendMessage("🔍 Type a brand or model name to filter the list.\n\nUse /cancel to stop.", nil); err != nil {
			h.Logger.Error("Failed to send search prompt", zap.Error(err))
		}
	})
}

// HandleSearchClear сбрасывает фильтр поиска
func HandleSearchClear(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.Wizard().SetSearch("")
		hc.Answer("Search cleared")
		common.ShowStep(hc)
	})
}
