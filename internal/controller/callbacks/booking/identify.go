package booking

import (
	"context"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ========================
// Identify Device Detour
// ========================

// HandleIdentifyTab переключает вкладку iPhone/Android
func HandleIdentifyTab(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		arg, err := common.ParseArg(callback.Data, callbacktypes.BookTab)
		if err != nil {
			common.HandleError(hc, err, "identify_tab")
			return
		}
		tab := wizard.IdentifyTab(arg)
		if tab != wizard.TabIOS && tab != wizard.TabAndroid {
			common.HandleError(hc, common.ErrInvalidFormat, "identify_tab")
			return
		}

		if err := hc.Wizard().SetIdentifyTab(tab); err != nil {
			common.HandleError(hc, err, "identify_tab")
			return
		}
		hc.Answer("")
		common.ShowStep(hc)
	})
}

// HandleFoundModel ведёт к моделям Apple
func HandleFoundModel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if err := hc.Wizard().FoundModel(); err != nil {
			common.HandleError(hc, err, "found_model")
			return
		}
		hc.Answer("")
		common.ShowStep(hc)
	})
}

// HandleKeepSearching ведёт к выбору бренда
func HandleKeepSearching(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if err := hc.Wizard().KeepSearching(); err != nil {
			common.HandleError(hc, err, "keep_searching")
			return
		}
		hc.Answer("")
		common.ShowStep(hc)
	})
}
