package admin

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Catalog editing (edit mode)
// ========================
// Бренд, модель и устройство берутся из текущего выбора в визарде администратора.

// HandleBrandAdd просит ввести название бренда
func HandleBrandAdd(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithEditMode(ctx, b, callback, h, func(hc *common.HandlerContext) {
		category := hc.Wizard().Selection().Category
		if !category.IsReal() {
			common.HandleError(hc, common.ErrOptionExpired, "brand_add")
			return
		}
		prompt(hc, callbacktypes.StateAdminBrand,
			"➕ Enter the new <b>"+category.DisplayName()+"</b> brand name:")
	})
}

// HandleBrandDelete удаляет бренд из текущей категории
func HandleBrandDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithEditMode(ctx, b, callback, h, func(hc *common.HandlerContext) {
		idx, err := common.ParseIndex(callback.Data, callbacktypes.AdminBrandDel)
		if err != nil {
			common.HandleError(hc, err, "brand_delete")
			return
		}
		brand, err := hc.Option(callbacktypes.OptionBrands, idx)
		if err != nil {
			common.HandleError(hc, err, "brand_delete")
			return
		}

		category := hc.Wizard().Selection().Category
		h.Catalog.DeleteBrand(category, brand)

		hc.Answer("🗑 " + brand + " deleted")
		common.ShowStep(hc)
	})
}

// HandleModelAdd просит ввести модель или серию. Режим: flat, new_series, series:N
func HandleModelAdd(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithEditMode(ctx, b, callback, h, func(hc *common.HandlerContext) {
		mode, err := common.ParseArg(callback.Data, callbacktypes.AdminModelAdd)
		if err != nil {
			common.HandleError(hc, err, "model_add")
			return
		}

		sel := hc.Wizard().Selection()
		if sel.Brand == "" {
			common.HandleError(hc, common.ErrOptionExpired, "model_add")
			return
		}

		switch {
		case mode == callbacktypes.ModelAddFlat:
			hc.SetData(callbacktypes.DataModelMode, callbacktypes.ModelAddFlat)
			prompt(hc, callbacktypes.StateAdminModel, "➕ Enter the new <b>"+html.EscapeString(sel.Brand)+"</b> model name:")
		case mode == callbacktypes.ModelAddNewSeries:
			hc.SetData(callbacktypes.DataModelMode, callbacktypes.ModelAddNewSeries)
			prompt(hc, callbacktypes.StateAdminModel, "➕ Enter the new series name (for example <i>Galaxy S</i>):")
		case strings.HasPrefix(mode, callbacktypes.ModelAddSeries):
			idx, err := common.ParseIndex(mode, callbacktypes.ModelAddSeries)
			if err != nil {
				common.HandleError(hc, err, "model_add")
				return
			}
			series, err := hc.Option(callbacktypes.OptionSeries, idx)
			if err != nil {
				common.HandleError(hc, err, "model_add")
				return
			}
			hc.SetData(callbacktypes.DataModelMode, callbacktypes.ModelAddSeries)
			hc.SetData(callbacktypes.DataModelSeries, series)
			count := 0
			if list, ok := h.Catalog.ListModels(sel.Brand, sel.Category).SeriesModels(series); ok {
				count = len(list)
			}
			prompt(hc, callbacktypes.StateAdminModel, fmt.Sprintf("➕ <b>%s</b> has %s. Enter the model name to add:",
				html.EscapeString(series), formatting.PluralizeModels(count)))
		default:
			common.HandleError(hc, common.ErrInvalidFormat, "model_add")
		}
	})
}

// HandleModelDelete удаляет модель текущего бренда
func HandleModelDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithEditMode(ctx, b, callback, h, func(hc *common.HandlerContext) {
		idx, err := common.ParseIndex(callback.Data, callbacktypes.AdminModelDel)
		if err != nil {
			common.HandleError(hc, err, "model_delete")
			return
		}
		name, err := hc.Option(callbacktypes.OptionModels, idx)
		if err != nil {
			common.HandleError(hc, err, "model_delete")
			return
		}
		series, err := hc.Option(callbacktypes.OptionModelSeries, idx)
		if err != nil {
			common.HandleError(hc, err, "model_delete")
			return
		}

		sel := hc.Wizard().Selection()
		h.Catalog.DeleteModel(sel.Brand, sel.Category, name, series)

		hc.Answer("🗑 " + name + " deleted")
		common.ShowStep(hc)
	})
}

// HandleGlobalRepairs показывает ремонты по умолчанию
func HandleGlobalRepairs(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		text, kb := common.RenderGlobalRepairs(h, hc.TelegramID)
		hc.Answer("")
		edit(hc, text, kb)
	})
}

// HandleRepairAdd просит ввести название ремонта для устройства или для всех
func HandleRepairAdd(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		scope, err := common.ParseArg(callback.Data, callbacktypes.AdminRepairAdd)
		if err != nil {
			common.HandleError(hc, err, "repair_add")
			return
		}

		switch scope {
		case callbacktypes.RepairScopeGlobal:
			hc.SetData(callbacktypes.DataRepairScope, scope)
			prompt(hc, callbacktypes.StateAdminRepair, "➕ Enter the new default repair name:")
		case callbacktypes.RepairScopeDevice:
			if err := hc.RequireEditMode(); err != nil {
				common.HandleError(hc, err, "repair_add")
				return
			}
			sel := hc.Wizard().Selection()
			if sel.Model == "" {
				common.HandleError(hc, common.ErrOptionExpired, "repair_add")
				return
			}
			hc.SetData(callbacktypes.DataRepairScope, scope)
			prompt(hc, callbacktypes.StateAdminRepair,
				"➕ Enter the repair name for <b>"+html.EscapeString(sel.Brand+" "+sel.Model)+"</b>:")
		default:
			common.HandleError(hc, common.ErrInvalidFormat, "repair_add")
		}
	})
}

// HandleRepairDelete удаляет ремонт: device:N из списка устройства, global:N из общего
func HandleRepairDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		arg, err := common.ParseArg(callback.Data, callbacktypes.AdminRepairDel)
		if err != nil {
			common.HandleError(hc, err, "repair_delete")
			return
		}
		scope, idx, err := common.SplitLastIndex(arg)
		if err != nil {
			common.HandleError(hc, err, "repair_delete")
			return
		}

		switch scope {
		case callbacktypes.RepairScopeGlobal:
			id, err := hc.Option(callbacktypes.OptionGlobalRepair, idx)
			if err != nil {
				common.HandleError(hc, err, "repair_delete")
				return
			}
			h.Catalog.DeleteRepairAction(id, nil)
			text, kb := common.RenderGlobalRepairs(h, hc.TelegramID)
			hc.Answer("🗑 Deleted")
			edit(hc, text, kb)
		case callbacktypes.RepairScopeDevice:
			if err := hc.RequireEditMode(); err != nil {
				common.HandleError(hc, err, "repair_delete")
				return
			}
			id, err := hc.Option(callbacktypes.OptionRepairIDs, idx)
			if err != nil {
				common.HandleError(hc, err, "repair_delete")
				return
			}
			device := deviceOf(hc)
			h.Catalog.DeleteRepairAction(id, &device)
			h.Logger.Debug("Device repair deleted",
				zap.String("device", device.String()),
				zap.String("id", id))
			hc.Answer("🗑 Deleted")
			common.ShowStep(hc)
		default:
			common.HandleError(hc, common.ErrInvalidFormat, "repair_delete")
		}
	})
}

func deviceOf(hc *common.HandlerContext) model.DeviceKey {
	sel := hc.Wizard().Selection()
	return sel.Device()
}
