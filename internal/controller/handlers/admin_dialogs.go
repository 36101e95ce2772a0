package handlers

import (
	"context"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/repair_booking_bot/internal/service"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleAdminInput обрабатывает текстовый ввод администратора.
// После изменения отправляется обновлённый экран, из которого начинался ввод.
func (h *Handlers) handleAdminInput(ctx context.Context, b *bot.Bot, update *models.Update, current state.UserState) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if h.deps.IsAdmin == nil || !h.deps.IsAdmin(telegramID) {
		h.stateManager.ClearState(telegramID)
		return
	}

	maxLen := CatalogNameMaxLength
	if current == state.StateAdminContent {
		maxLen = ContentMaxLength
	}
	value, err := validateText(update.Message.Text, maxLen)
	if err != nil {
		h.sendError(ctx, b, chatID, err.Error())
		return
	}

	data := h.stateManager.GetAllData(telegramID)
	sel := h.stateManager.Wizard(telegramID).Selection()

	switch current {
	case state.StateAdminBrand:
		h.deps.Catalog.AddBrand(sel.Category, value)
		h.finishCatalogEdit(ctx, b, chatID, telegramID)

	case state.StateAdminModel:
		mode, _ := data[callbacktypes.DataModelMode].(string)
		opts := service.ModelOptions{}
		switch mode {
		case callbacktypes.ModelAddNewSeries:
			opts.NewSeries = true
		case callbacktypes.ModelAddSeries:
			opts.Series, _ = data[callbacktypes.DataModelSeries].(string)
		}
		h.deps.Catalog.AddModel(sel.Brand, sel.Category, value, opts)
		h.finishCatalogEdit(ctx, b, chatID, telegramID)

	case state.StateAdminRepair:
		scope, _ := data[callbacktypes.DataRepairScope].(string)
		if scope == callbacktypes.RepairScopeGlobal {
			h.deps.Catalog.AddRepairAction(value, nil)
			h.stateManager.ClearState(telegramID)
			text, kb := common.RenderGlobalRepairs(h.deps, telegramID)
			h.sendScreen(ctx, b, chatID, text, kb)
			return
		}
		device := sel.Device()
		h.deps.Catalog.AddRepairAction(value, &device)
		h.finishCatalogEdit(ctx, b, chatID, telegramID)

	case state.StateAdminSlot:
		h.deps.Availability.AddDefaultSlot(value)
		h.stateManager.ClearState(telegramID)
		text, kb := common.RenderAvailability(h.deps, telegramID)
		h.sendScreen(ctx, b, chatID, text, kb)

	case state.StateAdminOverrideSlot:
		date, _ := data[callbacktypes.DataDate].(string)
		if date == "" {
			h.stateManager.ClearState(telegramID)
			return
		}
		h.deps.Availability.AddOverrideSlot(date, value)
		h.stateManager.ClearState(telegramID)
		text, kb := common.RenderAdminDate(h.deps, telegramID, date)
		h.sendScreen(ctx, b, chatID, text, kb)

	case state.StateAdminDate:
		if _, ok := formatting.ParseDate(value); !ok {
			h.sendError(ctx, b, chatID, common.ErrorMessage(wizard.ErrInvalidDate))
			return
		}
		h.stateManager.ClearState(telegramID)
		text, kb := common.RenderAdminDate(h.deps, telegramID, value)
		h.sendScreen(ctx, b, chatID, text, kb)

	case state.StateAdminContent:
		id, _ := data[callbacktypes.DataContentID].(string)
		if id == "" {
			h.stateManager.ClearState(telegramID)
			return
		}
		h.deps.Content.Update(id, value)
		h.stateManager.ClearState(telegramID)
		text, kb := common.RenderContent(h.deps, telegramID)
		h.sendScreen(ctx, b, chatID, text, kb)
	}

	h.logger.Info("Admin input applied",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(current)))
}

// finishCatalogEdit завершает ввод и показывает обновлённый шаг визарда
func (h *Handlers) finishCatalogEdit(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	h.stateManager.ClearState(telegramID)
	h.showStep(ctx, b, chatID, telegramID)
}
