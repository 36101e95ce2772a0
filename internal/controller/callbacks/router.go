package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/admin"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/booking"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandlerFunc - обработчик callback query
type HandlerFunc func(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler)

// Resolve находит обработчик для callback data.
// Кнопки без аргумента сравниваются целиком, с аргументом - по префиксу.
func Resolve(data string) (HandlerFunc, bool) {
	switch {
	case data == callbacktypes.Noop:
		return common.HandleNoop, true

	// Booking wizard
	case strings.HasPrefix(data, callbacktypes.BookCategory):
		return booking.HandlePickCategory, true
	case strings.HasPrefix(data, callbacktypes.BookBrand):
		return booking.HandlePickBrand, true
	case strings.HasPrefix(data, callbacktypes.BookModel):
		return booking.HandlePickModel, true
	case strings.HasPrefix(data, callbacktypes.BookRepair):
		return booking.HandlePickRepair, true
	case data == callbacktypes.BookBack:
		return booking.HandleBack, true
	case data == callbacktypes.BookReset:
		return booking.HandleReset, true
	case data == callbacktypes.BookShow:
		return booking.HandleShow, true
	case strings.HasPrefix(data, callbacktypes.BookTab):
		return booking.HandleIdentifyTab, true
	case data == callbacktypes.BookFound:
		return booking.HandleFoundModel, true
	case data == callbacktypes.BookKeep:
		return booking.HandleKeepSearching, true
	case data == callbacktypes.BookSearch:
		return booking.HandleSearch, true
	case data == callbacktypes.BookSearchClear:
		return booking.HandleSearchClear, true
	case strings.HasPrefix(data, callbacktypes.BookField):
		return booking.HandleField, true
	case strings.HasPrefix(data, callbacktypes.BookDates):
		return booking.HandleDates, true
	case strings.HasPrefix(data, callbacktypes.BookDate):
		return booking.HandleDate, true
	case data == callbacktypes.BookTimes:
		return booking.HandleTimes, true
	case strings.HasPrefix(data, callbacktypes.BookTime):
		return booking.HandleTime, true
	case strings.HasPrefix(data, callbacktypes.BookSubmit):
		return booking.HandleSubmit, true

	// Admin: menu and catalog
	case data == callbacktypes.AdminMenu:
		return admin.HandleMenu, true
	case data == callbacktypes.AdminEditMode:
		return admin.HandleToggleEditMode, true
	case data == callbacktypes.AdminBrandAdd:
		return admin.HandleBrandAdd, true
	case strings.HasPrefix(data, callbacktypes.AdminBrandDel):
		return admin.HandleBrandDelete, true
	case strings.HasPrefix(data, callbacktypes.AdminModelAdd):
		return admin.HandleModelAdd, true
	case strings.HasPrefix(data, callbacktypes.AdminModelDel):
		return admin.HandleModelDelete, true
	case data == callbacktypes.AdminRepairs:
		return admin.HandleGlobalRepairs, true
	case strings.HasPrefix(data, callbacktypes.AdminRepairAdd):
		return admin.HandleRepairAdd, true
	case strings.HasPrefix(data, callbacktypes.AdminRepairDel):
		return admin.HandleRepairDelete, true

	// Admin: availability
	case data == callbacktypes.AdminAvailability:
		return admin.HandleAvailability, true
	case data == callbacktypes.AdminSlotAdd:
		return admin.HandleSlotAdd, true
	case strings.HasPrefix(data, callbacktypes.AdminSlotDel):
		return admin.HandleSlotDelete, true
	case strings.HasPrefix(data, callbacktypes.AdminDates):
		return admin.HandleDates, true
	case data == callbacktypes.AdminDateInput:
		return admin.HandleDateInput, true
	case strings.HasPrefix(data, callbacktypes.AdminDate):
		return admin.HandleDate, true
	case strings.HasPrefix(data, callbacktypes.AdminToggleDate):
		return admin.HandleToggleDate, true
	case strings.HasPrefix(data, callbacktypes.AdminOverrideAdd):
		return admin.HandleOverrideAdd, true
	case strings.HasPrefix(data, callbacktypes.AdminOverrideDel):
		return admin.HandleOverrideDelete, true
	case strings.HasPrefix(data, callbacktypes.AdminOverrideReset):
		return admin.HandleOverrideReset, true
	case strings.HasPrefix(data, callbacktypes.AdminWeekImage):
		return admin.HandleWeekImage, true

	// Admin: content
	case data == callbacktypes.AdminContent:
		return admin.HandleContent, true
	case strings.HasPrefix(data, callbacktypes.AdminContentEdit):
		return admin.HandleContentEdit, true
	case data == callbacktypes.AdminSectionOrder:
		return admin.HandleSectionOrder, true
	case strings.HasPrefix(data, callbacktypes.AdminSectionUp):
		return admin.HandleSectionUp, true
	}

	return nil, false
}

// Route маршрутизирует callback query к соответствующему обработчику
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	handler, ok := Resolve(callback.Data)
	if !ok {
		h.Logger.Warn("Unknown callback", zap.String("data", callback.Data))
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	handler(ctx, b, callback, h)
}
