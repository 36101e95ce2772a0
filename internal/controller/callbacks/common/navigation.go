package common

import (
	"context"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Common Navigation Helpers
// ========================
// Отрисовка текущего шага нужна и callback handlers, и обработчикам текстовых сообщений

// BuildStepView собирает данные текущего шага визарда пользователя
func BuildStepView(h *callbacktypes.Handler, telegramID int64) StepView {
	w := h.StateManager.Wizard(telegramID)
	step := w.Step()

	v := StepView{
		Step:          step,
		Selection:     w.Selection(),
		Search:        w.Search(),
		Tab:           w.Tab(),
		Inquiry:       w.Status(model.RequestInquiry),
		Appointment:   w.Status(model.RequestAppointment),
		Submitted:     w.SubmittedKind(),
		EditMode:      h.IsAdmin != nil && h.IsAdmin(telegramID) && h.StateManager.EditMode(telegramID),
		FallbackPhone: h.FallbackPhone,
	}

	switch step {
	case wizard.StepCategory:
		v.HeroTitle = h.Content.Get(model.ContentHeroTitle, "")
		v.HeroSubtitle = h.Content.Get(model.ContentHeroSubtitle, "")
	case wizard.StepBrand:
		v.Brands = w.Brands()
	case wizard.StepModel:
		v.Models = w.Models()
	case wizard.StepRepair:
		v.Repairs = w.Repairs()
	}

	return v
}

// RememberStepOptions запоминает списки, на которые ссылаются кнопки шага
func RememberStepOptions(sm callbacktypes.StateManager, telegramID int64, v StepView) {
	switch v.Step {
	case wizard.StepBrand:
		Remember(sm, telegramID, callbacktypes.OptionBrands, v.Brands)
	case wizard.StepModel:
		names, series := ModelOptions(v.Models)
		Remember(sm, telegramID, callbacktypes.OptionModels, names)
		Remember(sm, telegramID, callbacktypes.OptionModelSeries, series)
		Remember(sm, telegramID, callbacktypes.OptionSeries, SeriesNames(v.Models))
	case wizard.StepRepair:
		names := make([]string, 0, len(v.Repairs))
		ids := make([]string, 0, len(v.Repairs))
		for _, r := range v.Repairs {
			names = append(names, r.Name)
			ids = append(ids, r.ID)
		}
		Remember(sm, telegramID, callbacktypes.OptionRepairs, names)
		Remember(sm, telegramID, callbacktypes.OptionRepairIDs, ids)
	}
}

// RenderStep формирует экран текущего шага и запоминает его варианты
func RenderStep(h *callbacktypes.Handler, telegramID int64) (string, *models.InlineKeyboardMarkup) {
	v := BuildStepView(h, telegramID)
	RememberStepOptions(h.StateManager, telegramID, v)
	return BuildStepScreen(v)
}

// ShowStep перерисовывает сообщение callback'а на текущий шаг
func ShowStep(hc *HandlerContext) {
	text, kb := RenderStep(hc.Handler, hc.TelegramID)
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to render step",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
	}
}

// HandleNoop отвечает на нажатие кнопки-подписи
func HandleNoop(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, _ *callbacktypes.Handler) {
	AnswerCallback(ctx, b, callback.ID, "")
}
