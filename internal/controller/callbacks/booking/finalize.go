package booking

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Finalize Step (contacts, date, time, submit)
// ========================

// HandleField просит ввести значение поля формы
func HandleField(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		arg, err := common.ParseArg(callback.Data, callbacktypes.BookField)
		if err != nil {
			common.HandleError(hc, err, "field")
			return
		}

		field := model.Field(arg)
		switch field {
		case model.FieldName, model.FieldPhone, model.FieldEmail, model.FieldAddress:
		default:
			common.HandleError(hc, wizard.ErrUnknownField, "field")
			return
		}
		if hc.Wizard().Step() != wizard.StepFinalize {
			common.HandleError(hc, wizard.ErrInvalidTransition, "field")
			return
		}

		hc.SetState(callbacktypes.StateFieldInput)
		hc.SetData(callbacktypes.DataField, string(field))
		hc.Answer("")

		prompt := fmt.Sprintf("✏️ Enter your <b>%s</b>:\n\nUse /cancel to stop.", field.Label())
		if err := hc.SendMessage(prompt, nil); err != nil {
			h.Logger.Error("Failed to send field prompt", zap.Error(err))
		}
	})
}

// HandleDates показывает неделю дат для визита
func HandleDates(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		offset, err := common.ParseIndex(callback.Data, callbacktypes.BookDates)
		if err != nil {
			common.HandleError(hc, err, "dates")
			return
		}
		if hc.Wizard().Step() != wizard.StepFinalize {
			common.HandleError(hc, wizard.ErrInvalidTransition, "dates")
			return
		}

		dates := formatting.DatePage(h.Now(), offset)
		options := make([]common.DateOption, 0, len(dates))
		for _, date := range dates {
			options = append(options, common.DateOption{
				Date:      date,
				Available: h.Availability.IsAvailable(date),
			})
		}

		text, kb := common.BuildDatePickerScreen(options, offset)
		hc.Answer("")
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show date picker", zap.Error(err))
		}
	})
}

// HandleDate выбирает дату и сразу предлагает время
func HandleDate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		date, err := common.ParseArg(callback.Data, callbacktypes.BookDate)
		if err != nil {
			common.HandleError(hc, err, "date")
			return
		}

		if err := hc.Wizard().SetField(model.FieldDate, date); err != nil {
			common.HandleError(hc, err, "date")
			return
		}

		hc.Answer("")
		showSlots(hc)
	})
}

// HandleTimes показывает слоты выбранной даты
func HandleTimes(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		sel := hc.Wizard().Selection()
		if sel.Date == "" {
			common.HandleError(hc, wizard.ErrNoDate, "times")
			return
		}
		hc.Answer("")
		showSlots(hc)
	})
}

// HandleTime выбирает слот времени
func HandleTime(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		idx, err := common.ParseIndex(callback.Data, callbacktypes.BookTime)
		if err != nil {
			common.HandleError(hc, err, "time")
			return
		}
		slot, err := hc.Option(callbacktypes.OptionSlots, idx)
		if err != nil {
			common.HandleError(hc, err, "time")
			return
		}

		if err := hc.Wizard().SetField(model.FieldTime, slot); err != nil {
			common.HandleError(hc, err, "time")
			return
		}

		hc.Answer("🕐 " + slot)
		common.ShowStep(hc)
	})
}

// showSlots рисует выбор времени для выбранной даты
func showSlots(hc *common.HandlerContext) {
	w := hc.Wizard()
	sel := w.Selection()
	slots := w.AvailableSlots()
	common.Remember(hc.Handler.StateManager, hc.TelegramID, callbacktypes.OptionSlots, slots)

	text, kb := common.BuildSlotPickerScreen(sel.Date, slots, sel.Time)
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to show slot picker", zap.Error(err))
	}
}

// HandleSubmit отправляет заявку выбранного вида.
// Пока шлюз отвечает, кнопка показывает "отправляется", остальные кнопки продолжают работать.
func HandleSubmit(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		arg, err := common.ParseArg(callback.Data, callbacktypes.BookSubmit)
		if err != nil {
			common.HandleError(hc, err, "submit")
			return
		}
		kind := model.RequestType(arg)
		if kind != model.RequestInquiry && kind != model.RequestAppointment {
			common.HandleError(hc, common.ErrInvalidFormat, "submit")
			return
		}

		w := hc.Wizard()
		if w.Step() != wizard.StepFinalize {
			common.HandleError(hc, wizard.ErrInvalidTransition, "submit")
			return
		}
		if err := w.Validate(kind); err != nil {
			common.HandleError(hc, err, "submit")
			return
		}
		if w.Status(kind) == wizard.SubmitPending {
			common.HandleError(hc, wizard.ErrSubmitInFlight, "submit")
			return
		}

		// Показываем состояние "отправляется" до ответа шлюза
		v := common.BuildStepView(h, hc.TelegramID)
		if kind == model.RequestAppointment {
			v.Appointment = wizard.SubmitPending
		} else {
			v.Inquiry = wizard.SubmitPending
		}
		text, kb := common.BuildFinalizeScreen(v)
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Warn("Failed to show pending state", zap.Error(err))
		}
		hc.Answer("")

		h.Logger.Info("Submitting request",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.String("kind", string(kind)))

		if _, err := w.Submit(ctx, kind); err != nil {
			h.Logger.Warn("Request submission failed",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.String("kind", string(kind)),
				zap.Error(err))
			if sendErr := hc.SendMessage("❌ "+common.ErrorMessage(err), nil); sendErr != nil {
				h.Logger.Error("Failed to send submission error", zap.Error(sendErr))
			}
		}

		common.ShowStep(hc)
	})
}
