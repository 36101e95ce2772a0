package common

import (
	"strings"
	"testing"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelOptionsMatchButtonOrder(t *testing.T) {
	ml := model.GroupedModels(
		model.Series{Name: "Galaxy S", Models: []string{"S24", "S23"}},
		model.Series{Name: "Galaxy A", Models: []string{"A55"}},
	)

	names, series := ModelOptions(ml)
	assert.Equal(t, []string{"S24", "S23", "A55"}, names)
	assert.Equal(t, []string{"Galaxy S", "Galaxy S", "Galaxy A"}, series)

	_, kb := BuildModelScreen(StepView{Step: wizard.StepModel, Models: ml})
	picks := callbacksWithPrefix(kb, callbacktypes.BookModel)
	require.Len(t, picks, len(names))
	for i, b := range picks {
		assert.Equal(t, names[i], b.Text)
	}
}

func TestModelOptionsFlat(t *testing.T) {
	names, series := ModelOptions(model.FlatModels("Pixel 8", "Pixel 7"))

	assert.Equal(t, []string{"Pixel 8", "Pixel 7"}, names)
	assert.Equal(t, []string{"", ""}, series)
}

func TestBrandScreenEditControls(t *testing.T) {
	v := StepView{
		Step:      wizard.StepBrand,
		Selection: model.Selection{Category: model.CategorySmartphone},
		Brands:    []string{"Apple", "Samsung"},
	}

	_, kb := BuildBrandScreen(v)
	assert.Empty(t, callbacksWithPrefix(kb, callbacktypes.AdminBrandDel))

	v.EditMode = true
	_, kb = BuildBrandScreen(v)
	assert.Len(t, callbacksWithPrefix(kb, callbacktypes.AdminBrandDel), 2)
	assert.Len(t, callbacksWithPrefix(kb, callbacktypes.AdminBrandAdd), 1)
}

func TestFinalizeScreenPendingSubmit(t *testing.T) {
	v := StepView{
		Step:        wizard.StepFinalize,
		Selection:   model.Selection{Brand: "Apple", Model: "iPhone 15", Repair: "Screen"},
		Appointment: wizard.SubmitPending,
	}

	text, kb := BuildFinalizeScreen(v)
	assert.Contains(t, text, "iPhone 15")

	var labels []string
	for _, b := range callbacksWithPrefix(kb, callbacktypes.BookSubmit) {
		labels = append(labels, b.Text)
	}
	assert.Equal(t, []string{"📨 Send Inquiry", "⏳ Booking..."}, labels)
	assert.Len(t, callbacksWithPrefix(kb, callbacktypes.BookReset), 1)
}

func TestFinalizeScreenEscapesInput(t *testing.T) {
	v := StepView{
		Step:      wizard.StepFinalize,
		Selection: model.Selection{Brand: "Apple", Model: "iPhone", Name: "<b>Bob</b>"},
	}

	text, _ := BuildFinalizeScreen(v)
	assert.Contains(t, text, "&lt;b&gt;Bob&lt;/b&gt;")
}

func callbacksWithPrefix(kb *models.InlineKeyboardMarkup, prefix string) []models.InlineKeyboardButton {
	var out []models.InlineKeyboardButton
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			if strings.HasPrefix(b.CallbackData, prefix) {
				out = append(out, b)
			}
		}
	}
	return out
}
