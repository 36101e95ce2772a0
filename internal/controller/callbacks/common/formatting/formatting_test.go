package formatting

import (
	"testing"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
	"github.com/stretchr/testify/assert"
)

func TestDatePage(t *testing.T) {
	today := time.Date(2025, 3, 30, 18, 0, 0, 0, time.UTC)

	page := DatePage(today, 0)
	assert.Len(t, page, DaysPerPage)
	assert.Equal(t, "2025-03-30", page[0])
	assert.Equal(t, "2025-04-05", page[6])

	assert.Equal(t, "2025-04-06", DatePage(today, 1)[0])
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mon, Mar 10", FormatDate("2025-03-10"))
	assert.Equal(t, "Monday, March 10, 2025", FormatDateLong("2025-03-10"))
	assert.Equal(t, "garbage", FormatDate("garbage"))
}

func TestSubmitButtonText(t *testing.T) {
	assert.Equal(t, "📨 Send Inquiry", SubmitButtonText(model.RequestInquiry, wizard.SubmitIdle))
	assert.Equal(t, "⏳ Sending...", SubmitButtonText(model.RequestInquiry, wizard.SubmitPending))
	assert.Equal(t, "⏳ Booking...", SubmitButtonText(model.RequestAppointment, wizard.SubmitPending))
	assert.Equal(t, "📅 Book Appointment", SubmitButtonText(model.RequestAppointment, wizard.SubmitFailed))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 slot", PluralizeSlots(1))
	assert.Equal(t, "0 slots", PluralizeSlots(0))
	assert.Equal(t, "3 models", PluralizeModels(3))
}
