package callbacks

import (
	"reflect"
	"testing"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/admin"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/booking"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameFunc(t *testing.T, want interface{}, got HandlerFunc) {
	t.Helper()
	assert.Equal(t, reflect.ValueOf(want).Pointer(), reflect.ValueOf(got).Pointer())
}

func TestResolveDistinguishesSimilarPrefixes(t *testing.T) {
	cases := []struct {
		data string
		want interface{}
	}{
		{callbacktypes.BookSearch, booking.HandleSearch},
		{callbacktypes.BookSearchClear, booking.HandleSearchClear},
		{callbacktypes.BookDates + "1", booking.HandleDates},
		{callbacktypes.BookDate + "2025-03-10", booking.HandleDate},
		{callbacktypes.BookTimes, booking.HandleTimes},
		{callbacktypes.BookTime + "2", booking.HandleTime},
		{callbacktypes.AdminRepairs, admin.HandleGlobalRepairs},
		{callbacktypes.AdminRepairAdd + callbacktypes.RepairScopeGlobal, admin.HandleRepairAdd},
		{callbacktypes.AdminDates + "0", admin.HandleDates},
		{callbacktypes.AdminDateInput, admin.HandleDateInput},
		{callbacktypes.AdminDate + "2025-03-10", admin.HandleDate},
		{callbacktypes.AdminContent, admin.HandleContent},
		{callbacktypes.AdminContentEdit + "1", admin.HandleContentEdit},
		{callbacktypes.AdminSectionOrder, admin.HandleSectionOrder},
		{callbacktypes.AdminSectionUp + "1", admin.HandleSectionUp},
	}

	for _, tc := range cases {
		t.Run(tc.data, func(t *testing.T) {
			handler, ok := Resolve(tc.data)
			require.True(t, ok)
			sameFunc(t, tc.want, handler)
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	_, ok := Resolve("view_subject:12")
	assert.False(t, ok)

	_, ok = Resolve("")
	assert.False(t, ok)
}

func TestCallbackDataFitsTelegramLimit(t *testing.T) {
	// Самые длинные варианты callback data, которые формируют экраны
	longest := []string{
		callbacktypes.AdminOverrideDel + "2025-12-31:99",
		callbacktypes.AdminOverrideReset + "2025-12-31",
		callbacktypes.AdminModelAdd + callbacktypes.ModelAddSeries + "99",
		callbacktypes.AdminRepairDel + callbacktypes.RepairScopeDevice + ":99",
		callbacktypes.BookSubmit + "appointment",
	}
	for _, data := range longest {
		assert.LessOrEqual(t, len(data), 64, data)
	}
}
