package service

import (
	"testing"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newAvailability(t *testing.T) (*AvailabilityService, *recordingSaver) {
	t.Helper()
	saver := &recordingSaver{}
	return NewAvailabilityService(model.DefaultAvailability(), saver, zap.NewNop()), saver
}

func TestResolveSlots(t *testing.T) {
	s, _ := newAvailability(t)
	defaults := s.DefaultSlots()

	assert.Equal(t, defaults, s.ResolveSlots("2025-06-01"))

	s.SetDateOverride("2025-06-02", []string{"10:00 AM - 12:00 PM"})
	assert.Equal(t, []string{"10:00 AM - 12:00 PM"}, s.ResolveSlots("2025-06-02"))

	s.ToggleDateDisabled("2025-06-02")
	assert.Empty(t, s.ResolveSlots("2025-06-02"))
	assert.False(t, s.IsAvailable("2025-06-02"))

	s.ToggleDateDisabled("2025-06-02")
	assert.Equal(t, []string{"10:00 AM - 12:00 PM"}, s.ResolveSlots("2025-06-02"))
}

func TestToggleIsInvolution(t *testing.T) {
	s, _ := newAvailability(t)

	assert.True(t, s.ToggleDateDisabled("2025-06-03"))
	assert.True(t, s.IsDisabled("2025-06-03"))
	assert.False(t, s.ToggleDateDisabled("2025-06-03"))
	assert.False(t, s.IsDisabled("2025-06-03"))
	assert.Empty(t, s.DisabledDates())
}

func TestEmptyOverrideKeepsDateAvailable(t *testing.T) {
	s, _ := newAvailability(t)

	s.SetDateOverride("2025-06-04", []string{})

	assert.False(t, s.IsDisabled("2025-06-04"))
	assert.True(t, s.IsAvailable("2025-06-04"))
	assert.Empty(t, s.ResolveSlots("2025-06-04"))
	assert.True(t, s.HasOverride("2025-06-04"))
}

func TestAvailableWithoutDefaultSlots(t *testing.T) {
	s, _ := newAvailability(t)
	for _, slot := range s.DefaultSlots() {
		s.RemoveDefaultSlot(slot)
	}

	assert.Empty(t, s.ResolveSlots("2025-06-06"))
	assert.True(t, s.IsAvailable("2025-06-06"))
}

func TestResetDateKeepsShadowOverride(t *testing.T) {
	s, saver := newAvailability(t)
	s.RemoveOverrideSlot("2025-06-05", "9:00 AM - 11:00 AM")
	assert.True(t, s.IsCustom("2025-06-05"))

	s.ResetDate("2025-06-05")

	assert.True(t, s.HasOverride("2025-06-05"))
	assert.False(t, s.IsCustom("2025-06-05"))
	assert.Equal(t, s.DefaultSlots(), s.ResolveSlots("2025-06-05"))

	// копия не следует за последующими изменениями слотов по умолчанию
	s.AddDefaultSlot("5:00 PM - 7:00 PM")
	assert.Len(t, s.ResolveSlots("2025-06-05"), 4)
	assert.Len(t, s.ResolveSlots("2025-06-06"), 5)

	_, ok := saver.savedAvailability().CustomSchedule["2025-06-05"]
	assert.True(t, ok)
}

func TestOverrideSlotEditingStartsFromEffectiveList(t *testing.T) {
	s, _ := newAvailability(t)

	s.AddOverrideSlot("2025-06-07", "5:00 PM - 7:00 PM")

	slots := s.ResolveSlots("2025-06-07")
	assert.Len(t, slots, 5)
	assert.Equal(t, "5:00 PM - 7:00 PM", slots[4])
	assert.Len(t, s.ResolveSlots("2025-06-08"), 4)
}

func TestDefaultSlotsDeduplicate(t *testing.T) {
	s, saver := newAvailability(t)

	s.AddDefaultSlot("9:00 AM - 11:00 AM")
	assert.Zero(t, saver.saves)

	s.RemoveDefaultSlot("9:00 AM - 11:00 AM")
	assert.Len(t, s.DefaultSlots(), 3)
	assert.Equal(t, s.DefaultSlots(), saver.savedAvailability().TimeSlots)
}
