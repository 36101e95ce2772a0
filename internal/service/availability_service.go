package service

import (
	"sync"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"go.uber.org/zap"
)

// AvailabilityService владеет слотами по умолчанию, выключенными датами и переопределениями
type AvailabilityService struct {
	mu           sync.RWMutex
	availability *model.Availability
	saver        SnapshotSaver
	logger       *zap.Logger
}

func NewAvailabilityService(availability *model.Availability, saver SnapshotSaver, logger *zap.Logger) *AvailabilityService {
	if availability == nil {
		availability = model.DefaultAvailability()
	}
	if availability.CustomSchedule == nil {
		availability.CustomSchedule = make(map[string][]string)
	}
	return &AvailabilityService{
		availability: availability,
		saver:        saver,
		logger:       logger,
	}
}

// Snapshot возвращает копию расписания
func (s *AvailabilityService) Snapshot() *model.Availability {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.availability.Clone()
}

// DefaultSlots возвращает слоты по умолчанию
func (s *AvailabilityService) DefaultSlots() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.availability.TimeSlots...)
}

// DisabledDates возвращает выключенные даты
func (s *AvailabilityService) DisabledDates() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.availability.DisabledDates...)
}

// AddDefaultSlot добавляет слот по умолчанию (без дублей)
func (s *AvailabilityService) AddDefaultSlot(slot string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if containsString(s.availability.TimeSlots, slot) {
		return
	}
	s.availability.TimeSlots = append(s.availability.TimeSlots, slot)

	s.logger.Info("Default slot added", zap.String("slot", slot))
	s.persist()
}

// RemoveDefaultSlot удаляет слот по умолчанию
func (s *AvailabilityService) RemoveDefaultSlot(slot string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.availability.TimeSlots = withoutString(s.availability.TimeSlots, slot)

	s.logger.Info("Default slot removed", zap.String("slot", slot))
	s.persist()
}

// ToggleDateDisabled включает или выключает дату. Возвращает новое состояние (true - выключена).
func (s *AvailabilityService) ToggleDateDisabled(date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	disabled := !containsString(s.availability.DisabledDates, date)
	if disabled {
		s.availability.DisabledDates = append(s.availability.DisabledDates, date)
	} else {
		s.availability.DisabledDates = withoutString(s.availability.DisabledDates, date)
	}

	s.logger.Info("Date availability toggled",
		zap.String("date", date),
		zap.Bool("disabled", disabled))
	s.persist()

	return disabled
}

// SetDateOverride заменяет слоты даты
func (s *AvailabilityService) SetDateOverride(date string, slots []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setOverride(date, slots)
	s.persist()
}

// AddOverrideSlot добавляет слот к эффективному списку даты
func (s *AvailabilityService) AddOverrideSlot(date, slot string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.effective(date)
	if containsString(current, slot) {
		return
	}
	s.setOverride(date, append(current, slot))
	s.persist()
}

// RemoveOverrideSlot удаляет слот из эффективного списка даты
func (s *AvailabilityService) RemoveOverrideSlot(date, slot string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setOverride(date, withoutString(s.effective(date), slot))
	s.persist()
}

// ResetDate возвращает дате слоты по умолчанию. Переопределение остаётся как копия текущих слотов по умолчанию.
func (s *AvailabilityService) ResetDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setOverride(date, s.availability.TimeSlots)
	s.persist()
}

// ResolveSlots возвращает эффективные слоты даты
func (s *AvailabilityService) ResolveSlots(date string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.availability.Resolve(date)
}

// IsAvailable проверяет что дата не закрыта для записи. Пустой список слотов дату не закрывает
func (s *AvailabilityService) IsAvailable(date string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.availability.IsDisabled(date)
}

// IsDisabled проверяет что дата закрыта для записи
func (s *AvailabilityService) IsDisabled(date string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.availability.IsDisabled(date)
}

// HasOverride проверяет наличие переопределения для даты
func (s *AvailabilityService) HasOverride(date string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.availability.CustomSchedule[date]
	return ok
}

// IsCustom сообщает, что эффективные слоты даты отличаются от слотов по умолчанию
func (s *AvailabilityService) IsCustom(date string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	override, ok := s.availability.CustomSchedule[date]
	if !ok {
		return false
	}
	return !equalStrings(override, s.availability.TimeSlots)
}

// effective - слоты даты без учёта выключения, основа для редактирования переопределения
func (s *AvailabilityService) effective(date string) []string {
	if override, ok := s.availability.CustomSchedule[date]; ok {
		return append([]string{}, override...)
	}
	return append([]string{}, s.availability.TimeSlots...)
}

func (s *AvailabilityService) setOverride(date string, slots []string) {
	s.availability.CustomSchedule[date] = append([]string{}, slots...)

	s.logger.Info("Date slots overridden",
		zap.String("date", date),
		zap.Strings("slots", slots))
}

func (s *AvailabilityService) persist() {
	if s.saver == nil {
		return
	}
	ctx, cancel := persistContext()
	defer cancel()

	if err := s.saver.SaveAvailability(ctx, s.availability); err != nil {
		s.logger.Error("Failed to persist availability", zap.Error(err))
	}
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func withoutString(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
