package state

import (
	"sync"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
)

// WizardFactory создаёт визард для нового пользователя
type WizardFactory func(telegramID int64) *wizard.Wizard

// Manager управляет сессиями пользователей
type Manager struct {
	mu        sync.RWMutex
	sessions  map[int64]*Session // telegramID -> Session
	newWizard WizardFactory
	now       func() time.Time
}

// NewManager создаёт новый менеджер сессий
func NewManager(newWizard WizardFactory) *Manager {
	return &Manager{
		sessions:  make(map[int64]*Session),
		newWizard: newWizard,
		now:       time.Now,
	}
}

// session возвращает сессию, создавая её при необходимости. Вызывается под mu.Lock
func (sm *Manager) session(telegramID int64) *Session {
	s, exists := sm.sessions[telegramID]
	if !exists {
		s = &Session{Data: make(map[string]interface{})}
		sm.sessions[telegramID] = s
	}
	s.LastSeen = sm.now()
	return s
}

// GetState получает текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if s, exists := sm.sessions[telegramID]; exists {
		return s.State
	}
	return StateNone
}

// SetState устанавливает состояние пользователя
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.session(telegramID).State = state
}

// GetData получает временные данные пользователя
func (sm *Manager) GetData(telegramID int64, key string) (interface{}, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if s, exists := sm.sessions[telegramID]; exists {
		value, ok := s.Data[key]
		return value, ok
	}
	return nil, false
}

// SetData устанавливает временные данные пользователя
func (sm *Manager) SetData(telegramID int64, key string, value interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.session(telegramID).Data[key] = value
}

// ClearState сбрасывает диалог пользователя. Визард и режим редактирования остаются
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if s, exists := sm.sessions[telegramID]; exists {
		s.State = StateNone
		s.Data = make(map[string]interface{})
	}
}

// GetAllData получает все временные данные пользователя
func (sm *Manager) GetAllData(telegramID int64) map[string]interface{} {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if s, exists := sm.sessions[telegramID]; exists {
		// Возвращаем копию, чтобы избежать race condition
		dataCopy := make(map[string]interface{}, len(s.Data))
		for k, v := range s.Data {
			dataCopy[k] = v
		}
		return dataCopy
	}
	return nil
}

// Wizard возвращает визард пользователя, создавая его при первом обращении
func (sm *Manager) Wizard(telegramID int64) *wizard.Wizard {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	s := sm.session(telegramID)
	if s.Wizard == nil {
		s.Wizard = sm.newWizard(telegramID)
	}
	return s.Wizard
}

// EditMode показывает, включён ли у пользователя режим редактирования каталога
func (sm *Manager) EditMode(telegramID int64) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if s, exists := sm.sessions[telegramID]; exists {
		return s.EditMode
	}
	return false
}

// SetEditMode включает или выключает режим редактирования
func (sm *Manager) SetEditMode(telegramID int64, on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.session(telegramID).EditMode = on
}

// SweepIdle удаляет сессии, неактивные дольше ttl
func (sm *Manager) SweepIdle(ttl time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	cutoff := sm.now().Add(-ttl)
	removed := 0
	for id, s := range sm.sessions {
		if s.LastSeen.Before(cutoff) {
			delete(sm.sessions, id)
			removed++
		}
	}
	return removed
}

// Len возвращает количество активных сессий
func (sm *Manager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}
