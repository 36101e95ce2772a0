package service

import (
	"sort"
	"sync"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"go.uber.org/zap"
)

// ContentService хранит редактируемые тексты сайта
type ContentService struct {
	mu      sync.RWMutex
	content *model.SiteContent
	saver   SnapshotSaver
	logger  *zap.Logger
}

func NewContentService(content *model.SiteContent, saver SnapshotSaver, logger *zap.Logger) *ContentService {
	if content == nil {
		content = model.DefaultContent()
	}
	if content.Texts == nil {
		content.Texts = make(map[string]string)
	}
	return &ContentService{
		content: content,
		saver:   saver,
		logger:  logger,
	}
}

// Get возвращает текст по id или fallback, если текста нет
func (s *ContentService) Get(id, fallback string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if text, ok := s.content.Texts[id]; ok {
		return text
	}
	return fallback
}

// All возвращает копию всех текстов
func (s *ContentService) All() *model.SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content.Clone()
}

// IDs возвращает отсортированные идентификаторы текстов
func (s *ContentService) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.content.Texts))
	for id := range s.content.Texts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Update записывает текст (создаёт id при необходимости)
func (s *ContentService) Update(id, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content.Texts[id] = text

	s.logger.Info("Content updated", zap.String("id", id), zap.Int("length", len(text)))
	s.persist()
}

// SectionOrder возвращает порядок секций страницы
func (s *ContentService) SectionOrder() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.content.SectionOrder...)
}

// UpdateSectionOrder заменяет порядок секций
func (s *ContentService) UpdateSectionOrder(order []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content.SectionOrder = append([]string{}, order...)

	s.logger.Info("Section order updated", zap.Strings("order", order))
	s.persist()
}

func (s *ContentService) persist() {
	if s.saver == nil {
		return
	}
	ctx, cancel := persistContext()
	defer cancel()

	if err := s.saver.SaveContent(ctx, s.content); err != nil {
		s.logger.Error("Failed to persist content", zap.Error(err))
	}
}
