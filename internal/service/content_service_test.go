package service

import (
	"encoding/json"
	"testing"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContentGetFallback(t *testing.T) {
	s := NewContentService(model.DefaultContent(), nil, zap.NewNop())

	assert.Equal(t, "Our Services", s.Get(model.ContentServicesTitle, "x"))
	assert.Equal(t, "fallback", s.Get("footerNote", "fallback"))
}

func TestContentUpdatePersists(t *testing.T) {
	saver := &recordingSaver{}
	s := NewContentService(model.DefaultContent(), saver, zap.NewNop())

	s.Update(model.ContentHeroTitle, "Fast Repairs")
	s.Update("footerNote", "Open daily")

	assert.Equal(t, "Fast Repairs", s.Get(model.ContentHeroTitle, ""))
	assert.Contains(t, s.IDs(), "footerNote")

	var saved map[string]interface{}
	require.NoError(t, json.Unmarshal(saver.content, &saved))
	assert.Equal(t, "Fast Repairs", saved["heroTitle"])
	assert.Equal(t, "Open daily", saved["footerNote"])
}

func TestSectionOrder(t *testing.T) {
	saver := &recordingSaver{}
	s := NewContentService(nil, saver, zap.NewNop())

	s.UpdateSectionOrder([]string{"booking", "home"})

	assert.Equal(t, []string{"booking", "home"}, s.SectionOrder())
	assert.Equal(t, []string{"booking", "home"}, s.All().SectionOrder)
	assert.Equal(t, 1, saver.saves)
}
