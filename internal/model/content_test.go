package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteContentSkipsNonStrings(t *testing.T) {
	var c SiteContent
	require.NoError(t, json.Unmarshal([]byte(`{"heroTitle":"Hi","count":3,"sectionOrder":["a","b"]}`), &c))

	assert.Equal(t, map[string]string{"heroTitle": "Hi"}, c.Texts)
	assert.Equal(t, []string{"a", "b"}, c.SectionOrder)
}

func TestAvailabilityResolve(t *testing.T) {
	a := DefaultAvailability()
	a.CustomSchedule["2025-01-01"] = []string{}
	a.DisabledDates = append(a.DisabledDates, "2025-01-02")
	a.CustomSchedule["2025-01-02"] = []string{"x"}

	assert.Empty(t, a.Resolve("2025-01-01"))
	assert.Empty(t, a.Resolve("2025-01-02"))
	assert.Len(t, a.Resolve("2025-01-03"), 4)
}
