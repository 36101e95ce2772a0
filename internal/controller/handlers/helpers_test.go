package handlers

import (
	"strings"
	"testing"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartPayload(t *testing.T) {
	cases := []struct {
		payload  string
		category model.Category
		search   string
	}{
		{"smartphone", model.CategorySmartphone, ""},
		{"Laptop", model.CategoryLaptop, ""},
		{"smartphone--iphone-13", model.CategorySmartphone, "iphone 13"},
		{"tablet--galaxy_tab__s9", model.CategoryTablet, "galaxy tab s9"},
		{"find_model", model.CategoryFindModel, ""},
	}

	for _, tc := range cases {
		t.Run(tc.payload, func(t *testing.T) {
			got, ok := ParseStartPayload(tc.payload)
			require.True(t, ok)
			assert.Equal(t, tc.category, got.Category)
			assert.Equal(t, tc.search, got.Search)
		})
	}
}

func TestParseStartPayloadRejectsUnknown(t *testing.T) {
	for _, payload := range []string{"", "   ", "watch", "toaster--x"} {
		_, ok := ParseStartPayload(payload)
		assert.False(t, ok, payload)
	}
}

func TestValidateText(t *testing.T) {
	got, err := validateText("  Jane Doe ", FieldMaxLength)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got)

	_, err = validateText("   ", FieldMaxLength)
	assert.Error(t, err)

	_, err = validateText(strings.Repeat("я", FieldMaxLength+1), FieldMaxLength)
	assert.Error(t, err)

	_, err = validateText(strings.Repeat("я", FieldMaxLength), FieldMaxLength)
	assert.NoError(t, err)
}

func TestFieldMaxLength(t *testing.T) {
	assert.Equal(t, AddressMaxLength, fieldMaxLength(model.FieldAddress))
	assert.Equal(t, FieldMaxLength, fieldMaxLength(model.FieldName))
}
