package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoundsPence(t *testing.T) {
	testCases := []struct {
		name     string
		pence    int64
		expected string
	}{
		{"whole pounds", 1000, "£10.00"},
		{"twenty pounds", 2000, "£20.00"},
		{"zero", 0, "£0.00"},
		{"single penny", 1, "£0.01"},
		{"pounds and pence", 150, "£1.50"},
		{"thousands grouping", 123456, "£1,234.56"},
		{"millions grouping", 123456789, "£1,234,567.89"},
		{"negative uses en dash", -2000, "–£20.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PoundsPence(tc.pence))
		})
	}
}

func TestNegativePoundsPence(t *testing.T) {
	assert.Equal(t, "–£20.00", NegativePoundsPence(2000))
	assert.Equal(t, "–£0.50", NegativePoundsPence(50))
}
