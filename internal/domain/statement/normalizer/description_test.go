package normalizer

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_KnownMerchants(t *testing.T) {
	s := NewDescriptionSanitizer()

	tests := []struct {
		raw      string
		name     string
		category string
	}{
		{"AMAZON.COM", "Amazon", "Shopping"},
		{"AMZN MKTP US*RT4Y", "Amazon", "Shopping"},
		{"STARBUCKS #1234", "Starbucks", "Food & Drink"},
		{"SQ *BLUE BOTTLE COFFEE", "Blue Bottle Coffee", ""},
		{"TST* SOME BISTRO 0042", "Some Bistro", ""},
		{"UBER EATS PENDING", "Uber Eats", "Food & Drink"},
		{"UBER TRIP HELP.UBER.COM", "Uber", "Transport"},
		{"SHELL OIL 57444221", "Shell", "Gas"},
		{"NETFLIX.COM", "Netflix", "Entertainment"},
		{"CVS/PHARMACY #9981", "CVS", "Health"},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			info := s.Sanitize(tc.raw)
			assert.Equal(t, tc.raw, info.Original)
			if tc.category != "" {
				assert.Equal(t, tc.name, info.Normalized)
				assert.Equal(t, tc.category, info.Category)
			} else {
				assert.Equal(t, tc.name, info.Normalized)
			}
		})
	}
}

func TestSanitize_UnknownFallsBackToTitleCase(t *testing.T) {
	s := NewDescriptionSanitizer()

	info := s.Sanitize("JOES CORNER DELI")
	assert.Equal(t, "Joes Corner Deli", info.Normalized)
	assert.Empty(t, info.Category)
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"trailing reference", "LOCAL MARKET 482910", "LOCAL MARKET"},
		{"hash reference", "PARKING GARAGE #10293", "PARKING GARAGE"},
		{"trailing date", "CITY TRANSIT 01/05", "CITY TRANSIT"},
		{"processor prefix", "POS LOCAL BAKERY", "LOCAL BAKERY"},
		{"checkcard prefix", "CHECKCARD CORNER STORE", "CORNER STORE"},
		{"collapse spaces", "TWO   WORDS    HERE", "TWO WORDS HERE"},
		{"short number kept", "PIER 39", "PIER 39"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, cleanDescription(tc.raw))
		})
	}
}

func TestSanitize_GeneratedReferenceSuffixes(t *testing.T) {
	gofakeit.Seed(11)
	s := NewDescriptionSanitizer()

	// Any company name with a long trailing reference number normalizes the
	// same as the bare name.
	for i := 0; i < 20; i++ {
		name := gofakeit.Company()
		withRef := fmt.Sprintf("%s %d", name, gofakeit.Number(10000, 99999999))

		bare := s.Sanitize(name)
		ref := s.Sanitize(withRef)
		assert.Equal(t, bare.Normalized, ref.Normalized, "input %q", withRef)
	}
}

func TestAddPattern(t *testing.T) {
	s := NewDescriptionSanitizer()
	require.NoError(t, s.AddPattern(`(?i)LOCAL\s*GYM`, "Local Gym", "Fitness"))

	info := s.Sanitize("LOCAL GYM MONTHLY 556677")
	assert.Equal(t, "Local Gym", info.Normalized)
	assert.Equal(t, "Fitness", info.Category)

	assert.Error(t, s.AddPattern(`([`, "broken", ""))
}
