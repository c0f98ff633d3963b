package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastFour(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"account ending in", "Account ending in 1234", "1234", true},
		{"card number colon", "Card Number: 5678", "5678", true},
		{"account hash", "Account #: 4321", "4321", true},
		{"masked x run", "XXXXXXXXXXXX9876", "9876", true},
		{"masked stars", "**** **** **** 1111", "1111", true},
		{"end of line digits", "Some header\nmember since 2011\nRewards 4242\n", "2011", true},
		{"no digits", "no card digits anywhere", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := LastFour(tc.text)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPeriod(t *testing.T) {
	t.Run("numeric range", func(t *testing.T) {
		start, end, ok := Period("Statement Period: 01/01/2024 to 01/31/2024")
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("billing cycle through", func(t *testing.T) {
		start, end, ok := Period("Billing Cycle: 12/05/2023 through 01/04/2024")
		require.True(t, ok)
		assert.Equal(t, time.December, start.Month())
		assert.Equal(t, time.January, end.Month())
	})

	t.Run("month name range", func(t *testing.T) {
		start, end, ok := Period("From: January 1, 2024 to January 31, 2024")
		require.True(t, ok)
		assert.Equal(t, 1, start.Day())
		assert.Equal(t, 31, end.Day())
	})

	t.Run("single date is absent", func(t *testing.T) {
		_, _, ok := Period("Statement Period: 01/01/2024")
		assert.False(t, ok)
	})

	t.Run("reversed range is absent", func(t *testing.T) {
		_, _, ok := Period("Statement Period: 01/31/2024 to 01/01/2024")
		assert.False(t, ok)
	})

	t.Run("no period", func(t *testing.T) {
		_, _, ok := Period("nothing resembling a billing window")
		assert.False(t, ok)
	})
}

func TestTotalAmountDue(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"new balance total", "New Balance Total $1,234.56", "1234.56", true},
		{"total amount due", "Total Amount Due: $89.00", "89.00", true},
		{"total due no symbol", "total due 450.25", "450.25", true},
		{"payment due", "Payment Due: $55.10", "55.10", true},
		{"bare balance fallback", "Balance: 12.00", "12.00", true},
		{"missing", "no monetary labels here", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, ok := TotalAmountDue(tc.text)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.expected, a.String())
			}
		})
	}
}

func TestTotalAmountDue_FirstPatternWins(t *testing.T) {
	// Both the first and third patterns could match; the chain stops at the
	// first declared pattern even though "Balance: 99.99" appears earlier.
	text := "Balance: 99.99\nNew Balance: $1,000.00"
	a, ok := TotalAmountDue(text)
	require.True(t, ok)
	assert.Equal(t, "1000.00", a.String())
}

func TestPaymentDueDate(t *testing.T) {
	t.Run("numeric", func(t *testing.T) {
		d, ok := PaymentDueDate("Payment Due Date: 02/25/2024")
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("month name", func(t *testing.T) {
		d, ok := PaymentDueDate("Payment Due Date: February 25, 2024")
		require.True(t, ok)
		assert.Equal(t, time.February, d.Month())
		assert.Equal(t, 25, d.Day())
	})

	t.Run("due by", func(t *testing.T) {
		d, ok := PaymentDueDate("Due by: 03/01/2024")
		require.True(t, ok)
		assert.Equal(t, time.March, d.Month())
	})

	t.Run("pay by", func(t *testing.T) {
		d, ok := PaymentDueDate("Pay by: March 1, 2024")
		require.True(t, ok)
		assert.Equal(t, 1, d.Day())
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := PaymentDueDate("no due date mentioned")
		assert.False(t, ok)
	})
}

func TestParseDate_Layouts(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"02/25/2024", time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)},
		{"2/5/2024", time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)},
		{"02-25-2024", time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)},
		{"02/25/24", time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)},
		{"2024-02-25", time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)},
		{"February 25, 2024", time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)},
		{"Feb 25 2024", time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)},
		{"February  25,  2024", time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := parseDate(tc.input)
			require.True(t, ok)
			assert.Equal(t, tc.expected, got)
		})
	}

	t.Run("garbage", func(t *testing.T) {
		_, ok := parseDate("not a date")
		assert.False(t, ok)
	})
}

func TestFieldIndependence(t *testing.T) {
	// Text with every field except the statement period: the other
	// extractors are unaffected by the missing one.
	text := "Chase\n" +
		"Account ending in 1234\n" +
		"Payment Due Date: 02/25/2024\n" +
		"New Balance Total $1,234.56\n"

	last4, ok := LastFour(text)
	require.True(t, ok)
	assert.Equal(t, "1234", last4)

	_, _, ok = Period(text)
	assert.False(t, ok)

	total, ok := TotalAmountDue(text)
	require.True(t, ok)
	assert.Equal(t, "1234.56", total.String())

	due, ok := PaymentDueDate(text)
	require.True(t, ok)
	assert.Equal(t, 25, due.Day())
}
