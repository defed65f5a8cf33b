package money_test

import (
	"testing"

	"github.com/paisatrack/pft_backend/internal/apperrors"
	"github.com/paisatrack/pft_backend/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainAmount(t *testing.T) {
	tests := []struct {
		name       string
		minorUnits int64
		want       string
	}{
		{"zero", 0, "0.00"},
		{"sub rupee", 5, "0.05"},
		{"exact rupee", 100, "1.00"},
		{"typical", 123456, "1234.56"},
		{"negative", -123456, "-1234.56"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.PlainAmount(tt.minorUnits))
		})
	}
}

func TestDisplayAmount_IndianGrouping(t *testing.T) {
	tests := []struct {
		name       string
		minorUnits int64
		want       string
	}{
		{"sub thousand", 99999, "₹999.99"},
		{"thousand", 100000, "₹1,000.00"},
		{"lakh", 12345678, "₹1,23,456.78"},
		{"crore", 1234567890, "₹1,23,45,678.90"},
		{"negative", -100000, "-₹1,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.DisplayAmount(tt.minorUnits))
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    int64
		wantErr bool
	}{
		{"integer", "1234", 123400, false},
		{"two decimals", "1234.56", 123456, false},
		{"rounds half away", "0.005", 1, false},
		{"whitespace tolerated", " 10.50 ", 1050, false},
		{"zero rejected", "0", 0, true},
		{"negative rejected", "-5", 0, true},
		{"garbage rejected", "ten rupees", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ToMinorUnits(tt.display)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Converting to minor units and rendering back must be lossless for any
// two-decimal display amount.
func TestToMinorUnits_RoundTripsWithPlainAmount(t *testing.T) {
	for _, display := range []string{"0.01", "1.00", "99.99", "1234.56", "100000.00"} {
		minor, err := money.ToMinorUnits(display)
		require.NoError(t, err)
		assert.Equal(t, display, money.PlainAmount(minor))
	}
}

func TestNormalize(t *testing.T) {
	d := func(s string) decimal.Decimal {
		v, err := decimal.NewFromString(s)
		require.NoError(t, err)
		return v
	}

	t.Run("foreign currency applies rate", func(t *testing.T) {
		got, err := money.Normalize(d("100"), d("83.5"), "USD")
		require.NoError(t, err)
		assert.Equal(t, int64(835000), got)
	})

	t.Run("base currency ignores rate", func(t *testing.T) {
		got, err := money.Normalize(d("250.75"), d("999"), "INR")
		require.NoError(t, err)
		assert.Equal(t, int64(25075), got)
	})

	t.Run("base currency match is case insensitive", func(t *testing.T) {
		got, err := money.Normalize(d("1"), decimal.Zero, "inr")
		require.NoError(t, err)
		assert.Equal(t, int64(100), got)
	})

	t.Run("custom code accepted with rate", func(t *testing.T) {
		got, err := money.Normalize(d("10"), d("2"), "GOLD-GRAMS")
		require.NoError(t, err)
		assert.Equal(t, int64(2000), got)
	})

	t.Run("result rounds half away from zero", func(t *testing.T) {
		got, err := money.Normalize(d("1.005"), d("1"), "USD")
		require.NoError(t, err)
		assert.Equal(t, int64(101), got)
	})

	t.Run("empty code rejected", func(t *testing.T) {
		_, err := money.Normalize(d("100"), d("1"), "  ")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyCode)
	})

	t.Run("non positive amount rejected", func(t *testing.T) {
		_, err := money.Normalize(d("-5"), d("1"), "USD")
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})

	t.Run("non positive rate rejected for foreign currency", func(t *testing.T) {
		_, err := money.Normalize(d("100"), decimal.Zero, "USD")
		assert.ErrorIs(t, err, apperrors.ErrInvalidExchangeRate)
	})

	t.Run("validation errors share the validation sentinel", func(t *testing.T) {
		_, err := money.Normalize(d("100"), decimal.Zero, "USD")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
