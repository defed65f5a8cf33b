// Package money converts between display decimals and the base-currency
// minor-unit integers (paise) that are the only persisted amount form, and
// normalizes foreign-currency entry amounts into that form.
package money

import (
	"fmt"
	"strings"

	"github.com/paisatrack/pft_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BaseCurrency is the single currency all persisted amounts are denominated
// in.
const BaseCurrency = "INR"

const currencySymbol = "₹"

var hundred = decimal.NewFromInt(100)

// PlainAmount renders minor units as a bare decimal with exactly two fraction
// digits, e.g. 123456 -> "1234.56". Used for CSV rows.
func PlainAmount(minorUnits int64) string {
	sign := ""
	if minorUnits < 0 {
		sign = "-"
		minorUnits = -minorUnits
	}
	return fmt.Sprintf("%s%d.%02d", sign, minorUnits/100, minorUnits%100)
}

// DisplayAmount renders minor units as an INR currency string with Indian
// digit grouping, e.g. 12345678 -> "₹1,23,456.78".
func DisplayAmount(minorUnits int64) string {
	sign := ""
	if minorUnits < 0 {
		sign = "-"
		minorUnits = -minorUnits
	}
	return fmt.Sprintf("%s%s%s.%02d", sign, currencySymbol, groupIndian(fmt.Sprintf("%d", minorUnits/100)), minorUnits%100)
}

// groupIndian inserts Indian-system separators into a digit string: the last
// three digits form one group, every two digits before that another
// ("1234567" -> "12,34,567").
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}

// ToMinorUnits parses a positive display decimal and converts it to minor
// units, rounding half away from zero. Non-numeric or non-positive input is
// rejected with ErrInvalidAmount.
func ToMinorUnits(display string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(display))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperrors.ErrInvalidAmount, display)
	}
	return decimalToMinorUnits(d)
}

func decimalToMinorUnits(d decimal.Decimal) (int64, error) {
	if d.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	return d.Mul(hundred).Round(0).IntPart(), nil
}

// Normalize converts a user-entered amount in an arbitrary currency into
// base-currency minor units: round(amount * rate * 100). When the entered
// currency is already the base currency the rate is implicitly 1 and any
// provided rate is ignored. The currency code may be a free-text custom code
// but must not be empty.
func Normalize(amount decimal.Decimal, exchangeRate decimal.Decimal, currencyCode string) (int64, error) {
	code := strings.TrimSpace(currencyCode)
	if code == "" {
		return 0, fmt.Errorf("%w: currency code is required", apperrors.ErrInvalidCurrencyCode)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	if strings.EqualFold(code, BaseCurrency) {
		return decimalToMinorUnits(amount)
	}
	if exchangeRate.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: rate must be greater than zero for %s entries", apperrors.ErrInvalidExchangeRate, code)
	}
	return decimalToMinorUnits(amount.Mul(exchangeRate))
}
