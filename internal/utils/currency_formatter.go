package utils

import (
	"fmt"
	"regexp"

	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/constants"
	"github.com/shopspring/decimal"
)

var (
	// digits with an optional fraction; no sign, exponent or bare dot
	plainAmount = regexp.MustCompile(`^\d+(\.\d+)?$`)
	maxAmount   = decimal.New(constants.MaxSafeBalanceCents, -2)
)

// FormatFromCents renders cents as a fixed two-decimal string, e.g. 15050 -> "150.50".
func FormatFromCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/constants.CentsPerUnit, cents%constants.CentsPerUnit)
}

// ParseToCents converts a plain decimal string to cents.
// Accepts "150", "150.5" and "150.50"; anything with more than two
// fractional digits is rejected rather than truncated.
func ParseToCents(amountStr string) (int64, error) {
	if !plainAmount.MatchString(amountStr) {
		return 0, fmt.Errorf("invalid amount format: %s", amountStr)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}

	if amount.Exponent() < -2 {
		return 0, fmt.Errorf("invalid cents: %s", amountStr)
	}

	if amount.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("amount too large: %s", amountStr)
	}

	return amount.Shift(2).IntPart(), nil
}
