// Package currency converts South Korean won amounts into US dollars.
package currency

import (
	"errors"
	"fmt"
	"math"
)

// DefaultKRWPerUSD is the won per dollar rate used when none is configured.
const DefaultKRWPerUSD = 1303.74

var (
	// ErrInvalidAmount reports a negative, NaN or infinite won amount.
	ErrInvalidAmount = errors.New("invalid won amount")
	// ErrInvalidRate reports a rate that is not a positive finite number.
	ErrInvalidRate = errors.New("invalid exchange rate")
)

// KRWToUSD converts won into dollars at rate won per dollar.
func KRWToUSD(won, rate float64) (float64, error) {
	if math.IsNaN(won) || math.IsInf(won, 0) || won < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, won)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}
	return won / rate, nil
}

// FormatUSD renders a dollar amount with two decimals.
func FormatUSD(usd float64) string {
	return fmt.Sprintf("%.2f", usd)
}
