package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// plainDecimal admits what a numeric form field produces. Exponent
// notation is rejected: comparing 1e-2000000000 against a budget would
// rescale to a two-billion-digit integer.
var plainDecimal = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)$`)

var (
	hundred    = decimal.NewFromInt(100)
	minPercent = decimal.RequireFromString("0.01")
)

// ParsePercent reads user text such as "25.5" as an exact decimal.
func ParsePercent(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty percentage")
	}
	if !plainDecimal.MatchString(s) {
		return decimal.Zero, fmt.Errorf("percentage %q is not a plain decimal", text)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing percentage %q: %w", text, err)
	}
	return d, nil
}

// PercentToBasisPoints rounds pct*100 half away from zero: 25.5 -> 2550,
// 0.005 -> 1.
func PercentToBasisPoints(pct decimal.Decimal) BasisPoints {
	return BasisPoints(pct.Mul(hundred).Round(0).IntPart())
}

// BasisPointsToPercent is the exact inverse scale.
func BasisPointsToPercent(bps BasisPoints) decimal.Decimal {
	return decimal.New(int64(bps), -2)
}

// FormatBasisPoints renders bps with two decimals, e.g. 4450 -> "44.50".
func FormatBasisPoints(bps BasisPoints) string {
	return BasisPointsToPercent(bps).StringFixed(2)
}

// IsBelowMinimumPercent reports pct < 0.01.
func IsBelowMinimumPercent(pct decimal.Decimal) bool {
	return pct.LessThan(minPercent)
}

// PrimaryOwnerSharePercent is max(0, 100 - coOwnerTotal/100) as a
// two-decimal string.
func PrimaryOwnerSharePercent(coOwnerTotal BasisPoints) string {
	share := hundred.Sub(BasisPointsToPercent(coOwnerTotal))
	if share.IsNegative() {
		share = decimal.Zero
	}
	return share.StringFixed(2)
}
