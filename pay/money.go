package pay

import "github.com/shopspring/decimal"

// =============================================================================
// MONEY HELPERS - All money in this engine is decimal.Decimal dollars
// =============================================================================

// SuperannuationRate is the statutory superannuation guarantee percentage
// applied to gross pay (11.5%).
var SuperannuationRate = decimal.NewFromFloat(0.115)

var oneHundred = decimal.NewFromInt(100)

// Percent converts a whole-number percentage (e.g. 175 for 175%) into a
// multiplier (1.75). Award penalty and overtime rates are stored this way.
func Percent(p decimal.Decimal) decimal.Decimal {
	return p.Div(oneHundred)
}

// LoadingFactor converts a loading percentage (e.g. 25 for +25%) into a
// multiplier applied on top of a base rate (1.25).
func LoadingFactor(loading decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(loading.Div(oneHundred))
}

// RoundCents rounds a money value to cents, half away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MinutesToHours converts whole minutes to decimal hours.
func MinutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(sixty)
}
