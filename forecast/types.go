/*
Package forecast projects near-future labour cost from current rostering
patterns.

PURPOSE:
  Given the current week's shifts and staff, the engine projects each
  future week day-by-day from the same calendar weekday in the baseline
  week, adjusts demand and cost for known public and school holidays,
  compares each week against budget, and emits risk factors and textual
  recommendations.

KEY CONCEPTS IN THIS FILE (types.go):
  - Input: Baseline week, staff, horizon, weekly budget
  - DayForecast / WeekForecast / Summary: The projection output tree
  - RiskFactor: A quantified threat to the budget with a severity

CONFIDENCE:
  Projections on public or school holidays carry lower confidence (0.70)
  than typical days (0.85) because holiday rostering deviates most from
  the baseline pattern.

SEE ALSO:
  - engine.go: The projection algorithm
*/
package forecast

import (
	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/pay"
	"github.com/warp/award-engine/roster"
)

// =============================================================================
// INPUT
// =============================================================================

type Input struct {
	// BaselineWeekStart anchors the pattern week; BaselineShifts should
	// all fall within the 7 days from it.
	BaselineWeekStart pay.Date
	BaselineShifts    []roster.Shift

	Staff []roster.StaffMember

	// Weeks is the forecast horizon (number of future weeks).
	Weeks int

	// WeeklyBudget is compared against each projected week.
	WeeklyBudget decimal.Decimal

	// AverageHourlyRate overrides the rate derived from Staff when positive.
	AverageHourlyRate decimal.Decimal
}

// =============================================================================
// OUTPUT
// =============================================================================

type DayForecast struct {
	Date         pay.Date
	BaselineDate pay.Date

	IsPublicHoliday bool
	IsSchoolHoliday bool

	BaselineShiftCount int
	BaselineHours      decimal.Decimal

	ProjectedShiftCount int
	ProjectedHours      decimal.Decimal
	ProjectedCost       decimal.Decimal

	// Confidence in [0,1]; lower on atypical (holiday) days.
	Confidence float64
}

type WeekForecast struct {
	WeekNumber int
	WeekStart  pay.Date
	WeekEnd    pay.Date

	Days []DayForecast

	ProjectedHours decimal.Decimal
	ProjectedCost  decimal.Decimal

	Budget decimal.Decimal

	// BudgetVariance = ProjectedCost - Budget (positive means over).
	BudgetVariance decimal.Decimal
	OverBudget     bool

	// VsPreviousWeek compares against the previous PROJECTED week (the
	// baseline week for week 1).
	VsPreviousWeek decimal.Decimal
}

type RiskSeverity string

const (
	SeverityLow    RiskSeverity = "low"
	SeverityMedium RiskSeverity = "medium"
	SeverityHigh   RiskSeverity = "high"
)

type RiskFactor struct {
	Type        string
	Description string
	Severity    RiskSeverity

	// Impact is the estimated dollar exposure.
	Impact decimal.Decimal
}

type Summary struct {
	GeneratedFor pay.Date
	WeekCount    int

	Weeks []WeekForecast

	TotalProjectedCost decimal.Decimal
	TotalBudget        decimal.Decimal

	AverageHourlyRate decimal.Decimal

	RiskFactors     []RiskFactor
	Recommendations []string
}
