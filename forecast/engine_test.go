package forecast_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/award-engine/forecast"
	"github.com/warp/award-engine/pay"
	"github.com/warp/award-engine/roster"
)

// =============================================================================
// TEST HELPERS
// =============================================================================
// Baseline week: Monday 2025-06-02 to Sunday 2025-06-08. The calendar makes
// 2025-06-09 (week 1's Monday) a public holiday.

func baselineMonday() pay.Date { return pay.NewDate(2025, time.June, 2) }

func holidayCalendar() *pay.StaticCalendar {
	return &pay.StaticCalendar{Holidays: []pay.Holiday{
		{Date: pay.NewDate(2025, time.June, 9), Name: "King's Birthday", Type: pay.HolidayPublic},
	}}
}

// baselineInput rosters 8 hours on Monday and 4 on Saturday at $30/hour.
func baselineInput(weeks int, budget float64) forecast.Input {
	return forecast.Input{
		BaselineWeekStart: baselineMonday(),
		BaselineShifts: []roster.Shift{
			{ID: "mon", StaffID: "staff-1", Date: baselineMonday(),
				Start: pay.ClockTime(9, 0), End: pay.ClockTime(17, 0), Kind: roster.KindRegular},
			{ID: "sat", StaffID: "staff-1", Date: baselineMonday().AddDays(5),
				Start: pay.ClockTime(9, 0), End: pay.ClockTime(13, 0), Kind: roster.KindRegular},
		},
		Staff: []roster.StaffMember{
			{ID: "staff-1", Employment: roster.FullTime, HourlyRateOverride: decimal.NewFromInt(30)},
		},
		Weeks:        weeks,
		WeeklyBudget: decimal.NewFromFloat(budget),
	}
}

func money(t *testing.T, want float64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.NewFromFloat(want)), "want %v, got %s", want, got)
}

// =============================================================================
// DAY PROJECTION
// =============================================================================

func TestProject_TypicalWeekdayFollowsBaseline(t *testing.T) {
	// GIVEN: 8 baseline Monday hours, no holiday in week 2
	// WHEN: Projecting
	// THEN: Hours carry over; cost = 8x30 + 2% allowances + 11.5% super

	summary := forecast.NewEngine(holidayCalendar()).Project(baselineInput(2, 0))

	require.Len(t, summary.Weeks, 2)
	week2Monday := summary.Weeks[1].Days[0]

	assert.True(t, week2Monday.Date.Equal(pay.NewDate(2025, time.June, 16)))
	assert.False(t, week2Monday.IsPublicHoliday)
	money(t, 8, week2Monday.ProjectedHours)
	money(t, 272.95, week2Monday.ProjectedCost) // 240 x 1.02 x 1.115
	assert.Equal(t, 0.85, week2Monday.Confidence)
}

func TestProject_PublicHolidayCutsDemandRaisesCost(t *testing.T) {
	// GIVEN: Week 1's Monday is a public holiday
	// WHEN: Projecting
	// THEN: Demand x0.3, cost x2.5, penalty addend +1.5, confidence drops

	summary := forecast.NewEngine(holidayCalendar()).Project(baselineInput(1, 0))

	day := summary.Weeks[0].Days[0]
	require.True(t, day.IsPublicHoliday)

	money(t, 2.4, day.ProjectedHours) // 8 x 0.3
	// 2.4 x 30 x 2.5 = 180 base, +150% addend = 450, then oncosts.
	money(t, 511.79, day.ProjectedCost)
	assert.Equal(t, 0.70, day.Confidence)
	assert.Equal(t, 0, day.ProjectedShiftCount, "0.3 of one shift rounds to zero")
}

func TestProject_SaturdayAddend(t *testing.T) {
	summary := forecast.NewEngine(holidayCalendar()).Project(baselineInput(1, 0))

	sat := summary.Weeks[0].Days[5]
	require.Equal(t, time.Saturday, sat.Date.Weekday())

	money(t, 4, sat.ProjectedHours)
	// 4 x 30 = 120 base, +50% addend = 180, then oncosts.
	money(t, 204.71, sat.ProjectedCost)
}

func TestProject_EmptyBaselineDayProjectsZero(t *testing.T) {
	summary := forecast.NewEngine(holidayCalendar()).Project(baselineInput(1, 0))

	tue := summary.Weeks[0].Days[1]
	assert.True(t, tue.ProjectedHours.IsZero())
	assert.True(t, tue.ProjectedCost.IsZero())
}

// =============================================================================
// BUDGET & WEEK-OVER-WEEK VARIANCE
// =============================================================================

func TestProject_BudgetVariance(t *testing.T) {
	// A $100 budget is comfortably exceeded every week.
	summary := forecast.NewEngine(holidayCalendar()).Project(baselineInput(2, 100))

	for _, w := range summary.Weeks {
		assert.True(t, w.OverBudget)
		assert.True(t, w.BudgetVariance.Equal(w.ProjectedCost.Sub(w.Budget)))
	}
	money(t, 200, summary.TotalBudget)
}

func TestProject_NoBudgetMeansNeverOverBudget(t *testing.T) {
	summary := forecast.NewEngine(holidayCalendar()).Project(baselineInput(1, 0))
	assert.False(t, summary.Weeks[0].OverBudget)
}

func TestProject_VsPreviousWeekComparesProjections(t *testing.T) {
	// Week 1 carries the public holiday premium; week 2 does not, so week 2
	// should come in cheaper than week 1.
	summary := forecast.NewEngine(holidayCalendar()).Project(baselineInput(2, 0))

	w1, w2 := summary.Weeks[0], summary.Weeks[1]
	assert.True(t, w2.VsPreviousWeek.Equal(w2.ProjectedCost.Sub(w1.ProjectedCost)))
	assert.True(t, w2.VsPreviousWeek.IsNegative(), "the holiday premium drops off")
}

// =============================================================================
// RATES, RISKS & RECOMMENDATIONS
// =============================================================================

func TestProject_AverageRateFromStaff(t *testing.T) {
	input := baselineInput(1, 0)
	input.Staff = []roster.StaffMember{
		{ID: "a", HourlyRateOverride: decimal.NewFromInt(28)},
		{ID: "b", HourlyRateOverride: decimal.NewFromInt(32)},
	}

	summary := forecast.NewEngine(pay.NoHolidays{}).Project(input)
	money(t, 30, summary.AverageHourlyRate)
}

func TestProject_DefaultRateWhenNoneKnown(t *testing.T) {
	input := baselineInput(1, 0)
	input.Staff = []roster.StaffMember{{ID: "a"}}

	summary := forecast.NewEngine(pay.NoHolidays{}).Project(input)
	money(t, 30, summary.AverageHourlyRate)
}

func TestProject_ExplicitRateOverridesStaff(t *testing.T) {
	input := baselineInput(1, 0)
	input.AverageHourlyRate = decimal.NewFromInt(45)

	summary := forecast.NewEngine(pay.NoHolidays{}).Project(input)
	money(t, 45, summary.AverageHourlyRate)
}

func TestProject_PublicHolidayRisk(t *testing.T) {
	summary := forecast.NewEngine(holidayCalendar()).Project(baselineInput(1, 0))

	require.NotEmpty(t, summary.RiskFactors)
	risk := summary.RiskFactors[0]
	assert.Equal(t, "public_holidays", risk.Type)
	assert.Equal(t, forecast.SeverityMedium, risk.Severity)
	money(t, 1500, risk.Impact)
}

func TestProject_OverBudgetRiskAndRecommendation(t *testing.T) {
	summary := forecast.NewEngine(holidayCalendar()).Project(baselineInput(3, 100))

	var found *forecast.RiskFactor
	for i := range summary.RiskFactors {
		if summary.RiskFactors[i].Type == "over_budget" {
			found = &summary.RiskFactors[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, forecast.SeverityHigh, found.Severity, "3 weeks over budget")

	assert.NotEmpty(t, summary.Recommendations)
}

func TestProject_NoRisksOnQuietHorizon(t *testing.T) {
	summary := forecast.NewEngine(pay.NoHolidays{}).Project(baselineInput(1, 10000))
	assert.Empty(t, summary.RiskFactors)
}
