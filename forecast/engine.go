/*
engine.go - Cost projection from current rostering patterns

PURPOSE:
  Projects daily and weekly labour cost for future weeks. Each future day
  inherits the rostered pattern of the SAME calendar weekday in the
  baseline week, then demand and cost are adjusted for what is known
  about the future date:

    public holiday -> demand x0.3 (fewer shifts rostered), cost x2.5
    school holiday -> demand x1.2
    otherwise      -> x1

  Projected day cost = projected hours x average staff rate x cost
  multiplier, plus a day-type penalty addend (public holiday +1.5x,
  Sunday +1.0x, Saturday +0.5x of the ordinary-cost base), plus a ~2%
  allowances estimate and 11.5% superannuation on the resulting gross.

VARIANCE:
  Each week carries variance against the supplied weekly budget and
  against the previous projected week - after week 1 the comparison is
  projection-to-projection, not projection-to-actual.
*/
package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/pay"
)

// =============================================================================
// TUNING CONSTANTS
// =============================================================================

var (
	publicHolidayDemand = decimal.NewFromFloat(0.3)
	publicHolidayCost   = decimal.NewFromFloat(2.5)
	schoolHolidayDemand = decimal.NewFromFloat(1.2)

	publicHolidayAddend = decimal.NewFromFloat(1.5)
	sundayAddend        = decimal.NewFromFloat(1.0)
	saturdayAddend      = decimal.NewFromFloat(0.5)

	allowanceEstimate = decimal.NewFromFloat(0.02)

	// perHolidayCostEstimate is the fixed dollar exposure assumed per
	// public holiday when sizing risk.
	perHolidayCostEstimate = decimal.NewFromInt(1500)

	// defaultHourlyRate applies when no staff rate is derivable.
	defaultHourlyRate = decimal.NewFromInt(30)
)

const (
	confidenceTypical = 0.85
	confidenceHoliday = 0.70
)

// Engine projects labour cost. Pure apart from read-only calendar queries.
type Engine struct {
	Calendar pay.HolidayCalendar
}

func NewEngine(calendar pay.HolidayCalendar) *Engine {
	if calendar == nil {
		calendar = pay.NoHolidays{}
	}
	return &Engine{Calendar: calendar}
}

// =============================================================================
// PROJECTION
// =============================================================================

// Project produces the forecast summary for the requested horizon.
func (e *Engine) Project(input Input) Summary {
	avgRate := e.averageRate(input)

	summary := Summary{
		GeneratedFor:      input.BaselineWeekStart,
		WeekCount:         input.Weeks,
		AverageHourlyRate: avgRate,
	}

	baselineHours, baselineCounts := e.baselineByDay(input)
	baselineCost := e.baselineWeekCost(baselineHours, avgRate)

	previousCost := baselineCost
	for w := 1; w <= input.Weeks; w++ {
		week := e.projectWeek(input, w, avgRate, baselineHours, baselineCounts)
		week.VsPreviousWeek = week.ProjectedCost.Sub(previousCost)
		previousCost = week.ProjectedCost

		summary.TotalProjectedCost = summary.TotalProjectedCost.Add(week.ProjectedCost)
		summary.TotalBudget = summary.TotalBudget.Add(week.Budget)
		summary.Weeks = append(summary.Weeks, week)
	}

	summary.RiskFactors = e.assessRisks(summary)
	summary.Recommendations = e.recommend(summary)

	return summary
}

// baselineByDay indexes baseline net hours and shift counts by weekday
// offset (0..6) from the baseline week start.
func (e *Engine) baselineByDay(input Input) ([7]decimal.Decimal, [7]int) {
	var hours [7]decimal.Decimal
	var counts [7]int

	for _, s := range input.BaselineShifts {
		offset := pay.DaysBetween(input.BaselineWeekStart, s.Date)
		if offset < 0 || offset > 6 {
			continue
		}
		net := s.NetHours()
		if net.IsNegative() {
			net = decimal.Zero
		}
		hours[offset] = hours[offset].Add(net)
		counts[offset]++
	}
	return hours, counts
}

// baselineWeekCost estimates the baseline week's ordinary cost, the
// reference point for week 1's week-over-week variance.
func (e *Engine) baselineWeekCost(hours [7]decimal.Decimal, avgRate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, h := range hours {
		total = total.Add(h.Mul(avgRate))
	}
	return withOncosts(total)
}

func (e *Engine) projectWeek(input Input, weekNumber int, avgRate decimal.Decimal, baselineHours [7]decimal.Decimal, baselineCounts [7]int) WeekForecast {
	weekStart := input.BaselineWeekStart.AddWeeks(weekNumber)
	week := WeekForecast{
		WeekNumber: weekNumber,
		WeekStart:  weekStart,
		WeekEnd:    weekStart.AddDays(6),
		Budget:     input.WeeklyBudget,
	}

	for offset := 0; offset < 7; offset++ {
		day := e.projectDay(
			weekStart.AddDays(offset),
			input.BaselineWeekStart.AddDays(offset),
			baselineHours[offset],
			baselineCounts[offset],
			avgRate,
		)
		week.ProjectedHours = week.ProjectedHours.Add(day.ProjectedHours)
		week.ProjectedCost = week.ProjectedCost.Add(day.ProjectedCost)
		week.Days = append(week.Days, day)
	}

	week.BudgetVariance = week.ProjectedCost.Sub(week.Budget)
	week.OverBudget = input.WeeklyBudget.IsPositive() && week.BudgetVariance.IsPositive()

	return week
}

func (e *Engine) projectDay(date, baselineDate pay.Date, baselineHours decimal.Decimal, baselineCount int, avgRate decimal.Decimal) DayForecast {
	day := DayForecast{
		Date:               date,
		BaselineDate:       baselineDate,
		IsPublicHoliday:    e.Calendar.IsPublicHoliday(date),
		IsSchoolHoliday:    e.Calendar.IsSchoolHoliday(date),
		BaselineHours:      baselineHours,
		BaselineShiftCount: baselineCount,
		Confidence:         confidenceTypical,
	}

	demand := decimal.NewFromInt(1)
	cost := decimal.NewFromInt(1)
	switch {
	case day.IsPublicHoliday:
		demand = publicHolidayDemand
		cost = publicHolidayCost
		day.Confidence = confidenceHoliday
	case day.IsSchoolHoliday:
		demand = schoolHolidayDemand
		day.Confidence = confidenceHoliday
	}

	day.ProjectedHours = baselineHours.Mul(demand)
	count, _ := demand.Mul(decimal.NewFromInt(int64(baselineCount))).Float64()
	day.ProjectedShiftCount = int(math.Round(count))

	// Ordinary-cost base, then the weekend/holiday penalty addend on top.
	base := day.ProjectedHours.Mul(avgRate).Mul(cost)
	base = base.Add(base.Mul(e.penaltyAddend(day)))

	day.ProjectedCost = pay.RoundCents(withOncosts(base))
	return day
}

// penaltyAddend returns the extra fraction of the ordinary-cost base paid
// because of the day type.
func (e *Engine) penaltyAddend(day DayForecast) decimal.Decimal {
	switch {
	case day.IsPublicHoliday:
		return publicHolidayAddend
	case day.Date.Weekday() == time.Sunday:
		return sundayAddend
	case day.Date.Weekday() == time.Saturday:
		return saturdayAddend
	default:
		return decimal.Zero
	}
}

// withOncosts layers the flat allowances estimate and superannuation on
// an ordinary-cost base, mirroring the per-shift calculator's ordering
// (super applies to gross including allowances).
func withOncosts(base decimal.Decimal) decimal.Decimal {
	gross := base.Add(base.Mul(allowanceEstimate))
	return gross.Add(gross.Mul(pay.SuperannuationRate))
}

// averageRate derives the mean hourly rate across staff with known rates,
// unless the input supplies one.
func (e *Engine) averageRate(input Input) decimal.Decimal {
	if input.AverageHourlyRate.IsPositive() {
		return input.AverageHourlyRate
	}

	total := decimal.Zero
	n := 0
	for _, m := range input.Staff {
		if m.HourlyRateOverride.IsPositive() {
			total = total.Add(m.HourlyRateOverride)
			n++
		}
	}
	if n == 0 {
		return defaultHourlyRate
	}
	return total.Div(decimal.NewFromInt(int64(n)))
}

// =============================================================================
// RISKS & RECOMMENDATIONS
// =============================================================================

func (e *Engine) assessRisks(s Summary) []RiskFactor {
	var risks []RiskFactor

	if len(s.Weeks) == 0 {
		return risks
	}

	from := s.Weeks[0].WeekStart
	to := s.Weeks[len(s.Weeks)-1].WeekEnd

	holidays := 0
	for _, h := range e.Calendar.HolidaysInRange(from, to) {
		if h.Type == pay.HolidayPublic {
			holidays++
		}
	}
	if holidays > 0 {
		severity := SeverityMedium
		if holidays > 2 {
			severity = SeverityHigh
		}
		risks = append(risks, RiskFactor{
			Type: "public_holidays",
			Description: fmt.Sprintf("%d public holiday(s) fall in the forecast window; penalty loadings will raise cost",
				holidays),
			Severity: severity,
			Impact:   perHolidayCostEstimate.Mul(decimal.NewFromInt(int64(holidays))),
		})
	}

	overBudget := 0
	overrun := decimal.Zero
	for _, w := range s.Weeks {
		if w.OverBudget {
			overBudget++
			overrun = overrun.Add(w.BudgetVariance)
		}
	}
	if overBudget > 0 {
		severity := SeverityMedium
		if overBudget > 2 {
			severity = SeverityHigh
		}
		risks = append(risks, RiskFactor{
			Type: "over_budget",
			Description: fmt.Sprintf("%d of %d week(s) projected over budget",
				overBudget, len(s.Weeks)),
			Severity: severity,
			Impact:   overrun,
		})
	}

	return risks
}

func (e *Engine) recommend(s Summary) []string {
	var recs []string

	if s.TotalBudget.IsPositive() && s.TotalProjectedCost.GreaterThan(s.TotalBudget) {
		over := s.TotalProjectedCost.Sub(s.TotalBudget)
		recs = append(recs, fmt.Sprintf(
			"Projected cost exceeds budget by $%s over the forecast window; review rostered hours or defer discretionary shifts.",
			over.StringFixed(2)))
	}

	publicHolidays := 0
	schoolHolidayDays := 0
	for _, w := range s.Weeks {
		for _, d := range w.Days {
			if d.IsPublicHoliday {
				publicHolidays++
			}
			if d.IsSchoolHoliday {
				schoolHolidayDays++
			}
		}
	}

	if publicHolidays > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d public holiday(s) ahead: minimise rostered staff on those days or expect penalty rates around 250%%.",
			publicHolidays))
	}

	if schoolHolidayDays > 5 {
		recs = append(recs, fmt.Sprintf(
			"%d school-holiday days in the window: expect higher demand; consider casual cover early.",
			schoolHolidayDays))
	}

	return recs
}
