/*
calculator.go - Per-shift cost calculation

PURPOSE:
  Implements the award interpretation algorithm: one Shift plus its
  StaffMember, an award Definition, and an optional classification
  override in; exactly one Breakdown out.

ALGORITHM:
  1. Gross/net minutes (midnight wrap handled; net <= 0 clamps and warns)
  2. Classification and dated rate resolution, casual loading
  3. Day classification: weekend/public-holiday shifts land whole in that
     penalty bucket; weekday shifts split across ordinary/evening/night
     windows, scaled so the buckets sum to net hours
  4. Overtime carve-out for non-casual shifts over 8 net hours
  5. Allowances (allowances.go)
  6. Gross pay, superannuation, total cost

PURITY:
  CostShift is a pure function of its inputs plus read-only calendar
  queries. Breakdowns are independent, which is what makes batch costing
  trivially shardable across workers.
*/
package costing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/award"
	"github.com/warp/award-engine/pay"
	"github.com/warp/award-engine/roster"
)

// OvertimeThresholdHours is the per-shift net-hours threshold beyond which
// non-casual time is overtime.
var OvertimeThresholdHours = decimal.NewFromInt(8)

// Calculator computes shift cost breakdowns. Safe for concurrent use; it
// holds only immutable reference data and a read-only calendar.
type Calculator struct {
	Calendar pay.HolidayCalendar
}

func NewCalculator(calendar pay.HolidayCalendar) *Calculator {
	if calendar == nil {
		calendar = pay.NoHolidays{}
	}
	return &Calculator{Calendar: calendar}
}

// =============================================================================
// PER-SHIFT COSTING
// =============================================================================

// CostShift produces the cost breakdown for one shift. classificationID
// overrides the award's default classification when non-empty. Anomalies
// never fail the call; they surface as warnings in the breakdown.
func (c *Calculator) CostShift(shift roster.Shift, staff roster.StaffMember, def *award.Definition, classificationID string) Breakdown {
	b := Breakdown{
		ID:       uuid.NewString(),
		ShiftID:  shift.ID,
		StaffID:  staff.ID,
		AwardID:  def.ID,
		Date:     shift.Date,
		IsCasual: staff.IsCasual(),
	}

	// Validation findings ride along as warnings; error-level findings
	// additionally clamp the affected values below.
	report := roster.Validate(shift)
	for _, issue := range report.Errors() {
		b.Warnings = append(b.Warnings, issue.Message)
	}
	for _, issue := range report.Warnings() {
		b.Warnings = append(b.Warnings, issue.Message)
	}

	// 1. Durations
	b.GrossMinutes = shift.GrossMinutes()
	b.NetMinutes = shift.NetMinutes()
	if b.NetMinutes < 0 {
		b.NetMinutes = 0
	}
	netHours := pay.MinutesToHours(b.NetMinutes)

	// 2. Rate
	cls := c.resolveClassification(def, classificationID, &b)
	rate := decimal.Zero
	if cls != nil {
		b.ClassificationID = cls.ID
		rate = def.EffectiveHourlyRate(cls, shift.Date, staff.HourlyRateOverride, staff.IsCasual())
	}
	b.EffectiveHourlyRate = rate

	// 3. Day classification and bucket split
	b.DayType = pay.ClassifyDay(shift.Date, c.Calendar)
	b.IsPublicHoliday = b.DayType == pay.DayPublicHoliday
	b.IsSchoolHoliday = c.Calendar.IsSchoolHoliday(shift.Date)

	switch b.DayType {
	case pay.DaySaturday:
		b.Saturday = wholeDayBucket(netHours, rate, def.SaturdayPenalty)
	case pay.DaySunday:
		b.Sunday = wholeDayBucket(netHours, rate, def.SundayPenalty)
	case pay.DayPublicHoliday:
		b.PublicHoliday = wholeDayBucket(netHours, rate, def.PublicHolidayPenalty)
	default:
		c.splitWeekday(&b, shift, netHours, rate, def)
	}

	// 4. Overtime
	c.applyOvertime(&b, netHours, rate, def)

	// 5. Allowances
	detection := roster.Detect(shift)
	b.Allowances = evaluateAllowances(detection, staff, def, rate, netHours)

	// 6. Totals
	b.GrossPay = pay.RoundCents(b.CategoryPay().Add(b.AllowanceTotal()))
	b.Superannuation = pay.RoundCents(b.GrossPay.Mul(pay.SuperannuationRate))
	b.TotalCost = b.GrossPay.Add(b.Superannuation)

	return b
}

func (c *Calculator) resolveClassification(def *award.Definition, overrideID string, b *Breakdown) *award.Classification {
	if overrideID != "" {
		if cls, ok := def.ClassificationByID(overrideID); ok {
			return cls
		}
		b.Warnings = append(b.Warnings,
			fmt.Sprintf("classification %q not in award %s; using award default", overrideID, def.ID))
	}
	cls, err := def.DefaultClassification()
	if err != nil {
		b.Warnings = append(b.Warnings,
			fmt.Sprintf("no usable classification for award %s: %v; rate is zero", def.ID, err))
		return nil
	}
	return cls
}

// wholeDayBucket attributes all net hours to a single penalty bucket.
// No sub-day splitting on weekends or public holidays.
func wholeDayBucket(netHours, rate, penalty decimal.Decimal) CategoryAmounts {
	return CategoryAmounts{
		Hours: netHours,
		Pay:   pay.RoundCents(netHours.Mul(rate).Mul(pay.Percent(penalty))),
	}
}

// splitWeekday splits a weekday shift across the ordinary, evening and
// night windows. Window overlap is measured on the gross interval, then
// every bucket is scaled by net/gross so the break is prorated across the
// buckets and they still sum to net hours.
func (c *Calculator) splitWeekday(b *Breakdown, shift roster.Shift, netHours, rate decimal.Decimal, def *award.Definition) {
	ordinary := pay.OrdinaryWindow.OverlapHours(shift.Start, shift.End)
	evening := pay.EveningWindow.OverlapHours(shift.Start, shift.End)
	night := pay.NightLateWindow.OverlapHours(shift.Start, shift.End).
		Add(pay.NightEarlyWindow.OverlapHours(shift.Start, shift.End))

	grossHours := ordinary.Add(evening).Add(night)
	if grossHours.IsPositive() && !grossHours.Equal(netHours) {
		scale := netHours.Div(grossHours)
		ordinary = ordinary.Mul(scale)
		evening = evening.Mul(scale)
		night = night.Mul(scale)
	}

	eveningPenalty := def.EveningPenalty
	if eveningPenalty.IsZero() {
		eveningPenalty = decimal.NewFromInt(100)
	}

	// Night hours fold into the ordinary bucket but keep the night rate.
	b.NightHours = night
	b.Ordinary = CategoryAmounts{
		Hours: ordinary.Add(night),
		Pay: pay.RoundCents(ordinary.Mul(rate).
			Add(night.Mul(rate).Mul(pay.Percent(def.NightPenalty)))),
	}
	b.Evening = CategoryAmounts{
		Hours: evening,
		Pay:   pay.RoundCents(evening.Mul(rate).Mul(pay.Percent(eveningPenalty))),
	}
}

// applyOvertime carves overtime out of the ordinary bucket for non-casual
// shifts over the threshold. The first tier hours pay at the first-tier
// percentage, the remainder at the after percentage.
func (c *Calculator) applyOvertime(b *Breakdown, netHours, rate decimal.Decimal, def *award.Definition) {
	if b.IsCasual || netHours.LessThanOrEqual(OvertimeThresholdHours) {
		return
	}

	otHours := netHours.Sub(OvertimeThresholdHours)

	firstHours := decimal.Min(otHours, def.Overtime.FirstHours)
	afterHours := otHours.Sub(firstHours)
	otPay := firstHours.Mul(rate).Mul(pay.Percent(def.Overtime.FirstRate)).
		Add(afterHours.Mul(rate).Mul(pay.Percent(def.Overtime.AfterRate)))

	// Carve the overtime hours out of ordinary, never below zero.
	carve := decimal.Min(otHours, b.Ordinary.Hours)
	b.Ordinary.Hours = b.Ordinary.Hours.Sub(carve)
	b.Ordinary.Pay = pay.RoundCents(b.Ordinary.Pay.Sub(carve.Mul(rate)))

	b.Overtime = CategoryAmounts{Hours: otHours, Pay: pay.RoundCents(otPay)}
	b.HasOvertime = true
	b.Warnings = append(b.Warnings,
		fmt.Sprintf("overtime: %s hours beyond the %s hour threshold", otHours.StringFixed(2), OvertimeThresholdHours))
}

// =============================================================================
// BATCH COSTING
// =============================================================================

// CostBatch costs every shift against the same award, resolving staff by
// id. Unknown staff degrade to a warning-bearing breakdown rather than
// failing the batch. Outputs are independent, so callers may shard this
// loop across workers freely.
func (c *Calculator) CostBatch(shifts []roster.Shift, staffByID map[string]roster.StaffMember, def *award.Definition) []Breakdown {
	out := make([]Breakdown, 0, len(shifts))
	for _, shift := range shifts {
		staff, ok := staffByID[shift.StaffID]
		if !ok {
			staff = roster.StaffMember{ID: shift.StaffID}
		}
		b := c.CostShift(shift, staff, def, "")
		if !ok {
			b.Warnings = append(b.Warnings,
				fmt.Sprintf("staff member %q not supplied; costed with defaults", shift.StaffID))
		}
		out = append(out, b)
	}
	return out
}
