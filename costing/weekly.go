/*
weekly.go - Per-staff weekly summaries

PURPOSE:
  Pure reduction of per-shift breakdowns into one weekly summary per staff
  member, with a flag for breaching contracted maximum hours. There is no
  partial-failure path: a malformed shift already degraded to a
  warning-bearing breakdown upstream, and it sums like any other.
*/
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/pay"
	"github.com/warp/award-engine/roster"
)

// =============================================================================
// WEEKLY SUMMARY
// =============================================================================

type WeekSummary struct {
	StaffID   string
	WeekStart pay.Date
	WeekEnd   pay.Date

	Ordinary      CategoryAmounts
	Evening       CategoryAmounts
	Saturday      CategoryAmounts
	Sunday        CategoryAmounts
	PublicHoliday CategoryAmounts
	Overtime      CategoryAmounts

	TotalHours     decimal.Decimal
	AllowanceTotal decimal.Decimal
	GrossPay       decimal.Decimal
	Superannuation decimal.Decimal
	TotalCost      decimal.Decimal

	ShiftCount int

	// ExceedsContractedHours is set when total hours pass the staff
	// member's contracted weekly maximum (never set when no maximum).
	ExceedsContractedHours bool

	Warnings []string
}

// SummarizeWeek reduces a staff member's breakdowns for the week starting
// at weekStart (7 days inclusive) into one summary.
func SummarizeWeek(staff roster.StaffMember, breakdowns []Breakdown, weekStart pay.Date) WeekSummary {
	s := WeekSummary{
		StaffID:   staff.ID,
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDays(6),
	}

	for _, b := range breakdowns {
		if b.StaffID != staff.ID {
			continue
		}
		if b.Date.Before(s.WeekStart) || b.Date.After(s.WeekEnd) {
			continue
		}

		s.Ordinary = s.Ordinary.Add(b.Ordinary)
		s.Evening = s.Evening.Add(b.Evening)
		s.Saturday = s.Saturday.Add(b.Saturday)
		s.Sunday = s.Sunday.Add(b.Sunday)
		s.PublicHoliday = s.PublicHoliday.Add(b.PublicHoliday)
		s.Overtime = s.Overtime.Add(b.Overtime)

		s.TotalHours = s.TotalHours.Add(b.CategoryHours())
		s.AllowanceTotal = s.AllowanceTotal.Add(b.AllowanceTotal())
		s.GrossPay = s.GrossPay.Add(b.GrossPay)
		s.Superannuation = s.Superannuation.Add(b.Superannuation)
		s.TotalCost = s.TotalCost.Add(b.TotalCost)

		s.ShiftCount++
		s.Warnings = append(s.Warnings, b.Warnings...)
	}

	if staff.ContractedMaxHoursPerWeek.IsPositive() &&
		s.TotalHours.GreaterThan(staff.ContractedMaxHoursPerWeek) {
		s.ExceedsContractedHours = true
	}

	return s
}

// SummarizeAllStaff produces one weekly summary per staff member.
func SummarizeAllStaff(staff []roster.StaffMember, breakdowns []Breakdown, weekStart pay.Date) []WeekSummary {
	out := make([]WeekSummary, 0, len(staff))
	for _, m := range staff {
		out = append(out, SummarizeWeek(m, breakdowns, weekStart))
	}
	return out
}
