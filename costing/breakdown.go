/*
Package costing computes the true labour cost of rostered shifts.

PURPOSE:
  This package is the orchestrating core of the engine: it combines the
  award catalog, day-type classification, sub-day window splitting, the
  shift condition detector, and the staff record to produce exactly one
  cost breakdown per shift, then rolls breakdowns into weekly and
  roster-wide aggregates.

KEY CONCEPTS IN THIS FILE (breakdown.go):
  - Breakdown: The immutable per-shift result - hours and pay per penalty
    category, applied allowances, gross pay, superannuation, total cost,
    flags, warnings
  - CategoryAmounts: An hours/pay pair for one penalty category
  - AppliedAllowance: One allowance line with amount and rationale

ERROR MODEL:
  Nothing in this package returns errors for shift anomalies. Malformed
  data surfaces as warnings inside the breakdown (error-level anomalies
  clamp the affected values) so batch costing never aborts.

SEE ALSO:
  - calculator.go: The per-shift costing algorithm
  - allowances.go: Allowance eligibility and amounts
  - weekly.go / aggregate.go: Reductions over breakdowns
*/
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/pay"
)

// =============================================================================
// CATEGORY AMOUNTS
// =============================================================================

// CategoryAmounts pairs hours with the pay those hours earned.
type CategoryAmounts struct {
	Hours decimal.Decimal
	Pay   decimal.Decimal
}

func (c CategoryAmounts) Add(other CategoryAmounts) CategoryAmounts {
	return CategoryAmounts{Hours: c.Hours.Add(other.Hours), Pay: c.Pay.Add(other.Pay)}
}

// AppliedAllowance is one allowance granted to a shift. The rationale
// explains the gate and the arithmetic for audit display.
type AppliedAllowance struct {
	ID        string
	Name      string
	Amount    decimal.Decimal
	Rationale string
}

// =============================================================================
// BREAKDOWN - One per shift, never mutated after construction
// =============================================================================

type Breakdown struct {
	ID string

	// Echoed identity
	ShiftID          string
	StaffID          string
	AwardID          string
	ClassificationID string
	Date             pay.Date
	DayType          pay.DayType

	GrossMinutes int
	NetMinutes   int

	EffectiveHourlyRate decimal.Decimal

	// Penalty categories. Night hours are folded into Ordinary.Hours but
	// paid at the night penalty; NightHours records the folded portion.
	Ordinary      CategoryAmounts
	Evening       CategoryAmounts
	Saturday      CategoryAmounts
	Sunday        CategoryAmounts
	PublicHoliday CategoryAmounts
	Overtime      CategoryAmounts
	NightHours    decimal.Decimal

	Allowances []AppliedAllowance

	GrossPay       decimal.Decimal
	Superannuation decimal.Decimal
	TotalCost      decimal.Decimal

	IsPublicHoliday bool
	IsSchoolHoliday bool
	IsCasual        bool
	HasOvertime     bool

	Warnings []string
}

// CategoryHours sums hours across all penalty categories (overtime hours
// are carved out of ordinary, so they are not double counted here).
func (b *Breakdown) CategoryHours() decimal.Decimal {
	return b.Ordinary.Hours.
		Add(b.Evening.Hours).
		Add(b.Saturday.Hours).
		Add(b.Sunday.Hours).
		Add(b.PublicHoliday.Hours).
		Add(b.Overtime.Hours)
}

// CategoryPay sums pay across all penalty categories, excluding allowances.
func (b *Breakdown) CategoryPay() decimal.Decimal {
	return b.Ordinary.Pay.
		Add(b.Evening.Pay).
		Add(b.Saturday.Pay).
		Add(b.Sunday.Pay).
		Add(b.PublicHoliday.Pay).
		Add(b.Overtime.Pay)
}

// AllowanceTotal sums all applied allowance amounts.
func (b *Breakdown) AllowanceTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range b.Allowances {
		total = total.Add(a.Amount)
	}
	return total
}
