/*
rates.go - Rate-schedule resolution and effective rates

PURPOSE:
  Resolves the hourly rate that applies to a classification on a given
  date, then layers employment-type loading on top to produce the
  effective hourly rate a shift is actually paid at.

RESOLUTION RULE:
  The schedule step with the latest EffectiveFrom on or before the target
  date wins. With no qualifying step, the classification's base rate
  applies. The invariant is the contract; the sorted search is just the
  implementation.

EXAMPLE:
  Steps effective 2025-01-01 ($30) and 2025-10-01 ($32):
    RateOn(2025-09-01) -> $30
    RateOn(2025-12-01) -> $32
    RateOn(2024-06-01) -> base rate
*/
package award

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/pay"
)

// =============================================================================
// RATE RESOLUTION
// =============================================================================

// RateOn resolves the classification's hourly rate for a target date.
func (c *Classification) RateOn(date pay.Date) decimal.Decimal {
	if step, ok := c.stepOn(date); ok {
		return step.HourlyRate
	}
	return c.HourlyRate
}

// WeeklyRateOn resolves the classification's weekly rate for a target date.
func (c *Classification) WeeklyRateOn(date pay.Date) decimal.Decimal {
	if step, ok := c.stepOn(date); ok {
		return step.WeeklyRate
	}
	return c.WeeklyRate
}

// stepOn finds the latest schedule step effective on or before the date.
// The schedule is kept sorted ascending, so a binary search for the first
// step after the date gives the answer at the preceding index.
func (c *Classification) stepOn(date pay.Date) (RateStep, bool) {
	if len(c.RateSchedule) == 0 {
		return RateStep{}, false
	}
	idx := sort.Search(len(c.RateSchedule), func(i int) bool {
		return c.RateSchedule[i].EffectiveFrom.After(date)
	})
	if idx == 0 {
		return RateStep{}, false
	}
	return c.RateSchedule[idx-1], true
}

// SortSchedule orders the rate schedule by EffectiveFrom ascending.
// Construction helpers call this so lookups can rely on the ordering.
func (c *Classification) SortSchedule() {
	sort.Slice(c.RateSchedule, func(i, j int) bool {
		return c.RateSchedule[i].EffectiveFrom.Before(c.RateSchedule[j].EffectiveFrom)
	})
}

// =============================================================================
// EFFECTIVE RATE
// =============================================================================

// EffectiveHourlyRate returns the rate a shift is paid at before penalties:
// the date-resolved classification rate (or the override when positive),
// with casual loading applied on top for casual employees.
func (d *Definition) EffectiveHourlyRate(c *Classification, date pay.Date, overrideRate decimal.Decimal, casual bool) decimal.Decimal {
	rate := c.RateOn(date)
	if overrideRate.IsPositive() {
		rate = overrideRate
	}
	if casual {
		rate = rate.Mul(pay.LoadingFactor(d.CasualLoading))
	}
	return rate
}
