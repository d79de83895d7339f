/*
aggregate.go - Roster-wide cost aggregation

PURPOSE:
  Rolls breakdowns across all staff and a date range into budget-report
  totals bucketed by day type (weekday/Saturday/Sunday/public holiday).
*/
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/pay"
)

// =============================================================================
// ROSTER AGGREGATE
// =============================================================================

// DayTypeTotals are the summed hours and cost attributed to one day type.
type DayTypeTotals struct {
	Hours      decimal.Decimal
	GrossPay   decimal.Decimal
	TotalCost  decimal.Decimal
	ShiftCount int
}

type RosterAggregate struct {
	From pay.Date
	To   pay.Date

	ByDayType map[pay.DayType]DayTypeTotals

	TotalHours     decimal.Decimal
	GrossPay       decimal.Decimal
	AllowanceTotal decimal.Decimal
	Superannuation decimal.Decimal
	TotalCost      decimal.Decimal

	ShiftCount int
	StaffCount int
}

// Aggregate reduces breakdowns within [from, to] into roster-wide totals.
func Aggregate(breakdowns []Breakdown, from, to pay.Date) RosterAggregate {
	agg := RosterAggregate{
		From:      from,
		To:        to,
		ByDayType: make(map[pay.DayType]DayTypeTotals, 4),
	}
	staffSeen := make(map[string]struct{})

	for _, b := range breakdowns {
		if b.Date.Before(from) || b.Date.After(to) {
			continue
		}

		bucket := agg.ByDayType[b.DayType]
		bucket.Hours = bucket.Hours.Add(b.CategoryHours())
		bucket.GrossPay = bucket.GrossPay.Add(b.GrossPay)
		bucket.TotalCost = bucket.TotalCost.Add(b.TotalCost)
		bucket.ShiftCount++
		agg.ByDayType[b.DayType] = bucket

		agg.TotalHours = agg.TotalHours.Add(b.CategoryHours())
		agg.GrossPay = agg.GrossPay.Add(b.GrossPay)
		agg.AllowanceTotal = agg.AllowanceTotal.Add(b.AllowanceTotal())
		agg.Superannuation = agg.Superannuation.Add(b.Superannuation)
		agg.TotalCost = agg.TotalCost.Add(b.TotalCost)
		agg.ShiftCount++

		staffSeen[b.StaffID] = struct{}{}
	}

	agg.StaffCount = len(staffSeen)
	return agg
}
