package costing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/award-engine/costing"
	"github.com/warp/award-engine/pay"
	"github.com/warp/award-engine/roster"
)

// weekOfShifts builds five 8 hour weekday shifts, Monday to Friday.
func weekOfShifts(staffID string) []roster.Shift {
	var shifts []roster.Shift
	for i := 0; i < 5; i++ {
		s := shiftOn(monday().AddDays(i), pay.ClockTime(9, 0), pay.ClockTime(17, 0), 0)
		s.ID = s.Date.String()
		s.StaffID = staffID
		shifts = append(shifts, s)
	}
	return shifts
}

// =============================================================================
// WEEKLY SUMMARY
// =============================================================================

func TestSummarizeWeek_SumsCategories(t *testing.T) {
	// GIVEN: Five 8 hour weekday shifts at $30/hour
	// WHEN: Summarizing the week
	// THEN: 40 ordinary hours, $1200 gross, super summed per shift

	staff := fullTimer()
	breakdowns := newCalc().CostBatch(weekOfShifts(staff.ID),
		map[string]roster.StaffMember{staff.ID: staff}, socialCare())

	s := costing.SummarizeWeek(staff, breakdowns, monday())

	assert.Equal(t, 5, s.ShiftCount)
	assertMoney(t, 40, s.TotalHours)
	assertMoney(t, 40, s.Ordinary.Hours)
	assertMoney(t, 1200, s.GrossPay)
	assertMoney(t, 138, s.Superannuation) // 5 x 27.60
	assertMoney(t, 1338, s.TotalCost)
	assert.True(t, s.WeekEnd.Equal(monday().AddDays(6)))
}

func TestSummarizeWeek_ExceedsContractedHours(t *testing.T) {
	staff := fullTimer()
	staff.ContractedMaxHoursPerWeek = decimal.NewFromInt(38)

	breakdowns := newCalc().CostBatch(weekOfShifts(staff.ID),
		map[string]roster.StaffMember{staff.ID: staff}, socialCare())

	s := costing.SummarizeWeek(staff, breakdowns, monday())
	assert.True(t, s.ExceedsContractedHours, "40 worked hours against 38 contracted")
}

func TestSummarizeWeek_WithinContractedHours(t *testing.T) {
	staff := fullTimer()
	staff.ContractedMaxHoursPerWeek = decimal.NewFromInt(40)

	breakdowns := newCalc().CostBatch(weekOfShifts(staff.ID),
		map[string]roster.StaffMember{staff.ID: staff}, socialCare())

	s := costing.SummarizeWeek(staff, breakdowns, monday())
	assert.False(t, s.ExceedsContractedHours, "the bound is exclusive")
}

func TestSummarizeWeek_IgnoresOtherWeeksAndStaff(t *testing.T) {
	staff := fullTimer()
	shifts := weekOfShifts(staff.ID)

	// One shift the following week, one for someone else.
	outOfWeek := shiftOn(monday().AddWeeks(1), pay.ClockTime(9, 0), pay.ClockTime(17, 0), 0)
	outOfWeek.StaffID = staff.ID
	otherStaff := shiftOn(monday(), pay.ClockTime(9, 0), pay.ClockTime(17, 0), 0)
	otherStaff.StaffID = "staff-9"
	shifts = append(shifts, outOfWeek, otherStaff)

	breakdowns := newCalc().CostBatch(shifts,
		map[string]roster.StaffMember{staff.ID: staff}, socialCare())

	s := costing.SummarizeWeek(staff, breakdowns, monday())
	assert.Equal(t, 5, s.ShiftCount)
}

func TestSummarizeAllStaff(t *testing.T) {
	a, b := fullTimer(), casualWorker(25)
	b.ID = "staff-2"

	shifts := append(weekOfShifts(a.ID), func() roster.Shift {
		s := shiftOn(sunday(), pay.ClockTime(9, 0), pay.ClockTime(13, 0), 0)
		s.StaffID = b.ID
		return s
	}())

	breakdowns := newCalc().CostBatch(shifts,
		map[string]roster.StaffMember{a.ID: a, b.ID: b}, socialCare())

	summaries := costing.SummarizeAllStaff([]roster.StaffMember{a, b}, breakdowns, monday())

	require.Len(t, summaries, 2)
	assert.Equal(t, 5, summaries[0].ShiftCount)
	assert.Equal(t, 1, summaries[1].ShiftCount)
	assertMoney(t, 250, summaries[1].Sunday.Pay)
}

// =============================================================================
// ROSTER AGGREGATE
// =============================================================================

func TestAggregate_BucketsByDayType(t *testing.T) {
	// GIVEN: A weekday, a Saturday and a public holiday shift
	// WHEN: Aggregating the fortnight
	// THEN: Each lands in its own day-type bucket

	staff := fullTimer()
	shifts := []roster.Shift{
		shiftOn(monday(), pay.ClockTime(9, 0), pay.ClockTime(17, 0), 0),
		shiftOn(saturday(), pay.ClockTime(9, 0), pay.ClockTime(13, 0), 0),
		shiftOn(holiday(), pay.ClockTime(9, 0), pay.ClockTime(17, 0), 0),
	}
	for i := range shifts {
		shifts[i].ID = shifts[i].Date.String()
		shifts[i].StaffID = staff.ID
	}

	breakdowns := newCalc().CostBatch(shifts,
		map[string]roster.StaffMember{staff.ID: staff}, socialCare())

	agg := costing.Aggregate(breakdowns, monday(), monday().AddDays(13))

	assert.Equal(t, 3, agg.ShiftCount)
	assert.Equal(t, 1, agg.StaffCount)

	assertMoney(t, 8, agg.ByDayType[pay.DayWeekday].Hours)
	assertMoney(t, 4, agg.ByDayType[pay.DaySaturday].Hours)
	assertMoney(t, 8, agg.ByDayType[pay.DayPublicHoliday].Hours)

	assertMoney(t, 180, agg.ByDayType[pay.DaySaturday].GrossPay)      // 4x30x1.5
	assertMoney(t, 600, agg.ByDayType[pay.DayPublicHoliday].GrossPay) // 8x30x2.5
	assertMoney(t, 20, agg.TotalHours)
}

func TestAggregate_ExcludesOutOfRange(t *testing.T) {
	staff := fullTimer()
	inRange := shiftOn(monday(), pay.ClockTime(9, 0), pay.ClockTime(17, 0), 0)
	outRange := shiftOn(pay.NewDate(2025, time.May, 26), pay.ClockTime(9, 0), pay.ClockTime(17, 0), 0)

	breakdowns := newCalc().CostBatch([]roster.Shift{inRange, outRange},
		map[string]roster.StaffMember{staff.ID: staff}, socialCare())

	agg := costing.Aggregate(breakdowns, monday(), monday().AddDays(6))
	assert.Equal(t, 1, agg.ShiftCount)
}
