package pay_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/pay"
)

// =============================================================================
// SHIFT DURATION TESTS
// =============================================================================

func TestShiftMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start pay.TimeOfDay
		end   pay.TimeOfDay
		want  int
	}{
		{"day shift", pay.ClockTime(9, 0), pay.ClockTime(17, 0), 480},
		{"half hour granularity", pay.ClockTime(7, 0), pay.ClockTime(15, 30), 510},
		{"wraps midnight", pay.ClockTime(22, 0), pay.ClockTime(6, 0), 480},
		{"wraps just past midnight", pay.ClockTime(23, 30), pay.ClockTime(0, 30), 60},
		{"equal start and end is a full day", pay.ClockTime(8, 0), pay.ClockTime(8, 0), 1440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pay.ShiftMinutes(tt.start, tt.end); got != tt.want {
				t.Errorf("ShiftMinutes(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestWrapsMidnight(t *testing.T) {
	if pay.WrapsMidnight(pay.ClockTime(9, 0), pay.ClockTime(17, 0)) {
		t.Error("day shift should not wrap")
	}
	if !pay.WrapsMidnight(pay.ClockTime(22, 0), pay.ClockTime(6, 0)) {
		t.Error("22:00-06:00 should wrap")
	}
}

func TestWindowMinutes(t *testing.T) {
	cases := []struct {
		name   string
		window pay.Window
		want   int
	}{
		{"forward", pay.NewWindow(pay.ClockTime(6, 0), pay.ClockTime(18, 0)), 720},
		{"inverted is negative", pay.NewWindow(pay.ClockTime(13, 0), pay.ClockTime(9, 0)), -240},
		{"empty", pay.Window{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.window.Minutes(); got != tc.want {
				t.Errorf("Minutes() = %d, want %d", got, tc.want)
			}
		})
	}
}

// =============================================================================
// WINDOW OVERLAP TESTS
// =============================================================================

func TestWindowOverlap_DayShift(t *testing.T) {
	// 07:00-17:00 sits entirely inside the ordinary window.
	got := pay.OrdinaryWindow.OverlapHours(pay.ClockTime(7, 0), pay.ClockTime(17, 0))
	if !got.Equal(hours(10)) {
		t.Errorf("ordinary overlap = %s, want 10", got)
	}

	// No evening or night content.
	if !pay.EveningWindow.OverlapHours(pay.ClockTime(7, 0), pay.ClockTime(17, 0)).IsZero() {
		t.Error("day shift should have no evening overlap")
	}
}

func TestWindowOverlap_EveningShift(t *testing.T) {
	// 16:00-22:00 splits 2h ordinary, 3h evening, 1h night.
	start, end := pay.ClockTime(16, 0), pay.ClockTime(22, 0)

	if got := pay.OrdinaryWindow.OverlapHours(start, end); !got.Equal(hours(2)) {
		t.Errorf("ordinary overlap = %s, want 2", got)
	}
	if got := pay.EveningWindow.OverlapHours(start, end); !got.Equal(hours(3)) {
		t.Errorf("evening overlap = %s, want 3", got)
	}
	if got := pay.NightLateWindow.OverlapHours(start, end); !got.Equal(hours(1)) {
		t.Errorf("night overlap = %s, want 1", got)
	}
}

func TestWindowOverlap_WrappingShift(t *testing.T) {
	// 22:00-06:00 crosses midnight: 2h in the late-night window on day one,
	// 6h in the early-night window on day two, nothing ordinary.
	start, end := pay.ClockTime(22, 0), pay.ClockTime(6, 0)

	if got := pay.NightLateWindow.OverlapHours(start, end); !got.Equal(hours(2)) {
		t.Errorf("late night overlap = %s, want 2", got)
	}
	if got := pay.NightEarlyWindow.OverlapHours(start, end); !got.Equal(hours(6)) {
		t.Errorf("early night overlap = %s, want 6", got)
	}
	if got := pay.OrdinaryWindow.OverlapHours(start, end); !got.IsZero() {
		t.Errorf("ordinary overlap = %s, want 0", got)
	}
}

func TestWindowOverlap_WrappingIntoOrdinary(t *testing.T) {
	// 23:00-08:00 reaches 2h into the next day's ordinary window.
	start, end := pay.ClockTime(23, 0), pay.ClockTime(8, 0)

	if got := pay.OrdinaryWindow.OverlapHours(start, end); !got.Equal(hours(2)) {
		t.Errorf("ordinary overlap = %s, want 2", got)
	}
	if got := pay.NightEarlyWindow.OverlapHours(start, end); !got.Equal(hours(6)) {
		t.Errorf("early night overlap = %s, want 6", got)
	}
}

func TestWindowOverlap_DisjointIsZero(t *testing.T) {
	got := pay.EveningWindow.OverlapHours(pay.ClockTime(8, 0), pay.ClockTime(12, 0))
	if !got.IsZero() {
		t.Errorf("disjoint overlap = %s, want 0", got)
	}
}

// =============================================================================
// PARSING & DATE ARITHMETIC
// =============================================================================

func TestParseClock(t *testing.T) {
	got, err := pay.ParseClock("21:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != pay.ClockTime(21, 30) {
		t.Errorf("ParseClock = %v, want %v", got, pay.ClockTime(21, 30))
	}

	if _, err := pay.ParseClock("25:00"); err == nil {
		t.Error("expected error for 25:00")
	}
}

func TestParseDate(t *testing.T) {
	d, err := pay.ParseDate("2025-06-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Weekday() != time.Monday {
		t.Errorf("2025-06-02 should be a Monday, got %v", d.Weekday())
	}

	if _, err := pay.ParseDate("02/06/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDateArithmetic(t *testing.T) {
	mon := pay.NewDate(2025, time.June, 2)

	if got := mon.AddDays(6); !got.Equal(pay.NewDate(2025, time.June, 8)) {
		t.Errorf("AddDays(6) = %s", got)
	}
	if got := mon.AddWeeks(2); !got.Equal(pay.NewDate(2025, time.June, 16)) {
		t.Errorf("AddWeeks(2) = %s", got)
	}
	if got := pay.DaysBetween(mon, pay.NewDate(2025, time.June, 8)); got != 6 {
		t.Errorf("DaysBetween = %d, want 6", got)
	}
}

func hours(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
