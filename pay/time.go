/*
Package pay provides the foundation types for award interpretation.

PURPOSE:
  This package contains the domain-agnostic building blocks shared by the
  award catalog, the shift cost calculator, and the forecast engine:
  calendar dates, times of day, sub-day windows, day-type classification,
  and money arithmetic.

KEY CONCEPTS IN THIS FILE (time.go):
  - Date: A day-granular calendar date (UTC-normalized)
  - TimeOfDay: Minutes since midnight (a shift's start/end clock time)
  - Window: A sub-day interval used for penalty-rate splitting

MIDNIGHT WRAP:
  A shift whose end time is numerically before its start time crosses
  midnight (22:00 -> 06:00). Window.Overlap handles this by extending the
  shift end by 24 hours internally. Reference windows themselves never wrap;
  the night span is modeled as two windows (21:00-24:00 and 00:00-06:00).

DESIGN PRINCIPLES:
  1. Immutability: All types here are value types; methods return new values
  2. Precision: Durations surface as decimal hours, never float money
  3. Purity: Nothing in this package performs I/O

SEE ALSO:
  - daytype.go: Day classification and the holiday calendar collaborator
  - money.go: Decimal money helpers
  - errors.go: Engine-wide error types
*/
package pay

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DATE - Day-granular calendar date
// =============================================================================

type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO "2006-01-02" date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.normalize().Before(other.normalize()) }
func (d Date) Equal(other Date) bool         { return d.normalize().Equal(other.normalize()) }
func (d Date) After(other Date) bool         { return d.normalize().After(other.normalize()) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d Date) AddDays(n int) Date  { return Date{Time: d.Time.AddDate(0, 0, n)} }
func (d Date) AddWeeks(n int) Date { return d.AddDays(7 * n) }

// Properties
func (d Date) Year() int             { return d.Time.Year() }
func (d Date) Month() time.Month     { return d.Time.Month() }
func (d Date) Day() int              { return d.Time.Day() }
func (d Date) Weekday() time.Weekday { return d.Time.Weekday() }
func (d Date) IsZero() bool          { return d.Time.IsZero() }

func (d Date) String() string { return d.Time.Format("2006-01-02") }

// DaysBetween returns the whole days from one date to another.
func DaysBetween(from, to Date) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}

// =============================================================================
// TIME OF DAY - Minutes since midnight
// =============================================================================

type TimeOfDay int

const MinutesPerDay = 24 * 60

// ClockTime builds a TimeOfDay from hour and minute.
func ClockTime(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseClock parses a "15:04" clock string.
func ParseClock(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Hour() int    { return int(t) / 60 }
func (t TimeOfDay) Minute() int  { return int(t) % 60 }
func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour()%24, t.Minute())
}

// ShiftMinutes returns the gross duration of a shift interval, extending the
// end by 24h when it falls numerically before the start (midnight wrap).
func ShiftMinutes(start, end TimeOfDay) int {
	e := end.Minutes()
	if e <= start.Minutes() {
		e += MinutesPerDay
	}
	return e - start.Minutes()
}

// WrapsMidnight reports whether the interval crosses midnight.
func WrapsMidnight(start, end TimeOfDay) bool { return end <= start }

// =============================================================================
// WINDOW - Sub-day reference interval for penalty splitting
// =============================================================================

// Window is a non-wrapping sub-day interval [Start, End).
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewWindow(start, end TimeOfDay) Window { return Window{Start: start, End: end} }

// Minutes is negative for an inverted window; callers validating caller-supplied
// windows treat anything non-positive as ErrInvalidWindow.
func (w Window) Minutes() int { return w.End.Minutes() - w.Start.Minutes() }

func (w Window) String() string { return w.Start.String() + "-" + w.End.String() }

// OverlapHours returns the hours of a shift interval that fall inside the
// window, clamped at zero. The shift may wrap past midnight; the window
// never does. A wrapping shift is evaluated against the window on both the
// starting day and the following day.
func (w Window) OverlapHours(shiftStart, shiftEnd TimeOfDay) decimal.Decimal {
	start, end := int(shiftStart), int(shiftEnd)
	if end <= start {
		end += MinutesPerDay
	}

	minutes := overlapMinutes(start, end, int(w.Start), int(w.End))
	// The same clock window recurs on the next day for wrapping shifts.
	minutes += overlapMinutes(start, end, int(w.Start)+MinutesPerDay, int(w.End)+MinutesPerDay)

	return decimal.NewFromInt(int64(minutes)).Div(sixty)
}

func overlapMinutes(aStart, aEnd, bStart, bEnd int) int {
	lo := aStart
	if bStart > lo {
		lo = bStart
	}
	hi := aEnd
	if bEnd < hi {
		hi = bEnd
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// =============================================================================
// STANDARD PENALTY WINDOWS
// =============================================================================

// Standard weekday sub-day windows. Night spans midnight and is therefore
// modeled as two non-wrapping windows.
var (
	OrdinaryWindow   = Window{Start: ClockTime(6, 0), End: ClockTime(18, 0)}
	EveningWindow    = Window{Start: ClockTime(18, 0), End: ClockTime(21, 0)}
	NightLateWindow  = Window{Start: ClockTime(21, 0), End: ClockTime(24, 0)}
	NightEarlyWindow = Window{Start: ClockTime(0, 0), End: ClockTime(6, 0)}
)

var sixty = decimal.NewFromInt(60)
