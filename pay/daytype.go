package pay

import "time"

// =============================================================================
// DAY TYPE - Penalty classification of a calendar date
// =============================================================================

type DayType string

const (
	DayWeekday       DayType = "weekday"
	DaySaturday      DayType = "saturday"
	DaySunday        DayType = "sunday"
	DayPublicHoliday DayType = "public_holiday"
)

// ClassifyDay classifies a date for penalty purposes. Public holidays take
// precedence over the underlying weekday/weekend classification.
func ClassifyDay(date Date, calendar HolidayCalendar) DayType {
	if calendar != nil && calendar.IsPublicHoliday(date) {
		return DayPublicHoliday
	}
	switch date.Weekday() {
	case time.Saturday:
		return DaySaturday
	case time.Sunday:
		return DaySunday
	default:
		return DayWeekday
	}
}

// =============================================================================
// HOLIDAY CALENDAR - External collaborator
// =============================================================================

type HolidayType string

const (
	HolidayPublic HolidayType = "public"
	HolidaySchool HolidayType = "school"
)

// Holiday is a single calendar entry supplied by the holiday collaborator.
type Holiday struct {
	Date Date
	Name string
	Type HolidayType
}

// HolidayCalendar provides holiday lookups. The engine only ever reads from
// it; implementations own their data (static tables, database, API).
type HolidayCalendar interface {
	IsPublicHoliday(date Date) bool
	IsSchoolHoliday(date Date) bool

	// HolidaysInRange returns all holidays with from <= date <= to.
	HolidaysInRange(from, to Date) []Holiday
}

// NoHolidays is a no-op calendar for callers that have none configured.
type NoHolidays struct{}

func (NoHolidays) IsPublicHoliday(Date) bool           { return false }
func (NoHolidays) IsSchoolHoliday(Date) bool           { return false }
func (NoHolidays) HolidaysInRange(Date, Date) []Holiday { return nil }

// StaticCalendar is a fixed in-memory calendar, convenient for tests and for
// callers that load holiday data once at startup.
type StaticCalendar struct {
	Holidays []Holiday
}

func (c *StaticCalendar) IsPublicHoliday(date Date) bool {
	return c.has(date, HolidayPublic)
}

func (c *StaticCalendar) IsSchoolHoliday(date Date) bool {
	return c.has(date, HolidaySchool)
}

func (c *StaticCalendar) has(date Date, typ HolidayType) bool {
	for _, h := range c.Holidays {
		if h.Type == typ && h.Date.Equal(date) {
			return true
		}
	}
	return false
}

func (c *StaticCalendar) HolidaysInRange(from, to Date) []Holiday {
	var out []Holiday
	for _, h := range c.Holidays {
		if h.Date.AfterOrEqual(from) && h.Date.BeforeOrEqual(to) {
			out = append(out, h)
		}
	}
	return out
}
