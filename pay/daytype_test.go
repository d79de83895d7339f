package pay_test

import (
	"testing"
	"time"

	"github.com/warp/award-engine/pay"
)

func juneCalendar() *pay.StaticCalendar {
	return &pay.StaticCalendar{
		Holidays: []pay.Holiday{
			{Date: pay.NewDate(2025, time.June, 9), Name: "King's Birthday", Type: pay.HolidayPublic},
			{Date: pay.NewDate(2025, time.July, 7), Name: "Winter Break", Type: pay.HolidaySchool},
		},
	}
}

func TestClassifyDay(t *testing.T) {
	cal := juneCalendar()

	tests := []struct {
		name string
		date pay.Date
		want pay.DayType
	}{
		{"ordinary weekday", pay.NewDate(2025, time.June, 2), pay.DayWeekday},
		{"saturday", pay.NewDate(2025, time.June, 7), pay.DaySaturday},
		{"sunday", pay.NewDate(2025, time.June, 8), pay.DaySunday},
		{"public holiday beats weekday", pay.NewDate(2025, time.June, 9), pay.DayPublicHoliday},
		{"school holiday is still a weekday", pay.NewDate(2025, time.July, 7), pay.DayWeekday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pay.ClassifyDay(tt.date, cal); got != tt.want {
				t.Errorf("ClassifyDay(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}

func TestClassifyDay_PublicHolidayOnWeekend(t *testing.T) {
	// A public holiday falling on a Saturday classifies as public holiday,
	// not Saturday.
	cal := &pay.StaticCalendar{Holidays: []pay.Holiday{
		{Date: pay.NewDate(2025, time.June, 7), Name: "Observed Day", Type: pay.HolidayPublic},
	}}

	if got := pay.ClassifyDay(pay.NewDate(2025, time.June, 7), cal); got != pay.DayPublicHoliday {
		t.Errorf("ClassifyDay = %s, want %s", got, pay.DayPublicHoliday)
	}
}

func TestClassifyDay_NilCalendar(t *testing.T) {
	if got := pay.ClassifyDay(pay.NewDate(2025, time.June, 2), nil); got != pay.DayWeekday {
		t.Errorf("ClassifyDay = %s, want %s", got, pay.DayWeekday)
	}
}

func TestStaticCalendar_HolidaysInRange(t *testing.T) {
	cal := juneCalendar()

	got := cal.HolidaysInRange(pay.NewDate(2025, time.June, 1), pay.NewDate(2025, time.June, 30))
	if len(got) != 1 || got[0].Name != "King's Birthday" {
		t.Errorf("HolidaysInRange = %v, want just King's Birthday", got)
	}

	if got := cal.HolidaysInRange(pay.NewDate(2025, time.August, 1), pay.NewDate(2025, time.August, 31)); len(got) != 0 {
		t.Errorf("HolidaysInRange outside data = %v, want empty", got)
	}
}
