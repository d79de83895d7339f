/*
presets.go - Ready-to-use award definitions

PURPOSE:
  Provides complete award configurations for common industry patterns.
  These are convenience constructors in typical jurisdictional shapes;
  real deployments load their own definitions through the factory package.

AVAILABLE PRESETS:
  SocialCareAward: Community/disability-services style award with the full
                   allowance table (sleepover, on-call, broken shift,
                   higher duties, travel, first aid, educational leader)
  RetailAward:     Simpler weekend-penalty award with a minimal allowance
                   table, no evening/night distinction beyond evening

CUSTOMIZATION:
  These are starting points. Real awards revise rates annually - attach
  RateSchedule steps to classifications for dated increases.
*/
package award

import (
	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/pay"
)

// Well-known allowance ids the cost calculator looks up by name.
const (
	AllowanceFirstAid          = "first_aid"
	AllowanceEducationalLeader = "educational_leader"
	AllowanceOnCall            = "on_call"
	AllowanceSleepover         = "sleepover"
	AllowanceBrokenShift       = "broken_shift"
	AllowanceHigherDuties      = "higher_duties"
	AllowanceTravel            = "travel"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// =============================================================================
// PRESET AWARDS
// =============================================================================

// SocialCareAward returns a community-services style award: evening and
// night loadings on weekdays, 150/200/250 weekend and public-holiday
// penalties, two-tier overtime, and the full allowance table.
func SocialCareAward(id string) *Definition {
	return &Definition{
		ID:            id,
		Name:          "Social & Community Services Award",
		CasualLoading: dec(25),

		SaturdayPenalty:      dec(150),
		SundayPenalty:        dec(200),
		PublicHolidayPenalty: dec(250),
		EveningPenalty:       dec(112.5),
		NightPenalty:         dec(115),

		Overtime: OvertimeTiers{
			FirstHours: dec(2),
			FirstRate:  dec(150),
			AfterRate:  dec(200),
		},

		Classifications: []Classification{
			{ID: "level-2.1", Name: "Level 2.1", HourlyRate: dec(28.45), WeeklyRate: dec(1081.10)},
			{ID: "level-3.1", Name: "Level 3.1", HourlyRate: dec(30.95), WeeklyRate: dec(1176.10)},
			{ID: "level-4.1", Name: "Level 4.1", HourlyRate: dec(33.41), WeeklyRate: dec(1269.60)},
			{ID: "level-5.1", Name: "Level 5.1", HourlyRate: dec(36.46), WeeklyRate: dec(1385.50)},
		},
		DefaultClassificationID: "level-3.1",

		Allowances: []Allowance{
			{ID: AllowanceFirstAid, Name: "First Aid Allowance", Unit: PerWeek, Amount: dec(16.92)},
			{ID: AllowanceEducationalLeader, Name: "Educational Leader Allowance", Unit: PerHour, Amount: dec(2.28)},
			{ID: AllowanceOnCall, Name: "On-Call Allowance", Unit: PerDay, Amount: dec(24.30)},
			{ID: AllowanceSleepover, Name: "Sleepover Allowance", Unit: PerShift, Amount: dec(52.26)},
			{ID: AllowanceBrokenShift, Name: "Broken Shift Allowance", Unit: PerShift, Amount: dec(19.37)},
			{ID: AllowanceHigherDuties, Name: "Higher Duties Allowance", Unit: PerHour, Amount: dec(1.85)},
			{ID: AllowanceTravel, Name: "Vehicle Allowance", Unit: PerKm, Amount: dec(0.99)},
		},
	}
}

// RetailAward returns a simpler weekend-penalty award.
func RetailAward(id string) *Definition {
	return &Definition{
		ID:            id,
		Name:          "General Retail Award",
		CasualLoading: dec(25),

		SaturdayPenalty:      dec(125),
		SundayPenalty:        dec(150),
		PublicHolidayPenalty: dec(225),
		EveningPenalty:       dec(125),
		NightPenalty:         dec(130),

		Overtime: OvertimeTiers{
			FirstHours: dec(2),
			FirstRate:  dec(150),
			AfterRate:  dec(200),
		},

		Classifications: []Classification{
			{ID: "retail-1", Name: "Retail Employee Level 1", HourlyRate: dec(25.65), WeeklyRate: dec(974.70)},
			{ID: "retail-4", Name: "Retail Employee Level 4", HourlyRate: dec(27.99), WeeklyRate: dec(1063.60)},
		},
		DefaultClassificationID: "retail-1",

		Allowances: []Allowance{
			{ID: AllowanceFirstAid, Name: "First Aid Allowance", Unit: PerWeek, Amount: dec(13.03)},
			{ID: AllowanceBrokenShift, Name: "Broken Shift Allowance", Unit: PerShift, Amount: dec(0)},
			{ID: AllowanceTravel, Name: "Vehicle Allowance", Unit: PerKm, Amount: dec(0.99)},
		},
	}
}

// WithRateStep returns a copy of the classification with a dated rate
// revision appended. Convenient for building presets with annual increases.
func WithRateStep(c Classification, effectiveFrom pay.Date, hourly, weekly float64) Classification {
	c.RateSchedule = append(c.RateSchedule, RateStep{
		EffectiveFrom: effectiveFrom,
		HourlyRate:    dec(hourly),
		WeeklyRate:    dec(weekly),
	})
	return c
}
