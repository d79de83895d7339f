/*
Package factory provides JSON to Go award-definition conversion.

PURPOSE:
  Converts JSON award definitions into award.Definition values. This
  enables award configuration without code changes - payroll admins can
  maintain award JSON, and the factory builds the proper Go structs.

JSON SCHEMA:
  {
    "id": "social-care",
    "name": "Social & Community Services Award",
    "casual_loading": 25,
    "penalties": {
      "saturday": 150, "sunday": 200, "public_holiday": 250,
      "evening": 112.5, "night": 115
    },
    "overtime": {"first_hours": 2, "first_rate": 150, "after_rate": 200},
    "default_classification": "level-3.1",
    "classifications": [
      {
        "id": "level-3.1", "name": "Level 3.1",
        "hourly_rate": 30.95, "weekly_rate": 1176.10,
        "rate_schedule": [
          {"effective_from": "2025-07-01", "hourly_rate": 31.88, "weekly_rate": 1211.40}
        ]
      }
    ],
    "allowances": [
      {"id": "sleepover", "name": "Sleepover Allowance", "unit": "per_shift", "amount": 52.26}
    ]
  }

VALIDATION:
  Structural validation uses struct tags (go-playground/validator); the
  factory additionally checks that default_classification names a real
  classification and that rate schedules parse.

SEE ALSO:
  - award/types.go: Definition type
  - store/sqlite: Persists definitions in this JSON shape
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/award"
	"github.com/warp/award-engine/pay"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

type AwardJSON struct {
	ID            string  `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	CasualLoading float64 `json:"casual_loading" validate:"gte=0,lte=100"`

	Penalties PenaltiesJSON `json:"penalties"`
	Overtime  OvertimeJSON  `json:"overtime"`

	DefaultClassification string               `json:"default_classification" validate:"required"`
	Classifications       []ClassificationJSON `json:"classifications" validate:"required,min=1,dive"`
	Allowances            []AllowanceJSON      `json:"allowances" validate:"dive"`
}

type PenaltiesJSON struct {
	Saturday      float64 `json:"saturday" validate:"gte=100"`
	Sunday        float64 `json:"sunday" validate:"gte=100"`
	PublicHoliday float64 `json:"public_holiday" validate:"gte=100"`
	Evening       float64 `json:"evening,omitempty" validate:"omitempty,gte=100"`
	Night         float64 `json:"night,omitempty" validate:"omitempty,gte=100"`
}

type OvertimeJSON struct {
	FirstHours float64 `json:"first_hours" validate:"gt=0"`
	FirstRate  float64 `json:"first_rate" validate:"gte=100"`
	AfterRate  float64 `json:"after_rate" validate:"gte=100"`
}

type ClassificationJSON struct {
	ID           string         `json:"id" validate:"required"`
	Name         string         `json:"name" validate:"required"`
	HourlyRate   float64        `json:"hourly_rate" validate:"gt=0"`
	WeeklyRate   float64        `json:"weekly_rate,omitempty" validate:"gte=0"`
	RateSchedule []RateStepJSON `json:"rate_schedule,omitempty" validate:"dive"`
}

type RateStepJSON struct {
	EffectiveFrom string  `json:"effective_from" validate:"required"`
	HourlyRate    float64 `json:"hourly_rate" validate:"gt=0"`
	WeeklyRate    float64 `json:"weekly_rate,omitempty" validate:"gte=0"`
}

type AllowanceJSON struct {
	ID     string  `json:"id" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Unit   string  `json:"unit" validate:"required,oneof=per_hour per_shift per_week per_km per_day one_off per_occasion"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

// =============================================================================
// AWARD FACTORY
// =============================================================================

type AwardFactory struct {
	validate *validator.Validate
}

func NewAwardFactory() *AwardFactory {
	return &AwardFactory{validate: validator.New()}
}

// ParseAward parses and validates a JSON document into a Definition.
func (f *AwardFactory) ParseAward(jsonStr string) (*award.Definition, error) {
	var aj AwardJSON
	if err := json.Unmarshal([]byte(jsonStr), &aj); err != nil {
		return nil, fmt.Errorf("failed to parse award JSON: %w", err)
	}
	return f.FromJSON(aj)
}

// FromJSON converts AwardJSON to an award.Definition.
func (f *AwardFactory) FromJSON(aj AwardJSON) (*award.Definition, error) {
	if err := f.validate.Struct(aj); err != nil {
		return nil, fmt.Errorf("invalid award %q: %w", aj.ID, err)
	}

	def := &award.Definition{
		ID:            aj.ID,
		Name:          aj.Name,
		CasualLoading: decimal.NewFromFloat(aj.CasualLoading),

		SaturdayPenalty:      decimal.NewFromFloat(aj.Penalties.Saturday),
		SundayPenalty:        decimal.NewFromFloat(aj.Penalties.Sunday),
		PublicHolidayPenalty: decimal.NewFromFloat(aj.Penalties.PublicHoliday),
		EveningPenalty:       decimal.NewFromFloat(aj.Penalties.Evening),
		NightPenalty:         decimal.NewFromFloat(aj.Penalties.Night),

		Overtime: award.OvertimeTiers{
			FirstHours: decimal.NewFromFloat(aj.Overtime.FirstHours),
			FirstRate:  decimal.NewFromFloat(aj.Overtime.FirstRate),
			AfterRate:  decimal.NewFromFloat(aj.Overtime.AfterRate),
		},

		DefaultClassificationID: aj.DefaultClassification,
	}

	for _, cj := range aj.Classifications {
		cls, err := parseClassification(cj)
		if err != nil {
			return nil, err
		}
		def.Classifications = append(def.Classifications, cls)
	}

	if _, ok := def.ClassificationByID(aj.DefaultClassification); !ok {
		return nil, fmt.Errorf("award %q: default_classification %q not among classifications",
			aj.ID, aj.DefaultClassification)
	}

	for _, alj := range aj.Allowances {
		def.Allowances = append(def.Allowances, award.Allowance{
			ID:     alj.ID,
			Name:   alj.Name,
			Unit:   award.AllowanceUnit(alj.Unit),
			Amount: decimal.NewFromFloat(alj.Amount),
		})
	}

	return def, nil
}

func parseClassification(cj ClassificationJSON) (award.Classification, error) {
	cls := award.Classification{
		ID:         cj.ID,
		Name:       cj.Name,
		HourlyRate: decimal.NewFromFloat(cj.HourlyRate),
		WeeklyRate: decimal.NewFromFloat(cj.WeeklyRate),
	}

	for _, sj := range cj.RateSchedule {
		from, err := pay.ParseDate(sj.EffectiveFrom)
		if err != nil {
			return cls, fmt.Errorf("classification %q: %w", cj.ID, err)
		}
		cls.RateSchedule = append(cls.RateSchedule, award.RateStep{
			EffectiveFrom: from,
			HourlyRate:    decimal.NewFromFloat(sj.HourlyRate),
			WeeklyRate:    decimal.NewFromFloat(sj.WeeklyRate),
		})
	}
	cls.SortSchedule()

	return cls, nil
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// ToJSON converts a Definition back to its JSON schema form.
func (f *AwardFactory) ToJSON(def *award.Definition) AwardJSON {
	aj := AwardJSON{
		ID:            def.ID,
		Name:          def.Name,
		CasualLoading: mustFloat(def.CasualLoading),
		Penalties: PenaltiesJSON{
			Saturday:      mustFloat(def.SaturdayPenalty),
			Sunday:        mustFloat(def.SundayPenalty),
			PublicHoliday: mustFloat(def.PublicHolidayPenalty),
			Evening:       mustFloat(def.EveningPenalty),
			Night:         mustFloat(def.NightPenalty),
		},
		Overtime: OvertimeJSON{
			FirstHours: mustFloat(def.Overtime.FirstHours),
			FirstRate:  mustFloat(def.Overtime.FirstRate),
			AfterRate:  mustFloat(def.Overtime.AfterRate),
		},
		DefaultClassification: def.DefaultClassificationID,
	}

	for _, cls := range def.Classifications {
		cj := ClassificationJSON{
			ID:         cls.ID,
			Name:       cls.Name,
			HourlyRate: mustFloat(cls.HourlyRate),
			WeeklyRate: mustFloat(cls.WeeklyRate),
		}
		for _, step := range cls.RateSchedule {
			cj.RateSchedule = append(cj.RateSchedule, RateStepJSON{
				EffectiveFrom: step.EffectiveFrom.String(),
				HourlyRate:    mustFloat(step.HourlyRate),
				WeeklyRate:    mustFloat(step.WeeklyRate),
			})
		}
		aj.Classifications = append(aj.Classifications, cj)
	}

	for _, al := range def.Allowances {
		aj.Allowances = append(aj.Allowances, AllowanceJSON{
			ID:     al.ID,
			Name:   al.Name,
			Unit:   string(al.Unit),
			Amount: mustFloat(al.Amount),
		})
	}

	return aj
}

func mustFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
