/*
Package award defines the static pay-award reference data.

PURPOSE:
  An award is a jurisdiction-specific, codified set of minimum pay rules:
  classification pay grades, penalty percentages for disfavored working
  times, overtime tiers, and allowance tables. The calculation engine reads
  this data; it never writes it.

KEY CONCEPTS:
  - Definition: One complete award (penalties, overtime, classifications,
    allowances, explicit default classification)
  - Classification: A pay grade with a base rate and an optional dated
    RateSchedule
  - Allowance: A named payment with a unit (per-hour, per-shift, per-km, ...)
  - Catalog: An immutable, explicitly-passed set of award definitions

DESIGN PRINCIPLES:
  1. Immutability: Definitions are built once and shared read-only; the
     same catalog may be used by any number of concurrent calculations
  2. Explicit defaults: Each award names its DefaultClassificationID -
     there is no positional fallback
  3. Percentages as whole numbers: SundayPenalty 200 means 200% of the
     effective rate; CasualLoading 25 means +25% on top of base

SEE ALSO:
  - rates.go: Rate-schedule resolution and effective-rate calculation
  - catalog.go: Catalog lookup
  - presets.go: Ready-to-use award definitions
*/
package award

import (
	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/pay"
)

// =============================================================================
// AWARD DEFINITION
// =============================================================================

// Definition is one complete award. Immutable reference data.
type Definition struct {
	ID   string
	Name string

	// CasualLoading is the percentage uplift for casual employees (25 = +25%).
	CasualLoading decimal.Decimal

	// Penalty percentages of the effective rate (200 = 200%).
	SaturdayPenalty      decimal.Decimal
	SundayPenalty        decimal.Decimal
	PublicHolidayPenalty decimal.Decimal
	EveningPenalty       decimal.Decimal
	NightPenalty         decimal.Decimal

	Overtime OvertimeTiers

	Classifications []Classification

	// DefaultClassificationID names the classification used when the caller
	// supplies no override. Required; lookups fail loudly when absent.
	DefaultClassificationID string

	Allowances []Allowance
}

// OvertimeTiers describes the two-tier overtime structure: the first
// FirstHours of overtime pay at FirstRate, the remainder at AfterRate.
type OvertimeTiers struct {
	FirstHours decimal.Decimal // typically 2
	FirstRate  decimal.Decimal // percentage, typically 150
	AfterRate  decimal.Decimal // percentage, typically 200
}

// =============================================================================
// CLASSIFICATION - A pay grade within an award
// =============================================================================

type Classification struct {
	ID   string
	Name string

	// Base rates, used when no RateSchedule step applies.
	HourlyRate decimal.Decimal
	WeeklyRate decimal.Decimal

	// RateSchedule holds dated rate revisions, ordered by EffectiveFrom
	// ascending. The step with the latest EffectiveFrom on or before the
	// target date wins; with no qualifying step the base rates apply.
	RateSchedule []RateStep
}

// RateStep is one dated revision within a classification's rate schedule.
type RateStep struct {
	EffectiveFrom pay.Date
	HourlyRate    decimal.Decimal
	WeeklyRate    decimal.Decimal
}

// =============================================================================
// ALLOWANCE - A named payment with a unit
// =============================================================================

type AllowanceUnit string

const (
	PerHour     AllowanceUnit = "per_hour"
	PerShift    AllowanceUnit = "per_shift"
	PerWeek     AllowanceUnit = "per_week"
	PerKm       AllowanceUnit = "per_km"
	PerDay      AllowanceUnit = "per_day"
	OneOff      AllowanceUnit = "one_off"
	PerOccasion AllowanceUnit = "per_occasion"
)

type Allowance struct {
	ID     string
	Name   string
	Unit   AllowanceUnit
	Amount decimal.Decimal
}

// AllowanceByID returns the allowance definition with the given id.
func (d *Definition) AllowanceByID(id string) (Allowance, bool) {
	for _, a := range d.Allowances {
		if a.ID == id {
			return a, true
		}
	}
	return Allowance{}, false
}

// ClassificationByID returns the classification with the given id.
func (d *Definition) ClassificationByID(id string) (*Classification, bool) {
	for i := range d.Classifications {
		if d.Classifications[i].ID == id {
			return &d.Classifications[i], true
		}
	}
	return nil, false
}

// DefaultClassification resolves the award's named default classification.
func (d *Definition) DefaultClassification() (*Classification, error) {
	if d.DefaultClassificationID == "" {
		return nil, pay.ErrNoDefaultClassification
	}
	c, ok := d.ClassificationByID(d.DefaultClassificationID)
	if !ok {
		return nil, &pay.ClassificationNotFoundError{
			AwardID:          d.ID,
			ClassificationID: d.DefaultClassificationID,
		}
	}
	return c, nil
}
