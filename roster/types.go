/*
Package roster defines the shift and staff records the engine consumes,
and the shift condition detector that classifies shifts into
allowance-triggering categories.

PURPOSE:
  Shifts arrive from external scheduling systems. Before costing, each
  shift is inspected for special conditions (on-call, sleepover, broken
  shift, recall, disturbance, higher duties, travel) from explicit markers
  or inferred heuristics, and validated for anomalies.

KEY CONCEPTS IN THIS FILE (types.go):
  - Shift: A tagged union - Kind names the shift type, Detail carries only
    the payload for that kind. A regular shift has no detail. This removes
    the "tag says X but detail record is for Y" inconsistency class.
  - HigherDuties/TravelKm: Cross-cutting extras that may coexist with any
    kind (a regular shift can still claim travel).
  - StaffMember: Employment type, rate override, qualifications, role,
    contracted maximum weekly hours.

DESIGN PRINCIPLES:
  1. Read-only inputs: This package never mutates records it is given;
     the detector returns enriched copies
  2. Purity: Detection and validation are pure functions over their inputs

SEE ALSO:
  - detector.go: Condition detection with explicit/inferred origin
  - validate.go: The shift validation report
*/
package roster

import (
	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/pay"
)

// =============================================================================
// SHIFT KIND - The union tag
// =============================================================================

type ShiftKind string

const (
	KindRegular   ShiftKind = "regular"
	KindOnCall    ShiftKind = "on_call"
	KindSleepover ShiftKind = "sleepover"
	KindBroken    ShiftKind = "broken"
	KindRecall    ShiftKind = "recall"
	KindEmergency ShiftKind = "emergency"
)

// ShiftDetail is the kind-specific payload. Exactly one concrete type per
// kind that carries data; regular and emergency shifts have none.
type ShiftDetail interface {
	DetailKind() ShiftKind
}

// OnCallDetail carries the availability window and any recall that occurred.
type OnCallDetail struct {
	Window        pay.Window
	WasRecalled   bool
	RecallMinutes int
}

func (OnCallDetail) DetailKind() ShiftKind { return KindOnCall }

// SleepoverDetail carries the bedtime window and any disturbance.
type SleepoverDetail struct {
	Bedtime            pay.Window
	WasDisturbed       bool
	DisturbanceMinutes int
}

func (SleepoverDetail) DetailKind() ShiftKind { return KindSleepover }

// BrokenDetail carries the two working segments and the unpaid gap.
type BrokenDetail struct {
	First            pay.Window
	Second           pay.Window
	UnpaidGapMinutes int
}

func (BrokenDetail) DetailKind() ShiftKind { return KindBroken }

// =============================================================================
// SHIFT
// =============================================================================

// Shift is one rostered engagement. End numerically before Start means the
// shift crosses midnight. Created by external scheduling collaborators;
// read-only to this engine.
type Shift struct {
	ID      string
	StaffID string

	Date         pay.Date
	Start        pay.TimeOfDay
	End          pay.TimeOfDay
	BreakMinutes int

	Kind   ShiftKind
	Detail ShiftDetail

	// Cross-cutting extras, valid alongside any kind.
	HigherDuties *HigherDutiesDetail
	TravelKm     decimal.Decimal
}

// HigherDutiesDetail records work performed above the normal classification.
// Hours zero means the whole shift.
type HigherDutiesDetail struct {
	ClassificationID string
	Hours            decimal.Decimal
}

// GrossMinutes returns the rostered duration including breaks, accounting
// for midnight wrap.
func (s *Shift) GrossMinutes() int {
	return pay.ShiftMinutes(s.Start, s.End)
}

// NetMinutes returns the paid duration: gross minus breaks. May be
// non-positive for malformed shifts; callers clamp and warn.
func (s *Shift) NetMinutes() int {
	return s.GrossMinutes() - s.BreakMinutes
}

// NetHours returns the paid duration in decimal hours.
func (s *Shift) NetHours() decimal.Decimal {
	return pay.MinutesToHours(s.NetMinutes())
}

// WrapsMidnight reports whether the shift crosses midnight.
func (s *Shift) WrapsMidnight() bool {
	return pay.WrapsMidnight(s.Start, s.End)
}

// OnCall returns the on-call payload if this shift carries one.
func (s *Shift) OnCall() (OnCallDetail, bool) {
	d, ok := s.Detail.(OnCallDetail)
	return d, ok
}

// Sleepover returns the sleepover payload if this shift carries one.
func (s *Shift) Sleepover() (SleepoverDetail, bool) {
	d, ok := s.Detail.(SleepoverDetail)
	return d, ok
}

// Broken returns the broken-shift payload if this shift carries one.
func (s *Shift) Broken() (BrokenDetail, bool) {
	d, ok := s.Detail.(BrokenDetail)
	return d, ok
}

// =============================================================================
// STAFF MEMBER
// =============================================================================

type Employment string

const (
	Casual   Employment = "casual"
	PartTime Employment = "part_time"
	FullTime Employment = "full_time"
)

type QualificationType string

const (
	QualFirstAid QualificationType = "first_aid"
	QualDiploma  QualificationType = "diploma"
	QualCertIII  QualificationType = "cert_iii"
)

type Qualification struct {
	Type    QualificationType
	Expired bool
}

// Roles the calculator recognizes for role-gated allowances.
const (
	RoleEducationalLeader = "educational_leader"
	RoleTeamLeader        = "team_leader"
)

// StaffMember is owned by external HR systems; read-only input here.
type StaffMember struct {
	ID         string
	Name       string
	Employment Employment

	// HourlyRateOverride replaces the award classification rate when positive.
	HourlyRateOverride decimal.Decimal

	Qualifications []Qualification
	Role           string

	ContractedMaxHoursPerWeek decimal.Decimal
}

// IsCasual reports whether casual loading applies.
func (m *StaffMember) IsCasual() bool { return m.Employment == Casual }

// HasCurrentQualification reports an unexpired qualification of the type.
func (m *StaffMember) HasCurrentQualification(t QualificationType) bool {
	for _, q := range m.Qualifications {
		if q.Type == t && !q.Expired {
			return true
		}
	}
	return false
}
