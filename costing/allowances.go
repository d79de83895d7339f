/*
allowances.go - Allowance eligibility and amounts

PURPOSE:
  Evaluates each allowance independently against the detector's findings,
  the staff record, and the award's allowance table. Every applied
  allowance carries a rationale string so hosts can show why it was paid.

FALLBACKS:
  A detected condition whose allowance is missing from the award falls
  back to a documented default amount (and says so in the rationale), so
  incomplete award configuration degrades rather than silently dropping
  entitlements.

MINIMUM PAYMENTS:
  Recall during on-call pays a minimum of 2 hours at 1.5x the effective
  rate; sleepover disturbance pays a minimum of 1 hour at 1.5x.
*/
package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/award"
	"github.com/warp/award-engine/pay"
	"github.com/warp/award-engine/roster"
)

var (
	penaltyHalf    = decimal.NewFromFloat(1.5)
	fiveDays       = decimal.NewFromInt(5)
	recallMinHours = decimal.NewFromInt(2)
	disturbMinHour = decimal.NewFromInt(1)
)

// Documented default amounts used when the award defines no matching
// allowance for a detected condition.
var fallbackAllowances = map[string]award.Allowance{
	award.AllowanceFirstAid:          {ID: award.AllowanceFirstAid, Name: "First Aid Allowance", Unit: award.PerWeek, Amount: decimal.NewFromFloat(15.00)},
	award.AllowanceEducationalLeader: {ID: award.AllowanceEducationalLeader, Name: "Educational Leader Allowance", Unit: award.PerHour, Amount: decimal.NewFromFloat(2.00)},
	award.AllowanceOnCall:            {ID: award.AllowanceOnCall, Name: "On-Call Allowance", Unit: award.PerDay, Amount: decimal.NewFromFloat(25.00)},
	award.AllowanceSleepover:         {ID: award.AllowanceSleepover, Name: "Sleepover Allowance", Unit: award.PerShift, Amount: decimal.NewFromFloat(50.00)},
	award.AllowanceBrokenShift:       {ID: award.AllowanceBrokenShift, Name: "Broken Shift Allowance", Unit: award.PerShift, Amount: decimal.NewFromFloat(18.00)},
	award.AllowanceHigherDuties:      {ID: award.AllowanceHigherDuties, Name: "Higher Duties Allowance", Unit: award.PerHour, Amount: decimal.NewFromFloat(1.50)},
	award.AllowanceTravel:            {ID: award.AllowanceTravel, Name: "Vehicle Allowance", Unit: award.PerKm, Amount: decimal.NewFromFloat(0.95)},
}

// lookupAllowance resolves an allowance from the award, falling back to
// the documented defaults. The second return reports whether the award
// itself defined it.
func lookupAllowance(def *award.Definition, id string) (award.Allowance, bool) {
	if a, ok := def.AllowanceByID(id); ok {
		return a, true
	}
	return fallbackAllowances[id], false
}

// =============================================================================
// EVALUATION
// =============================================================================

// evaluateAllowances returns every allowance the shift is eligible for.
// Each allowance is evaluated independently; order matches the award
// table convention (qualification, role, condition-based, travel).
func evaluateAllowances(d roster.Detection, staff roster.StaffMember, def *award.Definition, rate, netHours decimal.Decimal) []AppliedAllowance {
	var out []AppliedAllowance

	if a := firstAid(staff, def); a != nil {
		out = append(out, *a)
	}
	if a := educationalLeader(staff, def, netHours); a != nil {
		out = append(out, *a)
	}
	if a := onCall(d, def, rate); a != nil {
		out = append(out, *a)
	}
	if a := sleepover(d, def, rate); a != nil {
		out = append(out, *a)
	}
	if a := brokenShift(d, def); a != nil {
		out = append(out, *a)
	}
	if a := higherDuties(d, def, netHours); a != nil {
		out = append(out, *a)
	}
	if a := travel(d, def); a != nil {
		out = append(out, *a)
	}

	return out
}

func firstAid(staff roster.StaffMember, def *award.Definition) *AppliedAllowance {
	if !staff.HasCurrentQualification(roster.QualFirstAid) {
		return nil
	}
	a, defined := lookupAllowance(def, award.AllowanceFirstAid)
	daily := a.Amount.Div(fiveDays)
	return &AppliedAllowance{
		ID:     a.ID,
		Name:   a.Name,
		Amount: pay.RoundCents(daily),
		Rationale: fmt.Sprintf("current first aid qualification: weekly %s spread over 5 days%s",
			a.Amount.StringFixed(2), fallbackNote(defined)),
	}
}

func educationalLeader(staff roster.StaffMember, def *award.Definition, netHours decimal.Decimal) *AppliedAllowance {
	if staff.Role != roster.RoleEducationalLeader && staff.Role != roster.RoleTeamLeader {
		return nil
	}
	a, defined := lookupAllowance(def, award.AllowanceEducationalLeader)
	return &AppliedAllowance{
		ID:     a.ID,
		Name:   a.Name,
		Amount: pay.RoundCents(a.Amount.Mul(netHours)),
		Rationale: fmt.Sprintf("role %s: %s/hour for %s net hours%s",
			staff.Role, a.Amount.StringFixed(2), netHours.StringFixed(2), fallbackNote(defined)),
	}
}

func onCall(d roster.Detection, def *award.Definition, rate decimal.Decimal) *AppliedAllowance {
	if !d.Has(roster.ConditionOnCall) && !d.Has(roster.ConditionRecall) {
		return nil
	}
	a, defined := lookupAllowance(def, award.AllowanceOnCall)
	amount := a.Amount
	rationale := fmt.Sprintf("on-call availability: flat %s/day%s", a.Amount.StringFixed(2), fallbackNote(defined))

	if d.Has(roster.ConditionRecall) {
		recallHours := recallMinHours
		if oc, ok := d.Shift.OnCall(); ok && oc.RecallMinutes > 0 {
			recallHours = decimal.Max(recallMinHours, pay.MinutesToHours(oc.RecallMinutes))
		}
		recallPay := recallHours.Mul(rate).Mul(penaltyHalf)
		amount = amount.Add(recallPay)
		rationale += fmt.Sprintf("; recalled: %s hours (2 hour minimum) at 150%%", recallHours.StringFixed(2))
	}

	return &AppliedAllowance{ID: a.ID, Name: a.Name, Amount: pay.RoundCents(amount), Rationale: rationale}
}

func sleepover(d roster.Detection, def *award.Definition, rate decimal.Decimal) *AppliedAllowance {
	if !d.Has(roster.ConditionSleepover) {
		return nil
	}
	a, defined := lookupAllowance(def, award.AllowanceSleepover)
	amount := a.Amount
	rationale := fmt.Sprintf("sleepover: flat %s/shift%s", a.Amount.StringFixed(2), fallbackNote(defined))

	if d.Has(roster.ConditionDisturbance) {
		disturbedHours := disturbMinHour
		if so, ok := d.Shift.Sleepover(); ok && so.DisturbanceMinutes > 0 {
			disturbedHours = decimal.Max(disturbMinHour, pay.MinutesToHours(so.DisturbanceMinutes))
		}
		disturbPay := disturbedHours.Mul(rate).Mul(penaltyHalf)
		amount = amount.Add(disturbPay)
		rationale += fmt.Sprintf("; disturbed: %s hours (1 hour minimum) at 150%%", disturbedHours.StringFixed(2))
	}

	return &AppliedAllowance{ID: a.ID, Name: a.Name, Amount: pay.RoundCents(amount), Rationale: rationale}
}

func brokenShift(d roster.Detection, def *award.Definition) *AppliedAllowance {
	finding, ok := d.Find(roster.ConditionBroken)
	if !ok {
		return nil
	}
	a, defined := lookupAllowance(def, award.AllowanceBrokenShift)
	return &AppliedAllowance{
		ID:     a.ID,
		Name:   a.Name,
		Amount: pay.RoundCents(a.Amount),
		Rationale: fmt.Sprintf("broken shift (%s): flat %s/shift%s",
			finding.Origin, a.Amount.StringFixed(2), fallbackNote(defined)),
	}
}

func higherDuties(d roster.Detection, def *award.Definition, netHours decimal.Decimal) *AppliedAllowance {
	if !d.Has(roster.ConditionHigherDuties) {
		return nil
	}
	hd := d.Shift.HigherDuties

	hours := netHours // no duration recorded means the whole shift
	if hd.Hours.IsPositive() {
		hours = hd.Hours
	}

	a, defined := lookupAllowance(def, award.AllowanceHigherDuties)
	return &AppliedAllowance{
		ID:     a.ID,
		Name:   a.Name,
		Amount: pay.RoundCents(a.Amount.Mul(hours)),
		Rationale: fmt.Sprintf("higher duties at %s: %s/hour for %s hours%s",
			hd.ClassificationID, a.Amount.StringFixed(2), hours.StringFixed(2), fallbackNote(defined)),
	}
}

func travel(d roster.Detection, def *award.Definition) *AppliedAllowance {
	if !d.Has(roster.ConditionTravel) {
		return nil
	}
	a, defined := lookupAllowance(def, award.AllowanceTravel)
	km := d.Shift.TravelKm
	return &AppliedAllowance{
		ID:     a.ID,
		Name:   a.Name,
		Amount: pay.RoundCents(a.Amount.Mul(km)),
		Rationale: fmt.Sprintf("travel: %s km at %s/km%s",
			km.StringFixed(1), a.Amount.StringFixed(2), fallbackNote(defined)),
	}
}

func fallbackNote(definedInAward bool) string {
	if definedInAward {
		return ""
	}
	return " (award defines no rate; default applied)"
}
