/*
validate.go - Shift validation report

PURPOSE:
  Produces a structured report of anomalies in a shift record. Nothing
  here throws: errors mark data that cannot be costed faithfully (costing
  proceeds with clamped values so batches are never aborted), warnings
  annotate suspicious but workable data, suggestions are non-blocking
  hints for the rostering host.

SEVERITIES:
  Error:      net duration <= 0 (break exceeds gross duration)
  Warning:    unflagged overnight/long-break shifts, missing on-call or
              recall context, disturbance without minutes, engagement
              length outside 3h-10h bounds
  Suggestion: confirmations for heuristic findings
*/
package roster

import "fmt"

// =============================================================================
// REPORT
// =============================================================================

type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// Issue is one validation finding. Code is stable for programmatic checks;
// Message is for humans.
type Issue struct {
	Severity Severity
	Code     string
	Message  string
}

type Report struct {
	ShiftID string
	Issues  []Issue
}

func (r *Report) add(severity Severity, code, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Severity: severity,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any error-level issue was found.
func (r *Report) HasErrors() bool { return r.count(SeverityError) > 0 }

// Errors returns only error-level issues.
func (r *Report) Errors() []Issue { return r.filter(SeverityError) }

// Warnings returns only warning-level issues.
func (r *Report) Warnings() []Issue { return r.filter(SeverityWarning) }

// Suggestions returns only suggestion-level issues.
func (r *Report) Suggestions() []Issue { return r.filter(SeveritySuggestion) }

func (r *Report) filter(s Severity) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}

func (r *Report) count(s Severity) int { return len(r.filter(s)) }

// Engagement-length bounds outside which a shift is flagged.
const (
	longShiftMinutes  = 10 * 60
	shortShiftMinutes = 3 * 60
)

// =============================================================================
// VALIDATION
// =============================================================================

// Validate inspects a shift and returns a report. Pure; the shift is not
// modified. Each condition below is independent so hosts can test and
// surface them separately.
func Validate(shift Shift) Report {
	r := Report{ShiftID: shift.ID}

	gross := shift.GrossMinutes()
	net := shift.NetMinutes()

	if net <= 0 {
		r.add(SeverityError, "net_duration_non_positive",
			"break (%d min) leaves no paid time in a %d minute shift", shift.BreakMinutes, gross)
	}

	if shift.WrapsMidnight() && gross >= sleepoverMinimumMinutes && shift.Kind != KindSleepover {
		r.add(SeverityWarning, "overnight_not_sleepover",
			"shift %s-%s crosses midnight but is not flagged as a sleepover", shift.Start, shift.End)
	}

	if shift.BreakMinutes > brokenBreakThresholdMinutes && shift.Kind != KindBroken {
		r.add(SeverityWarning, "long_break_not_broken",
			"unpaid break of %d minutes but shift is not flagged as broken", shift.BreakMinutes)
	}

	if shift.Kind == KindOnCall {
		if _, ok := shift.OnCall(); !ok {
			r.add(SeverityWarning, "on_call_missing_detail",
				"on-call shift has no availability window recorded")
		}
	}

	if shift.Kind == KindRecall {
		if _, ok := shift.OnCall(); !ok {
			r.add(SeverityWarning, "recall_without_on_call",
				"recall shift has no on-call context recorded")
		}
	}

	if so, ok := shift.Sleepover(); ok && so.WasDisturbed && so.DisturbanceMinutes <= 0 {
		r.add(SeverityWarning, "disturbance_missing_minutes",
			"sleepover flagged as disturbed but no disturbance duration recorded")
	}

	if net > longShiftMinutes {
		r.add(SeverityWarning, "engagement_too_long",
			"net duration %.1f hours exceeds 10 hours", float64(net)/60)
	}

	if net > 0 && net < shortShiftMinutes {
		r.add(SeverityWarning, "engagement_too_short",
			"net duration %.1f hours is under the 3 hour minimum engagement", float64(net)/60)
	}

	for _, f := range Detect(shift).Findings {
		if f.Origin == OriginInferred {
			r.add(SeveritySuggestion, "confirm_"+string(f.Condition),
				"%s was inferred (%s); confirm or tag explicitly", f.Condition, f.Note)
		}
	}

	return r
}
