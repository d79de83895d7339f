package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/award-engine/pay"
	"github.com/warp/award-engine/roster"
)

func issueCodes(issues []roster.Issue) []string {
	var codes []string
	for _, i := range issues {
		codes = append(codes, i.Code)
	}
	return codes
}

// =============================================================================
// ERROR CONDITIONS
// =============================================================================

func TestValidate_BreakSwallowsShift(t *testing.T) {
	// GIVEN: A 4 hour shift with a 5 hour break
	// WHEN: Validating
	// THEN: Error-level issue; costing will clamp paid time to zero

	s := dayShift()
	s.Start = pay.ClockTime(9, 0)
	s.End = pay.ClockTime(13, 0)
	s.BreakMinutes = 300

	r := roster.Validate(s)

	require.True(t, r.HasErrors())
	assert.Contains(t, issueCodes(r.Errors()), "net_duration_non_positive")
}

// =============================================================================
// WARNING CONDITIONS - each independent
// =============================================================================

func TestValidate_OvernightNotFlaggedAsSleepover(t *testing.T) {
	r := roster.Validate(overnightShift())
	assert.Contains(t, issueCodes(r.Warnings()), "overnight_not_sleepover")
}

func TestValidate_FlaggedSleepoverDoesNotWarn(t *testing.T) {
	s := overnightShift()
	s.Kind = roster.KindSleepover
	s.Detail = roster.SleepoverDetail{}

	r := roster.Validate(s)
	assert.NotContains(t, issueCodes(r.Warnings()), "overnight_not_sleepover")
}

func TestValidate_LongBreakNotFlaggedAsBroken(t *testing.T) {
	s := dayShift()
	s.BreakMinutes = 75

	r := roster.Validate(s)
	assert.Contains(t, issueCodes(r.Warnings()), "long_break_not_broken")
}

func TestValidate_OnCallMissingDetail(t *testing.T) {
	s := dayShift()
	s.Kind = roster.KindOnCall

	r := roster.Validate(s)
	assert.Contains(t, issueCodes(r.Warnings()), "on_call_missing_detail")
}

func TestValidate_RecallWithoutOnCallContext(t *testing.T) {
	s := dayShift()
	s.Kind = roster.KindRecall

	r := roster.Validate(s)
	assert.Contains(t, issueCodes(r.Warnings()), "recall_without_on_call")
}

func TestValidate_DisturbanceWithoutMinutes(t *testing.T) {
	s := overnightShift()
	s.Kind = roster.KindSleepover
	s.Detail = roster.SleepoverDetail{WasDisturbed: true}

	r := roster.Validate(s)
	assert.Contains(t, issueCodes(r.Warnings()), "disturbance_missing_minutes")
}

func TestValidate_EngagementTooLong(t *testing.T) {
	// 07:00-18:30 with no break is 11.5 net hours.
	s := dayShift()
	s.Start = pay.ClockTime(7, 0)
	s.End = pay.ClockTime(18, 30)

	r := roster.Validate(s)
	assert.Contains(t, issueCodes(r.Warnings()), "engagement_too_long")
}

func TestValidate_EngagementTooShort(t *testing.T) {
	s := dayShift()
	s.Start = pay.ClockTime(9, 0)
	s.End = pay.ClockTime(11, 0)

	r := roster.Validate(s)
	assert.Contains(t, issueCodes(r.Warnings()), "engagement_too_short")
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

func TestValidate_InferredFindingsBecomeSuggestions(t *testing.T) {
	s := dayShift()
	s.BreakMinutes = 90

	r := roster.Validate(s)

	codes := issueCodes(r.Suggestions())
	assert.Contains(t, codes, "confirm_broken_shift")
}

func TestValidate_CleanShiftIsQuiet(t *testing.T) {
	r := roster.Validate(dayShift())
	assert.Empty(t, r.Issues)
	assert.False(t, r.HasErrors())
}
