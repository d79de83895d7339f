/*
detector.go - Shift condition detection

PURPOSE:
  Decides, for a given shift, whether each allowance-triggering condition
  applies. Explicit markers (the shift's kind tag or its detail payload)
  are the strongest evidence; heuristics fill in when markers are absent.

EVIDENCE ORDER (strongest first):
  1. Broken shift   - tag/detail, or heuristic: break > 60 minutes
  2. On-call        - tag or on-call detail
  3. Sleepover      - tag/detail, or heuristic: wraps midnight and >= 8h
  4. Recall         - recall tag, or on-call detail's WasRecalled
  5. Disturbance    - sleepover detail's WasDisturbed
  6. Higher duties  - higher-duties record with a classification
  7. Travel         - travel kilometres > 0

ORIGIN METADATA:
  Every finding carries its origin (explicit vs inferred) and a confidence
  score. Heuristic findings are hints, not authority - the host application
  decides whether to ask for user confirmation before treating an inferred
  condition as fact.

PURITY:
  Detect never mutates its input. The enriched shift in the result is a
  copy with inferred tags/details filled in where the original had none.
*/
package roster

// =============================================================================
// FINDINGS
// =============================================================================

type Condition string

const (
	ConditionBroken       Condition = "broken_shift"
	ConditionOnCall       Condition = "on_call"
	ConditionSleepover    Condition = "sleepover"
	ConditionRecall       Condition = "recall"
	ConditionDisturbance  Condition = "disturbance"
	ConditionHigherDuties Condition = "higher_duties"
	ConditionTravel       Condition = "travel"
)

type Origin string

const (
	OriginExplicit Origin = "explicit"
	OriginInferred Origin = "inferred"
)

// Finding records that a condition applies, with how we know.
type Finding struct {
	Condition  Condition
	Origin     Origin
	Confidence float64
	Note       string
}

// Detection is the detector's result: the enriched shift plus findings.
type Detection struct {
	Shift    Shift
	Findings []Finding
}

// Has reports whether a condition was detected.
func (d *Detection) Has(c Condition) bool {
	_, ok := d.Find(c)
	return ok
}

// Find returns the finding for a condition.
func (d *Detection) Find(c Condition) (Finding, bool) {
	for _, f := range d.Findings {
		if f.Condition == c {
			return f, true
		}
	}
	return Finding{}, false
}

// Heuristic thresholds.
const (
	brokenBreakThresholdMinutes = 60
	sleepoverMinimumMinutes     = 8 * 60
)

// =============================================================================
// DETECTOR
// =============================================================================

// Detect inspects a shift and returns an enriched copy plus findings.
func Detect(shift Shift) Detection {
	d := Detection{Shift: shift}

	d.detectBroken()
	d.detectOnCall()
	d.detectSleepover()
	d.detectRecall()
	d.detectDisturbance()
	d.detectHigherDuties()
	d.detectTravel()

	return d
}

func (d *Detection) add(f Finding) {
	d.Findings = append(d.Findings, f)
}

func (d *Detection) detectBroken() {
	s := &d.Shift
	if s.Kind == KindBroken {
		d.add(Finding{Condition: ConditionBroken, Origin: OriginExplicit, Confidence: 1.0, Note: "tagged as broken shift"})
		return
	}
	if _, ok := s.Broken(); ok {
		d.add(Finding{Condition: ConditionBroken, Origin: OriginExplicit, Confidence: 1.0, Note: "broken-shift segments supplied"})
		return
	}
	// Heuristic only: an extended unpaid gap suggests a split day.
	if s.Kind == KindRegular && s.BreakMinutes > brokenBreakThresholdMinutes {
		d.add(Finding{Condition: ConditionBroken, Origin: OriginInferred, Confidence: 0.7, Note: "unpaid break exceeds 60 minutes"})
		s.Kind = KindBroken
		if s.Detail == nil {
			s.Detail = BrokenDetail{UnpaidGapMinutes: s.BreakMinutes}
		}
	}
}

func (d *Detection) detectOnCall() {
	s := &d.Shift
	if s.Kind == KindOnCall {
		d.add(Finding{Condition: ConditionOnCall, Origin: OriginExplicit, Confidence: 1.0, Note: "tagged as on-call"})
		return
	}
	if _, ok := s.OnCall(); ok {
		d.add(Finding{Condition: ConditionOnCall, Origin: OriginExplicit, Confidence: 1.0, Note: "on-call window supplied"})
	}
}

func (d *Detection) detectSleepover() {
	s := &d.Shift
	if s.Kind == KindSleepover {
		d.add(Finding{Condition: ConditionSleepover, Origin: OriginExplicit, Confidence: 1.0, Note: "tagged as sleepover"})
		return
	}
	if _, ok := s.Sleepover(); ok {
		d.add(Finding{Condition: ConditionSleepover, Origin: OriginExplicit, Confidence: 1.0, Note: "sleepover bedtime supplied"})
		return
	}
	if s.Kind == KindRegular && s.WrapsMidnight() && s.GrossMinutes() >= sleepoverMinimumMinutes {
		d.add(Finding{Condition: ConditionSleepover, Origin: OriginInferred, Confidence: 0.8, Note: "overnight shift of 8+ hours"})
		s.Kind = KindSleepover
		if s.Detail == nil {
			// Bedtime window unknown for inferred sleepovers; left zero so
			// the host can prompt for it.
			s.Detail = SleepoverDetail{}
		}
	}
}

func (d *Detection) detectRecall() {
	s := &d.Shift
	if s.Kind == KindRecall {
		d.add(Finding{Condition: ConditionRecall, Origin: OriginExplicit, Confidence: 1.0, Note: "tagged as recall"})
		return
	}
	if oc, ok := s.OnCall(); ok && oc.WasRecalled {
		d.add(Finding{Condition: ConditionRecall, Origin: OriginExplicit, Confidence: 1.0, Note: "recalled during on-call"})
	}
}

func (d *Detection) detectDisturbance() {
	if so, ok := d.Shift.Sleepover(); ok && so.WasDisturbed {
		d.add(Finding{Condition: ConditionDisturbance, Origin: OriginExplicit, Confidence: 1.0, Note: "disturbed during sleepover"})
	}
}

func (d *Detection) detectHigherDuties() {
	hd := d.Shift.HigherDuties
	if hd != nil && hd.ClassificationID != "" {
		d.add(Finding{Condition: ConditionHigherDuties, Origin: OriginExplicit, Confidence: 1.0, Note: "higher duties at " + hd.ClassificationID})
	}
}

func (d *Detection) detectTravel() {
	if d.Shift.TravelKm.IsPositive() {
		d.add(Finding{Condition: ConditionTravel, Origin: OriginExplicit, Confidence: 1.0, Note: "travel kilometres recorded"})
	}
}
