/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the
  internal domain model from the external contract. Requests carry
  validation tags (go-playground/validator); handlers validate before
  converting to domain types.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY:
  Decimals serialize as JSON numbers rounded to cents. The engine keeps
  full precision internally; the wire format is for display.

SEE ALSO:
  - handlers.go: Validation and conversion
  - factory/award.go: AwardJSON, reused verbatim for award upload
*/
package api

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/costing"
	"github.com/warp/award-engine/forecast"
	"github.com/warp/award-engine/pay"
	"github.com/warp/award-engine/roster"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

type ShiftDTO struct {
	ID           string `json:"id"`
	StaffID      string `json:"staff_id" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Start        string `json:"start" validate:"required"`
	End          string `json:"end" validate:"required"`
	BreakMinutes int    `json:"break_minutes" validate:"gte=0"`
	Kind         string `json:"kind,omitempty" validate:"omitempty,oneof=regular on_call sleepover broken recall emergency"`

	OnCall       *OnCallDTO       `json:"on_call,omitempty"`
	Sleepover    *SleepoverDTO    `json:"sleepover,omitempty"`
	Broken       *BrokenDTO       `json:"broken,omitempty"`
	HigherDuties *HigherDutiesDTO `json:"higher_duties,omitempty"`
	TravelKm     float64          `json:"travel_km,omitempty" validate:"gte=0"`
}

type OnCallDTO struct {
	WindowStart   string `json:"window_start,omitempty"`
	WindowEnd     string `json:"window_end,omitempty"`
	WasRecalled   bool   `json:"was_recalled,omitempty"`
	RecallMinutes int    `json:"recall_minutes,omitempty" validate:"gte=0"`
}

type SleepoverDTO struct {
	BedtimeStart       string `json:"bedtime_start,omitempty"`
	BedtimeEnd         string `json:"bedtime_end,omitempty"`
	WasDisturbed       bool   `json:"was_disturbed,omitempty"`
	DisturbanceMinutes int    `json:"disturbance_minutes,omitempty" validate:"gte=0"`
}

type BrokenDTO struct {
	FirstStart       string `json:"first_start,omitempty"`
	FirstEnd         string `json:"first_end,omitempty"`
	SecondStart      string `json:"second_start,omitempty"`
	SecondEnd        string `json:"second_end,omitempty"`
	UnpaidGapMinutes int    `json:"unpaid_gap_minutes,omitempty" validate:"gte=0"`
}

type HigherDutiesDTO struct {
	ClassificationID string  `json:"classification_id" validate:"required"`
	Hours            float64 `json:"hours,omitempty" validate:"gte=0"`
}

type StaffDTO struct {
	ID                 string             `json:"id" validate:"required"`
	Name               string             `json:"name,omitempty"`
	Employment         string             `json:"employment" validate:"required,oneof=casual part_time full_time"`
	HourlyRateOverride float64            `json:"hourly_rate_override,omitempty" validate:"gte=0"`
	Qualifications     []QualificationDTO `json:"qualifications,omitempty"`
	Role               string             `json:"role,omitempty"`
	ContractedMaxHours float64            `json:"contracted_max_hours_per_week,omitempty" validate:"gte=0"`
}

type QualificationDTO struct {
	Type    string `json:"type" validate:"required"`
	Expired bool   `json:"expired,omitempty"`
}

type CostShiftRequest struct {
	Shift            ShiftDTO `json:"shift" validate:"required"`
	Staff            StaffDTO `json:"staff" validate:"required"`
	AwardID          string   `json:"award_id" validate:"required"`
	ClassificationID string   `json:"classification_id,omitempty"`
}

type CostWeekRequest struct {
	Shifts    []ShiftDTO `json:"shifts" validate:"required,min=1,dive"`
	Staff     []StaffDTO `json:"staff" validate:"required,min=1,dive"`
	AwardID   string     `json:"award_id" validate:"required"`
	WeekStart string     `json:"week_start" validate:"required"`
}

type CostRosterRequest struct {
	Shifts  []ShiftDTO `json:"shifts" validate:"required,min=1,dive"`
	Staff   []StaffDTO `json:"staff" validate:"required,min=1,dive"`
	AwardID string     `json:"award_id" validate:"required"`
	From    string     `json:"from" validate:"required"`
	To      string     `json:"to" validate:"required"`
}

type ForecastRequest struct {
	BaselineWeekStart string     `json:"baseline_week_start" validate:"required"`
	Shifts            []ShiftDTO `json:"shifts" validate:"required,dive"`
	Staff             []StaffDTO `json:"staff" validate:"dive"`
	Weeks             int        `json:"weeks" validate:"required,gte=1,lte=52"`
	WeeklyBudget      float64    `json:"weekly_budget" validate:"gte=0"`
}

type HolidayRequest struct {
	Date string `json:"date" validate:"required"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=public school"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

type CategoryDTO struct {
	Hours float64 `json:"hours"`
	Pay   float64 `json:"pay"`
}

type AllowanceDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Rationale string  `json:"rationale"`
}

type BreakdownDTO struct {
	ID               string `json:"id"`
	ShiftID          string `json:"shift_id"`
	StaffID          string `json:"staff_id"`
	AwardID          string `json:"award_id"`
	ClassificationID string `json:"classification_id"`
	Date             string `json:"date"`
	DayType          string `json:"day_type"`

	GrossMinutes int `json:"gross_minutes"`
	NetMinutes   int `json:"net_minutes"`

	EffectiveHourlyRate float64 `json:"effective_hourly_rate"`

	Ordinary      CategoryDTO `json:"ordinary"`
	Evening       CategoryDTO `json:"evening"`
	Saturday      CategoryDTO `json:"saturday"`
	Sunday        CategoryDTO `json:"sunday"`
	PublicHoliday CategoryDTO `json:"public_holiday"`
	Overtime      CategoryDTO `json:"overtime"`
	NightHours    float64     `json:"night_hours"`

	Allowances []AllowanceDTO `json:"allowances"`

	GrossPay       float64 `json:"gross_pay"`
	Superannuation float64 `json:"superannuation"`
	TotalCost      float64 `json:"total_cost"`

	IsPublicHoliday bool `json:"is_public_holiday"`
	IsSchoolHoliday bool `json:"is_school_holiday"`
	IsCasual        bool `json:"is_casual"`
	HasOvertime     bool `json:"has_overtime"`

	Warnings []string `json:"warnings"`
}

type WeekSummaryDTO struct {
	StaffID   string `json:"staff_id"`
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`

	Ordinary      CategoryDTO `json:"ordinary"`
	Evening       CategoryDTO `json:"evening"`
	Saturday      CategoryDTO `json:"saturday"`
	Sunday        CategoryDTO `json:"sunday"`
	PublicHoliday CategoryDTO `json:"public_holiday"`
	Overtime      CategoryDTO `json:"overtime"`

	TotalHours     float64 `json:"total_hours"`
	AllowanceTotal float64 `json:"allowance_total"`
	GrossPay       float64 `json:"gross_pay"`
	Superannuation float64 `json:"superannuation"`
	TotalCost      float64 `json:"total_cost"`

	ShiftCount             int      `json:"shift_count"`
	ExceedsContractedHours bool     `json:"exceeds_contracted_hours"`
	Warnings               []string `json:"warnings,omitempty"`
}

type DayTypeTotalsDTO struct {
	Hours      float64 `json:"hours"`
	GrossPay   float64 `json:"gross_pay"`
	TotalCost  float64 `json:"total_cost"`
	ShiftCount int     `json:"shift_count"`
}

type RosterAggregateDTO struct {
	From string `json:"from"`
	To   string `json:"to"`

	ByDayType map[string]DayTypeTotalsDTO `json:"by_day_type"`

	TotalHours     float64 `json:"total_hours"`
	GrossPay       float64 `json:"gross_pay"`
	AllowanceTotal float64 `json:"allowance_total"`
	Superannuation float64 `json:"superannuation"`
	TotalCost      float64 `json:"total_cost"`

	ShiftCount int `json:"shift_count"`
	StaffCount int `json:"staff_count"`
}

type DayForecastDTO struct {
	Date            string  `json:"date"`
	BaselineDate    string  `json:"baseline_date"`
	IsPublicHoliday bool    `json:"is_public_holiday"`
	IsSchoolHoliday bool    `json:"is_school_holiday"`
	BaselineHours   float64 `json:"baseline_hours"`
	ProjectedHours  float64 `json:"projected_hours"`
	ProjectedShifts int     `json:"projected_shifts"`
	ProjectedCost   float64 `json:"projected_cost"`
	Confidence      float64 `json:"confidence"`
}

type WeekForecastDTO struct {
	WeekNumber     int              `json:"week_number"`
	WeekStart      string           `json:"week_start"`
	WeekEnd        string           `json:"week_end"`
	Days           []DayForecastDTO `json:"days"`
	ProjectedHours float64          `json:"projected_hours"`
	ProjectedCost  float64          `json:"projected_cost"`
	Budget         float64          `json:"budget"`
	BudgetVariance float64          `json:"budget_variance"`
	OverBudget     bool             `json:"over_budget"`
	VsPreviousWeek float64          `json:"vs_previous_week"`
}

type RiskFactorDTO struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Severity    string  `json:"severity"`
	Impact      float64 `json:"impact"`
}

type ForecastSummaryDTO struct {
	GeneratedFor       string            `json:"generated_for"`
	WeekCount          int               `json:"week_count"`
	Weeks              []WeekForecastDTO `json:"weeks"`
	TotalProjectedCost float64           `json:"total_projected_cost"`
	TotalBudget        float64           `json:"total_budget"`
	AverageHourlyRate  float64           `json:"average_hourly_rate"`
	RiskFactors        []RiskFactorDTO   `json:"risk_factors"`
	Recommendations    []string          `json:"recommendations"`
}

type HolidayDTO struct {
	ID   string `json:"id,omitempty"`
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// =============================================================================
// DTO -> DOMAIN CONVERSION
// =============================================================================

func (dto ShiftDTO) toDomain() (roster.Shift, error) {
	date, err := pay.ParseDate(dto.Date)
	if err != nil {
		return roster.Shift{}, err
	}
	start, err := pay.ParseClock(dto.Start)
	if err != nil {
		return roster.Shift{}, err
	}
	end, err := pay.ParseClock(dto.End)
	if err != nil {
		return roster.Shift{}, err
	}

	kind := roster.ShiftKind(dto.Kind)
	if dto.Kind == "" {
		kind = roster.KindRegular
	}

	s := roster.Shift{
		ID:           dto.ID,
		StaffID:      dto.StaffID,
		Date:         date,
		Start:        start,
		End:          end,
		BreakMinutes: dto.BreakMinutes,
		Kind:         kind,
		TravelKm:     decimal.NewFromFloat(dto.TravelKm),
	}

	if err := dto.attachDetail(&s); err != nil {
		return roster.Shift{}, err
	}

	if dto.HigherDuties != nil {
		s.HigherDuties = &roster.HigherDutiesDetail{
			ClassificationID: dto.HigherDuties.ClassificationID,
			Hours:            decimal.NewFromFloat(dto.HigherDuties.Hours),
		}
	}

	return s, nil
}

// attachDetail converts at most one kind-specific payload. Supplying a
// payload that contradicts the kind tag is a client error - the tagged
// union exists to make that state unrepresentable internally.
func (dto ShiftDTO) attachDetail(s *roster.Shift) error {
	supplied := 0
	if dto.OnCall != nil {
		supplied++
	}
	if dto.Sleepover != nil {
		supplied++
	}
	if dto.Broken != nil {
		supplied++
	}
	if supplied > 1 {
		return fmt.Errorf("shift %s: multiple detail payloads supplied", dto.ID)
	}

	switch {
	case dto.OnCall != nil:
		window, err := parseWindow(dto.OnCall.WindowStart, dto.OnCall.WindowEnd)
		if err != nil {
			return err
		}
		s.Detail = roster.OnCallDetail{
			Window:        window,
			WasRecalled:   dto.OnCall.WasRecalled,
			RecallMinutes: dto.OnCall.RecallMinutes,
		}
	case dto.Sleepover != nil:
		bedtime, err := parseWindow(dto.Sleepover.BedtimeStart, dto.Sleepover.BedtimeEnd)
		if err != nil {
			return err
		}
		s.Detail = roster.SleepoverDetail{
			Bedtime:            bedtime,
			WasDisturbed:       dto.Sleepover.WasDisturbed,
			DisturbanceMinutes: dto.Sleepover.DisturbanceMinutes,
		}
	case dto.Broken != nil:
		first, err := parseWindow(dto.Broken.FirstStart, dto.Broken.FirstEnd)
		if err != nil {
			return err
		}
		second, err := parseWindow(dto.Broken.SecondStart, dto.Broken.SecondEnd)
		if err != nil {
			return err
		}
		// On-call and bedtime windows may span midnight; broken-shift work
		// segments sit within a single day and must run forward.
		for _, seg := range []pay.Window{first, second} {
			if seg != (pay.Window{}) && seg.Minutes() <= 0 {
				return fmt.Errorf("shift %s: segment %s: %w", dto.ID, seg, pay.ErrInvalidWindow)
			}
		}
		s.Detail = roster.BrokenDetail{
			First:            first,
			Second:           second,
			UnpaidGapMinutes: dto.Broken.UnpaidGapMinutes,
		}
	}

	if s.Detail != nil && s.Kind != roster.KindRegular && s.Detail.DetailKind() != s.Kind &&
		!(s.Kind == roster.KindRecall && s.Detail.DetailKind() == roster.KindOnCall) {
		return fmt.Errorf("shift %s: kind %q does not match detail payload %q",
			dto.ID, s.Kind, s.Detail.DetailKind())
	}

	return nil
}

func parseWindow(start, end string) (pay.Window, error) {
	if start == "" || end == "" {
		return pay.Window{}, nil
	}
	s, err := pay.ParseClock(start)
	if err != nil {
		return pay.Window{}, err
	}
	e, err := pay.ParseClock(end)
	if err != nil {
		return pay.Window{}, err
	}
	return pay.NewWindow(s, e), nil
}

func (dto StaffDTO) toDomain() roster.StaffMember {
	m := roster.StaffMember{
		ID:                        dto.ID,
		Name:                      dto.Name,
		Employment:                roster.Employment(dto.Employment),
		HourlyRateOverride:        decimal.NewFromFloat(dto.HourlyRateOverride),
		Role:                      dto.Role,
		ContractedMaxHoursPerWeek: decimal.NewFromFloat(dto.ContractedMaxHours),
	}
	for _, q := range dto.Qualifications {
		m.Qualifications = append(m.Qualifications, roster.Qualification{
			Type:    roster.QualificationType(q.Type),
			Expired: q.Expired,
		})
	}
	return m
}

// =============================================================================
// DOMAIN -> DTO CONVERSION
// =============================================================================

func money(d decimal.Decimal) float64 {
	f, _ := pay.RoundCents(d).Float64()
	return f
}

func categoryDTO(c costing.CategoryAmounts) CategoryDTO {
	return CategoryDTO{Hours: money(c.Hours), Pay: money(c.Pay)}
}

func breakdownDTO(b costing.Breakdown) BreakdownDTO {
	dto := BreakdownDTO{
		ID:               b.ID,
		ShiftID:          b.ShiftID,
		StaffID:          b.StaffID,
		AwardID:          b.AwardID,
		ClassificationID: b.ClassificationID,
		Date:             b.Date.String(),
		DayType:          string(b.DayType),

		GrossMinutes: b.GrossMinutes,
		NetMinutes:   b.NetMinutes,

		EffectiveHourlyRate: money(b.EffectiveHourlyRate),

		Ordinary:      categoryDTO(b.Ordinary),
		Evening:       categoryDTO(b.Evening),
		Saturday:      categoryDTO(b.Saturday),
		Sunday:        categoryDTO(b.Sunday),
		PublicHoliday: categoryDTO(b.PublicHoliday),
		Overtime:      categoryDTO(b.Overtime),
		NightHours:    money(b.NightHours),

		GrossPay:       money(b.GrossPay),
		Superannuation: money(b.Superannuation),
		TotalCost:      money(b.TotalCost),

		IsPublicHoliday: b.IsPublicHoliday,
		IsSchoolHoliday: b.IsSchoolHoliday,
		IsCasual:        b.IsCasual,
		HasOvertime:     b.HasOvertime,

		Warnings: b.Warnings,
	}
	for _, a := range b.Allowances {
		dto.Allowances = append(dto.Allowances, AllowanceDTO{
			ID:        a.ID,
			Name:      a.Name,
			Amount:    money(a.Amount),
			Rationale: a.Rationale,
		})
	}
	return dto
}

func weekSummaryDTO(s costing.WeekSummary) WeekSummaryDTO {
	return WeekSummaryDTO{
		StaffID:   s.StaffID,
		WeekStart: s.WeekStart.String(),
		WeekEnd:   s.WeekEnd.String(),

		Ordinary:      categoryDTO(s.Ordinary),
		Evening:       categoryDTO(s.Evening),
		Saturday:      categoryDTO(s.Saturday),
		Sunday:        categoryDTO(s.Sunday),
		PublicHoliday: categoryDTO(s.PublicHoliday),
		Overtime:      categoryDTO(s.Overtime),

		TotalHours:     money(s.TotalHours),
		AllowanceTotal: money(s.AllowanceTotal),
		GrossPay:       money(s.GrossPay),
		Superannuation: money(s.Superannuation),
		TotalCost:      money(s.TotalCost),

		ShiftCount:             s.ShiftCount,
		ExceedsContractedHours: s.ExceedsContractedHours,
		Warnings:               s.Warnings,
	}
}

func rosterAggregateDTO(a costing.RosterAggregate) RosterAggregateDTO {
	dto := RosterAggregateDTO{
		From:      a.From.String(),
		To:        a.To.String(),
		ByDayType: make(map[string]DayTypeTotalsDTO, len(a.ByDayType)),

		TotalHours:     money(a.TotalHours),
		GrossPay:       money(a.GrossPay),
		AllowanceTotal: money(a.AllowanceTotal),
		Superannuation: money(a.Superannuation),
		TotalCost:      money(a.TotalCost),

		ShiftCount: a.ShiftCount,
		StaffCount: a.StaffCount,
	}
	for dayType, totals := range a.ByDayType {
		dto.ByDayType[string(dayType)] = DayTypeTotalsDTO{
			Hours:      money(totals.Hours),
			GrossPay:   money(totals.GrossPay),
			TotalCost:  money(totals.TotalCost),
			ShiftCount: totals.ShiftCount,
		}
	}
	return dto
}

func forecastSummaryDTO(s forecast.Summary) ForecastSummaryDTO {
	dto := ForecastSummaryDTO{
		GeneratedFor:       s.GeneratedFor.String(),
		WeekCount:          s.WeekCount,
		TotalProjectedCost: money(s.TotalProjectedCost),
		TotalBudget:        money(s.TotalBudget),
		AverageHourlyRate:  money(s.AverageHourlyRate),
		Recommendations:    s.Recommendations,
	}
	for _, w := range s.Weeks {
		wdto := WeekForecastDTO{
			WeekNumber:     w.WeekNumber,
			WeekStart:      w.WeekStart.String(),
			WeekEnd:        w.WeekEnd.String(),
			ProjectedHours: money(w.ProjectedHours),
			ProjectedCost:  money(w.ProjectedCost),
			Budget:         money(w.Budget),
			BudgetVariance: money(w.BudgetVariance),
			OverBudget:     w.OverBudget,
			VsPreviousWeek: money(w.VsPreviousWeek),
		}
		for _, d := range w.Days {
			wdto.Days = append(wdto.Days, DayForecastDTO{
				Date:            d.Date.String(),
				BaselineDate:    d.BaselineDate.String(),
				IsPublicHoliday: d.IsPublicHoliday,
				IsSchoolHoliday: d.IsSchoolHoliday,
				BaselineHours:   money(d.BaselineHours),
				ProjectedHours:  money(d.ProjectedHours),
				ProjectedShifts: d.ProjectedShiftCount,
				ProjectedCost:   money(d.ProjectedCost),
				Confidence:      d.Confidence,
			})
		}
		dto.Weeks = append(dto.Weeks, wdto)
	}
	for _, r := range s.RiskFactors {
		dto.RiskFactors = append(dto.RiskFactors, RiskFactorDTO{
			Type:        r.Type,
			Description: r.Description,
			Severity:    string(r.Severity),
			Impact:      money(r.Impact),
		})
	}
	return dto
}
