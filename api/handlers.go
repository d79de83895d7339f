/*
handlers.go - HTTP handler implementations

PURPOSE:
  Bridges the HTTP surface to the calculation core. Handlers decode and
  validate request DTOs, resolve the award from the cached catalog, run
  the pure engine, and encode result DTOs. Nothing here computes pay.

ERROR POLICY:
  - 400: malformed JSON, failed validation, unparseable dates/clocks
  - 404: unknown award id
  - 500: store failures
  Shift-level anomalies are NOT errors; they ride inside breakdowns as
  warnings, matching the engine's never-fatal contract.

SEE ALSO:
  - server.go: Router and middleware
  - dto.go: Request/response shapes and conversions
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/award"
	"github.com/warp/award-engine/costing"
	"github.com/warp/award-engine/factory"
	"github.com/warp/award-engine/forecast"
	"github.com/warp/award-engine/pay"
	"github.com/warp/award-engine/roster"
	"github.com/warp/award-engine/store/sqlite"
)

// Handler holds the engine and its collaborators.
type Handler struct {
	store    *sqlite.Store
	calc     *costing.Calculator
	forecast *forecast.Engine
	factory  *factory.AwardFactory
	validate *validator.Validate
	log      zerolog.Logger

	mu      sync.RWMutex
	catalog *award.Catalog
}

// NewHandler wires a handler around the reference store. The store doubles
// as the holiday calendar.
func NewHandler(store *sqlite.Store, log zerolog.Logger) *Handler {
	return &Handler{
		store:    store,
		calc:     costing.NewCalculator(store),
		forecast: forecast.NewEngine(store),
		factory:  factory.NewAwardFactory(),
		validate: validator.New(),
		log:      log,
	}
}

// ReloadCatalog refreshes the cached award catalog from the store.
func (h *Handler) ReloadCatalog(r *http.Request) error {
	catalog, err := h.store.LoadCatalog(r.Context())
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.catalog = catalog
	h.mu.Unlock()
	return nil
}

func (h *Handler) awardByID(r *http.Request, id string) (*award.Definition, error) {
	h.mu.RLock()
	catalog := h.catalog
	h.mu.RUnlock()

	if catalog == nil {
		if err := h.ReloadCatalog(r); err != nil {
			return nil, err
		}
		h.mu.RLock()
		catalog = h.catalog
		h.mu.RUnlock()
	}
	return catalog.MustAward(id)
}

// =============================================================================
// COSTING ENDPOINTS
// =============================================================================

// CostShift computes one breakdown for one shift.
// POST /api/costs/shift
func (h *Handler) CostShift(w http.ResponseWriter, r *http.Request) {
	var req CostShiftRequest
	if !h.decode(w, r, &req) {
		return
	}

	def, err := h.awardByID(r, req.AwardID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	shift, err := req.Shift.toDomain()
	if err != nil {
		h.badRequest(w, err)
		return
	}

	b := h.calc.CostShift(shift, req.Staff.toDomain(), def, req.ClassificationID)
	h.respond(w, http.StatusOK, breakdownDTO(b))
}

// CostWeek costs a week of shifts and returns per-staff summaries.
// POST /api/costs/week
func (h *Handler) CostWeek(w http.ResponseWriter, r *http.Request) {
	var req CostWeekRequest
	if !h.decode(w, r, &req) {
		return
	}

	def, err := h.awardByID(r, req.AwardID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	weekStart, err := pay.ParseDate(req.WeekStart)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	shifts, staff, staffByID, err := h.convertBatch(req.Shifts, req.Staff)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	breakdowns := h.calc.CostBatch(shifts, staffByID, def)

	resp := struct {
		Breakdowns []BreakdownDTO   `json:"breakdowns"`
		Summaries  []WeekSummaryDTO `json:"summaries"`
	}{}
	for _, b := range breakdowns {
		resp.Breakdowns = append(resp.Breakdowns, breakdownDTO(b))
	}
	for _, s := range costing.SummarizeAllStaff(staff, breakdowns, weekStart) {
		resp.Summaries = append(resp.Summaries, weekSummaryDTO(s))
	}

	h.respond(w, http.StatusOK, resp)
}

// CostRoster aggregates a date range across all staff by day type.
// POST /api/costs/roster
func (h *Handler) CostRoster(w http.ResponseWriter, r *http.Request) {
	var req CostRosterRequest
	if !h.decode(w, r, &req) {
		return
	}

	def, err := h.awardByID(r, req.AwardID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	from, err := pay.ParseDate(req.From)
	if err != nil {
		h.badRequest(w, err)
		return
	}
	to, err := pay.ParseDate(req.To)
	if err != nil {
		h.badRequest(w, err)
		return
	}
	if to.Before(from) {
		h.badRequest(w, pay.ErrInvalidDateRange)
		return
	}

	shifts, _, staffByID, err := h.convertBatch(req.Shifts, req.Staff)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	breakdowns := h.calc.CostBatch(shifts, staffByID, def)
	h.respond(w, http.StatusOK, rosterAggregateDTO(costing.Aggregate(breakdowns, from, to)))
}

// Forecast projects future weeks from a baseline week.
// POST /api/forecast
func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	var req ForecastRequest
	if !h.decode(w, r, &req) {
		return
	}

	weekStart, err := pay.ParseDate(req.BaselineWeekStart)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	shifts, staff, _, err := h.convertBatch(req.Shifts, req.Staff)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	summary := h.forecast.Project(forecast.Input{
		BaselineWeekStart: weekStart,
		BaselineShifts:    shifts,
		Staff:             staff,
		Weeks:             req.Weeks,
		WeeklyBudget:      decimal.NewFromFloat(req.WeeklyBudget),
	})

	h.respond(w, http.StatusOK, forecastSummaryDTO(summary))
}

// ValidateShift runs detection and validation without costing.
// POST /api/shifts/validate
func (h *Handler) ValidateShift(w http.ResponseWriter, r *http.Request) {
	var dto ShiftDTO
	if !h.decode(w, r, &dto) {
		return
	}

	shift, err := dto.toDomain()
	if err != nil {
		h.badRequest(w, err)
		return
	}

	detection := roster.Detect(shift)
	report := roster.Validate(shift)

	type findingDTO struct {
		Condition  string  `json:"condition"`
		Origin     string  `json:"origin"`
		Confidence float64 `json:"confidence"`
		Note       string  `json:"note"`
	}
	type issueDTO struct {
		Severity string `json:"severity"`
		Code     string `json:"code"`
		Message  string `json:"message"`
	}
	resp := struct {
		Kind     string       `json:"kind"`
		Findings []findingDTO `json:"findings"`
		Issues   []issueDTO   `json:"issues"`
	}{Kind: string(detection.Shift.Kind)}
	for _, f := range detection.Findings {
		resp.Findings = append(resp.Findings, findingDTO{
			Condition:  string(f.Condition),
			Origin:     string(f.Origin),
			Confidence: f.Confidence,
			Note:       f.Note,
		})
	}
	for _, i := range report.Issues {
		resp.Issues = append(resp.Issues, issueDTO{
			Severity: string(i.Severity),
			Code:     i.Code,
			Message:  i.Message,
		})
	}

	h.respond(w, http.StatusOK, resp)
}

// =============================================================================
// AWARD & HOLIDAY ENDPOINTS
// =============================================================================

// ListAwards returns all awards in the catalog.
// GET /api/awards
func (h *Handler) ListAwards(w http.ResponseWriter, r *http.Request) {
	if err := h.ReloadCatalog(r); err != nil {
		h.respondError(w, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []factory.AwardJSON
	for _, def := range h.catalog.Awards() {
		out = append(out, h.factory.ToJSON(def))
	}
	h.respond(w, http.StatusOK, out)
}

// CreateAward stores one award definition from its JSON document.
// POST /api/awards
func (h *Handler) CreateAward(w http.ResponseWriter, r *http.Request) {
	var aj factory.AwardJSON
	if err := json.NewDecoder(r.Body).Decode(&aj); err != nil {
		h.badRequest(w, err)
		return
	}

	def, err := h.factory.FromJSON(aj)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	if err := h.store.SaveAward(r.Context(), def); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.ReloadCatalog(r); err != nil {
		h.respondError(w, err)
		return
	}

	h.log.Info().Str("award_id", def.ID).Msg("award stored")
	h.respond(w, http.StatusCreated, h.factory.ToJSON(def))
}

// ListHolidays returns holidays in a date range (?from=...&to=...).
// GET /api/holidays
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	from, err := pay.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		h.badRequest(w, err)
		return
	}
	to, err := pay.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		h.badRequest(w, err)
		return
	}

	var out []HolidayDTO
	for _, holiday := range h.store.HolidaysInRange(from, to) {
		out = append(out, HolidayDTO{
			Date: holiday.Date.String(),
			Name: holiday.Name,
			Type: string(holiday.Type),
		})
	}
	h.respond(w, http.StatusOK, out)
}

// CreateHoliday adds one public or school holiday.
// POST /api/holidays
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req HolidayRequest
	if !h.decode(w, r, &req) {
		return
	}

	date, err := pay.ParseDate(req.Date)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	id, err := h.store.AddHoliday(r.Context(), pay.Holiday{
		Date: date,
		Name: req.Name,
		Type: pay.HolidayType(req.Type),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respond(w, http.StatusCreated, HolidayDTO{ID: id, Date: req.Date, Name: req.Name, Type: req.Type})
}

// DeleteHoliday removes one holiday by id.
// DELETE /api/holidays/{id}
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) convertBatch(shiftDTOs []ShiftDTO, staffDTOs []StaffDTO) ([]roster.Shift, []roster.StaffMember, map[string]roster.StaffMember, error) {
	shifts := make([]roster.Shift, 0, len(shiftDTOs))
	for _, dto := range shiftDTOs {
		s, err := dto.toDomain()
		if err != nil {
			return nil, nil, nil, err
		}
		shifts = append(shifts, s)
	}

	staff := make([]roster.StaffMember, 0, len(staffDTOs))
	staffByID := make(map[string]roster.StaffMember, len(staffDTOs))
	for _, dto := range staffDTOs {
		m := dto.toDomain()
		staff = append(staff, m)
		staffByID[m.ID] = m
	}

	return shifts, staff, staffByID, nil
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.badRequest(w, err)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		h.badRequest(w, err)
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, err error) {
	h.respondJSON(w, http.StatusBadRequest, err)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case pay.IsNotFound(err):
		status = http.StatusNotFound
	case pay.IsClientError(err):
		status = http.StatusBadRequest
	}
	h.respondJSON(w, status, err)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, err error) {
	var verr validator.ValidationErrors
	msg := err.Error()
	if errors.As(err, &verr) {
		msg = "validation failed: " + verr.Error()
	}
	if status >= 500 {
		h.log.Error().Err(err).Msg("request failed")
	}
	h.respond(w, status, map[string]string{"error": msg})
}
