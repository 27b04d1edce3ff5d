package planner

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/plan-atlas/pkg/adapters"
	"github.com/de-tools/plan-atlas/pkg/export"
	"github.com/de-tools/plan-atlas/pkg/models/api"
	"github.com/de-tools/plan-atlas/pkg/models/domain"
	"github.com/de-tools/plan-atlas/pkg/services/extract"
	"github.com/de-tools/plan-atlas/pkg/services/planner"
)

const dateLayout = "2006-01-02"

type Handler struct {
	extractor    extract.Extractor
	walker       planner.Walker
	calendarPath string
}

// NewHandler wires the web surface. The extractor may be nil, in which case
// the parse and braindump endpoints report that extraction is not configured.
func NewHandler(extractor extract.Extractor, walker planner.Walker, calendarPath string) *Handler {
	return &Handler{
		extractor:    extractor,
		walker:       walker,
		calendarPath: calendarPath,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) fail(w http.ResponseWriter, logger *zerolog.Logger, status int, msg string) {
	h.writeJSON(w, logger, status, api.StatusResponse{Success: false, Error: msg})
}

func (h *Handler) decodeInput(w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) (string, bool) {
	var req api.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, logger, http.StatusBadRequest, "invalid request body")
		return "", false
	}
	if req.Input == "" {
		h.fail(w, logger, http.StatusBadRequest, "input is required")
		return "", false
	}
	return req.Input, true
}

func (h *Handler) ParseBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.extractor == nil {
		h.fail(w, logger, http.StatusServiceUnavailable, "extraction is not configured")
		return
	}
	input, ok := h.decodeInput(w, r, logger)
	if !ok {
		return
	}

	info, err := h.extractor.ExtractBudget(ctx, input)
	if err != nil {
		logger.Error().Err(err).Msg("budget extraction failed")
		h.writeJSON(w, logger, extractStatus(err), api.ParseBudgetResponse{Error: err.Error()})
		return
	}

	h.writeJSON(w, logger, http.StatusOK, api.ParseBudgetResponse{Success: true, BudgetInfo: info})
}

func (h *Handler) ParseActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.extractor == nil {
		h.fail(w, logger, http.StatusServiceUnavailable, "extraction is not configured")
		return
	}
	input, ok := h.decodeInput(w, r, logger)
	if !ok {
		return
	}

	info, err := h.extractor.ExtractActivities(ctx, input)
	if err != nil {
		logger.Error().Err(err).Msg("activities extraction failed")
		h.writeJSON(w, logger, extractStatus(err), api.ParseActivitiesResponse{Error: err.Error()})
		return
	}

	h.writeJSON(w, logger, http.StatusOK, api.ParseActivitiesResponse{Success: true, ActivityGoals: info})
}

func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, logger, http.StatusBadRequest, "invalid request body")
		return
	}

	start, end, ok := h.parseRange(w, logger, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	rec := adapters.MapBudgetInfoApiToDomain(req.BudgetInfo)
	goals := adapters.MapActivityGoalsApiToDomain(req.ActivityGoals)

	h.generate(w, r, logger, start, end, rec, goals)
}

func (h *Handler) BrainDump(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.extractor == nil {
		h.fail(w, logger, http.StatusServiceUnavailable, "extraction is not configured")
		return
	}

	var req api.BrainDumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Input == "" {
		h.fail(w, logger, http.StatusBadRequest, "input is required")
		return
	}

	start, end, ok := h.parseRange(w, logger, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	plan, err := h.extractor.ExtractBrainDump(ctx, req.Input)
	if err != nil {
		logger.Error().Err(err).Msg("brain dump extraction failed")
		h.fail(w, logger, extractStatus(err), err.Error())
		return
	}

	goals := adapters.MapBrainDumpPlanApiToDomain(*plan)
	h.generate(w, r, logger, start, end, domain.BudgetRecord{}, goals)
}

func (h *Handler) DownloadCalendar(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if _, err := os.Stat(h.calendarPath); err != nil {
		h.fail(w, logger, http.StatusNotFound, "no calendar has been generated yet")
		return
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="financial_calendar.ics"`)
	http.ServeFile(w, r, h.calendarPath)
}

func (h *Handler) parseRange(w http.ResponseWriter, logger *zerolog.Logger, startDate, endDate string) (time.Time, time.Time, bool) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		h.fail(w, logger, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		h.fail(w, logger, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (h *Handler) generate(
	w http.ResponseWriter,
	r *http.Request,
	logger *zerolog.Logger,
	start, end time.Time,
	rec domain.BudgetRecord,
	goals domain.ActivityGoals,
) {
	col, err := h.walker.Generate(r.Context(), start, end, rec, goals)
	if err != nil {
		if errors.Is(err, planner.ErrInvalidRange) {
			h.fail(w, logger, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error().Err(err).Msg("plan generation failed")
		h.fail(w, logger, http.StatusInternalServerError, "plan generation failed")
		return
	}

	if err := export.WriteFile(h.calendarPath, col); err != nil {
		logger.Error().Err(err).Msg("failed to write calendar artifact")
		h.fail(w, logger, http.StatusInternalServerError, "failed to write calendar")
		return
	}

	logger.Info().Int("events", col.Len()).Str("path", h.calendarPath).Msg("calendar generated")
	h.writeJSON(w, logger, http.StatusOK, api.StatusResponse{Success: true})
}

func extractStatus(err error) int {
	switch {
	case errors.Is(err, extract.ErrUnauthorized):
		return http.StatusBadGateway
	case errors.Is(err, extract.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusUnprocessableEntity
	}
}
