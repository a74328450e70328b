package payrollhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"payweek/internal/domain/payroll"
	"payweek/internal/platform/metrics"
	"payweek/internal/register"
	"payweek/internal/transport/http/api"
	"payweek/internal/transport/http/middleware"
)

type Handler struct {
	Brackets []payroll.Bracket
	Register *register.Store // nil when no database is configured
	Metrics  *metrics.Collector
}

func NewHandler(brackets []payroll.Bracket, reg *register.Store, collector *metrics.Collector) *Handler {
	return &Handler{Brackets: brackets, Register: reg, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/run", h.handleRunPayroll)
		r.Get("/runs/{runID}", h.handleGetRun)
	})
}

type employeePayload struct {
	Name       string    `json:"name"`
	HourlyRate float64   `json:"hourlyRate"`
	DailyHours []float64 `json:"dailyHours"`
}

type runPayload struct {
	Employees []employeePayload `json:"employees"`
}

type runResponse struct {
	RunID   string             `json:"runId,omitempty"`
	Results []payroll.PayResult `json:"results"`
}

func (h *Handler) handleRunPayroll(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload runPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if len(payload.Employees) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "at least one employee is required", requestID)
		return
	}

	batch := payroll.NewBatch(h.Brackets)
	for _, entry := range payload.Employees {
		employee, err := payroll.NewEmployee(entry.Name, entry.HourlyRate, entry.DailyHours)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "malformed_record", err.Error(), requestID)
			return
		}
		batch.AddEmployee(employee)
	}

	start := time.Now()
	results, err := batch.ProcessPayroll(nil)
	if err != nil {
		if errors.Is(err, payroll.ErrInvalidHourlyRate) || errors.Is(err, payroll.ErrInvalidDailyHours) {
			if h.Metrics != nil {
				h.Metrics.RecordValidationFailure()
			}
			api.Fail(w, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "payroll_run_failed", "failed to process payroll", requestID)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordRun(len(results), time.Since(start))
	}

	response := runResponse{Results: results}
	if h.Register != nil {
		runID, err := h.Register.SaveRun(r.Context(), results)
		if err != nil {
			slog.Warn("pay run register write failed", "err", err, "requestId", requestID)
		} else {
			response.RunID = runID
		}
	}

	api.Success(w, response, requestID)
}

func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if h.Register == nil {
		api.Fail(w, http.StatusServiceUnavailable, "register_disabled", "pay run register is not configured", requestID)
		return
	}

	runID := chi.URLParam(r, "runID")
	rows, err := h.Register.RunResults(r.Context(), runID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "register_read_failed", "failed to read pay run", requestID)
		return
	}
	if len(rows) == 0 {
		api.Fail(w, http.StatusNotFound, "run_not_found", "no pay run with that id", requestID)
		return
	}
	api.Success(w, rows, requestID)
}
