package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/dates"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/go-chi/chi/v5"
)

const maxReportDays = 366

type SalesSummarizer interface {
	DailySummary(ctx context.Context, date time.Time) (models.DailySalesSummary, error)
}

type RosterSummarizer interface {
	DailySummary(ctx context.Context, date time.Time) (models.DailyRosterSummary, error)
}

type ReportBuilder interface {
	Build(ctx context.Context, days int, now time.Time) (models.Report, error)
}

// ReportsHandler serves the daily summaries and the periodic report as JSON.
type ReportsHandler struct {
	log     *slog.Logger
	sales   SalesSummarizer
	roster  RosterSummarizer
	builder ReportBuilder
	now     func() time.Time
}

func NewReportsHandler(log *slog.Logger, sales SalesSummarizer, roster RosterSummarizer, builder ReportBuilder) *ReportsHandler {
	return &ReportsHandler{log: log, sales: sales, roster: roster, builder: builder, now: time.Now}
}

// RegisterRoutes mounts the report endpoints, expected under /reports.
func (h *ReportsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/sales/daily", h.DailySales)
	r.Get("/roster/daily", h.DailyRoster)
	r.Get("/summary", h.Summary)
}

// DailySales returns the sales summary of ?date=, today when omitted.
func (h *ReportsHandler) DailySales(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}

	summary, err := h.sales.DailySummary(r.Context(), date)
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to build daily sales summary", sl.Err(err))
		writeJSON(h.log, w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(h.log, w, http.StatusOK, summary)
}

// DailyRoster returns the roster summary of ?date=, today when omitted.
func (h *ReportsHandler) DailyRoster(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}

	summary, err := h.roster.DailySummary(r.Context(), date)
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to build daily roster summary", sl.Err(err))
		writeJSON(h.log, w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(h.log, w, http.StatusOK, summary)
}

// Summary returns the report over the trailing ?days= (7 by default).
func (h *ReportsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxReportDays {
			writeJSON(h.log, w, http.StatusBadRequest, map[string]string{"error": "days must be between 1 and 366"})
			return
		}
		days = parsed
	}

	report, err := h.builder.Build(r.Context(), days, h.now())
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to build report", sl.Err(err))
		writeJSON(h.log, w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(h.log, w, http.StatusOK, report)
}

func (h *ReportsHandler) dateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return dates.Day(h.now()), true
	}

	date, err := dates.ParseDate(raw)
	if err != nil {
		writeJSON(h.log, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return time.Time{}, false
	}

	return date, true
}

func writeJSON(log *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode JSON response", sl.Err(err))
	}
}
