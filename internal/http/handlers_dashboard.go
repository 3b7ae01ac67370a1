package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"spendlive/internal/core"
	"spendlive/internal/pipeline"
	"spendlive/internal/source"
)

// dashboardData is everything the dashboard template renders for one pass.
type dashboardData struct {
	Diagnostics source.Diagnostics
	LoadError   string
	Fingerprint string
	RowCount    int

	RawPreview    []core.Transaction
	AllCategories []string
	Selection     pipeline.Selection
	Filtered      []core.Transaction
	Summary       []core.CategoryTotal
	Series        []core.DailyTotal

	Currency string
}

// handleDashboard runs the full pipeline and renders the page. Filter state
// lives entirely in the query string, so a reload with the same URL is the
// same interaction.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded")
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result := pipeline.Run(ctx, s.cache, parseRequest(r))

	data := dashboardData{
		Diagnostics:   s.src.Diagnostics(),
		Fingerprint:   string(s.cache.Fingerprint()),
		RowCount:      result.Dataset.Len(),
		RawPreview:    result.Dataset.Head(s.cfg.RawPreviewRows),
		AllCategories: result.Dataset.Categories(),
		Selection:     result.Selection,
		Filtered:      result.View.ByDateDesc(),
		Summary:       result.Summary,
		Series:        result.Series,
		Currency:      s.cfg.DefaultCurrency,
	}
	if result.LoadErr != nil {
		data.LoadError = result.LoadErr.Error()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "dashboard", data); err != nil {
		slog.ErrorContext(ctx, "Dashboard template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleRefresh backs the "Refresh now" button: drop the memoized dataset and
// send the browser back to the dashboard, which will fetch fresh data.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	s.cache.Invalidate()
	slog.InfoContext(r.Context(), "manual refresh requested, cache invalidated")

	target := "/"
	if ref := r.FormValue("return"); ref != "" && ref[0] == '/' {
		target = ref
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
