package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"spendlive/internal/pipeline"
)

// handleExportCSV serializes the currently filtered view, never the full
// dataset: the same query parameters that shape the page shape the download.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result := pipeline.Run(ctx, s.cache, parseRequest(r))

	out, err := pipeline.ExportCSV(result.View, s.cfg.ExportColumns)
	if err != nil {
		slog.ErrorContext(ctx, "CSV export failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="filtered_expenses.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	_, _ = w.Write(out)
}
