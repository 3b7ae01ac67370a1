// Package http serves the live expense dashboard. Every page load re-runs
// the whole load/filter/aggregate pass; the refresh cache decides whether the
// store is actually touched.
package http

import (
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"spendlive/internal/config"
	"spendlive/internal/middleware/trace"
	"spendlive/internal/refresh"
	"spendlive/internal/source"
	appweb "spendlive/web"
)

type Server struct {
	http.Server

	cache *refresh.Cache
	src   source.Source
	cfg   *config.Config

	templates *template.Template
}

func NewServer(addr string, src source.Source, cache *refresh.Cache, cfg *config.Config) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: trace.NewMiddleware().Wrap(mux),
		},
		cache: cache,
		src:   src,
		cfg:   cfg,
	}

	// Parse embedded templates at startup.
	t, err := template.New("").Funcs(templateFuncs).ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/export.csv", s.handleExportCSV)
	mux.HandleFunc("/refresh", s.handleRefresh)
	mux.HandleFunc("/healthz", handleHealth)

	return s
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
