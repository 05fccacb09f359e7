package debugserver

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"ribbon-defense/internal/app"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SnapshotSource is what the server reads the game state from.
type SnapshotSource interface {
	Latest() *app.Snapshot
}

// NewRouter configures the read-only debug routes.
func NewRouter(src SnapshotSource, logger *log.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
			snap := src.Latest()
			if snap == nil {
				respondError(w, logger, http.StatusServiceUnavailable, "no tick published yet")
				return
			}
			respondJSON(w, logger, http.StatusOK, snap)
		})
		r.Get("/state/{section}", func(w http.ResponseWriter, r *http.Request) {
			snap := src.Latest()
			if snap == nil {
				respondError(w, logger, http.StatusServiceUnavailable, "no tick published yet")
				return
			}
			var body interface{}
			switch chi.URLParam(r, "section") {
			case "towers":
				body = snap.Towers
			case "enemies":
				body = snap.Enemies
			case "projectiles":
				body = snap.Projectiles
			case "base":
				body = snap.Base
			case "path":
				body = snap.Path
			default:
				respondError(w, logger, http.StatusNotFound, "unknown section")
				return
			}
			respondJSON(w, logger, http.StatusOK, body)
		})
	})

	r.Mount("/debug", middleware.Profiler())
	return r
}

// Server serves the debug routes until its context is cancelled.
type Server struct {
	http   *http.Server
	logger *log.Logger
}

func New(addr string, src SnapshotSource, logger *log.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(src, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Run blocks until ctx is done or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("Debug server listening on %s", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *log.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *log.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
