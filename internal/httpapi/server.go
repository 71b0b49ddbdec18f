package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"llamactld/pkg/types"
)

const defaultLogLines = 50

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Start(modelID string) types.StartResult
	Stop() types.StopResult
	Status() types.StatusResponse
	Models() map[string]types.ModelSummary
	Logs(n int) []string
	Stats(ctx context.Context) types.StatsResponse
	Network() types.NetworkInfo
}

// Options configures the control API mux.
type Options struct {
	// Shared secret compared against the X-API-Key header.
	APIKey string
	// Reported by GET /api/version.
	Version    string
	ServerName string
}

// NewMux builds the control API router: the public UI page and metrics, a
// CORS layer permissive enough for the browser UI, and the authenticated
// /api surface delegating to the supervisor service.
func NewMux(svc Service, opt Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"X-API-Key", "Content-Type"},
	}))
	r.Use(requestLogger)
	r.Use(MetricsMiddleware)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/", serveUI)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	MountSwagger(r)

	r.Route("/api", func(api chi.Router) {
		api.Use(requireAPIKey(opt.APIKey))

		// Status godoc
		// @Summary  Snapshot of the managed process
		// @Produce  json
		// @Success  200 {object} types.StatusResponse
		// @Router   /api/status [get]
		api.Get("/status", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Status())
		})

		// Models godoc
		// @Summary  Configured launch descriptors
		// @Produce  json
		// @Success  200 {object} map[string]types.ModelSummary
		// @Router   /api/models [get]
		api.Get("/models", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Models())
		})

		// Stats godoc
		// @Summary  Best-effort GPU and memory statistics
		// @Produce  json
		// @Success  200 {object} types.StatsResponse
		// @Router   /api/stats [get]
		api.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Stats(r.Context()))
		})

		// Logs godoc
		// @Summary  Recent output lines of the managed process
		// @Param    lines query int false "number of lines" default(50)
		// @Produce  json
		// @Success  200 {array} string
		// @Router   /api/logs [get]
		api.Get("/logs", func(w http.ResponseWriter, r *http.Request) {
			n := defaultLogLines
			if v := r.URL.Query().Get("lines"); v != "" {
				parsed, err := strconv.Atoi(v)
				if err != nil || parsed < 0 {
					writeJSONError(w, http.StatusBadRequest, "lines must be a non-negative integer")
					return
				}
				n = parsed
			}
			writeJSON(w, svc.Logs(n))
		})

		// Network godoc
		// @Summary  Host address discovery info
		// @Produce  json
		// @Success  200 {object} types.NetworkInfo
		// @Router   /api/network [get]
		api.Get("/network", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Network())
		})

		// Version godoc
		// @Summary  Server name and version
		// @Produce  json
		// @Success  200 {object} types.VersionResponse
		// @Router   /api/version [get]
		api.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, types.VersionResponse{Version: opt.Version, Name: opt.ServerName})
		})

		// Start godoc
		// @Summary  Launch a model, stopping any current one first
		// @Param    modelID path string true "model identifier"
		// @Produce  json
		// @Success  200 {object} types.StartResult
		// @Router   /api/start/{modelID} [post]
		api.Post("/start/{modelID}", func(w http.ResponseWriter, r *http.Request) {
			// Domain failures (unknown model, launch failure) stay HTTP 200
			// with success:false so the UI renders them inline.
			writeJSON(w, svc.Start(chi.URLParam(r, "modelID")))
		})

		// Stop godoc
		// @Summary  Stop the managed process
		// @Produce  json
		// @Success  200 {object} types.StopResult
		// @Router   /api/stop [post]
		api.Post("/stop", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Stop())
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
