package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/keertidamani/ghcensus/pkg/domain/interfaces"
	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/repository"
	"github.com/keertidamani/ghcensus/pkg/utils/errutil"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error string `json:"error"`
}

type config struct {
	harvestEnabled bool
}

type Option func(*config)

// WithHarvest enables POST /api/v1/harvest. The usecase must have a GitHub client.
func WithHarvest() Option {
	return func(cfg *config) {
		cfg.harvestEnabled = true
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	var harvesting atomic.Bool

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/report", func(w http.ResponseWriter, r *http.Request) {
			report, err := uc.Report(r.Context())
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					writeJSON(w, http.StatusNotFound, errorResponse{Error: "no dataset is stored yet"})
					return
				}
				errutil.HandleError(r.Context(), "fail to build report", err)
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
				return
			}

			if r.URL.Query().Get("view") == "items" {
				writeJSON(w, http.StatusOK, report.Items())
				return
			}
			writeJSON(w, http.StatusOK, report)
		})

		if cfg.harvestEnabled {
			r.Post("/harvest", func(w http.ResponseWriter, r *http.Request) {
				input, err := parseHarvestRequest(r)
				if err != nil {
					writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
					return
				}

				if !harvesting.CompareAndSwap(false, true) {
					writeJSON(w, http.StatusConflict, errorResponse{Error: "harvest is already running"})
					return
				}

				// The request context is cancelled when the response is sent
				bgCtx := DetachContext(r.Context())
				go func() {
					defer harvesting.Store(false)
					runHarvest(bgCtx, uc, input)
				}()

				writeJSON(w, http.StatusAccepted, map[string]string{
					"status":   "accepted",
					"location": input.Location,
				})
			})
		}
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

type harvestRequest struct {
	Location        string `json:"location"`
	MinFollowers    *int   `json:"min_followers"`
	MaxRepositories *int   `json:"max_repos"`
}

func parseHarvestRequest(r *http.Request) (*model.HarvestInput, error) {
	var req harvestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid request body", goerr.V("error", err.Error()))
	}

	input := &model.HarvestInput{
		Location:        req.Location,
		MinFollowers:    model.DefaultMinFollowers,
		MaxRepositories: model.DefaultMaxRepositories,
	}
	if req.MinFollowers != nil {
		input.MinFollowers = *req.MinFollowers
	}
	if req.MaxRepositories != nil {
		input.MaxRepositories = *req.MaxRepositories
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	return input, nil
}
