// Package handler exposes the registration endpoint. The handler owns the
// ambient transaction: it opens one around the whole provisioning pipeline
// so any step's failure rolls back every entity created before it.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sokoni/internal/platform/metrics"
	"sokoni/internal/platform/middleware"
	"sokoni/internal/ratelimit"
	"sokoni/internal/registration/models"
	"sokoni/internal/registration/phone"
	"sokoni/internal/transport/http/shared"
	dErrors "sokoni/pkg/domain-errors"
	"sokoni/pkg/platform/tx"
)

// Service runs the provisioning pipeline inside the caller's transaction.
type Service interface {
	ProvisionCustomer(ctx context.Context, input *models.RegistrationInput) (*models.ProvisionResult, error)
}

type Handler struct {
	logger  *slog.Logger
	service Service
	runner  tx.Runner
	limiter *ratelimit.Limiter
	metrics *metrics.Metrics
}

func New(service Service, runner tx.Runner, logger *slog.Logger, m *metrics.Metrics, limiter *ratelimit.Limiter) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		runner:  runner,
		limiter: limiter,
		metrics: m,
	}
}

// Register registers the registration routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.Latency(h.metrics))
	router.Post("/registrations", h.handleRegister)

	r.Mount("/", router)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var input models.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.WarnContext(ctx, "invalid registration request",
			"request_id", requestID, "error", err.Error())
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	// Throttle by normalized phone before touching the database.
	var normalized string
	if h.limiter != nil {
		var err error
		normalized, err = phone.Normalize(input.AdminPhoneNumber)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
		if err := h.limiter.Allow(ctx, normalized); err != nil {
			h.logger.WarnContext(ctx, "registration attempt throttled",
				"request_id", requestID, "phone", normalized)
			shared.WriteError(w, err)
			return
		}
	}

	var result *models.ProvisionResult
	err := h.runner.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		result, err = h.service.ProvisionCustomer(ctx, &input)
		return err
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "registration failed",
			"request_id", requestID,
			"company_code", input.CompanyCode,
			"error", err.Error())
		shared.WriteError(w, err)
		return
	}

	if h.limiter != nil {
		if err := h.limiter.Clear(ctx, normalized); err != nil {
			h.logger.WarnContext(ctx, "clearing attempt counter failed",
				"request_id", requestID, "error", err.Error())
		}
	}

	shared.WriteJSON(w, http.StatusCreated, result)
}
