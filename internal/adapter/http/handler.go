package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"launchpad/internal/core/port"
)

// AccountHeader carries the caller's account. Authentication is left to
// the gateway in front of the service.
const AccountHeader = "X-Account"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the launchpad and governance use cases and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.LaunchpadUseCase
	gov    port.GovernanceUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. A positive
// timeout cancels each request context once it elapses.
func NewHandler(svc port.LaunchpadUseCase, gov port.GovernanceUseCase, logger *slog.Logger, timeout time.Duration) *Handler {
	h := &Handler{svc: svc, gov: gov, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleLaunch)
			r.Get("/count", h.handleCampaignCount)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleCampaign)
				r.Get("/price", h.handlePrice)
				r.Get("/credits/{account}", h.handleCredit)
				r.Post("/purchase", h.handlePurchase)
				r.Post("/settle", h.handleSettle)
				r.Post("/withdraw", h.handleWithdraw)
				r.Post("/retrieve", h.handleRetrieve)
			})
		})
		r.Get("/fees/estimate", h.handleEstimateFee)
		r.Get("/policy", h.handlePolicy)

		r.Route("/admin", func(r chi.Router) {
			r.Delete("/campaigns/{id}", h.handleAdminRemove)
			r.Post("/fees/withdraw", h.handleWithdrawFees)
			r.Route("/policy", func(r chi.Router) {
				r.Put("/fee-rate", h.handleSetFeeRate)
				r.Put("/min-days", h.handleSetMinDays)
				r.Put("/max-days", h.handleSetMaxDays)
				r.Put("/min-supply", h.handleSetMinSupply)
				r.Put("/lock", h.handleSetLocked)
				r.Put("/owner", h.handleTransferOwnership)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// caller reads the acting account from the X-Account header. It writes a
// 400 response and reports false when the header is missing or malformed.
func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (common.Address, bool) {
	v := r.Header.Get(AccountHeader)
	if !common.IsHexAddress(v) {
		writeProblem(w, http.StatusBadRequest, "INVALID_ARGUMENT", "missing or invalid "+AccountHeader+" header")
		return common.Address{}, false
	}
	return common.HexToAddress(v), true
}

func campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid campaign id")
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid JSON: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
