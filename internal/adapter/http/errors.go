package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"launchpad/internal/core/domain"
)

const codeTimeout = "TIMEOUT"

type problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeProblem(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(problem{Code: code, Message: msg})
}

// statusOf maps an error code to the HTTP status returned to clients.
func statusOf(code domain.Code) int {
	switch code {
	case domain.CodeCampaignNotFound:
		return http.StatusNotFound
	case domain.CodeNotOwner, domain.CodeNotAuthorized, domain.CodeSelfPurchase:
		return http.StatusForbidden
	case domain.CodeInvalidArgument, domain.CodeInvalidBounds, domain.CodeInvalidWindow,
		domain.CodeDurationOutOfRange, domain.CodeSupplyTooLow, domain.CodeAmountOverflow:
		return http.StatusBadRequest
	case domain.CodeInsufficientFee, domain.CodeInsufficientPayment, domain.CodeInsufficientAllowance:
		return http.StatusPaymentRequired
	case domain.CodeTransferFailed:
		return http.StatusBadGateway
	case domain.CodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusConflict
	}
}

// fail writes err as a problem response. Errors without a code are logged
// and hidden behind a generic message.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		h.logger.Warn(op+" timed out", slog.String("path", r.URL.Path))
		writeProblem(w, http.StatusGatewayTimeout, codeTimeout, "request timed out")
		return
	}
	code := domain.CodeOf(err)
	status := statusOf(code)
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.String("path", r.URL.Path), slog.Any("error", err))
		writeProblem(w, status, string(code), "internal error")
		return
	}
	writeProblem(w, status, string(code), err.Error())
}
