package httpadapter

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

func (h *Handler) handlePolicy(w http.ResponseWriter, r *http.Request) {
	p, err := h.gov.Policy(r.Context())
	if err != nil {
		h.fail(w, r, "policy", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newPolicyResponse(p))
}

func (h *Handler) handleAdminRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	owner, ok := h.caller(w, r)
	if !ok {
		return
	}
	if err := h.svc.AdminRemove(r.Context(), id, owner); err != nil {
		h.fail(w, r, "admin remove", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleWithdrawFees(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.caller(w, r)
	if !ok {
		return
	}
	fees, err := h.gov.WithdrawFees(r.Context(), owner)
	if err != nil {
		h.fail(w, r, "withdraw fees", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]*uint256.Int{"amount": fees})
}

func (h *Handler) handleSetFeeRate(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	h.govUpdate(w, r, "set fee rate", &req, func(caller common.Address) error {
		return h.gov.SetFeeRate(r.Context(), caller, req.Value)
	})
}

func (h *Handler) handleSetMinDays(w http.ResponseWriter, r *http.Request) {
	var req daysRequest
	h.govUpdate(w, r, "set min days", &req, func(caller common.Address) error {
		return h.gov.SetMinDays(r.Context(), caller, req.Days)
	})
}

func (h *Handler) handleSetMaxDays(w http.ResponseWriter, r *http.Request) {
	var req daysRequest
	h.govUpdate(w, r, "set max days", &req, func(caller common.Address) error {
		return h.gov.SetMaxDays(r.Context(), caller, req.Days)
	})
}

func (h *Handler) handleSetMinSupply(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	h.govUpdate(w, r, "set min supply", &req, func(caller common.Address) error {
		return h.gov.SetMinSupply(r.Context(), caller, req.Value)
	})
}

func (h *Handler) handleSetLocked(w http.ResponseWriter, r *http.Request) {
	var req lockRequest
	h.govUpdate(w, r, "set locked", &req, func(caller common.Address) error {
		return h.gov.SetLocked(r.Context(), caller, req.Locked)
	})
}

func (h *Handler) handleTransferOwnership(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	h.govUpdate(w, r, "transfer ownership", &req, func(caller common.Address) error {
		return h.gov.TransferOwnership(r.Context(), caller, req.Owner)
	})
}

// govUpdate decodes body into req, runs apply for the caller and answers
// with the resulting policy.
func (h *Handler) govUpdate(w http.ResponseWriter, r *http.Request, op string, req any, apply func(caller common.Address) error) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	if !decode(w, r, req) {
		return
	}
	if err := apply(caller); err != nil {
		h.fail(w, r, op, err)
		return
	}
	h.handlePolicy(w, r)
}
