package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/holiman/uint256"
)

// handleLaunch opens a campaign for the calling developer. The body's value
// is the native payment attached to the launch.
func (h *Handler) handleLaunch(w http.ResponseWriter, r *http.Request) {
	developer, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req launchRequest
	if !decode(w, r, &req) {
		return
	}
	id, err := h.svc.Launch(r.Context(), req.toPort(developer))
	if err != nil {
		h.fail(w, r, "launch", err)
		return
	}
	w.Header().Set("Location", "/api/v1/campaigns/"+strconv.FormatInt(id, 10))
	h.writeJSON(w, http.StatusCreated, map[string]int64{"campaign_id": id})
}

func (h *Handler) handleCampaignCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CampaignCount(r.Context())
	if err != nil {
		h.fail(w, r, "campaign count", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"count": n})
}

func (h *Handler) handleCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Campaign(r.Context(), id)
	if err != nil {
		h.fail(w, r, "campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c))
}

func (h *Handler) handlePrice(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	price, err := h.svc.PriceForUnit(r.Context(), id)
	if err != nil {
		h.fail(w, r, "price", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]*uint256.Int{"price_per_unit": price})
}

func (h *Handler) handleCredit(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	account := chi.URLParam(r, "account")
	if !common.IsHexAddress(account) {
		writeProblem(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid account")
		return
	}
	e, err := h.svc.CreditOf(r.Context(), id, common.HexToAddress(account))
	if err != nil {
		h.fail(w, r, "credit", err)
		return
	}
	h.writeJSON(w, http.StatusOK, creditResponse{
		Account:    e.Account,
		CampaignID: e.CampaignID,
		Units:      e.Units,
		Paid:       e.Paid,
		Withdrawn:  e.Withdrawn,
	})
}

func (h *Handler) handlePurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	payer, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req valueRequest
	if !decode(w, r, &req) {
		return
	}
	units, err := h.svc.Purchase(r.Context(), id, payer, req.Value)
	if err != nil {
		h.fail(w, r, "purchase", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]*uint256.Int{"units": units})
}

func (h *Handler) handleSettle(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	outcome, err := h.svc.Settle(r.Context(), id, caller)
	if err != nil {
		h.fail(w, r, "settle", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"outcome": string(outcome)})
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	account, ok := h.caller(w, r)
	if !ok {
		return
	}
	payout, err := h.svc.Withdraw(r.Context(), id, account)
	if err != nil {
		h.fail(w, r, "withdraw", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newPayoutResponse(payout))
}

func (h *Handler) handleRetrieve(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	units, err := h.svc.RetrieveAdditionalTokens(r.Context(), id, caller)
	if err != nil {
		h.fail(w, r, "retrieve", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]*uint256.Int{"units": units})
}

// handleEstimateFee answers GET /fees/estimate?supply=N.
func (h *Handler) handleEstimateFee(w http.ResponseWriter, r *http.Request) {
	supply, err := uint256.FromDecimal(r.URL.Query().Get("supply"))
	if err != nil || r.URL.Query().Get("supply") == "" {
		writeProblem(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid supply")
		return
	}
	fee, err := h.svc.EstimateProtocolFee(r.Context(), supply)
	if err != nil {
		h.fail(w, r, "estimate fee", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]*uint256.Int{"fee": fee})
}
