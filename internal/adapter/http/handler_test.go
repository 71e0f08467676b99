package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad/internal/adapter/memory"
	"launchpad/internal/adapter/usecase"
	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

var (
	owner     = common.HexToAddress("0x00000000000000000000000000000000000000a0")
	escrow    = common.HexToAddress("0x00000000000000000000000000000000000000e5")
	developer = common.HexToAddress("0x00000000000000000000000000000000000000d1")
	buyer     = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	asset     = common.HexToAddress("0x0000000000000000000000000000000000000a55")
)

type testServer struct {
	t   *testing.T
	srv *httptest.Server

	mu  sync.Mutex
	now time.Time
}

func (ts *testServer) clock() time.Time {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.now
}

func (ts *testServer) advance(d time.Duration) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.now = ts.now.Add(d)
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{t: t, now: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}
	clock := ts.clock
	ctx := context.Background()

	store := memory.NewStore(clock)
	require.NoError(t, store.InitPolicy(ctx, domain.DefaultPolicy(owner)))
	assets, bank := memory.NewAssetLedger(), memory.NewBank()
	require.NoError(t, assets.Mint(asset, developer, domain.Units(5000)))
	assets.Approve(asset, developer, escrow, domain.Units(5000))
	require.NoError(t, bank.Deposit(developer, uint256.NewInt(1_000_000_000_000_000_000)))
	require.NoError(t, bank.Deposit(buyer, uint256.NewInt(1_000_000_000)))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := usecase.Deps{
		Store:  store,
		Assets: assets,
		Bank:   bank,
		Escrow: escrow,
		Logger: logger,
		Now:    clock,
	}
	h := NewHandler(usecase.NewLaunchpadUseCase(deps), usecase.NewGovernanceUseCase(deps), logger, 5*time.Second)
	ts.srv = httptest.NewServer(h.Router())
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testServer) do(method, path string, account common.Address, body string) (int, map[string]any) {
	ts.t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, rdr)
	require.NoError(ts.t, err)
	if account != (common.Address{}) {
		req.Header.Set(AccountHeader, account.Hex())
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(ts.t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(ts.t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(ts.t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

const launchBody = `{
  "duration_days": 10,
  "milestone": "100",
  "price_per_unit": "1000",
  "supply": "1000",
  "asset": "0x0000000000000000000000000000000000000a55",
  "value": "100000000000000000"
}`

func TestCampaignLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(http.MethodPost, "/api/v1/campaigns", developer, launchBody)
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, float64(1), body["campaign_id"])

	status, body = ts.do(http.MethodGet, "/api/v1/campaigns/count", common.Address{}, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = ts.do(http.MethodGet, "/api/v1/campaigns/1/price", common.Address{}, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1000", body["price_per_unit"])

	status, body = ts.do(http.MethodPost, "/api/v1/campaigns/1/purchase", buyer, `{"value":"150000"}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "150", body["units"])

	status, body = ts.do(http.MethodPost, "/api/v1/campaigns/1/settle", buyer, "")
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "NOT_YET_CLOSED", body["code"])

	ts.advance(11 * 24 * time.Hour)
	status, body = ts.do(http.MethodPost, "/api/v1/campaigns/1/settle", buyer, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "distribute", body["outcome"])

	status, body = ts.do(http.MethodPost, "/api/v1/campaigns/1/withdraw", buyer, "")
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "asset", body["kind"])
	assert.Equal(t, "150", body["amount"])

	status, body = ts.do(http.MethodPost, "/api/v1/campaigns/1/withdraw", developer, "")
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "native", body["kind"])
	assert.Equal(t, "150000", body["amount"])
	assert.NotContains(t, body, "asset")

	status, body = ts.do(http.MethodPost, "/api/v1/campaigns/1/retrieve", developer, "")
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "850", body["units"])

	status, body = ts.do(http.MethodGet, "/api/v1/campaigns/1/credits/"+buyer.Hex(), common.Address{}, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["withdrawn"])
	assert.Equal(t, "0", body["units"])

	status, body = ts.do(http.MethodGet, "/api/v1/campaigns/1", common.Address{}, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "distribute", body["outcome"])
	assert.Equal(t, "150", body["sold"])
	assert.Equal(t, true, body["developer_paid"])
	assert.Equal(t, true, body["retrieved"])
}

func TestErrorStatuses(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(http.MethodGet, "/api/v1/campaigns/9", common.Address{}, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "CAMPAIGN_NOT_FOUND", body["code"])

	status, _ = ts.do(http.MethodGet, "/api/v1/campaigns/abc", common.Address{}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = ts.do(http.MethodPost, "/api/v1/campaigns", common.Address{}, launchBody)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_ARGUMENT", body["code"])

	status, _ = ts.do(http.MethodPost, "/api/v1/campaigns", developer, `{"supply": 1`)
	assert.Equal(t, http.StatusBadRequest, status)

	cheap := strings.Replace(launchBody, `"100000000000000000"`, `"1"`, 1)
	status, body = ts.do(http.MethodPost, "/api/v1/campaigns", developer, cheap)
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "INSUFFICIENT_FEE", body["code"])

	status, _ = ts.do(http.MethodPost, "/api/v1/campaigns", developer, launchBody)
	require.Equal(t, http.StatusCreated, status)

	status, body = ts.do(http.MethodPost, "/api/v1/campaigns/1/purchase", developer, `{"value":"1000"}`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "SELF_PURCHASE", body["code"])

	status, body = ts.do(http.MethodDelete, "/api/v1/admin/campaigns/1", buyer, "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "NOT_OWNER", body["code"])

	status, _ = ts.do(http.MethodDelete, "/api/v1/admin/campaigns/1", owner, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, body = ts.do(http.MethodPost, "/api/v1/campaigns/1/purchase", buyer, `{"value":"1000"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "SOLD_OUT", body["code"])
}

func TestGovernanceOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(http.MethodGet, "/api/v1/fees/estimate?supply=10000", common.Address{}, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1000000000000000000", body["fee"])

	status, _ = ts.do(http.MethodGet, "/api/v1/fees/estimate?supply=-5", common.Address{}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = ts.do(http.MethodPut, "/api/v1/admin/policy/min-days", owner, `{"days": 3}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, float64(3), body["min_days"])

	status, body = ts.do(http.MethodPut, "/api/v1/admin/policy/max-days", owner, `{"days": 2}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BOUNDS", body["code"])

	status, body = ts.do(http.MethodPut, "/api/v1/admin/policy/lock", owner, `{"locked": true}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["locked"])

	status, body = ts.do(http.MethodPost, "/api/v1/campaigns", developer, launchBody)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONTRACT_LOCKED", body["code"])

	status, body = ts.do(http.MethodPost, "/api/v1/admin/fees/withdraw", owner, "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "NOTHING_TO_WITHDRAW", body["code"])

	status, body = ts.do(http.MethodPut, "/api/v1/admin/policy/owner", owner, `{"owner":"`+buyer.Hex()+`"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, buyer, common.HexToAddress(body["owner"].(string)))

	status, _ = ts.do(http.MethodPut, "/api/v1/admin/policy/fee-rate", owner, `{"value":"1"}`)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusOf(domain.CodeCampaignNotFound))
	assert.Equal(t, http.StatusBadGateway, statusOf(domain.CodeTransferFailed))
	assert.Equal(t, http.StatusConflict, statusOf(domain.CodeAlreadyLaunched))
	assert.Equal(t, http.StatusPaymentRequired, statusOf(domain.CodeInsufficientAllowance))
	assert.Equal(t, http.StatusInternalServerError, statusOf(domain.CodeUnknown))
}

// stalledLaunchpad blocks CampaignCount until the request context ends, like
// a store waiting for a connection that never frees up.
type stalledLaunchpad struct {
	port.LaunchpadUseCase
}

func (stalledLaunchpad) CampaignCount(ctx context.Context) (int64, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

func TestRequestTimeout(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(stalledLaunchpad{}, nil, logger, 50*time.Millisecond)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/api/v1/campaigns/count")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)

	var p problem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, codeTimeout, p.Code)
}
