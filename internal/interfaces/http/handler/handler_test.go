package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	donationapp "github.com/Odalissj/OperacionPollitoPF/internal/application/donation"
	inventoryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/inventory"
	salesapp "github.com/Odalissj/OperacionPollitoPF/internal/application/sales"
	treasuryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/treasury"
	"github.com/Odalissj/OperacionPollitoPF/internal/interfaces/http/handler"
	"github.com/Odalissj/OperacionPollitoPF/internal/interfaces/http/middleware"
	"github.com/Odalissj/OperacionPollitoPF/internal/interfaces/http/router"
	"github.com/Odalissj/OperacionPollitoPF/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestServer wires every handler over an in-memory store, the same way
// the server entrypoint wires them over postgres.
func newTestServer(t *testing.T, store *testutil.MemoryStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()

	scope := testutil.NewScope(store)

	ledger := treasuryapp.NewCashLedgerService(
		testutil.TreasuryScope{Scope: scope},
		store.BalanceRepo(), store.EntryRepo(), store.TypeRepo(), nil, nil,
	)
	allocations := inventoryapp.NewAllocationService(
		testutil.InventoryScope{Scope: scope},
		store.GeneralRepo(), store.HoldingRepo(), nil, nil,
	)
	saleSvc := salesapp.NewSaleService(
		testutil.SalesScope{Scope: scope},
		store.SaleRepo(), store.TypeRepo(), nil, decimal.Zero, nil,
	)
	donationSvc := donationapp.NewDonationService(
		testutil.DonationScope{Scope: scope},
		store.DonationRepo(), store.TypeRepo(), nil, nil,
	)

	engine := gin.New()
	engine.Use(middleware.RequestID())

	router.NewRouter(engine).
		Register(handler.NewCajaHandler(ledger)).
		Register(handler.NewInventarioHandler(allocations)).
		Register(handler.NewVentaHandler(saleSvc)).
		Register(handler.NewDonacionHandler(donationSvc)).
		Register(handler.NewSystemHandler(nil, "test")).
		Setup()

	return engine
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 && json.Valid(w.Body.Bytes()) {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NotNil(t, env.Data)
	require.NoError(t, json.Unmarshal(env.Data, out))
}
