package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"auxite/internal/controllers"
)

func newChainController(t *testing.T, handler http.HandlerFunc) *controllers.ChainController {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()

	return controllers.NewChainController(
		controllers.NewClientController(srv.Client(), "test-api-key", logger),
		controllers.NewCryptoController("test-secret"),
		srv.URL,
		logger,
	)
}

func Test_ChainController_GetBalance(t *testing.T) {
	t.Run("signed balance read", func(t *testing.T) {
		chain := newChainController(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/balance", r.URL.Path)
			assert.Equal(t, "test-api-key", r.Header.Get("X-AUX-APIKEY"))

			q := r.URL.Query()
			assert.Equal(t, "0xaaa", q.Get("owner"))
			assert.Equal(t, "USDC", q.Get("asset"))
			assert.NotEmpty(t, q.Get("timestamp"))
			assert.NotEmpty(t, q.Get("signature"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"owner":"0xaaa","asset":"USDC","balance":"1250.75"}`))
		})

		bal, err := chain.GetBalance("0xaaa", "USDC")

		assert.NoError(t, err)
		assert.True(t, bal.Equal(decimal.RequireFromString("1250.75")))
	})

	t.Run("unknown account", func(t *testing.T) {
		chain := newChainController(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":4004,"msg":"unknown account"}`))
		})

		_, err := chain.GetBalance("0xdead", "USDC")

		assert.ErrorIs(t, err, controllers.ErrLedgerUnknownAccount)
	})
}

func Test_ChainController_Transfer(t *testing.T) {
	t.Run("transfer returns the tx hash", func(t *testing.T) {
		chain := newChainController(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/transfer", r.URL.Path)

			q := r.URL.Query()
			assert.Equal(t, "treasury", q.Get("from"))
			assert.Equal(t, "0xaaa", q.Get("to"))
			assert.Equal(t, "AUXG", q.Get("asset"))
			assert.Equal(t, "10", q.Get("amount"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"txHash":"0x630e26f39d6728d0e7feffb9"}`))
		})

		ref, err := chain.Transfer("treasury", "0xaaa", "AUXG", decimal.RequireFromString("10"))

		assert.NoError(t, err)
		assert.Equal(t, "0x630e26f39d6728d0e7feffb9", ref)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		chain := newChainController(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"code":4001,"msg":"insufficient funds"}`))
		})

		_, err := chain.Transfer("0xaaa", "treasury", "AUXG", decimal.RequireFromString("10"))

		assert.ErrorIs(t, err, controllers.ErrLedgerInsufficientFunds)
	})
}
