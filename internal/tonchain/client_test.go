package tonchain_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/starcoin-app/payment-core/internal/tonchain"
)

const walletAddress = "UQDtFpEwcFAEcRe5mLVh2N6C0x-_hJEM7W61_JLnSF74p4q2"

func newTestClient(handler http.HandlerFunc) (*tonchain.Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := tonchain.NewClient("test-key", server.URL, walletAddress, 5*time.Second)
	return client, server
}

func TestVerifyTransaction_MatchesAmountAndComment(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		fmt.Fprint(w, `{
			"ok": true,
			"result": [
				{
					"transaction_id": {"hash": "0xdead"},
					"in_msg": {"value": "339000000", "message": "SC_tx-other_user-9"},
					"utime": 1748779200
				},
				{
					"transaction_id": {"hash": "0xabc"},
					"in_msg": {"value": "339000000", "message": "SC_tx-1_user-1"},
					"utime": 1748779300
				}
			]
		}`)
	})
	defer server.Close()

	verification, err := client.VerifyTransaction(context.Background(), "tx-1", decimal.NewFromFloat(0.339), "SC_tx-1_user-1")

	assert.NoError(t, err)
	assert.True(t, verification.Matched)
	assert.Equal(t, "0xabc", verification.Hash)
}

func TestVerifyTransaction_RejectsWrongAmount(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"ok": true,
			"result": [
				{
					"transaction_id": {"hash": "0xabc"},
					"in_msg": {"value": "100000000", "message": "SC_tx-1_user-1"},
					"utime": 1748779300
				}
			]
		}`)
	})
	defer server.Close()

	verification, err := client.VerifyTransaction(context.Background(), "tx-1", decimal.NewFromFloat(0.339), "SC_tx-1_user-1")

	assert.NoError(t, err)
	assert.False(t, verification.Matched)
	assert.Equal(t, "no matching transfer found", verification.Message)
}

func TestVerifyTransaction_APIError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok": false, "error": "rate limit exceeded"}`)
	})
	defer server.Close()

	verification, err := client.VerifyTransaction(context.Background(), "tx-1", decimal.NewFromFloat(0.339), "SC_tx-1_user-1")

	assert.Nil(t, verification)
	assert.ErrorContains(t, err, "rate limit exceeded")
}

func TestVerifyTransaction_HTTPError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})
	defer server.Close()

	verification, err := client.VerifyTransaction(context.Background(), "tx-1", decimal.NewFromFloat(0.339), "SC_tx-1_user-1")

	assert.Nil(t, verification)
	assert.ErrorContains(t, err, "502")
}

func TestVerifyTransaction_SimulationMode(t *testing.T) {
	client := tonchain.NewClient("", "", walletAddress, time.Second)

	verification, err := client.VerifyTransaction(context.Background(), "tx-1", decimal.NewFromFloat(0.339), "SC_tx-1_user-1")

	assert.NoError(t, err)
	assert.False(t, verification.Matched)
	assert.Contains(t, verification.Message, "simulation mode")
}

func TestGetBalance(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok": true, "result": "12500000000"}`)
	})
	defer server.Close()

	balance, err := client.GetBalance(context.Background(), walletAddress)

	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromFloat(12.5)), "got %s", balance)
}

func TestBuildPaymentLink(t *testing.T) {
	client := tonchain.NewClient("", "", walletAddress, time.Second)

	link := client.BuildPaymentLink(walletAddress, decimal.NewFromFloat(0.339), "SC_tx-1_user-1")

	assert.Equal(t, "ton://transfer/"+walletAddress+"?amount=339000000&text=SC_tx-1_user-1", link)
}

func TestBuildPaymentLink_NoComment(t *testing.T) {
	client := tonchain.NewClient("", "", walletAddress, time.Second)

	link := client.BuildPaymentLink(walletAddress, decimal.NewFromInt(1), "")

	assert.Equal(t, "ton://transfer/"+walletAddress+"?amount=1000000000", link)
}

func TestIsValidAddress(t *testing.T) {
	client := tonchain.NewClient("", "", walletAddress, time.Second)

	tests := []struct {
		address string
		valid   bool
	}{
		{"0:83dfd552e63729b472fcbcc8c45ebcc6691702558b68ec7527e1ba403a0f31a8", true},
		{"-1:83dfd552e63729b472fcbcc8c45ebcc6691702558b68ec7527e1ba403a0f31a8", true},
		{walletAddress, true},
		{"0:83dfd552e63729b472fcbcc8c45ebcc6691702558b68ec7527e1ba403a0f31", false},
		{"not-an-address", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, client.IsValidAddress(tt.address), "address=%q", tt.address)
	}
}
