package tonchain

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// nanoPerTON converts between TON and the nanoton amounts the chain reports.
var nanoPerTON = decimal.New(1, 9)

// Client wraps a toncenter-style HTTP API for transaction lookups and
// balance queries. If APIKey is empty the client runs in simulation mode and
// never confirms a transfer, which keeps local development offline.
type Client struct {
	APIKey        string
	BaseURL       string
	WalletAddress string
	httpClient    *http.Client
}

// NewClient creates a TON chain client. The wallet address is the receiving
// account whose inbound transfers are scanned during verification.
func NewClient(apiKey, baseURL, walletAddress string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://toncenter.com/api/v2"
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		APIKey:        apiKey,
		BaseURL:       strings.TrimRight(baseURL, "/"),
		WalletAddress: walletAddress,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// Verification is the outcome of a chain lookup. Matched is true only when an
// inbound transfer carries both the expected amount and the expected comment.
type Verification struct {
	Matched bool
	Hash    string
	Message string
}

// tonTransaction is the shape of one entry in getTransactions.
type tonTransaction struct {
	TransactionID struct {
		Hash string `json:"hash"`
	} `json:"transaction_id"`
	InMsg struct {
		Value   string `json:"value"`
		Message string `json:"message"`
	} `json:"in_msg"`
	Utime int64 `json:"utime"`
}

type apiEnvelope struct {
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error,omitempty"`
}

// VerifyTransaction scans recent inbound transfers on the configured wallet
// for one matching the expected amount and comment. The reference is used for
// logging only; the comment is the authoritative binding.
func (c *Client) VerifyTransaction(ctx context.Context, reference string, amount decimal.Decimal, expectedComment string) (*Verification, error) {
	if c.APIKey == "" {
		logrus.Debugf("[tonchain][sim] VerifyTransaction ref=%s comment=%s", reference, expectedComment)
		return &Verification{Matched: false, Message: "simulation mode: no chain access"}, nil
	}

	endpoint := fmt.Sprintf("%s/getTransactions?address=%s&limit=50", c.BaseURL, url.QueryEscape(c.WalletAddress))
	var txs []tonTransaction
	if err := c.doGet(ctx, endpoint, &txs); err != nil {
		return nil, fmt.Errorf("tonchain VerifyTransaction %s: %w", reference, err)
	}

	wantNano := amount.Mul(nanoPerTON)
	for _, tx := range txs {
		if tx.InMsg.Message != expectedComment {
			continue
		}
		gotNano, err := decimal.NewFromString(tx.InMsg.Value)
		if err != nil {
			continue
		}
		if gotNano.Equal(wantNano) {
			return &Verification{Matched: true, Hash: tx.TransactionID.Hash}, nil
		}
	}

	return &Verification{Matched: false, Message: "no matching transfer found"}, nil
}

// GetBalance retrieves the wallet balance in TON.
func (c *Client) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	if c.APIKey == "" {
		logrus.Debugf("[tonchain][sim] GetBalance addr=%s", address)
		return decimal.Zero, nil
	}

	endpoint := fmt.Sprintf("%s/getAddressBalance?address=%s", c.BaseURL, url.QueryEscape(address))
	var nano string
	if err := c.doGet(ctx, endpoint, &nano); err != nil {
		return decimal.Zero, fmt.Errorf("tonchain GetBalance %s: %w", address, err)
	}

	balance, err := decimal.NewFromString(nano)
	if err != nil {
		return decimal.Zero, fmt.Errorf("tonchain GetBalance %s: bad balance %q", address, nano)
	}
	return balance.Div(nanoPerTON), nil
}

// BuildPaymentLink returns a ton://transfer deeplink carrying the amount in
// nanotons and the comment that later authenticates the transfer.
func (c *Client) BuildPaymentLink(address string, amount decimal.Decimal, comment string) string {
	link := fmt.Sprintf("ton://transfer/%s?amount=%s", address, amount.Mul(nanoPerTON).String())
	if comment != "" {
		link += "&text=" + url.QueryEscape(comment)
	}
	return link
}

var rawAddressPattern = regexp.MustCompile(`^-?\d+:[0-9a-fA-F]{64}$`)

// IsValidAddress accepts the raw workchain:hex form and the 48-character
// user-friendly base64 form.
func (c *Client) IsValidAddress(address string) bool {
	if rawAddressPattern.MatchString(address) {
		return true
	}
	if len(address) != 48 {
		return false
	}
	if _, err := base64.URLEncoding.DecodeString(address); err == nil {
		return true
	}
	_, err := base64.StdEncoding.DecodeString(address)
	return err == nil
}

func (c *Client) doGet(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("tonchain HTTP %d: %s", resp.StatusCode, string(body))
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}
	if !envelope.OK {
		return fmt.Errorf("tonchain API error: %s", envelope.Error)
	}
	if out != nil {
		return json.Unmarshal(envelope.Result, out)
	}
	return nil
}
