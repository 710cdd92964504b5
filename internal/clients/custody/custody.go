package custody

import (
	"context"
	"net/http"
	"time"

	baseclient "github.com/stakevault/staking-ledger-service/internal/clients/base"
	"github.com/stakevault/staking-ledger-service/internal/config"
	"github.com/stakevault/staking-ledger-service/internal/types"
)

type CustodyClient struct {
	config         *config.CustodyConfig
	defaultHeaders map[string]string
	httpClient     *http.Client
}

func NewCustodyClient(config *config.CustodyConfig) *CustodyClient {
	httpClient := &http.Client{
		Timeout: time.Duration(config.Timeout) * time.Millisecond,
	}
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	return &CustodyClient{
		config,
		headers,
		httpClient,
	}
}

// Necessary for the base client to know the base URL
func (c *CustodyClient) GetBaseURL() string {
	return c.config.Host
}

func (c *CustodyClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *CustodyClient) GetHttpClient() *http.Client {
	return c.httpClient
}

type pullRequest struct {
	From   string `json:"from"`
	Amount uint64 `json:"amount"`
}

type releaseRequest struct {
	To        string `json:"to"`
	Amount    uint64 `json:"amount"`
	Reference string `json:"reference"`
}

type transferResponse struct {
	Ok bool `json:"ok"`
}

type balanceResponse struct {
	Balance uint64 `json:"balance"`
}

// PullInto pulls the requested amount into custody. The custody balance is
// measured before and after the transfer and the delta is what gets
// reported; the ledger credits that delta, not the requested amount.
func (c *CustodyClient) PullInto(ctx context.Context, from string, amount uint64) (uint64, *types.Error) {
	balanceBefore, err := c.Balance(ctx)
	if err != nil {
		return 0, err
	}

	opts := &baseclient.BaseClientOptions{
		Path:    "/transfers/pull",
		Headers: c.defaultHeaders,
	}
	input := &pullRequest{From: from, Amount: amount}
	_, err = baseclient.SendRequest[pullRequest, transferResponse](ctx, c, http.MethodPost, opts, input)
	if err != nil {
		return 0, err
	}

	balanceAfter, err := c.Balance(ctx)
	if err != nil {
		return 0, err
	}

	// Concurrent releases can shrink the custody balance between the two
	// measurements. The unsigned delta would wrap, so a decrease means the
	// received amount cannot be determined and the pull fails.
	if balanceAfter < balanceBefore {
		return 0, types.NewErrorWithMsg(
			http.StatusBadGateway, types.TransferFailed,
			"custody balance decreased during pull, received amount is indeterminate",
		)
	}

	return balanceAfter - balanceBefore, nil
}

func (c *CustodyClient) ReleaseTo(ctx context.Context, to string, amount uint64, reference string) *types.Error {
	opts := &baseclient.BaseClientOptions{
		Path:    "/transfers/release",
		Headers: c.defaultHeaders,
	}
	input := &releaseRequest{To: to, Amount: amount, Reference: reference}
	_, err := baseclient.SendRequest[releaseRequest, transferResponse](ctx, c, http.MethodPost, opts, input)
	if err != nil {
		return err
	}
	return nil
}

func (c *CustodyClient) Balance(ctx context.Context) (uint64, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path:    "/balance",
		Headers: c.defaultHeaders,
	}
	resp, err := baseclient.SendRequest[struct{}, balanceResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return 0, err
	}
	return resp.Balance, nil
}
