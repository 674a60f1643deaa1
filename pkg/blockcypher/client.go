package blockcypher

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Client fetches wallets and transactions from the BlockCypher API. It holds
// no mutable state between calls and is safe for concurrent use; every fetch
// is an independent round trip with no retries and no caching.
type Client struct {
	rest    *resty.Client
	baseURL string
	txLimit int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTransactionLimit overrides the per-wallet transaction page cap.
func WithTransactionLimit(limit int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.txLimit = limit
		}
	}
}

// WithHTTPClient substitutes the underlying HTTP transport. Timeouts and
// cancellation are the transport's and the caller context's concern.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.rest = resty.NewWithClient(hc)
	}
}

// NewClient creates a Client against the public API with the default
// transaction limit, adjustable through options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		txLimit: DefaultTransactionLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rest == nil {
		c.rest = resty.New()
	}
	c.rest.SetHeader("Accept", "application/json")
	return c
}

// FetchWallet retrieves the full wallet snapshot for an address on the given
// chain. The address is passed through opaquely; whether it exists is the
// server's call. Failures resolve to a *Error whose kind is ErrURLGeneration
// or ErrWalletNotFound.
func (c *Client) FetchWallet(ctx context.Context, address string, currency Currency) (*Wallet, error) {
	u, err := WalletURL(c.baseURL, currency, address, c.txLimit)
	if err != nil {
		return nil, &Error{Kind: ErrURLGeneration, Cause: err}
	}

	body, status, err := c.get(ctx, u.String())
	if err != nil {
		return nil, &Error{Kind: ErrWalletNotFound, StatusCode: status, Cause: err}
	}

	var wallet Wallet
	if err := decode(body, &wallet, (*Wallet).Validate); err != nil {
		return nil, &Error{Kind: ErrWalletNotFound, StatusCode: status, Cause: err}
	}
	return &wallet, nil
}

// FetchTransaction retrieves one transaction by hash on the given chain.
// Failures resolve to a *Error whose kind is ErrURLGeneration or
// ErrTransactionNotFound.
func (c *Client) FetchTransaction(ctx context.Context, hash string, currency Currency) (*Transaction, error) {
	u, err := TransactionURL(c.baseURL, currency, hash)
	if err != nil {
		return nil, &Error{Kind: ErrURLGeneration, Cause: err}
	}

	body, status, err := c.get(ctx, u.String())
	if err != nil {
		return nil, &Error{Kind: ErrTransactionNotFound, StatusCode: status, Cause: err}
	}

	var tx Transaction
	if err := decode(body, &tx, (*Transaction).Validate); err != nil {
		return nil, &Error{Kind: ErrTransactionNotFound, StatusCode: status, Cause: err}
	}
	return &tx, nil
}

// get performs one HTTP GET and returns the response body. A transport error,
// an HTTP error status or an empty body all come back as an error alongside
// whatever status code was observed.
func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	resp, err := c.rest.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, 0, err
	}
	if resp.IsError() {
		return nil, resp.StatusCode(), errHTTPStatus(resp.Status())
	}
	body := resp.Body()
	if len(body) == 0 {
		return nil, resp.StatusCode(), errEmptyBody
	}
	return body, resp.StatusCode(), nil
}

// decode unmarshals a response body into the target schema and runs its
// required-field validation, so a document missing its identity field fails
// here rather than producing a partially populated value.
func decode[T any](body []byte, target *T, validate func(*T) error) error {
	if err := json.Unmarshal(body, target); err != nil {
		return err
	}
	return validate(target)
}
