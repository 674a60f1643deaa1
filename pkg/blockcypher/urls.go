package blockcypher

import (
	"errors"
	"fmt"
	"net/url"
)

// Defaults for endpoint construction.
const (
	DefaultBaseURL          = "https://api.blockcypher.com"
	DefaultTransactionLimit = 50
)

// ErrURLGeneration indicates that an address or hash could not be combined
// with a currency into a valid request URL. It is detected before any network
// call is made.
var ErrURLGeneration = errors.New("could not build a valid request url")

// WalletURL builds the full-wallet endpoint for an address:
// <base>/v1/<symbol>/main/addrs/<address>/full?limit=<limit>.
// The address is caller-supplied and opaque; no checksum or format validation
// happens here, only URL well-formedness.
func WalletURL(baseURL string, currency Currency, address string, limit int) (*url.URL, error) {
	raw := fmt.Sprintf("%s/v1/%s/main/addrs/%s/full?limit=%d", baseURL, currency.PathSymbol(), address, limit)
	return parseEndpoint(raw)
}

// TransactionURL builds the transaction endpoint for a hash:
// <base>/v1/<symbol>/main/txs/<hash>.
func TransactionURL(baseURL string, currency Currency, hash string) (*url.URL, error) {
	raw := fmt.Sprintf("%s/v1/%s/main/txs/%s", baseURL, currency.PathSymbol(), hash)
	return parseEndpoint(raw)
}

// parseEndpoint parses a composed endpoint string and rejects anything that
// does not form an absolute URL.
func parseEndpoint(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrURLGeneration, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute url", ErrURLGeneration, raw)
	}
	return u, nil
}
