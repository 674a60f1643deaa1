// Package blockcypher implements a minimal client for the BlockCypher
// blockchain data API: wallet, transaction, and output lookups for the
// supported currencies.
package blockcypher

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedCurrency indicates that a string does not name one of the supported currencies.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Currency identifies one of the blockchains the API exposes.
type Currency string

// The closed set of supported currencies.
const (
	Bitcoin  Currency = "bitcoin"
	Litecoin Currency = "litecoin"
	Dogecoin Currency = "dogecoin"
	Dash     Currency = "dash"
)

// Currencies returns all supported currencies in a stable order.
func Currencies() []Currency {
	return []Currency{Bitcoin, Litecoin, Dogecoin, Dash}
}

// ParseCurrency converts a string to a Currency.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(strings.ToLower(strings.TrimSpace(s))) {
	case Bitcoin:
		return Bitcoin, nil
	case Litecoin:
		return Litecoin, nil
	case Dogecoin:
		return Dogecoin, nil
	case Dash:
		return Dash, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
}

// Symbol returns the ticker symbol the API uses for the currency.
func (c Currency) Symbol() string {
	switch c {
	case Bitcoin:
		return "BTC"
	case Litecoin:
		return "LTC"
	case Dogecoin:
		return "DOGE"
	case Dash:
		return "DASH"
	default:
		return ""
	}
}

// PathSymbol returns the lower-cased symbol used in API URL paths.
func (c Currency) PathSymbol() string {
	return strings.ToLower(c.Symbol())
}

// String returns the string representation of the currency.
func (c Currency) String() string {
	return string(c)
}

// Valid reports whether the currency is one of the supported set.
func (c Currency) Valid() bool {
	_, err := ParseCurrency(string(c))
	return err == nil
}
