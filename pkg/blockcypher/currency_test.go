package blockcypher_test

import (
	"errors"
	"testing"

	"blockexplorer/pkg/blockcypher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input string
		want  blockcypher.Currency
	}{
		{"bitcoin", blockcypher.Bitcoin},
		{"litecoin", blockcypher.Litecoin},
		{"dogecoin", blockcypher.Dogecoin},
		{"dash", blockcypher.Dash},
		{"Bitcoin", blockcypher.Bitcoin},
		{"  DASH  ", blockcypher.Dash},
	}

	for _, tc := range tests {
		got, err := blockcypher.ParseCurrency(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseCurrency_Unsupported(t *testing.T) {
	for _, input := range []string{"", "ethereum", "btc", "monero"} {
		_, err := blockcypher.ParseCurrency(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, blockcypher.ErrUnsupportedCurrency))
	}
}

func TestCurrency_Symbols(t *testing.T) {
	wantSymbols := map[blockcypher.Currency]string{
		blockcypher.Bitcoin:  "BTC",
		blockcypher.Litecoin: "LTC",
		blockcypher.Dogecoin: "DOGE",
		blockcypher.Dash:     "DASH",
	}

	currencies := blockcypher.Currencies()
	assert.Len(t, currencies, len(wantSymbols))

	for _, c := range currencies {
		assert.True(t, c.Valid())
		assert.Equal(t, wantSymbols[c], c.Symbol())
	}
}

func TestCurrency_PathSymbol(t *testing.T) {
	assert.Equal(t, "btc", blockcypher.Bitcoin.PathSymbol())
	assert.Equal(t, "doge", blockcypher.Dogecoin.PathSymbol())
}
