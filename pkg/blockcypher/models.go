package blockcypher

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TimeLayout is the exact shape of the `confirmed` field on the wire.
// Anything else must fail decoding rather than fall back to a zero date.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// ErrMissingField indicates that a required field was absent from a response document.
var ErrMissingField = errors.New("missing required field")

// APITime wraps time.Time with the fixed layout the API uses for confirmation dates.
type APITime struct {
	time.Time
}

// NewAPITime creates an APITime from a time.Time, truncated to the wire precision.
func NewAPITime(t time.Time) APITime {
	return APITime{Time: t.UTC().Truncate(time.Millisecond)}
}

// MarshalJSON encodes the time using the fixed API layout.
func (t APITime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(TimeLayout))
}

// UnmarshalJSON decodes the time, rejecting any value not matching the fixed API layout.
func (t *APITime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("confirmed timestamp is not a string: %w", err)
	}
	parsed, err := time.Parse(TimeLayout, s)
	if err != nil {
		return fmt.Errorf("confirmed timestamp %q does not match layout %s: %w", s, TimeLayout, err)
	}
	t.Time = parsed
	return nil
}

// Wallet is a read-only snapshot of one address's on-chain state at fetch time.
// All amounts are integers in the smallest currency unit.
type Wallet struct {
	Address            string        `json:"address"`
	TotalReceived      int64         `json:"total_received"`
	TotalSent          int64         `json:"total_sent"`
	Balance            int64         `json:"balance"`
	UnconfirmedBalance int64         `json:"unconfirmed_balance"`
	FinalBalance       int64         `json:"final_balance"`
	TxCount            int           `json:"n_tx"`
	UnconfirmedTxCount int           `json:"unconfirmed_n_tx"`
	FinalTxCount       int           `json:"final_n_tx"`
	Transactions       []Transaction `json:"txs"`
}

// Validate checks that the wallet document carries its identity field and
// that every embedded transaction is itself valid.
func (w *Wallet) Validate() error {
	if w.Address == "" {
		return fmt.Errorf("%w: address", ErrMissingField)
	}
	for i := range w.Transactions {
		if err := w.Transactions[i].Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	return nil
}

// Transaction is one blockchain transaction with its inputs and outputs.
type Transaction struct {
	BlockHash     string   `json:"block_hash"`
	BlockHeight   int64    `json:"block_height"`
	BlockIndex    int      `json:"block_index"`
	Hash          string   `json:"hash"`
	Addresses     []string `json:"addresses"`
	Total         int64    `json:"total"`
	Fees          int64    `json:"fees"`
	Size          int      `json:"size"`
	Preference    string   `json:"preference"`
	RelayedBy     *string  `json:"relayed_by,omitempty"`
	Confirmed     APITime  `json:"confirmed"`
	Received      string   `json:"received"`
	Ver           int      `json:"ver"`
	DoubleSpend   bool     `json:"double_spend"`
	VinSize       int      `json:"vin_sz"`
	VoutSize      int      `json:"vout_sz"`
	Confirmations int64    `json:"confirmations"`
	Confidence    int      `json:"confidence"`
	Inputs        []Input  `json:"inputs"`
	Outputs       []Output `json:"outputs"`
}

// Validate checks that the transaction document carries its identity field.
// vin_sz/vout_sz are upstream advertisements and may disagree with the actual
// input/output counts; such documents are accepted as-is.
func (t *Transaction) Validate() error {
	if t.Hash == "" {
		return fmt.Errorf("%w: hash", ErrMissingField)
	}
	return nil
}

// CountsConsistent reports whether vin_sz/vout_sz agree with the embedded
// input/output slices. A false result is diagnostic, never an error.
func (t *Transaction) CountsConsistent() bool {
	return t.VinSize == len(t.Inputs) && t.VoutSize == len(t.Outputs)
}

// Input is one transaction input.
type Input struct {
	PrevHash    string   `json:"prev_hash"`
	OutputIndex int      `json:"output_index"`
	OutputValue int64    `json:"output_value"`
	ScriptType  string   `json:"script_type"`
	Script      string   `json:"script"`
	Addresses   []string `json:"addresses"`
	Sequence    int64    `json:"sequence"`
	Age         int64    `json:"age"`
	WalletName  *string  `json:"wallet_name,omitempty"`
	WalletToken *string  `json:"wallet_token,omitempty"`
}

// Output is one transaction output. DataHex and DataString are only present
// for null-data outputs.
type Output struct {
	Value      int64    `json:"value"`
	Script     string   `json:"script"`
	Addresses  []string `json:"addresses"`
	ScriptType string   `json:"script_type"`
	SpentBy    *string  `json:"spent_by,omitempty"`
	DataHex    *string  `json:"data_hex,omitempty"`
	DataString *string  `json:"data_string,omitempty"`
}
