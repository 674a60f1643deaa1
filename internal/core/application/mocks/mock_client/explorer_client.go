// Package mock_client provides a testify mock for the client.ExplorerClient interface.
package mock_client

import (
	"context"

	"blockexplorer/pkg/blockcypher"

	"github.com/stretchr/testify/mock"
)

// ExplorerClient is a mock implementation of client.ExplorerClient.
type ExplorerClient struct {
	mock.Mock
}

// testingT is the subset of *testing.T the mock constructor needs.
type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// NewExplorerClient creates a new mock and registers expectation assertions as a test cleanup.
func NewExplorerClient(t testingT) *ExplorerClient {
	m := &ExplorerClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// FetchWallet provides a mock function.
func (m *ExplorerClient) FetchWallet(
	ctx context.Context,
	address string,
	currency blockcypher.Currency,
) (*blockcypher.Wallet, error) {
	args := m.Called(ctx, address, currency)

	var wallet *blockcypher.Wallet
	if args.Get(0) != nil {
		wallet = args.Get(0).(*blockcypher.Wallet)
	}
	return wallet, args.Error(1)
}

// FetchTransaction provides a mock function.
func (m *ExplorerClient) FetchTransaction(
	ctx context.Context,
	hash string,
	currency blockcypher.Currency,
) (*blockcypher.Transaction, error) {
	args := m.Called(ctx, hash, currency)

	var tx *blockcypher.Transaction
	if args.Get(0) != nil {
		tx = args.Get(0).(*blockcypher.Transaction)
	}
	return tx, args.Error(1)
}
