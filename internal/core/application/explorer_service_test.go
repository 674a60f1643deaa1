package application_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"blockexplorer/internal/core/application"
	"blockexplorer/internal/core/application/mocks/mock_client"
	"blockexplorer/internal/core/application/mocks/mock_repository"
	"blockexplorer/internal/core/domain"
	applogger "blockexplorer/internal/logger"
	"blockexplorer/pkg/blockcypher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eaterAddress = "1BitcoinEaterAddressDontSendf59kuE"

func testWalletSnapshot() *blockcypher.Wallet {
	return &blockcypher.Wallet{
		Address: eaterAddress,
		Balance: 1520000,
		TxCount: 1,
		Transactions: []blockcypher.Transaction{
			{
				Hash:          "abcdef0123456789",
				BlockHeight:   512345,
				Total:         1520000,
				Fees:          22000,
				Confirmations: 123,
				Confidence:    100,
				Confirmed:     blockcypher.NewAPITime(time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)),
				Received:      "2018-01-01T00:00:00.000Z",
			},
		},
	}
}

func TestExplorerService_GetWallet(t *testing.T) {
	service, mockClient, _ := setupService(t)

	ctx := context.Background()
	mockClient.On("FetchWallet", ctx, eaterAddress, blockcypher.Bitcoin).Return(testWalletSnapshot(), nil)

	wallet, err := service.GetWallet(ctx, "bitcoin", eaterAddress)
	require.NoError(t, err)

	assert.Equal(t, eaterAddress, wallet.Address)
	assert.Equal(t, "bitcoin", wallet.Currency)
	assert.Equal(t, int64(1520000), wallet.Balance)
	assert.Equal(t, "0.01520000 BTC", wallet.BalanceDisplay)
	require.Len(t, wallet.Transactions, 1)
	assert.Equal(t, "0.00022000 BTC", wallet.Transactions[0].FeesDisplay)
	assert.Equal(t, "2018-01-01T00:00:00.000Z", wallet.Transactions[0].Confirmed)
}

func TestExplorerService_GetWallet_UnsupportedCurrency(t *testing.T) {
	service, _, _ := setupService(t)

	_, err := service.GetWallet(context.Background(), "ethereum", eaterAddress)
	require.Error(t, err)
	assert.True(t, errors.Is(err, blockcypher.ErrUnsupportedCurrency))
}

func TestExplorerService_GetWallet_FetchError(t *testing.T) {
	service, mockClient, _ := setupService(t)

	ctx := context.Background()
	fetchErr := &blockcypher.Error{Kind: blockcypher.ErrWalletNotFound, StatusCode: 404}
	mockClient.On("FetchWallet", ctx, eaterAddress, blockcypher.Dash).Return(nil, fetchErr)

	_, err := service.GetWallet(ctx, "dash", eaterAddress)
	require.Error(t, err)
	assert.True(t, errors.Is(err, blockcypher.ErrWalletNotFound))
}

func TestExplorerService_GetTransaction(t *testing.T) {
	service, mockClient, _ := setupService(t)

	ctx := context.Background()
	tx := &blockcypher.Transaction{
		Hash:          "deadbeef",
		BlockHeight:   2000000,
		Total:         250000000,
		Fees:          100000,
		Confirmations: 9,
		Confirmed:     blockcypher.NewAPITime(time.Date(2020, 6, 15, 8, 30, 0, 0, time.UTC)),
		Received:      "2020-06-15T08:29:12.1Z",
		Inputs:        []blockcypher.Input{{PrevHash: "1111"}},
		Outputs:       []blockcypher.Output{{Value: 250000000}},
	}
	mockClient.On("FetchTransaction", ctx, "deadbeef", blockcypher.Dogecoin).Return(tx, nil)

	got, err := service.GetTransaction(ctx, "dogecoin", "deadbeef")
	require.NoError(t, err)

	assert.Equal(t, "deadbeef", got.Hash)
	assert.Equal(t, "dogecoin", got.Currency)
	assert.Equal(t, "2.50000000 DOGE", got.TotalDisplay)
	assert.Equal(t, "2020-06-15T08:29:12.1Z", got.Received)
	assert.Equal(t, 1, got.InputCount)
	assert.Equal(t, 1, got.OutputCount)
}

func TestExplorerService_GetTransaction_FetchError(t *testing.T) {
	service, mockClient, _ := setupService(t)

	ctx := context.Background()
	fetchErr := &blockcypher.Error{Kind: blockcypher.ErrTransactionNotFound}
	mockClient.On("FetchTransaction", ctx, "deadbeef", blockcypher.Bitcoin).Return(nil, fetchErr)

	_, err := service.GetTransaction(ctx, "bitcoin", "deadbeef")
	require.Error(t, err)
	assert.True(t, errors.Is(err, blockcypher.ErrTransactionNotFound))
}

func TestExplorerService_Watch(t *testing.T) {
	service, mockClient, mockRepo := setupService(t)

	ctx := context.Background()
	entry, err := domain.NewWatchedWallet(blockcypher.Bitcoin, eaterAddress, "Cold Storage")
	require.NoError(t, err)

	mockClient.On("FetchWallet", ctx, eaterAddress, blockcypher.Bitcoin).Return(testWalletSnapshot(), nil)
	mockRepo.On("Add", ctx, entry).Return(nil)

	wallet, err := service.Watch(ctx, "bitcoin", eaterAddress, "Cold Storage")
	require.NoError(t, err)
	assert.Equal(t, eaterAddress, wallet.Address)
}

func TestExplorerService_Watch_FetchFails_NotAdded(t *testing.T) {
	service, mockClient, mockRepo := setupService(t)

	ctx := context.Background()
	fetchErr := &blockcypher.Error{Kind: blockcypher.ErrWalletNotFound, StatusCode: 404}
	mockClient.On("FetchWallet", ctx, "nosuchaddress", blockcypher.Bitcoin).Return(nil, fetchErr)

	_, err := service.Watch(ctx, "bitcoin", "nosuchaddress", "Exodus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, blockcypher.ErrWalletNotFound))

	mockRepo.AssertNotCalled(t, "Add")
}

func TestExplorerService_Watch_InvalidEntry(t *testing.T) {
	service, _, _ := setupService(t)

	_, err := service.Watch(context.Background(), "bitcoin", "", "Exodus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidWalletAddress))
}

func TestExplorerService_Unwatch(t *testing.T) {
	service, _, mockRepo := setupService(t)

	ctx := context.Background()
	mockRepo.On("Remove", ctx, "litecoin:LTCaddress1").Return(nil)

	assert.NoError(t, service.Unwatch(ctx, "litecoin", "LTCaddress1"))
}

func TestExplorerService_Watchlist(t *testing.T) {
	service, _, mockRepo := setupService(t)

	ctx := context.Background()
	entry, err := domain.NewWatchedWallet(blockcypher.Dash, "DashAddress1", "Trezor")
	require.NoError(t, err)

	mockRepo.On("FindAll", ctx).Return([]domain.WatchedWallet{entry}, nil)

	list, err := service.Watchlist(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "DashAddress1", list[0].Address)
	assert.Equal(t, "dash", list[0].Currency)
	assert.Equal(t, "Trezor", list[0].Name)
}

func TestExplorerService_Watchlist_RepoError(t *testing.T) {
	service, _, mockRepo := setupService(t)

	ctx := context.Background()
	wantErr := errors.New("repo error")
	mockRepo.On("FindAll", ctx).Return(nil, wantErr)

	_, err := service.Watchlist(ctx)
	assert.Error(t, err)
}

func TestExplorerService_Currencies(t *testing.T) {
	service, _, _ := setupService(t)

	infos := service.Currencies(context.Background())
	require.Len(t, infos, 4)
	assert.Equal(t, "bitcoin", infos[0].ID)
	assert.Equal(t, "BTC", infos[0].Symbol)
	assert.Equal(t, "Bitcoin", infos[0].Name)
}

// setupService is a helper building the service over fresh mocks.
func setupService(t *testing.T) (
	*application.ExplorerServiceImpl,
	*mock_client.ExplorerClient,
	*mock_repository.WatchlistRepository,
) {
	t.Helper()
	mockClient := mock_client.NewExplorerClient(t)
	mockRepo := mock_repository.NewWatchlistRepository(t)

	discard := applogger.NewSlogAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	service, err := application.NewExplorerService(mockRepo, mockClient, discard)
	require.NoError(t, err)
	return service, mockClient, mockRepo
}
