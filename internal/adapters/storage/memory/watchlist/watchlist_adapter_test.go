package watchlist_test

import (
	"context"
	"testing"

	"blockexplorer/internal/adapters/storage/memory/watchlist"
	"blockexplorer/internal/core/domain"
	"blockexplorer/pkg/blockcypher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryWatchlistRepo_AddExistsFindAllRemove(t *testing.T) {
	repo := watchlist.NewInMemoryWatchlistRepo()
	ctx := context.Background()

	w1, err := domain.NewWatchedWallet(blockcypher.Bitcoin, "1BitcoinEaterAddressDontSendf59kuE", "Cold Storage")
	require.NoError(t, err)
	w2, err := domain.NewWatchedWallet(blockcypher.Dogecoin, "DDogepartyxxxxxxxxxxxxxxxxxxw1dfzr", "Exodus")
	require.NoError(t, err)

	initial, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, initial)

	exists, err := repo.Exists(ctx, w1.Key())
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Add(ctx, w1))

	exists, err = repo.Exists(ctx, w1.Key())
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Add(ctx, w2))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.ElementsMatch(t, []domain.WatchedWallet{w1, w2}, all)

	require.NoError(t, repo.Remove(ctx, w1.Key()))

	exists, err = repo.Exists(ctx, w1.Key())
	require.NoError(t, err)
	assert.False(t, exists)

	remaining, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, w2, remaining[0])
}

func TestInMemoryWatchlistRepo_AddReplacesName(t *testing.T) {
	repo := watchlist.NewInMemoryWatchlistRepo()
	ctx := context.Background()

	first, err := domain.NewWatchedWallet(blockcypher.Litecoin, "LTCaddress1", "Ledger Nano")
	require.NoError(t, err)
	renamed, err := domain.NewWatchedWallet(blockcypher.Litecoin, "LTCaddress1", "Trezor")
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, renamed))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Trezor", all[0].Name())
}

func TestInMemoryWatchlistRepo_RemoveMissingIsNoop(t *testing.T) {
	repo := watchlist.NewInMemoryWatchlistRepo()
	assert.NoError(t, repo.Remove(context.Background(), "bitcoin:unknown"))
}
