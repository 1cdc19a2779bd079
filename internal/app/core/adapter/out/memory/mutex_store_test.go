package memory

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-interest-ledger/pkg/wal"
)

type fakeClock struct {
	now int64
}

func (c *fakeClock) Now() int64 { return c.now }

const (
	baseT = int64(1_700_000_000)
	asset = "USD"
	user  = int64(1)
)

// 10% 年化
var testRate = big.NewInt(100_000_000_000_000_000)

func initMarketOp(createdAt int64) *domain.Operation {
	return &domain.Operation{
		OperationID: uuid.New(),
		Type:        domain.OperationTypeInitMarket,
		AssetID:     asset,
		RateRay:     testRate,
		CreatedAt:   createdAt,
	}
}

func depositOp(amount, createdAt int64) *domain.Operation {
	return &domain.Operation{
		OperationID: uuid.New(),
		Type:        domain.OperationTypeDeposit,
		AssetID:     asset,
		Account:     user,
		Amount:      big.NewInt(amount),
		CreatedAt:   createdAt,
	}
}

func withdrawOp(amount, createdAt int64) *domain.Operation {
	return &domain.Operation{
		OperationID: uuid.New(),
		Type:        domain.OperationTypeWithdraw,
		AssetID:     asset,
		Account:     user,
		Amount:      big.NewInt(amount),
		CreatedAt:   createdAt,
	}
}

func TestMutexStorePostOperation(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit then withdraw with interest", func(t *testing.T) {
		clock := &fakeClock{now: baseT}
		store, err := NewMutexStore(nil, nil, clock)
		require.NoError(t, err)

		require.NoError(t, store.PostOperation(ctx, initMarketOp(baseT)))
		require.NoError(t, store.PostOperation(ctx, depositOp(100, baseT)))

		clock.now = baseT + domain.SecondsPerYear
		balance, err := store.GetUserBalance(ctx, asset, user)
		require.NoError(t, err)
		assert.Equal(t, int64(110), balance.Int64())

		require.NoError(t, store.PostOperation(ctx, withdrawOp(110, clock.now)))
		balance, err = store.GetUserBalance(ctx, asset, user)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance.Int64())
	})

	t.Run("duplicate operation id applies once", func(t *testing.T) {
		clock := &fakeClock{now: baseT}
		store, err := NewMutexStore(nil, nil, clock)
		require.NoError(t, err)

		require.NoError(t, store.PostOperation(ctx, initMarketOp(baseT)))
		op := depositOp(100, baseT)
		require.NoError(t, store.PostOperation(ctx, op))
		assert.ErrorIs(t, store.PostOperation(ctx, op), domain.ErrDuplicateOperation)

		balance, err := store.GetUserBalance(ctx, asset, user)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance.Int64())
	})

	t.Run("has processed reports applied ref ids", func(t *testing.T) {
		store, err := NewMutexStore(nil, nil, &fakeClock{now: baseT})
		require.NoError(t, err)

		op := initMarketOp(baseT)
		seen, err := store.HasProcessed(ctx, op.OperationID)
		require.NoError(t, err)
		assert.False(t, seen)

		require.NoError(t, store.PostOperation(ctx, op))
		seen, err = store.HasProcessed(ctx, op.OperationID)
		require.NoError(t, err)
		assert.True(t, seen)

		// 套用失敗的操作不算已處理，重試要能再走一次
		bad := depositOp(100, baseT)
		bad.AssetID = "UNKNOWN"
		require.Error(t, store.PostOperation(ctx, bad))
		seen, err = store.HasProcessed(ctx, bad.OperationID)
		require.NoError(t, err)
		assert.False(t, seen)
	})

	t.Run("deposit into unknown market rejected", func(t *testing.T) {
		store, err := NewMutexStore(nil, nil, &fakeClock{now: baseT})
		require.NoError(t, err)
		err = store.PostOperation(ctx, depositOp(100, baseT))
		assert.ErrorIs(t, err, domain.ErrMarketNotFound)
	})

	t.Run("sequence increases per operation", func(t *testing.T) {
		store, err := NewMutexStore(nil, nil, &fakeClock{now: baseT})
		require.NoError(t, err)

		first := initMarketOp(baseT)
		second := depositOp(100, baseT)
		require.NoError(t, store.PostOperation(ctx, first))
		require.NoError(t, store.PostOperation(ctx, second))
		assert.Equal(t, first.Sequence+1, second.Sequence)
	})
}

func TestMutexStoreWALRecovery(t *testing.T) {
	ctx := context.Background()

	t.Run("replay restores exact state", func(t *testing.T) {
		walPath := filepath.Join(t.TempDir(), "wal.log")
		clock := &fakeClock{now: baseT}

		w, err := wal.NewWAL(walPath)
		require.NoError(t, err)
		store, err := NewMutexStore(nil, w, clock)
		require.NoError(t, err)

		require.NoError(t, store.PostOperation(ctx, initMarketOp(baseT)))
		require.NoError(t, store.PostOperation(ctx, depositOp(100, baseT)))
		clock.now = baseT + domain.SecondsPerYear
		require.NoError(t, store.PostOperation(ctx, withdrawOp(10, clock.now)))

		want, err := store.GetUserBalance(ctx, asset, user)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		// 模擬重啟: 同一個 WAL 重放，每筆操作帶著自己的時間戳
		w2, err := wal.NewWAL(walPath)
		require.NoError(t, err)
		defer w2.Close()
		recovered, err := NewMutexStore(nil, w2, clock)
		require.NoError(t, err)

		got, err := recovered.GetUserBalance(ctx, asset, user)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Cmp(want), "recovered balance must match pre-crash balance")
	})

	t.Run("failed operations in the journal are skipped", func(t *testing.T) {
		walPath := filepath.Join(t.TempDir(), "wal.log")
		clock := &fakeClock{now: baseT}

		w, err := wal.NewWAL(walPath)
		require.NoError(t, err)
		store, err := NewMutexStore(nil, w, clock)
		require.NoError(t, err)

		require.NoError(t, store.PostOperation(ctx, initMarketOp(baseT)))
		require.NoError(t, store.PostOperation(ctx, depositOp(100, baseT)))
		// WAL 先寫後套用，失敗的提領也會留在日誌裡
		err = store.PostOperation(ctx, withdrawOp(9999, baseT))
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)
		require.NoError(t, w.Close())

		w2, err := wal.NewWAL(walPath)
		require.NoError(t, err)
		defer w2.Close()
		recovered, err := NewMutexStore(nil, w2, clock)
		require.NoError(t, err)

		got, err := recovered.GetUserBalance(ctx, asset, user)
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.Int64())
	})

	t.Run("sequence continues after recovery", func(t *testing.T) {
		walPath := filepath.Join(t.TempDir(), "wal.log")
		clock := &fakeClock{now: baseT}

		w, err := wal.NewWAL(walPath)
		require.NoError(t, err)
		store, err := NewMutexStore(nil, w, clock)
		require.NoError(t, err)
		require.NoError(t, store.PostOperation(ctx, initMarketOp(baseT)))
		last := depositOp(100, baseT)
		require.NoError(t, store.PostOperation(ctx, last))
		require.NoError(t, w.Close())

		w2, err := wal.NewWAL(walPath)
		require.NoError(t, err)
		defer w2.Close()
		recovered, err := NewMutexStore(nil, w2, clock)
		require.NoError(t, err)

		next := depositOp(1, baseT)
		require.NoError(t, recovered.PostOperation(ctx, next))
		assert.Greater(t, next.Sequence, last.Sequence)
	})
}
