package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
)

func TestSerialStore(t *testing.T) {
	t.Run("concurrent deposits all land", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		clock := &fakeClock{now: baseT}
		store, err := NewSerialStore(nil, nil, clock)
		require.NoError(t, err)
		store.Start(ctx)

		require.NoError(t, store.PostOperation(ctx, initMarketOp(baseT)))

		const workers = 50
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				assert.NoError(t, store.PostOperation(ctx, depositOp(10, baseT)))
			}()
		}
		wg.Wait()

		balance, err := store.GetUserBalance(ctx, asset, user)
		require.NoError(t, err)
		assert.Equal(t, int64(10*workers), balance.Int64())
	})

	t.Run("duplicate operation id applies once", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		store, err := NewSerialStore(nil, nil, &fakeClock{now: baseT})
		require.NoError(t, err)
		store.Start(ctx)

		require.NoError(t, store.PostOperation(ctx, initMarketOp(baseT)))
		op := depositOp(100, baseT)
		require.NoError(t, store.PostOperation(ctx, op))
		assert.ErrorIs(t, store.PostOperation(ctx, op), domain.ErrDuplicateOperation)

		seen, err := store.HasProcessed(ctx, op.OperationID)
		require.NoError(t, err)
		assert.True(t, seen)

		balance, err := store.GetUserBalance(ctx, asset, user)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance.Int64())
	})

	t.Run("reads race-free against the run loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		store, err := NewSerialStore(nil, nil, &fakeClock{now: baseT})
		require.NoError(t, err)
		store.Start(ctx)
		require.NoError(t, store.PostOperation(ctx, initMarketOp(baseT)))

		// 寫入與唯讀查詢並發跑，交給 -race 驗證沒有裸讀
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				assert.NoError(t, store.PostOperation(ctx, depositOp(10, baseT)))
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, err := store.GetUserBalance(ctx, asset, user)
				assert.NoError(t, err)
				_, err = store.HasMarket(ctx, asset)
				assert.NoError(t, err)
			}
		}()
		wg.Wait()

		balance, err := store.GetUserBalance(ctx, asset, user)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), balance.Int64())
	})
}
