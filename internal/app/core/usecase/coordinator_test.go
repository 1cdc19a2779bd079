package usecase

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
)

// ---- 測試替身 ----

type fakeClock struct {
	now int64
}

func (c *fakeClock) Now() int64 { return c.now }

// fakeStore 直接把操作套用到 domain.Market，行為等同記憶體帳本
type fakeStore struct {
	markets   map[string]*domain.Market
	clock     Clock
	ops       []*domain.Operation
	processed map[uuid.UUID]bool
	postErr   error
	// precheckMiss 讓 HasProcessed 謊報沒處理過
	// 模擬去重檢查通過後才撞上重複請求的競態窗口
	precheckMiss bool
}

func newFakeStore(clock Clock) *fakeStore {
	return &fakeStore{
		markets:   make(map[string]*domain.Market),
		processed: make(map[uuid.UUID]bool),
		clock:     clock,
	}
}

func (s *fakeStore) PostOperation(ctx context.Context, op *domain.Operation) error {
	if s.postErr != nil {
		return s.postErr
	}
	if s.processed[op.OperationID] {
		return domain.ErrDuplicateOperation
	}
	s.ops = append(s.ops, op)
	err := s.apply(op)
	if err == nil {
		s.processed[op.OperationID] = true
	}
	return err
}

func (s *fakeStore) apply(op *domain.Operation) error {
	switch op.Type {
	case domain.OperationTypeInitMarket:
		if _, ok := s.markets[op.AssetID]; ok {
			return domain.ErrMarketAlreadyExists
		}
		market, err := domain.NewMarket(op.AssetID, op.RateRay, op.CreatedAt)
		if err != nil {
			return err
		}
		s.markets[op.AssetID] = market
		return nil
	case domain.OperationTypeDeposit:
		market, ok := s.markets[op.AssetID]
		if !ok {
			return domain.ErrMarketNotFound
		}
		_, err := market.MintShares(op.Account, op.Amount, op.CreatedAt)
		return err
	case domain.OperationTypeWithdraw:
		market, ok := s.markets[op.AssetID]
		if !ok {
			return domain.ErrMarketNotFound
		}
		_, err := market.WithdrawValue(op.Account, op.Amount, op.CreatedAt)
		return err
	case domain.OperationTypeSetRate:
		market, ok := s.markets[op.AssetID]
		if !ok {
			return domain.ErrMarketNotFound
		}
		return market.SetRate(op.RateRay, op.CreatedAt)
	default:
		return nil
	}
}

func (s *fakeStore) GetUserBalance(ctx context.Context, assetID string, account int64) (*big.Int, error) {
	market, ok := s.markets[assetID]
	if !ok {
		return nil, domain.ErrMarketNotFound
	}
	return market.ValueOf(account, s.clock.Now()), nil
}

func (s *fakeStore) HasMarket(ctx context.Context, assetID string) (bool, error) {
	_, ok := s.markets[assetID]
	return ok, nil
}

func (s *fakeStore) HasProcessed(ctx context.Context, refID uuid.UUID) (bool, error) {
	if s.precheckMiss {
		return false, nil
	}
	return s.processed[refID], nil
}

func (s *fakeStore) LoadAllMarkets(ctx context.Context) (map[string]*domain.Market, error) {
	return s.markets, nil
}

type fakeCustody struct {
	inErr    error
	outErr   error
	inCalls  int
	outCalls int
	// onTransferIn 讓測試在託管呼叫期間 callback 回 coordinator (模擬重入)
	onTransferIn func() error
}

func (c *fakeCustody) TransferIn(ctx context.Context, from int64, amount *big.Int) error {
	c.inCalls++
	if c.onTransferIn != nil {
		if err := c.onTransferIn(); err != nil {
			return err
		}
	}
	return c.inErr
}

func (c *fakeCustody) TransferOut(ctx context.Context, to int64, amount *big.Int) error {
	c.outCalls++
	return c.outErr
}

type adminAuthorizer struct {
	admins map[int64]struct{}
}

func (a *adminAuthorizer) IsAuthorized(caller int64, op domain.OperationType) bool {
	switch op {
	case domain.OperationTypeDeposit, domain.OperationTypeWithdraw:
		return true
	default:
		_, ok := a.admins[caller]
		return ok
	}
}

type denyAllAuthorizer struct{}

func (denyAllAuthorizer) IsAuthorized(int64, domain.OperationType) bool { return false }

type collectPublisher struct {
	events []*domain.Event
}

func (p *collectPublisher) Publish(event *domain.Event) error {
	p.events = append(p.events, event)
	return nil
}

// ---- 測試裝置 ----

const (
	adminID = int64(0)
	userID  = int64(1)
	asset   = "USD"
	baseT   = int64(1_700_000_000)
)

// 10% 年化
var testRate = big.NewInt(100_000_000_000_000_000)

type fixture struct {
	coordinator *PoolCoordinator
	store       *fakeStore
	custody     *fakeCustody
	clock       *fakeClock
	events      *collectPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := &fakeClock{now: baseT}
	store := newFakeStore(clock)
	custody := &fakeCustody{}
	events := &collectPublisher{}
	auth := &adminAuthorizer{admins: map[int64]struct{}{adminID: {}}}

	return &fixture{
		coordinator: NewPoolCoordinator(store, custody, auth, clock, events),
		store:       store,
		custody:     custody,
		clock:       clock,
		events:      events,
	}
}

func (f *fixture) initMarket(t *testing.T) {
	t.Helper()
	require.NoError(t, f.coordinator.InitializeMarket(context.Background(), adminID, asset, testRate, uuid.New()))
}

func (f *fixture) balance(t *testing.T) int64 {
	t.Helper()
	b, err := f.coordinator.GetUserBalance(context.Background(), asset, userID)
	require.NoError(t, err)
	return b.Int64()
}

// ---- 測試 ----

func TestInitializeMarket(t *testing.T) {
	t.Run("admin can register", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)

		exists, err := f.store.HasMarket(context.Background(), asset)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("non-admin rejected", func(t *testing.T) {
		f := newFixture(t)
		err := f.coordinator.InitializeMarket(context.Background(), userID, asset, testRate, uuid.New())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("duplicate asset rejected", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		err := f.coordinator.InitializeMarket(context.Background(), adminID, asset, testRate, uuid.New())
		assert.ErrorIs(t, err, domain.ErrMarketAlreadyExists)
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		f := newFixture(t)
		err := f.coordinator.InitializeMarket(context.Background(), adminID, asset, big.NewInt(-1), uuid.New())
		assert.ErrorIs(t, err, domain.ErrInvalidRate)
	})
}

func TestSetInterestRate(t *testing.T) {
	t.Run("non-admin rejected", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		err := f.coordinator.SetInterestRate(context.Background(), userID, asset, new(big.Int), uuid.New())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("rate change settles accrued interest first", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		require.NoError(t, f.coordinator.Deposit(context.Background(), userID, asset, big.NewInt(100), uuid.New()))

		// 半年後把利率歸零，之後餘額凍結在 105
		f.clock.now = baseT + domain.SecondsPerYear/2
		require.NoError(t, f.coordinator.SetInterestRate(context.Background(), adminID, asset, new(big.Int), uuid.New()))

		f.clock.now = baseT + 3*domain.SecondsPerYear
		assert.Equal(t, int64(105), f.balance(t))
	})
}

func TestDeposit(t *testing.T) {
	t.Run("happy path mints and publishes", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		refID := uuid.New()

		require.NoError(t, f.coordinator.Deposit(context.Background(), userID, asset, big.NewInt(100), refID))

		assert.Equal(t, 1, f.custody.inCalls)
		assert.Equal(t, int64(100), f.balance(t))
		require.Len(t, f.events.events, 1)
		assert.Equal(t, domain.EventTypeDeposit, f.events.events[0].Type)
		assert.Equal(t, refID, f.events.events[0].OperationID)
	})

	t.Run("invalid amounts rejected before custody", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		for _, amount := range []*big.Int{nil, new(big.Int), big.NewInt(-5)} {
			err := f.coordinator.Deposit(context.Background(), userID, asset, amount, uuid.New())
			assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		}
		assert.Zero(t, f.custody.inCalls)
	})

	t.Run("unknown market rejected", func(t *testing.T) {
		f := newFixture(t)
		err := f.coordinator.Deposit(context.Background(), userID, "BTC", big.NewInt(100), uuid.New())
		assert.ErrorIs(t, err, domain.ErrMarketNotFound)
		assert.Zero(t, f.custody.inCalls)
	})

	t.Run("unauthorized caller rejected", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		clock := &fakeClock{now: baseT}
		denied := NewPoolCoordinator(f.store, f.custody, denyAllAuthorizer{}, clock, f.events)

		err := denied.Deposit(context.Background(), userID, asset, big.NewInt(100), uuid.New())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		err = denied.Withdraw(context.Background(), userID, asset, big.NewInt(100), uuid.New())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Zero(t, f.custody.inCalls)
	})

	t.Run("custody failure aborts before mint", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		f.custody.inErr = errors.New("user has no funds")

		err := f.coordinator.Deposit(context.Background(), userID, asset, big.NewInt(100), uuid.New())
		assert.ErrorIs(t, err, domain.ErrCustodyTransferFailed)
		assert.Equal(t, int64(0), f.balance(t), "no shares may exist without received funds")
		assert.Empty(t, f.events.events)
	})

	t.Run("ledger failure refunds pulled funds", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		f.store.postErr = errors.New("wal write failed")

		err := f.coordinator.Deposit(context.Background(), userID, asset, big.NewInt(100), uuid.New())
		require.Error(t, err)
		assert.Equal(t, 1, f.custody.inCalls)
		assert.Equal(t, 1, f.custody.outCalls, "pulled funds must be pushed back")
	})

	t.Run("retried ref id does not pull funds again", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		refID := uuid.New()

		require.NoError(t, f.coordinator.Deposit(context.Background(), userID, asset, big.NewInt(100), refID))
		require.NoError(t, f.coordinator.Deposit(context.Background(), userID, asset, big.NewInt(100), refID))

		assert.Equal(t, 1, f.custody.inCalls, "a replayed deposit must not pull funds twice")
		assert.Equal(t, int64(100), f.balance(t))
		assert.Len(t, f.events.events, 1, "a replayed deposit must not re-publish its event")
	})

	t.Run("duplicate caught at post time refunds the pull", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		f.store.precheckMiss = true
		refID := uuid.New()

		require.NoError(t, f.coordinator.Deposit(context.Background(), userID, asset, big.NewInt(100), refID))
		require.NoError(t, f.coordinator.Deposit(context.Background(), userID, asset, big.NewInt(100), refID))

		// 去重檢查沒攔到，帳本攔到: 第二次拉入的資產要原路退還
		assert.Equal(t, 2, f.custody.inCalls)
		assert.Equal(t, 1, f.custody.outCalls, "the duplicate pull must be refunded")
		assert.Equal(t, int64(100), f.balance(t))
		assert.Len(t, f.events.events, 1)
	})

	t.Run("reentrant call rejected", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)

		var reentrantErr error
		f.custody.onTransferIn = func() error {
			// 託管服務 callback 重入 Deposit，會在 guard 被擋下、碰不到託管
			reentrantErr = f.coordinator.Deposit(context.Background(), userID, asset, big.NewInt(1), uuid.New())
			return nil
		}

		require.NoError(t, f.coordinator.Deposit(context.Background(), userID, asset, big.NewInt(100), uuid.New()))
		assert.ErrorIs(t, reentrantErr, domain.ErrOperationInProgress)
		assert.Equal(t, int64(100), f.balance(t), "only the outer deposit may land")
	})
}

func TestWithdraw(t *testing.T) {
	deposit := func(t *testing.T, f *fixture, amount int64) {
		t.Helper()
		require.NoError(t, f.coordinator.Deposit(context.Background(), userID, asset, big.NewInt(amount), uuid.New()))
	}

	t.Run("happy path burns and publishes", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		deposit(t, f, 100)

		refID := uuid.New()
		require.NoError(t, f.coordinator.Withdraw(context.Background(), userID, asset, big.NewInt(40), refID))

		assert.Equal(t, 1, f.custody.outCalls)
		assert.Equal(t, int64(60), f.balance(t))
		require.Len(t, f.events.events, 2)
		assert.Equal(t, domain.EventTypeWithdraw, f.events.events[1].Type)
	})

	t.Run("withdraw includes accrued interest", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		deposit(t, f, 100)

		f.clock.now = baseT + domain.SecondsPerYear
		require.NoError(t, f.coordinator.Withdraw(context.Background(), userID, asset, big.NewInt(110), uuid.New()))
		assert.Equal(t, int64(0), f.balance(t))
	})

	t.Run("insufficient balance keeps custody untouched", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		deposit(t, f, 100)

		err := f.coordinator.Withdraw(context.Background(), userID, asset, big.NewInt(101), uuid.New())
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		assert.Zero(t, f.custody.outCalls)
		assert.Equal(t, int64(100), f.balance(t))
	})

	t.Run("unknown market rejected", func(t *testing.T) {
		f := newFixture(t)
		err := f.coordinator.Withdraw(context.Background(), userID, "BTC", big.NewInt(1), uuid.New())
		assert.ErrorIs(t, err, domain.ErrMarketNotFound)
	})

	t.Run("retried ref id does not pay out again", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		deposit(t, f, 100)
		refID := uuid.New()

		require.NoError(t, f.coordinator.Withdraw(context.Background(), userID, asset, big.NewInt(40), refID))
		require.NoError(t, f.coordinator.Withdraw(context.Background(), userID, asset, big.NewInt(40), refID))

		assert.Equal(t, 1, f.custody.outCalls, "a replayed withdraw must not pay out twice")
		assert.Equal(t, int64(60), f.balance(t))
		assert.Len(t, f.events.events, 2, "a replayed withdraw must not re-publish its event")
	})

	t.Run("duplicate caught at post time pays nothing", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		deposit(t, f, 100)
		f.store.precheckMiss = true
		refID := uuid.New()

		require.NoError(t, f.coordinator.Withdraw(context.Background(), userID, asset, big.NewInt(40), refID))
		require.NoError(t, f.coordinator.Withdraw(context.Background(), userID, asset, big.NewInt(40), refID))

		// 份額只銷毀過一次，錢也只能付一次
		assert.Equal(t, 1, f.custody.outCalls)
		assert.Equal(t, int64(60), f.balance(t))
	})

	t.Run("custody failure restores burned shares", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		deposit(t, f, 100)
		f.custody.outErr = errors.New("pool drained")

		err := f.coordinator.Withdraw(context.Background(), userID, asset, big.NewInt(40), uuid.New())
		assert.ErrorIs(t, err, domain.ErrCustodyTransferFailed)
		// 補償操作用同一個時間戳，份額一毛不差地還原
		assert.Equal(t, int64(100), f.balance(t))

		last := f.store.ops[len(f.store.ops)-1]
		assert.Equal(t, domain.OperationTypeDeposit, last.Type)
		assert.Equal(t, f.store.ops[len(f.store.ops)-2].CreatedAt, last.CreatedAt)
	})
}

func TestGetUserBalance(t *testing.T) {
	t.Run("reflects interest without writes", func(t *testing.T) {
		f := newFixture(t)
		f.initMarket(t)
		require.NoError(t, f.coordinator.Deposit(context.Background(), userID, asset, big.NewInt(100), uuid.New()))

		opCount := len(f.store.ops)
		f.clock.now = baseT + domain.SecondsPerYear
		assert.Equal(t, int64(110), f.balance(t))
		assert.Len(t, f.store.ops, opCount, "balance query must not post operations")
	})

	t.Run("unknown market rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.coordinator.GetUserBalance(context.Background(), "BTC", userID)
		assert.ErrorIs(t, err, domain.ErrMarketNotFound)
	})
}
