package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
)

// entryGuard 單一入口的互斥旗標 (reentrancy guard)
//
// 進入 deposit/withdraw 前先搶旗標，外部託管呼叫期間若被 callback 重入，
// CAS 會失敗，直接拒絕而不是排隊重試。所有離開路徑 (含失敗) 都要釋放。
type entryGuard struct {
	busy atomic.Bool
}

func (g *entryGuard) enter() bool {
	return g.busy.CompareAndSwap(false, true)
}

func (g *entryGuard) exit() {
	g.busy.Store(false)
}

// PoolCoordinator 是核心業務邏輯層
//
// 負責:
//  1. 驗證市場存在、金額為正、呼叫者權限
//  2. 對外部託管服務拉/推底層資產 (搭配 reentrancy guard)
//  3. 透過 MarketStore 對帳本 mint/burn 份額
//  4. 發佈 Deposit/Withdraw 事件
type PoolCoordinator struct {
	store   MarketStore
	custody Custody
	auth    Authorizer
	clock   Clock
	events  EventPublisher
	log     *logrus.Entry

	depositGuard  entryGuard
	withdrawGuard entryGuard
}

func NewPoolCoordinator(store MarketStore, custody Custody, auth Authorizer, clock Clock, events EventPublisher) *PoolCoordinator {
	return &PoolCoordinator{
		store:   store,
		custody: custody,
		auth:    auth,
		clock:   clock,
		events:  events,
		log:     logrus.WithField("component", "coordinator"),
	}
}

// InitializeMarket 註冊新市場，指數從 1e18 起算
//
// 參數:
//
//	caller: 發起人帳戶 ID (需具備管理權限)
//	assetID: 資產識別碼
//	initialRateRay: 初始年化利率 (1e18 定點數)
//	refID: 冪等追蹤號
//
// 回傳:
//
//	error: 市場已存在時回傳 ErrMarketAlreadyExists
func (c *PoolCoordinator) InitializeMarket(ctx context.Context, caller int64, assetID string, initialRateRay *big.Int, refID uuid.UUID) error {
	if !c.auth.IsAuthorized(caller, domain.OperationTypeInitMarket) {
		return domain.ErrUnauthorized
	}
	if initialRateRay == nil || initialRateRay.Sign() < 0 {
		return domain.ErrInvalidRate
	}

	op := &domain.Operation{
		OperationID: refID,
		Type:        domain.OperationTypeInitMarket,
		AssetID:     assetID,
		Account:     caller,
		RateRay:     initialRateRay,
		CreatedAt:   c.clock.Now(),
	}
	if err := c.store.PostOperation(ctx, op); err != nil {
		if errors.Is(err, domain.ErrDuplicateOperation) {
			return nil
		}
		return err
	}
	c.log.WithFields(logrus.Fields{"asset": assetID, "rate_ray": initialRateRay.String()}).Info("market initialized")
	return nil
}

// SetInterestRate 調整市場年化利率
// 帳本會先把舊利率結算到現在，再換上新利率
func (c *PoolCoordinator) SetInterestRate(ctx context.Context, caller int64, assetID string, newRateRay *big.Int, refID uuid.UUID) error {
	if !c.auth.IsAuthorized(caller, domain.OperationTypeSetRate) {
		return domain.ErrUnauthorized
	}
	if newRateRay == nil || newRateRay.Sign() < 0 {
		return domain.ErrInvalidRate
	}

	op := &domain.Operation{
		OperationID: refID,
		Type:        domain.OperationTypeSetRate,
		AssetID:     assetID,
		Account:     caller,
		RateRay:     newRateRay,
		CreatedAt:   c.clock.Now(),
	}
	if err := c.store.PostOperation(ctx, op); err != nil {
		if errors.Is(err, domain.ErrDuplicateOperation) {
			return nil
		}
		return err
	}
	c.log.WithFields(logrus.Fields{"asset": assetID, "rate_ray": newRateRay.String()}).Info("interest rate updated")
	return nil
}

// Deposit 存入底層資產並鑄造份額
//
// 流程: 驗證 -> 去重 -> 搶 guard -> 託管 TransferIn -> 帳本 mint -> 發事件。
// 冪等重放 (同一個 refID) 在碰到託管之前就回成功，資產不會被搬第二次；
// TransferIn 失敗時整筆中止，不會有任何份額被鑄造；
// mint 失敗時會把已拉入的資產退還 (best effort)。
func (c *PoolCoordinator) Deposit(ctx context.Context, caller int64, assetID string, amount *big.Int, refID uuid.UUID) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	if !c.auth.IsAuthorized(caller, domain.OperationTypeDeposit) {
		return domain.ErrUnauthorized
	}
	exists, err := c.store.HasMarket(ctx, assetID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrMarketNotFound
	}
	processed, err := c.store.HasProcessed(ctx, refID)
	if err != nil {
		return err
	}
	if processed {
		c.log.WithField("op_id", refID).Debug("duplicate deposit replayed, no-op")
		return nil
	}

	if !c.depositGuard.enter() {
		return domain.ErrOperationInProgress
	}
	defer c.depositGuard.exit()

	// 先搬資產再鑄造份額: 沒收到錢，帳本絕不能長出份額
	if err := c.custody.TransferIn(ctx, caller, amount); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCustodyTransferFailed, err)
	}

	op := &domain.Operation{
		OperationID: refID,
		Type:        domain.OperationTypeDeposit,
		AssetID:     assetID,
		Account:     caller,
		Amount:      amount,
		CreatedAt:   c.clock.Now(),
	}
	if err := c.store.PostOperation(ctx, op); err != nil {
		// 資產已拉入但落帳失敗 (或在去重檢查後才撞上重複請求)，退還給使用者
		if refundErr := c.custody.TransferOut(ctx, caller, amount); refundErr != nil {
			c.log.WithError(refundErr).WithFields(logrus.Fields{
				"asset": assetID, "account": caller, "amount": amount.String(),
			}).Error("deposit refund failed, funds stuck in custody")
		}
		if errors.Is(err, domain.ErrDuplicateOperation) {
			return nil
		}
		return err
	}

	c.publish(&domain.Event{
		Type:        domain.EventTypeDeposit,
		User:        caller,
		AssetID:     assetID,
		Amount:      amount,
		OperationID: refID,
		OccurredAt:  op.CreatedAt,
	})
	return nil
}

// Withdraw 銷毀份額並推出底層資產
//
// 流程: 驗證 -> 去重 -> 搶 guard -> 帳本 burn (含雙重檢查) -> 託管 TransferOut -> 發事件。
// 冪等重放 (同一個 refID) 直接回成功，不會付第二次錢；
// TransferOut 失敗時以同一個時間戳補一筆等額 mint 把份額還原
// (同一瞬間指數不變，換算出的份額數與剛銷毀的完全相同)。
func (c *PoolCoordinator) Withdraw(ctx context.Context, caller int64, assetID string, amount *big.Int, refID uuid.UUID) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	if !c.auth.IsAuthorized(caller, domain.OperationTypeWithdraw) {
		return domain.ErrUnauthorized
	}
	exists, err := c.store.HasMarket(ctx, assetID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrMarketNotFound
	}
	processed, err := c.store.HasProcessed(ctx, refID)
	if err != nil {
		return err
	}
	if processed {
		c.log.WithField("op_id", refID).Debug("duplicate withdraw replayed, no-op")
		return nil
	}

	if !c.withdrawGuard.enter() {
		return domain.ErrOperationInProgress
	}
	defer c.withdrawGuard.exit()

	op := &domain.Operation{
		OperationID: refID,
		Type:        domain.OperationTypeWithdraw,
		AssetID:     assetID,
		Account:     caller,
		Amount:      amount,
		CreatedAt:   c.clock.Now(),
	}
	if err := c.store.PostOperation(ctx, op); err != nil {
		// 去重檢查後才撞上重複請求: 份額早已銷毀過、錢也付過了，不能再付一次
		if errors.Is(err, domain.ErrDuplicateOperation) {
			return nil
		}
		return err
	}

	if err := c.custody.TransferOut(ctx, caller, amount); err != nil {
		compensation := &domain.Operation{
			OperationID: uuid.New(),
			Type:        domain.OperationTypeDeposit,
			AssetID:     assetID,
			Account:     caller,
			Amount:      amount,
			CreatedAt:   op.CreatedAt,
		}
		if compErr := c.store.PostOperation(ctx, compensation); compErr != nil {
			c.log.WithError(compErr).WithFields(logrus.Fields{
				"asset": assetID, "account": caller, "amount": amount.String(),
			}).Error("withdraw compensation failed, ledger diverged from custody")
		}
		return fmt.Errorf("%w: %v", domain.ErrCustodyTransferFailed, err)
	}

	c.publish(&domain.Event{
		Type:        domain.EventTypeWithdraw,
		User:        caller,
		AssetID:     assetID,
		Amount:      amount,
		OperationID: refID,
		OccurredAt:  op.CreatedAt,
	})
	return nil
}

// GetUserBalance 取得使用者含息餘額
// 唯讀，不推進指數，利息以查詢當下的 preview 指數反映
func (c *PoolCoordinator) GetUserBalance(ctx context.Context, assetID string, account int64) (*big.Int, error) {
	return c.store.GetUserBalance(ctx, assetID, account)
}

func (c *PoolCoordinator) publish(event *domain.Event) {
	if c.events == nil {
		return
	}
	if err := c.events.Publish(event); err != nil {
		// 事件失敗不影響已落帳的操作
		c.log.WithError(err).WithField("type", event.Type).Warn("event publish failed")
	}
}
