package memory

import (
	"context"
	"encoding/json"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-interest-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-interest-ledger/pkg/wal"
)

// MutexStore 是一個使用 Mutex 實現的市場帳本 (Level 1)
//
// 結構:
//
//	markets: 資產 ID 對應的市場
//	mu: Mutex 用於保護市場資料
//	processedOperations: 已處理過的操作 Map (冪等去重)
//	wal: Write-Ahead Log 實例
//	clock: 查詢餘額時取得現在時間用
type MutexStore struct {
	markets map[string]*domain.Market
	mu      sync.RWMutex
	// 已處理過的操作
	processedOperations map[uuid.UUID]time.Time
	// Write-Ahead Logging
	wal   *wal.WAL
	clock usecase.Clock
	// 全局順序號
	sequence uint64
	log      *logrus.Entry
}

// NewMutexStore 建立一個新的 MutexStore 實例
//
// 參數:
//
//	markets: 初始市場資料 Map (可為 nil)
//	wal: Write-Ahead Log 實例 (可為 nil，表示不做日誌)
//	clock: 時鐘
//
// 回傳:
//
//	*MutexStore: MutexStore 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewMutexStore(markets map[string]*domain.Market, w *wal.WAL, clock usecase.Clock) (*MutexStore, error) {
	if markets == nil {
		markets = make(map[string]*domain.Market)
	}
	store := &MutexStore{
		markets:             markets,
		processedOperations: make(map[uuid.UUID]time.Time),
		wal:                 w,
		clock:               clock,
		log:                 logrus.WithField("component", "memory_store"),
	}
	if w != nil {
		if err := store.recoverFromWAL(); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// recoverFromWAL 從 WAL 檔案恢復帳本狀態
//
// 每筆操作帶著自己的時間戳重放，指數會被推進到當初的時間點，
// 所以恢復出來的指數與份額跟當機前完全一致。
//
// 回傳:
//
//	error: 恢復過程錯誤
func (m *MutexStore) recoverFromWAL() error {
	opHistory := make([]domain.Operation, 0)

	err := m.wal.ReadAll(func(jsonRaw []byte) error {
		var op domain.Operation
		if err := json.Unmarshal(jsonRaw, &op); err != nil {
			return err
		}
		opHistory = append(opHistory, op)
		return nil
	})
	if err != nil {
		return err
	}
	now := time.Now()
	for i := range opHistory {
		m.applyRecoverOperation(&opHistory[i], now)
	}
	return nil
}

// applyRecoverOperation 恢復單筆操作至記憶體 (不寫入 WAL)
// 只有 NewMutexStore 呼叫，無需 Lock (單執行緒)
//
// WAL 是先寫再套用，所以日誌裡可能有當初就失敗的操作；
// 重放時同樣的業務錯誤會再發生一次，屬於正常情況，記 log 後跳過。
func (m *MutexStore) applyRecoverOperation(op *domain.Operation, now time.Time) {
	if _, ok := m.processedOperations[op.OperationID]; ok {
		return
	}
	if err := m.applyOperation(op); err != nil {
		m.log.WithError(err).WithField("op_id", op.OperationID).Debug("skip failed operation during replay")
		return
	}
	if op.Sequence > m.sequence {
		m.sequence = op.Sequence
	}
	m.processedOperations[op.OperationID] = now
}

// PostOperation 處理操作請求 (Level 1: Mutex Lock)
//
// 參數:
//
//	ctx: 上下文
//	op: 操作物件
//
// 回傳:
//
//	error: 處理錯誤
func (m *MutexStore) PostOperation(ctx context.Context, op *domain.Operation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.postOperationInternal(op)
}

// postOperationInternal 執行操作核心邏輯 (內部方法)
func (m *MutexStore) postOperationInternal(op *domain.Operation) error {
	if _, ok := m.processedOperations[op.OperationID]; ok {
		return domain.ErrDuplicateOperation
	}

	m.sequence++
	op.Sequence = m.sequence

	// 1. 寫入 WAL (Critical Path)
	if m.wal != nil {
		// 寫入記憶體
		if err := m.wal.Write(op); err != nil {
			return domain.ErrWALWriteFailed
		}

		// 刷入硬碟
		if err := m.wal.Flush(); err != nil {
			return domain.ErrWALWriteFailed
		}
	}

	// 2. 核心操作分發
	err := m.applyOperation(op)
	if err == nil {
		m.processedOperations[op.OperationID] = time.Now()
	}
	return err
}

// applyOperation 依照 Type 套用單筆操作到市場
func (m *MutexStore) applyOperation(op *domain.Operation) error {
	switch op.Type {
	case domain.OperationTypeInitMarket:
		return m.handleInitMarket(op)
	case domain.OperationTypeDeposit:
		return m.handleDeposit(op)
	case domain.OperationTypeWithdraw:
		return m.handleWithdraw(op)
	case domain.OperationTypeSetRate:
		return m.handleSetRate(op)
	default:
		return nil // Unknown type, ignore
	}
}

// handleInitMarket 處理建立市場
func (m *MutexStore) handleInitMarket(op *domain.Operation) error {
	if _, ok := m.markets[op.AssetID]; ok {
		return domain.ErrMarketAlreadyExists
	}
	market, err := domain.NewMarket(op.AssetID, op.RateRay, op.CreatedAt)
	if err != nil {
		return err
	}
	m.markets[op.AssetID] = market
	return nil
}

// handleDeposit 處理存入: 以操作時間戳推進指數後鑄造份額
func (m *MutexStore) handleDeposit(op *domain.Operation) error {
	market, ok := m.markets[op.AssetID]
	if !ok {
		return domain.ErrMarketNotFound
	}
	_, err := market.MintShares(op.Account, op.Amount, op.CreatedAt)
	return err
}

// handleWithdraw 處理提領 (含息價值與原始份額的雙重檢查在 domain 內)
func (m *MutexStore) handleWithdraw(op *domain.Operation) error {
	market, ok := m.markets[op.AssetID]
	if !ok {
		return domain.ErrMarketNotFound
	}
	_, err := market.WithdrawValue(op.Account, op.Amount, op.CreatedAt)
	return err
}

// handleSetRate 處理調整利率
func (m *MutexStore) handleSetRate(op *domain.Operation) error {
	market, ok := m.markets[op.AssetID]
	if !ok {
		return domain.ErrMarketNotFound
	}
	return market.SetRate(op.RateRay, op.CreatedAt)
}

// GetUserBalance 取得使用者含息餘額
//
// 參數:
//
//	ctx: 上下文
//	assetID: 資產識別碼
//	account: 帳戶 ID
//
// 回傳:
//
//	*big.Int: 含息餘額 (以查詢當下的 preview 指數計算)
//	error: 查詢錯誤 (如市場不存在)
func (m *MutexStore) GetUserBalance(ctx context.Context, assetID string, account int64) (*big.Int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	market, ok := m.markets[assetID]
	if !ok {
		return nil, domain.ErrMarketNotFound
	}
	return market.ValueOf(account, m.clock.Now()), nil
}

// HasMarket 回傳市場是否已註冊
func (m *MutexStore) HasMarket(ctx context.Context, assetID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.markets[assetID]
	return ok, nil
}

// HasProcessed 回傳這個追蹤號是否已套用過
func (m *MutexStore) HasProcessed(ctx context.Context, refID uuid.UUID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.processedOperations[refID]
	return ok, nil
}

// LoadAllMarkets 載入所有市場 (Level 1 實作直接回傳當前 Map)
func (m *MutexStore) LoadAllMarkets(ctx context.Context) (map[string]*domain.Market, error) {
	return m.markets, nil
}

var _ usecase.MarketStore = (*MutexStore)(nil)
