package memory

import (
	"context"
	"encoding/json"
	"math/big"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-interest-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-interest-ledger/pkg/wal"
)

// operationRequest 操作請求包裝 channel，讓 PostOperation 可以等待結果
type operationRequest struct {
	Op     *domain.Operation
	Result chan error // 讓 PostOperation 等這個 channel
}

// SerialStore 是單一 goroutine 輸送帶實現的市場帳本 (Level 2)
// 所有狀態變更都在同一條 run loop 上序列化執行；
// mu 保護唯讀查詢 (gRPC handler 併發呼叫) 不會讀到 run loop 改到一半的狀態
type SerialStore struct {
	markets map[string]*domain.Market
	mu      sync.RWMutex
	// 已處理過的操作
	processedOperations map[uuid.UUID]bool
	// Write-Ahead Logging
	wal   *wal.WAL
	clock usecase.Clock
	// 輸送帶 負責接收操作
	operationChan chan *operationRequest
	// Pool 減少 GC 壓力
	requestPool sync.Pool
	sequence    uint64
	log         *logrus.Entry
}

// NewSerialStore 建立一個新的 SerialStore 實例
//
// 參數:
//
//	markets: 初始市場資料 Map (可為 nil)
//	wal: Write-Ahead Log 實例 (可為 nil)
//	clock: 時鐘
//
// 回傳:
//
//	*SerialStore: SerialStore 實例
//	error: 初始化錯誤
func NewSerialStore(markets map[string]*domain.Market, w *wal.WAL, clock usecase.Clock) (*SerialStore, error) {
	if markets == nil {
		markets = make(map[string]*domain.Market)
	}
	store := &SerialStore{
		markets:             markets,
		processedOperations: make(map[uuid.UUID]bool),
		wal:                 w,
		clock:               clock,
		operationChan:       make(chan *operationRequest, 1000), // Buffer 1000
		requestPool: sync.Pool{
			New: func() interface{} {
				return &operationRequest{
					Result: make(chan error, 1),
				}
			},
		},
		log: logrus.WithField("component", "serial_store"),
	}

	// 在啟動前先恢復資料
	if w != nil {
		if err := store.recoverFromWAL(); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// recoverFromWAL 從 WAL 檔案恢復帳本狀態
func (l *SerialStore) recoverFromWAL() error {
	opHistory := make([]domain.Operation, 0)

	err := l.wal.ReadAll(func(jsonRaw []byte) error {
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

	for i := range opHistory {
		l.applyRecoverOperation(&opHistory[i])
	}
	return nil
}

// applyRecoverOperation 恢復單筆操作 (不寫 WAL，不透過 Channel)
// 只在 NewSerialStore 裡跑 (單執行緒)，失敗的操作記 log 後跳過
func (l *SerialStore) applyRecoverOperation(op *domain.Operation) {
	if l.processedOperations[op.OperationID] {
		return
	}
	if err := l.applyOperation(op); err != nil {
		l.log.WithError(err).WithField("op_id", op.OperationID).Debug("skip failed operation during replay")
		return
	}
	if op.Sequence > l.sequence {
		l.sequence = op.Sequence
	}
	l.processedOperations[op.OperationID] = true
}

// Start 啟動核心引擎 (非同步)
func (l *SerialStore) Start(ctx context.Context) {
	go l.run(ctx)
}

func (l *SerialStore) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			// 收到關閉信號，把剩下的操作處理完
			l.drain()
			return
		case req := <-l.operationChan:
			l.processOperation(req)
		}
	}
}

func (l *SerialStore) drain() {
	for {
		select {
		case req := <-l.operationChan:
			l.processOperation(req)
		default:
			return
		}
	}
}

// PostOperation 接收操作請求
//
// PostOperation(等待) -> Channel -> Run Loop (核心) -> WAL -> Map Update -> Result Channel -> PostOperation(收到結果)
func (l *SerialStore) PostOperation(ctx context.Context, op *domain.Operation) error {
	// 放入輸送帶 (使用 sync.Pool 減少 GC)
	req := l.requestPool.Get().(*operationRequest)
	req.Op = op
	// 清空 Channel (雖然理論上應該是空的，但保險起見)
	select {
	case <-req.Result:
	default:
	}

	l.operationChan <- req
	err := <-req.Result
	l.requestPool.Put(req)
	return err
}

// processOperation 處理單筆操作並回傳結果
// 只有 run loop 呼叫；整段持寫鎖，唯讀查詢不會看到半套狀態
func (l *SerialStore) processOperation(req *operationRequest) {
	op := req.Op

	l.mu.Lock()
	defer l.mu.Unlock()

	// 0. Idempotency Check
	if l.processedOperations[op.OperationID] {
		req.Result <- domain.ErrDuplicateOperation
		return
	}

	l.sequence++
	op.Sequence = l.sequence

	// 1. 寫入 WAL 並刷入硬碟 (Critical Path)
	// 沒落盤就回覆成功的話，斷電會弄丟已確認的操作
	if l.wal != nil {
		if err := l.wal.Write(op); err != nil {
			req.Result <- domain.ErrWALWriteFailed
			return
		}
		if err := l.wal.Flush(); err != nil {
			req.Result <- domain.ErrWALWriteFailed
			return
		}
	}

	// 2. 執行業務邏輯
	err := l.applyOperation(op)

	// 3. 更新 Idempotency
	if err == nil {
		l.processedOperations[op.OperationID] = true
	}

	// 4. 回傳結果
	req.Result <- err
}

// applyOperation 依照 Type 套用單筆操作到市場
func (l *SerialStore) applyOperation(op *domain.Operation) error {
	switch op.Type {
	case domain.OperationTypeInitMarket:
		if _, ok := l.markets[op.AssetID]; ok {
			return domain.ErrMarketAlreadyExists
		}
		market, err := domain.NewMarket(op.AssetID, op.RateRay, op.CreatedAt)
		if err != nil {
			return err
		}
		l.markets[op.AssetID] = market
		return nil
	case domain.OperationTypeDeposit:
		market, ok := l.markets[op.AssetID]
		if !ok {
			return domain.ErrMarketNotFound
		}
		_, err := market.MintShares(op.Account, op.Amount, op.CreatedAt)
		return err
	case domain.OperationTypeWithdraw:
		market, ok := l.markets[op.AssetID]
		if !ok {
			return domain.ErrMarketNotFound
		}
		_, err := market.WithdrawValue(op.Account, op.Amount, op.CreatedAt)
		return err
	case domain.OperationTypeSetRate:
		market, ok := l.markets[op.AssetID]
		if !ok {
			return domain.ErrMarketNotFound
		}
		return market.SetRate(op.RateRay, op.CreatedAt)
	default:
		return nil // Unknown type or no-op
	}
}

// GetUserBalance 取得指定使用者的含息餘額
func (l *SerialStore) GetUserBalance(ctx context.Context, assetID string, account int64) (*big.Int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	market, ok := l.markets[assetID]
	if !ok {
		return nil, domain.ErrMarketNotFound
	}
	return market.ValueOf(account, l.clock.Now()), nil
}

// HasMarket implements usecase.MarketStore.
func (l *SerialStore) HasMarket(ctx context.Context, assetID string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.markets[assetID]
	return ok, nil
}

// HasProcessed 回傳這個追蹤號是否已套用過
func (l *SerialStore) HasProcessed(ctx context.Context, refID uuid.UUID) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.processedOperations[refID], nil
}

// LoadAllMarkets implements usecase.MarketStore.
func (l *SerialStore) LoadAllMarkets(ctx context.Context) (map[string]*domain.Market, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.markets, nil
}

var _ usecase.MarketStore = (*SerialStore)(nil)
