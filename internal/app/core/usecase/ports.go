package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
)

// MarketStore 是市場帳本的介面
// 不再分 Deposit/Withdraw/InitMarket/SetRate，直接看 op.Type 決定
type MarketStore interface {
	// PostOperation 原子性地套用一筆操作
	// 相同 OperationID 的重複請求回傳 ErrDuplicateOperation，不會套用第二次
	PostOperation(ctx context.Context, op *domain.Operation) error
	// HasProcessed 回傳這個追蹤號是否已套用過
	// coordinator 在搬動託管資產前先問，重放的請求連資產都不該碰
	HasProcessed(ctx context.Context, refID uuid.UUID) (bool, error)
	// GetUserBalance 取得使用者含息餘額 (以查詢當下的 preview 指數計算)
	GetUserBalance(ctx context.Context, assetID string, account int64) (*big.Int, error)
	// HasMarket 回傳市場是否已註冊
	HasMarket(ctx context.Context, assetID string) (bool, error)
	// LoadAllMarkets 載入所有市場
	LoadAllMarkets(ctx context.Context) (map[string]*domain.Market, error)
}

// Custody 是外部資產託管服務的介面
// 失敗必須讓整個外層操作中止，不可留下半套 mint/burn
type Custody interface {
	// TransferIn 從使用者把底層資產拉進池子
	TransferIn(ctx context.Context, from int64, amount *big.Int) error
	// TransferOut 從池子把底層資產推給使用者
	TransferOut(ctx context.Context, to int64, amount *big.Int) error
}

// Authorizer 是權限檢查的介面 (capability check)
// 在建市場、調利率、以及 coordinator 對帳本的 mint/burn 之前諮詢
type Authorizer interface {
	IsAuthorized(caller int64, op domain.OperationType) bool
}

// Clock 提供現在時間 (unix 秒)，測試時可注入假時鐘
type Clock interface {
	Now() int64
}

// EventPublisher 發佈對外稽核事件
type EventPublisher interface {
	Publish(event *domain.Event) error
}

// SystemClock 是正式環境用的 Clock
type SystemClock struct{}

func (SystemClock) Now() int64 {
	return time.Now().Unix()
}
