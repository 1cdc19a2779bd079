package domain

import (
	"math/big"

	"github.com/google/uuid"
)

// OperationType 操作類型
// 為了極致節省記憶體，使用 uint8
type OperationType uint8

const (
	// 存入
	OperationTypeDeposit OperationType = 1
	// 提領
	OperationTypeWithdraw OperationType = 2
	// 建立市場
	OperationTypeInitMarket OperationType = 3
	// 調整利率
	OperationTypeSetRate OperationType = 4
)

// Operation 一筆狀態變更操作 注意欄位排序以避免 Padding
//
// 所有狀態變更 (存入/提領/建市場/調利率) 都收斂成這個結構，
// WAL 重放與 MySQL 操作記錄共用同一份定義。
type Operation struct {
	// Sequence: 全局唯一的順序號 (由核心引擎分配，1, 2, 3...)
	// 用於 WAL 重放確保順序一致
	Sequence uint64
	// Account: 持有人帳戶 ID (InitMarket/SetRate 時為發起人)
	Account int64
	// CreatedAt: 操作時間戳 (unix 秒)
	// 由 coordinator 的 Clock 蓋章，重放時指數會推進到同一個時間點，
	// 恢復結果才是確定性的
	CreatedAt int64
	// AssetID: 市場的資產識別碼
	AssetID string
	// Amount: 價值金額 (Deposit/Withdraw 使用)
	Amount *big.Int
	// RateRay: 年化利率 (InitMarket/SetRate 使用，1e18 定點數)
	RateRay *big.Int
	// OperationID: 外部追蹤號 (UUID)，冪等去重的 key
	OperationID uuid.UUID
	// Type: 放到最後面，利用 Padding 空間
	Type OperationType
}
