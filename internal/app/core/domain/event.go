package domain

import (
	"math/big"

	"github.com/google/uuid"
)

// EventType 對外事件類型
type EventType string

const (
	EventTypeDeposit  EventType = "deposit"
	EventTypeWithdraw EventType = "withdraw"
)

// Event 對外的稽核事件 (Deposit / Withdraw)
// 只描述已成功落帳的事實，失敗的操作不發事件
type Event struct {
	Type        EventType
	User        int64
	AssetID     string
	Amount      *big.Int
	OperationID uuid.UUID
	OccurredAt  int64
}
