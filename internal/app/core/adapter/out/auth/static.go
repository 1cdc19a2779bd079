package auth

import (
	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-interest-ledger/internal/app/core/usecase"
)

// StaticAuthorizer 以設定檔的允許清單實作權限檢查
//
// Deposit/Withdraw 是自助操作，任何帳戶都可以執行；
// InitMarket/SetRate 屬於管理操作，只有 admins 清單內的帳戶可以執行。
type StaticAuthorizer struct {
	admins map[int64]struct{}
}

func NewStaticAuthorizer(adminIDs []int64) *StaticAuthorizer {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &StaticAuthorizer{admins: admins}
}

func (a *StaticAuthorizer) IsAuthorized(caller int64, op domain.OperationType) bool {
	switch op {
	case domain.OperationTypeDeposit, domain.OperationTypeWithdraw:
		return true
	case domain.OperationTypeInitMarket, domain.OperationTypeSetRate:
		_, ok := a.admins[caller]
		return ok
	default:
		return false
	}
}

var _ usecase.Authorizer = (*StaticAuthorizer)(nil)
