package custody

import (
	"context"
	"math/big"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-interest-ledger/internal/app/core/usecase"
)

// Vault 是託管服務介面的記憶體參考實作
//
// 正式環境的託管是外部服務，這裡只模擬它的語意:
// 使用者在池外的資產餘額 + 池子的總庫存，transferIn/transferOut 之間搬移。
// 任一邊不足即失敗，由外層整筆中止。
type Vault struct {
	mu sync.Mutex
	// 使用者在池外持有的底層資產
	balances map[int64]*big.Int
	// 池子的總庫存
	pool *big.Int
	log  *logrus.Entry
}

func NewVault() *Vault {
	return &Vault{
		balances: make(map[int64]*big.Int),
		pool:     new(big.Int),
		log:      logrus.WithField("component", "custody_vault"),
	}
}

// Credit 發給使用者池外資產 (啟動配置或測試用)
func (v *Vault) Credit(account int64, amount *big.Int) {
	if amount == nil || amount.Sign() <= 0 {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	b, ok := v.balances[account]
	if !ok {
		b = new(big.Int)
		v.balances[account] = b
	}
	b.Add(b, amount)
}

// BalanceOf 回傳使用者的池外資產餘額
func (v *Vault) BalanceOf(account int64) *big.Int {
	v.mu.Lock()
	defer v.mu.Unlock()
	b, ok := v.balances[account]
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(b)
}

// PoolBalance 回傳池子的總庫存
func (v *Vault) PoolBalance() *big.Int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return new(big.Int).Set(v.pool)
}

// TransferIn 從使用者把底層資產拉進池子
func (v *Vault) TransferIn(ctx context.Context, from int64, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	b, ok := v.balances[from]
	if !ok || b.Cmp(amount) < 0 {
		v.log.WithFields(logrus.Fields{"account": from, "amount": amount.String()}).Warn("transfer in rejected")
		return domain.ErrCustodyTransferFailed
	}
	b.Sub(b, amount)
	v.pool.Add(v.pool, amount)
	return nil
}

// TransferOut 從池子把底層資產推給使用者
func (v *Vault) TransferOut(ctx context.Context, to int64, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pool.Cmp(amount) < 0 {
		v.log.WithFields(logrus.Fields{"account": to, "amount": amount.String()}).Warn("transfer out rejected")
		return domain.ErrCustodyTransferFailed
	}
	v.pool.Sub(v.pool, amount)
	b, ok := v.balances[to]
	if !ok {
		b = new(big.Int)
		v.balances[to] = b
	}
	b.Add(b, amount)
	return nil
}

var _ usecase.Custody = (*Vault)(nil)
