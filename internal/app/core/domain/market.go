package domain

import "math/big"

const (
	// SecondsPerYear 年化利率換算用的秒數 (365 天)
	SecondsPerYear = 365 * 24 * 3600
)

// Ray 精度基準: 所有利率與指數皆以 1e18 定點數表示
// 回傳新的 big.Int 避免呼叫端改到共用實例
func Ray() *big.Int {
	return big.NewInt(rayScale)
}

const rayScale int64 = 1_000_000_000_000_000_000

var ray = big.NewInt(rayScale)

// Market 是單一資產的計息帳本
//
// 結構:
//
//	AssetID: 底層資產識別碼，建立後不可變
//	RateRay: 當前年化利率 (1e18 定點數)
//	Index: 累積成長指數，建立時為 1e18，只增不減
//	LastUpdate: 上次推進指數的時間戳 (unix 秒)
//	shares: 持有人對應的原始份額 (不含利息)
//
// 使用者的經濟餘額不直接儲存，一律由 shares * index / 1e18 推導。
type Market struct {
	AssetID     string
	RateRay     *big.Int
	Index       *big.Int
	LastUpdate  int64
	TotalShares *big.Int
	shares      map[int64]*big.Int
}

// NewMarket 建立一個新的市場，指數從 1e18 起算
//
// 參數:
//
//	assetID: 資產識別碼
//	rateRay: 初始年化利率 (1e18 定點數)，不可為負
//	now: 建立時間戳 (unix 秒)
//
// 回傳:
//
//	*Market: 市場實例
//	error: 利率不合法時回傳 ErrInvalidRate
func NewMarket(assetID string, rateRay *big.Int, now int64) (*Market, error) {
	if rateRay == nil || rateRay.Sign() < 0 {
		return nil, ErrInvalidRate
	}
	return &Market{
		AssetID:     assetID,
		RateRay:     new(big.Int).Set(rateRay),
		Index:       big.NewInt(rayScale),
		LastUpdate:  now,
		TotalShares: new(big.Int),
		shares:      make(map[int64]*big.Int),
	}, nil
}

// RestoreMarket 從持久化狀態重建市場 (供 MySQL adapter 載入用)
// 不重新起算指數，直接還原欄位
func RestoreMarket(assetID string, rateRay, index *big.Int, lastUpdate int64, shares map[int64]*big.Int) *Market {
	m := &Market{
		AssetID:     assetID,
		RateRay:     new(big.Int).Set(rateRay),
		Index:       new(big.Int).Set(index),
		LastUpdate:  lastUpdate,
		TotalShares: new(big.Int),
		shares:      make(map[int64]*big.Int, len(shares)),
	}
	for holder, s := range shares {
		if s == nil || s.Sign() <= 0 {
			continue
		}
		cp := new(big.Int).Set(s)
		m.shares[holder] = cp
		m.TotalShares.Add(m.TotalShares, cp)
	}
	return m
}

// AdvanceTo 推進指數到 now
//
// dt = now - LastUpdate，若 dt <= 0 則為 no-op (同一瞬間重複呼叫安全)。
// 否則 accumulated = RateRay * dt / SecondsPerYear (區間內線性近似，非逐秒複利)，
// index = index * (1e18 + accumulated) / 1e18。
// 只要 RateRay >= 0，指數保證不減。
func (m *Market) AdvanceTo(now int64) {
	if now <= m.LastUpdate {
		return
	}
	m.Index = m.PreviewIndex(now)
	m.LastUpdate = now
}

// PreviewIndex 計算 AdvanceTo 在 now 會得到的指數，但不改動狀態
// 讓查詢餘額時不需要寫入就能反映已經過時間的利息
func (m *Market) PreviewIndex(now int64) *big.Int {
	if now <= m.LastUpdate {
		return new(big.Int).Set(m.Index)
	}
	dt := big.NewInt(now - m.LastUpdate)
	accumulated := new(big.Int).Mul(m.RateRay, dt)
	accumulated.Div(accumulated, big.NewInt(SecondsPerYear))

	next := new(big.Int).Add(ray, accumulated)
	next.Mul(next, m.Index)
	return next.Div(next, ray)
}

// ValueOf 回傳持有人含息價值: shares * PreviewIndex(now) / 1e18
// 唯讀操作；兩次查詢之間若無 mint/burn 且利率非負，回傳值不會變小
func (m *Market) ValueOf(holder int64, now int64) *big.Int {
	s, ok := m.shares[holder]
	if !ok {
		return new(big.Int)
	}
	v := new(big.Int).Mul(s, m.PreviewIndex(now))
	return v.Div(v, ray)
}

// SharesOf 回傳持有人的原始份額 (不含利息)
func (m *Market) SharesOf(holder int64) *big.Int {
	s, ok := m.shares[holder]
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(s)
}

// Holders 回傳目前所有持有人 ID (供持久化層快照用)
func (m *Market) Holders() []int64 {
	ids := make([]int64, 0, len(m.shares))
	for holder := range m.shares {
		ids = append(ids, holder)
	}
	return ids
}

// MintShares 以價值金額鑄造份額
//
// 先推進指數，再以剛推進完的指數換算: shares = valueAmount * 1e18 / index。
// 鑄造與銷毀採同一套指數定價，因此存入金額 A 當下的含息價值必為 A (至多差整數捨位)。
//
// 參數:
//
//	holder: 持有人
//	valueAmount: 價值金額，必須 > 0
//	now: 時間戳 (unix 秒)
//
// 回傳:
//
//	*big.Int: 實際鑄造的份額
//	error: 金額不合法時回傳 ErrInvalidAmount
func (m *Market) MintShares(holder int64, valueAmount *big.Int, now int64) (*big.Int, error) {
	if valueAmount == nil || valueAmount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	m.AdvanceTo(now)

	minted := new(big.Int).Mul(valueAmount, ray)
	minted.Div(minted, m.Index)
	// 指數成長後，太小的金額會捨位成 0 份
	// 收了錢卻鑄不出份額等於沒收資金，直接拒絕
	if minted.Sign() == 0 {
		return nil, ErrInvalidAmount
	}

	s, ok := m.shares[holder]
	if !ok {
		s = new(big.Int)
		m.shares[holder] = s
	}
	s.Add(s, minted)
	m.TotalShares.Add(m.TotalShares, minted)
	return new(big.Int).Set(minted), nil
}

// BurnShares 銷毀指定數量的原始份額
//
// 參數:
//
//	holder: 持有人
//	shareAmount: 份額數量，必須 > 0 且不可超過持有量
//	now: 時間戳 (unix 秒)
//
// 回傳:
//
//	error: 份額不足時回傳 ErrInsufficientShares
func (m *Market) BurnShares(holder int64, shareAmount *big.Int, now int64) error {
	if shareAmount == nil || shareAmount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	m.AdvanceTo(now)

	s, ok := m.shares[holder]
	if !ok || s.Cmp(shareAmount) < 0 {
		return ErrInsufficientShares
	}
	s.Sub(s, shareAmount)
	m.TotalShares.Sub(m.TotalShares, shareAmount)
	if s.Sign() == 0 {
		delete(m.shares, holder)
	}
	return nil
}

// WithdrawValue 以價值金額提領，回傳實際銷毀的份額
//
// 流程:
//  1. 推進指數
//  2. 檢查含息價值 >= valueAmount，否則 ErrInsufficientBalance
//  3. 以指數換算 sharesToBurn = valueAmount * 1e18 / index
//  4. 再檢查原始份額 >= sharesToBurn (第二道防線)，否則 ErrInsufficientShares
//  5. 銷毀份額
func (m *Market) WithdrawValue(holder int64, valueAmount *big.Int, now int64) (*big.Int, error) {
	if valueAmount == nil || valueAmount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	m.AdvanceTo(now)

	s, ok := m.shares[holder]
	if !ok {
		return nil, ErrInsufficientBalance
	}
	value := new(big.Int).Mul(s, m.Index)
	value.Div(value, ray)
	if value.Cmp(valueAmount) < 0 {
		return nil, ErrInsufficientBalance
	}

	sharesToBurn := new(big.Int).Mul(valueAmount, ray)
	sharesToBurn.Div(sharesToBurn, m.Index)
	if err := m.BurnShares(holder, sharesToBurn, now); err != nil {
		return nil, err
	}
	return sharesToBurn, nil
}

// SetRate 變更年化利率
//
// 先把舊利率結算到 now (推進指數)，舊利率才不會套用到生效時間之後。
// newRateRay 可以為零 (利息暫停)，但不可為負。
func (m *Market) SetRate(newRateRay *big.Int, now int64) error {
	if newRateRay == nil || newRateRay.Sign() < 0 {
		return ErrInvalidRate
	}
	m.AdvanceTo(now)
	m.RateRay = new(big.Int).Set(newRateRay)
	return nil
}
