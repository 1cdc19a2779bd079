package mysql

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-interest-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-interest-ledger/pkg/mysql"
)

// sqlMarket 對應資料庫的 markets 表
// 指數與利率是 1e18 定點數，超過 int64 範圍，以十進位字串儲存
type sqlMarket struct {
	AssetID      string `gorm:"primaryKey;size:32;column:asset_id"`
	RateRay      string `gorm:"column:rate_ray;type:varchar(40)"`
	AccrualIndex string `gorm:"column:accrual_index;type:varchar(40)"`
	LastUpdate   int64  `gorm:"column:last_update"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli"` // 自動更新時間
}

func (*sqlMarket) TableName() string {
	return "markets"
}

// sqlPosition 對應資料庫的 positions 表 (持有人的原始份額)
type sqlPosition struct {
	AssetID   string `gorm:"primaryKey;size:32;column:asset_id"`
	AccountID int64  `gorm:"primaryKey;column:account_id"`
	Shares    string `gorm:"type:varchar(40)"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}

func (*sqlPosition) TableName() string {
	return "positions"
}

// sqlOperation 對應資料庫的 operations 表
type sqlOperation struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	RefID     []byte `gorm:"column:ref_id;type:binary(16);uniqueIndex"` // 對應 domain.OperationID
	Sequence  uint64 `gorm:"index"`
	AssetID   string `gorm:"size:32"`
	AccountID int64
	Amount    string `gorm:"type:varchar(40)"`
	RateRay   string `gorm:"type:varchar(40)"`
	Type      uint8
	OpTime    int64 // 操作本身的時間戳 (unix 秒)，指數推進以此為準
	CreatedAt int64 `gorm:"autoCreateTime:milli"` // 自動寫入時間
}

func (*sqlOperation) TableName() string {
	return "operations"
}

// MySQLStore 是 GORM 實現的市場帳本 (Level 0)
type MySQLStore struct {
	client *mysql.Client
	clock  usecase.Clock
	log    *logrus.Entry
}

func NewMySQLStore(client *mysql.Client, clock usecase.Clock) *MySQLStore {
	return &MySQLStore{
		client: client,
		clock:  clock,
		log:    logrus.WithField("component", "mysql_store"),
	}
}

// PostOperation 原子性地套用一筆操作
// 整筆包在 DB Transaction 裡: 去重 -> 鎖列 (悲觀鎖) -> 套用 domain 邏輯 -> 寫回 -> 記操作
func (s *MySQLStore) PostOperation(ctx context.Context, op *domain.Operation) error {
	return s.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先檢查是否有這筆操作記錄 (冪等)
		var existing sqlOperation
		err := tx.Where("ref_id = ?", op.OperationID[:]).First(&existing).Error
		if err == nil {
			s.log.WithField("op_id", op.OperationID).Debug("operation already processed")
			return domain.ErrDuplicateOperation
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("select operation: %w", err)
		}

		switch op.Type {
		case domain.OperationTypeInitMarket:
			if err := s.applyInitMarket(tx, op); err != nil {
				return err
			}
		case domain.OperationTypeDeposit, domain.OperationTypeWithdraw:
			if err := s.applyBalanceChange(tx, op); err != nil {
				return err
			}
		case domain.OperationTypeSetRate:
			if err := s.applySetRate(tx, op); err != nil {
				return err
			}
		default:
			return nil
		}

		// 建立操作紀錄
		record := sqlOperation{
			RefID:     op.OperationID[:],
			Sequence:  op.Sequence,
			AssetID:   op.AssetID,
			AccountID: op.Account,
			Type:      uint8(op.Type),
			OpTime:    op.CreatedAt,
		}
		if op.Amount != nil {
			record.Amount = op.Amount.String()
		}
		if op.RateRay != nil {
			record.RateRay = op.RateRay.String()
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return nil
	})
}

func (s *MySQLStore) applyInitMarket(tx *gorm.DB, op *domain.Operation) error {
	var row sqlMarket
	err := tx.Where("asset_id = ?", op.AssetID).First(&row).Error
	if err == nil {
		return domain.ErrMarketAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	market, err := domain.NewMarket(op.AssetID, op.RateRay, op.CreatedAt)
	if err != nil {
		return err
	}
	row = sqlMarket{
		AssetID:      market.AssetID,
		RateRay:      market.RateRay.String(),
		AccrualIndex: market.Index.String(),
		LastUpdate:   market.LastUpdate,
	}
	return tx.Create(&row).Error
}

// applyBalanceChange 處理 Deposit/Withdraw
// 鎖定市場列與持有人部位列後，重建 domain.Market 套用邏輯再寫回
func (s *MySQLStore) applyBalanceChange(tx *gorm.DB, op *domain.Operation) error {
	var marketRow sqlMarket
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("asset_id = ?", op.AssetID).
		First(&marketRow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMarketNotFound
		}
		return err
	}

	var posRow sqlPosition
	hasPosition := true
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("asset_id = ? AND account_id = ?", op.AssetID, op.Account).
		First(&posRow).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		hasPosition = false
	}

	shares := map[int64]*big.Int{}
	if hasPosition {
		shares[op.Account] = parseBig(posRow.Shares)
	}
	market := domain.RestoreMarket(op.AssetID, parseBig(marketRow.RateRay), parseBig(marketRow.AccrualIndex), marketRow.LastUpdate, shares)

	var err error
	switch op.Type {
	case domain.OperationTypeDeposit:
		_, err = market.MintShares(op.Account, op.Amount, op.CreatedAt)
	case domain.OperationTypeWithdraw:
		_, err = market.WithdrawValue(op.Account, op.Amount, op.CreatedAt)
	}
	if err != nil {
		return err
	}

	// 寫回市場與部位
	marketRow.AccrualIndex = market.Index.String()
	marketRow.LastUpdate = market.LastUpdate
	if err := tx.Save(&marketRow).Error; err != nil {
		return err
	}
	posRow = sqlPosition{
		AssetID:   op.AssetID,
		AccountID: op.Account,
		Shares:    market.SharesOf(op.Account).String(),
	}
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&posRow).Error
}

func (s *MySQLStore) applySetRate(tx *gorm.DB, op *domain.Operation) error {
	var marketRow sqlMarket
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("asset_id = ?", op.AssetID).
		First(&marketRow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMarketNotFound
		}
		return err
	}

	market := domain.RestoreMarket(op.AssetID, parseBig(marketRow.RateRay), parseBig(marketRow.AccrualIndex), marketRow.LastUpdate, nil)
	if err := market.SetRate(op.RateRay, op.CreatedAt); err != nil {
		return err
	}

	marketRow.RateRay = market.RateRay.String()
	marketRow.AccrualIndex = market.Index.String()
	marketRow.LastUpdate = market.LastUpdate
	return tx.Save(&marketRow).Error
}

// GetUserBalance 取得使用者含息餘額 (唯讀，不鎖列)
func (s *MySQLStore) GetUserBalance(ctx context.Context, assetID string, account int64) (*big.Int, error) {
	db := s.client.DB().WithContext(ctx)

	var marketRow sqlMarket
	if err := db.Where("asset_id = ?", assetID).First(&marketRow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMarketNotFound
		}
		return nil, err
	}

	var posRow sqlPosition
	if err := db.Where("asset_id = ? AND account_id = ?", assetID, account).First(&posRow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return new(big.Int), nil
		}
		return nil, err
	}

	market := domain.RestoreMarket(assetID, parseBig(marketRow.RateRay), parseBig(marketRow.AccrualIndex), marketRow.LastUpdate,
		map[int64]*big.Int{account: parseBig(posRow.Shares)})
	return market.ValueOf(account, s.clock.Now()), nil
}

// HasMarket 回傳市場是否已註冊
func (s *MySQLStore) HasMarket(ctx context.Context, assetID string) (bool, error) {
	var count int64
	err := s.client.DB().WithContext(ctx).Model(&sqlMarket{}).Where("asset_id = ?", assetID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasProcessed 回傳這個追蹤號是否已套用過 (查操作記錄的唯一索引)
func (s *MySQLStore) HasProcessed(ctx context.Context, refID uuid.UUID) (bool, error) {
	var count int64
	err := s.client.DB().WithContext(ctx).Model(&sqlOperation{}).Where("ref_id = ?", refID[:]).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LoadAllMarkets 載入所有市場與部位 (服務啟動時給記憶體層當初始狀態)
func (s *MySQLStore) LoadAllMarkets(ctx context.Context) (map[string]*domain.Market, error) {
	db := s.client.DB().WithContext(ctx)

	var marketRows []sqlMarket
	if err := db.Find(&marketRows).Error; err != nil {
		return nil, err
	}
	var posRows []sqlPosition
	if err := db.Find(&posRows).Error; err != nil {
		return nil, err
	}

	sharesByAsset := make(map[string]map[int64]*big.Int, len(marketRows))
	for _, pos := range posRows {
		if sharesByAsset[pos.AssetID] == nil {
			sharesByAsset[pos.AssetID] = make(map[int64]*big.Int)
		}
		sharesByAsset[pos.AssetID][pos.AccountID] = parseBig(pos.Shares)
	}

	markets := make(map[string]*domain.Market, len(marketRows))
	for _, row := range marketRows {
		markets[row.AssetID] = domain.RestoreMarket(row.AssetID, parseBig(row.RateRay), parseBig(row.AccrualIndex), row.LastUpdate, sharesByAsset[row.AssetID])
	}
	return markets, nil
}

// parseBig 解析十進位字串，空字串或壞資料當 0
func parseBig(s string) *big.Int {
	if s == "" {
		return new(big.Int)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

var _ usecase.MarketStore = (*MySQLStore)(nil)
