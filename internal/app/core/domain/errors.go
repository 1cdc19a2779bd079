package domain

import "errors"

var (
	// ErrInvalidAmount 金額必須為正數
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidRate 利率不可為負數或空值
	ErrInvalidRate = errors.New("rate must be non-negative")

	// ErrInsufficientBalance 含息餘額不足
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientShares 原始份額不足
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrMarketNotFound 找不到市場
	ErrMarketNotFound = errors.New("market not found")

	// ErrMarketAlreadyExists 市場已存在
	ErrMarketAlreadyExists = errors.New("market already exists")

	// ErrUnauthorized 呼叫者沒有執行此操作的權限
	ErrUnauthorized = errors.New("caller is not authorized")

	// ErrCustodyTransferFailed 外部託管資產搬移失敗
	ErrCustodyTransferFailed = errors.New("custody transfer failed")

	// ErrOperationInProgress 有進行中的操作，拒絕重入呼叫
	ErrOperationInProgress = errors.New("operation already in progress")

	// ErrDuplicateOperation 相同追蹤號的操作已套用過 (冪等重放)
	ErrDuplicateOperation = errors.New("operation already processed")

	// ErrWALWriteFailed WAL 寫入失敗
	ErrWALWriteFailed = errors.New("wal write failed")
)
