package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
)

func TestStaticAuthorizer(t *testing.T) {
	a := NewStaticAuthorizer([]int64{0, 7})

	t.Run("self-service operations open to everyone", func(t *testing.T) {
		assert.True(t, a.IsAuthorized(99, domain.OperationTypeDeposit))
		assert.True(t, a.IsAuthorized(99, domain.OperationTypeWithdraw))
	})

	t.Run("admin operations restricted to the allow list", func(t *testing.T) {
		assert.True(t, a.IsAuthorized(0, domain.OperationTypeInitMarket))
		assert.True(t, a.IsAuthorized(7, domain.OperationTypeSetRate))
		assert.False(t, a.IsAuthorized(99, domain.OperationTypeInitMarket))
		assert.False(t, a.IsAuthorized(99, domain.OperationTypeSetRate))
	})

	t.Run("unknown operation type denied", func(t *testing.T) {
		assert.False(t, a.IsAuthorized(0, domain.OperationType(99)))
	})
}
