package event

import (
	"github.com/sirupsen/logrus"

	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-interest-ledger/internal/app/core/usecase"
)

// LogPublisher 把稽核事件寫進結構化 log
// 外部消費者接 log pipeline 即可拿到完整的 Deposit/Withdraw 紀錄
type LogPublisher struct {
	log *logrus.Entry
}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{
		log: logrus.WithField("component", "ledger_event"),
	}
}

func (p *LogPublisher) Publish(event *domain.Event) error {
	p.log.WithFields(logrus.Fields{
		"type":   event.Type,
		"user":   event.User,
		"asset":  event.AssetID,
		"amount": event.Amount.String(),
		"op_id":  event.OperationID.String(),
		"at":     event.OccurredAt,
	}).Info("ledger event")
	return nil
}

// NoopPublisher 什麼都不做的事件發佈器
// 測試或不需要稽核輸出的場景使用
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) Publish(event *domain.Event) error {
	return nil
}

var (
	_ usecase.EventPublisher = (*LogPublisher)(nil)
	_ usecase.EventPublisher = (*NoopPublisher)(nil)
)
