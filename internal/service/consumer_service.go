package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"corp-portal-be/internal/audit"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/pkg/logger"
	"corp-portal-be/internal/repository/contract"
)

// IConsumerService drains the audit bus into the system log table.
type IConsumerService interface {
	Start(ctx context.Context) error
}

type consumerService struct {
	subscriber    message.Subscriber
	logRepository contract.SystemLogRepository
	log           logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	logRepository contract.SystemLogRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:    subscriber,
		logRepository: logRepository,
		log:           log,
	}
}

// Start subscribes to the audit topic and persists entries until ctx is
// cancelled. It returns after the subscription is established; the drain
// loop runs in its own goroutine.
func (s *consumerService) Start(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, audit.Topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.handle(ctx, msg)
		}
	}()
	return nil
}

func (s *consumerService) handle(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var entry audit.Entry
	if err := json.Unmarshal(msg.Payload, &entry); err != nil {
		s.log.Warn("audit", "dropping malformed audit entry", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	record := &entity.SystemLog{
		Id:        uuid.New(),
		EventType: entry.EventType,
		Payload:   string(msg.Payload),
		CreatedAt: time.Now(),
	}
	if err := s.logRepository.Create(ctx, record); err != nil {
		s.log.Error("audit", "failed to persist audit entry", map[string]interface{}{
			"event_type": entry.EventType,
			"error":      err.Error(),
		})
	}
}
