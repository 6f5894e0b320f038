package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/revanth-raj24/AlmirahShop/kafka"
	"github.com/revanth-raj24/AlmirahShop/models"
	aws_pkg "github.com/revanth-raj24/AlmirahShop/pkg/aws"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// EventPublisher fans a lifecycle event out to Kafka, best-effort SNS, and
// the seller's notification inbox. Publishing happens after the transition
// commits; failures are logged and never fail the request.
type EventPublisher struct {
	producer      kafka.ProducerAPI
	snsClient     aws_pkg.SNSPublisher
	snsTopicArn   string
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

func NewEventPublisher(producer kafka.ProducerAPI, snsClient aws_pkg.SNSPublisher, snsTopicArn string, notifications repository.NotificationRepository, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{
		producer:      producer,
		snsClient:     snsClient,
		snsTopicArn:   snsTopicArn,
		notifications: notifications,
		logger:        logger,
	}
}

func (p *EventPublisher) Publish(ctx context.Context, event models.OrderEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if p.producer != nil {
		if err := p.producer.PublishOrderEvent(ctx, event); err != nil {
			p.logger.Error("Failed to publish Kafka event",
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
		}
	}

	if p.snsClient != nil && p.snsTopicArn != "" {
		b, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("Failed to marshal SNS event", zap.Error(err))
			return
		}
		if err := p.snsClient.Publish(ctx, p.snsTopicArn, b); err != nil {
			p.logger.Error("Failed to publish SNS event", zap.Error(err))
		}
	}

	p.notifySeller(ctx, event)
}

// notifySeller drops an inbox row for the item's seller on item-scoped
// events. Events without a seller (order-level ones) are skipped.
func (p *EventPublisher) notifySeller(ctx context.Context, event models.OrderEvent) {
	if p.notifications == nil || event.SellerID == "" {
		return
	}
	sellerID, err := uuid.Parse(event.SellerID)
	if err != nil {
		return
	}

	n := &models.Notification{
		Type:     models.NotificationOrder,
		Message:  notificationMessage(event),
		SellerID: &sellerID,
		Priority: models.PriorityMedium,
	}
	if strings.HasPrefix(event.EventType, "return") || event.ReturnStatus != "" {
		n.Type = models.NotificationReturn
		n.Priority = models.PriorityHigh
	}
	if orderID, err := uuid.Parse(event.OrderID); err == nil {
		n.OrderID = &orderID
	}

	if err := p.notifications.Create(ctx, n); err != nil {
		p.logger.Error("Failed to store seller notification",
			zap.String("event_type", event.EventType),
			zap.Error(err),
		)
	}
}

func notificationMessage(event models.OrderEvent) string {
	status := event.Status
	if event.ReturnStatus != "" {
		status = event.ReturnStatus
	}
	return fmt.Sprintf("Order item %s: %s (%s)", event.OrderItemID, event.EventType, status)
}
