package notify

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/velstore/orderflow/internal/adapter/config"
	"github.com/velstore/orderflow/internal/core/domain"
	"go.uber.org/zap"
)

const (
	EventApprovalRequested = "approval_requested"
	EventDecisionMade      = "decision_made"
)

// Event is what the downstream mailer consumes. It carries everything needed
// to render the email, so the consumer never calls back into this service.
type Event struct {
	Type                  string    `json:"type"`
	OrderID               string    `json:"order_id"`
	OrderNumber           string    `json:"order_number"`
	Recipient             string    `json:"recipient,omitempty"`
	ApprovalLink          string    `json:"approval_link,omitempty"`
	Message               string    `json:"message,omitempty"`
	Stage                 string    `json:"stage,omitempty"`
	Approved              bool      `json:"approved,omitempty"`
	RequiresOwnerApproval bool      `json:"requires_owner_approval"`
	OccurredAt            time.Time `json:"occurred_at"`
}

// KafkaNotifier publishes order notification events keyed by order id, so one
// order's events stay in a single partition and arrive in order.
type KafkaNotifier struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaNotifier(cfg *config.Kafka, log *zap.Logger) (*KafkaNotifier, error) {
	brokers := make([]string, 0)
	for _, b := range strings.Split(cfg.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaNotifier{writer: writer, logger: log}, nil
}

func (n *KafkaNotifier) ApprovalRequested(ctx context.Context, order *domain.Order, recipient string, approvalLink string, message string) error {
	return n.publish(ctx, order.ID.String(), Event{
		Type:                  EventApprovalRequested,
		OrderID:               order.ID.String(),
		OrderNumber:           order.Number,
		Recipient:             recipient,
		ApprovalLink:          approvalLink,
		Message:               message,
		RequiresOwnerApproval: order.RequiresOwnerApproval,
		OccurredAt:            time.Now().UTC(),
	})
}

func (n *KafkaNotifier) DecisionMade(ctx context.Context, order *domain.Order, stage string, approved bool) error {
	return n.publish(ctx, order.ID.String(), Event{
		Type:                  EventDecisionMade,
		OrderID:               order.ID.String(),
		OrderNumber:           order.Number,
		Stage:                 stage,
		Approved:              approved,
		RequiresOwnerApproval: order.RequiresOwnerApproval,
		OccurredAt:            time.Now().UTC(),
	})
}

func (n *KafkaNotifier) publish(ctx context.Context, key string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	n.logger.Debug("publish notification",
		zap.String("type", event.Type), zap.String("order", event.OrderNumber))

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
