package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/adapter/config"
	"github.com/velstore/orderflow/internal/core/domain"
	"go.uber.org/zap"
)

// Client is the payment-gateway collaborator. Retry policy lives with the
// gateway; a decline here is final for the attempt.
type Client struct {
	logger *zap.Logger
	host   string
	http   *http.Client
}

func NewClient(cfg *config.Payment, log *zap.Logger) (*Client, error) {
	return &Client{
		host:   cfg.HostString,
		logger: log,
		http:   http.DefaultClient,
	}, nil
}

type paymentRequest struct {
	OrderID         string `json:"order_id"`
	Method          string `json:"method"`
	PaymentIntentID string `json:"payment_intent_id"`
}

type paymentResponse struct {
	Status string `json:"status"`
}

func (c *Client) ProcessPayment(ctx context.Context, orderID uuid.UUID, method string, paymentIntentID string) error {
	body, err := json.Marshal(paymentRequest{
		OrderID:         orderID.String(),
		Method:          method,
		PaymentIntentID: paymentIntentID,
	})
	if err != nil {
		return fmt.Errorf("error encoding payment request: %w", err)
	}

	requestStr := "http://" + c.host + "/api/payments"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		return domain.ErrPaymentDeclined
	default:
		c.logger.Error("unexpected status for payment request",
			zap.String("order", orderID.String()), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var result paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("error on response decode: %w", err)
	}
	if result.Status != "succeeded" {
		return domain.ErrPaymentDeclined
	}

	return nil
}
