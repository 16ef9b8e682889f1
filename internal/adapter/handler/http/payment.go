package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/velstore/orderflow/internal/adapter/metrics"
	"github.com/velstore/orderflow/internal/core/domain"
	"github.com/velstore/orderflow/internal/core/port"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.Service
	metrics *metrics.Metrics
}

func NewPaymentHandler(service port.Service, m *metrics.Metrics, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
		metrics: m,
	}, nil
}

type payRequest struct {
	Method          string `json:"method" binding:"required"`
	PaymentIntentID string `json:"paymentIntentId"`
}

func (ph *PaymentHandler) Pay(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	req := payRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	order, err := ph.service.Pay(ctx, orderID, getActor(ctx), req.Method, req.PaymentIntentID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentDeclined) {
			ph.metrics.Payments.WithLabelValues("declined").Inc()
		}
		ph.handleError(ctx, err)
		return
	}

	ph.metrics.Payments.WithLabelValues("paid").Inc()
	ph.handleSuccess(ctx, newOrderResponse(order))
}
