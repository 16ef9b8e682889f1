package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/velstore/orderflow/internal/adapter/metrics"
	"github.com/velstore/orderflow/internal/core/domain"
	"github.com/velstore/orderflow/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
	metrics *metrics.Metrics
}

func NewOrderHandler(service port.Service, m *metrics.Metrics, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
		metrics: m,
	}, nil
}

type addressRequest struct {
	Name       string `json:"name"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	Region     string `json:"region"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone"`
}

func (a addressRequest) toDomain() domain.Address {
	return domain.Address{
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

type itemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type requestApprovalRequest struct {
	OwnerEmail            string         `json:"ownerEmail"`
	RequiresOwnerApproval bool           `json:"requiresOwnerApproval"`
	Items                 []itemRequest  `json:"items" binding:"required"`
	ShippingAddress       addressRequest `json:"shippingAddress"`
	BillingAddress        addressRequest `json:"billingAddress"`
}

type orderCreatedResponse struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

// RequestApproval submits a new order into the approval workflow. Guests are
// allowed: the user id comes from the session when one is present.
func (oh *OrderHandler) RequestApproval(ctx *gin.Context) {
	req := requestApprovalRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]port.ItemRequest, 0, len(req.Items))
	for _, ir := range req.Items {
		quantity := ir.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items = append(items, port.ItemRequest{ProductID: ir.ProductID, Quantity: quantity})
	}

	order, err := oh.service.RequestApproval(ctx, port.ApprovalRequest{
		UserID:                getActor(ctx).UserID,
		OwnerEmail:            req.OwnerEmail,
		RequiresOwnerApproval: req.RequiresOwnerApproval,
		Items:                 items,
		ShippingAddress:       req.ShippingAddress.toDomain(),
		BillingAddress:        req.BillingAddress.toDomain(),
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, orderCreatedResponse{
		OrderID:     order.ID.String(),
		OrderNumber: order.Number,
	}, http.StatusCreated)
}

// GetOrder returns the order snapshot. `?token=` selects the owner-token
// path; otherwise the session actor from the middleware applies.
func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	actor := getActor(ctx)
	if token := ctx.Query("token"); token != "" {
		actor = domain.OwnerActor(token)
	}

	order, err := oh.service.GetOrder(ctx, orderID, actor)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

type updateStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	ApprovalNotes string `json:"approvalNotes"`
}

// UpdateStatus is the admin stage decision endpoint.
func (oh *OrderHandler) UpdateStatus(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	req := updateStatusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	var approve bool
	switch domain.OrderStatus(req.Status) {
	case domain.OrderStatusApproved:
		approve = true
	case domain.OrderStatusRejected:
		approve = false
	default:
		oh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.AdminDecide(ctx, orderID, getActor(ctx), approve, req.ApprovalNotes)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.metrics.Decisions.WithLabelValues("admin", decisionOutcome(approve)).Inc()
	oh.handleSuccess(ctx, newOrderResponse(order))
}

type ownerDecisionRequest struct {
	Token          string `json:"token" binding:"required"`
	Approved       bool   `json:"approved"`
	ApprovalNotes  string `json:"approvalNotes"`
	RejectionNotes string `json:"rejectionNotes"`
}

// OwnerDecision settles the owner stage. The route carries no session: the
// token from the body is the only credential, and a 401 here means exactly
// "this token is invalid".
func (oh *OrderHandler) OwnerDecision(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	req := ownerDecisionRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	notes := req.ApprovalNotes
	if !req.Approved {
		notes = req.RejectionNotes
	}

	order, err := oh.service.OwnerDecide(ctx, orderID, req.Token, req.Approved, notes)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.metrics.Decisions.WithLabelValues("owner", decisionOutcome(req.Approved)).Inc()
	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) DeleteOrder(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	if err := oh.service.DeleteOrder(ctx, orderID, getActor(ctx)); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func decisionOutcome(approved bool) string {
	if approved {
		return "approved"
	}
	return "rejected"
}

func orderIDParam(ctx *gin.Context) (uuid.UUID, error) {
	raw := ctx.Param("id")
	if raw == "" {
		return uuid.Nil, domain.ErrMissingOrderID
	}
	orderID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrBadRequest
	}
	return orderID, nil
}

type itemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type orderResponse struct {
	ID                    string          `json:"id"`
	Number                string          `json:"orderNumber"`
	UserID                string          `json:"userId"`
	Status                string          `json:"status"`
	RequiresOwnerApproval bool            `json:"requiresOwnerApproval"`
	OwnerApproved         bool            `json:"ownerApproved"`
	OwnerRejected         bool            `json:"ownerRejected"`
	OwnerApprovalNotes    string          `json:"ownerApprovalNotes,omitempty"`
	OwnerRejectionNotes   string          `json:"ownerRejectionNotes,omitempty"`
	ApprovalNotes         string          `json:"approvalNotes,omitempty"`
	PaymentStatus         string          `json:"paymentStatus,omitempty"`
	Items                 []itemResponse  `json:"items"`
	ShippingAddress       domain.Address  `json:"shippingAddress"`
	BillingAddress        domain.Address  `json:"billingAddress"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	Tax                   decimal.Decimal `json:"tax"`
	Shipping              decimal.Decimal `json:"shipping"`
	Total                 decimal.Decimal `json:"total"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// newOrderResponse always renders the full order: every mutation returns the
// complete recomputed state so clients can discard optimistic totals.
func newOrderResponse(o *domain.Order) orderResponse {
	items := make([]itemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, itemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID,
			Title:     item.Title,
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return orderResponse{
		ID:                    o.ID.String(),
		Number:                o.Number,
		UserID:                o.UserID,
		Status:                string(o.Status),
		RequiresOwnerApproval: o.RequiresOwnerApproval,
		OwnerApproved:         o.OwnerApproved,
		OwnerRejected:         o.OwnerRejected,
		OwnerApprovalNotes:    o.OwnerApprovalNotes,
		OwnerRejectionNotes:   o.OwnerRejectionNotes,
		ApprovalNotes:         o.ApprovalNotes,
		PaymentStatus:         string(o.PaymentStatus),
		Items:                 items,
		ShippingAddress:       o.ShippingAddress,
		BillingAddress:        o.BillingAddress,
		Subtotal:              o.Subtotal,
		Tax:                   o.Tax,
		Shipping:              o.Shipping,
		Total:                 o.Total,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}
