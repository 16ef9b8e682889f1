package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velstore/orderflow/internal/core/port"
	"go.uber.org/zap"
)

// ResubmitHandler serves the rejected-order edit window: item edits, address
// edits and the re-approval request are each their own atomic call.
type ResubmitHandler struct {
	Handler
	service port.Service
}

func NewResubmitHandler(service port.Service, logger *zap.Logger) (*ResubmitHandler, error) {
	return &ResubmitHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type editItemsRequest struct {
	Items []itemRequest `json:"items" binding:"required"`
}

func (rh *ResubmitHandler) EditItems(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	req := editItemsRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	items := make([]port.ItemRequest, 0, len(req.Items))
	for _, ir := range req.Items {
		items = append(items, port.ItemRequest{ProductID: ir.ProductID, Quantity: ir.Quantity})
	}

	order, err := rh.service.EditOrderItems(ctx, orderID, getActor(ctx), items)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, newOrderResponse(order))
}

type editAddressesRequest struct {
	ShippingAddress addressRequest `json:"shippingAddress" binding:"required"`
	BillingAddress  addressRequest `json:"billingAddress" binding:"required"`
}

func (rh *ResubmitHandler) EditAddresses(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	req := editAddressesRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	order, err := rh.service.EditOrderAddresses(ctx, orderID, getActor(ctx),
		req.ShippingAddress.toDomain(), req.BillingAddress.toDomain())
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, newOrderResponse(order))
}

type reapprovalRequest struct {
	Notes      string `json:"notes"`
	OwnerEmail string `json:"ownerEmail"`
}

// RequestReapproval resubmits a rejected order. The response carries the new
// order number: resubmission creates a new record, it never mutates the
// rejected one.
func (rh *ResubmitHandler) RequestReapproval(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	req := reapprovalRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	order, err := rh.service.RequestReapproval(ctx, orderID, getActor(ctx), req.Notes, req.OwnerEmail)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccessWithStatus(ctx, orderCreatedResponse{
		OrderID:     order.ID.String(),
		OrderNumber: order.Number,
	}, http.StatusCreated)
}
