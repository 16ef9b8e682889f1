package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/core/domain"
	"github.com/velstore/orderflow/internal/core/port"
	"go.uber.org/zap"
)

// ItemHandler mutates the line items of a pending order. Two editing modes:
// an admin bearer session, or the order's owner token passed per call.
type ItemHandler struct {
	Handler
	service port.Service
}

func NewItemHandler(service port.Service, logger *zap.Logger) (*ItemHandler, error) {
	return &ItemHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
	Token     string `json:"token"`
}

func (ih *ItemHandler) AddItem(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		ih.handleError(ctx, err)
		return
	}

	req := addItemRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ih.handleValidationError(ctx, err)
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	order, err := ih.service.AddItem(ctx, orderID, editorActor(ctx, req.Token), req.ProductID, quantity)
	if err != nil {
		ih.handleError(ctx, err)
		return
	}

	ih.handleSuccess(ctx, newOrderResponse(order))
}

type updateQuantityRequest struct {
	Quantity int    `json:"quantity"`
	Token    string `json:"token"`
}

func (ih *ItemHandler) UpdateItemQuantity(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		ih.handleError(ctx, err)
		return
	}
	itemID, err := itemIDParam(ctx)
	if err != nil {
		ih.handleError(ctx, err)
		return
	}

	req := updateQuantityRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ih.handleValidationError(ctx, err)
		return
	}

	order, err := ih.service.UpdateItemQuantity(ctx, orderID, editorActor(ctx, req.Token), itemID, req.Quantity)
	if err != nil {
		ih.handleError(ctx, err)
		return
	}

	ih.handleSuccess(ctx, newOrderResponse(order))
}

func (ih *ItemHandler) RemoveItem(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		ih.handleError(ctx, err)
		return
	}
	itemID, err := itemIDParam(ctx)
	if err != nil {
		ih.handleError(ctx, err)
		return
	}

	order, err := ih.service.RemoveItem(ctx, orderID, editorActor(ctx, ctx.Query("token")), itemID)
	if err != nil {
		ih.handleError(ctx, err)
		return
	}

	ih.handleSuccess(ctx, newOrderResponse(order))
}

// editorActor prefers an explicit owner token over the request session. The
// token is a per-call credential, never stored as a session.
func editorActor(ctx *gin.Context, token string) domain.Actor {
	if token != "" {
		return domain.OwnerActor(token)
	}
	return getActor(ctx)
}

func itemIDParam(ctx *gin.Context) (uuid.UUID, error) {
	itemID, err := uuid.Parse(ctx.Param("itemId"))
	if err != nil {
		return uuid.Nil, domain.ErrBadRequest
	}
	return itemID, nil
}
