package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/velstore/orderflow/internal/adapter/config"
	"github.com/velstore/orderflow/internal/adapter/metrics"
	"github.com/velstore/orderflow/internal/core/port"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	m *metrics.Metrics,
	orderHandler *OrderHandler,
	itemHandler *ItemHandler,
	resubmitHandler *ResubmitHandler,
	paymentHandler *PaymentHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(requestCounter(m))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.POST("/request-approval",
				optionalSessionAuth(tokenService, logger), orderHandler.RequestApproval)

			// The owner-approve route carries no session middleware on
			// purpose: its only credential is the order token in the body,
			// and a 401 from it must never log out a session elsewhere.
			orders.POST("/:id/owner-approve", orderHandler.OwnerDecision)

			// Item edits accept either an admin session or an owner token,
			// so the session here is optional too.
			orders.GET("/:id",
				optionalSessionAuth(tokenService, logger), orderHandler.GetOrder)
			orders.POST("/:id/items",
				optionalSessionAuth(tokenService, logger), itemHandler.AddItem)
			orders.PUT("/:id/items/:itemId",
				optionalSessionAuth(tokenService, logger), itemHandler.UpdateItemQuantity)
			orders.DELETE("/:id/items/:itemId",
				optionalSessionAuth(tokenService, logger), itemHandler.RemoveItem)

			authed := orders.Group("")
			authed.Use(sessionAuth(tokenService, logger))
			{
				authed.POST("/:id/edit-items", resubmitHandler.EditItems)
				authed.POST("/:id/edit-addresses", resubmitHandler.EditAddresses)
				authed.POST("/:id/request-reapproval", resubmitHandler.RequestReapproval)
				authed.POST("/:id/pay", paymentHandler.Pay)

				admin := authed.Group("")
				admin.Use(adminOnly(logger))
				{
					admin.PUT("/:id/status", orderHandler.UpdateStatus)
					admin.DELETE("/:id", orderHandler.DeleteOrder)
				}
			}
		}
	}

	return &Router{router}, nil
}

func requestCounter(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		handler := ctx.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		m.Requests.WithLabelValues(handler, strconv.Itoa(ctx.Writer.Status())).Inc()
	}
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
