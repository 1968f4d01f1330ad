package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/services"

	apperrors "github.com/stackmart/marketplace-backend/internal/pkg/errors"
)

// OrderRequest names the products to attach. The list may be empty; ids that
// do not resolve to a product are ignored downstream.
type OrderRequest struct {
	ProductIDs []int64 `json:"productIds" binding:"omitempty,dive,gt=0"`
}

type OrderHandler struct {
	log          *logger.Logger
	orderService services.OrderService
}

func NewOrderHandler(log *logger.Logger, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		log:          log.With("handler", "OrderHandler"),
		orderService: orderService,
	}
}

func (oh *OrderHandler) GetOrders(c *gin.Context) {
	oh.log.Info("Getting all orders")
	orders, err := oh.orderService.GetOrders(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oh *OrderHandler) GetOrder(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	order, err := oh.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oh *OrderHandler) GetOrdersByCustomerID(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	orders, err := oh.orderService.GetOrdersByCustomerID(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oh *OrderHandler) GetOrdersByProductID(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	orders, err := oh.orderService.GetOrdersByProductID(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder takes the owning customer id in the path.
func (oh *OrderHandler) CreateOrder(c *gin.Context) {
	customerID, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.Invalidf("%s", err.Error()))
		return
	}
	oh.log.Info("Creating order", "customer_id", customerID)
	order, err := oh.orderService.CreateOrder(c.Request.Context(), customerID, req.ProductIDs)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (oh *OrderHandler) UpdateOrder(c *gin.Context) {
	orderID, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.Invalidf("%s", err.Error()))
		return
	}
	order, err := oh.orderService.UpdateOrder(c.Request.Context(), orderID, req.ProductIDs)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oh *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	if err := oh.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
