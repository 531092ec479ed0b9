package handlers

import (
	"net/http"
	"strconv"
	"time"

	orderRepo "washex/database/repository/order"
	"washex/services/order"
	"washex/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler exposes order creation, mutation and lookups.
type OrderHandler struct {
	Service order.OrderService
	logger  *zap.Logger
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(svc order.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{Service: svc, logger: logger}
}

// CreateOrdersHandler handles POST /api/orders. One submission may
// produce several orders, one per service tier.
func (h *OrderHandler) CreateOrdersHandler(c *gin.Context) {
	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid order payload", err.Error())
		return
	}

	created, err := h.Service.CreateOrders(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Order creation failed", zap.String("customer", req.CustomerID), zap.Error(err))
		// Orders persisted before the failure are reported so staff can
		// follow up instead of re-submitting everything.
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "created": created})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"orders": created})
}

// GetOrderHandler handles GET /api/orders/:code.
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	code := c.Param("code")
	ord, err := h.Service.GetOrder(c.Request.Context(), code)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ord)
}

// UpdateOrderHandler handles PATCH /api/orders/:code with a partial
// update document.
func (h *OrderHandler) UpdateOrderHandler(c *gin.Context) {
	code := c.Param("code")
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload", err.Error())
		return
	}

	ord, err := h.Service.UpdateOrder(c.Request.Context(), code, patch)
	if err != nil {
		h.logger.Error("Order update failed", zap.String("code", code), zap.Error(err))
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ord)
}

// ListOrdersHandler handles GET /api/orders with optional filters.
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	q := orderRepo.OrderQuery{
		Status:     c.Query("status"),
		CustomerID: c.Query("customerId"),
		Source:     c.Query("source"),
	}
	if day, ok := parseDayQuery(c, "pickupDate"); ok {
		q.PickupDay = day
	}
	if day, ok := parseDayQuery(c, "deliveryDate"); ok {
		q.DeliveryDay = day
	}
	if limit, err := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64); err == nil {
		q.Limit = limit
	}
	if skip, err := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64); err == nil {
		q.Skip = skip
	}

	orders, err := h.Service.ListOrders(c.Request.Context(), q)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// parseDayQuery reads an optional YYYY-MM-DD query parameter.
func parseDayQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, false
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	return &day, true
}

// OrderStatsHandler handles GET /api/orders/stats.
func (h *OrderHandler) OrderStatsHandler(c *gin.Context) {
	counts, err := h.Service.StatusCounts(c.Request.Context())
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"statusCounts": counts})
}
