package handlers

import (
	"net/http"
	"strconv"
	"time"

	"resto_manager/internal/middleware"
	"resto_manager/internal/repository"
	"resto_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) List(c *gin.Context) {
	page, limit := paginationParams(c)
	filter := repository.OrderFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("paymentStatus"),
		Page:          page,
		Limit:         limit,
	}
	if tableID, err := strconv.ParseUint(c.Query("table"), 10, 32); err == nil {
		filter.TableID = uint(tableID)
	}
	if waiterID, err := strconv.ParseUint(c.Query("waiter"), 10, 32); err == nil {
		filter.WaiterID = uint(waiterID)
	}
	if start, err := time.Parse(time.RFC3339, c.Query("startDate")); err == nil {
		filter.StartDate = &start
	}
	if end, err := time.Parse(time.RFC3339, c.Query("endDate")); err == nil {
		filter.EndDate = &end
	}

	orders, total, err := h.orderService.ListOrders(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"orders":     orders,
		"pagination": buildPagination(page, limit, total),
	})
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"order": order})
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	order, err := h.orderService.CreateOrder(req, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Order created successfully", gin.H{"order": order})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status             string `json:"status" binding:"required"`
		CancellationReason string `json:"cancellation_reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	order, err := h.orderService.UpdateStatus(id, req.Status, req.CancellationReason, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Order status updated successfully", gin.H{"order": order})
}

func (h *OrderHandler) ProcessPayment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req struct {
		PaymentMethod string  `json:"payment_method" binding:"required"`
		AmountPaid    float64 `json:"amount_paid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	result, err := h.orderService.ProcessPayment(id, req.PaymentMethod, req.AmountPaid, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Payment processed successfully", gin.H{
		"order":  result.Order,
		"change": result.Change,
	})
}

func (h *OrderHandler) GetActive(c *gin.Context) {
	orders, err := h.orderService.GetActiveOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"orders": orders})
}

func (h *OrderHandler) GetToday(c *gin.Context) {
	orders, err := h.orderService.GetTodaysOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"orders": orders})
}

func (h *OrderHandler) UpdateItemStatus(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.orderService.UpdateItemStatus(orderID, itemID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Order item status updated successfully", gin.H{"order": order})
}
