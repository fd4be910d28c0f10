package handler

import (
	"errors"
	"net/http"

	"cinemashop/internal/app/cinema/entity"
	"cinemashop/internal/app/cinema/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler обрабатывает HTTP запросы истории заказов с использованием Gin
type OrderHandler struct {
	orderService service.OrderServiceInterface
}

// NewOrderHandler создает новый обработчик заказов
func NewOrderHandler(orderService service.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GetUserOrders обрабатывает GET /orders
// Возвращает все заказы аутентифицированного пользователя
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	orders, err := h.orderService.GetUserOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
		return
	}

	c.JSON(http.StatusOK, entity.OrderListResponse{Orders: orders, Total: len(orders)})
}

// GetOrder обрабатывает GET /orders/{id}
// Получает заказ по ID с проверкой прав доступа
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID, userID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
