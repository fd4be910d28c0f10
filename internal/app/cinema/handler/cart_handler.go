package handler

import (
	"errors"
	"net/http"

	"cinemashop/internal/app/cinema/entity"
	"cinemashop/internal/app/cinema/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CartHandler обрабатывает HTTP запросы корзины с использованием Gin
type CartHandler struct {
	cartService service.CartServiceInterface
	validator   *validator.Validate
}

// NewCartHandler создает новый обработчик корзины
func NewCartHandler(cartService service.CartServiceInterface) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// AddItem обрабатывает POST /cart/items
// Добавляет фильм в корзину, повторное добавление возвращает 409
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req entity.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	item, err := h.cartService.AddItem(c.Request.Context(), userID, req.MovieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		if errors.Is(err, service.ErrAlreadyInCart) {
			c.JSON(http.StatusConflict, gin.H{"error": "Movie already in cart"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveItem обрабатывает DELETE /cart/items/{movie_id}
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	movieID, err := uuid.Parse(c.Param("movie_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), userID, movieID); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not in cart"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCart обрабатывает GET /cart
// Возвращает содержимое корзины пользователя
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	items, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cart"})
		return
	}

	c.JSON(http.StatusOK, entity.CartResponse{Items: items, Total: len(items)})
}

// Checkout обрабатывает POST /cart/checkout
// Оформляет заказ из содержимого корзины, пустая корзина возвращает 409
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	order, err := h.cartService.Checkout(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) {
			c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to checkout"})
		return
	}

	c.JSON(http.StatusOK, entity.CheckoutResponse{Message: "Order created", Order: order})
}

// Clear обрабатывает DELETE /cart/clear
// Полностью очищает корзину, очистка пустой корзины тоже успешна
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.Status(http.StatusNoContent)
}
