package service

import (
	"context"
	"errors"
	"fmt"

	"cinemashop/internal/app/cinema/entity"
	"cinemashop/internal/app/cinema/repository"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrUnauthorized  = errors.New("unauthorized access to order")
)

// OrderService обрабатывает чтение истории заказов
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService создает новый сервис заказов
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// GetUserOrders получает все заказы пользователя
func (s *OrderService) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	orders, err := s.orderRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders: %w", err)
	}

	return orders, nil
}

// GetOrder получает заказ по ID с проверкой принадлежности пользователю
// Чужой заказ возвращает ErrUnauthorized, не раскрывая его содержимое
func (s *OrderService) GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order.UserID != userID {
		return nil, ErrUnauthorized
	}

	return order, nil
}
