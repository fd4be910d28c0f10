package service

import (
	"context"
	"testing"

	"cinemashop/internal/app/cinema/entity"
	"cinemashop/internal/app/cinema/repository"
	"cinemashop/internal/app/cinema/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// ===================== GetUserOrders Tests =====================

func TestGetUserOrders_Success(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	service := NewOrderService(orderRepo)

	ctx := context.Background()
	userID := uuid.New()

	orders := []entity.Order{
		{ID: uuid.New(), UserID: userID, TotalPrice: 22.49},
		{ID: uuid.New(), UserID: userID, TotalPrice: 9.99},
	}

	orderRepo.On("GetByUserID", ctx, userID).Return(orders, nil)

	// Act
	result, err := service.GetUserOrders(ctx, userID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	orderRepo.AssertExpectations(t)
}

// ===================== GetOrder Tests =====================

func TestGetOrder_Success(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	service := NewOrderService(orderRepo)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, UserID: userID, TotalPrice: 22.49}

	orderRepo.On("GetByID", ctx, orderID).Return(order, nil)

	// Act
	result, err := service.GetOrder(ctx, orderID, userID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, order, result)
}

func TestGetOrder_NotFound(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	service := NewOrderService(orderRepo)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.On("GetByID", ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	// Act
	result, err := service.GetOrder(ctx, orderID, uuid.New())

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrder_WrongUser(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	service := NewOrderService(orderRepo)

	ctx := context.Background()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, UserID: uuid.New(), TotalPrice: 22.49}

	orderRepo.On("GetByID", ctx, orderID).Return(order, nil)

	// Act: запрашивает другой пользователь
	result, err := service.GetOrder(ctx, orderID, uuid.New())

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
