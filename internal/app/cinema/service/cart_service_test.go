package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cinemashop/internal/app/cinema/entity"
	"cinemashop/internal/app/cinema/repository"
	"cinemashop/internal/app/cinema/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartService() (*CartService, *mocks.MockCartRepository, *mocks.MockMovieRepository, *mocks.MockOrderRepository, *mocks.MockMessagePublisher) {
	cartRepo := new(mocks.MockCartRepository)
	movieRepo := new(mocks.MockMovieRepository)
	orderRepo := new(mocks.MockOrderRepository)
	producer := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}

	return NewCartService(cartRepo, movieRepo, orderRepo, producer), cartRepo, movieRepo, orderRepo, producer
}

// ===================== AddItem Tests =====================

func TestAddItem_Success(t *testing.T) {
	// Arrange
	service, cartRepo, movieRepo, _, _ := newCartService()

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()

	movie := &entity.Movie{
		ID:    movieID,
		Name:  "Inception",
		Price: 9.99,
	}

	movieRepo.On("GetByID", ctx, movieID).Return(movie, nil)
	cartRepo.On("Create", ctx, mock.AnythingOfType("*entity.CartItem")).Return(nil)

	// Act
	item, err := service.AddItem(ctx, userID, movieID)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, item)
	assert.Equal(t, userID, item.UserID)
	assert.Equal(t, movieID, item.MovieID)
	assert.Equal(t, movie, item.Movie)

	cartRepo.AssertExpectations(t)
	movieRepo.AssertExpectations(t)
}

func TestAddItem_MovieNotFound(t *testing.T) {
	// Arrange
	service, cartRepo, movieRepo, _, _ := newCartService()

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()

	movieRepo.On("GetByID", ctx, movieID).Return(nil, repository.ErrMovieNotFound)

	// Act
	item, err := service.AddItem(ctx, userID, movieID)

	// Assert
	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrMovieNotFound)

	cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddItem_Duplicate(t *testing.T) {
	// Arrange
	service, cartRepo, movieRepo, _, _ := newCartService()

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()

	movie := &entity.Movie{ID: movieID, Name: "Inception", Price: 9.99}

	movieRepo.On("GetByID", ctx, movieID).Return(movie, nil)
	cartRepo.On("Create", ctx, mock.AnythingOfType("*entity.CartItem")).Return(repository.ErrDuplicateCartItem)

	// Act
	item, err := service.AddItem(ctx, userID, movieID)

	// Assert
	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrAlreadyInCart)
}

// ===================== RemoveItem Tests =====================

func TestRemoveItem_Success(t *testing.T) {
	// Arrange
	service, cartRepo, _, _, _ := newCartService()

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()

	cartRepo.On("DeleteByUserAndMovie", ctx, userID, movieID).Return(nil)

	// Act
	err := service.RemoveItem(ctx, userID, movieID)

	// Assert
	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestRemoveItem_NotFound(t *testing.T) {
	// Arrange
	service, cartRepo, _, _, _ := newCartService()

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()

	cartRepo.On("DeleteByUserAndMovie", ctx, userID, movieID).Return(repository.ErrCartItemNotFound)

	// Act
	err := service.RemoveItem(ctx, userID, movieID)

	// Assert
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

// ===================== GetCart Tests =====================

func TestGetCart_Success(t *testing.T) {
	// Arrange
	service, cartRepo, _, _, _ := newCartService()

	ctx := context.Background()
	userID := uuid.New()

	items := []entity.CartItem{
		{ID: uuid.New(), UserID: userID, MovieID: uuid.New()},
		{ID: uuid.New(), UserID: userID, MovieID: uuid.New()},
	}

	cartRepo.On("GetByUserID", ctx, userID).Return(items, nil)

	// Act
	result, err := service.GetCart(ctx, userID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestGetCart_Empty(t *testing.T) {
	// Arrange
	service, cartRepo, _, _, _ := newCartService()

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.On("GetByUserID", ctx, userID).Return([]entity.CartItem{}, nil)

	// Act
	result, err := service.GetCart(ctx, userID)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, result)
}

// ===================== Clear Tests =====================

func TestClear_Success(t *testing.T) {
	// Arrange
	service, cartRepo, _, _, _ := newCartService()

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.On("DeleteByUserID", ctx, userID).Return(nil)

	// Act
	err := service.Clear(ctx, userID)

	// Assert
	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

// ===================== Checkout Tests =====================

func TestCheckout_Success(t *testing.T) {
	// Arrange
	service, cartRepo, _, orderRepo, producer := newCartService()

	ctx := context.Background()
	userID := uuid.New()
	movieA := uuid.New()
	movieB := uuid.New()

	items := []entity.CartItem{
		{
			ID:      uuid.New(),
			UserID:  userID,
			MovieID: movieA,
			Movie:   &entity.Movie{ID: movieA, Name: "Inception", Price: 9.99},
		},
		{
			ID:      uuid.New(),
			UserID:  userID,
			MovieID: movieB,
			Movie:   &entity.Movie{ID: movieB, Name: "Interstellar", Price: 12.50},
		},
	}

	cartRepo.On("GetByUserID", ctx, userID).Return(items, nil)
	orderRepo.On("Checkout", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	producer.On("PublishMessage", ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil)

	// Act
	order, err := service.Checkout(ctx, userID)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, userID, order.UserID)
	assert.Len(t, order.Items, 2)
	// TotalPrice = 9.99 + 12.50 = 22.49
	assert.InDelta(t, 22.49, order.TotalPrice, 0.001)

	// Снимок цен на момент покупки
	assert.Equal(t, "Inception", order.Items[0].MovieName)
	assert.Equal(t, 9.99, order.Items[0].Price)

	// Событие ORDER_CREATED ушло в Kafka
	assert.Len(t, producer.Messages, 1)
	var event entity.OrderEvent
	assert.NoError(t, json.Unmarshal(producer.Messages[0], &event))
	assert.Equal(t, "ORDER_CREATED", event.EventType)
	assert.Equal(t, order.ID.String(), event.OrderID)
	assert.Equal(t, userID.String(), event.UserID)
	assert.Equal(t, 2, event.ItemsCount)

	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestCheckout_EmptyCart(t *testing.T) {
	// Arrange
	service, cartRepo, _, orderRepo, _ := newCartService()

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.On("GetByUserID", ctx, userID).Return([]entity.CartItem{}, nil)

	// Act
	order, err := service.Checkout(ctx, userID)

	// Assert
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrCartEmpty)

	orderRepo.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
}

func TestCheckout_RepositoryError_CartIntact(t *testing.T) {
	// Arrange
	service, cartRepo, _, orderRepo, producer := newCartService()

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()

	items := []entity.CartItem{
		{
			ID:      uuid.New(),
			UserID:  userID,
			MovieID: movieID,
			Movie:   &entity.Movie{ID: movieID, Name: "Inception", Price: 9.99},
		},
	}

	cartRepo.On("GetByUserID", ctx, userID).Return(items, nil)
	orderRepo.On("Checkout", ctx, mock.AnythingOfType("*entity.Order")).Return(errors.New("db connection lost"))

	// Act
	order, err := service.Checkout(ctx, userID)

	// Assert
	assert.Nil(t, order)
	assert.Error(t, err)

	// При сбое транзакции событие не публикуется
	assert.Empty(t, producer.Messages)
	cartRepo.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
}

func TestCheckout_KafkaError_OrderStillCreated(t *testing.T) {
	// Arrange
	service, cartRepo, _, orderRepo, producer := newCartService()

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()

	items := []entity.CartItem{
		{
			ID:        uuid.New(),
			UserID:    userID,
			MovieID:   movieID,
			CreatedAt: time.Now(),
			Movie:     &entity.Movie{ID: movieID, Name: "Inception", Price: 9.99},
		},
	}

	cartRepo.On("GetByUserID", ctx, userID).Return(items, nil)
	orderRepo.On("Checkout", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	producer.On("PublishMessage", ctx, mock.AnythingOfType("string"), mock.Anything).Return(errors.New("kafka unavailable"))

	// Act
	order, err := service.Checkout(ctx, userID)

	// Assert: ошибки Kafka не ломают оформление заказа
	assert.NoError(t, err)
	assert.NotNil(t, order)
}
