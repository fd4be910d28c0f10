package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cinemashop/internal/app/cinema/entity"
	"cinemashop/internal/app/cinema/infrastructure"
	"cinemashop/internal/app/cinema/repository"
	"cinemashop/pkg/logger"
	"cinemashop/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrAlreadyInCart    = errors.New("movie already in cart")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("cart is empty")
)

// CartService обрабатывает бизнес-логику корзины и оформления заказов
type CartService struct {
	cartRepo  repository.CartRepository
	movieRepo repository.MovieRepository
	orderRepo repository.OrderRepository
	producer  infrastructure.MessagePublisher
}

// NewCartService создает новый сервис корзины с внедрением зависимостей
func NewCartService(
	cartRepo repository.CartRepository,
	movieRepo repository.MovieRepository,
	orderRepo repository.OrderRepository,
	producer infrastructure.MessagePublisher,
) *CartService {
	return &CartService{
		cartRepo:  cartRepo,
		movieRepo: movieRepo,
		orderRepo: orderRepo,
		producer:  producer,
	}
}

// AddItem добавляет фильм в корзину пользователя
// Повторное добавление того же фильма возвращает ErrAlreadyInCart
func (s *CartService) AddItem(ctx context.Context, userID, movieID uuid.UUID) (*entity.CartItem, error) {
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to verify movie: %w", err)
	}

	item := &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		MovieID:   movieID,
		CreatedAt: time.Now(),
	}

	if err := s.cartRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateCartItem) {
			return nil, ErrAlreadyInCart
		}
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}

	item.Movie = movie

	metrics.CartItemsAdded.Inc()

	return item, nil
}

// RemoveItem удаляет фильм из корзины пользователя
func (s *CartService) RemoveItem(ctx context.Context, userID, movieID uuid.UUID) error {
	if err := s.cartRepo.DeleteByUserAndMovie(ctx, userID, movieID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return ErrCartItemNotFound
		}
		return fmt.Errorf("failed to remove item from cart: %w", err)
	}

	return nil
}

// GetCart получает содержимое корзины пользователя с данными фильмов
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	items, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return items, nil
}

// Clear полностью очищает корзину пользователя
// Очистка пустой корзины не является ошибкой
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

// Checkout оформляет заказ из содержимого корзины
// Создание заказа и очистка корзины выполняются в одной транзакции:
// при сбое корзина остаётся нетронутой
func (s *CartService) Checkout(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	items, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if len(items) == 0 {
		metrics.Checkouts.WithLabelValues("empty_cart").Inc()
		return nil, ErrCartEmpty
	}

	order := &entity.Order{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	// Снимок цен и названий на момент покупки:
	// последующие изменения каталога не меняют историю заказов
	var total float64
	for _, item := range items {
		if item.Movie == nil {
			return nil, fmt.Errorf("cart item %s has no movie loaded", item.ID)
		}

		order.Items = append(order.Items, entity.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			MovieID:   item.MovieID,
			MovieName: item.Movie.Name,
			Price:     item.Movie.Price,
		})
		total += item.Movie.Price
	}
	order.TotalPrice = total

	if err := s.orderRepo.Checkout(ctx, order); err != nil {
		metrics.Checkouts.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("failed to checkout: %w", err)
	}

	// Заказ уже сохранён, ошибки Kafka не критичны
	s.publishOrderCreated(ctx, order)

	metrics.Checkouts.WithLabelValues("success").Inc()
	metrics.OrdersCreated.Inc()
	metrics.OrdersTotalAmount.Add(total)

	return order, nil
}

// publishOrderCreated отправляет событие ORDER_CREATED в Kafka
func (s *CartService) publishOrderCreated(ctx context.Context, order *entity.Order) {
	event := entity.OrderEvent{
		EventType:  "ORDER_CREATED",
		OrderID:    order.ID.String(),
		UserID:     order.UserID.String(),
		TotalPrice: order.TotalPrice,
		ItemsCount: len(order.Items),
		Timestamp:  time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("Failed to marshal order event")
		return
	}

	if err := s.producer.PublishMessage(ctx, order.ID.String(), data); err != nil {
		logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("Failed to publish order event")
	}
}
