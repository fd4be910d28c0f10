package repository

import (
	"context"
	"errors"
	"time"

	"cinemashop/internal/app/cinema/entity"

	"github.com/google/uuid"
)

var (
	// Стандартные ошибки репозиториев для обработки в service layer
	ErrMovieNotFound     = errors.New("movie not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrDuplicateCartItem = errors.New("movie already in cart")
	ErrOrderNotFound     = errors.New("order not found")
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	GetAll(ctx context.Context) ([]entity.Movie, error)
	List(ctx context.Context, skip, limit int) ([]entity.Movie, error)
	Filter(ctx context.Context, filter *entity.MovieFilter) ([]entity.Movie, error)
}

type CartRepository interface {
	Create(ctx context.Context, item *entity.CartItem) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)
	DeleteByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type OrderRepository interface {
	// Checkout атомарно создаёт заказ с позициями и очищает корзину пользователя
	Checkout(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Order, error)
}

type ReactionRepository interface {
	Create(ctx context.Context, reaction *entity.Reaction) error
	CountByMovieID(ctx context.Context, movieID uuid.UUID) (*entity.ReactionSummary, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByMovieID(ctx context.Context, movieID string) ([]entity.Comment, error)
}
