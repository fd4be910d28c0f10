package service

import (
	"context"

	"cinemashop/internal/app/cinema/entity"

	"github.com/google/uuid"
)

// Интерфейсы сервисов для dependency injection в handlers
// Позволяют подменять реализацию в тестах

type CatalogServiceInterface interface {
	CreateMovie(ctx context.Context, req *entity.CreateMovieRequest) (*entity.Movie, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	ListMovies(ctx context.Context, skip, limit int) ([]entity.Movie, error)
	FilterMovies(ctx context.Context, filter *entity.MovieFilter) ([]entity.Movie, error)
	CreateReaction(ctx context.Context, req *entity.CreateReactionRequest) (*entity.Reaction, error)
	GetReactions(ctx context.Context, movieID uuid.UUID) (*entity.ReactionSummary, error)
	CreateComment(ctx context.Context, userID uuid.UUID, req *entity.CreateCommentRequest) (*entity.Comment, error)
	GetComments(ctx context.Context, movieID uuid.UUID) ([]entity.Comment, error)
}

type CartServiceInterface interface {
	AddItem(ctx context.Context, userID, movieID uuid.UUID) (*entity.CartItem, error)
	RemoveItem(ctx context.Context, userID, movieID uuid.UUID) error
	GetCart(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	Checkout(ctx context.Context, userID uuid.UUID) (*entity.Order, error)
}

type OrderServiceInterface interface {
	GetUserOrders(ctx context.Context, userID uuid.UUID) ([]entity.Order, error)
	GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error)
}
