package util

import (
	"context"
	"time"

	"cinemashop/internal/app/cinema/entity"
)

// MovieCache интерфейс для работы с Redis кешем каталога
// Используется для dependency injection и упрощения тестирования
type MovieCache interface {
	SetMovies(ctx context.Context, movies []entity.Movie, ttl time.Duration) error
	GetMovies(ctx context.Context) ([]entity.Movie, error)
	DeleteMovies(ctx context.Context) error
	Close() error
}
