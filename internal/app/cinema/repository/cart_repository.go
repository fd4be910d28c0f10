package repository

import (
	"context"
	"errors"
	"time"

	"cinemashop/internal/app/cinema/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository создает новый репозиторий корзины
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// Create добавляет позицию в корзину
// Уникальный индекс (user_id, movie_id) защищает от дублей на уровне БД
func (r *cartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	result := r.db.WithContext(ctx).Create(item)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return ErrDuplicateCartItem
		}
		return result.Error
	}

	return nil
}

// GetByUserID получает содержимое корзины пользователя вместе с фильмами
func (r *cartRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	var items []entity.CartItem
	result := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items)

	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// DeleteByUserAndMovie удаляет конкретный фильм из корзины пользователя
func (r *cartRepository) DeleteByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&entity.CartItem{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// DeleteByUserID очищает корзину пользователя целиком
// Пустая корзина не считается ошибкой
func (r *cartRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entity.CartItem{})

	return result.Error
}

// DeleteOlderThan удаляет позиции, добавленные раньше cutoff
// Вызывается фоновой очисткой корзин по расписанию
func (r *cartRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&entity.CartItem{})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
