package repository

import (
	"context"
	"errors"
	"fmt"

	"cinemashop/internal/app/cinema/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reactionRepository struct {
	db *pgxpool.Pool // Пул соединений с PostgreSQL для работы с реакциями
}

// NewReactionRepository создает новый репозиторий реакций
func NewReactionRepository(db *pgxpool.Pool) ReactionRepository {
	return &reactionRepository{db: db}
}

// Create создает новую реакцию в PostgreSQL
// Foreign key на movies гарантирует существование фильма
func (r *reactionRepository) Create(ctx context.Context, reaction *entity.Reaction) error {
	query := `
		INSERT INTO reactions (id, movie_id, type, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, reaction.ID, reaction.MovieID, reaction.Type, reaction.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return ErrMovieNotFound
		}
		return fmt.Errorf("failed to create reaction: %w", err)
	}

	return nil
}

// CountByMovieID получает агрегированные счётчики лайков и дизлайков фильма
// Фильм без реакций даёт нулевые счётчики, не ошибку
func (r *reactionRepository) CountByMovieID(ctx context.Context, movieID uuid.UUID) (*entity.ReactionSummary, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE type = 'like'),
			COUNT(*) FILTER (WHERE type = 'dislike')
		FROM reactions
		WHERE movie_id = $1
	`

	summary := entity.ReactionSummary{MovieID: movieID}
	err := r.db.QueryRow(ctx, query, movieID).Scan(&summary.Likes, &summary.Dislikes)
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions: %w", err)
	}

	return &summary, nil
}
