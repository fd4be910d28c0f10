package repository

import (
	"context"
	"errors"

	"cinemashop/internal/app/cinema/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type movieRepository struct {
	db *gorm.DB // GORM DB для работы с PostgreSQL
}

// NewMovieRepository создает новый репозиторий фильмов
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// Create создает новый фильм в PostgreSQL
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	result := r.db.WithContext(ctx).Create(movie)
	return result.Error
}

// GetByID получает фильм по ID
func (r *movieRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	var movie entity.Movie
	result := r.db.WithContext(ctx).First(&movie, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, result.Error
	}

	return &movie, nil
}

// GetAll получает весь каталог в порядке добавления
// Результат кешируется в Redis через service layer
func (r *movieRepository) GetAll(ctx context.Context) ([]entity.Movie, error) {
	var movies []entity.Movie
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&movies)

	if result.Error != nil {
		return nil, result.Error
	}

	return movies, nil
}

// List получает страницу каталога в порядке добавления
func (r *movieRepository) List(ctx context.Context, skip, limit int) ([]entity.Movie, error) {
	var movies []entity.Movie
	result := r.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(skip).
		Limit(limit).
		Find(&movies)

	if result.Error != nil {
		return nil, result.Error
	}

	return movies, nil
}

// Filter получает фильмы, удовлетворяющие всем заданным предикатам
// Отсутствующие параметры фильтра не ограничивают выборку
func (r *movieRepository) Filter(ctx context.Context, filter *entity.MovieFilter) ([]entity.Movie, error) {
	query := r.db.WithContext(ctx).Model(&entity.Movie{})

	if filter.Name != nil {
		query = query.Where("name ILIKE ?", "%"+*filter.Name+"%")
	}
	if filter.MinIMDB != nil {
		query = query.Where("imdb_rating >= ?", *filter.MinIMDB)
	}
	if filter.MaxIMDB != nil {
		query = query.Where("imdb_rating <= ?", *filter.MaxIMDB)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}

	var movies []entity.Movie
	result := query.Order("created_at ASC").Find(&movies)

	if result.Error != nil {
		return nil, result.Error
	}

	return movies, nil
}
