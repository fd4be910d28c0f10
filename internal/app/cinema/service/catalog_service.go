package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinemashop/internal/app/cinema/entity"
	"cinemashop/internal/app/cinema/repository"
	"cinemashop/internal/app/cinema/util"
	"cinemashop/pkg/logger"
	"cinemashop/pkg/metrics"

	"github.com/google/uuid"
)

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrMovieNotFound = errors.New("movie not found")
)

const moviesCacheTTL = time.Hour

// CatalogService обрабатывает бизнес-логику каталога фильмов
// Координирует работу репозиториев и Redis кеша
type CatalogService struct {
	movieRepo    repository.MovieRepository
	reactionRepo repository.ReactionRepository
	commentRepo  repository.CommentRepository
	cache        util.MovieCache
}

// NewCatalogService создает новый сервис каталога с внедрением зависимостей
func NewCatalogService(
	movieRepo repository.MovieRepository,
	reactionRepo repository.ReactionRepository,
	commentRepo repository.CommentRepository,
	cache util.MovieCache,
) *CatalogService {
	return &CatalogService{
		movieRepo:    movieRepo,
		reactionRepo: reactionRepo,
		commentRepo:  commentRepo,
		cache:        cache,
	}
}

// === MOVIES ===

// CreateMovie создает новый фильм и инвалидирует кеш каталога
func (s *CatalogService) CreateMovie(ctx context.Context, req *entity.CreateMovieRequest) (*entity.Movie, error) {
	movie := &entity.Movie{
		ID:         uuid.New(),
		Name:       req.Name,
		IMDBRating: req.IMDBRating,
		Price:      req.Price,
		Year:       req.Year,
		CreatedAt:  time.Now(),
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	// Инвалидируем кеш каталога чтобы при следующем запросе загрузить свежие данные
	// Фильм уже создан, проблемы с кешем не критичны
	if err := s.cache.DeleteMovies(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate movies cache")
	}

	metrics.MoviesCreated.Inc()

	return movie, nil
}

// GetMovie получает фильм по ID
func (s *CatalogService) GetMovie(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return movie, nil
}

// ListMovies получает страницу каталога с кешированием полного списка в Redis
// Сначала проверяет кеш, если нет - загружает из БД и кеширует
func (s *CatalogService) ListMovies(ctx context.Context, skip, limit int) ([]entity.Movie, error) {
	movies, err := s.cache.GetMovies(ctx)
	if err != nil {
		// Redis недоступен - читаем страницу напрямую из БД, прогрев кеша не имеет смысла
		logger.Warn().Err(err).Msg("Failed to read movies cache")
		metrics.RecordRedisError("cinemashop", metrics.RedisOpGet)

		movies, err = s.movieRepo.List(ctx, skip, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to get movies: %w", err)
		}
		return movies, nil
	}
	if movies != nil {
		// Cache hit - страницу режем из закешированного списка
		metrics.RecordCacheHit("cinemashop", "movies")
		return pageOf(movies, skip, limit), nil
	}

	// Cache miss - загружаем каталог из PostgreSQL
	metrics.RecordCacheMiss("cinemashop", "movies")
	movies, err = s.movieRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}

	// Сохраняем в кеш для последующих запросов
	// Данные получены из БД, проблемы с кешем не критичны
	if err := s.cache.SetMovies(ctx, movies, moviesCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache movies")
	}

	return pageOf(movies, skip, limit), nil
}

// FilterMovies получает фильмы по конъюнктивному фильтру
// Фильтрованные запросы идут мимо кеша напрямую в БД
func (s *CatalogService) FilterMovies(ctx context.Context, filter *entity.MovieFilter) ([]entity.Movie, error) {
	movies, err := s.movieRepo.Filter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter movies: %w", err)
	}

	return movies, nil
}

// === REACTIONS ===

// CreateReaction создает реакцию (лайк/дизлайк) на фильм
func (s *CatalogService) CreateReaction(ctx context.Context, req *entity.CreateReactionRequest) (*entity.Reaction, error) {
	reaction := &entity.Reaction{
		ID:        uuid.New(),
		MovieID:   req.MovieID,
		Type:      entity.ReactionType(req.Type),
		CreatedAt: time.Now(),
	}

	if err := s.reactionRepo.Create(ctx, reaction); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to create reaction: %w", err)
	}

	metrics.ReactionsCreated.WithLabelValues(req.Type).Inc()

	return reaction, nil
}

// GetReactions получает счётчики лайков и дизлайков фильма
// Фильм без реакций возвращает нулевые счётчики, 404 только для отсутствующего фильма
func (s *CatalogService) GetReactions(ctx context.Context, movieID uuid.UUID) (*entity.ReactionSummary, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to verify movie: %w", err)
	}

	summary, err := s.reactionRepo.CountByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reactions: %w", err)
	}

	return summary, nil
}

// === COMMENTS ===

// CreateComment создает комментарий к фильму от имени пользователя
// Проверяет существование фильма - у MongoDB нет foreign key на каталог
func (s *CatalogService) CreateComment(ctx context.Context, userID uuid.UUID, req *entity.CreateCommentRequest) (*entity.Comment, error) {
	if _, err := s.movieRepo.GetByID(ctx, req.MovieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to verify movie: %w", err)
	}

	comment := &entity.Comment{
		MovieID: req.MovieID.String(),
		UserID:  userID.String(),
		Text:    req.Text,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	metrics.CommentsCreated.Inc()

	return comment, nil
}

// GetComments получает все комментарии фильма
func (s *CatalogService) GetComments(ctx context.Context, movieID uuid.UUID) ([]entity.Comment, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to verify movie: %w", err)
	}

	comments, err := s.commentRepo.GetByMovieID(ctx, movieID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return comments, nil
}

// pageOf режет страницу из полного списка фильмов
func pageOf(movies []entity.Movie, skip, limit int) []entity.Movie {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(movies) {
		return []entity.Movie{}
	}

	end := len(movies)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}

	return movies[skip:end]
}
