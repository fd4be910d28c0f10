package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cinemashop/internal/app/cinema/entity"
	"cinemashop/internal/app/cinema/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// MovieHandler обрабатывает HTTP запросы каталога фильмов с использованием Gin
type MovieHandler struct {
	catalogService service.CatalogServiceInterface
	validator      *validator.Validate
}

// NewMovieHandler создает новый обработчик каталога
func NewMovieHandler(catalogService service.CatalogServiceInterface) *MovieHandler {
	return &MovieHandler{
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

// CreateMovie обрабатывает POST /movies
// Создает новый фильм в каталоге
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req entity.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	movie, err := h.catalogService.CreateMovie(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create movie"})
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// ListMovies обрабатывает GET /movies
// Без параметров фильтра возвращает страницу каталога, с параметрами - результат фильтрации
func (h *MovieHandler) ListMovies(c *gin.Context) {
	filter, err := parseMovieFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !filter.Empty() {
		movies, err := h.catalogService.FilterMovies(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter movies"})
			return
		}

		c.JSON(http.StatusOK, entity.MovieListResponse{Movies: movies, Total: len(movies)})
		return
	}

	skip, limit := parsePagination(c)

	movies, err := h.catalogService.ListMovies(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get movies"})
		return
	}

	c.JSON(http.StatusOK, entity.MovieListResponse{Movies: movies, Total: len(movies)})
}

// GetMovie обрабатывает GET /movies/{id}
func (h *MovieHandler) GetMovie(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	movie, err := h.catalogService.GetMovie(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get movie"})
		return
	}

	c.JSON(http.StatusOK, movie)
}

// CreateReaction обрабатывает POST /movies/reactions
// Ставит лайк или дизлайк фильму
func (h *MovieHandler) CreateReaction(c *gin.Context) {
	var req entity.CreateReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	reaction, err := h.catalogService.CreateReaction(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reaction"})
		return
	}

	c.JSON(http.StatusCreated, reaction)
}

// GetReactions обрабатывает GET /movies/{id}/reactions
// Возвращает счётчики лайков и дизлайков
func (h *MovieHandler) GetReactions(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	summary, err := h.catalogService.GetReactions(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reactions"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// CreateComment обрабатывает POST /movies/comments
// Добавляет комментарий к фильму от имени аутентифицированного пользователя
func (h *MovieHandler) CreateComment(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req entity.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	comment, err := h.catalogService.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// GetComments обрабатывает GET /movies/{id}/comments
func (h *MovieHandler) GetComments(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	comments, err := h.catalogService.GetComments(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get comments"})
		return
	}

	c.JSON(http.StatusOK, entity.CommentListResponse{Comments: comments, Total: len(comments)})
}

// parseMovieFilter собирает фильтр каталога из query-параметров
func parseMovieFilter(c *gin.Context) (*entity.MovieFilter, error) {
	filter := &entity.MovieFilter{}

	if name := c.Query("name"); name != "" {
		filter.Name = &name
	}

	floatParams := map[string]**float64{
		"min_imdb":  &filter.MinIMDB,
		"max_imdb":  &filter.MaxIMDB,
		"min_price": &filter.MinPrice,
		"max_price": &filter.MaxPrice,
	}
	for param, target := range floatParams {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("Invalid " + param + " parameter")
		}
		*target = &value
	}

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("Invalid year parameter")
		}
		filter.Year = &year
	}

	return filter, nil
}

// parsePagination читает skip/limit с дефолтами и верхней границей
func parsePagination(c *gin.Context) (int, int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return skip, limit
}

// formatValidationError возвращает человекочитаемое описание первой ошибки валидации
func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			return fieldError.Field() + " is " + fieldError.Tag()
		}
	}
	return "Validation failed"
}
