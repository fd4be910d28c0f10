package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"cinemashop/internal/app/cinema/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MovieRepositoryTestSuite тестовый suite для PostgreSQL repository
type MovieRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  MovieRepository
	sqlDB *sql.DB
}

func TestMovieRepositorySuite(t *testing.T) {
	suite.Run(t, new(MovieRepositoryTestSuite))
}

func (s *MovieRepositoryTestSuite) SetupTest() {
	var err error
	s.sqlDB, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	dialector := postgres.New(postgres.Config{
		Conn:       s.sqlDB,
		DriverName: "postgres",
	})

	s.db, err = gorm.Open(dialector, &gorm.Config{})
	require.NoError(s.T(), err)

	s.repo = NewMovieRepository(s.db)
}

func (s *MovieRepositoryTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

// ===================== Create Tests =====================

func (s *MovieRepositoryTestSuite) TestCreate_Success() {
	ctx := context.Background()
	movie := &entity.Movie{
		ID:         uuid.New(),
		Name:       "Inception",
		IMDBRating: 8.8,
		Price:      9.99,
		Year:       2010,
		CreatedAt:  time.Now(),
	}

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "movies"`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	s.mock.ExpectCommit()

	// Act
	err := s.repo.Create(ctx, movie)

	// Assert
	s.NoError(err)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MovieRepositoryTestSuite) TestCreate_DBError() {
	ctx := context.Background()
	movie := &entity.Movie{ID: uuid.New(), Name: "Inception", Price: 9.99, Year: 2010}

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "movies"`)).
		WillReturnError(sql.ErrConnDone)
	s.mock.ExpectRollback()

	// Act
	err := s.repo.Create(ctx, movie)

	// Assert
	s.Error(err)
	s.NoError(s.mock.ExpectationsWereMet())
}

// ===================== GetByID Tests =====================

func (s *MovieRepositoryTestSuite) TestGetByID_Success() {
	ctx := context.Background()
	movieID := uuid.New()
	createdAt := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "imdb_rating", "price", "year", "created_at"}).
		AddRow(movieID, "Inception", 8.8, 9.99, 2010, createdAt)

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "movies" WHERE id = $1`)).
		WillReturnRows(rows)

	// Act
	movie, err := s.repo.GetByID(ctx, movieID)

	// Assert
	s.NoError(err)
	s.NotNil(movie)
	s.Equal(movieID, movie.ID)
	s.Equal("Inception", movie.Name)
	s.Equal(8.8, movie.IMDBRating)
	s.Equal(2010, movie.Year)

	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MovieRepositoryTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()
	movieID := uuid.New()

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "movies" WHERE id = $1`)).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	movie, err := s.repo.GetByID(ctx, movieID)

	// Assert
	s.Nil(movie)
	s.ErrorIs(err, ErrMovieNotFound)

	s.NoError(s.mock.ExpectationsWereMet())
}

// ===================== GetAll Tests =====================

func (s *MovieRepositoryTestSuite) TestGetAll_InsertionOrder() {
	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "imdb_rating", "price", "year", "created_at"}).
		AddRow(first, "Inception", 8.8, 9.99, 2010, now.Add(-time.Hour)).
		AddRow(second, "Interstellar", 8.7, 12.50, 2014, now)

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "movies" ORDER BY created_at ASC`)).
		WillReturnRows(rows)

	// Act
	movies, err := s.repo.GetAll(ctx)

	// Assert
	s.NoError(err)
	s.Len(movies, 2)
	s.Equal(first, movies[0].ID)
	s.Equal(second, movies[1].ID)

	s.NoError(s.mock.ExpectationsWereMet())
}

// ===================== Filter Tests =====================

func (s *MovieRepositoryTestSuite) TestFilter_ByRatingAndYear() {
	ctx := context.Background()
	minRating := 8.0
	year := 2010
	filter := &entity.MovieFilter{MinIMDB: &minRating, Year: &year}

	rows := sqlmock.NewRows([]string{"id", "name", "imdb_rating", "price", "year", "created_at"}).
		AddRow(uuid.New(), "Inception", 8.8, 9.99, 2010, time.Now())

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "movies" WHERE imdb_rating >= $1 AND year = $2`)).
		WithArgs(minRating, year).
		WillReturnRows(rows)

	// Act
	movies, err := s.repo.Filter(ctx, filter)

	// Assert
	s.NoError(err)
	s.Len(movies, 1)
	s.Equal("Inception", movies[0].Name)

	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MovieRepositoryTestSuite) TestFilter_ByName() {
	ctx := context.Background()
	name := "incep"
	filter := &entity.MovieFilter{Name: &name}

	rows := sqlmock.NewRows([]string{"id", "name", "imdb_rating", "price", "year", "created_at"}).
		AddRow(uuid.New(), "Inception", 8.8, 9.99, 2010, time.Now())

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "movies" WHERE name ILIKE $1`)).
		WithArgs("%incep%").
		WillReturnRows(rows)

	// Act
	movies, err := s.repo.Filter(ctx, filter)

	// Assert
	s.NoError(err)
	s.Len(movies, 1)

	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MovieRepositoryTestSuite) TestFilter_NoMatches() {
	ctx := context.Background()
	maxPrice := 1.0
	filter := &entity.MovieFilter{MaxPrice: &maxPrice}

	rows := sqlmock.NewRows([]string{"id", "name", "imdb_rating", "price", "year", "created_at"})

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "movies" WHERE price <= $1`)).
		WithArgs(maxPrice).
		WillReturnRows(rows)

	// Act
	movies, err := s.repo.Filter(ctx, filter)

	// Assert
	s.NoError(err)
	s.Empty(movies)

	s.NoError(s.mock.ExpectationsWereMet())
}
