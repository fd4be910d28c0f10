package util

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cinemashop/internal/app/cinema/entity"

	"github.com/redis/go-redis/v9"
)

const moviesCacheKey = "movies:all"

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(addr, password string, db int) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

// NewRedisClientFromExisting оборачивает уже созданный redis.Client
// Используется в тестах с miniredis
func NewRedisClientFromExisting(client *redis.Client) *RedisClient {
	return &RedisClient{client: client}
}

func (r *RedisClient) SetMovies(ctx context.Context, movies []entity.Movie, ttl time.Duration) error {
	data, err := json.Marshal(movies)
	if err != nil {
		return fmt.Errorf("failed to marshal movies: %w", err)
	}

	if err := r.client.Set(ctx, moviesCacheKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set movies in cache: %w", err)
	}

	return nil
}

func (r *RedisClient) GetMovies(ctx context.Context) ([]entity.Movie, error) {
	data, err := r.client.Get(ctx, moviesCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get movies from cache: %w", err)
	}

	var movies []entity.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal movies: %w", err)
	}

	return movies, nil
}

func (r *RedisClient) DeleteMovies(ctx context.Context) error {
	if err := r.client.Del(ctx, moviesCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to delete movies from cache: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
