package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/metinatakli/novaflix/internal/domain"
	"github.com/redis/go-redis/v9"
)

// CartTTL bounds how long an untouched cart survives in Redis.
const CartTTL = 24 * time.Hour

var addMovieScript = redis.NewScript(`
    -- KEYS = [cart id list, cart movie hash]
    -- ARGV = [movieID, movieJSON, ttl]

    if redis.call("HSETNX", KEYS[2], ARGV[1], ARGV[2]) == 0 then
        return 0
    end

    redis.call("RPUSH", KEYS[1], ARGV[1])
    redis.call("EXPIRE", KEYS[1], ARGV[3])
    redis.call("EXPIRE", KEYS[2], ARGV[3])

    return 1
`)

var removeMovieScript = redis.NewScript(`
    -- KEYS = [cart id list, cart movie hash]
    -- ARGV = [movieID]

    if redis.call("HDEL", KEYS[2], ARGV[1]) == 0 then
        return 0
    end

    redis.call("LREM", KEYS[1], 0, ARGV[1])

    return 1
`)

// RedisStore keeps each cart as a list of movie IDs (insertion order) and a
// hash of movie ID to movie JSON, so replicas share one session's list.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    CartTTL,
	}
}

func (s *RedisStore) Add(ctx context.Context, sessionID string, movie domain.Movie) (bool, error) {
	movieBytes, err := json.Marshal(movie)
	if err != nil {
		return false, err
	}

	keys := []string{cartIDsKey(sessionID), cartMoviesKey(sessionID)}

	added, err := addMovieScript.Run(ctx, s.client, keys, movie.ID, movieBytes, int(s.ttl.Seconds())).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to add movie %s to cart: %w", movie.ID, err)
	}

	return added == 1, nil
}

func (s *RedisStore) Remove(ctx context.Context, sessionID, movieID string) (bool, error) {
	keys := []string{cartIDsKey(sessionID), cartMoviesKey(sessionID)}

	removed, err := removeMovieScript.Run(ctx, s.client, keys, movieID).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to remove movie %s from cart: %w", movieID, err)
	}

	return removed == 1, nil
}

func (s *RedisStore) List(ctx context.Context, sessionID string) ([]domain.Movie, error) {
	pipe := s.client.TxPipeline()

	idsCmd := pipe.LRange(ctx, cartIDsKey(sessionID), 0, -1)
	moviesCmd := pipe.HGetAll(ctx, cartMoviesKey(sessionID))

	_, err := pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	ids := idsCmd.Val()
	encoded := moviesCmd.Val()
	movies := make([]domain.Movie, 0, len(ids))

	for _, id := range ids {
		raw, ok := encoded[id]
		if !ok {
			continue
		}

		var movie domain.Movie

		err := json.Unmarshal([]byte(raw), &movie)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal cart movie %s: %w", id, err)
		}

		movies = append(movies, movie)
	}

	return movies, nil
}

func (s *RedisStore) Count(ctx context.Context, sessionID string) (int, error) {
	n, err := s.client.HLen(ctx, cartMoviesKey(sessionID)).Result()
	if err != nil && err != redis.Nil {
		return 0, err
	}

	return int(n), nil
}

func cartIDsKey(sessionID string) string {
	return fmt.Sprintf("cart:%s:ids", sessionID)
}

func cartMoviesKey(sessionID string) string {
	return fmt.Sprintf("cart:%s:movies", sessionID)
}
