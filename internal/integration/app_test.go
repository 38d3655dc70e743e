package integration_test

import (
	"log/slog"
	"os"

	"github.com/metinatakli/novaflix/internal/app"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App         *app.Application
	RedisClient *redis.Client
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	application, err := app.NewApp(cfg, logger, redisClient)
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	return &TestApp{
		App:         application,
		RedisClient: redisClient,
	}, nil
}
