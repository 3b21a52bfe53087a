// LevelUp API server: habit tracking with XP, levels, HP and login streaks.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/limbo/levelup/internal/api"
	"github.com/limbo/levelup/internal/notify"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/pkg/cleanup"
	"github.com/limbo/levelup/pkg/config"
	jwtservice "github.com/limbo/levelup/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		slog.Error("loading config error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer cleanup.CleanUp()

	pool, err := repository.NewPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Error("connecting to postgres error", slog.String("error", err.Error()))
		return
	}
	registry := repository.NewRegistry(pool)

	hub := notify.NewHub(logger.With(slog.String("component", "ws_hub")), cfg.Origins())
	go hub.Run(ctx)

	var publisher service.Publisher = hub
	if cfg.Redis.Address != "" {
		client, err := notify.NewRedisClient(ctx, notify.RedisConfig{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Error("connecting to redis error", slog.String("error", err.Error()))
			return
		}
		bridgeLogger := logger.With(slog.String("component", "redis_bridge"))
		publisher = notify.NewRedisPublisher(client, cfg.Redis.Channel, bridgeLogger)
		bridge := notify.NewRedisBridge(client, cfg.Redis.Channel, hub, bridgeLogger)
		go func() {
			if err := bridge.Run(ctx); err != nil {
				bridgeLogger.Error("redis bridge stopped", slog.String("error", err.Error()))
			}
		}()
	}

	userService := service.NewUserService(registry.Users, registry.HabitLists, registry, publisher)
	serv := api.New(&api.ServicesList{
		UserService:        userService,
		CategoryService:    service.NewCategoryService(registry.Categories, registry.PresetHabits, registry),
		PresetHabitService: service.NewPresetHabitService(registry.PresetHabits, registry),
		CustomHabitService: service.NewCustomHabitService(registry.CustomHabits, registry),
		HabitListService: service.NewHabitListService(registry.HabitLists, registry.PresetHabits,
			registry.CustomHabits, registry.Users, publisher),
		JwtService:    jwtservice.New(cfg.JWTSecret, cfg.TokenTTL),
		WSHandler:     hub,
		Metrics:       api.NewMetrics(),
		CORSOrigins:   cfg.Origins(),
		AuthRateLimit: cfg.AuthRateLimit,
		AuthRateBurst: cfg.AuthRateBurst,
	})
	if err = serv.Run(ctx, cfg.APIAddress); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
	}
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
