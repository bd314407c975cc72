package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"

	"github.com/whenmeet/availability-backend/internal/api"
	availability_service "github.com/whenmeet/availability-backend/internal/business/availability"
	"github.com/whenmeet/availability-backend/internal/config"
	"github.com/whenmeet/availability-backend/internal/database"
	"github.com/whenmeet/availability-backend/internal/database/choice"
	"github.com/whenmeet/availability-backend/internal/database/event"
	"github.com/whenmeet/availability-backend/internal/database/migrations"
	"github.com/whenmeet/availability-backend/internal/database/rule"
	"github.com/whenmeet/availability-backend/internal/database/user"
	"github.com/whenmeet/availability-backend/internal/pkg/jwt"
	"github.com/whenmeet/availability-backend/internal/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	jwts := jwt.NewManger()

	redisPool := redis.NewRedisPool(logger)
	refreshTokens := redis.NewRefreshTokenRepository(redisPool, logger)

	if err := migrations.Up(); err != nil {
		log.Fatalf("unable to apply migrations: %v", err)
	}

	db, err := database.NewPGX(ctx)
	if err != nil {
		log.Fatalf("unable to initialize db: %v", err)
	}

	usersRepository := user.NewRepository()
	eventsRepository := event.NewRepository()
	rulesRepository := rule.NewRepository()
	choicesRepository := choice.NewRepository()

	availabilityService := availability_service.NewService(
		db,
		logger,
		eventsRepository,
		usersRepository,
		rulesRepository,
		choicesRepository,
	)

	api, err := api.NewApi(
		logger,
		rand.Reader,
		jwts,
		refreshTokens,
		db,
		usersRepository,
		eventsRepository,
		rulesRepository,
		availabilityService,
	)
	if err != nil {
		log.Fatalf("unable to initialize api: %v", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
