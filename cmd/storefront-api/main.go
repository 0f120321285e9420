package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/nuraya/storefront-api/internal/config"
	"github.com/nuraya/storefront-api/internal/handler"
	"github.com/nuraya/storefront-api/internal/repository"
	"github.com/nuraya/storefront-api/internal/usecase"
	"github.com/nuraya/storefront-api/internal/worker"
	"github.com/nuraya/storefront-api/shared/auth"
	"github.com/nuraya/storefront-api/shared/mailer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.New(&logger)

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping MongoDB")
	}

	db := client.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	productRepo := repository.NewProductMongoRepository(db)
	orderRepo := repository.NewOrderMongoRepository(db)
	subscriberRepo := repository.NewSubscriberMongoRepository(ctx, &logger, db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.JWTSecret, cfg.TokenIssuer, cfg.TokenExpiresIn)
	mail := mailer.NewMailer(&logger)
	validate := validator.New()

	authUsecase := usecase.NewAuthUsecase(userRepo, jwtAuth, mail, cfg, &logger)
	userUsecase := usecase.NewUserUsecase(userRepo, productRepo, jwtAuth)
	catalogUsecase := usecase.NewCatalogUsecase(productRepo, cfg.CatalogPageSize)
	reviewUsecase := usecase.NewReviewUsecase(productRepo)
	orderUsecase := usecase.NewOrderUsecase(orderRepo, productRepo)
	newsletterUsecase := usecase.NewNewsletterUsecase(subscriberRepo)
	contactUsecase := usecase.NewContactUsecase(mail, cfg)

	router := handler.NewRouter(handler.Handlers{
		Auth:       handler.NewAuthHandler(authUsecase, validate, &logger),
		User:       handler.NewUserHandler(userUsecase, validate, &logger),
		Product:    handler.NewProductHandler(catalogUsecase, reviewUsecase, validate, &logger),
		Order:      handler.NewOrderHandler(orderUsecase, validate, &logger),
		Newsletter: handler.NewNewsletterHandler(newsletterUsecase, contactUsecase, validate, &logger),
	}, &jwtAuth, userRepo, &logger)

	birthdayWorker := worker.NewBirthdayWorker(userRepo, mail, &logger)
	go birthdayWorker.Run(ctx)

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down HTTP server gracefully")
	}
}
