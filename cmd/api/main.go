package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/vasapolrittideah/real-estate-api/internal/auth"
	"github.com/vasapolrittideah/real-estate-api/internal/config"
	"github.com/vasapolrittideah/real-estate-api/internal/handler"
	"github.com/vasapolrittideah/real-estate-api/internal/mailer"
	"github.com/vasapolrittideah/real-estate-api/internal/provider"
	"github.com/vasapolrittideah/real-estate-api/internal/repository"
	"github.com/vasapolrittideah/real-estate-api/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.New(&logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
	logger.Info().Msg("connected to MongoDB")

	db := client.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	resetTokenRepo := repository.NewPasswordResetTokenMongoRepository(ctx, &logger, db)
	listingRepo := repository.NewListingMongoRepository(db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Secret, cfg.Token.Issuer)
	mail := mailer.NewMailer(&logger)

	var googleVerifier *provider.GoogleVerifier
	if cfg.GoogleClientID != "" {
		googleVerifier = provider.NewGoogleVerifier(cfg.GoogleClientID)
	}

	authUsecase := usecase.NewAuthUsecase(userRepo, jwtAuth)
	passwordResetUsecase := usecase.NewPasswordResetUsecase(
		userRepo,
		resetTokenRepo,
		jwtAuth,
		mail,
		cfg.ClientURL,
		cfg.Token.PasswordResetTokenExpiresIn,
	)
	userUsecase := usecase.NewUserUsecase(userRepo, listingRepo)
	listingUsecase := usecase.NewListingUsecase(listingRepo)

	router := handler.NewRouter(
		&logger,
		jwtAuth,
		googleVerifier,
		authUsecase,
		passwordResetUsecase,
		userUsecase,
		listingUsecase,
	)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
	}

	go func() {
		logger.Info().Str("address", cfg.ServerAddress).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down server gracefully")
	}
}
