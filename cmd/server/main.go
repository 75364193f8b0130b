// Package main initializes and starts the carbon certificate HTTP server,
// setting up configuration, logging, the database connection, repositories,
// services, and handlers.
package main

import (
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/carbontrade/carboncert/internal/config"
	"github.com/carbontrade/carboncert/internal/db"
	"github.com/carbontrade/carboncert/internal/logger"
	"github.com/carbontrade/carboncert/internal/repository"
	"github.com/carbontrade/carboncert/internal/server/handler/http"
	"github.com/carbontrade/carboncert/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", orDefault(version, "N/A"))
	fmt.Printf("Build date: %s\n", orDefault(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("jwt secret is not configured")
	}

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer postgresDB.Close()

	// Optionally seed sample users and certificates.
	if options.Seed {
		if err := db.Seed(context.Background(), postgresDB); err != nil {
			zapLogger.Fatal("cannot seed database", zap.Error(err))
		}
	}

	// Initialize repositories for users and certificates.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	certRepo := repository.NewPostgresCertificateRepository(postgresDB)

	// Initialize business-logic services.
	hasher := service.NewBcryptHasher()
	tokens := service.NewTokenIssuer(options.JWTSecret, time.Duration(options.JWTExpiresIn)*time.Second)
	authService := service.NewAuthService(userRepo, hasher, tokens)
	certService := service.NewCertificateService(certRepo)

	// Create HTTP handlers for authentication and certificate endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	certHandler := &http.CertificateHandler{CertificateService: certService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, certHandler, tokens, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Port,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}

// orDefault returns s, or def if s is empty (stand-in for cmp.Or on Go <1.22).
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
