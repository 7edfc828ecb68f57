package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	httpctx "github.com/dtroode/storytrails-server/internal/api/http/context"
	httprouter "github.com/dtroode/storytrails-server/internal/api/http/router"
	httpserver "github.com/dtroode/storytrails-server/internal/api/http/server"
	grpcrouter "github.com/dtroode/storytrails-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/storytrails-server/internal/api/grpc/server"
	"github.com/dtroode/storytrails-server/database"
	"github.com/dtroode/storytrails-server/internal/config"
	"github.com/dtroode/storytrails-server/internal/logger"
	"github.com/dtroode/storytrails-server/internal/model"
	"github.com/dtroode/storytrails-server/internal/ratelimit"
	"github.com/dtroode/storytrails-server/internal/repository/postgres"
	"github.com/dtroode/storytrails-server/internal/server"
	"github.com/dtroode/storytrails-server/internal/service"
	storage "github.com/dtroode/storytrails-server/internal/storage/minio"
	"github.com/dtroode/storytrails-server/internal/token"
	"github.com/dtroode/storytrails-server/internal/validation"
)

const (
	shutdownTimeout     = 10 * time.Second
	healthProbeInterval = 5 * time.Second
	rateLimitIdleTTL    = 10 * time.Minute
)

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)
	logAppVersion(cmd.Root().Writer)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer db.Close()

	var covers model.Storage
	if cfg.Storage.Enabled {
		client, err := storage.Connect(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize cover storage: %w", err)
		}
		covers = client
	}

	userRepo := postgres.NewUserRepository(db)
	collectionRepo := postgres.NewCollectionRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	validator := validation.New()

	tokenService := service.NewTokenService(token.NewJWT(cfg.Token.Key, cfg.Token.TTL), logger)
	userService := service.NewUser(userRepo, tokenService, validator, logger)
	collectionService := service.NewCollection(collectionRepo, bookRepo, userRepo, covers, validator, logger)
	bookService := service.NewBook(bookRepo, collectionRepo, userRepo, covers, validator, logger)

	options := httprouter.Options{
		ErrorMode:     cfg.APIErrorMode,
		CORSOrigins:   cfg.HTTP.CORSOrigins,
		CoversEnabled: covers != nil,
		MaxCoverBytes: cfg.HTTP.MaxCoverBytes,
	}
	if cfg.RateLimit.RPS > 0 {
		limiter := ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimitIdleTTL)
		defer limiter.Stop()
		options.Limiter = limiter
	}

	handler := httprouter.New(httprouter.Services{
		Books:       bookService,
		Collections: collectionService,
		Users:       userService,
		Tokens:      tokenService,
		Health:      db,
	}, options, httpctx.NewManager(), logger).Register()

	servers := []model.Server{
		httpserver.NewHTTPServer(handler, ":"+cfg.HTTP.Port, httpserver.Timeouts{
			Read:  cfg.HTTP.ReadTimeout,
			Write: cfg.HTTP.WriteTimeout,
			Idle:  cfg.HTTP.IdleTimeout,
		}),
	}

	if cfg.GRPC.Enabled {
		r := grpcrouter.New(logger)
		go grpcrouter.NewProbe(db, r.Health(), healthProbeInterval, logger).Run(ctx)
		servers = append(servers, grpcserver.NewGRPCServer(r.Register(), ":"+cfg.GRPC.Port))
	}

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
			}
		}(s)
	}

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")

	return nil
}

func migrate(ctx context.Context, _ *cli.Command) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := database.Migrate(ctx, cfg.Database.DSN); err != nil {
		return err
	}

	logger.Info("migrations applied")
	return nil
}

func issueToken(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(cmd.String("user-id"))
	if err != nil {
		return fmt.Errorf("invalid --user-id: %w", err)
	}

	ttl := cfg.Token.TTL
	if d := cmd.Duration("ttl"); d > 0 {
		ttl = d
	}

	signed, err := token.NewJWT(cfg.Token.Key, ttl).Generate(userID)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, signed)
	return err
}
