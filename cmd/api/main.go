package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/config"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/infrastructure/dynamo"
	jwtinfra "github.com/DaewoongByun/sw-quality-dashboard/internal/infrastructure/jwt"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/infrastructure/sns"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/pkg/logger"
	transporthttp "github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	ctx := context.Background()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient, err := dynamo.NewClient(ctx, cfg)
	if err != nil {
		zl.Fatal("dynamodb client", zap.Error(err))
	}
	dynamo.Bootstrap(ctx, dynamoClient, cfg.DynamoTables, zl)

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		zl.Fatal("jwt provider", zap.Error(err))
	}

	// Memo events are optional; an empty topic ARN yields a no-op publisher.
	publisher, err := sns.NewPublisher(ctx, cfg, zl)
	if err != nil {
		zl.Warn("sns publisher not available", zap.Error(err))
		publisher = sns.NopPublisher{}
	}

	authorityRepo := dynamo.NewAuthorityRepo(dynamoClient, cfg.DynamoTables.Authorities)
	deps := &transporthttp.Deps{
		UserRepo:      dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users, authorityRepo),
		AuthorityRepo: authorityRepo,
		TeamRepo:      dynamo.NewTeamRepo(dynamoClient, cfg.DynamoTables.Teams),
		SystemRepo:    dynamo.NewSystemRepo(dynamoClient, cfg.DynamoTables.Systems),
		QualityRepo:   dynamo.NewQualityRepo(dynamoClient, cfg.DynamoTables.SystemQualities),
		MemoRepo:      dynamo.NewMemoRepo(dynamoClient, cfg.DynamoTables.Memos),
		JWTProvider:   jwtProvider,
		Publisher:     publisher,
	}

	router := transporthttp.NewRouter(cfg, deps, zl)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zl.Info("server starting", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Fatal("forced shutdown", zap.Error(err))
	}
	zl.Info("server stopped")
}
