package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/application/qualityimport"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/config"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/infrastructure/dynamo"
	s3infra "github.com/DaewoongByun/sw-quality-dashboard/internal/infrastructure/s3"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/pkg/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// batch imports the weekly quality reports waiting in S3 and exits.
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dynamoClient, err := dynamo.NewClient(ctx, cfg)
	if err != nil {
		zl.Fatal("dynamodb client", zap.Error(err))
	}
	s3Client, err := s3infra.NewClient(ctx, cfg)
	if err != nil {
		zl.Fatal("s3 client", zap.Error(err))
	}

	authorityRepo := dynamo.NewAuthorityRepo(dynamoClient, cfg.DynamoTables.Authorities)
	job := qualityimport.NewJob(qualityimport.JobDeps{
		Store:         s3infra.NewStore(s3Client, cfg.S3BucketName),
		SystemRepo:    dynamo.NewSystemRepo(dynamoClient, cfg.DynamoTables.Systems),
		UserRepo:      dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users, authorityRepo),
		QualityRepo:   dynamo.NewQualityRepo(dynamoClient, cfg.DynamoTables.SystemQualities),
		Logger:        zl,
		ReportPrefix:  cfg.BatchReportPrefix,
		SummaryPrefix: cfg.BatchSummaryPrefix,
	})

	summaries, err := job.Run(ctx)
	if err != nil {
		zl.Fatal("quality import failed", zap.Error(err))
	}
	for _, s := range summaries {
		zl.Info("report imported",
			zap.String("report", s.Report),
			zap.Int("imported", s.Imported),
			zap.Int("rejected", s.Rejected),
		)
	}
	zl.Info("quality import finished", zap.Int("reports", len(summaries)))
}
