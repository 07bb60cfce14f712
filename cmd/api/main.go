package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/database/postgres"
	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/integrator/narrative"
	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/integrator/narrative/narrativeclient"
	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/repository"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/api"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/config"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/scheduler"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/usecases/insighting"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	orderRepo := repository.NewOrderRepository(pgConn)
	aiInsightRepo := repository.NewAIInsightRepository(pgConn)

	reportingService := reporting.NewService(orderRepo)

	narrativeClient := narrativeclient.NewClient(cfg)
	narrativeService := narrative.New(cfg, narrativeClient)

	insightCache := insighting.NewCache(aiInsightRepo)
	insightService := insighting.NewService(reportingService, insightCache, narrativeService)

	insightPrewarmService := scheduler.NewInsightPrewarmService(insightService, aiInsightRepo, cfg)

	if err := insightPrewarmService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting the insight prewarm scheduler")
	} else {
		logrus.Info("Insight prewarm scheduler started successfully")
	}

	server, err := api.New(
		cfg,
		reportingService,
		insightService,
		insightPrewarmService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets up the log format and working directory
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens a database connection and verifies it
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established successfully")
	return conn
}
