package serve

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"turboscribe/internal/api/server"
	v1routes "turboscribe/internal/api/v1/routes"
	"turboscribe/internal/api/v1/services"
	"turboscribe/internal/app/api/openai"
	"turboscribe/internal/app/api/openai/whisper"
	"turboscribe/internal/app/auth"
	"turboscribe/internal/app/quota"
	"turboscribe/internal/app/repository/migrate"
	"turboscribe/internal/app/repository/pg"
	"turboscribe/internal/config"
)

var configPath string

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml",
		"Path to the server config file")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and web dashboard",
	Long: `Run the HTTP API and web dashboard

Requires OPENAI_API_KEY, a reachable Postgres (DATABASE_URL or DB_*) and
Redis (REDIS_ADDR). MinIO retention is enabled when MINIO_ENDPOINT is set.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		if err := config.RequireOpenAIKey(); err != nil {
			log.Fatalf("Configuration error: %v\n", err)
		}

		cfg, err := config.LoadServerConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load server config: %v\n", err)
		}

		db, err := pg.Open()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v\n", err)
		}
		defer db.Close()

		if err := migrate.Run(db); err != nil {
			log.Fatalf("Migration failed: %v\n", err)
		}

		dao := pg.NewPostgresDBWithConn(db)
		gate := quota.NewPostgresGate(db)
		verifier := auth.NewRedisVerifier(auth.NewRedisClient())
		transcriber := whisper.NewRemoteTranscriber(openai.GetClient())

		var storage services.StorageService
		minioStorage, err := services.NewMinioStorageFromEnv()
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v\n", err)
		}
		if minioStorage != nil {
			storage = minioStorage
			logger.Info("upload retention enabled")
		}

		container := &v1routes.ServiceContainer{
			TranscriptionService: services.NewTranscriptionService(transcriber, dao, gate, storage, logger),
			StatsService:         services.NewStatsService(dao, logger),
			ExportService:        services.NewExportService(dao, logger),
			SessionVerifier:      verifier,
			Logger:               logger,
		}

		srv := server.NewServer(server.Config{
			Host:         cfg.Host,
			Port:         cfg.Port,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Environment:  cfg.Environment,
		}, container, logger)

		if err := srv.Start(); err != nil {
			log.Fatalf("Failed to start server: %v\n", err)
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("forced shutdown", "error", err)
		}
	},
}
