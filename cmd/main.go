package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "dehydrate_monitor/docs"
	"dehydrate_monitor/internal/config"
	"dehydrate_monitor/internal/dataset"
	"dehydrate_monitor/internal/handlers"
	"dehydrate_monitor/internal/logger"
	"dehydrate_monitor/internal/models"
	"dehydrate_monitor/internal/repository"
	"dehydrate_monitor/internal/repository/db"
	"dehydrate_monitor/internal/server"
	"dehydrate_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// @title                       Dehydration Monitor API
// @version                     1.0
// @description                 Replays recorded dehydrator sensor data and exposes playback controls.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.GetWithFormat(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()
	gin.SetMode(cfg.GinMode)

	sqlDB, err := openDB(cfg.DB.Path, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	ctx := context.Background()

	readings, info, loadErr := loadDataset(ctx, cfg.Dataset, log)

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.Options{
		Readings: readings,
		Interval: cfg.Playback.Interval,
		Auth: service.AuthOptions{
			SigningKey: cfg.Auth.SigningKey,
			TokenTTL:   cfg.Auth.TokenTTL,
		},
		Log: log,
	})
	if loadErr != nil {
		services.Playback.Fail(ctx, loadErr)
	}
	if err := services.Dataset.Record(ctx, info); err != nil {
		log.Errorw("record_dataset_failed", "err", err)
	}
	if cfg.Auth.Enabled {
		if _, err := services.EnsureUser(ctx, cfg.Auth.Username, cfg.Auth.Password); err != nil {
			log.Fatalw("failed to seed operator", "err", err)
		}
	}

	apiHandler := handlers.NewHandler(services, log, handlers.Options{AuthEnabled: cfg.Auth.Enabled})

	srv := server.New(server.Timeouts{
		ReadHeader: cfg.Server.ReadHeaderTimeout,
		Write:      cfg.Server.WriteTimeout,
		Idle:       cfg.Server.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(services.Playback, srv, cfg.Server.ShutdownTimeout, log)
}

// openDB initializes the SQLite database.
func openDB(path string, log *logger.Logger) (*sql.DB, error) {
	if path == "" {
		log.Infow("db.path not set in config; using in-memory database")
		path = ":memory:"
	}
	return db.InitDB(path)
}

// loadDataset fetches and parses the dataset once at startup. A failure is returned
// together with the summary that describes it; the session then runs without data.
func loadDataset(ctx context.Context, cfg config.DatasetConfig, log *logger.Logger) ([]models.SensorReading, models.DatasetInfo, error) {
	loader := dataset.NewLoader(&http.Client{Timeout: cfg.FetchTimeout})
	info := models.DatasetInfo{Source: cfg.Source, LoadedAt: time.Now().UTC()}

	readings, summary, err := loader.Load(ctx, cfg.Source)
	if err != nil {
		info.ErrorKind = dataset.KindName(err)
		info.Error = err.Error()
		log.Errorw("dataset_load_failed", "source", cfg.Source, "error_kind", info.ErrorKind, "err", err)
		return nil, info, err
	}

	info.Loaded = true
	info.TotalRows = summary.Total
	info.Dropped = summary.Dropped
	log.Infow("dataset_loaded", "source", cfg.Source, "rows", summary.Total, "dropped", summary.Dropped)
	return readings, info, nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		log.Infow("http_server_starting", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(playback service.Playback, srv *server.Server, timeout time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the playback timer
	playback.Close()

	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
