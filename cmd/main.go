package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"healthtrack/internal/handlers"
	"healthtrack/internal/logger"
	"healthtrack/internal/repository"
	"healthtrack/internal/repository/db"
	"healthtrack/internal/server"
	"healthtrack/internal/service"

	"github.com/spf13/viper"
)

func main() {
	// load config.yml first so the logger level can come from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(logLevel())

	// open DB with a bounded retry
	store, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(store)
	services := service.NewService(repos, service.AuthConfig{
		Secret:   jwtSecret(),
		TokenTTL: viper.GetDuration("jwt.ttl"),
	})
	apiHandler := handlers.NewHandler(services, log, handlers.Config{
		Dev:           viper.GetBool("server.dev"),
		RatePerSecond: viper.GetFloat64("rate.per_second"),
		RateBurst:     viper.GetInt("rate.burst"),
	})

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetEnvPrefix("healthtrack")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	return viper.ReadInConfig()
}

func logLevel() string {
	if lvl := viper.GetString("log.level"); lvl != "" {
		return lvl
	}
	return logger.InfoLevel
}

func jwtSecret() string {
	secret := viper.GetString("jwt.secret")
	if secret == "" || secret == "change-me" {
		logger.Get(logger.InfoLevel).Warnw("jwt.secret is unset or the placeholder; set HEALTHTRACK_JWT_SECRET")
	}
	return secret
}

// openDB initializes the SQLite database, retrying a fixed number of times
// before giving up.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "healthtrack.db")
		dbPath = "healthtrack.db"
	}

	attempts := viper.GetInt("db.connect_attempts")
	if attempts <= 0 {
		attempts = 1
	}
	delay := viper.GetDuration("db.connect_delay")
	if delay <= 0 {
		delay = 2 * time.Second
	}

	var (
		store *sql.DB
		err   error
	)
	for i := 1; i <= attempts; i++ {
		store, err = db.InitDB(dbPath)
		if err == nil {
			return store, nil
		}
		log.Warnw("sqlite open failed", "attempt", i, "of", attempts, "err", err)
		if i < attempts {
			time.Sleep(delay)
		}
	}
	return nil, err
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
