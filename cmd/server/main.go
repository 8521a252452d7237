package main

import (
	"database/sql"
	"log"
	"net/http"

	"shopease-be/internal/config"
	"shopease-be/internal/db"
	"shopease-be/internal/logger"
	"shopease-be/internal/rest"

	"go.uber.org/zap"
)

// Indirections for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func newServer(cfg *config.Config, database *sql.DB) *http.Server {
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}

	return &http.Server{
		Addr:    ":" + port,
		Handler: rest.NewRouter(rest.NewHandler(database, cfg)),
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	srv := newServer(cfg, database)

	logger.L().Info("server listening", zap.String("addr", srv.Addr))
	return startServerFunc(srv)
}

func main() {
	if err := run(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
