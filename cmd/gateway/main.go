package main

import (
	"log"
	"net"
	"net/http"
	"time"

	"friendgraph/internal/common"
	"friendgraph/internal/config"
	"friendgraph/internal/dbmysql"
	"friendgraph/internal/di"
	"friendgraph/internal/events"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := common.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		logger.Fatal("failed to connect to relationship store", zap.Error(err))
	}

	hub := events.NewHub(cfg.Sync.EventBufferSize, logger)
	defer hub.Close()

	gw, err := di.InitializeGateway(cfg, db, hub, logger)
	if err != nil {
		logger.Fatal("failed to wire dependencies", zap.Error(err))
	}

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.GatewayPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      gw.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	logger.Info("gateway listening", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("gateway serve failed", zap.Error(err))
	}
}
