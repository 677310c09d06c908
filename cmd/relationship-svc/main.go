package main

import (
	"log"
	"net"

	pb "friendgraph/api/v1/relationship"

	"friendgraph/internal/common"
	"friendgraph/internal/config"
	"friendgraph/internal/dbmysql"
	"friendgraph/internal/di"
	"friendgraph/internal/events"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
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

	handler, err := di.InitializeRelationshipHandler(cfg, db, hub, logger)
	if err != nil {
		logger.Fatal("failed to wire dependencies", zap.Error(err))
	}

	server := grpc.NewServer(
		grpc.UnaryInterceptor(common.AuthInterceptor()),
		grpc.StreamInterceptor(common.StreamAuthInterceptor()),
	)
	pb.RegisterRelationshipServiceServer(server, handler)
	reflection.Register(server)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.GRPCPort)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", addr), zap.Error(err))
	}

	logger.Info("relationship service listening", zap.String("addr", addr))
	if err := server.Serve(listener); err != nil {
		logger.Fatal("grpc serve failed", zap.Error(err))
	}
}
