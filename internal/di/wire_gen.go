// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"friendgraph/internal/config"
	"friendgraph/internal/events"
	"friendgraph/internal/gateway"
	"friendgraph/internal/relationship"
	"friendgraph/internal/relationship/handler"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Injectors from wire.go:

// InitializeRelationshipHandler assembles the gRPC handler. Wire generates
// the real body.
func InitializeRelationshipHandler(cfg *config.Config, db *gorm.DB, hub *events.Hub, logger *zap.Logger) (*handler.Handler, error) {
	friendRequestRepository := relationship.NewFriendRequestRepository(db)
	friendshipRepository := relationship.NewFriendshipRepository(db)
	notificationStore, err := ProvideNotificationStore(cfg)
	if err != nil {
		return nil, err
	}
	notifier := ProvideNotifier(logger, notificationStore)
	service := relationship.NewService(db, friendRequestRepository, friendshipRepository, notifier, hub, logger)
	options := ProvideSyncOptions(cfg)
	handlerHandler := handler.NewHandler(service, hub, options)
	return handlerHandler, nil
}

// InitializeGateway assembles the HTTP/websocket gateway.
func InitializeGateway(cfg *config.Config, db *gorm.DB, hub *events.Hub, logger *zap.Logger) (*gateway.Server, error) {
	friendRequestRepository := relationship.NewFriendRequestRepository(db)
	friendshipRepository := relationship.NewFriendshipRepository(db)
	notificationStore, err := ProvideNotificationStore(cfg)
	if err != nil {
		return nil, err
	}
	notifier := ProvideNotifier(logger, notificationStore)
	service := relationship.NewService(db, friendRequestRepository, friendshipRepository, notifier, hub, logger)
	options := ProvideSyncOptions(cfg)
	server := gateway.NewServer(service, hub, notificationStore, options, logger)
	return server, nil
}
