//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"friendgraph/internal/config"
	"friendgraph/internal/events"
	"friendgraph/internal/gateway"
	"friendgraph/internal/relationship"
	"friendgraph/internal/relationship/handler"
)

// InitializeRelationshipHandler assembles the gRPC handler. Wire generates
// the real body.
func InitializeRelationshipHandler(cfg *config.Config, db *gorm.DB, hub *events.Hub, logger *zap.Logger) (*handler.Handler, error) {
	wire.Build(
		relationship.NewFriendRequestRepository,
		relationship.NewFriendshipRepository,
		ProvideNotificationStore,
		ProvideNotifier,
		ProvideSyncOptions,
		relationship.NewService,
		wire.Bind(new(relationship.EventPublisher), new(*events.Hub)),
		wire.Bind(new(events.Source), new(*events.Hub)),
		handler.NewHandler,
	)
	return nil, nil
}

// InitializeGateway assembles the HTTP/websocket gateway.
func InitializeGateway(cfg *config.Config, db *gorm.DB, hub *events.Hub, logger *zap.Logger) (*gateway.Server, error) {
	wire.Build(
		relationship.NewFriendRequestRepository,
		relationship.NewFriendshipRepository,
		ProvideNotificationStore,
		ProvideNotifier,
		ProvideSyncOptions,
		relationship.NewService,
		wire.Bind(new(relationship.EventPublisher), new(*events.Hub)),
		wire.Bind(new(events.Source), new(*events.Hub)),
		gateway.NewServer,
	)
	return nil, nil
}
