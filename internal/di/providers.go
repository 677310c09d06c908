package di

import (
	"time"

	"go.uber.org/zap"

	"friendgraph/internal/config"
	"friendgraph/internal/dbmongo"
	"friendgraph/internal/notif"
	"friendgraph/internal/realtime"
	"friendgraph/internal/relationship"
)

// ProvideNotificationStore opens the Mongo-backed notification history.
// Returns nil when history is not configured; consumers treat nil as
// "history disabled".
func ProvideNotificationStore(cfg *config.Config) (*dbmongo.NotificationStore, error) {
	if !cfg.Mongo.Enabled {
		return nil, nil
	}
	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, err
	}
	return dbmongo.NewNotificationStore(mc), nil
}

// ProvideNotifier builds the acceptance notifier: always the log observer,
// plus the history observer when a store is available.
func ProvideNotifier(logger *zap.Logger, store *dbmongo.NotificationStore) relationship.Notifier {
	svc := notif.NewService(logger, notif.NewLogObserver(logger))
	if store != nil {
		svc.Subscribe(notif.NewHistoryObserver(store))
	}
	return svc
}

func ProvideSyncOptions(cfg *config.Config) realtime.Options {
	return realtime.Options{
		FetchRetries: cfg.Sync.FetchRetries,
		RetryDelay:   time.Duration(cfg.Sync.RetryDelayMs) * time.Millisecond,
	}
}
