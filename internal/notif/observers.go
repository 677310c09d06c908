package notif

import (
	"context"
	"time"

	"friendgraph/internal/common"
	"friendgraph/internal/dbmongo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogObserver records acceptances in the service log. It is the default
// sink when no delivery backend is configured.
type LogObserver struct {
	logger *zap.Logger
}

func NewLogObserver(logger *zap.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Name() string { return "log_observer" }

func (o *LogObserver) Update(event AcceptedEvent) error {
	o.logger.Info("friend request accepted",
		zap.String("requester_id", event.RequesterID),
		zap.String("accepted_by", event.AcceptedByID))
	return nil
}

// HistoryObserver persists one record per acceptance so clients can list
// past notifications.
type HistoryObserver struct {
	store *dbmongo.NotificationStore
}

func NewHistoryObserver(store *dbmongo.NotificationStore) *HistoryObserver {
	return &HistoryObserver{store: store}
}

func (o *HistoryObserver) Name() string { return "history_observer" }

func (o *HistoryObserver) Update(event AcceptedEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := o.store.Insert(ctx, dbmongo.NotificationRecord{
		ID:         uuid.NewString(),
		Type:       "friend_request_accepted",
		ReceiverID: event.RequesterID,
		SenderID:   event.AcceptedByID,
		CreatedAt:  event.OccurredAt,
	})
	if err != nil {
		return common.NotifierError("record notification history", err)
	}
	return nil
}
