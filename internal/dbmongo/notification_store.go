package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationRecord is the history entry kept for every acceptance
// notification handed to the notifier.
type NotificationRecord struct {
	ID         string    `bson:"_id"`
	Type       string    `bson:"type"`
	ReceiverID string    `bson:"receiver_id"`
	SenderID   string    `bson:"sender_id"`
	CreatedAt  time.Time `bson:"created_at"`
}

type NotificationStore struct {
	coll *mongo.Collection
}

func NewNotificationStore(mc *MongoClient) *NotificationStore {
	return &NotificationStore{coll: mc.Database.Collection("notifications")}
}

func (s *NotificationStore) Insert(ctx context.Context, rec NotificationRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert notification record: %w", err)
	}
	return nil
}

// ByUser returns the most recent notification records for a user, newest
// first.
func (s *NotificationStore) ByUser(ctx context.Context, userID string, limit int64) ([]NotificationRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.coll.Find(ctx, bson.M{"receiver_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find notification records: %w", err)
	}
	defer cur.Close(ctx)

	var records []NotificationRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode notification records: %w", err)
	}
	return records, nil
}
