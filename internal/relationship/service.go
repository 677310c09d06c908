package relationship

import (
	"context"

	"friendgraph/internal/common"
	"friendgraph/internal/dbmysql"
	"friendgraph/internal/events"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Notifier is the best-effort acceptance side effect. Implementations must
// not block the caller; failures stay inside the notifier.
type Notifier interface {
	NotifyAccepted(requesterID, acceptedByID string)
}

// EventPublisher fans a change event out to the given users' sessions.
// Satisfied by events.Hub.
type EventPublisher interface {
	Publish(ev events.Event, userIDs ...string)
}

// Snapshot is a full read of one user's relationship sets, the unit the
// realtime synchronizer rebuilds its cache from.
type Snapshot struct {
	Friends         map[string]bool
	PendingSent     map[string]bool
	PendingReceived map[string]bool
}

// Service is the request lifecycle manager. Every operation is a stateless
// handler: all cross-process race resolution is delegated to the store's
// unique indexes and conditional updates.
type Service interface {
	Send(ctx context.Context, senderID, receiverID string) (*dbmysql.FriendRequest, error)
	Accept(ctx context.Context, requestID, actingUserID string) (*dbmysql.FriendRequest, error)
	Reject(ctx context.Context, requestID, actingUserID string) (*dbmysql.FriendRequest, error)
	Cancel(ctx context.Context, requestID, actingUserID string) error
	Remove(ctx context.Context, userID, friendID string) error

	Request(ctx context.Context, requestID string) (*dbmysql.FriendRequest, error)
	Friends(ctx context.Context, userID string) ([]*dbmysql.Friendship, error)
	PendingSent(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error)
	PendingReceived(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error)
	Snapshot(ctx context.Context, userID string) (*Snapshot, error)
}

type service struct {
	db          *gorm.DB
	requests    FriendRequestRepository
	friendships FriendshipRepository
	notifier    Notifier
	publisher   EventPublisher
	logger      *zap.Logger
}

func NewService(db *gorm.DB, requests FriendRequestRepository, friendships FriendshipRepository,
	notifier Notifier, publisher EventPublisher, logger *zap.Logger) Service {
	return &service{
		db:          db,
		requests:    requests,
		friendships: friendships,
		notifier:    notifier,
		publisher:   publisher,
		logger:      logger,
	}
}

// Send creates a pending request, or collapses a mutual pair: when the
// receiver already has a pending request toward the sender, both intents
// resolve directly into a friendship and no second pending row is created.
func (s *service) Send(ctx context.Context, senderID, receiverID string) (*dbmysql.FriendRequest, error) {
	if senderID == "" || receiverID == "" {
		return nil, common.Validationf("sender and receiver ids are required")
	}
	if senderID == receiverID {
		return nil, common.Validationf("cannot send a friend request to yourself")
	}

	var (
		created      *dbmysql.FriendRequest
		collapsed    bool
		friendshipID string
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		requests := s.requests.WithTx(tx)
		friendships := s.friendships.WithTx(tx)

		exists, err := friendships.Exists(ctx, senderID, receiverID)
		if err != nil {
			return err
		}
		if exists {
			return common.Conflictf("already friends")
		}

		// Mutual collapse: the receiver already asked first.
		reverse, err := requests.PendingByPair(ctx, receiverID, senderID)
		if err != nil && !common.IsNotFound(err) {
			return err
		}
		if reverse != nil {
			n, err := requests.MarkResolved(ctx, reverse.ID, dbmysql.RequestStatusAccepted)
			if err != nil {
				return err
			}
			if n == 0 {
				return common.Conflictf("request state changed concurrently, retry")
			}
			friendshipID, err = s.materializeFriendship(ctx, requests, friendships, reverse.SenderID, reverse.ReceiverID)
			if err != nil {
				return err
			}
			collapsed = true
			created = reverse
			created.Status = dbmysql.RequestStatusAccepted
			created.PendingPair = nil
			return nil
		}

		same, err := requests.PendingByPair(ctx, senderID, receiverID)
		if err != nil && !common.IsNotFound(err) {
			return err
		}
		if same != nil {
			return common.Conflictf("friend request already pending")
		}

		pair := dbmysql.PendingPairKey(senderID, receiverID)
		created = &dbmysql.FriendRequest{
			ID:          uuid.NewString(),
			SenderID:    senderID,
			ReceiverID:  receiverID,
			Status:      dbmysql.RequestStatusPending,
			PendingPair: &pair,
		}
		// A racing opposite-direction send that slipped past the
		// reverse-pending read collides here on the pending-pair index and
		// surfaces as Conflict.
		return requests.Insert(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	if collapsed {
		s.logger.Info("mutual friend requests collapsed into friendship",
			zap.String("sender_id", senderID),
			zap.String("receiver_id", receiverID))
		s.publisher.Publish(events.Event{Table: events.TableRequests, Op: events.OpUpdate, RowID: created.ID},
			senderID, receiverID)
		s.publisher.Publish(events.Event{Table: events.TableFriendships, Op: events.OpInsert, RowID: friendshipID},
			senderID, receiverID)
		// The collapse accepted the receiver's earlier request; the
		// receiver is the one being told their request went through.
		s.notifier.NotifyAccepted(receiverID, senderID)
	} else {
		s.publisher.Publish(events.Event{Table: events.TableRequests, Op: events.OpInsert, RowID: created.ID},
			senderID, receiverID)
	}

	return created, nil
}

// Accept resolves a pending request into a friendship. The conditional
// update makes a concurrent double-accept observe zero affected rows and
// fail with Conflict, leaving store state identical to a single accept.
func (s *service) Accept(ctx context.Context, requestID, actingUserID string) (*dbmysql.FriendRequest, error) {
	req, err := s.requests.ByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ReceiverID != actingUserID {
		return nil, common.Unauthorizedf("only the receiver can accept a friend request")
	}
	if req.Status != dbmysql.RequestStatusPending {
		return nil, common.Conflictf("friend request already %s", req.Status)
	}

	var friendshipID string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		requests := s.requests.WithTx(tx)
		friendships := s.friendships.WithTx(tx)

		n, err := requests.MarkResolved(ctx, requestID, dbmysql.RequestStatusAccepted)
		if err != nil {
			return err
		}
		if n == 0 {
			return common.Conflictf("friend request already processed")
		}
		friendshipID, err = s.materializeFriendship(ctx, requests, friendships, req.SenderID, req.ReceiverID)
		return err
	})
	if err != nil {
		return nil, err
	}

	req.Status = dbmysql.RequestStatusAccepted
	req.PendingPair = nil

	s.publisher.Publish(events.Event{Table: events.TableRequests, Op: events.OpUpdate, RowID: req.ID},
		req.SenderID, req.ReceiverID)
	s.publisher.Publish(events.Event{Table: events.TableFriendships, Op: events.OpInsert, RowID: friendshipID},
		req.SenderID, req.ReceiverID)
	s.notifier.NotifyAccepted(req.SenderID, req.ReceiverID)

	return req, nil
}

// materializeFriendship creates the canonical friendship row inside the
// caller's transaction. A duplicate row means a racing collapse or accept
// already materialized it, which is success, not failure. Any
// counter-direction pending request resolves to accepted so a friendship
// and a pending row never coexist.
func (s *service) materializeFriendship(ctx context.Context, requests FriendRequestRepository,
	friendships FriendshipRepository, senderID, receiverID string) (string, error) {

	f := &dbmysql.Friendship{
		ID:    uuid.NewString(),
		UserA: senderID,
		UserB: receiverID,
	}
	if err := friendships.Insert(ctx, f); err != nil {
		if !common.IsConflict(err) {
			return "", err
		}
		existing, err := friendships.ByPair(ctx, senderID, receiverID)
		if err != nil {
			return "", err
		}
		f = existing
	}

	counter, err := requests.PendingByPair(ctx, receiverID, senderID)
	if err != nil {
		if common.IsNotFound(err) {
			return f.ID, nil
		}
		return "", err
	}
	if _, err := requests.MarkResolved(ctx, counter.ID, dbmysql.RequestStatusAccepted); err != nil {
		return "", err
	}
	return f.ID, nil
}

// Reject moves a pending request to its rejected terminal state. A later
// send between the same pair starts over with a fresh row.
func (s *service) Reject(ctx context.Context, requestID, actingUserID string) (*dbmysql.FriendRequest, error) {
	req, err := s.requests.ByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ReceiverID != actingUserID {
		return nil, common.Unauthorizedf("only the receiver can reject a friend request")
	}
	if req.Status != dbmysql.RequestStatusPending {
		return nil, common.Conflictf("friend request already %s", req.Status)
	}

	n, err := s.requests.MarkResolved(ctx, requestID, dbmysql.RequestStatusRejected)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, common.Conflictf("friend request already processed")
	}

	req.Status = dbmysql.RequestStatusRejected
	req.PendingPair = nil

	s.publisher.Publish(events.Event{Table: events.TableRequests, Op: events.OpUpdate, RowID: req.ID},
		req.SenderID, req.ReceiverID)

	return req, nil
}

// Cancel lets the sender withdraw an unresolved request. The pending row is
// deleted rather than moved to a terminal status: it is unresolved intent,
// not history.
func (s *service) Cancel(ctx context.Context, requestID, actingUserID string) error {
	req, err := s.requests.ByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.SenderID != actingUserID {
		return common.Unauthorizedf("only the sender can cancel a friend request")
	}

	n, err := s.requests.DeletePending(ctx, requestID)
	if err != nil {
		return err
	}
	if n == 0 {
		return common.Conflictf("friend request no longer pending")
	}

	s.publisher.Publish(events.Event{Table: events.TableRequests, Op: events.OpDelete, RowID: req.ID},
		req.SenderID, req.ReceiverID)

	return nil
}

// Remove deletes the friendship between userID and friendID from either
// side. Removing a friendship that does not exist is a no-op success so
// retries after network loss stay safe.
func (s *service) Remove(ctx context.Context, userID, friendID string) error {
	if userID == "" || friendID == "" {
		return common.Validationf("user and friend ids are required")
	}
	if userID == friendID {
		return common.Validationf("cannot unfriend yourself")
	}

	f, err := s.friendships.ByPair(ctx, userID, friendID)
	if err != nil {
		if common.IsNotFound(err) {
			return nil
		}
		return err
	}

	n, err := s.friendships.DeleteByPair(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if n == 0 {
		// a concurrent remove already deleted the row; it published the
		// invalidation
		return nil
	}

	s.publisher.Publish(events.Event{Table: events.TableFriendships, Op: events.OpDelete, RowID: f.ID},
		f.UserA, f.UserB)

	return nil
}

func (s *service) Request(ctx context.Context, requestID string) (*dbmysql.FriendRequest, error) {
	return s.requests.ByID(ctx, requestID)
}

func (s *service) Friends(ctx context.Context, userID string) ([]*dbmysql.Friendship, error) {
	return s.friendships.ListByUser(ctx, userID)
}

func (s *service) PendingSent(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error) {
	return s.requests.ListPendingSent(ctx, userID)
}

func (s *service) PendingReceived(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error) {
	return s.requests.ListPendingReceived(ctx, userID)
}

// Snapshot reads the three relationship sets in one pass. This is the
// read the synchronizer repeats on every invalidation, so it never carries
// row payloads, only the counterpart user ids.
func (s *service) Snapshot(ctx context.Context, userID string) (*Snapshot, error) {
	if userID == "" {
		return nil, common.Validationf("user id is required")
	}

	friendships, err := s.friendships.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sent, err := s.requests.ListPendingSent(ctx, userID)
	if err != nil {
		return nil, err
	}
	received, err := s.requests.ListPendingReceived(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Friends:         make(map[string]bool, len(friendships)),
		PendingSent:     make(map[string]bool, len(sent)),
		PendingReceived: make(map[string]bool, len(received)),
	}
	for _, f := range friendships {
		snap.Friends[f.Other(userID)] = true
	}
	for _, r := range sent {
		snap.PendingSent[r.ReceiverID] = true
	}
	for _, r := range received {
		snap.PendingReceived[r.SenderID] = true
	}
	return snap, nil
}
