package relationship

import (
	"context"
	"errors"
	"time"

	"friendgraph/internal/common"
	"friendgraph/internal/dbmysql"

	"gorm.io/gorm"
)

// FriendRequestRepository is the store boundary for friend_requests rows.
// Insert relies on the pending-pair unique index for insert-if-absent;
// MarkResolved is the compare-and-update primitive (pending -> terminal).
type FriendRequestRepository interface {
	WithTx(tx *gorm.DB) FriendRequestRepository
	Insert(ctx context.Context, req *dbmysql.FriendRequest) error
	ByID(ctx context.Context, id string) (*dbmysql.FriendRequest, error)
	PendingByPair(ctx context.Context, senderID, receiverID string) (*dbmysql.FriendRequest, error)
	MarkResolved(ctx context.Context, id, toStatus string) (int64, error)
	DeletePending(ctx context.Context, id string) (int64, error)
	ListPendingSent(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error)
	ListPendingReceived(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error)
}

type friendRequestRepository struct {
	db *gorm.DB
}

func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) WithTx(tx *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: tx}
}

func (r *friendRequestRepository) Insert(ctx context.Context, req *dbmysql.FriendRequest) error {
	err := r.db.WithContext(ctx).Create(req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.Conflictf("friend request already pending for this pair")
		}
		return common.StoreError("insert friend request", err)
	}
	return nil
}

func (r *friendRequestRepository) ByID(ctx context.Context, id string) (*dbmysql.FriendRequest, error) {
	var req dbmysql.FriendRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("friend request %s not found", id)
		}
		return nil, common.StoreError("load friend request", err)
	}
	return &req, nil
}

func (r *friendRequestRepository) PendingByPair(ctx context.Context, senderID, receiverID string) (*dbmysql.FriendRequest, error) {
	var req dbmysql.FriendRequest
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, dbmysql.RequestStatusPending).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("no pending request from %s to %s", senderID, receiverID)
		}
		return nil, common.StoreError("load pending request", err)
	}
	return &req, nil
}

// MarkResolved moves a pending row to a terminal status and clears the
// pending-pair key in one conditional update. Zero rows affected means the
// row was already resolved (or never existed).
func (r *friendRequestRepository) MarkResolved(ctx context.Context, id, toStatus string) (int64, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&dbmysql.FriendRequest{}).
		Where("id = ? AND status = ?", id, dbmysql.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":       toStatus,
			"pending_pair": nil,
			"resolved_at":  now,
		})
	if res.Error != nil {
		return 0, common.StoreError("resolve friend request", res.Error)
	}
	return res.RowsAffected, nil
}

// DeletePending removes a pending row (sender cancellation). Terminal rows
// are history and are never deleted here.
func (r *friendRequestRepository) DeletePending(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, dbmysql.RequestStatusPending).
		Delete(&dbmysql.FriendRequest{})
	if res.Error != nil {
		return 0, common.StoreError("delete pending request", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *friendRequestRepository) ListPendingSent(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error) {
	var requests []*dbmysql.FriendRequest
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", userID, dbmysql.RequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, common.StoreError("list pending sent", err)
	}
	return requests, nil
}

func (r *friendRequestRepository) ListPendingReceived(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error) {
	var requests []*dbmysql.FriendRequest
	err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", userID, dbmysql.RequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, common.StoreError("list pending received", err)
	}
	return requests, nil
}
