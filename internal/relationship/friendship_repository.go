package relationship

import (
	"context"
	"errors"

	"friendgraph/internal/common"
	"friendgraph/internal/dbmysql"

	"gorm.io/gorm"
)

// FriendshipRepository is the store boundary for the canonical symmetric
// friendship rows. Callers pass participants in any order; the repository
// canonicalizes.
type FriendshipRepository interface {
	WithTx(tx *gorm.DB) FriendshipRepository
	Insert(ctx context.Context, f *dbmysql.Friendship) error
	ByPair(ctx context.Context, userID, otherID string) (*dbmysql.Friendship, error)
	Exists(ctx context.Context, userID, otherID string) (bool, error)
	DeleteByPair(ctx context.Context, userID, otherID string) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]*dbmysql.Friendship, error)
}

type friendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) WithTx(tx *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: tx}
}

func (r *friendshipRepository) Insert(ctx context.Context, f *dbmysql.Friendship) error {
	f.UserA, f.UserB = dbmysql.CanonicalPair(f.UserA, f.UserB)
	err := r.db.WithContext(ctx).Create(f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.Conflictf("friendship already exists")
		}
		return common.StoreError("insert friendship", err)
	}
	return nil
}

func (r *friendshipRepository) ByPair(ctx context.Context, userID, otherID string) (*dbmysql.Friendship, error) {
	a, b := dbmysql.CanonicalPair(userID, otherID)
	var f dbmysql.Friendship
	err := r.db.WithContext(ctx).Where("user_a = ? AND user_b = ?", a, b).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("no friendship between %s and %s", userID, otherID)
		}
		return nil, common.StoreError("load friendship", err)
	}
	return &f, nil
}

func (r *friendshipRepository) Exists(ctx context.Context, userID, otherID string) (bool, error) {
	a, b := dbmysql.CanonicalPair(userID, otherID)
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Friendship{}).
		Where("user_a = ? AND user_b = ?", a, b).
		Count(&count).Error
	if err != nil {
		return false, common.StoreError("check friendship", err)
	}
	return count > 0, nil
}

func (r *friendshipRepository) DeleteByPair(ctx context.Context, userID, otherID string) (int64, error) {
	a, b := dbmysql.CanonicalPair(userID, otherID)
	res := r.db.WithContext(ctx).
		Where("user_a = ? AND user_b = ?", a, b).
		Delete(&dbmysql.Friendship{})
	if res.Error != nil {
		return 0, common.StoreError("delete friendship", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *friendshipRepository) ListByUser(ctx context.Context, userID string) ([]*dbmysql.Friendship, error) {
	var friendships []*dbmysql.Friendship
	err := r.db.WithContext(ctx).
		Where("user_a = ? OR user_b = ?", userID, userID).
		Order("created_at DESC").
		Find(&friendships).Error
	if err != nil {
		return nil, common.StoreError("list friendships", err)
	}
	return friendships, nil
}
