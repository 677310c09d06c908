package dbmysql

import (
	"time"
)

// Friendship is the canonical symmetric record for an unordered pair.
// UserA < UserB always holds, so exactly one row can exist per pair no
// matter which side initiated it.
type Friendship struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserA     string    `gorm:"column:user_a;size:64;not null;index:idx_pair,unique" json:"user_a"`
	UserB     string    `gorm:"column:user_b;size:64;not null;index:idx_pair,unique" json:"user_b"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Friendship) TableName() string { return "friendships" }

// CanonicalPair orders an unordered pair for storage.
func CanonicalPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// Other returns the participant that is not userID.
func (f *Friendship) Other(userID string) string {
	if f.UserA == userID {
		return f.UserB
	}
	return f.UserA
}
