package dbmysql

import (
	"time"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// FriendRequest is one directed request row. Terminal rows (accepted,
// rejected) are history and never reused; a re-send after a terminal
// outcome inserts a fresh row.
type FriendRequest struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	SenderID   string `gorm:"column:sender_id;size:64;not null;index:idx_sender_status" json:"sender_id"`
	ReceiverID string `gorm:"column:receiver_id;size:64;not null;index:idx_receiver_status" json:"receiver_id"`
	Status     string `gorm:"column:status;type:enum('pending','accepted','rejected');default:'pending';index:idx_sender_status;index:idx_receiver_status" json:"status"`

	// PendingPair holds the canonical "<min>:<max>" key of the pair while
	// the row is pending and NULL once terminal. The unique index on it
	// enforces at most one pending row per pair in either direction while
	// terminal history accumulates (MySQL unique indexes admit any number
	// of NULLs). Keying on the unordered pair is what makes two racing
	// opposite-direction sends collide at the store when both transactions
	// read before either commits.
	PendingPair *string `gorm:"column:pending_pair;size:130;uniqueIndex" json:"-"`

	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ResolvedAt *time.Time `gorm:"column:resolved_at" json:"resolved_at,omitempty"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FriendRequest) TableName() string { return "friend_requests" }

// PendingPairKey builds the value stored in pending_pair. The key is
// canonical on the unordered pair so a pending row in one direction blocks
// a pending insert in the other.
func PendingPairKey(senderID, receiverID string) string {
	a, b := CanonicalPair(senderID, receiverID)
	return a + ":" + b
}
