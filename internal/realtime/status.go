package realtime

import (
	"friendgraph/internal/relationship"
)

// Status is the per-target relationship status shown to a session.
type Status string

const (
	StatusSelf            Status = "self"
	StatusFriend          Status = "friend"
	StatusPendingSent     Status = "pending_sent"
	StatusPendingReceived Status = "pending_received"
	StatusNone            Status = "none"
)

// DeriveStatus turns the cached sets into a status for one target.
// Precedence is evaluated top to bottom, first match wins: asynchronous
// event delivery can transiently leave a target in more than one set, and
// this ordering guarantees a user is never shown as both friend and
// pending.
func DeriveStatus(selfID, targetID string, snap *relationship.Snapshot) Status {
	if targetID == selfID {
		return StatusSelf
	}
	if snap == nil {
		return StatusNone
	}
	if snap.Friends[targetID] {
		return StatusFriend
	}
	if snap.PendingSent[targetID] {
		return StatusPendingSent
	}
	if snap.PendingReceived[targetID] {
		return StatusPendingReceived
	}
	return StatusNone
}
