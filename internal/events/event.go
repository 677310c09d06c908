package events

// Table identifies which relationship table a change event belongs to.
type Table string

const (
	TableRequests    Table = "friend_requests"
	TableFriendships Table = "friendships"
)

// Op is the kind of row change.
type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Event is the tagged change record fanned out to subscribed sessions.
// It carries no row payload on purpose: consumers treat it purely as an
// invalidation signal and refetch, never as delta data to merge.
type Event struct {
	Table Table  `json:"table"`
	Op    Op     `json:"operation"`
	RowID string `json:"row_id"`
}

// Source is the change-event boundary the synchronizer consumes. Subscribe
// returns once the subscription is live; Unsubscribe is idempotent.
type Source interface {
	Subscribe(userID string) (*Subscription, error)
	Unsubscribe(sub *Subscription)
}
