package events

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Subscription is one session's live feed of change events scoped to a
// single user's rows. It is owned by exactly one consumer.
type Subscription struct {
	UserID string

	id   string
	ch   chan Event
	done chan struct{}
	once sync.Once
}

// Events is the feed channel. It is closed when the subscription is
// released.
func (s *Subscription) Events() <-chan Event { return s.ch }

// Done is closed when the subscription has been released, either by the
// consumer or by hub shutdown.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Hub is the in-process change event source: per-user fan-out of store
// mutations to every session subscribed for that user.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[string]*Subscription // userID -> subscription id
	buffer int
	closed bool
	logger *zap.Logger
}

func NewHub(bufferSize int, logger *zap.Logger) *Hub {
	if bufferSize < 1 {
		bufferSize = 16
	}
	return &Hub{
		subs:   make(map[string]map[string]*Subscription),
		buffer: bufferSize,
		logger: logger,
	}
}

// Subscribe registers a new session feed for userID. The subscription is
// live once Subscribe returns.
func (h *Hub) Subscribe(userID string) (*Subscription, error) {
	if userID == "" {
		return nil, errors.New("subscribe: empty user id")
	}

	sub := &Subscription{
		UserID: userID,
		id:     uuid.NewString(),
		ch:     make(chan Event, h.buffer),
		done:   make(chan struct{}),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, errors.New("subscribe: hub closed")
	}
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[string]*Subscription)
	}
	h.subs[userID][sub.id] = sub
	return sub, nil
}

// Unsubscribe releases sub. Safe to call multiple times and after hub
// shutdown.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	sub.once.Do(func() {
		h.mu.Lock()
		if m := h.subs[sub.UserID]; m != nil {
			delete(m, sub.id)
			if len(m) == 0 {
				delete(h.subs, sub.UserID)
			}
		}
		h.mu.Unlock()
		close(sub.done)
		close(sub.ch)
	})
}

// Publish fans ev out to every subscription of the given users. A full
// subscriber buffer drops the event: the queued events already guarantee a
// future refetch, and that refetch reads store truth committed after this
// mutation, so the invalidation is not lost.
func (h *Hub) Publish(ev Event, userIDs ...string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}

	seen := make(map[string]bool, len(userIDs))
	for _, userID := range userIDs {
		if seen[userID] {
			continue
		}
		seen[userID] = true

		for _, sub := range h.subs[userID] {
			select {
			case sub.ch <- ev:
			default:
				if h.logger != nil {
					h.logger.Warn("event buffer full, coalescing into queued refetch",
						zap.String("user_id", userID),
						zap.String("table", string(ev.Table)),
						zap.String("op", string(ev.Op)))
				}
			}
		}
	}
}

// Close releases every subscription. Further Subscribe calls fail and
// further Publish calls are no-ops.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	var all []*Subscription
	for _, m := range h.subs {
		for _, sub := range m {
			all = append(all, sub)
		}
	}
	h.subs = make(map[string]map[string]*Subscription)
	h.mu.Unlock()

	for _, sub := range all {
		sub.once.Do(func() {
			close(sub.done)
			close(sub.ch)
		})
	}
}
