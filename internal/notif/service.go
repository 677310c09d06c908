package notif

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// AcceptedEvent describes an accepted friend request: RequesterID is the
// user being notified (their request went through), AcceptedByID the user
// who accepted.
type AcceptedEvent struct {
	RequesterID  string
	AcceptedByID string
	OccurredAt   time.Time
}

// Observer is one notification sink.
type Observer interface {
	Update(event AcceptedEvent) error
	Name() string
}

// Service dispatches acceptance notifications to its observers
// asynchronously. It satisfies relationship.Notifier: a failing observer is
// logged and never affects the operation that triggered it.
type Service struct {
	mu        sync.RWMutex
	observers []Observer
	logger    *zap.Logger
	wg        sync.WaitGroup
}

func NewService(logger *zap.Logger, observers ...Observer) *Service {
	return &Service{observers: observers, logger: logger}
}

func (s *Service) Subscribe(o Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// NotifyAccepted fans the event out without blocking the caller.
func (s *Service) NotifyAccepted(requesterID, acceptedByID string) {
	event := AcceptedEvent{
		RequesterID:  requesterID,
		AcceptedByID: acceptedByID,
		OccurredAt:   time.Now().UTC(),
	}

	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, o := range observers {
		o := o
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := o.Update(event); err != nil {
				s.logger.Warn("notification observer failed",
					zap.String("observer", o.Name()),
					zap.String("requester_id", event.RequesterID),
					zap.Error(err))
			}
		}()
	}
}

// Wait blocks until in-flight notifications finish. Used on shutdown and
// in tests.
func (s *Service) Wait() {
	s.wg.Wait()
}
