package realtime

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"friendgraph/internal/common"
	"friendgraph/internal/events"
	"friendgraph/internal/relationship"

	"go.uber.org/zap"
)

// State is the synchronizer's session lifecycle state.
type State int32

const (
	StateDisconnected State = iota
	StateSubscribing
	StateSubscribed
	StateReconciling
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateSubscribing:
		return "subscribing"
	case StateSubscribed:
		return "subscribed"
	case StateReconciling:
		return "reconciling"
	}
	return "unknown"
}

// SnapshotFetcher is the store read the synchronizer rebuilds its cache
// from. relationship.Service satisfies it.
type SnapshotFetcher interface {
	Snapshot(ctx context.Context, userID string) (*relationship.Snapshot, error)
}

// Options tunes the synchronizer's snapshot reads and resubscribe pacing.
type Options struct {
	FetchRetries   int
	RetryDelay     time.Duration
	ResubscribeGap time.Duration

	// OnReconcile, when set, runs after every successful cache rebuild
	// (seed included) with the fresh snapshot. Called from the session
	// goroutine; keep it fast.
	OnReconcile func(*relationship.Snapshot)
}

func (o Options) withDefaults() Options {
	if o.FetchRetries < 1 {
		o.FetchRetries = 3
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = 200 * time.Millisecond
	}
	if o.ResubscribeGap <= 0 {
		o.ResubscribeGap = time.Second
	}
	return o
}

// Synchronizer keeps one session's cached relationship sets consistent
// with the store. Every change event is treated purely as an invalidation
// that triggers a full refetch; events queued while a refetch runs coalesce
// into a single follow-up refetch. On transport loss it resubscribes
// automatically, retaining the cache as a best-effort view in between.
type Synchronizer struct {
	userID  string
	source  events.Source
	fetcher SnapshotFetcher
	opts    Options
	logger  *zap.Logger

	cache *Cache
	state atomic.Int32

	ready     chan struct{}
	readyOnce sync.Once
	closed    chan struct{}
	closeOnce sync.Once
	done      chan struct{}
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewSynchronizer(userID string, source events.Source, fetcher SnapshotFetcher,
	opts Options, logger *zap.Logger) *Synchronizer {

	ctx, cancel := context.WithCancel(context.Background())
	return &Synchronizer{
		userID:  userID,
		source:  source,
		fetcher: fetcher,
		opts:    opts.withDefaults(),
		logger:  logger,
		cache:   NewCache(),
		ready:   make(chan struct{}),
		closed:  make(chan struct{}),
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the session loop. Call exactly once.
func (s *Synchronizer) Start() {
	go s.run()
}

// Close tears the session down: the subscription is released and the loop
// exits. Safe to call multiple times.
func (s *Synchronizer) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		s.cancel()
	})
	<-s.done
}

// WaitSubscribed blocks until the first successful subscribe+seed, or ctx
// expiry.
func (s *Synchronizer) WaitSubscribed(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// StatusFor derives the relationship status of targetID from the session
// cache.
func (s *Synchronizer) StatusFor(targetID string) Status {
	return s.cache.StatusFor(s.userID, targetID)
}

// Snapshot exposes the cached sets (read-only) to surfaces like the
// gateway.
func (s *Synchronizer) Snapshot() *relationship.Snapshot {
	return s.cache.Snapshot()
}

// State reports the current lifecycle state.
func (s *Synchronizer) State() State {
	return State(s.state.Load())
}

func (s *Synchronizer) setState(st State) {
	s.state.Store(int32(st))
}

func (s *Synchronizer) run() {
	defer close(s.done)
	defer s.setState(StateDisconnected)

	for {
		select {
		case <-s.closed:
			return
		default:
		}

		s.setState(StateSubscribing)
		sub, err := s.source.Subscribe(s.userID)
		if err != nil {
			s.logger.Warn("subscribe failed, retrying",
				zap.String("user_id", s.userID), zap.Error(err))
			select {
			case <-s.closed:
				return
			case <-time.After(s.opts.ResubscribeGap):
			}
			continue
		}

		// Seed before reporting the subscription live. A failed seed keeps
		// any previous cache as a best-effort view; the next event will
		// trigger another refetch.
		if err := s.refetch(); err != nil {
			s.logger.Warn("seed fetch failed, keeping cached view",
				zap.String("user_id", s.userID), zap.Error(err))
		}
		s.setState(StateSubscribed)
		s.readyOnce.Do(func() { close(s.ready) })

		if !s.consume(sub) {
			s.source.Unsubscribe(sub)
			return
		}
		s.source.Unsubscribe(sub)
		s.logger.Info("event stream lost, resubscribing",
			zap.String("user_id", s.userID))
	}
}

// consume processes events until the stream drops (returns true, caller
// resubscribes) or the session closes (returns false).
func (s *Synchronizer) consume(sub *events.Subscription) bool {
	for {
		select {
		case <-s.closed:
			return false
		case _, ok := <-sub.Events():
			if !ok {
				return true
			}
			// Coalesce whatever else is queued: one refetch reads store
			// truth for all of them.
			streamClosed := drain(sub)
			s.setState(StateReconciling)
			if err := s.refetch(); err != nil {
				s.logger.Warn("reconcile fetch failed, keeping cached view",
					zap.String("user_id", s.userID), zap.Error(err))
			}
			s.setState(StateSubscribed)
			if streamClosed {
				return true
			}
		}
	}
}

// drain empties the queued events without blocking. Reports whether the
// channel closed while draining.
func drain(sub *events.Subscription) bool {
	for {
		select {
		case _, ok := <-sub.Events():
			if !ok {
				return true
			}
		default:
			return false
		}
	}
}

func (s *Synchronizer) refetch() error {
	return common.Retry(s.ctx, s.opts.FetchRetries, s.opts.RetryDelay, func() error {
		snap, err := s.fetcher.Snapshot(s.ctx, s.userID)
		if err != nil {
			return err
		}
		s.cache.Replace(snap)
		if s.opts.OnReconcile != nil {
			s.opts.OnReconcile(snap)
		}
		return nil
	})
}
