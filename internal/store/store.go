// ABOUTME: Client-side state store with reducer dispatch and subscriptions
// ABOUTME: Single-writer: every mutation goes through Dispatch under one lock

package store

import (
	"sync"
	"time"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	"github.com/google/uuid"
)

// DefaultNotificationTTL is how long a notification stays visible
const DefaultNotificationTTL = 5 * time.Second

// Store holds the application state and the async action methods that
// reconcile backend results into it. Create one per application (or per
// test) with New; there is no ambient singleton.
type Store struct {
	api *client.Client

	mu     sync.Mutex
	state  State
	subs   []chan struct{}
	timers map[string]*time.Timer

	notificationTTL time.Duration
}

// Option configures a Store
type Option func(*Store)

// WithNotificationTTL overrides the notification expiry delay
func WithNotificationTTL(d time.Duration) Option {
	return func(s *Store) {
		s.notificationTTL = d
	}
}

// New creates a store bound to the given API client
func New(api *client.Client, opts ...Option) *Store {
	s := &Store{
		api:             api,
		timers:          make(map[string]*time.Timer),
		notificationTTL: DefaultNotificationTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot. The snapshot's slices are never
// mutated after publication, so callers may read them freely.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch runs one action through the reducer and wakes subscribers.
// Transitions are applied strictly in dispatch order.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	subs := s.subs
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
			// Subscriber already has a pending signal; changes coalesce
		}
	}
}

// Subscribe returns a channel that receives a signal after state
// changes. Signals are coalesced: one receive may cover several
// dispatches, so consumers should re-read State() rather than count.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// Close cancels outstanding notification timers
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// AddNotification enqueues a transient message that removes itself
// after the notification TTL. Removal goes through the reducer like
// any other transition.
func (s *Store) AddNotification(message, kind string) string {
	id := uuid.NewString()
	s.Dispatch(addNotification{Notification: Notification{ID: id, Message: message, Type: kind}})

	timer := time.AfterFunc(s.notificationTTL, func() {
		s.DismissNotification(id)
	})
	s.mu.Lock()
	s.timers[id] = timer
	s.mu.Unlock()
	return id
}

// DismissNotification removes a notification immediately and cancels
// its expiry timer so it cannot fire against a reused state later.
func (s *Store) DismissNotification(id string) {
	s.mu.Lock()
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.Dispatch(removeNotification{ID: id})
}

// ClearError dismisses the global error banner
func (s *Store) ClearError() {
	s.Dispatch(clearError{})
}
