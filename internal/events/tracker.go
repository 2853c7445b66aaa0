package events

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jdelacroix/inkwell/internal/logger"
)

// Event is a single interaction event.
type Event struct {
	Name   string
	Fields map[string]any
	At     time.Time
}

// Handler processes an event delivered to a subscriber.
type Handler func(ctx context.Context, event Event) error

// Subscription allows a subscriber to detach.
type Subscription interface {
	Unsubscribe()
}

// Tracker records interaction events as structured log entries and fans them
// out to subscribers. It is the analytics sink of the application.
type Tracker struct {
	log    *logger.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewTracker creates a Tracker writing to the supplied logger.
func NewTracker(log *logger.Logger) *Tracker {
	return &Tracker{
		log:  log,
		subs: make(map[string][]subscriptionEntry),
	}
}

// Track records an event and notifies subscribers for its name.
func (t *Tracker) Track(ctx context.Context, name string, fields map[string]any) {
	if t == nil {
		return
	}

	event := Event{Name: name, Fields: fields, At: time.Now()}

	t.mu.RLock()
	handlers := append([]subscriptionEntry(nil), t.subs[name]...)
	t.mu.RUnlock()

	entry := map[string]any{"event": name}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		entry[key] = fields[key]
	}
	t.log.WithFields(entry).Info("interaction event")

	for _, sub := range handlers {
		if sub.handler == nil {
			continue
		}
		if err := sub.handler(ctx, event); err != nil {
			t.log.Error(err, "event handler failed")
		}
	}
}

// Subscribe registers a handler for events with the given name.
func (t *Tracker) Subscribe(name string, handler Handler) Subscription {
	if t == nil || handler == nil {
		return noopSubscription{}
	}

	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.subs[name] = append(t.subs[name], subscriptionEntry{id: id, handler: handler})
	t.mu.Unlock()

	return subscription{
		cancel: func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			handlers := t.subs[name]
			for i, entry := range handlers {
				if entry.id == id {
					t.subs[name] = append(handlers[:i], handlers[i+1:]...)
					break
				}
			}
		},
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler Handler
}
