package audit

import (
	"context"
	"sync"
	"time"

	"rollbook/internal/platform/device"
	"rollbook/pkg/requestcontext"
)

// Publisher is the sink interface the services emit through.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// Enrich stamps the event with request-scoped metadata and the request time
// before it reaches a sink.
func Enrich(ctx context.Context, event Event) Event {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.Actor == "" {
		event.Actor = requestcontext.Actor(ctx)
	}
	if event.ClientIP == "" {
		event.ClientIP = requestcontext.ClientIP(ctx)
	}
	if event.UserAgent == "" {
		event.UserAgent = requestcontext.UserAgent(ctx)
	}
	if event.Device == "" && event.UserAgent != "" {
		event.Device = device.ParseUserAgent(event.UserAgent)
	}
	return event
}

// InMemoryPublisher appends events to a slice. It is the test sink and the
// development default.
type InMemoryPublisher struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemoryPublisher() *InMemoryPublisher {
	return &InMemoryPublisher{}
}

func (p *InMemoryPublisher) Emit(ctx context.Context, event Event) error {
	event = Enrich(ctx, event)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a snapshot of everything emitted so far.
func (p *InMemoryPublisher) Events() []Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Event{}, p.events...)
}
