package audit

import (
	"context"
	"log/slog"
	"time"
)

// Worker decouples event emission from the request path: services write into
// a buffered channel through AsyncPublisher, the worker drains it into the
// real sink. A full buffer drops the event rather than blocking a request.
type Worker struct {
	sink   Publisher
	inbox  chan Event
	logger *slog.Logger
}

func NewWorker(sink Publisher, buffer int, logger *slog.Logger) *Worker {
	if buffer <= 0 {
		buffer = 256
	}
	return &Worker{sink: sink, inbox: make(chan Event, buffer), logger: logger}
}

// Publisher returns the request-side handle that feeds this worker.
func (w *Worker) Publisher() Publisher {
	return &asyncPublisher{worker: w}
}

// Run drains the inbox until ctx is canceled, then flushes whatever is still
// buffered before returning.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return w.flush()
		case event := <-w.inbox:
			if err := w.sink.Emit(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit sink failed",
					"action", string(event.Action),
					"error", err,
				)
			}
		}
	}
}

func (w *Worker) flush() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case event := <-w.inbox:
			if err := w.sink.Emit(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit sink failed during flush",
					"action", string(event.Action),
					"error", err,
				)
			}
		default:
			return nil
		}
	}
}

type asyncPublisher struct {
	worker *Worker
}

func (p *asyncPublisher) Emit(ctx context.Context, event Event) error {
	event = Enrich(ctx, event)
	select {
	case p.worker.inbox <- event:
	default:
		p.worker.logger.WarnContext(ctx, "audit buffer full, dropping event",
			"action", string(event.Action),
		)
	}
	return nil
}
