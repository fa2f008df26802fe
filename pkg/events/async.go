package events

import (
	"context"
	"fmt"
	"time"

	"github.com/noah-isme/school-admin-api/pkg/jobs"
)

// AsyncPublisher hands events to a worker queue so request handlers never wait
// on the downstream publisher. Failed deliveries are retried by the queue.
type AsyncPublisher struct {
	next  Publisher
	queue *jobs.Queue
}

// NewAsyncPublisher wraps next. Call Start before publishing.
func NewAsyncPublisher(next Publisher, cfg jobs.Config) *AsyncPublisher {
	if next == nil {
		next = Nop{}
	}
	p := &AsyncPublisher{next: next}
	p.queue = jobs.New("events", p.deliver, cfg)
	return p
}

// Start launches the delivery workers.
func (p *AsyncPublisher) Start(ctx context.Context) {
	p.queue.Start(ctx)
}

// Publish stamps evt and queues it for delivery.
func (p *AsyncPublisher) Publish(_ context.Context, evt Event) error {
	if evt.At.IsZero() {
		evt.At = time.Now().UTC()
	}
	if err := p.queue.Submit(jobs.Job{Key: string(evt.Type) + ":" + evt.ID, Payload: evt}); err != nil {
		return fmt.Errorf("queue event %s: %w", evt.Type, err)
	}
	return nil
}

// Shutdown drains queued events and then closes the wrapped publisher when it
// holds a connection.
func (p *AsyncPublisher) Shutdown(ctx context.Context) error {
	drainErr := p.queue.Close(ctx)
	if closer, ok := p.next.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}
	return drainErr
}

func (p *AsyncPublisher) deliver(ctx context.Context, job jobs.Job) error {
	evt, ok := job.Payload.(Event)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", job.Payload)
	}
	return p.next.Publish(ctx, evt)
}
