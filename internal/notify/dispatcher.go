package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	enqueueTimeout = 2 * time.Second
	publishTimeout = 5 * time.Second
)

//go:generate mockgen -source=dispatcher.go -destination=mock_dispatcher.go -package=notify
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
	Close()
}

// Dispatcher hands committed events to the publisher on a worker pool.
// Delivery is best effort: failures are logged and never reach the caller.
type Dispatcher struct {
	publisher Publisher
	pool      WorkerPoolI
}

func NewDispatcher(publisher Publisher, pool WorkerPoolI) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		pool:      pool,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, events ...Event) {
	// The request may finish before the queue has room; enqueueing must not
	// depend on it.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enqueueTimeout)
	defer cancel()

	for _, event := range events {
		event := event
		err := d.pool.AddTask(ctx, func() error {
			pctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
			defer cancel()
			if err := d.publisher.Publish(pctx, string(event.Type), event); err != nil {
				return fmt.Errorf("publish %s: %w", event.Type, err)
			}
			return nil
		})
		if err != nil {
			zap.L().Warn("notification dropped", zap.String("type", string(event.Type)), zap.Int("user_id", event.UserID), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Close() {
	d.pool.Close()
	d.publisher.Close()
}
