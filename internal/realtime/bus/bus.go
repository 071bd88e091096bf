package bus

import (
	"context"

	"github.com/amcdental/dentalhub-backend/internal/realtime"
)

// Bus fans progress events out to other processes. Publish is fire and forget.
type Bus interface {
	Publish(ctx context.Context, evt realtime.ProgressEvent) error
	Close() error
}

type nopBus struct{}

// NewNopBus returns a bus that drops every event.
func NewNopBus() Bus { return nopBus{} }

func (nopBus) Publish(context.Context, realtime.ProgressEvent) error { return nil }
func (nopBus) Close() error                                          { return nil }
