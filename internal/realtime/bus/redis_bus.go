package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
	"github.com/amcdental/dentalhub-backend/internal/realtime"
)

const DefaultChannel = "dentalhub.track-progress"

type redisBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

// NewRedisBus publishes on channel through rdb. The client is owned by the caller.
func NewRedisBus(log *logger.Logger, rdb *goredis.Client, channel string) (Bus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if rdb == nil {
		return nil, fmt.Errorf("redis client required")
	}
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = DefaultChannel
	}
	return &redisBus{
		log:     log.With("service", "RedisProgressBus"),
		rdb:     rdb,
		channel: channel,
	}, nil
}

func (b *redisBus) Publish(ctx context.Context, evt realtime.ProgressEvent) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("redis progress bus not initialized")
	}
	raw, err := Encode(evt)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

// Close is a no-op; the shared client is closed by its owner.
func (b *redisBus) Close() error { return nil }

func Encode(evt realtime.ProgressEvent) ([]byte, error) {
	if evt.Type == "" {
		evt.Type = realtime.EventTrackProgressChanged
	}
	return json.Marshal(evt)
}

func Decode(raw []byte) (realtime.ProgressEvent, error) {
	var evt realtime.ProgressEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		return realtime.ProgressEvent{}, err
	}
	if evt.Type == "" {
		return realtime.ProgressEvent{}, fmt.Errorf("progress event missing type")
	}
	return evt, nil
}
