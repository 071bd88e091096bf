package app

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/amcdental/dentalhub-backend/internal/data/db"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
	"github.com/amcdental/dentalhub-backend/internal/realtime/bus"
)

type Clients struct {
	DB    *gorm.DB
	Redis *goredis.Client
	Bus   bus.Bus

	closeDB func() error
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (*Clients, error) {
	log.Info("Wiring clients...")
	c := &Clients{}

	switch cfg.DBDriver {
	case DriverSQLite:
		svc, err := db.NewSQLiteService(log, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("init sqlite: %w", err)
		}
		c.DB, c.closeDB = svc.DB(), svc.Close
	default:
		svc, err := db.NewPostgresService(log)
		if err != nil {
			return nil, fmt.Errorf("init postgres: %w", err)
		}
		c.DB, c.closeDB = svc.DB(), svc.Close
	}
	if cfg.AutoMigrate {
		if err := db.AutoMigrateAll(c.DB); err != nil {
			c.Close()
			return nil, fmt.Errorf("automigrate: %w", err)
		}
	}

	// Redis is optional; without it progress events are dropped.
	c.Bus = bus.NewNopBus()
	if cfg.RedisAddr != "" {
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			_ = rdb.Close()
			c.Close()
			return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		b, err := bus.NewRedisBus(log, rdb, cfg.RedisChannel)
		if err != nil {
			_ = rdb.Close()
			c.Close()
			return nil, fmt.Errorf("init redis progress bus: %w", err)
		}
		c.Redis, c.Bus = rdb, b
	}
	return c, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Bus != nil {
		_ = c.Bus.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.closeDB != nil {
		_ = c.closeDB()
	}
}
