package store

import (
	"context"
	"fmt"
	"time"

	"github.com/gogotex/qa-service/internal/config"
	"github.com/gogotex/qa-service/internal/database"
	"github.com/gogotex/qa-service/pkg/logger"
)

const (
	mongoConnectAttempts = 5
	redisConnectTimeout  = 5 * time.Second
)

// Open builds the backend selected by cfg.Store.Backend and wraps it with
// metrics. The returned close function releases the backend's connections.
func Open(ctx context.Context, cfg *config.Config) (Store, func(), error) {
	var (
		st      Store
		closeFn = func() {}
	)
	switch cfg.Store.Backend {
	case config.BackendMemory:
		st = NewMemoryStore()
	case config.BackendMongo:
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, mongoConnectAttempts, time.Second)
		if err != nil {
			return nil, nil, err
		}
		st = NewMongoStore(client.Database(cfg.MongoDB.Database))
		closeFn = func() { _ = client.Disconnect(context.Background()) }
	case config.BackendRedis:
		addr := cfg.Redis.Host + ":" + cfg.Redis.Port
		client, err := database.ConnectRedis(ctx, addr, cfg.Redis.Password, cfg.Redis.DB, redisConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		st = NewRedisStore(client, cfg.Redis.Prefix)
		closeFn = func() { _ = client.Close() }
	case config.BackendMinIO:
		obj, err := NewObjectStore(ctx, ObjectStoreConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			UseSSL:    cfg.MinIO.UseSSL,
			Bucket:    cfg.MinIO.Bucket,
		})
		if err != nil {
			return nil, nil, err
		}
		st = obj
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	logger.Infof("store backend %s ready", cfg.Store.Backend)
	return NewInstrumented(st, cfg.Store.Backend), closeFn, nil
}
