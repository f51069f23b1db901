package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/repository"
	"github.com/jhoicas/ims-client/pkg/config"
)

const keyPrefix = "ims:session:"

// RedisStore almacén compartido entre instancias del gateway; la expiración la aplica Redis.
type RedisStore struct {
	client *redis.Client
}

var _ repository.SessionRepository = (*RedisStore)(nil)

func NewRedisStore(cfg config.SessionConfig) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return &RedisStore{client: client}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) Save(ctx context.Context, s *entity.Session, ttl time.Duration) error {
	if s == nil {
		return nil
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: serializar: %w", err)
	}
	return r.client.Set(ctx, keyPrefix+s.ID, payload, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	val, err := r.client.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: leer: %w", err)
	}
	var s entity.Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: decodificar: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, keyPrefix+id).Err()
}
