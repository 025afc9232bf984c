package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/ports"
)

var _ ports.VerificationCodeStore = (*RedisCodeStore)(nil)

const codeKeyPrefix = "verification:code:"

// RedisConfig conexión a Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient abre el cliente y verifica la conexión con PING.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// RedisCodeStore guarda códigos de verificación como claves con TTL.
type RedisCodeStore struct {
	client *redis.Client
}

// NewRedisCodeStore construye el store sobre un cliente existente.
func NewRedisCodeStore(client *redis.Client) *RedisCodeStore {
	return &RedisCodeStore{client: client}
}

func codeKey(email string) string { return codeKeyPrefix + email }

// Save reemplaza cualquier código previo del email.
func (s *RedisCodeStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, codeKey(email), code, ttl).Err(); err != nil {
		return fmt.Errorf("redis: guardar código: %w", err)
	}
	return nil
}

// Consume compara y elimina; DEL garantiza que un código solo se consume una vez.
func (s *RedisCodeStore) Consume(ctx context.Context, email, code string) (bool, error) {
	key := codeKey(email)
	stored, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis: leer código: %w", err)
	}
	if stored != code {
		return false, nil
	}
	n, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis: eliminar código: %w", err)
	}
	return n == 1, nil
}
