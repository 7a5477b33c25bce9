package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/email-dispatcher/internal/config"
	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

// historyKey — ключ redis-списка с записями журнала.
const historyKey = "emails:history"

// RedisStore хранит журнал отправок в redis-списке: записи сериализуются
// в JSON и добавляются в конец. Журнал переживает рестарт процесса.
type RedisStore struct {
	db *redis.Client
}

// NewRedisStore подключается к Redis и возвращает журнал поверх него.
func NewRedisStore(ctx context.Context, cfg config.RedisConnection) (*RedisStore, error) {
	const op = "history.NewRedisStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})
	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStore{db: db}, nil
}

// Append добавляет запись в конец redis-списка.
func (r *RedisStore) Append(ctx context.Context, email models.Email) error {
	const op = "history.Append"
	data, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = r.db.RPush(ctx, historyKey, data).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// List возвращает записи журнала в порядке добавления.
func (r *RedisStore) List(ctx context.Context, fromEmail string) ([]models.Email, error) {
	const op = "history.List"
	values, err := r.db.LRange(ctx, historyKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result := make([]models.Email, 0, len(values))
	for _, v := range values {
		var e models.Email
		if err = json.Unmarshal([]byte(v), &e); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if fromEmail == "" || e.From == fromEmail {
			result = append(result, e)
		}
	}
	return result, nil
}
