package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript удаляет ключ, только если он все еще принадлежит нам
// (TTL мог истечь и ключ мог занять другой запрос)
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// RedisLocker распределенная блокировка на SETNX с TTL
type RedisLocker struct {
	client redis.UniversalClient
	logger Logger
}

// NewRedisLocker создает блокировщик поверх клиента Redis
func NewRedisLocker(client redis.UniversalClient, logger Logger) *RedisLocker {
	return &RedisLocker{client: client, logger: logger}
}

// BookingKey ключ блокировки для комнаты на дату
func BookingKey(roomID, date string) string {
	return "booking_lock:" + roomID + ":" + date
}

// Acquire пытается занять ключ на ttl. Не ждет: если ключ занят, сразу ErrLockNotAcquired.
// Возвращает функцию освобождения, которую нужно вызвать через defer
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: SetNX %s: %v", ErrLockBackend, key, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLockNotAcquired, key)
	}

	release := func() {
		// Контекст запроса мог быть отменен, освобождаем с собственным таймаутом
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warn("lock: failed to release %s: %v", key, err)
		}
	}

	return release, nil
}

// NoopLocker используется, когда Redis выключен: единственным барьером остаются
// транзакция и уникальный индекс в БД
type NoopLocker struct{}

// Acquire всегда успешен
func (NoopLocker) Acquire(context.Context, string, time.Duration) (func(), error) {
	return func() {}, nil
}

// NewClient создает клиента Redis и проверяет соединение
func NewClient(ctx context.Context, addr, password string, db int, dialTimeout time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrLockBackend, addr, err)
	}

	return client, nil
}
