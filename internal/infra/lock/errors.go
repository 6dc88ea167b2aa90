package lock

import "errors"

var (
	// ErrLockNotAcquired возвращается, когда ключ уже занят другим запросом
	ErrLockNotAcquired = errors.New("lock: already held by another request")

	// ErrLockBackend возвращается при ошибках Redis
	ErrLockBackend = errors.New("lock: backend error")
)
