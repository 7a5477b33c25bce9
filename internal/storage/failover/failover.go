// Package failover реализует политику резервирования хранилищ: каждая
// операция сначала выполняется на основном бэкенде (PostgreSQL), а при его
// отказе прозрачно повторяется на резервном файловом хранилище. Недоступность
// основного бэкенда никогда не доходит до клиента.
//
// Политика написана один раз и переиспользуется обёртками по ресурсам.
// Доменные результаты (storage.ErrNotFound, storage.ErrExists) не считаются
// отказом бэкенда и возвращаются без повторной попытки. Хранилища между
// собой не синхронизируются: при перемежающейся доступности основного
// бэкенда их содержимое может молча разойтись.
package failover

import (
	"log/slog"

	"github.com/magabrotheeeer/email-dispatcher/internal/lib/sl"
	"github.com/magabrotheeeer/email-dispatcher/internal/storage"
)

// attempt выполняет операцию на основном хранилище и при отказе бэкенда
// повторяет её на резервном.
func attempt[T any](log *slog.Logger, op string, primary, fallback func() (T, error)) (T, error) {
	result, err := primary()
	if err == nil || storage.IsDomain(err) {
		return result, err
	}
	log.Warn("primary storage unavailable, falling back to file store",
		slog.String("op", op), sl.Err(err))
	return fallback()
}

// attemptErr — вариант attempt для операций без возвращаемого значения.
func attemptErr(log *slog.Logger, op string, primary, fallback func() error) error {
	err := primary()
	if err == nil || storage.IsDomain(err) {
		return err
	}
	log.Warn("primary storage unavailable, falling back to file store",
		slog.String("op", op), sl.Err(err))
	return fallback()
}
