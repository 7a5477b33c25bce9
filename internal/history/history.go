// Package history реализует журнал отправленных писем: append-only лог
// записей об отправках, по которому отвечают запросы истории.
//
// Журнал передаётся в сервис отправки явно, как зависимость. Базовая
// реализация хранит записи в памяти процесса и теряется при рестарте;
// для продакшена есть вариант поверх Redis.
package history

import (
	"context"

	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

// Store описывает журнал отправок.
type Store interface {
	// Append добавляет запись в конец журнала. Записи никогда не изменяются.
	Append(ctx context.Context, email models.Email) error
	// List возвращает записи журнала в порядке добавления.
	// Непустой fromEmail ограничивает выдачу письмами этого отправителя.
	List(ctx context.Context, fromEmail string) ([]models.Email, error)
}
